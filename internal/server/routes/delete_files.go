package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/teskilat/backend/internal/db"
	"github.com/teskilat/backend/internal/queue"
	"github.com/teskilat/backend/internal/server/middleware"
	"github.com/teskilat/backend/pkg/logger"
)

// DeleteFileHandler soft-deletes the attachment row and queues the blob
// removal for the worker.
func DeleteFileHandler(c echo.Context) error {
	id := c.Param("id")

	app := c.(*middleware.AppContext).App
	file, err := db.New(app.DBConn).SoftDeleteFile(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "File not found"})
		}
		logger.Error("Failed to delete file", "err", err, "id", id)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete file"})
	}

	msg, err := json.Marshal(queue.FileDeleteMessage{
		FileID:    file.ID,
		ObjectKey: file.FileURL,
	})
	if err != nil {
		logger.Error("Failed to marshal file delete message", "err", err, "id", id)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete file"})
	}
	if err := queue.PublishFIFO(app.Queue, queue.FileDeleteQueue, msg); err != nil {
		// The row is gone either way; the blob will linger until the next wipe.
		logger.Error("Failed to queue blob removal", "err", err, "id", id, "key", file.FileURL)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "File deleted"})
}
