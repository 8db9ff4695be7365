package routes

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/teskilat/backend/internal/db"
	"github.com/teskilat/backend/internal/server/middleware"
	"github.com/teskilat/backend/internal/storage"
	"github.com/teskilat/backend/pkg/logger"
)

// ListFilesHandler lists live attachments for a person, organization, or
// event.
func ListFilesHandler(c echo.Context) error {
	entityID := c.QueryParam("entityId")
	if entityID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "entityId query parameter is required"})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	files, err := db.New(conn).ListFilesByEntity(c.Request().Context(), entityID)
	if err != nil {
		logger.Error("Failed to list files", "err", err, "entityId", entityID)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list files"})
	}

	return c.JSON(http.StatusOK, map[string]any{"data": files})
}

// GetFileDownloadHandler returns a short-lived presigned download link for
// one file.
func GetFileDownloadHandler(c echo.Context) error {
	id := c.Param("id")

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	file, err := db.New(app.DBConn).GetFile(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "File not found"})
		}
		logger.Error("Failed to get file", "err", err, "id", id)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to get file"})
	}

	url, err := storage.GenerateDownloadLink(ctx, app.S3, file.FileURL)
	if err != nil {
		logger.Error("Failed to presign download link", "err", err, "key", file.FileURL)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate download link"})
	}

	return c.JSON(http.StatusOK, map[string]any{"data": map[string]string{"url": url}})
}
