package routes

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/teskilat/backend/internal/db"
	"github.com/teskilat/backend/internal/server/middleware"
	"github.com/teskilat/backend/internal/storage"
	"github.com/teskilat/backend/pkg/logger"
)

// UploadFileHandler stores an uploaded file in the blob store and records it
// against a person, organization, or event.
func UploadFileHandler(c echo.Context) error {
	type uploadFileBody struct {
		PersonID       *string `form:"personId"`
		OrganizationID *string `form:"organizationId"`
		EventID        *string `form:"eventId"`
		Description    *string `form:"description"`
	}

	body := new(uploadFileBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if body.PersonID == nil && body.OrganizationID == nil && body.EventID == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "One of personId, organizationId, or eventId is required"})
	}

	upload, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing file"})
	}

	src, err := upload.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to upload file"})
	}
	defer src.Close()

	key, err := gonanoid.New()
	if err != nil {
		logger.Error("Failed to generate object key", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to upload file"})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	objectKey, err := storage.PutFile(ctx, app.S3, upload.Filename, key, src)
	if err != nil {
		logger.Error("Failed to store file", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to upload file"})
	}

	size := int32(upload.Size)
	var uploadedBy *string
	if user := c.(*middleware.AppContext).User; user != nil {
		id := strconv.FormatInt(user.UserID, 10)
		uploadedBy = &id
	}

	record, err := db.New(app.DBConn).CreateFile(ctx, db.CreateFileParams{
		FileName:       upload.Filename,
		FileType:       upload.Header.Get("Content-Type"),
		FileURL:        objectKey,
		FileSize:       &size,
		Description:    body.Description,
		UploadedBy:     uploadedBy,
		PersonID:       body.PersonID,
		OrganizationID: body.OrganizationID,
		EventID:        body.EventID,
	})
	if err != nil {
		logger.Error("Failed to record file", "err", err)
		// Orphaned blob; remove it so the store stays consistent.
		if delErr := storage.DeleteFile(ctx, app.S3, objectKey); delErr != nil {
			logger.Error("Failed to remove orphaned blob", "err", delErr, "key", objectKey)
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to upload file"})
	}

	return c.JSON(http.StatusCreated, map[string]any{"data": record})
}
