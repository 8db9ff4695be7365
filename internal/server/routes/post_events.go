package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teskilat/backend/internal/db"
	"github.com/teskilat/backend/internal/server/middleware"
	"github.com/teskilat/backend/pkg/logger"
)

// CreateEventHandler creates a single event record.
func CreateEventHandler(c echo.Context) error {
	type createEventBody struct {
		Title           string   `json:"title" validate:"required"`
		Type            *string  `json:"type"`
		Description     *string  `json:"description"`
		Date            *string  `json:"date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
		EndDate         *string  `json:"endDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
		Location        *string  `json:"location"`
		Latitude        *float64 `json:"latitude"`
		Longitude       *float64 `json:"longitude"`
		Country         *string  `json:"country"`
		EstimatedStatus *string  `json:"estimatedStatus" validate:"omitempty,oneof=CONFIRMED SUSPECTED UNVERIFIED DENIED"`
		Notes           *string  `json:"notes"`
		Tags            []string `json:"tags"`
	}

	body := new(createEventBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	event, err := db.New(conn).CreateEvent(c.Request().Context(), db.CreateEventParams{
		Title:           body.Title,
		Type:            body.Type,
		Description:     body.Description,
		Date:            timestamp(body.Date),
		EndDate:         timestamp(body.EndDate),
		Location:        body.Location,
		Latitude:        body.Latitude,
		Longitude:       body.Longitude,
		Country:         body.Country,
		EstimatedStatus: body.EstimatedStatus,
		Notes:           body.Notes,
		Tags:            body.Tags,
	})
	if err != nil {
		logger.Error("Failed to create event", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create event"})
	}

	return c.JSON(http.StatusCreated, map[string]any{"data": event})
}
