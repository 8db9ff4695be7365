package routes

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/teskilat/backend/internal/db"
	"github.com/teskilat/backend/internal/server/middleware"
	"github.com/teskilat/backend/internal/server/util"
	"github.com/teskilat/backend/pkg/logger"
)

// ListEventsHandler returns a paginated slice of events, optionally filtered
// by a case-insensitive title search.
func ListEventsHandler(c echo.Context) error {
	type listEventsQuery struct {
		Page   int    `query:"page"`
		Limit  int    `query:"limit"`
		Search string `query:"search"`
	}

	params := new(listEventsQuery)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid query parameters"})
	}
	page, limit, offset := util.Pagination(params.Page, params.Limit)

	conn := c.(*middleware.AppContext).App.DBConn
	queries := db.New(conn)
	ctx := c.Request().Context()

	events, err := queries.ListEvents(ctx, db.ListEventsParams{
		Search: params.Search,
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		logger.Error("Failed to list events", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list events"})
	}

	total, err := queries.CountEvents(ctx, params.Search)
	if err != nil {
		logger.Error("Failed to count events", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list events"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": events,
		"meta": util.NewPageMeta(page, limit, total),
	})
}

// GetEventHandler returns a single event by id.
func GetEventHandler(c echo.Context) error {
	id := c.Param("id")

	conn := c.(*middleware.AppContext).App.DBConn
	event, err := db.New(conn).GetEvent(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Event not found"})
		}
		logger.Error("Failed to get event", "err", err, "id", id)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to get event"})
	}

	return c.JSON(http.StatusOK, map[string]any{"data": event})
}
