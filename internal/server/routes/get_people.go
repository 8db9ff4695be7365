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

// ListPeopleHandler returns a paginated slice of people, optionally filtered
// by a case-insensitive name search.
func ListPeopleHandler(c echo.Context) error {
	type listPeopleQuery struct {
		Page   int    `query:"page"`
		Limit  int    `query:"limit"`
		Search string `query:"search"`
	}

	params := new(listPeopleQuery)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid query parameters"})
	}
	page, limit, offset := util.Pagination(params.Page, params.Limit)

	conn := c.(*middleware.AppContext).App.DBConn
	queries := db.New(conn)
	ctx := c.Request().Context()

	people, err := queries.ListPeople(ctx, db.ListPeopleParams{
		Search: params.Search,
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		logger.Error("Failed to list people", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list people"})
	}

	total, err := queries.CountPeople(ctx, params.Search)
	if err != nil {
		logger.Error("Failed to count people", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list people"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": people,
		"meta": util.NewPageMeta(page, limit, total),
	})
}

// GetPersonHandler returns a single person by id.
func GetPersonHandler(c echo.Context) error {
	id := c.Param("id")

	conn := c.(*middleware.AppContext).App.DBConn
	person, err := db.New(conn).GetPerson(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Person not found"})
		}
		logger.Error("Failed to get person", "err", err, "id", id)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to get person"})
	}

	return c.JSON(http.StatusOK, map[string]any{"data": person})
}
