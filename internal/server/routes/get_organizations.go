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

// ListOrganizationsHandler returns a paginated slice of organizations,
// optionally filtered by a case-insensitive name search.
func ListOrganizationsHandler(c echo.Context) error {
	type listOrganizationsQuery struct {
		Page   int    `query:"page"`
		Limit  int    `query:"limit"`
		Search string `query:"search"`
	}

	params := new(listOrganizationsQuery)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid query parameters"})
	}
	page, limit, offset := util.Pagination(params.Page, params.Limit)

	conn := c.(*middleware.AppContext).App.DBConn
	queries := db.New(conn)
	ctx := c.Request().Context()

	orgs, err := queries.ListOrganizations(ctx, db.ListOrganizationsParams{
		Search: params.Search,
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		logger.Error("Failed to list organizations", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list organizations"})
	}

	total, err := queries.CountOrganizations(ctx, params.Search)
	if err != nil {
		logger.Error("Failed to count organizations", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list organizations"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": orgs,
		"meta": util.NewPageMeta(page, limit, total),
	})
}

// GetOrganizationHandler returns a single organization by id.
func GetOrganizationHandler(c echo.Context) error {
	id := c.Param("id")

	conn := c.(*middleware.AppContext).App.DBConn
	org, err := db.New(conn).GetOrganization(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Organization not found"})
		}
		logger.Error("Failed to get organization", "err", err, "id", id)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to get organization"})
	}

	return c.JSON(http.StatusOK, map[string]any{"data": org})
}
