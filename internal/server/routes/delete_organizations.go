package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teskilat/backend/internal/db"
	"github.com/teskilat/backend/internal/server/middleware"
	"github.com/teskilat/backend/pkg/logger"
)

// DeleteOrganizationHandler soft-deletes an organization.
func DeleteOrganizationHandler(c echo.Context) error {
	id := c.Param("id")

	conn := c.(*middleware.AppContext).App.DBConn
	affected, err := db.New(conn).SoftDeleteOrganization(c.Request().Context(), id)
	if err != nil {
		logger.Error("Failed to delete organization", "err", err, "id", id)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete organization"})
	}
	if affected == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Organization not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Organization deleted"})
}
