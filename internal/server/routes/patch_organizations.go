package routes

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/teskilat/backend/internal/db"
	"github.com/teskilat/backend/internal/server/middleware"
	"github.com/teskilat/backend/pkg/logger"
)

// UpdateOrganizationHandler applies a partial update. Absent fields are left
// untouched.
func UpdateOrganizationHandler(c echo.Context) error {
	type updateOrganizationBody struct {
		Name        *string  `json:"name"`
		Type        *string  `json:"type"`
		Industry    *string  `json:"industry"`
		Country     *string  `json:"country"`
		Address     *string  `json:"address"`
		Website     *string  `json:"website"`
		Phone       []string `json:"phone"`
		Email       []string `json:"email"`
		FoundedAt   *string  `json:"foundedAt" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
		Description *string  `json:"description"`
		Notes       *string  `json:"notes"`
		Tags        []string `json:"tags"`
		RiskLevel   *string  `json:"riskLevel" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	}

	id := c.Param("id")

	body := new(updateOrganizationBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	org, err := db.New(conn).UpdateOrganization(c.Request().Context(), db.UpdateOrganizationParams{
		ID:          id,
		Name:        body.Name,
		Type:        body.Type,
		Industry:    body.Industry,
		Country:     body.Country,
		Address:     body.Address,
		Website:     body.Website,
		Phone:       body.Phone,
		Email:       body.Email,
		FoundedAt:   timestamp(body.FoundedAt),
		Description: body.Description,
		Notes:       body.Notes,
		Tags:        body.Tags,
		RiskLevel:   body.RiskLevel,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Organization not found"})
		}
		logger.Error("Failed to update organization", "err", err, "id", id)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update organization"})
	}

	return c.JSON(http.StatusOK, map[string]any{"data": org})
}
