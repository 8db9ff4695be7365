package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teskilat/backend/internal/db"
	"github.com/teskilat/backend/internal/server/middleware"
	"github.com/teskilat/backend/pkg/logger"
)

// CreateOrganizationHandler creates a single organization record.
func CreateOrganizationHandler(c echo.Context) error {
	type createOrganizationBody struct {
		Name        string   `json:"name" validate:"required"`
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

	body := new(createOrganizationBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	org, err := db.New(conn).CreateOrganization(c.Request().Context(), db.CreateOrganizationParams{
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
		logger.Error("Failed to create organization", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create organization"})
	}

	return c.JSON(http.StatusCreated, map[string]any{"data": org})
}
