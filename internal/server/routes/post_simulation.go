package routes

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teskilat/backend/internal/server/middleware"
	"github.com/teskilat/backend/pkg/logger"
	"github.com/teskilat/backend/pkg/simulation"
)

// ImportSimulationHandler ingests a full simulation document in one
// transaction. The payload is rejected before any write when schema
// validation, duplicate _ref detection, or dangling _ref detection fails.
func ImportSimulationHandler(c echo.Context) error {
	type errorResponse struct {
		Error   string `json:"error"`
		Details any    `json:"details,omitempty"`
	}

	payload := new(simulation.Payload)
	if err := json.NewDecoder(c.Request().Body).Decode(payload); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
	}

	if problems := simulation.Validate(payload); len(problems) > 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "Validation failed",
			Details: problems,
		})
	}

	if dupes := simulation.CheckDuplicateRefs(payload); len(dupes) > 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "Duplicate _ref keys found",
			Details: dupes,
		})
	}

	if dangling := simulation.CheckDanglingRefs(payload); len(dangling) > 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "Dangling _ref references in relationships",
			Details: dangling,
		})
	}

	importer := c.(*middleware.AppContext).App.Importer
	summary, err := importer.Run(c.Request().Context(), payload)
	if err != nil {
		logger.Error("Simulation import failed", "err", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error: "Failed to import simulation data. Transaction rolled back.",
		})
	}

	return c.JSON(http.StatusCreated, map[string]any{"data": summary})
}
