package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teskilat/backend/internal/server/middleware"
	"github.com/teskilat/backend/pkg/logger"
	"github.com/teskilat/backend/pkg/simulation"
)

// WipeSimulationHandler removes every row and every stored file. The wipe is
// irreversible and not atomic across the two stores: when the blob purge
// fails after the truncate, the handler reports it so the caller can retry.
func WipeSimulationHandler(c echo.Context) error {
	wiper := c.(*middleware.AppContext).App.Wiper

	result, err := wiper.Run(c.Request().Context())
	if err != nil {
		if errors.Is(err, simulation.ErrWipeInProgress) {
			return c.JSON(http.StatusConflict, map[string]string{
				"error": "A wipe is already in progress",
			})
		}
		if errors.Is(err, simulation.ErrBlobPurge) {
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Database wiped but file storage could not be fully cleared. Retry to remove remaining files.",
			})
		}

		logger.Error("Simulation wipe failed", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to wipe data",
		})
	}

	return c.JSON(http.StatusOK, result)
}
