package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teskilat/backend/internal/db"
	"github.com/teskilat/backend/internal/server/middleware"
	"github.com/teskilat/backend/pkg/logger"
)

// DeleteRelationshipHandler soft-deletes one relationship row of the kind
// given in the path.
func DeleteRelationshipHandler(c echo.Context) error {
	kind := db.RelationKind(c.Param("kind"))
	id := c.Param("id")

	conn := c.(*middleware.AppContext).App.DBConn
	affected, err := db.New(conn).SoftDeleteRelation(c.Request().Context(), kind, id)
	if err != nil {
		if errors.Is(err, db.ErrUnknownRelationKind) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown relationship kind"})
		}
		logger.Error("Failed to delete relationship", "err", err, "kind", kind, "id", id)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete relationship"})
	}
	if affected == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Relationship not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Relationship deleted"})
}
