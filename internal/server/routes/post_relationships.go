package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teskilat/backend/internal/db"
	"github.com/teskilat/backend/internal/server/middleware"
	"github.com/teskilat/backend/pkg/logger"
)

// CreateRelationshipHandler creates one relationship row. The body's type
// field selects the table; the id fields it requires depend on the type.
func CreateRelationshipHandler(c echo.Context) error {
	type createRelationshipBody struct {
		Type string `json:"type" validate:"required,oneof=person-to-person person-to-org org-to-org event-to-person event-to-org event-to-event"`

		SourcePersonID *string `json:"sourcePersonId"`
		TargetPersonID *string `json:"targetPersonId"`
		PersonID       *string `json:"personId"`
		OrganizationID *string `json:"organizationId"`
		SourceOrgID    *string `json:"sourceOrgId"`
		TargetOrgID    *string `json:"targetOrgId"`
		EventID        *string `json:"eventId"`
		SourceEventID  *string `json:"sourceEventId"`
		TargetEventID  *string `json:"targetEventId"`

		RelationshipType *string  `json:"relationshipType"`
		Context          *string  `json:"context"`
		EstimatedStatus  *string  `json:"estimatedStatus" validate:"omitempty,oneof=CONFIRMED SUSPECTED UNVERIFIED DENIED"`
		Strength         *string  `json:"strength" validate:"omitempty,oneof=STRONG MODERATE WEAK UNKNOWN"`
		CurrentlyActive  *bool    `json:"currentlyActive"`
		Role             *string  `json:"role"`
		Department       *string  `json:"department"`
		StartDate        *string  `json:"startDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
		EndDate          *string  `json:"endDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
		Notes            *string  `json:"notes"`
		Tags             []string `json:"tags"`
	}

	body := new(createRelationshipBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	require := func(fields map[string]*string) (bad string, ok bool) {
		for name, v := range fields {
			if v == nil || *v == "" {
				return name, false
			}
		}
		return "", true
	}

	conn := c.(*middleware.AppContext).App.DBConn
	queries := db.New(conn)
	ctx := c.Request().Context()

	active := true
	if body.CurrentlyActive != nil {
		active = *body.CurrentlyActive
	}

	var (
		created any
		err     error
	)
	switch db.RelationKind(body.Type) {
	case db.KindPersonToPerson:
		if missing, ok := require(map[string]*string{"sourcePersonId": body.SourcePersonID, "targetPersonId": body.TargetPersonID}); !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing required field: " + missing})
		}
		created, err = queries.CreatePersonToPersonRelation(ctx, db.CreatePersonToPersonRelationParams{
			SourcePersonID:   *body.SourcePersonID,
			TargetPersonID:   *body.TargetPersonID,
			RelationshipType: body.RelationshipType,
			Context:          body.Context,
			EstimatedStatus:  body.EstimatedStatus,
			Strength:         body.Strength,
			StartDate:        timestamp(body.StartDate),
			EndDate:          timestamp(body.EndDate),
			Notes:            body.Notes,
			Tags:             body.Tags,
		})
	case db.KindPersonToOrg:
		if missing, ok := require(map[string]*string{"personId": body.PersonID, "organizationId": body.OrganizationID}); !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing required field: " + missing})
		}
		created, err = queries.CreatePersonToOrgRelation(ctx, db.CreatePersonToOrgRelationParams{
			PersonID:        *body.PersonID,
			OrganizationID:  *body.OrganizationID,
			Role:            body.Role,
			Department:      body.Department,
			Context:         body.Context,
			EstimatedStatus: body.EstimatedStatus,
			CurrentlyActive: active,
			StartDate:       timestamp(body.StartDate),
			EndDate:         timestamp(body.EndDate),
			Notes:           body.Notes,
			Tags:            body.Tags,
		})
	case db.KindOrgToOrg:
		if missing, ok := require(map[string]*string{"sourceOrgId": body.SourceOrgID, "targetOrgId": body.TargetOrgID}); !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing required field: " + missing})
		}
		created, err = queries.CreateOrgToOrgRelation(ctx, db.CreateOrgToOrgRelationParams{
			SourceOrgID:      *body.SourceOrgID,
			TargetOrgID:      *body.TargetOrgID,
			RelationshipType: body.RelationshipType,
			Context:          body.Context,
			EstimatedStatus:  body.EstimatedStatus,
			CurrentlyActive:  active,
			StartDate:        timestamp(body.StartDate),
			EndDate:          timestamp(body.EndDate),
			Notes:            body.Notes,
			Tags:             body.Tags,
		})
	case db.KindEventToPerson:
		if missing, ok := require(map[string]*string{"eventId": body.EventID, "personId": body.PersonID}); !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing required field: " + missing})
		}
		created, err = queries.CreateEventToPerson(ctx, db.CreateEventToPersonParams{
			EventID:  *body.EventID,
			PersonID: *body.PersonID,
			Role:     body.Role,
			Notes:    body.Notes,
		})
	case db.KindEventToOrg:
		if missing, ok := require(map[string]*string{"eventId": body.EventID, "organizationId": body.OrganizationID}); !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing required field: " + missing})
		}
		created, err = queries.CreateEventToOrganization(ctx, db.CreateEventToOrganizationParams{
			EventID:        *body.EventID,
			OrganizationID: *body.OrganizationID,
			Role:           body.Role,
			Notes:          body.Notes,
		})
	case db.KindEventToEvent:
		if missing, ok := require(map[string]*string{"sourceEventId": body.SourceEventID, "targetEventId": body.TargetEventID}); !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing required field: " + missing})
		}
		created, err = queries.CreateEventToEvent(ctx, db.CreateEventToEventParams{
			SourceEventID:    *body.SourceEventID,
			TargetEventID:    *body.TargetEventID,
			RelationshipType: body.RelationshipType,
			Notes:            body.Notes,
		})
	}
	if err != nil {
		logger.Error("Failed to create relationship", "err", err, "type", body.Type)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create relationship"})
	}

	return c.JSON(http.StatusCreated, map[string]any{"data": created})
}
