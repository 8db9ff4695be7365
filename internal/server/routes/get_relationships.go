package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/teskilat/backend/internal/db"
	"github.com/teskilat/backend/internal/server/middleware"
	"github.com/teskilat/backend/pkg/logger"
)

// ListRelationshipsHandler returns all live relationships grouped by kind,
// optionally narrowed to those touching a single entity. The six tables are
// queried concurrently.
func ListRelationshipsHandler(c echo.Context) error {
	type relationshipsResponse struct {
		PersonToPerson []db.PersonToPersonRelation `json:"personToPerson"`
		PersonToOrg    []db.PersonToOrgRelation    `json:"personToOrg"`
		OrgToOrg       []db.OrgToOrgRelation       `json:"orgToOrg"`
		EventToPerson  []db.EventToPerson          `json:"eventToPerson"`
		EventToOrg     []db.EventToOrganization    `json:"eventToOrg"`
		EventToEvent   []db.EventToEvent           `json:"eventToEvent"`
	}

	var entityID *string
	if v := c.QueryParam("entityId"); v != "" {
		entityID = &v
	}

	conn := c.(*middleware.AppContext).App.DBConn
	queries := db.New(conn)

	var resp relationshipsResponse
	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() (err error) {
		resp.PersonToPerson, err = queries.ListPersonToPersonRelations(ctx, entityID)
		return err
	})
	g.Go(func() (err error) {
		resp.PersonToOrg, err = queries.ListPersonToOrgRelations(ctx, entityID)
		return err
	})
	g.Go(func() (err error) {
		resp.OrgToOrg, err = queries.ListOrgToOrgRelations(ctx, entityID)
		return err
	})
	g.Go(func() (err error) {
		resp.EventToPerson, err = queries.ListEventToPersonRelations(ctx, entityID)
		return err
	})
	g.Go(func() (err error) {
		resp.EventToOrg, err = queries.ListEventToOrganizationRelations(ctx, entityID)
		return err
	})
	g.Go(func() (err error) {
		resp.EventToEvent, err = queries.ListEventToEventRelations(ctx, entityID)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("Failed to list relationships", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list relationships"})
	}

	return c.JSON(http.StatusOK, map[string]any{"data": resp})
}
