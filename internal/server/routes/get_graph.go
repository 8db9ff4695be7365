package routes

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/teskilat/backend/internal/db"
	"github.com/teskilat/backend/internal/server/middleware"
	"github.com/teskilat/backend/pkg/logger"
)

type graphNodeData struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

type graphEdgeData struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
	Kind   string `json:"kind"`
	Label  string `json:"label,omitempty"`
}

type graphNode struct {
	Data graphNodeData `json:"data"`
}

type graphEdge struct {
	Data graphEdgeData `json:"data"`
}

// GetGraphHandler returns the whole network as Cytoscape-style elements:
// every live entity as a node and every live relationship as an edge. The
// nine queries run concurrently.
func GetGraphHandler(c echo.Context) error {
	conn := c.(*middleware.AppContext).App.DBConn
	queries := db.New(conn)

	var (
		people []db.Person
		orgs   []db.Organization
		events []db.Event
		p2p    []db.PersonToPersonRelation
		p2o    []db.PersonToOrgRelation
		o2o    []db.OrgToOrgRelation
		e2p    []db.EventToPerson
		e2o    []db.EventToOrganization
		e2e    []db.EventToEvent
	)

	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() (err error) { people, err = queries.ListAllPeople(ctx); return err })
	g.Go(func() (err error) { orgs, err = queries.ListAllOrganizations(ctx); return err })
	g.Go(func() (err error) { events, err = queries.ListAllEvents(ctx); return err })
	g.Go(func() (err error) { p2p, err = queries.ListPersonToPersonRelations(ctx, nil); return err })
	g.Go(func() (err error) { p2o, err = queries.ListPersonToOrgRelations(ctx, nil); return err })
	g.Go(func() (err error) { o2o, err = queries.ListOrgToOrgRelations(ctx, nil); return err })
	g.Go(func() (err error) { e2p, err = queries.ListEventToPersonRelations(ctx, nil); return err })
	g.Go(func() (err error) { e2o, err = queries.ListEventToOrganizationRelations(ctx, nil); return err })
	g.Go(func() (err error) { e2e, err = queries.ListEventToEventRelations(ctx, nil); return err })
	if err := g.Wait(); err != nil {
		logger.Error("Failed to build graph", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to build graph"})
	}

	nodes := make([]graphNode, 0, len(people)+len(orgs)+len(events))
	for _, p := range people {
		nodes = append(nodes, graphNode{graphNodeData{ID: p.ID, Label: personLabel(p), Type: "person"}})
	}
	for _, o := range orgs {
		nodes = append(nodes, graphNode{graphNodeData{ID: o.ID, Label: o.Name, Type: "organization"}})
	}
	for _, e := range events {
		nodes = append(nodes, graphNode{graphNodeData{ID: e.ID, Label: e.Title, Type: "event"}})
	}

	edges := make([]graphEdge, 0, len(p2p)+len(p2o)+len(o2o)+len(e2p)+len(e2o)+len(e2e))
	for _, r := range p2p {
		edges = append(edges, graphEdge{graphEdgeData{
			ID: r.ID, Source: r.SourcePersonID, Target: r.TargetPersonID,
			Kind: string(db.KindPersonToPerson), Label: deref(r.RelationshipType),
		}})
	}
	for _, r := range p2o {
		edges = append(edges, graphEdge{graphEdgeData{
			ID: r.ID, Source: r.PersonID, Target: r.OrganizationID,
			Kind: string(db.KindPersonToOrg), Label: deref(r.Role),
		}})
	}
	for _, r := range o2o {
		edges = append(edges, graphEdge{graphEdgeData{
			ID: r.ID, Source: r.SourceOrgID, Target: r.TargetOrgID,
			Kind: string(db.KindOrgToOrg), Label: deref(r.RelationshipType),
		}})
	}
	for _, r := range e2p {
		edges = append(edges, graphEdge{graphEdgeData{
			ID: r.ID, Source: r.EventID, Target: r.PersonID,
			Kind: string(db.KindEventToPerson), Label: deref(r.Role),
		}})
	}
	for _, r := range e2o {
		edges = append(edges, graphEdge{graphEdgeData{
			ID: r.ID, Source: r.EventID, Target: r.OrganizationID,
			Kind: string(db.KindEventToOrg), Label: deref(r.Role),
		}})
	}
	for _, r := range e2e {
		edges = append(edges, graphEdge{graphEdgeData{
			ID: r.ID, Source: r.SourceEventID, Target: r.TargetEventID,
			Kind: string(db.KindEventToEvent), Label: deref(r.RelationshipType),
		}})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": map[string]any{
			"nodes": nodes,
			"edges": edges,
		},
	})
}

func personLabel(p db.Person) string {
	name := strings.TrimSpace(deref(p.FirstName) + " " + deref(p.LastName))
	if name == "" {
		return p.ID
	}
	return name
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
