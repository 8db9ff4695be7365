package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teskilat/backend/internal/db"
	"github.com/teskilat/backend/pkg/logger"
)

// Summary reports what one successful import created.
type Summary struct {
	People        int       `json:"people"`
	Organizations int       `json:"organizations"`
	Events        int       `json:"events"`
	Relationships int       `json:"relationships"`
	Breakdown     Breakdown `json:"breakdown"`
}

type Breakdown struct {
	PersonToPerson int `json:"personToPerson"`
	PersonToOrg    int `json:"personToOrg"`
	OrgToOrg       int `json:"orgToOrg"`
	EventToPerson  int `json:"eventToPerson"`
	EventToOrg     int `json:"eventToOrg"`
	EventToEvent   int `json:"eventToEvent"`
}

// refMap resolves temporary _ref keys to the durable ids assigned during the
// write phase. It only exists inside one import transaction.
type refMap map[string]string

func (m refMap) resolve(ref string) (string, error) {
	id, ok := m[ref]
	if !ok {
		// The integrity checker guarantees every endpoint resolves; reaching
		// this path means it was bypassed.
		return "", fmt.Errorf("internal: unresolved ref %q", ref)
	}
	return id, nil
}

// Importer writes referentially-clean documents to the database.
type Importer struct {
	pool *pgxpool.Pool
}

func NewImporter(pool *pgxpool.Pool) *Importer {
	return &Importer{pool: pool}
}

// Run inserts all entities and relationships of the document inside one
// transaction. People, organizations, and events are written first (in that
// order) so every relationship endpoint has a durable id to reference; any
// failure rolls the whole batch back.
//
// The document must have passed Validate, CheckDuplicateRefs, and
// CheckDanglingRefs.
func (im *Importer) Run(ctx context.Context, payload *Payload) (*Summary, error) {
	tx, err := im.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	qtx := db.New(tx)
	refs := make(refMap, len(payload.People)+len(payload.Organizations)+len(payload.Events))

	for _, entry := range payload.People {
		row, err := qtx.CreatePerson(ctx, personParams(entry))
		if err != nil {
			return nil, fmt.Errorf("failed to insert person %q: %w", entry.Ref, err)
		}
		refs[entry.Ref] = row.ID
	}

	for _, entry := range payload.Organizations {
		row, err := qtx.CreateOrganization(ctx, organizationParams(entry))
		if err != nil {
			return nil, fmt.Errorf("failed to insert organization %q: %w", entry.Ref, err)
		}
		refs[entry.Ref] = row.ID
	}

	for _, entry := range payload.Events {
		row, err := qtx.CreateEvent(ctx, eventParams(entry))
		if err != nil {
			return nil, fmt.Errorf("failed to insert event %q: %w", entry.Ref, err)
		}
		refs[entry.Ref] = row.ID
	}

	var breakdown Breakdown
	for _, rel := range payload.Relationships {
		if err := im.insertRelationship(ctx, qtx, refs, rel, &breakdown); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	summary := &Summary{
		People:        len(payload.People),
		Organizations: len(payload.Organizations),
		Events:        len(payload.Events),
		Relationships: len(payload.Relationships),
		Breakdown:     breakdown,
	}
	logger.Info("Simulation import committed",
		"people", summary.People,
		"organizations", summary.Organizations,
		"events", summary.Events,
		"relationships", summary.Relationships,
	)
	return summary, nil
}

func (im *Importer) insertRelationship(ctx context.Context, qtx *db.Queries, refs refMap, rel Relationship, breakdown *Breakdown) error {
	switch r := rel.(type) {
	case PersonToPerson:
		source, err := refs.resolve(r.Source)
		if err != nil {
			return err
		}
		target, err := refs.resolve(r.Target)
		if err != nil {
			return err
		}
		_, err = qtx.CreatePersonToPersonRelation(ctx, db.CreatePersonToPersonRelationParams{
			SourcePersonID:   source,
			TargetPersonID:   target,
			RelationshipType: r.RelationshipType,
			Context:          r.Context,
			EstimatedStatus:  r.EstimatedStatus,
			Strength:         r.Strength,
			StartDate:        timestamp(r.StartDate),
			EndDate:          timestamp(r.EndDate),
			Notes:            r.Notes,
			Tags:             r.Tags,
		})
		if err != nil {
			return fmt.Errorf("failed to insert %s relationship: %w", r.Kind(), err)
		}
		breakdown.PersonToPerson++

	case PersonToOrg:
		person, err := refs.resolve(r.Person)
		if err != nil {
			return err
		}
		org, err := refs.resolve(r.Organization)
		if err != nil {
			return err
		}
		_, err = qtx.CreatePersonToOrgRelation(ctx, db.CreatePersonToOrgRelationParams{
			PersonID:        person,
			OrganizationID:  org,
			Role:            r.Role,
			Department:      r.Department,
			Context:         r.Context,
			EstimatedStatus: r.EstimatedStatus,
			CurrentlyActive: activeOrDefault(r.CurrentlyActive),
			StartDate:       timestamp(r.StartDate),
			EndDate:         timestamp(r.EndDate),
			Notes:           r.Notes,
			Tags:            r.Tags,
		})
		if err != nil {
			return fmt.Errorf("failed to insert %s relationship: %w", r.Kind(), err)
		}
		breakdown.PersonToOrg++

	case OrgToOrg:
		source, err := refs.resolve(r.Source)
		if err != nil {
			return err
		}
		target, err := refs.resolve(r.Target)
		if err != nil {
			return err
		}
		_, err = qtx.CreateOrgToOrgRelation(ctx, db.CreateOrgToOrgRelationParams{
			SourceOrgID:      source,
			TargetOrgID:      target,
			RelationshipType: r.RelationshipType,
			Context:          r.Context,
			EstimatedStatus:  r.EstimatedStatus,
			CurrentlyActive:  activeOrDefault(r.CurrentlyActive),
			StartDate:        timestamp(r.StartDate),
			EndDate:          timestamp(r.EndDate),
			Notes:            r.Notes,
			Tags:             r.Tags,
		})
		if err != nil {
			return fmt.Errorf("failed to insert %s relationship: %w", r.Kind(), err)
		}
		breakdown.OrgToOrg++

	case EventToPerson:
		event, err := refs.resolve(r.Event)
		if err != nil {
			return err
		}
		person, err := refs.resolve(r.Person)
		if err != nil {
			return err
		}
		_, err = qtx.CreateEventToPerson(ctx, db.CreateEventToPersonParams{
			EventID:  event,
			PersonID: person,
			Role:     r.Role,
			Notes:    r.Notes,
		})
		if err != nil {
			return fmt.Errorf("failed to insert %s relationship: %w", r.Kind(), err)
		}
		breakdown.EventToPerson++

	case EventToOrg:
		event, err := refs.resolve(r.Event)
		if err != nil {
			return err
		}
		org, err := refs.resolve(r.Organization)
		if err != nil {
			return err
		}
		_, err = qtx.CreateEventToOrganization(ctx, db.CreateEventToOrganizationParams{
			EventID:        event,
			OrganizationID: org,
			Role:           r.Role,
			Notes:          r.Notes,
		})
		if err != nil {
			return fmt.Errorf("failed to insert %s relationship: %w", r.Kind(), err)
		}
		breakdown.EventToOrg++

	case EventToEvent:
		source, err := refs.resolve(r.Source)
		if err != nil {
			return err
		}
		target, err := refs.resolve(r.Target)
		if err != nil {
			return err
		}
		_, err = qtx.CreateEventToEvent(ctx, db.CreateEventToEventParams{
			SourceEventID:    source,
			TargetEventID:    target,
			RelationshipType: r.RelationshipType,
			Notes:            r.Notes,
		})
		if err != nil {
			return fmt.Errorf("failed to insert %s relationship: %w", r.Kind(), err)
		}
		breakdown.EventToEvent++

	default:
		return fmt.Errorf("internal: unhandled relationship kind %q", rel.Kind())
	}

	return nil
}

func personParams(entry PersonEntry) db.CreatePersonParams {
	return db.CreatePersonParams{
		FirstName:      entry.FirstName,
		LastName:       entry.LastName,
		Aliases:        entry.Aliases,
		DateOfBirth:    timestamp(entry.DateOfBirth),
		PlaceOfBirth:   entry.PlaceOfBirth,
		Nationality:    entry.Nationality,
		Gender:         entry.Gender,
		PhotoURL:       entry.PhotoURL,
		Email:          entry.Email,
		Phone:          entry.Phone,
		Address:        entry.Address,
		PassportNo:     entry.PassportNo,
		NationalID:     entry.NationalID,
		TaxID:          entry.TaxID,
		DriversLicense: entry.DriversLicense,
		SocialMedia:    entry.SocialMedia,
		Notes:          entry.Notes,
		Tags:           entry.Tags,
		RiskLevel:      entry.RiskLevel,
	}
}

func organizationParams(entry OrganizationEntry) db.CreateOrganizationParams {
	return db.CreateOrganizationParams{
		Name:        entry.Name,
		Type:        entry.Type,
		Industry:    entry.Industry,
		Country:     entry.Country,
		Address:     entry.Address,
		Website:     entry.Website,
		Phone:       entry.Phone,
		Email:       entry.Email,
		FoundedAt:   timestamp(entry.FoundedAt),
		Description: entry.Description,
		Notes:       entry.Notes,
		Tags:        entry.Tags,
		RiskLevel:   entry.RiskLevel,
	}
}

func eventParams(entry EventEntry) db.CreateEventParams {
	return db.CreateEventParams{
		Title:           entry.Title,
		Type:            entry.Type,
		Description:     entry.Description,
		Date:            timestamp(entry.Date),
		EndDate:         timestamp(entry.EndDate),
		Location:        entry.Location,
		Latitude:        entry.Latitude,
		Longitude:       entry.Longitude,
		Country:         entry.Country,
		EstimatedStatus: entry.EstimatedStatus,
		Notes:           entry.Notes,
		Tags:            entry.Tags,
	}
}

// timestamp parses an RFC 3339 string already checked by Validate.
func timestamp(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	return &t
}

// Relationships default to currently active, matching the column default.
func activeOrDefault(b *bool) bool {
	if b == nil {
		return true
	}
	return *b
}
