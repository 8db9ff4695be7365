package db

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrUnknownRelationKind = errors.New("unknown relationship kind")

// RelationKind identifies one of the six relationship tables.
type RelationKind string

const (
	KindPersonToPerson RelationKind = "person-to-person"
	KindPersonToOrg    RelationKind = "person-to-org"
	KindOrgToOrg       RelationKind = "org-to-org"
	KindEventToPerson  RelationKind = "event-to-person"
	KindEventToOrg     RelationKind = "event-to-org"
	KindEventToEvent   RelationKind = "event-to-event"
)

var relationTables = map[RelationKind]string{
	KindPersonToPerson: "person_to_person_relation",
	KindPersonToOrg:    "person_to_org_relation",
	KindOrgToOrg:       "org_to_org_relation",
	KindEventToPerson:  "event_to_person",
	KindEventToOrg:     "event_to_organization",
	KindEventToEvent:   "event_to_event",
}

type CreatePersonToPersonRelationParams struct {
	SourcePersonID   string
	TargetPersonID   string
	RelationshipType *string
	Context          *string
	EstimatedStatus  *string
	Strength         *string
	StartDate        *time.Time
	EndDate          *time.Time
	Notes            *string
	Tags             []string
}

const createPersonToPersonRelation = `
INSERT INTO person_to_person_relation (
	source_person_id, target_person_id, relationship_type, context,
	estimated_status, strength, start_date, end_date, notes, tags
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, source_person_id, target_person_id, relationship_type, context,
	estimated_status, strength, start_date, end_date, notes, tags, created_at, updated_at`

func (q *Queries) CreatePersonToPersonRelation(ctx context.Context, arg CreatePersonToPersonRelationParams) (PersonToPersonRelation, error) {
	var r PersonToPersonRelation
	err := q.db.QueryRow(ctx, createPersonToPersonRelation,
		arg.SourcePersonID,
		arg.TargetPersonID,
		arg.RelationshipType,
		arg.Context,
		arg.EstimatedStatus,
		arg.Strength,
		arg.StartDate,
		arg.EndDate,
		arg.Notes,
		arg.Tags,
	).Scan(
		&r.ID, &r.SourcePersonID, &r.TargetPersonID, &r.RelationshipType, &r.Context,
		&r.EstimatedStatus, &r.Strength, &r.StartDate, &r.EndDate, &r.Notes, &r.Tags,
		&r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

type CreatePersonToOrgRelationParams struct {
	PersonID        string
	OrganizationID  string
	Role            *string
	Department      *string
	Context         *string
	EstimatedStatus *string
	CurrentlyActive bool
	StartDate       *time.Time
	EndDate         *time.Time
	Notes           *string
	Tags            []string
}

const createPersonToOrgRelation = `
INSERT INTO person_to_org_relation (
	person_id, organization_id, role, department, context, estimated_status,
	currently_active, start_date, end_date, notes, tags
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id, person_id, organization_id, role, department, context, estimated_status,
	currently_active, start_date, end_date, notes, tags, created_at, updated_at`

func (q *Queries) CreatePersonToOrgRelation(ctx context.Context, arg CreatePersonToOrgRelationParams) (PersonToOrgRelation, error) {
	var r PersonToOrgRelation
	err := q.db.QueryRow(ctx, createPersonToOrgRelation,
		arg.PersonID,
		arg.OrganizationID,
		arg.Role,
		arg.Department,
		arg.Context,
		arg.EstimatedStatus,
		arg.CurrentlyActive,
		arg.StartDate,
		arg.EndDate,
		arg.Notes,
		arg.Tags,
	).Scan(
		&r.ID, &r.PersonID, &r.OrganizationID, &r.Role, &r.Department, &r.Context,
		&r.EstimatedStatus, &r.CurrentlyActive, &r.StartDate, &r.EndDate, &r.Notes,
		&r.Tags, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

type CreateOrgToOrgRelationParams struct {
	SourceOrgID      string
	TargetOrgID      string
	RelationshipType *string
	Context          *string
	EstimatedStatus  *string
	CurrentlyActive  bool
	StartDate        *time.Time
	EndDate          *time.Time
	Notes            *string
	Tags             []string
}

const createOrgToOrgRelation = `
INSERT INTO org_to_org_relation (
	source_org_id, target_org_id, relationship_type, context, estimated_status,
	currently_active, start_date, end_date, notes, tags
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, source_org_id, target_org_id, relationship_type, context, estimated_status,
	currently_active, start_date, end_date, notes, tags, created_at, updated_at`

func (q *Queries) CreateOrgToOrgRelation(ctx context.Context, arg CreateOrgToOrgRelationParams) (OrgToOrgRelation, error) {
	var r OrgToOrgRelation
	err := q.db.QueryRow(ctx, createOrgToOrgRelation,
		arg.SourceOrgID,
		arg.TargetOrgID,
		arg.RelationshipType,
		arg.Context,
		arg.EstimatedStatus,
		arg.CurrentlyActive,
		arg.StartDate,
		arg.EndDate,
		arg.Notes,
		arg.Tags,
	).Scan(
		&r.ID, &r.SourceOrgID, &r.TargetOrgID, &r.RelationshipType, &r.Context,
		&r.EstimatedStatus, &r.CurrentlyActive, &r.StartDate, &r.EndDate, &r.Notes,
		&r.Tags, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

type CreateEventToPersonParams struct {
	EventID  string
	PersonID string
	Role     *string
	Notes    *string
}

const createEventToPerson = `
INSERT INTO event_to_person (event_id, person_id, role, notes)
VALUES ($1, $2, $3, $4)
RETURNING id, event_id, person_id, role, notes, created_at`

func (q *Queries) CreateEventToPerson(ctx context.Context, arg CreateEventToPersonParams) (EventToPerson, error) {
	var r EventToPerson
	err := q.db.QueryRow(ctx, createEventToPerson,
		arg.EventID,
		arg.PersonID,
		arg.Role,
		arg.Notes,
	).Scan(&r.ID, &r.EventID, &r.PersonID, &r.Role, &r.Notes, &r.CreatedAt)
	return r, err
}

type CreateEventToOrganizationParams struct {
	EventID        string
	OrganizationID string
	Role           *string
	Notes          *string
}

const createEventToOrganization = `
INSERT INTO event_to_organization (event_id, organization_id, role, notes)
VALUES ($1, $2, $3, $4)
RETURNING id, event_id, organization_id, role, notes, created_at`

func (q *Queries) CreateEventToOrganization(ctx context.Context, arg CreateEventToOrganizationParams) (EventToOrganization, error) {
	var r EventToOrganization
	err := q.db.QueryRow(ctx, createEventToOrganization,
		arg.EventID,
		arg.OrganizationID,
		arg.Role,
		arg.Notes,
	).Scan(&r.ID, &r.EventID, &r.OrganizationID, &r.Role, &r.Notes, &r.CreatedAt)
	return r, err
}

type CreateEventToEventParams struct {
	SourceEventID    string
	TargetEventID    string
	RelationshipType *string
	Notes            *string
}

const createEventToEvent = `
INSERT INTO event_to_event (source_event_id, target_event_id, relationship_type, notes)
VALUES ($1, $2, $3, $4)
RETURNING id, source_event_id, target_event_id, relationship_type, notes, created_at`

func (q *Queries) CreateEventToEvent(ctx context.Context, arg CreateEventToEventParams) (EventToEvent, error) {
	var r EventToEvent
	err := q.db.QueryRow(ctx, createEventToEvent,
		arg.SourceEventID,
		arg.TargetEventID,
		arg.RelationshipType,
		arg.Notes,
	).Scan(&r.ID, &r.SourceEventID, &r.TargetEventID, &r.RelationshipType, &r.Notes, &r.CreatedAt)
	return r, err
}

const listPersonToPersonRelations = `
SELECT id, source_person_id, target_person_id, relationship_type, context,
	estimated_status, strength, start_date, end_date, notes, tags, created_at, updated_at
FROM person_to_person_relation
WHERE deleted_at IS NULL
  AND ($1::uuid IS NULL OR source_person_id = $1 OR target_person_id = $1)
ORDER BY created_at DESC`

// ListPersonToPersonRelations lists all live rows, optionally narrowed to
// relations touching the given person.
func (q *Queries) ListPersonToPersonRelations(ctx context.Context, personID *string) ([]PersonToPersonRelation, error) {
	rows, err := q.db.Query(ctx, listPersonToPersonRelations, personID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rels := make([]PersonToPersonRelation, 0)
	for rows.Next() {
		var r PersonToPersonRelation
		err := rows.Scan(
			&r.ID, &r.SourcePersonID, &r.TargetPersonID, &r.RelationshipType, &r.Context,
			&r.EstimatedStatus, &r.Strength, &r.StartDate, &r.EndDate, &r.Notes, &r.Tags,
			&r.CreatedAt, &r.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		rels = append(rels, r)
	}
	return rels, rows.Err()
}

const listPersonToOrgRelations = `
SELECT id, person_id, organization_id, role, department, context, estimated_status,
	currently_active, start_date, end_date, notes, tags, created_at, updated_at
FROM person_to_org_relation
WHERE deleted_at IS NULL
  AND ($1::uuid IS NULL OR person_id = $1 OR organization_id = $1)
ORDER BY created_at DESC`

func (q *Queries) ListPersonToOrgRelations(ctx context.Context, entityID *string) ([]PersonToOrgRelation, error) {
	rows, err := q.db.Query(ctx, listPersonToOrgRelations, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rels := make([]PersonToOrgRelation, 0)
	for rows.Next() {
		var r PersonToOrgRelation
		err := rows.Scan(
			&r.ID, &r.PersonID, &r.OrganizationID, &r.Role, &r.Department, &r.Context,
			&r.EstimatedStatus, &r.CurrentlyActive, &r.StartDate, &r.EndDate, &r.Notes,
			&r.Tags, &r.CreatedAt, &r.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		rels = append(rels, r)
	}
	return rels, rows.Err()
}

const listOrgToOrgRelations = `
SELECT id, source_org_id, target_org_id, relationship_type, context, estimated_status,
	currently_active, start_date, end_date, notes, tags, created_at, updated_at
FROM org_to_org_relation
WHERE deleted_at IS NULL
  AND ($1::uuid IS NULL OR source_org_id = $1 OR target_org_id = $1)
ORDER BY created_at DESC`

func (q *Queries) ListOrgToOrgRelations(ctx context.Context, orgID *string) ([]OrgToOrgRelation, error) {
	rows, err := q.db.Query(ctx, listOrgToOrgRelations, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rels := make([]OrgToOrgRelation, 0)
	for rows.Next() {
		var r OrgToOrgRelation
		err := rows.Scan(
			&r.ID, &r.SourceOrgID, &r.TargetOrgID, &r.RelationshipType, &r.Context,
			&r.EstimatedStatus, &r.CurrentlyActive, &r.StartDate, &r.EndDate, &r.Notes,
			&r.Tags, &r.CreatedAt, &r.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		rels = append(rels, r)
	}
	return rels, rows.Err()
}

const listEventToPersonRelations = `
SELECT id, event_id, person_id, role, notes, created_at
FROM event_to_person
WHERE deleted_at IS NULL
  AND ($1::uuid IS NULL OR event_id = $1 OR person_id = $1)
ORDER BY created_at DESC`

func (q *Queries) ListEventToPersonRelations(ctx context.Context, entityID *string) ([]EventToPerson, error) {
	rows, err := q.db.Query(ctx, listEventToPersonRelations, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rels := make([]EventToPerson, 0)
	for rows.Next() {
		var r EventToPerson
		if err := rows.Scan(&r.ID, &r.EventID, &r.PersonID, &r.Role, &r.Notes, &r.CreatedAt); err != nil {
			return nil, err
		}
		rels = append(rels, r)
	}
	return rels, rows.Err()
}

const listEventToOrganizationRelations = `
SELECT id, event_id, organization_id, role, notes, created_at
FROM event_to_organization
WHERE deleted_at IS NULL
  AND ($1::uuid IS NULL OR event_id = $1 OR organization_id = $1)
ORDER BY created_at DESC`

func (q *Queries) ListEventToOrganizationRelations(ctx context.Context, entityID *string) ([]EventToOrganization, error) {
	rows, err := q.db.Query(ctx, listEventToOrganizationRelations, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rels := make([]EventToOrganization, 0)
	for rows.Next() {
		var r EventToOrganization
		if err := rows.Scan(&r.ID, &r.EventID, &r.OrganizationID, &r.Role, &r.Notes, &r.CreatedAt); err != nil {
			return nil, err
		}
		rels = append(rels, r)
	}
	return rels, rows.Err()
}

const listEventToEventRelations = `
SELECT id, source_event_id, target_event_id, relationship_type, notes, created_at
FROM event_to_event
WHERE deleted_at IS NULL
  AND ($1::uuid IS NULL OR source_event_id = $1 OR target_event_id = $1)
ORDER BY created_at DESC`

func (q *Queries) ListEventToEventRelations(ctx context.Context, eventID *string) ([]EventToEvent, error) {
	rows, err := q.db.Query(ctx, listEventToEventRelations, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rels := make([]EventToEvent, 0)
	for rows.Next() {
		var r EventToEvent
		if err := rows.Scan(&r.ID, &r.SourceEventID, &r.TargetEventID, &r.RelationshipType, &r.Notes, &r.CreatedAt); err != nil {
			return nil, err
		}
		rels = append(rels, r)
	}
	return rels, rows.Err()
}

// SoftDeleteRelation marks one relationship row of the given kind as deleted.
// The kind is mapped through a fixed table whitelist, never interpolated from
// user input directly.
func (q *Queries) SoftDeleteRelation(ctx context.Context, kind RelationKind, id string) (int64, error) {
	table, ok := relationTables[kind]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownRelationKind, kind)
	}

	sql := fmt.Sprintf("UPDATE %s SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL", table)
	tag, err := q.db.Exec(ctx, sql, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
