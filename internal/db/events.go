package db

import (
	"context"
	"time"
)

const eventColumns = `id, title, type, description, date, end_date, location, latitude,
	longitude, country, estimated_status, notes, tags, created_at, updated_at`

func scanEvent(row rowScanner) (Event, error) {
	var e Event
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Type,
		&e.Description,
		&e.Date,
		&e.EndDate,
		&e.Location,
		&e.Latitude,
		&e.Longitude,
		&e.Country,
		&e.EstimatedStatus,
		&e.Notes,
		&e.Tags,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

type CreateEventParams struct {
	Title           string
	Type            *string
	Description     *string
	Date            *time.Time
	EndDate         *time.Time
	Location        *string
	Latitude        *float64
	Longitude       *float64
	Country         *string
	EstimatedStatus *string
	Notes           *string
	Tags            []string
}

const createEvent = `
INSERT INTO event (
	title, type, description, date, end_date, location, latitude, longitude,
	country, estimated_status, notes, tags
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
)
RETURNING ` + eventColumns

func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) (Event, error) {
	row := q.db.QueryRow(ctx, createEvent,
		arg.Title,
		arg.Type,
		arg.Description,
		arg.Date,
		arg.EndDate,
		arg.Location,
		arg.Latitude,
		arg.Longitude,
		arg.Country,
		arg.EstimatedStatus,
		arg.Notes,
		arg.Tags,
	)
	return scanEvent(row)
}

const getEvent = `
SELECT ` + eventColumns + `
FROM event
WHERE id = $1 AND deleted_at IS NULL`

func (q *Queries) GetEvent(ctx context.Context, id string) (Event, error) {
	return scanEvent(q.db.QueryRow(ctx, getEvent, id))
}

type ListEventsParams struct {
	Search string
	Limit  int32
	Offset int32
}

const listEvents = `
SELECT ` + eventColumns + `
FROM event
WHERE deleted_at IS NULL
  AND ($1 = '' OR title ILIKE '%' || $1 || '%')
ORDER BY date DESC NULLS LAST, created_at DESC
LIMIT $2 OFFSET $3`

func (q *Queries) ListEvents(ctx context.Context, arg ListEventsParams) ([]Event, error) {
	rows, err := q.db.Query(ctx, listEvents, arg.Search, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

const listAllEvents = `
SELECT ` + eventColumns + `
FROM event
WHERE deleted_at IS NULL
ORDER BY date DESC NULLS LAST, created_at DESC`

// ListAllEvents returns every live event.
func (q *Queries) ListAllEvents(ctx context.Context) ([]Event, error) {
	rows, err := q.db.Query(ctx, listAllEvents)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

const countEvents = `
SELECT count(*)
FROM event
WHERE deleted_at IS NULL
  AND ($1 = '' OR title ILIKE '%' || $1 || '%')`

func (q *Queries) CountEvents(ctx context.Context, search string) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countEvents, search).Scan(&count)
	return count, err
}

type UpdateEventParams struct {
	ID              string
	Title           *string
	Type            *string
	Description     *string
	Date            *time.Time
	EndDate         *time.Time
	Location        *string
	Latitude        *float64
	Longitude       *float64
	Country         *string
	EstimatedStatus *string
	Notes           *string
	Tags            []string
}

const updateEvent = `
UPDATE event SET
	title            = COALESCE($2, title),
	type             = COALESCE($3, type),
	description      = COALESCE($4, description),
	date             = COALESCE($5, date),
	end_date         = COALESCE($6, end_date),
	location         = COALESCE($7, location),
	latitude         = COALESCE($8, latitude),
	longitude        = COALESCE($9, longitude),
	country          = COALESCE($10, country),
	estimated_status = COALESCE($11, estimated_status),
	notes            = COALESCE($12, notes),
	tags             = COALESCE($13, tags),
	updated_at       = now()
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + eventColumns

func (q *Queries) UpdateEvent(ctx context.Context, arg UpdateEventParams) (Event, error) {
	row := q.db.QueryRow(ctx, updateEvent,
		arg.ID,
		arg.Title,
		arg.Type,
		arg.Description,
		arg.Date,
		arg.EndDate,
		arg.Location,
		arg.Latitude,
		arg.Longitude,
		arg.Country,
		arg.EstimatedStatus,
		arg.Notes,
		arg.Tags,
	)
	return scanEvent(row)
}

const softDeleteEvent = `
UPDATE event SET deleted_at = now()
WHERE id = $1 AND deleted_at IS NULL`

func (q *Queries) SoftDeleteEvent(ctx context.Context, id string) (int64, error) {
	tag, err := q.db.Exec(ctx, softDeleteEvent, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
