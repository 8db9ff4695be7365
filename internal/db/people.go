package db

import (
	"context"
	"time"
)

const personColumns = `id, first_name, last_name, aliases, date_of_birth, place_of_birth,
	nationality, gender, photo_url, email, phone, address, passport_no, national_id,
	tax_id, drivers_license, social_media, notes, tags, risk_level, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerson(row rowScanner) (Person, error) {
	var p Person
	err := row.Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.Aliases,
		&p.DateOfBirth,
		&p.PlaceOfBirth,
		&p.Nationality,
		&p.Gender,
		&p.PhotoURL,
		&p.Email,
		&p.Phone,
		&p.Address,
		&p.PassportNo,
		&p.NationalID,
		&p.TaxID,
		&p.DriversLicense,
		&p.SocialMedia,
		&p.Notes,
		&p.Tags,
		&p.RiskLevel,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

type CreatePersonParams struct {
	FirstName      *string
	LastName       *string
	Aliases        []string
	DateOfBirth    *time.Time
	PlaceOfBirth   *string
	Nationality    *string
	Gender         *string
	PhotoURL       *string
	Email          []string
	Phone          []string
	Address        *string
	PassportNo     *string
	NationalID     *string
	TaxID          *string
	DriversLicense *string
	SocialMedia    map[string]string
	Notes          *string
	Tags           []string
	RiskLevel      *string
}

const createPerson = `
INSERT INTO person (
	first_name, last_name, aliases, date_of_birth, place_of_birth, nationality,
	gender, photo_url, email, phone, address, passport_no, national_id, tax_id,
	drivers_license, social_media, notes, tags, risk_level
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19
)
RETURNING ` + personColumns

func (q *Queries) CreatePerson(ctx context.Context, arg CreatePersonParams) (Person, error) {
	row := q.db.QueryRow(ctx, createPerson,
		arg.FirstName,
		arg.LastName,
		arg.Aliases,
		arg.DateOfBirth,
		arg.PlaceOfBirth,
		arg.Nationality,
		arg.Gender,
		arg.PhotoURL,
		arg.Email,
		arg.Phone,
		arg.Address,
		arg.PassportNo,
		arg.NationalID,
		arg.TaxID,
		arg.DriversLicense,
		arg.SocialMedia,
		arg.Notes,
		arg.Tags,
		arg.RiskLevel,
	)
	return scanPerson(row)
}

const getPerson = `
SELECT ` + personColumns + `
FROM person
WHERE id = $1 AND deleted_at IS NULL`

func (q *Queries) GetPerson(ctx context.Context, id string) (Person, error) {
	return scanPerson(q.db.QueryRow(ctx, getPerson, id))
}

type ListPeopleParams struct {
	Search string
	Limit  int32
	Offset int32
}

const listPeople = `
SELECT ` + personColumns + `
FROM person
WHERE deleted_at IS NULL
  AND ($1 = '' OR first_name ILIKE '%' || $1 || '%' OR last_name ILIKE '%' || $1 || '%')
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

func (q *Queries) ListPeople(ctx context.Context, arg ListPeopleParams) ([]Person, error) {
	rows, err := q.db.Query(ctx, listPeople, arg.Search, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	people := make([]Person, 0)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	return people, rows.Err()
}

const listAllPeople = `
SELECT ` + personColumns + `
FROM person
WHERE deleted_at IS NULL
ORDER BY created_at DESC`

// ListAllPeople returns every live person. Used by the graph view, which
// renders the whole dataset at once.
func (q *Queries) ListAllPeople(ctx context.Context) ([]Person, error) {
	rows, err := q.db.Query(ctx, listAllPeople)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	people := make([]Person, 0)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	return people, rows.Err()
}

const countPeople = `
SELECT count(*)
FROM person
WHERE deleted_at IS NULL
  AND ($1 = '' OR first_name ILIKE '%' || $1 || '%' OR last_name ILIKE '%' || $1 || '%')`

func (q *Queries) CountPeople(ctx context.Context, search string) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countPeople, search).Scan(&count)
	return count, err
}

type UpdatePersonParams struct {
	ID             string
	FirstName      *string
	LastName       *string
	Aliases        []string
	DateOfBirth    *time.Time
	PlaceOfBirth   *string
	Nationality    *string
	Gender         *string
	PhotoURL       *string
	Email          []string
	Phone          []string
	Address        *string
	PassportNo     *string
	NationalID     *string
	TaxID          *string
	DriversLicense *string
	SocialMedia    map[string]string
	Notes          *string
	Tags           []string
	RiskLevel      *string
}

// Absent (nil) fields keep their current value.
const updatePerson = `
UPDATE person SET
	first_name      = COALESCE($2, first_name),
	last_name       = COALESCE($3, last_name),
	aliases         = COALESCE($4, aliases),
	date_of_birth   = COALESCE($5, date_of_birth),
	place_of_birth  = COALESCE($6, place_of_birth),
	nationality     = COALESCE($7, nationality),
	gender          = COALESCE($8, gender),
	photo_url       = COALESCE($9, photo_url),
	email           = COALESCE($10, email),
	phone           = COALESCE($11, phone),
	address         = COALESCE($12, address),
	passport_no     = COALESCE($13, passport_no),
	national_id     = COALESCE($14, national_id),
	tax_id          = COALESCE($15, tax_id),
	drivers_license = COALESCE($16, drivers_license),
	social_media    = COALESCE($17, social_media),
	notes           = COALESCE($18, notes),
	tags            = COALESCE($19, tags),
	risk_level      = COALESCE($20, risk_level),
	updated_at      = now()
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + personColumns

func (q *Queries) UpdatePerson(ctx context.Context, arg UpdatePersonParams) (Person, error) {
	row := q.db.QueryRow(ctx, updatePerson,
		arg.ID,
		arg.FirstName,
		arg.LastName,
		arg.Aliases,
		arg.DateOfBirth,
		arg.PlaceOfBirth,
		arg.Nationality,
		arg.Gender,
		arg.PhotoURL,
		arg.Email,
		arg.Phone,
		arg.Address,
		arg.PassportNo,
		arg.NationalID,
		arg.TaxID,
		arg.DriversLicense,
		arg.SocialMedia,
		arg.Notes,
		arg.Tags,
		arg.RiskLevel,
	)
	return scanPerson(row)
}

const softDeletePerson = `
UPDATE person SET deleted_at = now()
WHERE id = $1 AND deleted_at IS NULL`

func (q *Queries) SoftDeletePerson(ctx context.Context, id string) (int64, error) {
	tag, err := q.db.Exec(ctx, softDeletePerson, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
