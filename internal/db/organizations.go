package db

import (
	"context"
	"time"
)

const organizationColumns = `id, name, type, industry, country, address, website, phone, email,
	founded_at, description, notes, tags, risk_level, created_at, updated_at`

func scanOrganization(row rowScanner) (Organization, error) {
	var o Organization
	err := row.Scan(
		&o.ID,
		&o.Name,
		&o.Type,
		&o.Industry,
		&o.Country,
		&o.Address,
		&o.Website,
		&o.Phone,
		&o.Email,
		&o.FoundedAt,
		&o.Description,
		&o.Notes,
		&o.Tags,
		&o.RiskLevel,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

type CreateOrganizationParams struct {
	Name        string
	Type        *string
	Industry    *string
	Country     *string
	Address     *string
	Website     *string
	Phone       []string
	Email       []string
	FoundedAt   *time.Time
	Description *string
	Notes       *string
	Tags        []string
	RiskLevel   *string
}

const createOrganization = `
INSERT INTO organization (
	name, type, industry, country, address, website, phone, email, founded_at,
	description, notes, tags, risk_level
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
)
RETURNING ` + organizationColumns

func (q *Queries) CreateOrganization(ctx context.Context, arg CreateOrganizationParams) (Organization, error) {
	row := q.db.QueryRow(ctx, createOrganization,
		arg.Name,
		arg.Type,
		arg.Industry,
		arg.Country,
		arg.Address,
		arg.Website,
		arg.Phone,
		arg.Email,
		arg.FoundedAt,
		arg.Description,
		arg.Notes,
		arg.Tags,
		arg.RiskLevel,
	)
	return scanOrganization(row)
}

const getOrganization = `
SELECT ` + organizationColumns + `
FROM organization
WHERE id = $1 AND deleted_at IS NULL`

func (q *Queries) GetOrganization(ctx context.Context, id string) (Organization, error) {
	return scanOrganization(q.db.QueryRow(ctx, getOrganization, id))
}

type ListOrganizationsParams struct {
	Search string
	Limit  int32
	Offset int32
}

const listOrganizations = `
SELECT ` + organizationColumns + `
FROM organization
WHERE deleted_at IS NULL
  AND ($1 = '' OR name ILIKE '%' || $1 || '%')
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

func (q *Queries) ListOrganizations(ctx context.Context, arg ListOrganizationsParams) ([]Organization, error) {
	rows, err := q.db.Query(ctx, listOrganizations, arg.Search, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orgs := make([]Organization, 0)
	for rows.Next() {
		o, err := scanOrganization(rows)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}

const countOrganizations = `
SELECT count(*)
FROM organization
WHERE deleted_at IS NULL
  AND ($1 = '' OR name ILIKE '%' || $1 || '%')`

const listAllOrganizations = `
SELECT ` + organizationColumns + `
FROM organization
WHERE deleted_at IS NULL
ORDER BY created_at DESC`

// ListAllOrganizations returns every live organization.
func (q *Queries) ListAllOrganizations(ctx context.Context) ([]Organization, error) {
	rows, err := q.db.Query(ctx, listAllOrganizations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orgs := make([]Organization, 0)
	for rows.Next() {
		o, err := scanOrganization(rows)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}

func (q *Queries) CountOrganizations(ctx context.Context, search string) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countOrganizations, search).Scan(&count)
	return count, err
}

type UpdateOrganizationParams struct {
	ID          string
	Name        *string
	Type        *string
	Industry    *string
	Country     *string
	Address     *string
	Website     *string
	Phone       []string
	Email       []string
	FoundedAt   *time.Time
	Description *string
	Notes       *string
	Tags        []string
	RiskLevel   *string
}

const updateOrganization = `
UPDATE organization SET
	name        = COALESCE($2, name),
	type        = COALESCE($3, type),
	industry    = COALESCE($4, industry),
	country     = COALESCE($5, country),
	address     = COALESCE($6, address),
	website     = COALESCE($7, website),
	phone       = COALESCE($8, phone),
	email       = COALESCE($9, email),
	founded_at  = COALESCE($10, founded_at),
	description = COALESCE($11, description),
	notes       = COALESCE($12, notes),
	tags        = COALESCE($13, tags),
	risk_level  = COALESCE($14, risk_level),
	updated_at  = now()
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + organizationColumns

func (q *Queries) UpdateOrganization(ctx context.Context, arg UpdateOrganizationParams) (Organization, error) {
	row := q.db.QueryRow(ctx, updateOrganization,
		arg.ID,
		arg.Name,
		arg.Type,
		arg.Industry,
		arg.Country,
		arg.Address,
		arg.Website,
		arg.Phone,
		arg.Email,
		arg.FoundedAt,
		arg.Description,
		arg.Notes,
		arg.Tags,
		arg.RiskLevel,
	)
	return scanOrganization(row)
}

const softDeleteOrganization = `
UPDATE organization SET deleted_at = now()
WHERE id = $1 AND deleted_at IS NULL`

func (q *Queries) SoftDeleteOrganization(ctx context.Context, id string) (int64, error) {
	tag, err := q.db.Exec(ctx, softDeleteOrganization, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
