package db

import "context"

const fileColumns = `id, file_name, file_type, file_url, file_size, description, uploaded_by,
	person_id, organization_id, event_id, person_to_person_relation_id,
	person_to_org_relation_id, org_to_org_relation_id, event_to_event_relation_id, created_at`

func scanFile(row rowScanner) (File, error) {
	var f File
	err := row.Scan(
		&f.ID,
		&f.FileName,
		&f.FileType,
		&f.FileURL,
		&f.FileSize,
		&f.Description,
		&f.UploadedBy,
		&f.PersonID,
		&f.OrganizationID,
		&f.EventID,
		&f.PersonToPersonRelationID,
		&f.PersonToOrgRelationID,
		&f.OrgToOrgRelationID,
		&f.EventToEventRelationID,
		&f.CreatedAt,
	)
	return f, err
}

type CreateFileParams struct {
	FileName       string
	FileType       string
	FileURL        string
	FileSize       *int32
	Description    *string
	UploadedBy     *string
	PersonID       *string
	OrganizationID *string
	EventID        *string
}

const createFile = `
INSERT INTO file (
	file_name, file_type, file_url, file_size, description, uploaded_by,
	person_id, organization_id, event_id
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + fileColumns

func (q *Queries) CreateFile(ctx context.Context, arg CreateFileParams) (File, error) {
	row := q.db.QueryRow(ctx, createFile,
		arg.FileName,
		arg.FileType,
		arg.FileURL,
		arg.FileSize,
		arg.Description,
		arg.UploadedBy,
		arg.PersonID,
		arg.OrganizationID,
		arg.EventID,
	)
	return scanFile(row)
}

const getFile = `
SELECT ` + fileColumns + `
FROM file
WHERE id = $1 AND deleted_at IS NULL`

func (q *Queries) GetFile(ctx context.Context, id string) (File, error) {
	return scanFile(q.db.QueryRow(ctx, getFile, id))
}

const listFilesByEntity = `
SELECT ` + fileColumns + `
FROM file
WHERE deleted_at IS NULL
  AND (person_id = $1 OR organization_id = $1 OR event_id = $1)
ORDER BY created_at DESC`

// ListFilesByEntity lists live attachments associated with a person,
// organization, or event id.
func (q *Queries) ListFilesByEntity(ctx context.Context, entityID string) ([]File, error) {
	rows, err := q.db.Query(ctx, listFilesByEntity, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	files := make([]File, 0)
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

const softDeleteFile = `
UPDATE file SET deleted_at = now()
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + fileColumns

// SoftDeleteFile marks the row deleted and returns it so the caller can
// queue the blob removal.
func (q *Queries) SoftDeleteFile(ctx context.Context, id string) (File, error) {
	return scanFile(q.db.QueryRow(ctx, softDeleteFile, id))
}
