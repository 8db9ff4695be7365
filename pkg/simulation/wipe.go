package simulation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teskilat/backend/internal/storage"
	"github.com/teskilat/backend/pkg/leaselock"
	"github.com/teskilat/backend/pkg/logger"
)

// ErrBlobPurge marks a wipe whose relational phase committed but whose blob
// phase failed. The database is already empty; retrying the wipe clears the
// remaining objects.
var ErrBlobPurge = errors.New("blob purge failed after relational wipe")

// ErrWipeInProgress is returned when another wipe holds the lease.
var ErrWipeInProgress = errors.New("a wipe is already in progress")

type WipeResult struct {
	Message      string `json:"message"`
	FilesRemoved int    `json:"filesRemoved"`
}

// Wiper irreversibly clears the relational store and the attachment bucket.
type Wiper struct {
	pool  *pgxpool.Pool
	s3    *s3.Client
	locks *leaselock.Client
}

func NewWiper(pool *pgxpool.Pool, s3Client *s3.Client, locks *leaselock.Client) *Wiper {
	return &Wiper{pool: pool, s3: s3Client, locks: locks}
}

const wipeTables = `
TRUNCATE TABLE
	file,
	event_to_event,
	event_to_organization,
	event_to_person,
	org_to_org_relation,
	person_to_org_relation,
	person_to_person_relation,
	event,
	organization,
	person
CASCADE`

// Run truncates every entity, relationship, and attachment table, then
// removes every object from the attachment bucket. The two phases are
// sequential and independently atomic; there is no cross-store transaction,
// so a blob-phase failure leaves an empty database with orphaned objects
// (reported as ErrBlobPurge, safe to retry).
func (w *Wiper) Run(ctx context.Context) (*WipeResult, error) {
	lease, err := w.locks.Acquire(ctx, "simulation:wipe", leaselock.Options{
		TTL: 2 * time.Minute,
	})
	if err != nil {
		if errors.Is(err, leaselock.ErrBusy) {
			return nil, ErrWipeInProgress
		}
		return nil, fmt.Errorf("failed to acquire wipe lease: %w", err)
	}
	defer lease.Release(context.Background())

	if _, err := w.pool.Exec(ctx, wipeTables); err != nil {
		return nil, fmt.Errorf("failed to truncate tables: %w", err)
	}
	logger.Info("Wipe: relational store truncated")

	filesRemoved, err := w.purgeBlobs(ctx)
	if err != nil {
		logger.Error("Wipe: blob purge failed, objects may be orphaned",
			"bucket", storage.Bucket(), "err", err)
		return nil, fmt.Errorf("%w: %v", ErrBlobPurge, err)
	}

	logger.Info("Wipe: completed", "files_removed", filesRemoved)
	return &WipeResult{
		Message:      "All data wiped",
		FilesRemoved: filesRemoved,
	}, nil
}

func (w *Wiper) purgeBlobs(ctx context.Context) (int, error) {
	exists, err := storage.BucketExists(ctx, w.s3)
	if err != nil {
		return 0, err
	}
	if !exists {
		// Nothing provisioned yet, nothing to purge.
		return 0, nil
	}

	keys, err := storage.ListAllObjects(ctx, w.s3)
	if err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}

	if err := storage.DeleteObjects(ctx, w.s3, keys); err != nil {
		return 0, err
	}
	return len(keys), nil
}
