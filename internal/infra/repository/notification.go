package repository

import (
	"context"
	"time"

	"pet-adoption/internal/infra"
	"pet-adoption/internal/infra/db"
	"pet-adoption/internal/pkg/pgconv"
	"pet-adoption/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	insertNotificationJobSQL = `
INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, 'queued')`

	claimDueNotificationJobsSQL = `
SELECT id, kind, topic, payload, attempts, run_at
FROM notification_jobs
WHERE status = 'queued' AND run_at <= $1
ORDER BY run_at
LIMIT $2
FOR UPDATE SKIP LOCKED`

	leaseNotificationJobsSQL = `
UPDATE notification_jobs
SET run_at = $2, updated_at = now()
WHERE id = ANY($1::uuid[]) AND status = 'queued'`

	markNotificationSentSQL = `
UPDATE notification_jobs
SET status = 'sent', attempts = attempts + 1, last_error = NULL, updated_at = now()
WHERE id = $1`

	markNotificationFailedSQL = `
UPDATE notification_jobs
SET status = $2, attempts = attempts + 1, last_error = $3, run_at = $4, updated_at = now()
WHERE id = $1`
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := r.db.Exec(ctx, insertNotificationJobSQL, kind, topic, payload, pgconv.TimeToPgtype(runAt))
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

func (r *NotificationRepository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]shared.NotificationJob, error) {
	rows, err := r.db.Query(ctx, claimDueNotificationJobsSQL, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	defer rows.Close()

	var jobs []shared.NotificationJob
	for rows.Next() {
		var job shared.NotificationJob
		if err := rows.Scan(&job.ID, &job.Kind, &job.Topic, &job.Payload, &job.Attempts, &job.RunAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification jobs", err)
	}
	return jobs, nil
}

func (r *NotificationRepository) Lease(ctx context.Context, ids []uuid.UUID, until time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}
	if _, err := r.db.Exec(ctx, leaseNotificationJobsSQL, keys, pgconv.TimeToPgtype(until)); err != nil {
		return infra.WrapRepoErr("failed to lease notification jobs", err)
	}
	return nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, markNotificationSentSQL, id); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastError string, retryAt time.Time, giveUp bool) error {
	status := "queued"
	if giveUp {
		status = "failed"
	}
	_, err := r.db.Exec(ctx, markNotificationFailedSQL, id, status, pgconv.NullableString(lastError), retryAt)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}
