package repository

import (
	"context"
	"time"

	"pet-adoption/internal/domain/adoption"
	"pet-adoption/internal/infra"
	"pet-adoption/internal/infra/db"

	"github.com/google/uuid"
)

const (
	insertRequestSQL = `
INSERT INTO adoption_requests (id, adopter_id, pet_id, message, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	hasPendingRequestSQL = `
SELECT EXISTS (
    SELECT 1 FROM adoption_requests
    WHERE adopter_id = $1 AND pet_id = $2 AND status = 'Pending'
)`

	updateRequestStatusSQL = `
UPDATE adoption_requests
SET status = $3, decided_at = $4
WHERE id = $1 AND status = $2`

	requestExistsSQL = `SELECT EXISTS (SELECT 1 FROM adoption_requests WHERE id = $1)`

	deleteRequestSQL = `DELETE FROM adoption_requests WHERE id = $1`
)

type RequestRepository struct {
	db db.DBTX
}

func NewRequestRepository(dbtx db.DBTX) *RequestRepository {
	return &RequestRepository{db: dbtx}
}

func (r *RequestRepository) Create(ctx context.Context, req *adoption.Request) error {
	_, err := r.db.Exec(ctx, insertRequestSQL,
		req.ID(),
		req.AdopterID(),
		req.PetID(),
		req.Message(),
		req.Status().String(),
		req.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create adoption request", err)
	}
	return nil
}

func (r *RequestRepository) HasPending(ctx context.Context, adopterID, petID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, hasPendingRequestSQL, adopterID, petID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check pending request", err)
	}
	return exists, nil
}

func (r *RequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to adoption.RequestStatus, decidedAt time.Time) error {
	tag, err := r.db.Exec(ctx, updateRequestStatusSQL, id, from.String(), to.String(), decidedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to update adoption request status", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRow(ctx, requestExistsSQL, id).Scan(&exists); err != nil {
		return infra.WrapRepoErr("failed to check adoption request", err)
	}
	if !exists {
		return infra.NewRepoErr(infra.KindNotFound, "adoption request not found")
	}
	return infra.NewRepoErr(infra.KindConflict, "adoption request status changed")
}

func (r *RequestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteRequestSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete adoption request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "adoption request not found")
	}
	return nil
}
