package repository

import (
	"context"

	"pet-adoption/internal/domain/adoption"
	"pet-adoption/internal/infra"
	"pet-adoption/internal/infra/db"
	"pet-adoption/internal/pkg/pgconv"
)

const (
	insertPaymentSQL = `
INSERT INTO payments (id, request_id, adopter_id, owner_id, pet_id, amount_cents, mode, reference, paid_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	insertHistorySQL = `
INSERT INTO adoption_history (id, adopter_id, pet_id, owner_id, payment_id, adopted_at)
VALUES ($1, $2, $3, $4, $5, $6)`
)

type PaymentRepository struct {
	db db.DBTX
}

func NewPaymentRepository(dbtx db.DBTX) *PaymentRepository {
	return &PaymentRepository{db: dbtx}
}

func (r *PaymentRepository) Create(ctx context.Context, p *adoption.Payment) error {
	_, err := r.db.Exec(ctx, insertPaymentSQL,
		p.ID,
		p.RequestID,
		p.AdopterID,
		p.OwnerID,
		p.PetID,
		p.Amount.Cents(),
		p.Mode,
		p.Reference,
		p.PaidAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

type HistoryRepository struct {
	db db.DBTX
}

func NewHistoryRepository(dbtx db.DBTX) *HistoryRepository {
	return &HistoryRepository{db: dbtx}
}

func (r *HistoryRepository) Create(ctx context.Context, h *adoption.History) error {
	_, err := r.db.Exec(ctx, insertHistorySQL,
		h.ID,
		h.AdopterID,
		h.PetID,
		h.OwnerID,
		pgconv.UUIDPtrToPgtype(h.PaymentID),
		h.AdoptedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create adoption history", err)
	}
	return nil
}
