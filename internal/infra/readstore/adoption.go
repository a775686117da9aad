package readstore

import (
	"context"
	"time"

	"pet-adoption/internal/domain/adoption"
	"pet-adoption/internal/infra/db"
	"pet-adoption/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	listRequestsByAdopterSQL = `
SELECT r.id, r.pet_id, p.name AS pet_name, p.species, COALESCE(p.image_url, '') AS image_url,
       r.message, r.status, r.created_at
FROM adoption_requests r
JOIN pets p ON p.id = r.pet_id
WHERE r.adopter_id = $1 AND ($2::text IS NULL OR r.status = $2)
ORDER BY r.created_at DESC, r.id`

	listRequestsByOwnerSQL = `
SELECT r.id, r.pet_id, p.name AS pet_name, a.id AS adopter_id, a.name AS adopter_name,
       a.email AS adopter_email, a.phone AS adopter_phone, r.message, r.status, r.created_at
FROM adoption_requests r
JOIN pets p ON p.id = r.pet_id
JOIN accounts a ON a.id = r.adopter_id
WHERE p.owner_id = $1
ORDER BY r.created_at DESC, r.id`

	payableColumns = `
SELECT r.id, r.pet_id, p.name AS pet_name, p.price_cents, COALESCE(p.image_url, '') AS image_url,
       o.name AS owner_name, r.created_at
FROM adoption_requests r
JOIN pets p ON p.id = r.pet_id
JOIN accounts o ON o.id = p.owner_id
WHERE r.adopter_id = $1 AND r.status = 'Approved' AND p.status = 'available'`

	listPayableSQL = payableColumns + `
ORDER BY r.created_at DESC, r.id`

	findPayableSQL = payableColumns + `
  AND r.id = $2`

	listHistorySQL = `
SELECT h.id, h.pet_id, p.name AS pet_name, p.species, o.name AS owner_name,
       pay.amount_cents, pay.reference AS payment_reference, h.adopted_at
FROM adoption_history h
JOIN pets p ON p.id = h.pet_id
JOIN accounts o ON o.id = h.owner_id
LEFT JOIN payments pay ON pay.id = h.payment_id
WHERE h.adopter_id = $1
ORDER BY h.adopted_at DESC, h.id`
)

type adopterRequestRecord struct {
	ID        uuid.UUID `db:"id"`
	PetID     uuid.UUID `db:"pet_id"`
	PetName   string    `db:"pet_name"`
	Species   string    `db:"species"`
	ImageURL  string    `db:"image_url"`
	Message   string    `db:"message"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

type ownerRequestRecord struct {
	ID           uuid.UUID `db:"id"`
	PetID        uuid.UUID `db:"pet_id"`
	PetName      string    `db:"pet_name"`
	AdopterID    uuid.UUID `db:"adopter_id"`
	AdopterName  string    `db:"adopter_name"`
	AdopterEmail string    `db:"adopter_email"`
	AdopterPhone string    `db:"adopter_phone"`
	Message      string    `db:"message"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}

type payableRecord struct {
	ID         uuid.UUID `db:"id"`
	PetID      uuid.UUID `db:"pet_id"`
	PetName    string    `db:"pet_name"`
	PriceCents int64     `db:"price_cents"`
	ImageURL   string    `db:"image_url"`
	OwnerName  string    `db:"owner_name"`
	CreatedAt  time.Time `db:"created_at"`
}

type historyRecord struct {
	ID               uuid.UUID `db:"id"`
	PetID            uuid.UUID `db:"pet_id"`
	PetName          string    `db:"pet_name"`
	Species          string    `db:"species"`
	OwnerName        string    `db:"owner_name"`
	AmountCents      *int64    `db:"amount_cents"`
	PaymentReference *string   `db:"payment_reference"`
	AdoptedAt        time.Time `db:"adopted_at"`
}

type AdoptionReadStore struct {
	db db.DBTX
}

func NewAdoptionReadStore(dbtx db.DBTX) *AdoptionReadStore {
	return &AdoptionReadStore{db: dbtx}
}

func (s *AdoptionReadStore) ListByAdopter(ctx context.Context, adopterID uuid.UUID, status *adoption.RequestStatus) ([]*queries.AdopterRequestView, error) {
	var statusArg *string
	if status != nil {
		v := status.String()
		statusArg = &v
	}
	return selectViews[adopterRequestRecord, queries.AdopterRequestView](ctx, s.db,
		"failed to list adopter requests", listRequestsByAdopterSQL, adopterID, statusArg)
}

func (s *AdoptionReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.OwnerRequestView, error) {
	return selectViews[ownerRequestRecord, queries.OwnerRequestView](ctx, s.db,
		"failed to list owner requests", listRequestsByOwnerSQL, ownerID)
}

func (s *AdoptionReadStore) ListPayable(ctx context.Context, adopterID uuid.UUID) ([]*queries.PayableRequestView, error) {
	return selectViews[payableRecord, queries.PayableRequestView](ctx, s.db,
		"failed to list payable requests", listPayableSQL, adopterID)
}

func (s *AdoptionReadStore) FindPayable(ctx context.Context, adopterID, requestID uuid.UUID) (*queries.PayableRequestView, error) {
	return selectView[payableRecord, queries.PayableRequestView](ctx, s.db,
		"payable request not found", "failed to find payable request", findPayableSQL, adopterID, requestID)
}

func (s *AdoptionReadStore) ListHistory(ctx context.Context, adopterID uuid.UUID) ([]*queries.HistoryView, error) {
	return selectViews[historyRecord, queries.HistoryView](ctx, s.db,
		"failed to list adoption history", listHistorySQL, adopterID)
}
