package readstore

import (
	"context"
	"time"

	"pet-adoption/internal/infra/db"
	"pet-adoption/internal/usecase/queries"

	"github.com/google/uuid"
)

const petViewColumns = `
SELECT p.id, p.owner_id, o.name AS owner_name, p.name, p.species, p.breed, p.age, p.gender,
       p.description, p.price_cents, COALESCE(p.image_url, '') AS image_url, p.status, p.created_at
FROM pets p
JOIN accounts o ON o.id = p.owner_id`

const (
	listAvailablePetsSQL = petViewColumns + `
WHERE p.status = 'available'
ORDER BY p.created_at DESC, p.id`

	searchAvailablePetsSQL = petViewColumns + `
WHERE p.status = 'available'
  AND (p.name ILIKE $1 OR p.species ILIKE $1 OR p.breed ILIKE $1)
ORDER BY p.created_at DESC, p.id`

	findPetViewSQL = petViewColumns + `
WHERE p.id = $1`

	listAvailablePetsByOwnerSQL = petViewColumns + `
WHERE p.owner_id = $1 AND p.status = 'available'
ORDER BY p.created_at DESC, p.id`

	listSoldPetsByOwnerSQL = `
SELECT p.id AS pet_id, p.name AS pet_name, p.species, a.name AS adopter_name,
       pay.amount_cents, h.adopted_at
FROM adoption_history h
JOIN pets p ON p.id = h.pet_id
JOIN accounts a ON a.id = h.adopter_id
LEFT JOIN payments pay ON pay.id = h.payment_id
WHERE h.owner_id = $1
ORDER BY h.adopted_at DESC`
)

type petRecord struct {
	ID          uuid.UUID `db:"id"`
	OwnerID     uuid.UUID `db:"owner_id"`
	OwnerName   string    `db:"owner_name"`
	Name        string    `db:"name"`
	Species     string    `db:"species"`
	Breed       string    `db:"breed"`
	Age         int       `db:"age"`
	Gender      string    `db:"gender"`
	Description string    `db:"description"`
	PriceCents  int64     `db:"price_cents"`
	ImageURL    string    `db:"image_url"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

type soldPetRecord struct {
	PetID       uuid.UUID `db:"pet_id"`
	PetName     string    `db:"pet_name"`
	Species     string    `db:"species"`
	AdopterName string    `db:"adopter_name"`
	AmountCents *int64    `db:"amount_cents"`
	AdoptedAt   time.Time `db:"adopted_at"`
}

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: dbtx}
}

func (s *CatalogReadStore) ListAvailable(ctx context.Context) ([]*queries.PetView, error) {
	return selectViews[petRecord, queries.PetView](ctx, s.db, "failed to list available pets", listAvailablePetsSQL)
}

func (s *CatalogReadStore) SearchAvailable(ctx context.Context, term string) ([]*queries.PetView, error) {
	return selectViews[petRecord, queries.PetView](ctx, s.db, "failed to search pets", searchAvailablePetsSQL, containsPattern(term))
}

func (s *CatalogReadStore) FindPet(ctx context.Context, id uuid.UUID) (*queries.PetView, error) {
	return selectView[petRecord, queries.PetView](ctx, s.db, "pet not found", "failed to find pet", findPetViewSQL, id)
}

func (s *CatalogReadStore) ListAvailableByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.PetView, error) {
	return selectViews[petRecord, queries.PetView](ctx, s.db, "failed to list owner pets", listAvailablePetsByOwnerSQL, ownerID)
}

func (s *CatalogReadStore) ListSoldByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.SoldPetView, error) {
	return selectViews[soldPetRecord, queries.SoldPetView](ctx, s.db, "failed to list sold pets", listSoldPetsByOwnerSQL, ownerID)
}
