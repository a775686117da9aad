package readstore

import (
	"context"
	"time"

	"pet-adoption/internal/domain/account"
	"pet-adoption/internal/domain/adoption"
	"pet-adoption/internal/domain/pet"
	"pet-adoption/internal/infra"
	"pet-adoption/internal/infra/db"
	"pet-adoption/internal/pkg/pgconv"
	"pet-adoption/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	findAccountByEmailSQL = `
SELECT id, kind, name, email, password_hash
FROM accounts
WHERE kind = $1 AND email = $2`

	findPetSnapshotSQL = `
SELECT id, owner_id, name, species, breed, age, gender, description, price_cents,
       COALESCE(image_url, ''), status, created_at
FROM pets
WHERE id = $1`

	findRequestSnapshotSQL = `
SELECT r.id, r.adopter_id, r.pet_id, p.owner_id, r.message, r.status, r.created_at
FROM adoption_requests r
JOIN pets p ON p.id = r.pet_id
WHERE r.id = $1`
)

// CommandReadStore serves the write side with minimal snapshots
type CommandReadStore struct {
	db db.DBTX
}

func NewCommandReadStore(dbtx db.DBTX) *CommandReadStore {
	return &CommandReadStore{db: dbtx}
}

func (s *CommandReadStore) AccountByEmail(ctx context.Context, kind account.Kind, email string) (*shared.AccountSnapshot, error) {
	var (
		snap    shared.AccountSnapshot
		rawKind string
	)
	err := s.db.QueryRow(ctx, findAccountByEmailSQL, kind.String(), email).Scan(
		&snap.ID, &rawKind, &snap.Name, &snap.Email, &snap.PasswordHash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find account by email", err)
	}
	snap.Kind = account.Kind(rawKind)
	return &snap, nil
}

func (s *CommandReadStore) PetByID(ctx context.Context, id uuid.UUID) (*shared.PetSnapshot, error) {
	var (
		snap   shared.PetSnapshot
		status string
	)
	err := s.db.QueryRow(ctx, findPetSnapshotSQL, id).Scan(
		&snap.ID, &snap.OwnerID, &snap.Name, &snap.Species, &snap.Breed, &snap.Age, &snap.Gender,
		&snap.Description, &snap.PriceCents, &snap.ImageURL, &status, &snap.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pet", err)
	}
	snap.Status = pet.Status(status)
	return &snap, nil
}

func (s *CommandReadStore) RequestByID(ctx context.Context, id uuid.UUID) (*shared.RequestSnapshot, error) {
	var (
		snap      shared.RequestSnapshot
		status    string
		createdAt time.Time
	)
	err := s.db.QueryRow(ctx, findRequestSnapshotSQL, id).Scan(
		&snap.ID, &snap.AdopterID, &snap.PetID, &snap.PetOwnerID, &snap.Message, &status, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("adoption request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find adoption request", err)
	}
	snap.Status = adoption.RequestStatus(status)
	snap.CreatedAt = createdAt
	return &snap, nil
}
