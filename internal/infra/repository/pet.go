package repository

import (
	"context"
	"time"

	"pet-adoption/internal/domain/pet"
	"pet-adoption/internal/infra"
	"pet-adoption/internal/infra/db"
	"pet-adoption/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertPetSQL = `
INSERT INTO pets (id, owner_id, name, species, breed, age, gender, description, price_cents, image_url, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)`

	lockPetSQL = `
SELECT id, owner_id, name, species, breed, age, gender, description, price_cents, image_url, status, created_at
FROM pets
WHERE id = $1
FOR UPDATE`

	updatePetSQL = `
UPDATE pets
SET name = $2, species = $3, breed = $4, age = $5, gender = $6, description = $7,
    price_cents = $8, image_url = $9, updated_at = $10
WHERE id = $1`

	deletePetSQL = `DELETE FROM pets WHERE id = $1`

	markPetAdoptedSQL = `
UPDATE pets
SET status = 'adopted', updated_at = $2
WHERE id = $1 AND status = 'available'`
)

type PetRepository struct {
	db  db.DBTX
	now func() time.Time
}

func NewPetRepository(dbtx db.DBTX) *PetRepository {
	return &PetRepository{db: dbtx, now: time.Now}
}

func (r *PetRepository) Create(ctx context.Context, p *pet.Pet) error {
	attrs := p.Attributes()
	_, err := r.db.Exec(ctx, insertPetSQL,
		p.ID(),
		p.OwnerID(),
		attrs.Name,
		attrs.Species,
		attrs.Breed,
		attrs.Age,
		attrs.Gender,
		attrs.Description,
		attrs.Price.Cents(),
		pgconv.NullableString(p.ImageURL()),
		p.Status().String(),
		p.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create pet", err)
	}
	return nil
}

func (r *PetRepository) LockByID(ctx context.Context, id uuid.UUID) (*pet.Pet, error) {
	var (
		row      petRow
		imageURL pgtype.Text
	)
	err := r.db.QueryRow(ctx, lockPetSQL, id).Scan(
		&row.ID,
		&row.OwnerID,
		&row.Name,
		&row.Species,
		&row.Breed,
		&row.Age,
		&row.Gender,
		&row.Description,
		&row.PriceCents,
		&imageURL,
		&row.Status,
		&row.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock pet", err)
	}
	row.ImageURL = pgconv.StringFromPgtype(imageURL)

	return row.toDomain()
}

func (r *PetRepository) Update(ctx context.Context, p *pet.Pet) error {
	attrs := p.Attributes()
	tag, err := r.db.Exec(ctx, updatePetSQL,
		p.ID(),
		attrs.Name,
		attrs.Species,
		attrs.Breed,
		attrs.Age,
		attrs.Gender,
		attrs.Description,
		attrs.Price.Cents(),
		pgconv.NullableString(p.ImageURL()),
		r.now(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update pet", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "pet not found")
	}
	return nil
}

func (r *PetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deletePetSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete pet", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "pet not found")
	}
	return nil
}

func (r *PetRepository) MarkAdopted(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, markPetAdoptedSQL, id, r.now())
	if err != nil {
		return infra.WrapRepoErr("failed to mark pet adopted", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindConflict, "pet is not available")
	}
	return nil
}

type petRow struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Species     string
	Breed       string
	Age         int
	Gender      string
	Description string
	PriceCents  int64
	ImageURL    string
	Status      string
	CreatedAt   time.Time
}

func (row petRow) toDomain() (*pet.Pet, error) {
	status, err := pet.NewStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid pet status in database", err)
	}
	price, err := pet.NewMoney(row.PriceCents)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid pet price in database", err)
	}
	attrs := pet.Attributes{
		Name:        row.Name,
		Species:     row.Species,
		Breed:       row.Breed,
		Age:         row.Age,
		Gender:      row.Gender,
		Description: row.Description,
		Price:       price,
	}
	return pet.ReconstructPet(row.ID, row.OwnerID, attrs, row.ImageURL, status, row.CreatedAt), nil
}
