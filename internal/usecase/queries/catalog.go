package queries

import (
	"context"
	"strings"

	"pet-adoption/internal/infra"
	"pet-adoption/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPetNotFound = errs.New("pet not found")
)

const MaxSearchLength = 100

type CatalogQueries interface {
	ListAvailable(ctx context.Context) ([]*PetView, error)
	Search(ctx context.Context, q string) ([]*PetView, error)
	GetPet(ctx context.Context, id uuid.UUID) (*PetView, error)
	// GetOwnedPet hides pets of other owners behind ErrPetNotFound
	GetOwnedPet(ctx context.Context, ownerID, id uuid.UUID) (*PetView, error)
	OwnerDashboard(ctx context.Context, ownerID uuid.UUID) (*OwnerDashboardView, error)
}

type CatalogReadStore interface {
	ListAvailable(ctx context.Context) ([]*PetView, error)
	SearchAvailable(ctx context.Context, term string) ([]*PetView, error)
	FindPet(ctx context.Context, id uuid.UUID) (*PetView, error)
	ListAvailableByOwner(ctx context.Context, ownerID uuid.UUID) ([]*PetView, error)
	ListSoldByOwner(ctx context.Context, ownerID uuid.UUID) ([]*SoldPetView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListAvailable(ctx context.Context) ([]*PetView, error) {
	return q.store.ListAvailable(ctx)
}

// Search matches name, type or breed; a blank term lists everything available.
func (q *catalogQueriesImpl) Search(ctx context.Context, term string) ([]*PetView, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return q.store.ListAvailable(ctx)
	}
	if len(term) > MaxSearchLength {
		term = term[:MaxSearchLength]
	}
	return q.store.SearchAvailable(ctx, term)
}

func (q *catalogQueriesImpl) GetPet(ctx context.Context, id uuid.UUID) (*PetView, error) {
	view, err := q.store.FindPet(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *catalogQueriesImpl) GetOwnedPet(ctx context.Context, ownerID, id uuid.UUID) (*PetView, error) {
	view, err := q.GetPet(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.OwnerID != ownerID {
		return nil, ErrPetNotFound
	}
	return view, nil
}

func (q *catalogQueriesImpl) OwnerDashboard(ctx context.Context, ownerID uuid.UUID) (*OwnerDashboardView, error) {
	available, err := q.store.ListAvailableByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	sold, err := q.store.ListSoldByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return &OwnerDashboardView{Available: available, Sold: sold}, nil
}
