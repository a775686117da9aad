package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"pet-adoption/internal/domain/account"
	"pet-adoption/internal/domain/adoption"
	"pet-adoption/internal/domain/pet"
	"pet-adoption/internal/infra"
	"pet-adoption/internal/usecase/queries"
	"pet-adoption/internal/usecase/shared"

	"github.com/google/uuid"
)

type stateReads struct{ state *memoryState }

func (r stateReads) AccountByEmail(_ context.Context, kind account.Kind, email string) (*shared.AccountSnapshot, error) {
	for _, a := range r.state.accounts {
		if a.Kind == kind.String() && a.Email == email {
			return &shared.AccountSnapshot{
				ID:           a.ID,
				Kind:         account.Kind(a.Kind),
				Name:         a.Name,
				Email:        a.Email,
				PasswordHash: a.PasswordHash,
			}, nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "account not found")
}

func (r stateReads) PetByID(_ context.Context, id uuid.UUID) (*shared.PetSnapshot, error) {
	snap, ok := r.state.pets[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "pet not found")
	}
	return &snap, nil
}

func (r stateReads) RequestByID(_ context.Context, id uuid.UUID) (*shared.RequestSnapshot, error) {
	req, ok := r.state.requests[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "adoption request not found")
	}
	p, ok := r.state.pets[req.PetID]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "adoption request not found")
	}
	return &shared.RequestSnapshot{
		ID:         req.ID,
		AdopterID:  req.AdopterID,
		PetID:      req.PetID,
		PetOwnerID: p.OwnerID,
		Message:    req.Message,
		Status:     req.Status,
		CreatedAt:  req.CreatedAt,
	}, nil
}

// lockedReads reads committed state outside of a transaction
type lockedReads struct{ store *Store }

func (r *lockedReads) AccountByEmail(ctx context.Context, kind account.Kind, email string) (snap *shared.AccountSnapshot, err error) {
	r.store.view(func(st *memoryState) { snap, err = stateReads{st}.AccountByEmail(ctx, kind, email) })
	return snap, err
}

func (r *lockedReads) PetByID(ctx context.Context, id uuid.UUID) (snap *shared.PetSnapshot, err error) {
	r.store.view(func(st *memoryState) { snap, err = stateReads{st}.PetByID(ctx, id) })
	return snap, err
}

func (r *lockedReads) RequestByID(ctx context.Context, id uuid.UUID) (snap *shared.RequestSnapshot, err error) {
	r.store.view(func(st *memoryState) { snap, err = stateReads{st}.RequestByID(ctx, id) })
	return snap, err
}

type CatalogReadStore struct{ store *Store }

func NewCatalogReadStore(store *Store) *CatalogReadStore {
	return &CatalogReadStore{store: store}
}

func (s *CatalogReadStore) ListAvailable(_ context.Context) ([]*queries.PetView, error) {
	return s.pets(func(p shared.PetSnapshot) bool { return p.Status == pet.StatusAvailable }), nil
}

func (s *CatalogReadStore) SearchAvailable(_ context.Context, term string) ([]*queries.PetView, error) {
	needle := strings.ToLower(term)
	return s.pets(func(p shared.PetSnapshot) bool {
		if p.Status != pet.StatusAvailable {
			return false
		}
		return strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Species), needle) ||
			strings.Contains(strings.ToLower(p.Breed), needle)
	}), nil
}

func (s *CatalogReadStore) FindPet(_ context.Context, id uuid.UUID) (*queries.PetView, error) {
	views := s.pets(func(p shared.PetSnapshot) bool { return p.ID == id })
	if len(views) == 0 {
		return nil, infra.NewRepoErr(infra.KindNotFound, "pet not found")
	}
	return views[0], nil
}

func (s *CatalogReadStore) ListAvailableByOwner(_ context.Context, ownerID uuid.UUID) ([]*queries.PetView, error) {
	return s.pets(func(p shared.PetSnapshot) bool {
		return p.OwnerID == ownerID && p.Status == pet.StatusAvailable
	}), nil
}

func (s *CatalogReadStore) ListSoldByOwner(_ context.Context, ownerID uuid.UUID) ([]*queries.SoldPetView, error) {
	var views []*queries.SoldPetView
	s.store.view(func(st *memoryState) {
		for _, h := range st.histories {
			if h.OwnerID != ownerID {
				continue
			}
			p := st.pets[h.PetID]
			views = append(views, &queries.SoldPetView{
				PetID:       h.PetID,
				PetName:     p.Name,
				Species:     p.Species,
				AdopterName: st.accounts[h.AdopterID].Name,
				AmountCents: paymentAmount(st, h.PaymentID),
				AdoptedAt:   h.AdoptedAt,
			})
		}
	})
	slices.SortFunc(views, func(a, b *queries.SoldPetView) int { return b.AdoptedAt.Compare(a.AdoptedAt) })
	return views, nil
}

func (s *CatalogReadStore) pets(match func(shared.PetSnapshot) bool) []*queries.PetView {
	var views []*queries.PetView
	s.store.view(func(st *memoryState) {
		for _, p := range st.pets {
			if match(p) {
				views = append(views, toPetView(st, p))
			}
		}
	})
	slices.SortFunc(views, func(a, b *queries.PetView) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), strings.Compare(a.ID.String(), b.ID.String()))
	})
	return views
}

type AdoptionReadStore struct{ store *Store }

func NewAdoptionReadStore(store *Store) *AdoptionReadStore {
	return &AdoptionReadStore{store: store}
}

func (s *AdoptionReadStore) ListByAdopter(_ context.Context, adopterID uuid.UUID, status *adoption.RequestStatus) ([]*queries.AdopterRequestView, error) {
	var views []*queries.AdopterRequestView
	s.store.view(func(st *memoryState) {
		for _, r := range st.requests {
			if r.AdopterID != adopterID || (status != nil && r.Status != *status) {
				continue
			}
			p := st.pets[r.PetID]
			views = append(views, &queries.AdopterRequestView{
				ID:        r.ID,
				PetID:     r.PetID,
				PetName:   p.Name,
				Species:   p.Species,
				ImageURL:  p.ImageURL,
				Message:   r.Message,
				Status:    r.Status.String(),
				CreatedAt: r.CreatedAt,
			})
		}
	})
	slices.SortFunc(views, func(a, b *queries.AdopterRequestView) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return views, nil
}

func (s *AdoptionReadStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*queries.OwnerRequestView, error) {
	var views []*queries.OwnerRequestView
	s.store.view(func(st *memoryState) {
		for _, r := range st.requests {
			p := st.pets[r.PetID]
			if p.OwnerID != ownerID {
				continue
			}
			adopter := st.accounts[r.AdopterID]
			views = append(views, &queries.OwnerRequestView{
				ID:           r.ID,
				PetID:        r.PetID,
				PetName:      p.Name,
				AdopterID:    adopter.ID,
				AdopterName:  adopter.Name,
				AdopterEmail: adopter.Email,
				AdopterPhone: adopter.Phone,
				Message:      r.Message,
				Status:       r.Status.String(),
				CreatedAt:    r.CreatedAt,
			})
		}
	})
	slices.SortFunc(views, func(a, b *queries.OwnerRequestView) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return views, nil
}

func (s *AdoptionReadStore) ListPayable(_ context.Context, adopterID uuid.UUID) ([]*queries.PayableRequestView, error) {
	return s.payable(adopterID, uuid.Nil), nil
}

func (s *AdoptionReadStore) FindPayable(_ context.Context, adopterID, requestID uuid.UUID) (*queries.PayableRequestView, error) {
	views := s.payable(adopterID, requestID)
	if len(views) == 0 {
		return nil, infra.NewRepoErr(infra.KindNotFound, "payable request not found")
	}
	return views[0], nil
}

// payable lists approved requests whose pet can still be paid for; a
// non-nil requestID narrows the result to that request.
func (s *AdoptionReadStore) payable(adopterID, requestID uuid.UUID) []*queries.PayableRequestView {
	var views []*queries.PayableRequestView
	s.store.view(func(st *memoryState) {
		for _, r := range st.requests {
			if r.AdopterID != adopterID || r.Status != adoption.StatusApproved {
				continue
			}
			if requestID != uuid.Nil && r.ID != requestID {
				continue
			}
			p := st.pets[r.PetID]
			if p.Status != pet.StatusAvailable {
				continue
			}
			views = append(views, &queries.PayableRequestView{
				ID:         r.ID,
				PetID:      r.PetID,
				PetName:    p.Name,
				PriceCents: p.PriceCents,
				ImageURL:   p.ImageURL,
				OwnerName:  st.accounts[p.OwnerID].Name,
				CreatedAt:  r.CreatedAt,
			})
		}
	})
	slices.SortFunc(views, func(a, b *queries.PayableRequestView) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return views
}

func (s *AdoptionReadStore) ListHistory(_ context.Context, adopterID uuid.UUID) ([]*queries.HistoryView, error) {
	var views []*queries.HistoryView
	s.store.view(func(st *memoryState) {
		for _, h := range st.histories {
			if h.AdopterID != adopterID {
				continue
			}
			p := st.pets[h.PetID]
			view := &queries.HistoryView{
				ID:          h.ID,
				PetID:       h.PetID,
				PetName:     p.Name,
				Species:     p.Species,
				OwnerName:   st.accounts[h.OwnerID].Name,
				AmountCents: paymentAmount(st, h.PaymentID),
				AdoptedAt:   h.AdoptedAt,
			}
			if h.PaymentID != nil {
				if pay, ok := st.payments[*h.PaymentID]; ok {
					ref := pay.Reference
					view.PaymentReference = &ref
				}
			}
			views = append(views, view)
		}
	})
	slices.SortFunc(views, func(a, b *queries.HistoryView) int { return b.AdoptedAt.Compare(a.AdoptedAt) })
	return views, nil
}

func toPetView(st *memoryState, p shared.PetSnapshot) *queries.PetView {
	return &queries.PetView{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		OwnerName:   st.accounts[p.OwnerID].Name,
		Name:        p.Name,
		Species:     p.Species,
		Breed:       p.Breed,
		Age:         p.Age,
		Gender:      p.Gender,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		ImageURL:    p.ImageURL,
		Status:      p.Status.String(),
		CreatedAt:   p.CreatedAt,
	}
}

func paymentAmount(st *memoryState, paymentID *uuid.UUID) *int64 {
	if paymentID == nil {
		return nil
	}
	pay, ok := st.payments[*paymentID]
	if !ok {
		return nil
	}
	cents := pay.Amount.Cents()
	return &cents
}
