package queries

import (
	"context"

	"pet-adoption/internal/domain/adoption"
	"pet-adoption/internal/infra"
	"pet-adoption/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPayableRequestNotFound = errs.New("payment request not found")
)

type AdoptionQueries interface {
	AdopterRequests(ctx context.Context, adopterID uuid.UUID) ([]*AdopterRequestView, error)
	OwnerRequests(ctx context.Context, ownerID uuid.UUID) ([]*OwnerRequestView, error)
	PayableRequests(ctx context.Context, adopterID uuid.UUID) ([]*PayableRequestView, error)
	PayableRequest(ctx context.Context, adopterID, requestID uuid.UUID) (*PayableRequestView, error)
	History(ctx context.Context, adopterID uuid.UUID) ([]*HistoryView, error)
	AdopterDashboard(ctx context.Context, adopterID uuid.UUID) (*AdopterDashboardView, error)
}

type AdoptionReadStore interface {
	ListByAdopter(ctx context.Context, adopterID uuid.UUID, status *adoption.RequestStatus) ([]*AdopterRequestView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*OwnerRequestView, error)
	ListPayable(ctx context.Context, adopterID uuid.UUID) ([]*PayableRequestView, error)
	FindPayable(ctx context.Context, adopterID, requestID uuid.UUID) (*PayableRequestView, error)
	ListHistory(ctx context.Context, adopterID uuid.UUID) ([]*HistoryView, error)
}

type adoptionQueriesImpl struct {
	store   AdoptionReadStore
	catalog CatalogReadStore
}

func NewAdoptionQueries(store AdoptionReadStore, catalog CatalogReadStore) AdoptionQueries {
	return &adoptionQueriesImpl{store: store, catalog: catalog}
}

func (q *adoptionQueriesImpl) AdopterRequests(ctx context.Context, adopterID uuid.UUID) ([]*AdopterRequestView, error) {
	return q.store.ListByAdopter(ctx, adopterID, nil)
}

func (q *adoptionQueriesImpl) OwnerRequests(ctx context.Context, ownerID uuid.UUID) ([]*OwnerRequestView, error) {
	return q.store.ListByOwner(ctx, ownerID)
}

func (q *adoptionQueriesImpl) PayableRequests(ctx context.Context, adopterID uuid.UUID) ([]*PayableRequestView, error) {
	return q.store.ListPayable(ctx, adopterID)
}

func (q *adoptionQueriesImpl) PayableRequest(ctx context.Context, adopterID, requestID uuid.UUID) (*PayableRequestView, error) {
	view, err := q.store.FindPayable(ctx, adopterID, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPayableRequestNotFound
		}
		return nil, err
	}
	return view, nil
}

// History is newest first.
func (q *adoptionQueriesImpl) History(ctx context.Context, adopterID uuid.UUID) ([]*HistoryView, error) {
	return q.store.ListHistory(ctx, adopterID)
}

func (q *adoptionQueriesImpl) AdopterDashboard(ctx context.Context, adopterID uuid.UUID) (*AdopterDashboardView, error) {
	available, err := q.catalog.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	pendingStatus := adoption.StatusPending
	pending, err := q.store.ListByAdopter(ctx, adopterID, &pendingStatus)
	if err != nil {
		return nil, err
	}
	history, err := q.store.ListHistory(ctx, adopterID)
	if err != nil {
		return nil, err
	}
	payable, err := q.store.ListPayable(ctx, adopterID)
	if err != nil {
		return nil, err
	}
	return &AdopterDashboardView{
		Available:       available,
		Pending:         pending,
		History:         history,
		AwaitingPayment: len(payable),
	}, nil
}
