package commands

import (
	"context"
	"strings"

	"pet-adoption/internal/domain/adoption"
	"pet-adoption/internal/domain/pet"
	"pet-adoption/internal/infra"
	"pet-adoption/internal/pkg/clock"
	"pet-adoption/internal/pkg/errs"
	"pet-adoption/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPetNotAvailable         = errs.New("pet is not available")
	ErrDuplicatePendingRequest = errs.New("pending request already exists")
	ErrRequestNotFound         = errs.New("adoption request not found")
	ErrRequestAlreadyDecided   = errs.New("request has already been decided")
	ErrRequestNotApproved      = errs.New("request is not approved")
)

type PayInput struct {
	// Amount empty means the pet's listed price
	Amount string
	Mode   string
}

type PayResult struct {
	PaymentID uuid.UUID
	Reference string
	PetID     uuid.UUID
	Amount    pet.Money
}

type AdoptionCommands interface {
	CreateRequest(ctx context.Context, adopterID, petID uuid.UUID, message string) (uuid.UUID, error)
	DecideRequest(ctx context.Context, ownerID, requestID uuid.UUID, decision string) (adoption.RequestStatus, error)
	PayRequest(ctx context.Context, adopterID, requestID uuid.UUID, in PayInput) (*PayResult, error)
}

type adoptionCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAdoptionCommands(uow shared.UnitOfWork, clock clock.Clock) AdoptionCommands {
	return &adoptionCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (a *adoptionCommandsImpl) CreateRequest(ctx context.Context, adopterID, petID uuid.UUID, message string) (uuid.UUID, error) {
	now := a.clock.Now()
	req, err := adoption.NewRequest(adopterID, petID, message, now)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshot, err := tx.Reads().PetByID(ctx, petID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPetNotFound
			}
			return err
		}
		if snapshot.Status != pet.StatusAvailable {
			return ErrPetNotAvailable
		}

		pending, err := tx.Requests().HasPending(ctx, adopterID, petID)
		if err != nil {
			return err
		}
		if pending {
			return ErrDuplicatePendingRequest
		}

		if err := tx.Requests().Create(ctx, req); err != nil {
			// uq_adoption_requests_pending catches a concurrent duplicate
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicatePendingRequest
			}
			return err
		}

		return enqueueEvent(ctx, tx, AdoptionEvent{
			Type:       TopicRequestCreated,
			RequestID:  req.ID(),
			PetID:      petID,
			AdopterID:  adopterID,
			OwnerID:    snapshot.OwnerID,
			Status:     req.Status().String(),
			OccurredAt: now,
		})
	})
	if err != nil {
		return uuid.Nil, a.translate(err)
	}

	return req.ID(), nil
}

func (a *adoptionCommandsImpl) DecideRequest(ctx context.Context, ownerID, requestID uuid.UUID, decision string) (adoption.RequestStatus, error) {
	d, err := adoption.ParseDecision(decision)
	if err != nil {
		return "", errs.Mark(err, ErrValidation)
	}

	now := a.clock.Now()
	var result adoption.RequestStatus
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshot, err := a.requestFor(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if snapshot.PetOwnerID != ownerID {
			return ErrRequestNotFound
		}

		req := snapshot.ToDomain()
		if err := req.Decide(d); err != nil {
			return ErrRequestAlreadyDecided
		}

		err = tx.Requests().UpdateStatus(ctx, req.ID(), adoption.StatusPending, req.Status(), now)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrRequestAlreadyDecided
			}
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRequestNotFound
			}
			return err
		}
		result = req.Status()

		return enqueueEvent(ctx, tx, AdoptionEvent{
			Type:       TopicRequestDecided,
			RequestID:  req.ID(),
			PetID:      req.PetID(),
			AdopterID:  req.AdopterID(),
			OwnerID:    ownerID,
			Status:     result.String(),
			OccurredAt: now,
		})
	})
	if err != nil {
		return "", a.translate(err)
	}

	return result, nil
}

// PayRequest records payment and history, marks the pet adopted and removes
// the request in one transaction. The pet row is locked so that only one of
// several approved requests for the same pet can complete.
func (a *adoptionCommandsImpl) PayRequest(ctx context.Context, adopterID, requestID uuid.UUID, in PayInput) (*PayResult, error) {
	mode, err := adoption.NormalizePaymentMode(in.Mode)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	now := a.clock.Now()
	var result *PayResult
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshot, err := a.requestFor(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if snapshot.AdopterID != adopterID {
			return ErrRequestNotFound
		}

		req := snapshot.ToDomain()
		if err := req.EnsurePayable(); err != nil {
			return ErrRequestNotApproved
		}

		p, err := tx.Pets().LockByID(ctx, req.PetID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPetNotFound
			}
			return err
		}
		if !p.IsAvailable() {
			return ErrPetNotAvailable
		}

		amount := p.Price()
		if strings.TrimSpace(in.Amount) != "" {
			amount, err = pet.ParseMoney(in.Amount)
			if err != nil {
				return errs.Mark(err, ErrValidation)
			}
		}

		payment, err := adoption.NewPayment(req, p.OwnerID(), amount, mode, now)
		if err != nil {
			return errs.Mark(err, ErrValidation)
		}
		if err := tx.Payments().Create(ctx, payment); err != nil {
			return err
		}
		if err := tx.Histories().Create(ctx, adoption.NewHistory(payment)); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrPetNotAvailable
			}
			return err
		}
		if err := tx.Pets().MarkAdopted(ctx, p.ID()); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrPetNotAvailable
			}
			return err
		}
		if err := tx.Requests().Delete(ctx, req.ID()); err != nil {
			return err
		}

		result = &PayResult{
			PaymentID: payment.ID,
			Reference: payment.Reference,
			PetID:     p.ID(),
			Amount:    amount,
		}
		return enqueueEvent(ctx, tx, AdoptionEvent{
			Type:       TopicCompleted,
			RequestID:  req.ID(),
			PetID:      p.ID(),
			AdopterID:  adopterID,
			OwnerID:    p.OwnerID(),
			PaymentID:  &payment.ID,
			OccurredAt: now,
		})
	})
	if err != nil {
		return nil, a.translate(err)
	}

	return result, nil
}

func (a *adoptionCommandsImpl) requestFor(ctx context.Context, tx shared.Tx, requestID uuid.UUID) (*shared.RequestSnapshot, error) {
	snapshot, err := tx.Reads().RequestByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return snapshot, nil
}

func (a *adoptionCommandsImpl) translate(err error) error {
	if infra.IsKind(err, infra.KindCheckViolated) {
		return errs.Mark(err, ErrValidation)
	}
	for _, known := range []error{
		ErrPetNotFound,
		ErrPetNotAvailable,
		ErrDuplicatePendingRequest,
		ErrRequestNotFound,
		ErrRequestAlreadyDecided,
		ErrRequestNotApproved,
		ErrValidation,
	} {
		if errs.Is(err, known) {
			return err
		}
	}
	return errs.Mark(err, ErrStoreFailure)
}
