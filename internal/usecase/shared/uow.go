package shared

import (
	"context"
	"time"

	"pet-adoption/internal/domain/account"
	"pet-adoption/internal/domain/adoption"
	"pet-adoption/internal/domain/pet"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Accounts() AccountRepository
	Pets() PetRepository
	Requests() RequestRepository
	Payments() PaymentRepository
	Histories() HistoryRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

type CommandReads interface {
	AccountByEmail(ctx context.Context, kind account.Kind, email string) (*AccountSnapshot, error)
	PetByID(ctx context.Context, id uuid.UUID) (*PetSnapshot, error)
	RequestByID(ctx context.Context, id uuid.UUID) (*RequestSnapshot, error)
}

type AccountRepository interface {
	Create(ctx context.Context, a *account.Account) error
}

type PetRepository interface {
	Create(ctx context.Context, p *pet.Pet) error
	// LockByID holds a row lock until the transaction ends
	LockByID(ctx context.Context, id uuid.UUID) (*pet.Pet, error)
	Update(ctx context.Context, p *pet.Pet) error
	Delete(ctx context.Context, id uuid.UUID) error
	// MarkAdopted fails with KindConflict unless the pet is still available
	MarkAdopted(ctx context.Context, id uuid.UUID) error
}

type RequestRepository interface {
	Create(ctx context.Context, r *adoption.Request) error
	HasPending(ctx context.Context, adopterID, petID uuid.UUID) (bool, error)
	// UpdateStatus fails with KindConflict when the stored status is not from
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to adoption.RequestStatus, decidedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *adoption.Payment) error
}

type HistoryRepository interface {
	Create(ctx context.Context, h *adoption.History) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
	// ClaimDue locks up to limit queued jobs whose run_at has passed
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]NotificationJob, error)
	// Lease pushes run_at of queued jobs to until so other relays skip them
	Lease(ctx context.Context, ids []uuid.UUID, until time.Time) error
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastError string, retryAt time.Time, giveUp bool) error
}
