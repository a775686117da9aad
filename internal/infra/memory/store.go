// Package memory is an in-process store used when DB_DRIVER=memory. It keeps
// the same constraints the Postgres schema enforces so that use cases behave
// identically against both.
package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"pet-adoption/internal/domain/adoption"
	"pet-adoption/internal/usecase/shared"

	"github.com/google/uuid"
)

type accountRecord struct {
	ID           uuid.UUID
	Kind         string
	Name         string
	Email        string
	Phone        string
	Address      string
	PasswordHash string
	CreatedAt    time.Time
}

type requestRecord struct {
	ID        uuid.UUID
	AdopterID uuid.UUID
	PetID     uuid.UUID
	Message   string
	Status    adoption.RequestStatus
	CreatedAt time.Time
	DecidedAt *time.Time
}

type jobRecord struct {
	shared.NotificationJob
	Status    string
	LastError string
}

type memoryState struct {
	accounts  map[uuid.UUID]accountRecord
	pets      map[uuid.UUID]shared.PetSnapshot
	requests  map[uuid.UUID]requestRecord
	payments  map[uuid.UUID]adoption.Payment
	histories map[uuid.UUID]adoption.History
	jobs      map[uuid.UUID]jobRecord
}

func newMemoryState() memoryState {
	return memoryState{
		accounts:  make(map[uuid.UUID]accountRecord),
		pets:      make(map[uuid.UUID]shared.PetSnapshot),
		requests:  make(map[uuid.UUID]requestRecord),
		payments:  make(map[uuid.UUID]adoption.Payment),
		histories: make(map[uuid.UUID]adoption.History),
		jobs:      make(map[uuid.UUID]jobRecord),
	}
}

// Records are plain values, so a shallow map copy is a full snapshot.
func (s memoryState) clone() memoryState {
	return memoryState{
		accounts:  maps.Clone(s.accounts),
		pets:      maps.Clone(s.pets),
		requests:  maps.Clone(s.requests),
		payments:  maps.Clone(s.payments),
		histories: maps.Clone(s.histories),
		jobs:      maps.Clone(s.jobs),
	}
}

// Store serializes writers and swaps in the working copy only when fn succeeds.
type Store struct {
	mu    sync.RWMutex
	state memoryState
}

func NewStore() *Store {
	return &Store{state: newMemoryState()}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &memTx{state: s.state.clone()}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	s.state = tx.state
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &lockedReads{store: s}
}

func (s *Store) view(fn func(st *memoryState)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.state)
}

type memTx struct {
	state memoryState
}

func (t *memTx) Accounts() shared.AccountRepository           { return accountRepo{t} }
func (t *memTx) Pets() shared.PetRepository                   { return petRepo{t} }
func (t *memTx) Requests() shared.RequestRepository           { return requestRepo{t} }
func (t *memTx) Payments() shared.PaymentRepository           { return paymentRepo{t} }
func (t *memTx) Histories() shared.HistoryRepository          { return historyRepo{t} }
func (t *memTx) Notifications() shared.NotificationRepository { return notificationRepo{t} }
func (t *memTx) Reads() shared.CommandReads                   { return stateReads{&t.state} }
