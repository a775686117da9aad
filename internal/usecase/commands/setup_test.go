//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"
	"time"

	"pet-adoption/internal/domain/account"
	"pet-adoption/internal/domain/adoption"
	"pet-adoption/internal/infra/memory"
	"pet-adoption/internal/pkg/clock"
	"pet-adoption/internal/pkg/jwt"
	"pet-adoption/internal/testutil/builder"
	"pet-adoption/internal/usecase/commands"
	"pet-adoption/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	store    *memory.Store
	clock    *clock.MockClock
	images   *fakeImageStore
	auth     commands.AuthCommands
	pets     commands.PetCommands
	adoption commands.AdoptionCommands
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	clk := clock.NewMockClock(fixedNow)
	images := newFakeImageStore()
	policy := commands.ImagePolicy{
		MaxBytes:          1 << 20,
		AllowedExtensions: []string{"png", "jpg", "jpeg", "gif", "webp"},
	}
	return &fixture{
		store:    store,
		clock:    clk,
		images:   images,
		auth:     commands.NewAuthCommands(store, jwt.NewService("unit-test-secret-key", time.Hour), clk),
		pets:     commands.NewPetCommands(store, images, policy, clk),
		adoption: commands.NewAdoptionCommands(store, clk),
	}
}

func (f *fixture) register(t *testing.T, b *builder.AccountBuilder) account.Principal {
	t.Helper()
	id, err := f.auth.Register(context.Background(), b.BuildRegisterInput())
	require.NoError(t, err)
	return account.Principal{ID: id, Kind: b.Kind}
}

func (f *fixture) addPet(t *testing.T, ownerID uuid.UUID, b *builder.PetBuilder) uuid.UUID {
	t.Helper()
	id, err := f.pets.AddPet(context.Background(), ownerID, b.BuildAddInput())
	require.NoError(t, err)
	return id
}

func (f *fixture) approvedRequest(t *testing.T, ownerID, adopterID, petID uuid.UUID) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	reqID, err := f.adoption.CreateRequest(ctx, adopterID, petID, "")
	require.NoError(t, err)
	_, err = f.adoption.DecideRequest(ctx, ownerID, reqID, "approve")
	require.NoError(t, err)
	return reqID
}

// events decodes every queued outbox job into its payload.
func (f *fixture) events(t *testing.T) []commands.AdoptionEvent {
	t.Helper()
	var events []commands.AdoptionEvent
	require.NoError(t, f.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		jobs, err := tx.Notifications().ClaimDue(ctx, fixedNow.Add(24*time.Hour), 0)
		if err != nil {
			return err
		}
		for _, job := range jobs {
			var e commands.AdoptionEvent
			if err := json.Unmarshal(job.Payload, &e); err != nil {
				return err
			}
			events = append(events, e)
		}
		return nil
	}))
	return events
}

type fakeImageStore struct {
	mu      sync.Mutex
	saved   map[string][]byte
	removed []string
	saveErr error
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{saved: make(map[string][]byte)}
}

func (s *fakeImageStore) Save(_ context.Context, key string, body io.Reader, _ string) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	url := "/static/uploads/" + key
	s.saved[url] = b
	return url, nil
}

func (s *fakeImageStore) Remove(_ context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.saved, url)
	s.removed = append(s.removed, url)
	return nil
}

func pngUpload(name string) *commands.ImageUpload {
	content := []byte("\x89PNG\r\n\x1a\nfake")
	return &commands.ImageUpload{
		Filename:    name,
		Size:        int64(len(content)),
		ContentType: "image/png",
		Body:        bytes.NewReader(content),
	}
}

// failingUoW runs the real store but makes Requests().Delete fail, after the
// payment and history rows have been written inside the same transaction.
type failingUoW struct {
	shared.UnitOfWork
	err            error
	paymentWritten bool
}

func (u *failingUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.UnitOfWork.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, &failingTx{Tx: tx, uow: u})
	})
}

type failingTx struct {
	shared.Tx
	uow *failingUoW
}

func (t *failingTx) Payments() shared.PaymentRepository {
	return recordingPayments{PaymentRepository: t.Tx.Payments(), uow: t.uow}
}

func (t *failingTx) Requests() shared.RequestRepository {
	return failingRequests{RequestRepository: t.Tx.Requests(), err: t.uow.err}
}

type recordingPayments struct {
	shared.PaymentRepository
	uow *failingUoW
}

func (r recordingPayments) Create(ctx context.Context, p *adoption.Payment) error {
	if err := r.PaymentRepository.Create(ctx, p); err != nil {
		return err
	}
	r.uow.paymentWritten = true
	return nil
}

type failingRequests struct {
	shared.RequestRepository
	err error
}

func (r failingRequests) Delete(context.Context, uuid.UUID) error {
	return r.err
}
