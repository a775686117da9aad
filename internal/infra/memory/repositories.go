package memory

import (
	"context"
	"slices"
	"time"

	"pet-adoption/internal/domain/account"
	"pet-adoption/internal/domain/adoption"
	"pet-adoption/internal/domain/pet"
	"pet-adoption/internal/infra"
	"pet-adoption/internal/usecase/shared"

	"github.com/google/uuid"
)

type accountRepo struct{ tx *memTx }

func (r accountRepo) Create(_ context.Context, a *account.Account) error {
	for _, existing := range r.tx.state.accounts {
		if existing.Kind == a.Kind().String() && existing.Email == a.Email().Value() {
			return infra.NewRepoErr(infra.KindDuplicateKey, "account email already exists")
		}
	}
	if _, ok := r.tx.state.accounts[a.ID()]; ok {
		return infra.NewRepoErr(infra.KindDuplicateKey, "account id already exists")
	}
	profile := a.Profile()
	r.tx.state.accounts[a.ID()] = accountRecord{
		ID:           a.ID(),
		Kind:         a.Kind().String(),
		Name:         profile.Name(),
		Email:        a.Email().Value(),
		Phone:        profile.Phone(),
		Address:      profile.Address(),
		PasswordHash: a.PasswordHash(),
		CreatedAt:    a.CreatedAt(),
	}
	return nil
}

type petRepo struct{ tx *memTx }

// checkPet mirrors the CHECK constraints on the pets table.
func checkPet(p *pet.Pet) error {
	if p.Price().Cents() < 0 {
		return infra.NewRepoErr(infra.KindCheckViolated, "price_cents must not be negative")
	}
	if p.Attributes().Age < 0 {
		return infra.NewRepoErr(infra.KindCheckViolated, "age must not be negative")
	}
	return nil
}

func (r petRepo) Create(_ context.Context, p *pet.Pet) error {
	if _, ok := r.tx.state.accounts[p.OwnerID()]; !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "pet owner does not exist")
	}
	if err := checkPet(p); err != nil {
		return err
	}
	if _, ok := r.tx.state.pets[p.ID()]; ok {
		return infra.NewRepoErr(infra.KindDuplicateKey, "pet id already exists")
	}
	r.tx.state.pets[p.ID()] = *shared.NewPetSnapshot(p)
	return nil
}

// Writers are already serialized by the store, so no separate lock is taken.
func (r petRepo) LockByID(_ context.Context, id uuid.UUID) (*pet.Pet, error) {
	snap, ok := r.tx.state.pets[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "pet not found")
	}
	return snap.ToDomain(), nil
}

func (r petRepo) Update(_ context.Context, p *pet.Pet) error {
	if _, ok := r.tx.state.pets[p.ID()]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "pet not found")
	}
	if err := checkPet(p); err != nil {
		return err
	}
	r.tx.state.pets[p.ID()] = *shared.NewPetSnapshot(p)
	return nil
}

func (r petRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.tx.state.pets[id]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "pet not found")
	}
	for _, h := range r.tx.state.histories {
		if h.PetID == id {
			return infra.NewRepoErr(infra.KindForeignKeyViolated, "pet is referenced by adoption history")
		}
	}
	for _, p := range r.tx.state.payments {
		if p.PetID == id {
			return infra.NewRepoErr(infra.KindForeignKeyViolated, "pet is referenced by a payment")
		}
	}
	for reqID, req := range r.tx.state.requests {
		if req.PetID == id {
			delete(r.tx.state.requests, reqID)
		}
	}
	delete(r.tx.state.pets, id)
	return nil
}

func (r petRepo) MarkAdopted(_ context.Context, id uuid.UUID) error {
	snap, ok := r.tx.state.pets[id]
	if !ok || snap.Status != pet.StatusAvailable {
		return infra.NewRepoErr(infra.KindConflict, "pet is not available")
	}
	snap.Status = pet.StatusAdopted
	r.tx.state.pets[id] = snap
	return nil
}

type requestRepo struct{ tx *memTx }

func (r requestRepo) Create(_ context.Context, req *adoption.Request) error {
	if _, ok := r.tx.state.pets[req.PetID()]; !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "pet does not exist")
	}
	if _, ok := r.tx.state.accounts[req.AdopterID()]; !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "adopter does not exist")
	}
	if req.Status() == adoption.StatusPending && r.hasPending(req.AdopterID(), req.PetID()) {
		return infra.NewRepoErr(infra.KindDuplicateKey, "pending request already exists")
	}
	r.tx.state.requests[req.ID()] = requestRecord{
		ID:        req.ID(),
		AdopterID: req.AdopterID(),
		PetID:     req.PetID(),
		Message:   req.Message(),
		Status:    req.Status(),
		CreatedAt: req.CreatedAt(),
	}
	return nil
}

func (r requestRepo) HasPending(_ context.Context, adopterID, petID uuid.UUID) (bool, error) {
	return r.hasPending(adopterID, petID), nil
}

func (r requestRepo) hasPending(adopterID, petID uuid.UUID) bool {
	for _, req := range r.tx.state.requests {
		if req.AdopterID == adopterID && req.PetID == petID && req.Status == adoption.StatusPending {
			return true
		}
	}
	return false
}

func (r requestRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to adoption.RequestStatus, decidedAt time.Time) error {
	req, ok := r.tx.state.requests[id]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "adoption request not found")
	}
	if req.Status != from {
		return infra.NewRepoErr(infra.KindConflict, "adoption request status changed")
	}
	req.Status = to
	req.DecidedAt = &decidedAt
	r.tx.state.requests[id] = req
	return nil
}

func (r requestRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.tx.state.requests[id]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "adoption request not found")
	}
	delete(r.tx.state.requests, id)
	return nil
}

type paymentRepo struct{ tx *memTx }

func (r paymentRepo) Create(_ context.Context, p *adoption.Payment) error {
	if p.Amount.Cents() < 0 {
		return infra.NewRepoErr(infra.KindCheckViolated, "amount_cents must not be negative")
	}
	if _, ok := r.tx.state.pets[p.PetID]; !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "pet does not exist")
	}
	for _, existing := range r.tx.state.payments {
		if existing.Reference == p.Reference {
			return infra.NewRepoErr(infra.KindDuplicateKey, "payment reference already exists")
		}
	}
	r.tx.state.payments[p.ID] = *p
	return nil
}

type historyRepo struct{ tx *memTx }

func (r historyRepo) Create(_ context.Context, h *adoption.History) error {
	if _, ok := r.tx.state.pets[h.PetID]; !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "pet does not exist")
	}
	if h.PaymentID != nil {
		if _, ok := r.tx.state.payments[*h.PaymentID]; !ok {
			return infra.NewRepoErr(infra.KindForeignKeyViolated, "payment does not exist")
		}
	}
	for _, existing := range r.tx.state.histories {
		if existing.PetID == h.PetID {
			return infra.NewRepoErr(infra.KindDuplicateKey, "pet already has adoption history")
		}
	}
	r.tx.state.histories[h.ID] = *h
	return nil
}

type notificationRepo struct{ tx *memTx }

func (r notificationRepo) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	id := uuid.New()
	r.tx.state.jobs[id] = jobRecord{
		NotificationJob: shared.NotificationJob{
			ID:      id,
			Kind:    kind,
			Topic:   topic,
			Payload: slices.Clone(payload),
			RunAt:   runAt,
		},
		Status: "queued",
	}
	return nil
}

func (r notificationRepo) ClaimDue(_ context.Context, now time.Time, limit int) ([]shared.NotificationJob, error) {
	var due []shared.NotificationJob
	for _, job := range r.tx.state.jobs {
		if job.Status == "queued" && !job.RunAt.After(now) {
			due = append(due, job.NotificationJob)
		}
	}
	slices.SortFunc(due, func(a, b shared.NotificationJob) int {
		return a.RunAt.Compare(b.RunAt)
	})
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (r notificationRepo) Lease(_ context.Context, ids []uuid.UUID, until time.Time) error {
	for _, id := range ids {
		job, ok := r.tx.state.jobs[id]
		if !ok || job.Status != "queued" {
			continue
		}
		job.RunAt = until
		r.tx.state.jobs[id] = job
	}
	return nil
}

func (r notificationRepo) MarkSent(_ context.Context, id uuid.UUID) error {
	job, ok := r.tx.state.jobs[id]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "notification job not found")
	}
	job.Status = "sent"
	job.Attempts++
	job.LastError = ""
	r.tx.state.jobs[id] = job
	return nil
}

func (r notificationRepo) MarkFailed(_ context.Context, id uuid.UUID, lastError string, retryAt time.Time, giveUp bool) error {
	job, ok := r.tx.state.jobs[id]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "notification job not found")
	}
	job.Status = "queued"
	if giveUp {
		job.Status = "failed"
	}
	job.Attempts++
	job.LastError = lastError
	job.RunAt = retryAt
	r.tx.state.jobs[id] = job
	return nil
}
