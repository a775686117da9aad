package account

import (
	"time"

	"github.com/google/uuid"
)

// Account is either an adopter or an owner. Accounts are immutable after registration.
type Account struct {
	id           uuid.UUID
	kind         Kind
	email        Email
	profile      Profile
	passwordHash string
	createdAt    time.Time
}

func NewAccount(kind Kind, email Email, profile Profile, passwordHash string, now time.Time) (*Account, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	return &Account{
		id:           uuid.New(),
		kind:         kind,
		email:        email,
		profile:      profile,
		passwordHash: passwordHash,
		createdAt:    now,
	}, nil
}

func ReconstructAccount(id uuid.UUID, kind Kind, email Email, profile Profile, passwordHash string, createdAt time.Time) *Account {
	return &Account{
		id:           id,
		kind:         kind,
		email:        email,
		profile:      profile,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}
}

func (a *Account) ID() uuid.UUID        { return a.id }
func (a *Account) Kind() Kind           { return a.kind }
func (a *Account) Email() Email         { return a.email }
func (a *Account) Profile() Profile     { return a.profile }
func (a *Account) PasswordHash() string { return a.passwordHash }
func (a *Account) CreatedAt() time.Time { return a.createdAt }

func (a *Account) Principal() Principal {
	return Principal{ID: a.id, Kind: a.kind}
}
