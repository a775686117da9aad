package adoption

import (
	"errors"
	"strings"
	"time"

	"pet-adoption/internal/domain/pet"

	"github.com/google/uuid"
)

var ErrInvalidPaymentMode = errors.New("invalid payment mode")

const DefaultPaymentMode = "mock"

var paymentModes = map[string]struct{}{
	"mock": {},
	"card": {},
	"upi":  {},
	"cash": {},
}

func NormalizePaymentMode(s string) (string, error) {
	mode := strings.ToLower(strings.TrimSpace(s))
	if mode == "" {
		return DefaultPaymentMode, nil
	}
	if _, ok := paymentModes[mode]; !ok {
		return "", ErrInvalidPaymentMode
	}
	return mode, nil
}

// Payment records money received for an approved request. RequestID is kept
// for reference only; the request row is removed once paid.
type Payment struct {
	ID        uuid.UUID
	RequestID uuid.UUID
	AdopterID uuid.UUID
	OwnerID   uuid.UUID
	PetID     uuid.UUID
	Amount    pet.Money
	Mode      string
	Reference string
	PaidAt    time.Time
}

func NewPayment(req *Request, ownerID uuid.UUID, amount pet.Money, mode string, now time.Time) (*Payment, error) {
	if err := req.EnsurePayable(); err != nil {
		return nil, err
	}
	normalized, err := NormalizePaymentMode(mode)
	if err != nil {
		return nil, err
	}
	return &Payment{
		ID:        uuid.New(),
		RequestID: req.ID(),
		AdopterID: req.AdopterID(),
		OwnerID:   ownerID,
		PetID:     req.PetID(),
		Amount:    amount,
		Mode:      normalized,
		Reference: NewPaymentReference(),
		PaidAt:    now,
	}, nil
}

// NewPaymentReference returns a MOCK-xxxxxxxx style reference.
func NewPaymentReference() string {
	return "MOCK-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// History is the append-only record of a completed adoption.
type History struct {
	ID        uuid.UUID
	AdopterID uuid.UUID
	PetID     uuid.UUID
	OwnerID   uuid.UUID
	PaymentID *uuid.UUID
	AdoptedAt time.Time
}

func NewHistory(p *Payment) *History {
	paymentID := p.ID
	return &History{
		ID:        uuid.New(),
		AdopterID: p.AdopterID,
		PetID:     p.PetID,
		OwnerID:   p.OwnerID,
		PaymentID: &paymentID,
		AdoptedAt: p.PaidAt,
	}
}
