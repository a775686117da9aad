package adoption

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid request status")
	ErrInvalidDecision   = errors.New("decision must be approve or reject")
	ErrInvalidTransition = errors.New("invalid request state transition")
	ErrNotApproved       = errors.New("request is not approved")
	ErrMessageTooLong    = errors.New("message exceeds maximum length")
)

const MaxMessageLength = 1000

// Request is an adopter's bid for one pet.
//
//	Pending -> Approved -> (paid, deleted)
//	Pending -> Rejected
type Request struct {
	id        uuid.UUID
	adopterID uuid.UUID
	petID     uuid.UUID
	message   string
	status    RequestStatus
	createdAt time.Time
}

func NewRequest(adopterID, petID uuid.UUID, message string, now time.Time) (*Request, error) {
	message = strings.TrimSpace(message)
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return nil, ErrMessageTooLong
	}
	return &Request{
		id:        uuid.New(),
		adopterID: adopterID,
		petID:     petID,
		message:   message,
		status:    StatusPending,
		createdAt: now,
	}, nil
}

func ReconstructRequest(id, adopterID, petID uuid.UUID, message string, status RequestStatus, createdAt time.Time) *Request {
	return &Request{
		id:        id,
		adopterID: adopterID,
		petID:     petID,
		message:   message,
		status:    status,
		createdAt: createdAt,
	}
}

func (r *Request) ID() uuid.UUID         { return r.id }
func (r *Request) AdopterID() uuid.UUID  { return r.adopterID }
func (r *Request) PetID() uuid.UUID      { return r.petID }
func (r *Request) Message() string       { return r.message }
func (r *Request) Status() RequestStatus { return r.status }
func (r *Request) CreatedAt() time.Time  { return r.createdAt }

// Decide is only legal from Pending.
func (r *Request) Decide(d Decision) error {
	if r.status != StatusPending {
		return ErrInvalidTransition
	}
	switch d {
	case DecisionApprove, DecisionReject:
		r.status = d.Target()
		return nil
	default:
		return ErrInvalidDecision
	}
}

func (r *Request) EnsurePayable() error {
	if r.status != StatusApproved {
		return ErrNotApproved
	}
	return nil
}
