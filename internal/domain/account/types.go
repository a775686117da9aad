package account

import "github.com/google/uuid"

// Kind distinguishes the two disjoint principal populations.
type Kind string

const (
	KindAdopter Kind = "adopter"
	KindOwner   Kind = "owner"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindAdopter, KindOwner:
		return true
	default:
		return false
	}
}

// NewKind accepts the login form's historical "user" alias for adopters.
func NewKind(s string) (Kind, error) {
	if s == "user" {
		return KindAdopter, nil
	}
	kind := Kind(s)
	if !kind.IsValid() {
		return "", ErrInvalidKind
	}
	return kind, nil
}

// Principal is the authenticated identity carried by a session.
type Principal struct {
	ID   uuid.UUID
	Kind Kind
}

func (p Principal) Is(kind Kind) bool {
	return p.ID != uuid.Nil && p.Kind == kind
}
