package pet

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Attributes are the owner-editable descriptive fields of a pet.
type Attributes struct {
	Name        string
	Species     string
	Breed       string
	Age         int
	Gender      string
	Description string
	Price       Money
}

func (a Attributes) normalize() (Attributes, error) {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return Attributes{}, ErrEmptyName
	}
	if utf8.RuneCountInString(a.Name) > MaxNameLength {
		return Attributes{}, ErrNameTooLong
	}
	a.Species = strings.TrimSpace(a.Species)
	a.Breed = strings.TrimSpace(a.Breed)
	a.Gender = strings.TrimSpace(a.Gender)
	a.Description = strings.TrimSpace(a.Description)
	if a.Age < 0 {
		a.Age = 0
	}
	return a, nil
}

type Pet struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	attrs     Attributes
	imageURL  string
	status    Status
	createdAt time.Time
}

func NewPet(ownerID uuid.UUID, attrs Attributes, imageURL string, now time.Time) (*Pet, error) {
	normalized, err := attrs.normalize()
	if err != nil {
		return nil, err
	}
	return &Pet{
		id:        uuid.New(),
		ownerID:   ownerID,
		attrs:     normalized,
		imageURL:  imageURL,
		status:    StatusAvailable,
		createdAt: now,
	}, nil
}

func ReconstructPet(id, ownerID uuid.UUID, attrs Attributes, imageURL string, status Status, createdAt time.Time) *Pet {
	return &Pet{
		id:        id,
		ownerID:   ownerID,
		attrs:     attrs,
		imageURL:  imageURL,
		status:    status,
		createdAt: createdAt,
	}
}

func (p *Pet) ID() uuid.UUID          { return p.id }
func (p *Pet) OwnerID() uuid.UUID     { return p.ownerID }
func (p *Pet) Attributes() Attributes { return p.attrs }
func (p *Pet) Name() string           { return p.attrs.Name }
func (p *Pet) Price() Money           { return p.attrs.Price }
func (p *Pet) ImageURL() string       { return p.imageURL }
func (p *Pet) Status() Status         { return p.status }
func (p *Pet) CreatedAt() time.Time   { return p.createdAt }

func (p *Pet) IsAvailable() bool {
	return p.status == StatusAvailable
}

func (p *Pet) OwnedBy(ownerID uuid.UUID) bool {
	return p.ownerID == ownerID
}

func (p *Pet) Update(attrs Attributes) error {
	normalized, err := attrs.normalize()
	if err != nil {
		return err
	}
	p.attrs = normalized
	return nil
}

func (p *Pet) ReplaceImage(url string) (previous string) {
	previous = p.imageURL
	p.imageURL = url
	return previous
}

// MarkAdopted is one-way; an adopted pet never becomes available again.
func (p *Pet) MarkAdopted() error {
	if p.status != StatusAvailable {
		return ErrNotAvailable
	}
	p.status = StatusAdopted
	return nil
}
