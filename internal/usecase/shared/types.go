package shared

import (
	"time"

	"pet-adoption/internal/domain/account"
	"pet-adoption/internal/domain/adoption"
	"pet-adoption/internal/domain/pet"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations
type AccountSnapshot struct {
	ID           uuid.UUID
	Kind         account.Kind
	Name         string
	Email        string
	PasswordHash string
}

type PetSnapshot struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Species     string
	Breed       string
	Age         int
	Gender      string
	Description string
	PriceCents  int64
	ImageURL    string
	Status      pet.Status
	CreatedAt   time.Time
}

func (s *PetSnapshot) ToDomain() *pet.Pet {
	price, _ := pet.NewMoney(s.PriceCents)
	attrs := pet.Attributes{
		Name:        s.Name,
		Species:     s.Species,
		Breed:       s.Breed,
		Age:         s.Age,
		Gender:      s.Gender,
		Description: s.Description,
		Price:       price,
	}
	return pet.ReconstructPet(s.ID, s.OwnerID, attrs, s.ImageURL, s.Status, s.CreatedAt)
}

func NewPetSnapshot(p *pet.Pet) *PetSnapshot {
	attrs := p.Attributes()
	return &PetSnapshot{
		ID:          p.ID(),
		OwnerID:     p.OwnerID(),
		Name:        attrs.Name,
		Species:     attrs.Species,
		Breed:       attrs.Breed,
		Age:         attrs.Age,
		Gender:      attrs.Gender,
		Description: attrs.Description,
		PriceCents:  attrs.Price.Cents(),
		ImageURL:    p.ImageURL(),
		Status:      p.Status(),
		CreatedAt:   p.CreatedAt(),
	}
}

type RequestSnapshot struct {
	ID         uuid.UUID
	AdopterID  uuid.UUID
	PetID      uuid.UUID
	PetOwnerID uuid.UUID
	Message    string
	Status     adoption.RequestStatus
	CreatedAt  time.Time
}

func (s *RequestSnapshot) ToDomain() *adoption.Request {
	return adoption.ReconstructRequest(s.ID, s.AdopterID, s.PetID, s.Message, s.Status, s.CreatedAt)
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int
	RunAt    time.Time
}
