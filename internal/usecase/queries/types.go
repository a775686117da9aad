package queries

import (
	"time"

	"github.com/google/uuid"
)

// PetView represents read-optimized pet data joined with its owner
type PetView struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	Name        string    `json:"name"`
	Species     string    `json:"type"`
	Breed       string    `json:"breed"`
	Age         int       `json:"age"`
	Gender      string    `json:"gender"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	ImageURL    string    `json:"image_url,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// SoldPetView is a pet of the owner that appears in adoption history
type SoldPetView struct {
	PetID       uuid.UUID `json:"pet_id"`
	PetName     string    `json:"pet_name"`
	Species     string    `json:"type"`
	AdopterName string    `json:"adopter_name"`
	AmountCents *int64    `json:"amount_cents,omitempty"`
	AdoptedAt   time.Time `json:"adopted_at"`
}

type OwnerDashboardView struct {
	Available []*PetView     `json:"available"`
	Sold      []*SoldPetView `json:"sold"`
}

// AdopterRequestView is a request as seen by the adopter who made it
type AdopterRequestView struct {
	ID        uuid.UUID `json:"id"`
	PetID     uuid.UUID `json:"pet_id"`
	PetName   string    `json:"pet_name"`
	Species   string    `json:"type"`
	ImageURL  string    `json:"image_url,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// OwnerRequestView is a request for one of the owner's pets with adopter contact
type OwnerRequestView struct {
	ID           uuid.UUID `json:"id"`
	PetID        uuid.UUID `json:"pet_id"`
	PetName      string    `json:"pet_name"`
	AdopterID    uuid.UUID `json:"adopter_id"`
	AdopterName  string    `json:"adopter_name"`
	AdopterEmail string    `json:"adopter_email"`
	AdopterPhone string    `json:"adopter_phone"`
	Message      string    `json:"message"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// PayableRequestView is an approved request awaiting payment
type PayableRequestView struct {
	ID         uuid.UUID `json:"id"`
	PetID      uuid.UUID `json:"pet_id"`
	PetName    string    `json:"pet_name"`
	PriceCents int64     `json:"price_cents"`
	ImageURL   string    `json:"image_url,omitempty"`
	OwnerName  string    `json:"owner_name"`
	CreatedAt  time.Time `json:"created_at"`
}

type HistoryView struct {
	ID               uuid.UUID `json:"id"`
	PetID            uuid.UUID `json:"pet_id"`
	PetName          string    `json:"pet_name"`
	Species          string    `json:"type"`
	OwnerName        string    `json:"owner_name"`
	AmountCents      *int64    `json:"amount_cents,omitempty"`
	PaymentReference *string   `json:"payment_reference,omitempty"`
	AdoptedAt        time.Time `json:"adopted_at"`
}

type AdopterDashboardView struct {
	Available       []*PetView            `json:"available"`
	Pending         []*AdopterRequestView `json:"pending"`
	History         []*HistoryView        `json:"history"`
	AwaitingPayment int                   `json:"awaiting_payment"`
}
