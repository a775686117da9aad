//go:build unit || e2e

package builder

import (
	"net/url"
	"time"

	"pet-adoption/internal/domain/pet"
	"pet-adoption/internal/usecase/commands"
	"pet-adoption/internal/usecase/queries"

	"github.com/google/uuid"
)

type PetBuilder struct {
	Name        string
	Type        string
	Breed       string
	Age         string
	Gender      string
	Description string
	Price       string
}

func NewPetBuilder() *PetBuilder {
	return &PetBuilder{
		Name:        "Biscuit",
		Type:        "Dog",
		Breed:       "Beagle",
		Age:         "3",
		Gender:      "Male",
		Description: "Friendly and loves walks",
		Price:       "50.00",
	}
}

func (p *PetBuilder) With(mutate func(*PetBuilder)) *PetBuilder {
	mutate(p)
	return p
}

func (p *PetBuilder) WithName(name string) *PetBuilder {
	p.Name = name
	return p
}

func (p *PetBuilder) WithPrice(price string) *PetBuilder {
	p.Price = price
	return p
}

// Build methods
func (p *PetBuilder) BuildAddInput() commands.AddPetInput {
	return commands.AddPetInput{
		Name:        p.Name,
		Species:     p.Type,
		Breed:       p.Breed,
		Age:         p.Age,
		Gender:      p.Gender,
		Description: p.Description,
		Price:       p.Price,
	}
}

func (p *PetBuilder) BuildForm() url.Values {
	return url.Values{
		"name":        {p.Name},
		"type":        {p.Type},
		"breed":       {p.Breed},
		"age":         {p.Age},
		"gender":      {p.Gender},
		"description": {p.Description},
		"price":       {p.Price},
	}
}

func (p *PetBuilder) BuildView(ownerID uuid.UUID) *queries.PetView {
	return &queries.PetView{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		OwnerName:   "Oscar Owner",
		Name:        p.Name,
		Species:     p.Type,
		Breed:       p.Breed,
		Age:         pet.ParseAgeOr(p.Age, 0),
		Gender:      p.Gender,
		Description: p.Description,
		PriceCents:  pet.ParseMoneyOr(p.Price, pet.Money{}).Cents(),
		Status:      pet.StatusAvailable.String(),
		CreatedAt:   time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}
