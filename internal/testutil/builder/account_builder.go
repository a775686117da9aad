//go:build unit || e2e

package builder

import (
	"net/url"

	"pet-adoption/internal/domain/account"
	"pet-adoption/internal/usecase/commands"
)

type AccountBuilder struct {
	Kind     account.Kind
	Name     string
	Email    string
	Phone    string
	Address  string
	Password string
}

func NewAdopterBuilder() *AccountBuilder {
	return &AccountBuilder{
		Kind:     account.KindAdopter,
		Name:     "Alice Adopter",
		Email:    "alice@example.com",
		Phone:    "555-0100",
		Address:  "1 Meadow Lane",
		Password: "password123",
	}
}

func NewOwnerBuilder() *AccountBuilder {
	return &AccountBuilder{
		Kind:     account.KindOwner,
		Name:     "Oscar Owner",
		Email:    "oscar@example.com",
		Phone:    "555-0199",
		Address:  "9 Kennel Road",
		Password: "password123",
	}
}

func (a *AccountBuilder) With(mutate func(*AccountBuilder)) *AccountBuilder {
	mutate(a)
	return a
}

func (a *AccountBuilder) WithEmail(email string) *AccountBuilder {
	a.Email = email
	return a
}

func (a *AccountBuilder) WithPassword(password string) *AccountBuilder {
	a.Password = password
	return a
}

// Build methods
func (a *AccountBuilder) BuildRegisterInput() commands.RegisterInput {
	return commands.RegisterInput{
		Kind:     a.Kind,
		Name:     a.Name,
		Email:    a.Email,
		Phone:    a.Phone,
		Address:  a.Address,
		Password: a.Password,
	}
}

func (a *AccountBuilder) BuildLoginInput() commands.LoginInput {
	return commands.LoginInput{
		Kind:     a.Kind,
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AccountBuilder) BuildRegisterForm() url.Values {
	return url.Values{
		"name":     {a.Name},
		"email":    {a.Email},
		"phone":    {a.Phone},
		"address":  {a.Address},
		"password": {a.Password},
	}
}

// BuildLoginForm uses the login page's "user" alias for adopters.
func (a *AccountBuilder) BuildLoginForm() url.Values {
	accType := "user"
	if a.Kind == account.KindOwner {
		accType = "owner"
	}
	return url.Values{
		"email":    {a.Email},
		"password": {a.Password},
		"acc_type": {accType},
	}
}
