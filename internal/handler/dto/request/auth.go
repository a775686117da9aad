package request

import (
	"pet-adoption/internal/domain/account"
	"pet-adoption/internal/usecase/commands"
)

type RegisterForm struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Phone    string `form:"phone"`
	Address  string `form:"address"`
	Password string `form:"password" binding:"required"`
}

func (f *RegisterForm) ToInput(kind account.Kind) commands.RegisterInput {
	return commands.RegisterInput{
		Kind:     kind,
		Name:     f.Name,
		Email:    f.Email,
		Phone:    f.Phone,
		Address:  f.Address,
		Password: f.Password,
	}
}

type LoginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
	// "user" or "owner"
	AccountType string `form:"acc_type"`
}

func (f *LoginForm) ToInput() (commands.LoginInput, error) {
	accType := f.AccountType
	if accType == "" {
		accType = "user"
	}
	kind, err := account.NewKind(accType)
	if err != nil {
		return commands.LoginInput{}, err
	}
	return commands.LoginInput{
		Kind:     kind,
		Email:    f.Email,
		Password: f.Password,
	}, nil
}
