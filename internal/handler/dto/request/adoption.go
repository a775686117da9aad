package request

import "pet-adoption/internal/usecase/commands"

type AdoptForm struct {
	Message string `form:"message"`
}

type DecisionForm struct {
	Decision string `form:"decision" binding:"required"`
}

type PaymentForm struct {
	Amount      string `form:"amount"`
	PaymentMode string `form:"payment_mode"`
}

func (f *PaymentForm) ToInput() commands.PayInput {
	return commands.PayInput{
		Amount: f.Amount,
		Mode:   f.PaymentMode,
	}
}
