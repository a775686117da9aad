package repository

import (
	"context"

	"pet-adoption/internal/domain/account"
	"pet-adoption/internal/infra"
	"pet-adoption/internal/infra/db"
)

const insertAccountSQL = `
INSERT INTO accounts (id, kind, name, email, phone, address, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

type AccountRepository struct {
	db db.DBTX
}

func NewAccountRepository(dbtx db.DBTX) *AccountRepository {
	return &AccountRepository{db: dbtx}
}

func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	profile := a.Profile()
	_, err := r.db.Exec(ctx, insertAccountSQL,
		a.ID(),
		a.Kind().String(),
		profile.Name(),
		a.Email().Value(),
		profile.Phone(),
		profile.Address(),
		a.PasswordHash(),
		a.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create account", err)
	}
	return nil
}
