//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-adoption/internal/domain/account"
	"pet-adoption/internal/pkg/jwt"
	"pet-adoption/internal/testutil/builder"
	"pet-adoption/internal/usecase/commands"
	"pet-adoption/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("基本成功ケース", func(t *testing.T) {
		f := newFixture(t)
		principal := f.register(t, builder.NewAdopterBuilder())

		snap, err := f.store.CommandReads().AccountByEmail(ctx, account.KindAdopter, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, principal.ID, snap.ID)
		assert.NotEqual(t, "password123", snap.PasswordHash)
	})

	t.Run("同じ種別でメール重複NG", func(t *testing.T) {
		f := newFixture(t)
		f.register(t, builder.NewAdopterBuilder())

		_, err := f.auth.Register(ctx, builder.NewAdopterBuilder().WithEmail("ALICE@example.com").BuildRegisterInput())
		assert.ErrorIs(t, err, commands.ErrEmailAlreadyRegistered)
	})

	t.Run("飼い主と里親は同じメールを使える", func(t *testing.T) {
		f := newFixture(t)
		f.register(t, builder.NewAdopterBuilder())
		f.register(t, builder.NewOwnerBuilder().WithEmail("alice@example.com"))
	})

	t.Run("入力検証", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*builder.AccountBuilder)
		}{
			{name: "無効なメールNG", mutate: func(b *builder.AccountBuilder) { b.Email = "not-an-email" }},
			{name: "短いパスワードNG", mutate: func(b *builder.AccountBuilder) { b.Password = "short" }},
			{name: "空の名前NG", mutate: func(b *builder.AccountBuilder) { b.Name = " " }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture(t)
				_, err := f.auth.Register(ctx, builder.NewAdopterBuilder().With(tt.mutate).BuildRegisterInput())
				assert.ErrorIs(t, err, commands.ErrValidation)
			})
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	adopter := f.register(t, builder.NewAdopterBuilder())

	t.Run("基本成功ケース", func(t *testing.T) {
		result, err := f.auth.Login(ctx, builder.NewAdopterBuilder().BuildLoginInput())
		require.NoError(t, err)
		assert.Equal(t, adopter, result.Principal)
		assert.Equal(t, "Alice Adopter", result.Name)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("メールの大文字小文字は区別しない", func(t *testing.T) {
		_, err := f.auth.Login(ctx, builder.NewAdopterBuilder().WithEmail("Alice@Example.com").BuildLoginInput())
		assert.NoError(t, err)
	})

	tests := []struct {
		name string
		in   commands.LoginInput
	}{
		{name: "パスワード不一致NG", in: builder.NewAdopterBuilder().WithPassword("wrong-password").BuildLoginInput()},
		{name: "未登録メールNG", in: builder.NewAdopterBuilder().WithEmail("nobody@example.com").BuildLoginInput()},
		{name: "別の種別でログインNG", in: commands.LoginInput{Kind: account.KindOwner, Email: "alice@example.com", Password: "password123"}},
		{name: "無効な種別NG", in: commands.LoginInput{Kind: account.Kind("admin"), Email: "alice@example.com", Password: "password123"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.auth.Login(ctx, tt.in)
			assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
		})
	}
}

type brokenReads struct {
	shared.CommandReads
	err error
}

func (r brokenReads) AccountByEmail(context.Context, account.Kind, string) (*shared.AccountSnapshot, error) {
	return nil, r.err
}

type brokenReadsUoW struct {
	shared.UnitOfWork
	err error
}

func (u brokenReadsUoW) CommandReads() shared.CommandReads {
	return brokenReads{CommandReads: u.UnitOfWork.CommandReads(), err: u.err}
}

func TestLoginStoreFailure(t *testing.T) {
	f := newFixture(t)
	f.register(t, builder.NewAdopterBuilder())
	uow := brokenReadsUoW{UnitOfWork: f.store, err: errors.New("connection refused")}
	auth := commands.NewAuthCommands(uow, jwt.NewService("unit-test-secret-key", time.Hour), f.clock)

	_, err := auth.Login(context.Background(), builder.NewAdopterBuilder().BuildLoginInput())

	assert.ErrorIs(t, err, commands.ErrStoreFailure)
	assert.NotErrorIs(t, err, commands.ErrInvalidCredentials, "an outage is not a wrong password")
}
