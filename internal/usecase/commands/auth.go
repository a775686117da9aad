package commands

import (
	"context"

	"pet-adoption/internal/domain/account"
	"pet-adoption/internal/infra"
	"pet-adoption/internal/pkg/clock"
	"pet-adoption/internal/pkg/errs"
	"pet-adoption/internal/pkg/password"
	"pet-adoption/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials     = errs.New("invalid credentials")
	ErrEmailAlreadyRegistered = errs.New("email already registered")
	ErrTokenGeneration        = errs.New("token generation failed")
	ErrValidation             = errs.New("validation failed")
	ErrStoreFailure           = errs.New("store operation failed")
)

type RegisterInput struct {
	Kind     account.Kind
	Name     string
	Email    string
	Phone    string
	Address  string
	Password string
}

type LoginInput struct {
	Kind     account.Kind
	Email    string
	Password string
}

type LoginResult struct {
	Principal account.Principal
	Name      string
	Token     string
}

// TokenIssuer signs session tokens for an authenticated principal
type TokenIssuer interface {
	GenerateToken(p account.Principal) (string, error)
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (uuid.UUID, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
	clock  clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer, clock clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		tokens: tokens,
		clock:  clock,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (uuid.UUID, error) {
	email, err := account.NewEmail(in.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}
	pw, err := account.NewPassword(in.Password)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}
	profile, err := account.NewProfile(in.Name, in.Phone, in.Address)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		if errs.Is(err, password.ErrInvalidPassword) {
			return uuid.Nil, errs.Mark(errs.New("password must be at most 72 bytes"), ErrValidation)
		}
		return uuid.Nil, errs.Wrap(err, "hash password")
	}

	acc, err := account.NewAccount(in.Kind, email, profile, hash, a.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Accounts().Create(ctx, acc)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrEmailAlreadyRegistered
		}
		return uuid.Nil, errs.Mark(err, ErrStoreFailure)
	}

	return acc.ID(), nil
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if !in.Kind.IsValid() {
		return nil, ErrInvalidCredentials
	}
	email, err := account.NewEmail(in.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	snapshot, err := a.uow.CommandReads().AccountByEmail(ctx, in.Kind, email.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a password mismatch to prevent account enumeration
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	if err := password.ComparePassword(snapshot.PasswordHash, in.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	principal := account.Principal{ID: snapshot.ID, Kind: snapshot.Kind}
	token, err := a.tokens.GenerateToken(principal)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Principal: principal,
		Name:      snapshot.Name,
		Token:     token,
	}, nil
}
