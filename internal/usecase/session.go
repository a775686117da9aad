package usecase

import (
	"pet-adoption/internal/domain/account"
	"pet-adoption/internal/pkg/jwt"

	"github.com/google/uuid"
)

// SessionValidator turns a session token back into the principal it was issued for
type SessionValidator interface {
	ValidateToken(tokenString string) (account.Principal, error)
}

type sessionValidatorImpl struct {
	jwtService *jwt.Service
}

func NewSessionValidator(jwtService *jwt.Service) SessionValidator {
	return &sessionValidatorImpl{
		jwtService: jwtService,
	}
}

func (s *sessionValidatorImpl) ValidateToken(tokenString string) (account.Principal, error) {
	claims, err := s.jwtService.ValidateToken(tokenString)
	if err != nil {
		return account.Principal{}, err
	}

	kind, err := account.NewKind(claims.Kind)
	if err != nil {
		return account.Principal{}, err
	}
	if claims.PrincipalID == uuid.Nil {
		return account.Principal{}, jwt.ErrInvalidToken
	}

	return account.Principal{ID: claims.PrincipalID, Kind: kind}, nil
}
