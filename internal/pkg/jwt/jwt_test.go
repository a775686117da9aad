//go:build unit

package jwt

import (
	"testing"
	"time"

	"pet-adoption/internal/domain/account"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-sessions"

func TestService(t *testing.T) {
	principal := account.Principal{ID: uuid.New(), Kind: account.KindOwner}

	t.Run("発行したトークンを検証できる", func(t *testing.T) {
		svc := NewService(testSecret, time.Hour)

		token, err := svc.GenerateToken(principal)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, principal.ID, claims.PrincipalID)
		assert.Equal(t, "owner", claims.Kind)
		assert.Equal(t, principal.ID.String(), claims.Subject)
		assert.Equal(t, Issuer, claims.Issuer)
	})

	t.Run("期限切れトークンNG", func(t *testing.T) {
		svc := NewService(testSecret, time.Hour)
		issued := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return issued }

		token, err := svc.GenerateToken(principal)
		require.NoError(t, err)

		svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("別の鍵で署名されたトークンNG", func(t *testing.T) {
		token, err := NewService("another-secret-key-value", time.Hour).GenerateToken(principal)
		require.NoError(t, err)

		_, err = NewService(testSecret, time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("HMAC以外の署名方式NG", func(t *testing.T) {
		claims := Claims{PrincipalID: principal.ID, Kind: "owner"}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = NewService(testSecret, time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("発行者が異なるトークンNG", func(t *testing.T) {
		claims := Claims{
			PrincipalID: principal.ID,
			Kind:        "owner",
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    "someone-else",
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = NewService(testSecret, time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("有効期限のないトークンNG", func(t *testing.T) {
		claims := Claims{
			PrincipalID:      principal.ID,
			Kind:             "owner",
			RegisteredClaims: gojwt.RegisteredClaims{Issuer: Issuer},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = NewService(testSecret, time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("壊れたトークンNG", func(t *testing.T) {
		_, err := NewService(testSecret, time.Hour).ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
