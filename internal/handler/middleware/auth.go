package middleware

import (
	"log/slog"

	"pet-adoption/internal/domain/account"
	"pet-adoption/internal/handler/httperr"
	"pet-adoption/internal/pkg/config"
	"pet-adoption/internal/pkg/cookie"
	"pet-adoption/internal/pkg/errs"
	"pet-adoption/internal/pkg/flash"
	"pet-adoption/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	sessions  usecase.SessionValidator
	cookieCfg config.CookieConfig
}

const ctxPrincipalKey = "principal"

var (
	errNoSession    = errs.New("no session")
	errAccessDenied = errs.New("access denied")
)

func NewAuthMiddleware(sessions usecase.SessionValidator, cfg config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:  sessions,
		cookieCfg: cfg.Cookie,
	}
}

// LoadSession resolves the session cookie into a principal when one is present.
// A stale or forged cookie is cleared and the request continues anonymously.
func (m *AuthMiddleware) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c)
		if token == "" {
			c.Next()
			return
		}

		principal, err := m.sessions.ValidateToken(token)
		if err != nil {
			slog.Warn("Session validation failed", "error", err.Error())
			cookie.ClearSessionCookie(c, m.cookieCfg)
			c.Next()
			return
		}

		c.Set(ctxPrincipalKey, principal)
		c.Next()
	}
}

// RequireKind gates a route to one principal kind. Anonymous visitors are sent
// to the login page, the other kind gets an access denied notice.
func (m *AuthMiddleware) RequireKind(kind account.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			httperr.AbortWithRedirect(c, "/login", errNoSession, flash.LevelWarning, "Please login first")
			return
		}
		if !principal.Is(kind) {
			httperr.AbortWithRedirect(c, "/", errAccessDenied, flash.LevelDanger, "Access denied")
			return
		}
		c.Next()
	}
}

func GetPrincipal(c *gin.Context) (account.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return account.Principal{}, false
	}

	p, ok := v.(account.Principal)
	return p, ok
}
