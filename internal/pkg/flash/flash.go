// Package flash carries one-shot notices across a redirect in a cookie.
package flash

import (
	"encoding/base64"
	"encoding/json"

	"pet-adoption/internal/pkg/config"
	"pet-adoption/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
)

const (
	CookieName = "flash"

	ctxConfigKey  = "flash_cookie_config"
	ctxCurrentKey = "flash_current"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelDanger  Level = "danger"
)

type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

func (n Notice) IsZero() bool {
	return n.Message == ""
}

// Middleware consumes an incoming notice so the current request can render it,
// and records the cookie settings used by Set.
func Middleware(cfg config.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxConfigKey, cfg)

		if raw, err := c.Cookie(CookieName); err == nil && raw != "" {
			if n, ok := Decode(raw); ok {
				c.Set(ctxCurrentKey, n)
			}
			write(c, cfg, "", -1)
		}
		c.Next()
	}
}

// Set queues a notice for the next request.
func Set(c *gin.Context, level Level, message string) {
	n := Notice{Level: level, Message: message}
	write(c, cookieConfig(c), Encode(n), 60)
}

// Current returns the notice carried into this request, if any.
func Current(c *gin.Context) *Notice {
	v, ok := c.Get(ctxCurrentKey)
	if !ok {
		return nil
	}
	n, ok := v.(Notice)
	if !ok {
		return nil
	}
	return &n
}

func Encode(n Notice) string {
	b, _ := json.Marshal(n)
	return base64.RawURLEncoding.EncodeToString(b)
}

func Decode(raw string) (Notice, bool) {
	b, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return Notice{}, false
	}
	var n Notice
	if err := json.Unmarshal(b, &n); err != nil || n.IsZero() {
		return Notice{}, false
	}
	return n, true
}

func cookieConfig(c *gin.Context) config.CookieConfig {
	if v, ok := c.Get(ctxConfigKey); ok {
		if cfg, ok := v.(config.CookieConfig); ok {
			return cfg
		}
	}
	return config.CookieConfig{SameSite: "Lax"}
}

func write(c *gin.Context, cfg config.CookieConfig, value string, maxAge int) {
	c.SetSameSite(cookie.SameSite(cfg.SameSite))
	c.SetCookie(CookieName, value, maxAge, "/", cfg.Domain, cfg.Secure, true)
}
