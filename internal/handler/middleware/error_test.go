//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"pet-adoption/internal/handler/httperr"
	"pet-adoption/internal/handler/middleware"
	"pet-adoption/internal/pkg/flash"
	"pet-adoption/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.ErrorHandler())
	engine.Use(handlers...)
	return engine
}

func TestErrorHandler(t *testing.T) {
	t.Run("recorded error without a response falls back to home", func(t *testing.T) {
		engine := newEngine()
		engine.GET("/silent", func(c *gin.Context) {
			_ = c.Error(errors.New("boom"))
		})

		w := httptest.PerformRequest(t, engine, http.MethodGet, "/silent", nil)

		httptest.AssertNotice(t, w, "/", flash.LevelDanger, "Something went wrong")
	})

	t.Run("recorded redirect is replayed when nothing was written", func(t *testing.T) {
		engine := newEngine()
		engine.GET("/replay", func(c *gin.Context) {
			_ = c.Error(&gin.Error{
				Err:  errors.New("not found"),
				Type: gin.ErrorTypePublic,
				Meta: httperr.Redirect{
					Location: "/owner/dashboard",
					Notice:   flash.Notice{Level: flash.LevelWarning, Message: "Pet not found"},
				},
			})
		})

		w := httptest.PerformRequest(t, engine, http.MethodGet, "/replay", nil)

		httptest.AssertNotice(t, w, "/owner/dashboard", flash.LevelWarning, "Pet not found")
	})

	t.Run("AbortWithRedirect keeps its own response and error", func(t *testing.T) {
		var recorded []*gin.Error
		engine := newEngine(func(c *gin.Context) {
			c.Next()
			recorded = c.Errors
		})
		engine.POST("/adopt", func(c *gin.Context) {
			httperr.AbortWithRedirect(c, "/pet/1", errors.New("taken"), flash.LevelWarning, "Pet is no longer available")
		})

		w := httptest.PerformForm(t, engine, "/adopt", nil, nil)

		httptest.AssertNotice(t, w, "/pet/1", flash.LevelWarning, "Pet is no longer available")
		require.Len(t, recorded, 1)
		assert.EqualError(t, recorded[0].Err, "taken")
		redirect, ok := recorded[0].Meta.(httperr.Redirect)
		require.True(t, ok)
		assert.Equal(t, "/pet/1", redirect.Location)
	})

	t.Run("successful responses are left alone", func(t *testing.T) {
		engine := newEngine()
		engine.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.PerformRequest(t, engine, http.MethodGet, "/ok", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, httptest.FindCookie(w, flash.CookieName))
	})
}

func TestCustomRecovery(t *testing.T) {
	t.Run("panic before writing redirects with a notice", func(t *testing.T) {
		engine := newEngine()
		engine.GET("/panic", func(c *gin.Context) { panic("kaboom") })

		w := httptest.PerformRequest(t, engine, http.MethodGet, "/panic", nil)

		httptest.AssertNotice(t, w, "/", flash.LevelDanger, "Something went wrong")
	})

	t.Run("panic after writing keeps the written status", func(t *testing.T) {
		engine := newEngine()
		engine.GET("/late", func(c *gin.Context) {
			c.String(http.StatusOK, "partial")
			panic("kaboom")
		})

		w := httptest.PerformRequest(t, engine, http.MethodGet, "/late", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "partial", w.Body.String())
	})
}
