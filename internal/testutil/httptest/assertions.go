//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-adoption/internal/pkg/flash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Page mirrors the JSON envelope of GET endpoints with a typed payload.
type Page[T any] struct {
	Notice    *flash.Notice `json:"notice"`
	Principal *struct {
		ID   string `json:"id"`
		Kind string `json:"kind"`
	} `json:"principal"`
	Data T `json:"data"`
}

func AssertPage[T any](t *testing.T, w *httptest.ResponseRecorder, expectedStatus int) Page[T] {
	t.Helper()

	var page Page[T]
	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return page
	}

	err := json.Unmarshal(w.Body.Bytes(), &page)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	return page
}

// AssertRedirect checks a 303 to location and returns the queued notice.
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) flash.Notice {
	t.Helper()

	require.Equal(t, http.StatusSeeOther, w.Code, "Response: %s", w.Body.String())
	assert.Equal(t, location, w.Header().Get("Location"))

	return Notice(t, w)
}

// AssertNotice checks the level and message queued in the flash cookie.
func AssertNotice(t *testing.T, w *httptest.ResponseRecorder, location string, level flash.Level, message string) {
	t.Helper()

	n := AssertRedirect(t, w, location)
	assert.Equal(t, level, n.Level)
	assert.Equal(t, message, n.Message)
}

func Notice(t *testing.T, w *httptest.ResponseRecorder) flash.Notice {
	t.Helper()

	var found *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == flash.CookieName && c.Value != "" {
			found = c
		}
	}
	if found == nil {
		return flash.Notice{}
	}
	n, ok := flash.Decode(found.Value)
	require.True(t, ok, "flash cookie could not be decoded: %q", found.Value)
	return n
}
