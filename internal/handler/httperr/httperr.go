package httperr

import (
	"net/http"

	"pet-adoption/internal/pkg/flash"

	"github.com/gin-gonic/gin"
)

// Redirect is attached to the recorded gin.Error so ErrorHandler and the
// request logger can see where a failure was sent.
type Redirect struct {
	Location string       `json:"location"`
	Notice   flash.Notice `json:"notice"`
}

// preserves original error for future monitoring
func AbortWithRedirect(c *gin.Context, location string, err error, level flash.Level, msg string) {
	if err == nil {
		panic("AbortWithRedirect: err cannot be nil")
	}

	meta := Redirect{
		Location: location,
		Notice:   flash.Notice{Level: level, Message: msg},
	}

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: meta,
	})
	flash.Set(c, level, msg)
	c.Redirect(http.StatusSeeOther, location)
	c.Abort()
}

// RedirectWithNotice is the success path counterpart of AbortWithRedirect.
func RedirectWithNotice(c *gin.Context, location string, level flash.Level, msg string) {
	flash.Set(c, level, msg)
	c.Redirect(http.StatusSeeOther, location)
}
