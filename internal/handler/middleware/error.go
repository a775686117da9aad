package middleware

import (
	"log/slog"
	"net/http"

	"pet-adoption/internal/handler/httperr"
	"pet-adoption/internal/pkg/errs"
	"pet-adoption/internal/pkg/flash"

	"github.com/gin-gonic/gin"
)

const (
	fallbackLocation = "/"
	genericFailure   = "Something went wrong"
	stackLogLines    = 12
)

// ErrorHandler makes sure a handler that recorded an error but wrote nothing
// still ends in a redirect with a notice.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if r, ok := err.Meta.(httperr.Redirect); ok {
					httperr.RedirectWithNotice(c, r.Location, r.Notice.Level, r.Notice.Message)
					return
				}
			}
		}

		last := c.Errors.Last()
		slog.Error("unhandled request error",
			"error", last.Err,
			"path", c.Request.URL.Path,
			"stack", errs.ExtractStackLines(last.Err, stackLogLines),
		)
		httperr.RedirectWithNotice(c, fallbackLocation, flash.LevelDanger, genericFailure)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				if c.Writer.Written() {
					c.AbortWithStatus(http.StatusInternalServerError)
					return
				}
				httperr.RedirectWithNotice(c, fallbackLocation, flash.LevelDanger, genericFailure)
				c.Abort()
			}
		}()
		c.Next()
	}
}
