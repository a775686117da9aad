package api

import (
	"net/http"

	"pet-adoption/internal/domain/account"
	resdto "pet-adoption/internal/handler/dto/response"
	"pet-adoption/internal/handler/httperr"
	"pet-adoption/internal/handler/middleware"
	"pet-adoption/internal/pkg/errs"
	"pet-adoption/internal/pkg/flash"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const genericFailure = "Something went wrong"

var (
	errMissingPrincipal = errs.New("principal missing from context")
	errInvalidID        = errs.New("invalid id")
)

func render(c *gin.Context, data any) {
	c.JSON(http.StatusOK, page(c, data))
}

// renderFailure is for GET pages whose data could not be read. Redirecting
// would loop on the page that failed, so the notice is returned inline.
func renderFailure(c *gin.Context, err error) {
	_ = c.Error(err)
	p := page(c, nil)
	p.Notice = &flash.Notice{Level: flash.LevelDanger, Message: genericFailure}
	c.JSON(http.StatusInternalServerError, p)
}

func page(c *gin.Context, data any) resdto.Page {
	p := resdto.Page{
		Notice: flash.Current(c),
		Data:   data,
	}
	if principal, ok := middleware.GetPrincipal(c); ok {
		p.Principal = &resdto.PrincipalInfo{ID: principal.ID, Kind: principal.Kind.String()}
	}
	return p
}

// principalOf is a fallback for routes mounted without RequireKind.
func principalOf(c *gin.Context, kind account.Kind) (account.Principal, bool) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok || !principal.Is(kind) {
		httperr.AbortWithRedirect(c, "/login", errMissingPrincipal, flash.LevelWarning, "Please login first")
		return account.Principal{}, false
	}
	return principal, true
}

func pathID(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errs.Mark(err, errInvalidID)
	}
	return id, nil
}

func dashboardFor(kind account.Kind) string {
	if kind == account.KindOwner {
		return "/owner/dashboard"
	}
	return "/user/dashboard"
}
