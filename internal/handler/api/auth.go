package api

import (
	"unicode"

	"pet-adoption/internal/domain/account"
	reqdto "pet-adoption/internal/handler/dto/request"
	resdto "pet-adoption/internal/handler/dto/response"
	"pet-adoption/internal/handler/httperr"
	"pet-adoption/internal/pkg/config"
	"pet-adoption/internal/pkg/cookie"
	"pet-adoption/internal/pkg/errs"
	"pet-adoption/internal/pkg/flash"
	"pet-adoption/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	cookieCfg    config.CookieConfig
	sessionTTL   config.SessionConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		cookieCfg:    cfg.Cookie,
		sessionTTL:   cfg.Session,
	}
}

// @Summary Login form
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.Page
// @Router /login [get]
func (h *AuthHandler) LoginPage(c *gin.Context) {
	render(c, resdto.FormPage{
		Form:   "login",
		Action: "/login",
		Fields: []string{"email", "password", "acc_type"},
	})
}

// @Summary Login
// @Description Authenticates an adopter (acc_type=user) or an owner (acc_type=owner)
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param acc_type formData string false "user or owner"
// @Success 303
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var form reqdto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.AbortWithRedirect(c, "/login", err, flash.LevelDanger, "Invalid email or password")
		return
	}

	in, err := form.ToInput()
	if err != nil {
		httperr.AbortWithRedirect(c, "/login", err, flash.LevelDanger, "Invalid email or password")
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), in)
	if err != nil {
		if errs.Is(err, commands.ErrInvalidCredentials) {
			httperr.AbortWithRedirect(c, "/login", err, flash.LevelDanger, "Invalid email or password")
			return
		}
		httperr.AbortWithRedirect(c, "/login", err, flash.LevelDanger, genericFailure)
		return
	}

	cookie.SetSessionCookie(c, h.cookieCfg, result.Token, h.sessionTTL.Duration)
	httperr.RedirectWithNotice(c, dashboardFor(result.Principal.Kind), flash.LevelSuccess, "Login successful")
}

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	render(c, registerForm("/register"))
}

func (h *AuthHandler) OwnerRegisterPage(c *gin.Context) {
	render(c, registerForm("/owner_register"))
}

// @Summary Register an adopter
// @Tags auth
// @Accept x-www-form-urlencoded
// @Success 303
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	h.register(c, account.KindAdopter, "/register", "Registration successful. Please login.")
}

// @Summary Register an owner
// @Tags auth
// @Accept x-www-form-urlencoded
// @Success 303
// @Router /owner_register [post]
func (h *AuthHandler) OwnerRegister(c *gin.Context) {
	h.register(c, account.KindOwner, "/owner_register", "Owner registration successful. Please login.")
}

func (h *AuthHandler) register(c *gin.Context, kind account.Kind, back, success string) {
	var form reqdto.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.AbortWithRedirect(c, back, err, flash.LevelDanger, "Name, email and password are required")
		return
	}

	_, err := h.authCommands.Register(c.Request.Context(), form.ToInput(kind))
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrEmailAlreadyRegistered):
			httperr.AbortWithRedirect(c, back, err, flash.LevelDanger, "Email already registered")
		case errs.Is(err, commands.ErrValidation):
			httperr.AbortWithRedirect(c, back, err, flash.LevelDanger, validationMessage(err))
		default:
			httperr.AbortWithRedirect(c, back, err, flash.LevelDanger, genericFailure)
		}
		return
	}

	httperr.RedirectWithNotice(c, "/login", flash.LevelSuccess, success)
}

// @Summary Logout
// @Tags auth
// @Success 303
// @Router /logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.cookieCfg)
	httperr.RedirectWithNotice(c, "/", flash.LevelInfo, "Logged out")
}

func registerForm(action string) resdto.FormPage {
	return resdto.FormPage{
		Form:   "register",
		Action: action,
		Fields: []string{"name", "email", "phone", "address", "password"},
	}
}

// validationMessage surfaces the domain rule that was broken.
func validationMessage(err error) string {
	r := []rune(err.Error())
	if len(r) == 0 {
		return "Invalid input"
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
