package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pet-adoption/internal/domain/account"
	"pet-adoption/internal/handler/api"
	"pet-adoption/internal/handler/middleware"
	"pet-adoption/internal/infra/metrics"
	"pet-adoption/internal/pkg/config"
	"pet-adoption/internal/pkg/flash"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Catalog  *api.CatalogHandler
	Pet      *api.PetHandler
	Adoption *api.AdoptionHandler
}

func NewHandlers(auth *api.AuthHandler, catalog *api.CatalogHandler, pet *api.PetHandler, adoption *api.AdoptionHandler) Handlers {
	return Handlers{Auth: auth, Catalog: catalog, Pet: pet, Adoption: adoption}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg, logger, m, authMiddleware)
	setupRoutes(engine, cfg, m, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics, authMiddleware *middleware.AuthMiddleware) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware(m))
	engine.Use(middleware.ErrorHandler())
	// flash must run before anything that can set a notice
	engine.Use(flash.Middleware(cfg.Cookie))
	engine.Use(authMiddleware.LoadSession())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	if cfg.Upload.Driver != "s3" {
		engine.Static(cfg.Upload.URLPrefix, cfg.Upload.Dir)
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	throttled := []gin.HandlerFunc{limiter.Limit()}

	public := engine.Group("")
	{
		addRoutes(public, []route{
			{Method: http.MethodGet, Path: "/", Handler: h.Catalog.Index},
			{Method: http.MethodGet, Path: "/search", Handler: h.Catalog.Search},
			{Method: http.MethodGet, Path: "/pet/:id", Handler: h.Catalog.PetDetail},

			{Method: http.MethodGet, Path: "/login", Handler: h.Auth.LoginPage},
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: throttled},
			{Method: http.MethodGet, Path: "/register", Handler: h.Auth.RegisterPage},
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: throttled},
			{Method: http.MethodGet, Path: "/owner_register", Handler: h.Auth.OwnerRegisterPage},
			{Method: http.MethodPost, Path: "/owner_register", Handler: h.Auth.OwnerRegister, Mw: throttled},
			{Method: http.MethodGet, Path: "/logout", Handler: h.Auth.Logout},
		})
	}

	owner := engine.Group("/owner")
	owner.Use(authMiddleware.RequireKind(account.KindOwner))
	{
		addRoutes(owner, []route{
			{Method: http.MethodGet, Path: "/dashboard", Handler: h.Pet.OwnerDashboard},
			{Method: http.MethodGet, Path: "/pet/add", Handler: h.Pet.AddPetPage},
			{Method: http.MethodPost, Path: "/pet/add", Handler: h.Pet.AddPet},
			{Method: http.MethodGet, Path: "/pet/edit/:id", Handler: h.Pet.EditPetPage},
			{Method: http.MethodPost, Path: "/pet/edit/:id", Handler: h.Pet.EditPet},
			{Method: http.MethodPost, Path: "/pet/delete/:id", Handler: h.Pet.DeletePet},
			{Method: http.MethodGet, Path: "/requests", Handler: h.Adoption.OwnerRequests},
			{Method: http.MethodPost, Path: "/request/decide/:id", Handler: h.Adoption.Decide},
		})
	}

	adopter := engine.Group("")
	adopter.Use(authMiddleware.RequireKind(account.KindAdopter))
	{
		addRoutes(adopter, []route{
			{Method: http.MethodPost, Path: "/adopt/:id", Handler: h.Adoption.Adopt},
			{Method: http.MethodGet, Path: "/my_requests", Handler: h.Adoption.MyRequests},
			{Method: http.MethodGet, Path: "/my_history", Handler: h.Adoption.MyHistory},
			{Method: http.MethodGet, Path: "/user/dashboard", Handler: h.Adoption.UserDashboard},
			{Method: http.MethodGet, Path: "/user/payments", Handler: h.Adoption.Payments},
			{Method: http.MethodGet, Path: "/user/payment/:id", Handler: h.Adoption.PaymentPage},
			{Method: http.MethodPost, Path: "/user/payment/:id", Handler: h.Adoption.Pay},
			// short form used by older links
			{Method: http.MethodGet, Path: "/payment/:id", Handler: h.Adoption.PaymentPage},
			{Method: http.MethodPost, Path: "/payment/:id", Handler: h.Adoption.Pay},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
