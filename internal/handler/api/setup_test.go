//go:build unit

package api_test

import (
	"net/http"

	"pet-adoption/internal/domain/account"
	"pet-adoption/internal/handler"
	"pet-adoption/internal/handler/api"
	"pet-adoption/internal/handler/middleware"
	"pet-adoption/internal/infra/metrics"
	"pet-adoption/internal/pkg/config"
	"pet-adoption/internal/pkg/cookie"
	"pet-adoption/internal/pkg/jwt"
	"pet-adoption/internal/usecase"
	commandsmock "pet-adoption/internal/testutil/mock/commands"
	queriesmock "pet-adoption/internal/testutil/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// handlerSuite wires the full router around mocked use cases so the session,
// flash and access middleware run exactly as in production.
type handlerSuite struct {
	suite.Suite
	cfg      config.Config
	router   *gin.Engine
	sessions *jwt.Service
	mockCtrl *gomock.Controller

	authCommands     *commandsmock.MockAuthCommands
	petCommands      *commandsmock.MockPetCommands
	adoptionCommands *commandsmock.MockAdoptionCommands
	catalogQueries   *queriesmock.MockCatalogQueries
	adoptionQueries  *queriesmock.MockAdoptionQueries
}

func (s *handlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.cfg = config.NewTestConfig()
	s.cfg.Upload.Dir = s.T().TempDir()

	s.mockCtrl = gomock.NewController(s.T())
	s.authCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.petCommands = commandsmock.NewMockPetCommands(s.mockCtrl)
	s.adoptionCommands = commandsmock.NewMockAdoptionCommands(s.mockCtrl)
	s.catalogQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.adoptionQueries = queriesmock.NewMockAdoptionQueries(s.mockCtrl)

	s.router = s.newRouter(s.cfg)
}

func (s *handlerSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *handlerSuite) newRouter(cfg config.Config) *gin.Engine {
	s.sessions = jwt.NewService(cfg.Session.Secret, cfg.Session.Duration)

	handlers := handler.NewHandlers(
		api.NewAuthHandler(s.authCommands, cfg),
		api.NewCatalogHandler(s.catalogQueries),
		api.NewPetHandler(s.petCommands, s.catalogQueries),
		api.NewAdoptionHandler(s.adoptionCommands, s.adoptionQueries),
	)

	engine := gin.New()
	handler.NewRouter(
		engine,
		cfg,
		middleware.NewLogger(cfg.Log),
		metrics.New(),
		handlers,
		middleware.NewAuthMiddleware(usecase.NewSessionValidator(s.sessions), cfg),
		middleware.NewRateLimiter(cfg.RateLimit),
	)
	return engine
}

// login issues a real session cookie for a fresh principal of the given kind.
func (s *handlerSuite) login(kind account.Kind) (uuid.UUID, []*http.Cookie) {
	id := uuid.New()
	token, err := s.sessions.GenerateToken(account.Principal{ID: id, Kind: kind})
	s.Require().NoError(err)

	return id, []*http.Cookie{{Name: cookie.SessionCookieName, Value: token}}
}

func (s *handlerSuite) loginOwner() (uuid.UUID, []*http.Cookie) {
	return s.login(account.KindOwner)
}

func (s *handlerSuite) loginAdopter() (uuid.UUID, []*http.Cookie) {
	return s.login(account.KindAdopter)
}
