package api

import (
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hackboard/hackboard-api/docs"
	v1 "github.com/hackboard/hackboard-api/internal/api/handler/v1"
	"github.com/hackboard/hackboard-api/internal/api/middleware"
	"github.com/hackboard/hackboard-api/internal/config"
	"github.com/hackboard/hackboard-api/internal/repository"
	"github.com/hackboard/hackboard-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

// NewServer wires the HTTP layer on top of the stores picked at startup.
// The handlers never know which backend they are talking to.
func NewServer(conf *config.AppConfig, stores *repository.Stores) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	eventHandler := s.initEventHandler(stores)
	submissionHandler := s.initSubmissionHandler(stores)
	reviewHandler := s.initReviewHandler(stores)
	registrationHandler := s.initRegistrationHandler(stores)
	userHandler := s.initUserHandler(stores)
	authHandler := s.initAuthHandler(stores)
	s.MountHandlers(eventHandler, submissionHandler, reviewHandler, registrationHandler, userHandler, authHandler)

	return s
}

func (s *Server) initEventHandler(stores *repository.Stores) *v1.EventHandler {
	repo := repository.NewEventRepository(stores.Events)
	submissionRepo := repository.NewSubmissionRepository(stores.Submissions)
	reviewRepo := repository.NewReviewRepository(stores.Reviews)
	svc := service.NewEventService(repo, submissionRepo, reviewRepo)

	return v1.NewEventHandler(svc)
}

func (s *Server) initSubmissionHandler(stores *repository.Stores) *v1.SubmissionHandler {
	repo := repository.NewSubmissionRepository(stores.Submissions)
	eventRepo := repository.NewEventRepository(stores.Events)
	svc := service.NewSubmissionService(repo, eventRepo)

	return v1.NewSubmissionHandler(svc)
}

func (s *Server) initReviewHandler(stores *repository.Stores) *v1.ReviewHandler {
	repo := repository.NewReviewRepository(stores.Reviews)
	submissionRepo := repository.NewSubmissionRepository(stores.Submissions)
	eventRepo := repository.NewEventRepository(stores.Events)
	svc := service.NewReviewService(repo, submissionRepo, eventRepo)

	return v1.NewReviewHandler(svc)
}

func (s *Server) initRegistrationHandler(stores *repository.Stores) *v1.RegistrationHandler {
	repo := repository.NewRegistrationRepository(stores.Registrations)
	eventRepo := repository.NewEventRepository(stores.Events)
	svc := service.NewRegistrationService(repo, eventRepo)

	return v1.NewRegistrationHandler(svc)
}

func (s *Server) initUserHandler(stores *repository.Stores) *v1.UserHandler {
	repo := repository.NewUserRepository(stores.Users)
	svc := service.NewUserService(repo)

	return v1.NewUserHandler(svc)
}

func (s *Server) initAuthHandler(stores *repository.Stores) *v1.AuthHandler {
	repo := repository.NewUserRepository(stores.Users)
	svc := service.NewAuthService(repo)

	return v1.NewAuthHandler(svc, s.Config.API.JWTSigningKey)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))

	timeout := time.Duration(s.Config.API.RequestTimeoutSecs) * time.Second
	if timeout > 0 {
		s.Router.Use(middleware.RequestTimeout(timeout))
	}
}

func (s *Server) MountHandlers(
	eventHandler *v1.EventHandler,
	submissionHandler *v1.SubmissionHandler,
	reviewHandler *v1.ReviewHandler,
	registrationHandler *v1.RegistrationHandler,
	userHandler *v1.UserHandler,
	authHandler *v1.AuthHandler,
) {
	const basePath = "/api"

	open := s.Router.Group(basePath)
	{
		open.POST("/auth/signup", authHandler.HandleSignup)
		open.POST("/auth/login", authHandler.HandleLogin)

		open.GET("/events", eventHandler.HandleListEvents)
		open.GET("/events/:id", eventHandler.HandleGetEvent)
		open.POST("/events/:id/validate-judge", eventHandler.HandleValidateJudge)
		open.GET("/events/:id/leaderboard", eventHandler.HandleGetLeaderboard)

		open.GET("/events/:id/registrations", registrationHandler.HandleListRegistrations)
		open.POST("/events/:id/registrations", registrationHandler.HandleCreateRegistration)

		open.GET("/judges", userHandler.HandleListJudges)

		open.GET("/submissions", submissionHandler.HandleListSubmissions)
		open.POST("/submissions", submissionHandler.HandleCreateSubmission)

		open.GET("/reviews", reviewHandler.HandleListReviews)
		open.POST("/reviews", reviewHandler.HandleCreateReview)
	}

	protected := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		protected.POST("/events", eventHandler.HandleCreateEvent)
		protected.PUT("/events/:id", eventHandler.HandleUpdateEvent)
		protected.DELETE("/events/:id", eventHandler.HandleDeleteEvent)
		protected.POST("/events/:id/announcements", eventHandler.HandleCreateAnnouncement)
		protected.DELETE("/events/:id/announcements/:announcementID", eventHandler.HandleDeleteAnnouncement)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Hackboard API"
	docs.SwaggerInfo.Description = "Event and hackathon management API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
