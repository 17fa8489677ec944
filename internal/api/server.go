package api

import (
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/hackhub/hackhub-api/docs"
	v1 "github.com/hackhub/hackhub-api/internal/api/handler/v1"
	"github.com/hackhub/hackhub-api/internal/api/middleware"
	"github.com/hackhub/hackhub-api/internal/config"
	"github.com/hackhub/hackhub-api/internal/event"
	"github.com/hackhub/hackhub-api/internal/gateway"
	"github.com/hackhub/hackhub-api/internal/notification"
	"github.com/hackhub/hackhub-api/internal/repository"
	"github.com/hackhub/hackhub-api/internal/repository/dao"
	"github.com/hackhub/hackhub-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	hackathonRepo := repository.NewHackathonRepository(dao.NewHackathonDAO(db), dao.NewUserDAO(db))
	supportRepo := repository.NewSupportRepository(dao.NewSupportDAO(db))

	facade := buildGatewayFacade(conf.Gateway)
	locks := service.NewLockRegistry()

	hub := v1.NewStreamHub()
	go hub.Run()

	dispatcher := notification.NewDispatcher(
		notification.NewEmailStrategy(),
		notification.NewInAppStrategy(supportRepo, hub),
	)
	bus := event.NewBus(notification.NewTeamListener(dispatcher))

	userSvc := service.NewUserService(userRepo)

	authHandler := v1.NewAuthHandler(conf.API, service.NewAuthService(userRepo))
	userHandler := v1.NewUserHandler(userSvc)
	hackathonHandler := v1.NewHackathonHandler(
		service.NewHackathonService(hackathonRepo, userRepo, bus, facade, locks), userSvc)
	teamHandler := v1.NewTeamHandler(
		service.NewTeamService(hackathonRepo, userRepo, locks), userSvc)
	supportHandler := v1.NewSupportHandler(
		service.NewSupportService(supportRepo, hackathonRepo, userRepo, facade), userSvc)
	notificationHandler := v1.NewNotificationHandler(
		service.NewNotificationService(supportRepo, userRepo, dispatcher), userSvc, hub)

	s.MountHandlers(authHandler, userHandler, hackathonHandler, teamHandler, supportHandler, notificationHandler)

	return s
}

func buildGatewayFacade(conf *config.GatewayConfig) *gateway.Facade {
	latency := time.Duration(conf.SimulatedLatencyMS) * time.Millisecond
	calendar := gateway.NewMockCalendar(latency)

	var payment gateway.Payment
	if conf.PaymentProvider == "stripe" {
		payment = gateway.NewStripePayment(conf.StripeAPIKey)
	} else {
		payment = gateway.NewMockPayment(latency)
	}

	return gateway.NewFacade(calendar, payment)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	hackathonHandler *v1.HackathonHandler,
	teamHandler *v1.TeamHandler,
	supportHandler *v1.SupportHandler,
	notificationHandler *v1.NotificationHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	authenticated := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authenticated.GET("/users/me", userHandler.HandleGetMe)
		authenticated.GET("/users/:userID", userHandler.HandleGetUser)
		authenticated.GET("/users", userHandler.HandleListUsers)
		authenticated.PUT("/users/:userID/role", userHandler.HandleUpdateRole)

		authenticated.GET("/hackathons", hackathonHandler.HandleListHackathons)
		authenticated.POST("/hackathons", hackathonHandler.HandleCreateHackathon)
		authenticated.GET("/hackathons/:hackathonID", hackathonHandler.HandleGetHackathon)
		authenticated.PUT("/hackathons/:hackathonID/status", hackathonHandler.HandleUpdateStatus)
		authenticated.PUT("/hackathons/:hackathonID/judge", hackathonHandler.HandleAssignJudge)
		authenticated.PUT("/hackathons/:hackathonID/winner", hackathonHandler.HandleDeclareWinner)
		authenticated.GET("/hackathons/:hackathonID/mentors", hackathonHandler.HandleGetMentors)
		authenticated.POST("/hackathons/:hackathonID/mentors", hackathonHandler.HandleAddMentor)
		authenticated.DELETE("/hackathons/:hackathonID/mentors/:mentorID", hackathonHandler.HandleRemoveMentor)
		authenticated.GET("/hackathons/:hackathonID/teams", teamHandler.HandleListTeams)

		authenticated.POST("/teams", teamHandler.HandleCreateTeam)
		authenticated.GET("/teams/:teamID", teamHandler.HandleGetTeam)
		authenticated.DELETE("/teams/:teamID", teamHandler.HandleDeleteTeam)
		authenticated.POST("/teams/:teamID/join", teamHandler.HandleJoinTeam)
		authenticated.POST("/teams/:teamID/leave", teamHandler.HandleLeaveTeam)
		authenticated.PUT("/teams/:teamID/project", teamHandler.HandleSubmitProject)
		authenticated.PUT("/teams/:teamID/evaluation", teamHandler.HandleEvaluateTeam)
		authenticated.DELETE("/teams/:teamID/evaluation", teamHandler.HandleResetEvaluation)

		authenticated.POST("/support-requests", supportHandler.HandleCreateRequest)
		authenticated.GET("/support-requests", supportHandler.HandleListRequests)
		authenticated.GET("/support-requests/:requestID", supportHandler.HandleGetRequest)
		authenticated.PUT("/support-requests/:requestID/mentor", supportHandler.HandleAssignMentor)
		authenticated.POST("/support-requests/:requestID/call", supportHandler.HandleScheduleCall)
		authenticated.DELETE("/support-requests/:requestID/call", supportHandler.HandleCancelCall)
		authenticated.POST("/support-requests/:requestID/resolve", supportHandler.HandleResolve)

		authenticated.GET("/notifications", notificationHandler.HandleListNotifications)
		authenticated.POST("/notifications/:notificationID/read", notificationHandler.HandleMarkRead)
		authenticated.POST("/notifications/send", notificationHandler.HandleSendNotification)
		authenticated.GET("/notifications/stream", notificationHandler.HandleStream)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "HackHub API"
	docs.SwaggerInfo.Description = "Hackathon management API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
