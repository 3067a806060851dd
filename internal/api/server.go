package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/gatherly/gatherly-api/docs"
	v1 "github.com/gatherly/gatherly-api/internal/api/handler/v1"
	"github.com/gatherly/gatherly-api/internal/api/middleware"
	"github.com/gatherly/gatherly-api/internal/config"
	"github.com/gatherly/gatherly-api/internal/repository"
	"github.com/gatherly/gatherly-api/internal/repository/dao"
	"github.com/gatherly/gatherly-api/internal/service"
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

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	eventHandler := s.initEventHandler(db)
	groupHandler := s.initGroupHandler(db)
	discussionHandler := s.initDiscussionHandler(db)
	albumHandler := s.initAlbumHandler(db)
	pollHandler := s.initPollHandler(db)
	ticketHandler := s.initTicketHandler(db)
	shoppingHandler := s.initShoppingHandler(db)
	s.MountHandlers(
		authHandler,
		userHandler,
		eventHandler,
		groupHandler,
		discussionHandler,
		albumHandler,
		pollHandler,
		ticketHandler,
		shoppingHandler,
	)

	return s
}

func (s *Server) initUserService(db *gorm.DB) *service.UserService {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)

	return service.NewUserService(repo)
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc, s.initUserService(db))

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	handler := v1.NewUserHandler(s.initUserService(db))

	return handler
}

func (s *Server) initEventHandler(db *gorm.DB) *v1.EventHandler {
	eventDAO := dao.NewEventDAO(db)
	repo := repository.NewEventRepository(eventDAO)
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	groupRepo := repository.NewGroupRepository(dao.NewGroupDAO(db))
	svc := service.NewEventService(repo, userRepo, groupRepo)
	handler := v1.NewEventHandler(svc, s.initUserService(db))

	return handler
}

func (s *Server) initGroupHandler(db *gorm.DB) *v1.GroupHandler {
	groupDAO := dao.NewGroupDAO(db)
	repo := repository.NewGroupRepository(groupDAO)
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	svc := service.NewGroupService(repo, userRepo, eventRepo)
	handler := v1.NewGroupHandler(svc, s.initUserService(db))

	return handler
}

func (s *Server) initDiscussionHandler(db *gorm.DB) *v1.DiscussionHandler {
	discussionDAO := dao.NewDiscussionDAO(db)
	repo := repository.NewDiscussionRepository(discussionDAO)
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	groupRepo := repository.NewGroupRepository(dao.NewGroupDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewDiscussionService(repo, eventRepo, groupRepo, userRepo)
	handler := v1.NewDiscussionHandler(svc, s.initUserService(db))

	return handler
}

func (s *Server) initAlbumHandler(db *gorm.DB) *v1.AlbumHandler {
	albumDAO := dao.NewAlbumDAO(db)
	repo := repository.NewAlbumRepository(albumDAO)
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	svc := service.NewAlbumService(repo, eventRepo)
	handler := v1.NewAlbumHandler(s.Config.API, svc, s.initUserService(db))

	return handler
}

func (s *Server) initPollHandler(db *gorm.DB) *v1.PollHandler {
	pollDAO := dao.NewPollDAO(db)
	repo := repository.NewPollRepository(pollDAO)
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	svc := service.NewPollService(repo, eventRepo)
	handler := v1.NewPollHandler(svc, s.initUserService(db))

	return handler
}

func (s *Server) initTicketHandler(db *gorm.DB) *v1.TicketHandler {
	ticketDAO := dao.NewTicketDAO(db)
	repo := repository.NewTicketRepository(ticketDAO)
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	svc := service.NewTicketService(repo, eventRepo)
	handler := v1.NewTicketHandler(svc, s.initUserService(db))

	return handler
}

func (s *Server) initShoppingHandler(db *gorm.DB) *v1.ShoppingHandler {
	shoppingDAO := dao.NewShoppingDAO(db)
	repo := repository.NewShoppingRepository(shoppingDAO)
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	svc := service.NewShoppingService(repo, eventRepo)
	handler := v1.NewShoppingHandler(svc, s.initUserService(db))

	return handler
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
	eventHandler *v1.EventHandler,
	groupHandler *v1.GroupHandler,
	discussionHandler *v1.DiscussionHandler,
	albumHandler *v1.AlbumHandler,
	pollHandler *v1.PollHandler,
	ticketHandler *v1.TicketHandler,
	shoppingHandler *v1.ShoppingHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/register", authHandler.HandleRegister)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	authed := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authed.GET("/auth/me", authHandler.HandleGetMe)

		authed.GET("/users", userHandler.HandleListUsers)
		authed.GET("/users/search", userHandler.HandleSearchUsers)
		authed.GET("/users/:userID", userHandler.HandleGetUser)
		authed.PUT("/users/:userID", userHandler.HandleUpdateUser)
		authed.DELETE("/users/:userID", userHandler.HandleDeleteUser)

		authed.GET("/events", eventHandler.HandleListEvents)
		authed.POST("/events", eventHandler.HandleCreateEvent)
		authed.GET("/events/user/:userID", eventHandler.HandleListUserEvents)
		authed.GET("/events/:eventID", eventHandler.HandleGetEvent)
		authed.PUT("/events/:eventID", eventHandler.HandleUpdateEvent)
		authed.DELETE("/events/:eventID", eventHandler.HandleDeleteEvent)
		authed.POST("/events/:eventID/config", eventHandler.HandleConfigureEvent)
		authed.POST("/events/:eventID/join", eventHandler.HandleJoinEvent)

		authed.GET("/groups", groupHandler.HandleListGroups)
		authed.POST("/groups", groupHandler.HandleCreateGroup)
		authed.GET("/groups/user/:userID", groupHandler.HandleListUserGroups)
		authed.GET("/groups/:groupID", groupHandler.HandleGetGroup)
		authed.PUT("/groups/:groupID", groupHandler.HandleUpdateGroup)
		authed.DELETE("/groups/:groupID", groupHandler.HandleDeleteGroup)
		authed.POST("/groups/:groupID/join", groupHandler.HandleJoinGroup)
		authed.POST("/groups/:groupID/leave", groupHandler.HandleLeaveGroup)
		authed.POST("/groups/:groupID/promote/:userID", groupHandler.HandlePromoteUser)

		authed.GET("/discussions", discussionHandler.HandleListDiscussions)
		authed.POST("/discussions", discussionHandler.HandleCreateDiscussion)
		authed.GET("/discussions/:discussionID", discussionHandler.HandleGetDiscussion)
		authed.POST("/discussions/:discussionID/messages", discussionHandler.HandlePostMessage)

		authed.POST("/albums", albumHandler.HandleCreateAlbum)
		authed.GET("/albums/events/:eventID", albumHandler.HandleListEventAlbums)
		authed.POST("/albums/photos", albumHandler.HandleUploadPhoto)
		authed.POST("/albums/photos/:photoID/comments", albumHandler.HandleCreateComment)

		authed.POST("/polls", pollHandler.HandleCreatePoll)
		authed.GET("/polls/events/:eventID", pollHandler.HandleListEventPolls)
		authed.POST("/polls/vote", pollHandler.HandleVote)

		authed.POST("/tickets/types", ticketHandler.HandleCreateTicketType)
		authed.GET("/tickets/types/events/:eventID", ticketHandler.HandleListEventTicketTypes)
		authed.POST("/tickets/purchase", ticketHandler.HandlePurchase)
		authed.GET("/tickets/user/:userID", ticketHandler.HandleListUserTickets)

		authed.POST("/shopping", shoppingHandler.HandleAddItem)
		authed.GET("/shopping/events/:eventID", shoppingHandler.HandleGetEventList)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.Static("/uploads/photos", s.Config.API.UploadDir)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Gatherly API"
	docs.SwaggerInfo.Description = "REST backend for organizing groups, events and everything around them."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
