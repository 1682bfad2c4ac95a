package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"continuity/config"
	"continuity/internal/handler"
	"continuity/internal/middleware"
	"continuity/internal/redis"
	"continuity/internal/services"
	"continuity/internal/transport/httpdto"
	"continuity/pkg/database"
	"continuity/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	Auth       *handler.AuthHandler
	Space      *handler.SpaceHandler
	Folder     *handler.FolderHandler
	Snapshot   *handler.SnapshotHandler
	Character  *handler.CharacterHandler
	Attachment *handler.AttachmentHandler
	UserSpace  *handler.UserSpaceHandler
}

func New(cfg *config.Config, l *logger.Logger) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.AppPort),
			Handler: engine,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

func (s *Server) SetupRoutes(handlers *Handlers, authService *services.AuthService, limiter *redis.RateLimiter) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.CORSMiddleware(s.config.CORSAllowOrigins))
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.ErrorHandler(s.logger))

	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"message": "pong"}))
	})

	s.engine.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(); err != nil {
			c.JSON(http.StatusServiceUnavailable, httpdto.NewErrorResponse(err.Error(), "UNHEALTHY"))
			return
		}
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"status": "healthy"}))
	})

	auth := s.engine.Group("/auth")
	auth.Use(middleware.AuthRateLimitMiddleware(limiter))
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)
	}

	authed := s.engine.Group("/")
	authed.Use(middleware.AuthMiddleware(authService))

	spaces := authed.Group("/spaces")
	{
		spaces.POST("", handlers.Space.Create)
		spaces.GET("", handlers.Space.GetAll)
		spaces.GET("/:spaceId", handlers.Space.GetSingle)
		spaces.PUT("/:spaceId", handlers.Space.Update)
		spaces.GET("/:spaceId/search", handlers.Space.Search)
		spaces.GET("/:spaceId/members", handlers.UserSpace.ListMembers)
		spaces.POST("/members", handlers.UserSpace.AddMember)
		spaces.GET("/mine", handlers.UserSpace.ListMine)
	}

	folders := authed.Group("/folders")
	{
		folders.POST("", handlers.Folder.Create)
		folders.GET("/:folderId", handlers.Folder.GetSingle)
		folders.GET("/space/:spaceId", handlers.Folder.ListBySpace)
		folders.GET("/parent/:folderId", handlers.Folder.ListByParent)
		folders.PUT("/:folderId", handlers.Folder.Update)
	}

	snapshots := authed.Group("/snapshots")
	{
		snapshots.POST("", handlers.Snapshot.Create)
		snapshots.GET("/:snapshotId", handlers.Snapshot.GetSingle)
		snapshots.GET("/space/:spaceId", handlers.Snapshot.ListBySpace)
		snapshots.GET("/space/:spaceId/root", handlers.Snapshot.ListRootBySpace)
		snapshots.GET("/folder/:folderId", handlers.Snapshot.ListByFolder)
		snapshots.PUT("/:snapshotId", handlers.Snapshot.Update)
	}

	characters := authed.Group("/characters")
	{
		characters.POST("", handlers.Character.Create)
		characters.GET("", handlers.Character.GetAll)
		characters.GET("/:characterId", handlers.Character.GetSingle)
		characters.PUT("/:characterId", handlers.Character.Update)
	}

	attachments := authed.Group("/attachments")
	{
		attachments.POST("", middleware.UploadRateLimitMiddleware(limiter), handlers.Attachment.Upload)
		attachments.GET("/:attachmentId", handlers.Attachment.GetSingle)
		attachments.GET("/space/:spaceId", handlers.Attachment.ListBySpace)
		attachments.GET("/space/:spaceId/root", handlers.Attachment.ListRootBySpace)
		attachments.GET("/folder/:folderId", handlers.Attachment.ListByFolder)
		attachments.GET("/snapshot/:snapshotId", handlers.Attachment.ListBySnapshot)
		attachments.PUT("/:attachmentId", handlers.Attachment.Update)
	}
}

func (s *Server) Start() error {
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	if s.logger != nil {
		s.logger.Infof("Server is running on :%s", s.config.AppPort)
	}

	<-quit

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		if s.logger != nil {
			s.logger.Infof("Error in the graceful shutdown of the server: %s", err)
		}
		return err
	}

	if s.logger != nil {
		s.logger.Infof("Server stopped gracefully")
	}

	return nil
}
