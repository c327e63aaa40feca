package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "inspoboard/docs"
	"inspoboard/internal/config"
	"inspoboard/internal/database"
	"inspoboard/internal/handler"
	"inspoboard/internal/logger"
	"inspoboard/internal/middleware"
	"inspoboard/internal/repository"
	"inspoboard/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

// Init connects to the configured database, migrates it when enabled and
// builds the HTTP server.
func Init(cfg *config.Config) (*Server, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	logger.L().Info("connected to database", "driver", cfg.DBDriver)

	if cfg.AutoMigrate {
		if err := database.Migrate(cfg, db); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	return New(cfg, db), nil
}

// New wires repositories, services and handlers over an open database.
func New(cfg *config.Config, db *gorm.DB) *Server {
	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.GinMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger.L()))

	// Initialize store and services
	store := repository.NewStore(db)
	validate := service.NewValidator()
	boardService := service.NewBoardService(store, validate)
	cardService := service.NewCardService(store, validate)

	// Initialize handlers
	boardHandler := handler.NewBoardHandler(boardService)
	cardHandler := handler.NewCardHandler(cardService)
	healthHandler := handler.NewHealthHandler(store)

	r.GET("/health", healthHandler.Check)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Board routes
	boards := r.Group("/boards")
	{
		boards.POST("", boardHandler.Create)
		boards.GET("", boardHandler.GetAll)
		boards.GET("/:id", boardHandler.GetByID)
		boards.PUT("/:id", boardHandler.Update)
		boards.DELETE("/:id", boardHandler.Delete)
		boards.GET("/:id/cards", boardHandler.GetCards)
		boards.POST("/:id/cards", boardHandler.CreateCard)
		boards.POST("/:id/cards/reassign", boardHandler.ReassignCards)
	}

	// Card routes
	cards := r.Group("/cards")
	{
		cards.GET("", cardHandler.GetAll)
		cards.GET("/:id", cardHandler.GetByID)
		cards.PUT("/:id", cardHandler.Update)
		cards.DELETE("/:id", cardHandler.Delete)
		cards.PATCH("/:id/like", cardHandler.Like)
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests.
func (s *Server) Run() error {
	log := logger.L()
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "port", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("failed to listen: %w", err)
	case <-quit:
	}
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), s.Config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("server exited properly")
	return nil
}
