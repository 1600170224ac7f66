package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/internal/config"
	"taskboard/internal/handler"
	"taskboard/internal/logging"
	"taskboard/internal/middleware"
	"taskboard/internal/reorder"
	"taskboard/internal/repository"
	"taskboard/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	Store  *store.Store
	Config *config.Config

	closers []func() error
}

func Init(cfg *config.Config) (*Server, error) {
	repo, closers, err := openRepository(cfg)
	if err != nil {
		return nil, err
	}

	s := store.New(repo)
	if _, err := s.GetState(context.Background()); err != nil {
		return nil, fmt.Errorf("❌ failed to load board state: %w", err)
	}
	controller := reorder.New(s)

	// Setup Gin
	r := gin.Default()

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)
	boardHandler := handler.NewBoardHandler(s)
	taskHandler := handler.NewTaskHandler(s)
	gestureHandler := handler.NewGestureHandler(controller)

	// Public routes
	r.POST("/session", sessionHandler.Create)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes - require a session token
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		// State and board routes
		authorized.GET("/state", boardHandler.GetState)
		authorized.GET("/boards/:id", boardHandler.GetByID)
		authorized.GET("/boards/:id/check", boardHandler.Check)

		// Task routes
		authorized.POST("/boards/:id/tasks", taskHandler.Create)
		authorized.PUT("/boards/:id/tasks/:task_id", taskHandler.Update)
		authorized.DELETE("/boards/:id/tasks/:task_id", taskHandler.Delete)
		authorized.POST("/boards/:id/tasks/:task_id/toggle", taskHandler.Toggle)
		authorized.POST("/boards/:id/tasks/:task_id/move", taskHandler.Move)

		// Drag gesture routes
		authorized.POST("/gesture/start", gestureHandler.Start)
		authorized.POST("/gesture/hover", gestureHandler.Hover)
		authorized.POST("/gesture/end", gestureHandler.End)
		authorized.POST("/gesture/cancel", gestureHandler.Cancel)
		authorized.GET("/gesture/view", gestureHandler.View)
	}
	return &Server{
		Engine:  r,
		Store:   s,
		Config:  cfg,
		closers: closers,
	}, nil
}

func openRepository(cfg *config.Config) (repository.StateRepository, []func() error, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		logging.Logger.Warn("⚠️  Using in-memory storage, state is lost on restart")
		return repository.NewMemoryRepository(), nil, nil

	case config.BackendPostgres:
		if err := repository.Migrate(cfg.MigrateURL()); err != nil {
			return nil, nil, fmt.Errorf("❌ failed to migrate DB: %w", err)
		}
		db, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{})
		if err != nil {
			return nil, nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
		}
		logging.Logger.Info("✅ Connected to database")
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("❌ failed to get DB handle: %w", err)
		}
		return repository.NewPostgresRepository(db, cfg.StorageKey), []func() error{sqlDB.Close}, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("❌ failed to connect to redis: %w", err)
		}
		logging.Logger.Info("✅ Connected to redis")
		return repository.NewRedisRepository(client, cfg.StorageKey), []func() error{client.Close}, nil
	}
	return nil, nil, fmt.Errorf("❌ unknown storage backend %q", cfg.StorageBackend)
}

func (s *Server) Run() {
	log := logging.Logger
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Infof("🚀 Server running on port %s", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			log.WithError(err).Warn("close storage")
		}
	}

	log.Info("✅ Server exited properly")
}
