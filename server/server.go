package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"room-server/confs"
	"room-server/db"
	"room-server/handlers"
	httpHandler "room-server/handlers/http"
	"room-server/metrics"
	"room-server/repositories"
	"room-server/serializers"
	"room-server/services"
	"room-server/usecases"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	app      *gin.Engine
	cfg      *confs.Config
	db       db.Database
	log      *zap.Logger
	reporter *services.ErrorReporter
}

func NewServer(cfg *confs.Config, database db.Database, log *zap.Logger, reporter *services.ErrorReporter) (*Server, error) {
	s := &Server{
		app:      gin.New(),
		cfg:      cfg,
		db:       database,
		log:      log,
		reporter: reporter,
	}
	if err := s.setupRoutes(); err != nil {
		return nil, err
	}
	return s, nil
}

// Handler returns the router, for tests and for embedding.
func (s *Server) Handler() http.Handler {
	return s.app
}

func (s *Server) setupRoutes() error {
	s.app.Use(ginzap.Ginzap(s.log, time.RFC3339, true))
	s.app.Use(ginzap.RecoveryWithZap(s.log, true))

	// Setup CORS middleware
	config := cors.DefaultConfig()
	if len(s.cfg.CORSAllowOrigins) == 0 || (len(s.cfg.CORSAllowOrigins) == 1 && s.cfg.CORSAllowOrigins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = s.cfg.CORSAllowOrigins
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization"}
	s.app.Use(cors.New(config))

	m := metrics.New("room_server")
	s.app.Use(m.Middleware())

	validator, err := serializers.NewValidator(s.cfg.LanguageCode)
	if err != nil {
		return fmt.Errorf("build validator: %w", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	roomRepo := repositories.NewRoomPgRepository(s.db)

	// Initialize use cases
	userUseCase := usecases.NewUserUseCase(userRepo, services.NewPasswordHasher(s.cfg.PasswordHashCost))
	roomUseCase := usecases.NewRoomUseCase(roomRepo)

	// Initialize handlers
	common := httpHandler.Common{Validator: validator, Logger: s.log, Reporter: s.reporter}
	userHandler := httpHandler.NewUserHandler(common, userUseCase, serializers.NewUserSerializer(validator, userRepo))
	roomHandler := httpHandler.NewRoomHandler(common, roomUseCase, serializers.NewRoomSerializer(validator))
	healthHandler := handlers.NewHealthHandler(s.db, s.log)

	s.app.GET("/health", healthHandler.Health)
	s.app.GET("/metrics", gin.WrapH(m.Handler()))

	for _, group := range []*gin.RouterGroup{&s.app.RouterGroup, s.app.Group("/api/v1")} {
		users := group.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.PATCH("/:id", userHandler.PatchUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		rooms := group.Group("/rooms")
		{
			rooms.GET("", roomHandler.ListRooms)
			rooms.POST("", roomHandler.CreateRoom)
			rooms.GET("/:id", roomHandler.GetRoom)
			rooms.PUT("/:id", roomHandler.UpdateRoom)
			rooms.PATCH("/:id", roomHandler.PatchRoom)
			rooms.DELETE("/:id", roomHandler.DeleteRoom)
		}
	}
	return nil
}

// Start serves until SIGINT or SIGTERM, then drains in-flight requests for
// up to the configured shutdown timeout.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:         "0.0.0.0:" + s.cfg.Port,
		Handler:      s.app,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		s.log.Info("shutting down gracefully")
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			s.log.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	s.log.Info("starting server", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	<-done
	s.log.Info("graceful shutdown complete")
	return nil
}
