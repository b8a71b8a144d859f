// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lightbnb/src/app/http/handler"
	"lightbnb/src/app/http/response"
	"lightbnb/src/app/middleware"
	"lightbnb/src/core/ports"
	"lightbnb/src/core/usecase"
	"lightbnb/src/infra/config"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *zerolog.Logger
	router *gin.Engine
	http   *http.Server

	// Handlers
	healthHandler      *handler.HealthHandler
	userHandler        *handler.UserHandler
	propertyHandler    *handler.PropertyHandler
	reservationHandler *handler.ReservationHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *zerolog.Logger, repo ports.ListingRepository) *Server {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" || cfg.Log.Level == "trace" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()

	// Create services
	healthService := usecase.NewHealthService(repo, log)
	userService := usecase.NewUserService(repo, log)
	propertyService := usecase.NewPropertyService(repo, log)
	reservationService := usecase.NewReservationService(repo, repo, log)

	s := &Server{
		cfg:                cfg,
		log:                log,
		router:             router,
		healthHandler:      handler.NewHealthHandler(healthService),
		userHandler:        handler.NewUserHandler(userService),
		propertyHandler:    handler.NewPropertyHandler(propertyService),
		reservationHandler: handler.NewReservationHandler(reservationService),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Order matters: Recovery should be first to catch all panics
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID(s.log))
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	v1 := s.router.Group("/v1")
	{
		// Properties
		v1.GET("/properties", s.propertyHandler.Search)
		v1.POST("/properties", s.propertyHandler.Create)

		// Users
		v1.POST("/users", s.userHandler.Create)
		v1.GET("/users", s.userHandler.Lookup)
		v1.GET("/users/:user_id", s.userHandler.Get)

		// Reservations
		v1.GET("/users/:user_id/reservations", s.reservationHandler.List)
	}

	s.router.NoRoute(func(c *gin.Context) {
		response.Abort(c, http.StatusNotFound, response.ErrorDetail{
			Code:      response.CodeNotFound,
			Message:   "no route for " + c.Request.Method + " " + c.Request.URL.Path,
			RequestID: middleware.GetRequestID(c),
		})
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	errCh := make(chan error, 1)

	go func() {
		s.log.Info().Str("addr", s.cfg.Server.Addr()).Msg("starting HTTP server")
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		s.log.Info().Str("signal", sig.String()).Msg("received shutdown signal")
	case err := <-errCh:
		return err
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info().Dur("timeout", s.cfg.Server.ShutdownTimeout).Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info().Msg("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}
