// Package api provides the HTTP API server for the hardware inventory.
// It uses Echo to serve REST endpoints and a WebSocket feed of inventory
// change events.
package api

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/rackd/rackd/internal/auth"
	"github.com/rackd/rackd/internal/config"
	"github.com/rackd/rackd/internal/storage"
	"github.com/rackd/rackd/internal/validation"
	"github.com/rackd/rackd/internal/version"
)

// Server represents the inventory API server.
type Server struct {
	echo       *echo.Echo
	storage    *storage.Storage
	config     *config.Config
	validator  *validation.Validator
	wsHub      *Hub
	authMiddle *auth.Middleware
}

// debugLog logs a message only if debug mode is enabled in config
func (s *Server) debugLog(format string, args ...interface{}) {
	if s.config.Server.Debug {
		log.Printf(format, args...)
	}
}

// New creates a new API server instance.
func New(cfg *config.Config, store *storage.Storage) *Server {
	e := echo.New()

	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Server.Debug

	e.HTTPErrorHandler = HTTPErrorHandler

	hub := NewHub()

	server := &Server{
		echo:       e,
		storage:    store,
		config:     cfg,
		validator:  validation.New(),
		wsHub:      hub,
		authMiddle: auth.NewMiddleware(cfg),
	}

	// Start WebSocket hub in background
	go hub.Run()

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// setupMiddleware configures Echo middleware.
func (s *Server) setupMiddleware() {
	s.echo.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "[${time_rfc3339}] ${status} ${method} ${uri} (${latency_human})\n",
	}))

	s.echo.Use(middleware.Recover())

	s.echo.Use(SecurityHeaders)

	if len(s.config.Security.AllowedOrigins) > 0 {
		s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.config.Security.AllowedOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		}))
	}

	s.echo.Use(middleware.RequestID())

	if s.config.Security.RateLimit > 0 {
		s.echo.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(
			rate.Limit(s.config.Security.RateLimit),
		)))
	}

	s.echo.Use(ValidateContentType)
	s.echo.Use(ValidateAcceptHeader)
}

// setupRoutes configures API routes.
func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/", s.healthCheck)

	v1 := s.echo.Group("/api/v1")

	// Datacenter routes
	datacenters := v1.Group("/datacenters")
	datacenters.GET("", s.listDatacenters, s.authMiddle.RequireAuth)
	datacenters.GET("/:id", s.getDatacenter, ValidateIDFormat, s.authMiddle.RequireAuth)
	datacenters.POST("", s.createDatacenter, s.authMiddle.RequireWrite)
	datacenters.PUT("/:id", s.updateDatacenter, ValidateIDFormat, s.authMiddle.RequireWrite)
	datacenters.DELETE("/:id", s.deleteDatacenter, ValidateIDFormat, s.authMiddle.RequireWrite)

	// Cabinet routes
	cabinets := v1.Group("/cabinets")
	cabinets.GET("", s.listCabinets, s.authMiddle.RequireAuth)
	cabinets.GET("/:id", s.getCabinet, ValidateIDFormat, s.authMiddle.RequireAuth)
	cabinets.GET("/:id/devices", s.listCabinetDevices, ValidateIDFormat, s.authMiddle.RequireAuth)
	cabinets.GET("/:id/export", s.exportCabinet, ValidateIDFormat, s.authMiddle.RequireAuth)
	cabinets.POST("", s.createCabinet, s.authMiddle.RequireWrite)
	cabinets.PUT("/:id", s.updateCabinet, ValidateIDFormat, s.authMiddle.RequireWrite)
	cabinets.DELETE("/:id", s.deleteCabinet, ValidateIDFormat, s.authMiddle.RequireWrite)

	// Device variant routes
	servers := v1.Group("/servers")
	servers.GET("", s.listServers, s.authMiddle.RequireAuth)
	servers.GET("/:id", s.getServer, ValidateIDFormat, s.authMiddle.RequireAuth)
	servers.POST("", s.createServer, s.authMiddle.RequireWrite)
	servers.PUT("/:id", s.updateServer, ValidateIDFormat, s.authMiddle.RequireWrite)
	servers.DELETE("/:id", s.deleteServer, ValidateIDFormat, s.authMiddle.RequireWrite)

	pdus := v1.Group("/pdus")
	pdus.GET("", s.listPDUs, s.authMiddle.RequireAuth)
	pdus.GET("/:id", s.getPDU, ValidateIDFormat, s.authMiddle.RequireAuth)
	pdus.POST("", s.createPDU, s.authMiddle.RequireWrite)
	pdus.PUT("/:id", s.updatePDU, ValidateIDFormat, s.authMiddle.RequireWrite)
	pdus.DELETE("/:id", s.deletePDU, ValidateIDFormat, s.authMiddle.RequireWrite)

	network := v1.Group("/network-devices")
	network.GET("", s.listNetworkDevices, s.authMiddle.RequireAuth)
	network.GET("/:id", s.getNetworkDevice, ValidateIDFormat, s.authMiddle.RequireAuth)
	network.POST("", s.createNetworkDevice, s.authMiddle.RequireWrite)
	network.PUT("/:id", s.updateNetworkDevice, ValidateIDFormat, s.authMiddle.RequireWrite)
	network.DELETE("/:id", s.deleteNetworkDevice, ValidateIDFormat, s.authMiddle.RequireWrite)

	// Polymorphic device lookup
	v1.GET("/devices/:id", s.getDevice, ValidateIDFormat, s.authMiddle.RequireAuth)

	// Placement routes
	assignments := v1.Group("/cabinet-assignments")
	assignments.GET("", s.listCabinetAssignments, s.authMiddle.RequireAuth)
	assignments.GET("/:id", s.getCabinetAssignment, ValidateIDFormat, s.authMiddle.RequireAuth)
	assignments.POST("", s.createCabinetAssignment, s.authMiddle.RequireWrite)
	assignments.PUT("/:id", s.updateCabinetAssignment, ValidateIDFormat, s.authMiddle.RequireWrite)
	assignments.DELETE("/:id", s.deleteCabinetAssignment, ValidateIDFormat, s.authMiddle.RequireWrite)

	// Cabling routes
	ports := v1.Group("/port-assignments")
	ports.GET("", s.listPortAssignments, s.authMiddle.RequireAuth)
	ports.GET("/:id", s.getPortAssignment, ValidateIDFormat, s.authMiddle.RequireAuth)
	ports.POST("", s.createPortAssignment, s.authMiddle.RequireWrite)
	ports.PUT("/:id", s.updatePortAssignment, ValidateIDFormat, s.authMiddle.RequireWrite)
	ports.DELETE("/:id", s.deletePortAssignment, ValidateIDFormat, s.authMiddle.RequireWrite)

	// WebSocket feed of inventory changes
	v1.GET("/ws/inventory", s.handleWebSocket, s.authMiddle.RequireAuth)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	log.Printf("Starting rackd API server on http://%s (database: %s)", addr, s.config.Database.Driver)

	s.echo.Server.ReadTimeout = s.config.Server.ReadTimeout
	s.echo.Server.WriteTimeout = s.config.Server.WriteTimeout

	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down rackd API server...")

	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	if err := s.storage.Close(); err != nil {
		return fmt.Errorf("error closing storage: %w", err)
	}

	return nil
}

// healthCheck handles health check requests.
func (s *Server) healthCheck(c echo.Context) error {
	if err := s.storage.Ping(); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
			"status":  "unhealthy",
			"error":   "database connection failed",
			"details": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":   "healthy",
		"service":  "rackd",
		"version":  version.Version,
		"database": s.config.Database.Driver,
	})
}

// bindAndValidate decodes the request body and runs struct validation,
// translating failures into a field-level 400.
func (s *Server) bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return BadRequestError("invalid request body", err.Error())
	}

	result := s.validator.ValidateStruct(req)
	if !result.Valid {
		fields := make(map[string]string, len(result.Errors))
		for _, fe := range result.Errors {
			fields[fe.Field] = fe.Message
		}
		return ValidationFailedError("validation failed", fields)
	}
	return nil
}

// ServeHTTP allows Server to implement http.Handler for testing
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}
