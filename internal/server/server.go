package server

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/Iulian7974/App-template-livrare-pe-magazine/internal/api/v1"
	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/config"
	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/logging"
)

//go:embed web
var staticFiles embed.FS

// ShutdownTimeout how long Run waits for in-flight requests on shutdown
const ShutdownTimeout = 5 * time.Second

// Server HTTP server
type Server struct {
	router *gin.Engine
	logger *zap.Logger
	v1     *v1.Handler
}

// NewServer creates the server
func NewServer(cfg *config.AppConfig, version string, logger *zap.Logger) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}
	logger = logging.OrNop(logger)

	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadBytes()

	s := &Server{
		router: router,
		logger: logger,
		v1:     v1.NewHandler(cfg, version, logger),
	}
	s.setupRoutes()
	return s
}

// setupRoutes registers middleware, the API and the upload page
func (s *Server) setupRoutes() {
	s.router.Use(RequestID(), AccessLog(s.logger), Recovery(s.logger))

	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, "+v1.RequestIDHeader)
		c.Header("Access-Control-Expose-Headers", "Content-Disposition, "+v1.RequestIDHeader)
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	api := s.router.Group("/api")
	{
		s.v1.RegisterRoutes(api)
	}

	sub, _ := fs.Sub(staticFiles, "web")
	s.router.GET("/", func(c *gin.Context) {
		data, err := fs.ReadFile(sub, "index.html")
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}

// Handler the HTTP handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
