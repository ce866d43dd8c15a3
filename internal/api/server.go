// Package api provides the REST surface of zonejsond.
// It exposes endpoints for one-shot zonefile parsing, a persistent zone
// store, health checks, and statistics via a Gin-based HTTP server.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sys/unix"

	"github.com/jroosing/zonejson/internal/api/handlers"
	"github.com/jroosing/zonejson/internal/api/middleware"
	"github.com/jroosing/zonejson/internal/config"
	"github.com/jroosing/zonejson/internal/database"
	"github.com/jroosing/zonejson/internal/metrics"
)

// Server is the zonejsond HTTP server.
//
// Security note: do not expose the API to untrusted networks without
// setting api.api_key.
type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	engine     *gin.Engine
	httpServer *http.Server
}

// New builds the server. db may be nil, in which case the zone-store
// endpoints respond 503 and only one-shot parsing is available.
func New(cfg *config.Config, db *database.DB, logger *slog.Logger, m *metrics.Metrics) *Server {
	if cfg == nil {
		panic("api.New: cfg is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.SlogRequestLogger(logger))

	h := handlers.New(cfg, db, logger, m)
	RegisterRoutes(engine, h, cfg)
	MountSPA(engine, logger)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{cfg: cfg, logger: logger, engine: engine, httpServer: httpServer}
}

func (s *Server) Addr() string {
	if s.httpServer == nil {
		return ""
	}
	return s.httpServer.Addr
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// ListenAndServe binds the configured address and serves until Shutdown.
// With server.reuse_port set it enables SO_REUSEPORT so multiple daemon
// instances can share the address and let the kernel balance connections.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := s.listen(ctx)
	if err != nil {
		return err
	}
	return s.httpServer.Serve(ln)
}

func (s *Server) listen(ctx context.Context) (net.Listener, error) {
	var lc net.ListenConfig
	if s.cfg.Server.ReusePort {
		lc.Control = func(_, _ string, c syscall.RawConn) error {
			return c.Control(func(fd uintptr) {
				_ = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEPORT, 1)
			})
		}
	}
	return lc.Listen(ctx, "tcp", s.httpServer.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
