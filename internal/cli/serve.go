package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	clim "github.com/hu-zza/Clim"
	httpAdapter "github.com/hu-zza/Clim/internal/adapters/http"
	"github.com/hu-zza/Clim/internal/logging"
	"github.com/hu-zza/Clim/pkg/adapters/file"
	"github.com/hu-zza/Clim/pkg/observability"
	"github.com/hu-zza/Clim/pkg/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// ServeOptions configures the HTTP server.
type ServeOptions struct {
	Path        string
	Addr        string
	Logger      *slog.Logger
	MaxSessions int
	// IdleTimeout expires sessions unused for longer. Zero keeps them forever.
	IdleTimeout time.Duration
}

// Server bundles the HTTP server with the session manager it serves.
type Server struct {
	HTTP     *http.Server
	Sessions *session.Manager
}

// NewServer loads the menu file and wires sessions, metrics and routes.
func NewServer(opts ServeOptions) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	cfg, err := file.Load(opts.Path, file.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	hooks := observability.Chain(metrics.Hooks(), observability.LogHooks(logger))

	factory := func() (*clim.Menu, error) {
		return cfg.NewMenu(
			clim.WithLogger(logger),
			clim.WithOutput(io.Discard),
			clim.WithErrorOutput(io.Discard),
			clim.WithLifecycleHooks(hooks),
		)
	}
	if _, err := factory(); err != nil {
		return nil, err
	}

	sessions := session.NewManager(factory,
		session.WithLogger(logger),
		session.WithMaxSessions(opts.MaxSessions),
	)
	handler := httpAdapter.NewHandler(cfg.Structure, sessions,
		httpAdapter.WithLogger(logger),
		httpAdapter.WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
	)

	return &Server{
		HTTP: &http.Server{
			Addr:              opts.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		Sessions: sessions,
	}, nil
}

// Serve runs the server until ctx is cancelled, then shuts it down gracefully.
func Serve(ctx context.Context, opts ServeOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	srv, err := NewServer(opts)
	if err != nil {
		return err
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.HTTP.Addr, "menu", opts.Path)
		serverErrors <- srv.HTTP.ListenAndServe()
	}()

	if opts.IdleTimeout > 0 {
		go srv.expireLoop(ctx, opts.IdleTimeout)
	}

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.HTTP.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
			if err := srv.HTTP.Close(); err != nil {
				return fmt.Errorf("failed to close server: %w", err)
			}
		}
		logger.Info("server stopped gracefully")
		return nil
	}
}

func (s *Server) expireLoop(ctx context.Context, idle time.Duration) {
	ticker := time.NewTicker(idle / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sessions.Expire(ctx, idle)
		}
	}
}
