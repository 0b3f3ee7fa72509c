package http

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// ErrServerClosed is returned by ListenAndServe after Shutdown.
var ErrServerClosed = http.ErrServerClosed

// ServerOptions carries the listener timeouts. Zero values take
// conservative defaults suitable for a small public file server.
type ServerOptions struct {
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// Server hosts a Dispatcher on the standard library HTTP runtime. The
// accept loop, connection handling and request parsing all belong to
// net/http; this layer only fixes timeouts and wires tracing around
// the dispatch pipeline.
type Server struct {
	original        *http.Server
	shutdownTimeout time.Duration
}

func NewServer(addr string, handler http.Handler, opts ServerOptions) *Server {
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 5 * time.Second
	}
	if opts.ReadHeaderTimeout == 0 {
		opts.ReadHeaderTimeout = 2 * time.Second
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 30 * time.Second
	}
	if opts.IdleTimeout == 0 {
		opts.IdleTimeout = 60 * time.Second
	}
	if opts.ShutdownTimeout == 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}

	return &Server{
		original: &http.Server{
			Addr:              addr,
			Handler:           otelhttp.NewHandler(handler, "dispatch"),
			ReadTimeout:       opts.ReadTimeout,
			ReadHeaderTimeout: opts.ReadHeaderTimeout,
			WriteTimeout:      opts.WriteTimeout,
			IdleTimeout:       opts.IdleTimeout,
		},
		shutdownTimeout: opts.ShutdownTimeout,
	}
}

func (server *Server) ListenAndServe() error {
	return server.original.ListenAndServe()
}

func (server *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, server.shutdownTimeout)
	defer cancel()

	return server.original.Shutdown(ctx)
}
