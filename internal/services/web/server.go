package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/roman/internal/platform/i18n/catalog"
	"github.com/louisbranch/roman/internal/platform/ratelimiter"
	"github.com/louisbranch/roman/internal/platform/telemetry/metrics"
	"github.com/louisbranch/roman/internal/platform/timeouts"
	"github.com/louisbranch/roman/internal/services/web/greeting"
	"github.com/louisbranch/roman/internal/services/web/platform/httpx"
	"github.com/louisbranch/roman/internal/services/web/platform/observability"
	"google.golang.org/grpc"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	// ConverterAddr selects the remote converter when set.
	ConverterAddr string
	// ConverterDialTimeout bounds the converter dial and health wait.
	ConverterDialTimeout time.Duration
	RateLimitRPS         float64
	RateLimitBurst       int
	// TrustForwardedFor keys rate limits on X-Forwarded-For. Enable only
	// behind a proxy that overwrites the header.
	TrustForwardedFor bool
	// Converter overrides both the local and remote converter. Tests use it.
	Converter Converter
	Metrics   *metrics.Metrics
	Bundle    *catalog.Bundle
	Logger    *log.Logger
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr      string
	httpServer    *http.Server
	converterConn *grpc.ClientConn
}

// NewHandler builds the root handler. Middleware order matters: the metrics
// middleware sits next to the mux so it can read the matched route pattern.
func NewHandler(cfg Config) http.Handler {
	bundle := cfg.Bundle
	if bundle == nil {
		bundle = catalog.Default()
	}
	m := cfg.Metrics
	if m == nil {
		m = metrics.New()
	}
	converter := cfg.Converter
	if converter == nil {
		converter = NewLocalConverter(nil, m)
	}
	h := handlers{
		converter: converter,
		greeter:   greeting.New(bundle),
		bundle:    bundle,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("GET /hello", h.hello)
	mux.HandleFunc("GET /hello/{name}", h.hello)
	mux.HandleFunc("GET /to-number/{roman}", h.toNumber)
	mux.HandleFunc("GET /to-roman/{number}", h.toRoman)
	mux.Handle("GET /metrics", m.Handler())
	mux.HandleFunc("/", h.notFound)

	limiter := ratelimiter.New(cfg.RateLimitRPS, cfg.RateLimitBurst, timeouts.RateLimiterIdle)
	return httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		httpx.Locale(bundle),
		httpx.RateLimit(limiter, ratelimiter.KeyPolicy{TrustForwardedFor: cfg.TrustForwardedFor}, http.HandlerFunc(h.rateLimited)),
		observability.RequestLogger(cfg.Logger),
		observability.Trace(),
		m.Middleware,
	)
}

// NewServer validates config, dials the converter when one is configured,
// and constructs a web server.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	var conn *grpc.ClientConn
	if cfg.Converter == nil {
		if converterAddr := strings.TrimSpace(cfg.ConverterAddr); converterAddr != "" {
			dialed, err := dialConverter(ctx, converterAddr, cfg.ConverterDialTimeout)
			if err != nil {
				return nil, err
			}
			conn = dialed
			cfg.Converter = NewRemoteConverter(newConverterClient(conn), timeouts.GRPCRequest)
			log.Printf("web converter mode=remote addr=%s", converterAddr)
		} else {
			log.Printf("web converter mode=local")
		}
	}

	return &Server{
		httpAddr:      httpAddr,
		converterConn: conn,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           NewHandler(cfg),
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("web listening addr=%s", s.httpAddr)
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.converterConn != nil {
		if err := s.converterConn.Close(); err != nil {
			log.Printf("close converter connection: err=%v", err)
		}
		s.converterConn = nil
	}
}
