package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strings"

	platformgrpc "github.com/louisbranch/roman/internal/platform/grpc"
	grpcmeta "github.com/louisbranch/roman/internal/platform/grpc/metadata"
	"github.com/louisbranch/roman/internal/platform/telemetry/metrics"
	convertergrpc "github.com/louisbranch/roman/internal/services/converter/api/grpc/converter"
	"github.com/louisbranch/roman/internal/services/converter/api/grpc/converterv1"
	"github.com/louisbranch/roman/internal/services/converter/numeral"
	"github.com/louisbranch/roman/internal/services/converter/storage/sqlite"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
)

// Config configures a converter server.
type Config struct {
	// Addr is the listen address; it wins over Port when set.
	Addr string
	// Port is used as ":<port>" when Addr is empty.
	Port int
	// HistoryDBPath enables the SQLite conversion history when set.
	HistoryDBPath string
	// Metrics receives gRPC and conversion metrics. Nil creates a private set.
	Metrics *metrics.Metrics
}

// Server hosts the converter and health services on one listener.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	history    *sqlite.Store
	metrics    *metrics.Metrics
}

// New listens on the configured address and registers services.
func New(cfg Config) (*Server, error) {
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		addr = fmt.Sprintf(":%d", cfg.Port)
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	m := cfg.Metrics
	if m == nil {
		m = metrics.New()
	}
	opts := []convertergrpc.Option{convertergrpc.WithMetrics(m)}

	var history *sqlite.Store
	if path := strings.TrimSpace(cfg.HistoryDBPath); path != "" {
		history, err = sqlite.Open(path)
		if err != nil {
			_ = listener.Close()
			return nil, fmt.Errorf("open history store: %w", err)
		}
		opts = append(opts, convertergrpc.WithHistory(history))
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpcmeta.UnaryServerInterceptor(nil),
			m.UnaryServerInterceptor(),
		),
	)
	converterv1.RegisterConverterServiceServer(grpcServer, convertergrpc.NewService(numeral.NewService(), opts...))
	healthServer := platformgrpc.RegisterHealth(grpcServer, converterv1.ServiceName)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		history:    history,
		metrics:    m,
	}, nil
}

// Addr returns the bound listen address.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Metrics returns the collectors the server records into.
func (s *Server) Metrics() *metrics.Metrics {
	if s == nil {
		return nil
	}
	return s.metrics
}

// Run creates a server and serves until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	srv, err := New(cfg)
	if err != nil {
		return err
	}
	return srv.Serve(ctx)
}

// Serve blocks until ctx is cancelled or the gRPC server fails, then stops
// gracefully.
func (s *Server) Serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.closeHistory()

	log.Printf("converter server listening addr=%v history=%t", s.listener.Addr(), s.history != nil)
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	handleErr := func(err error) error {
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}

	select {
	case <-ctx.Done():
		s.health.Shutdown()
		s.grpcServer.GracefulStop()
		return handleErr(<-serveErr)
	case err := <-serveErr:
		return handleErr(err)
	}
}

func (s *Server) closeHistory() {
	if s.history == nil {
		return
	}
	if err := s.history.Close(); err != nil {
		log.Printf("close history store: %v", err)
	}
}
