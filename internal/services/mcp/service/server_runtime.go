package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	platformgrpc "github.com/louisbranch/roman/internal/platform/grpc"
	grpcmeta "github.com/louisbranch/roman/internal/platform/grpc/metadata"
	"github.com/louisbranch/roman/internal/platform/timeouts"
	"github.com/louisbranch/roman/internal/services/converter/api/grpc/converterv1"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc"
)

const (
	defaultGRPCAddr = "localhost:8090"
	defaultHTTPAddr = "localhost:8092"
)

// Run is the service entrypoint for MCP and blocks until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	switch cfg.Transport {
	case TransportStdio:
		return runWithTransport(ctx, cfg.GRPCAddr, &mcp.StdioTransport{})
	case TransportHTTP:
		return runWithHTTPTransport(ctx, cfg)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// runWithTransport creates a server and serves it over the provided transport.
func runWithTransport(ctx context.Context, grpcAddr string, transport mcp.Transport) error {
	conn, err := dialConverter(ctx, grpcAddress(grpcAddr))
	if err != nil {
		return err
	}
	server, err := newServer(conn)
	if err != nil {
		_ = conn.Close()
		return err
	}
	return server.serveWithTransport(ctx, transport)
}

// runWithHTTPTransport serves the MCP server over streamable HTTP until ctx ends.
func runWithHTTPTransport(ctx context.Context, cfg Config) error {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		httpAddr = defaultHTTPAddr
	}

	conn, err := dialConverter(ctx, grpcAddress(cfg.GRPCAddr))
	if err != nil {
		return err
	}
	server, err := newServer(conn)
	if err != nil {
		_ = conn.Close()
		return err
	}
	defer func() {
		if err := server.Close(); err != nil {
			log.Printf("close converter connection: err=%v", err)
		}
	}()

	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server.mcpServer
	}, nil)
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("mcp http listening addr=%s", httpAddr)
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown mcp http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve mcp http: %w", err)
	}
}

func dialConverter(ctx context.Context, addr string) (*grpc.ClientConn, error) {
	opts := append(platformgrpc.DefaultClientDialOptions(),
		grpc.WithChainUnaryInterceptor(grpcmeta.UnaryClientInterceptor()),
	)
	conn, err := platformgrpc.DialServiceWithHealth(ctx, nil, addr, converterv1.ServiceName, timeouts.GRPCDial, log.Printf, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to converter at %s: %w", addr, err)
	}
	return conn, nil
}

func grpcAddress(addr string) string {
	if trimmed := strings.TrimSpace(addr); trimmed != "" {
		return trimmed
	}
	return defaultGRPCAddr
}
