package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/roman/internal/services/converter/api/grpc/converterv1"
	"github.com/louisbranch/roman/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc"
)

const (
	serverName    = "roman"
	serverVersion = "0.1.0"
)

// Transport names accepted by Config.Transport.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds MCP service startup inputs.
type Config struct {
	// GRPCAddr is the converter service address.
	GRPCAddr string
	// HTTPAddr is the listen address for the HTTP transport.
	HTTPAddr string
	// Transport is stdio (default) or http.
	Transport string
}

// Server is an MCP server backed by the converter gRPC service.
type Server struct {
	mcpServer *mcp.Server
	conn      *grpc.ClientConn
}

// newServer registers the converter tools against conn.
func newServer(conn *grpc.ClientConn) (*Server, error) {
	if conn == nil {
		return nil, errors.New("converter connection is required")
	}
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	client := converterv1.NewConverterServiceClient(conn)

	mcp.AddTool(mcpServer, domain.RomanToNumberTool(), domain.RomanToNumberHandler(client))
	mcp.AddTool(mcpServer, domain.NumberToRomanTool(), domain.NumberToRomanHandler(client))

	return &Server{mcpServer: mcpServer, conn: conn}, nil
}

// Close releases the gRPC connection held by the server.
func (s *Server) Close() error {
	if s == nil || s.conn == nil {
		return nil
	}
	if err := s.conn.Close(); err != nil {
		return err
	}
	s.conn = nil
	return nil
}

// serveWithTransport runs the MCP server on transport and closes the gRPC
// connection on exit.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	closeErr := s.Close()
	if closeErr != nil {
		if err == nil {
			return fmt.Errorf("close gRPC connection: %w", closeErr)
		}
		return fmt.Errorf("serve MCP: %v; close gRPC connection: %w", err, closeErr)
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
