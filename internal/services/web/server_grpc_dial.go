package web

import (
	"context"
	"fmt"
	"log"
	"time"

	platformgrpc "github.com/louisbranch/roman/internal/platform/grpc"
	"github.com/louisbranch/roman/internal/platform/timeouts"
	"github.com/louisbranch/roman/internal/services/converter/api/grpc/converterv1"
	"google.golang.org/grpc"
)

func dialConverter(ctx context.Context, addr string, dialTimeout time.Duration) (*grpc.ClientConn, error) {
	if dialTimeout <= 0 {
		dialTimeout = timeouts.GRPCDial
	}
	conn, err := platformgrpc.DialServiceWithHealth(
		ctx,
		nil,
		addr,
		converterv1.ServiceName,
		dialTimeout,
		log.Printf,
		platformgrpc.DefaultClientDialOptions()...,
	)
	if err != nil {
		return nil, fmt.Errorf("dial converter %s: %w", addr, err)
	}
	return conn, nil
}

func newConverterClient(conn grpc.ClientConnInterface) converterv1.ConverterServiceClient {
	return converterv1.NewConverterServiceClient(conn)
}
