package web

import (
	"context"
	"time"

	grpcmeta "github.com/louisbranch/roman/internal/platform/grpc/metadata"
	"github.com/louisbranch/roman/internal/platform/telemetry/metrics"
	"github.com/louisbranch/roman/internal/platform/timeouts"
	"github.com/louisbranch/roman/internal/services/converter/api/grpc/converterv1"
	"github.com/louisbranch/roman/internal/services/converter/numeral"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Converter is the context-aware conversion contract the handlers use.
type Converter interface {
	ToNumber(ctx context.Context, roman string) (int, error)
	ToRoman(ctx context.Context, n int) (string, error)
}

// LocalConverter runs conversions in-process.
type LocalConverter struct {
	converter numeral.Converter
	metrics   *metrics.Metrics
}

// NewLocalConverter wraps converter, or numeral.NewService when nil.
func NewLocalConverter(converter numeral.Converter, m *metrics.Metrics) LocalConverter {
	if converter == nil {
		converter = numeral.NewService()
	}
	return LocalConverter{converter: converter, metrics: m}
}

// ToNumber decodes roman.
func (c LocalConverter) ToNumber(ctx context.Context, roman string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n, err := c.converter.ToNumber(roman)
	c.metrics.ObserveConversion(numeral.DirectionToNumber, numeral.Result(err))
	return n, err
}

// ToRoman encodes n.
func (c LocalConverter) ToRoman(ctx context.Context, n int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	roman, err := c.converter.ToRoman(n)
	c.metrics.ObserveConversion(numeral.DirectionToRoman, numeral.Result(err))
	return roman, err
}

// RemoteConverter calls the converter gRPC service. Failures are returned as
// gRPC status errors; typed converter failures keep their error details.
type RemoteConverter struct {
	client  converterv1.ConverterServiceClient
	timeout time.Duration
}

// NewRemoteConverter wraps client with a per-call timeout
// (timeouts.GRPCRequest when timeout is not positive).
func NewRemoteConverter(client converterv1.ConverterServiceClient, timeout time.Duration) RemoteConverter {
	if timeout <= 0 {
		timeout = timeouts.GRPCRequest
	}
	return RemoteConverter{client: client, timeout: timeout}
}

// ToNumber decodes roman remotely.
func (c RemoteConverter) ToNumber(ctx context.Context, roman string) (int, error) {
	callCtx, cancel := context.WithTimeout(grpcmeta.OutgoingContext(ctx), c.timeout)
	defer cancel()
	resp, err := c.client.ToNumber(callCtx, wrapperspb.String(roman))
	if err != nil {
		return 0, err
	}
	return int(resp.GetValue()), nil
}

// ToRoman encodes n remotely. Values outside the numeral range never leave
// the process since they cannot fit the wire type.
func (c RemoteConverter) ToRoman(ctx context.Context, n int) (string, error) {
	if n < numeral.MinValue || n > numeral.MaxValue {
		return numeral.Encode(n)
	}
	callCtx, cancel := context.WithTimeout(grpcmeta.OutgoingContext(ctx), c.timeout)
	defer cancel()
	resp, err := c.client.ToRoman(callCtx, wrapperspb.Int32(int32(n)))
	if err != nil {
		return "", err
	}
	return resp.GetValue(), nil
}
