// Package converter serves roman.v1.ConverterService over the numeral core.
package converter

import (
	"context"
	"log"
	"strconv"

	apperrors "github.com/louisbranch/roman/internal/platform/errors"
	"github.com/louisbranch/roman/internal/platform/errors/i18n"
	"github.com/louisbranch/roman/internal/platform/requestctx"
	"github.com/louisbranch/roman/internal/platform/telemetry/metrics"
	"github.com/louisbranch/roman/internal/services/converter/api/grpc/converterv1"
	"github.com/louisbranch/roman/internal/services/converter/numeral"
	"github.com/louisbranch/roman/internal/services/converter/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Service implements converterv1.ConverterServiceServer.
type Service struct {
	converterv1.UnimplementedConverterServiceServer

	converter numeral.Converter
	metrics   *metrics.Metrics
	history   storage.HistoryStore
}

// Option customizes a Service.
type Option func(*Service)

// WithMetrics counts conversions on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithHistory records every conversion in store.
func WithHistory(store storage.HistoryStore) Option {
	return func(s *Service) { s.history = store }
}

// NewService builds the gRPC service. A nil converter uses numeral.NewService.
func NewService(converter numeral.Converter, opts ...Option) *Service {
	if converter == nil {
		converter = numeral.NewService()
	}
	s := &Service{converter: converter}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// ToNumber decodes in.Value.
func (s *Service) ToNumber(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.Int32Value, error) {
	roman := in.GetValue()
	n, err := s.converter.ToNumber(roman)
	if err != nil {
		s.observe(ctx, numeral.DirectionToNumber, roman, "", err)
		return nil, toStatus(ctx, err)
	}
	s.observe(ctx, numeral.DirectionToNumber, roman, strconv.Itoa(n), nil)
	return wrapperspb.Int32(int32(n)), nil
}

// ToRoman encodes in.Value.
func (s *Service) ToRoman(ctx context.Context, in *wrapperspb.Int32Value) (*wrapperspb.StringValue, error) {
	n := int(in.GetValue())
	input := strconv.Itoa(n)
	roman, err := s.converter.ToRoman(n)
	if err != nil {
		s.observe(ctx, numeral.DirectionToRoman, input, "", err)
		return nil, toStatus(ctx, err)
	}
	s.observe(ctx, numeral.DirectionToRoman, input, roman, nil)
	return wrapperspb.String(roman), nil
}

func (s *Service) observe(ctx context.Context, direction, input, output string, err error) {
	result := numeral.Result(err)
	s.metrics.ObserveConversion(direction, result)

	if s.history == nil {
		return
	}
	recordErr := s.history.Record(ctx, storage.Conversion{
		Direction: direction,
		Input:     input,
		Output:    output,
		Code:      result,
		RequestID: requestctx.RequestIDFromContext(ctx),
	})
	if recordErr != nil {
		log.Printf("record conversion: direction=%s request_id=%s err=%v", direction, requestctx.RequestIDFromContext(ctx), recordErr)
	}
}

// toStatus renders a domain failure as an InvalidArgument status carrying the
// code and a message in the caller's locale.
func toStatus(ctx context.Context, err error) error {
	domainErr, ok := apperrors.As(err)
	if !ok {
		log.Printf("convert: unexpected error: %v", err)
		return status.Error(codes.Internal, "conversion failed")
	}
	catalog := i18n.GetCatalog(requestctx.LocaleFromContext(ctx))
	locale := catalog.Locale()
	return domainErr.ToGRPCStatus(locale, domainErr.LocalizedMessage(locale))
}
