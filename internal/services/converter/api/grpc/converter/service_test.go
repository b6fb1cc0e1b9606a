package converter

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	apperrors "github.com/louisbranch/roman/internal/platform/errors"
	grpcmeta "github.com/louisbranch/roman/internal/platform/grpc/metadata"
	"github.com/louisbranch/roman/internal/platform/telemetry/metrics"
	"github.com/louisbranch/roman/internal/services/converter/api/grpc/converterv1"
	"github.com/louisbranch/roman/internal/services/converter/numeral"
	"github.com/louisbranch/roman/internal/services/converter/storage"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type fakeHistory struct {
	mu      sync.Mutex
	records []storage.Conversion
	err     error
}

func (f *fakeHistory) Record(_ context.Context, c storage.Conversion) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, c)
	return f.err
}

func (f *fakeHistory) ListRecent(context.Context, int) ([]storage.Conversion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]storage.Conversion(nil), f.records...), nil
}

func startConverter(t *testing.T, svc *Service) converterv1.ConverterServiceClient {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(grpcmeta.UnaryServerInterceptor(func() (string, error) {
		return "generated", nil
	})))
	converterv1.RegisterConverterServiceServer(server, svc)
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.GracefulStop)

	conn, err := grpc.NewClient(listener.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return converterv1.NewConverterServiceClient(conn)
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestToNumberAndToRoman(t *testing.T) {
	client := startConverter(t, NewService(nil))
	ctx := testContext(t)

	number, err := client.ToNumber(ctx, wrapperspb.String("MCMXCIV"))
	if err != nil {
		t.Fatalf("ToNumber: %v", err)
	}
	if number.GetValue() != 1994 {
		t.Fatalf("ToNumber = %d, want 1994", number.GetValue())
	}

	roman, err := client.ToRoman(ctx, wrapperspb.Int32(14))
	if err != nil {
		t.Fatalf("ToRoman: %v", err)
	}
	if roman.GetValue() != "XIV" {
		t.Fatalf("ToRoman = %q, want XIV", roman.GetValue())
	}

	zero, err := client.ToRoman(ctx, wrapperspb.Int32(0))
	if err != nil || zero.GetValue() != "nulla" {
		t.Fatalf("ToRoman(0) = %q, %v", zero.GetValue(), err)
	}
}

func TestFailuresCarryErrorDetails(t *testing.T) {
	client := startConverter(t, NewService(nil))
	ctx := testContext(t)

	tests := []struct {
		name    string
		call    func() error
		code    apperrors.Code
		message string
	}{
		{
			name:    "invalid character",
			call:    func() error { _, err := client.ToNumber(ctx, wrapperspb.String("ABC")); return err },
			code:    apperrors.CodeNumeralInvalidCharacter,
			message: "Invalid Roman character 'A'",
		},
		{
			name:    "empty",
			call:    func() error { _, err := client.ToNumber(ctx, wrapperspb.String("")); return err },
			code:    apperrors.CodeNumeralEmptyInput,
			message: "A non-empty Roman numeral string is required",
		},
		{
			name:    "out of range",
			call:    func() error { _, err := client.ToRoman(ctx, wrapperspb.Int32(4000)); return err },
			code:    apperrors.CodeNumeralOutOfRange,
			message: "Only integers from 0-3999 are allowed, got 4000",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			if status.Code(err) != codes.InvalidArgument {
				t.Fatalf("code = %v, want InvalidArgument", status.Code(err))
			}
			domainErr, message, ok := apperrors.FromGRPCStatus(err)
			if !ok {
				t.Fatalf("expected domain error details in %v", err)
			}
			if domainErr.Code != tc.code {
				t.Fatalf("reason = %s, want %s", domainErr.Code, tc.code)
			}
			if message != tc.message {
				t.Fatalf("message = %q, want %q", message, tc.message)
			}
		})
	}
}

func TestFailureMessageFollowsLocaleMetadata(t *testing.T) {
	client := startConverter(t, NewService(nil))
	ctx := metadata.AppendToOutgoingContext(testContext(t), grpcmeta.LocaleHeader, "pt-BR")

	_, err := client.ToNumber(ctx, wrapperspb.String("ABC"))
	st, _ := status.FromError(err)
	var localized *errdetails.LocalizedMessage
	for _, detail := range st.Details() {
		if d, ok := detail.(*errdetails.LocalizedMessage); ok {
			localized = d
		}
	}
	if localized == nil {
		t.Fatal("expected LocalizedMessage detail")
	}
	if localized.GetLocale() != "pt-BR" || localized.GetMessage() != "Caractere romano inválido 'A'" {
		t.Fatalf("localized = %s %q", localized.GetLocale(), localized.GetMessage())
	}
}

func TestConversionsAreRecorded(t *testing.T) {
	history := &fakeHistory{}
	m := metrics.New()
	client := startConverter(t, NewService(numeral.NewService(), WithHistory(history), WithMetrics(m)))
	ctx := metadata.AppendToOutgoingContext(testContext(t), grpcmeta.RequestIDHeader, "req-7")

	if _, err := client.ToNumber(ctx, wrapperspb.String("XIV")); err != nil {
		t.Fatalf("ToNumber: %v", err)
	}
	_, _ = client.ToRoman(ctx, wrapperspb.Int32(-1))

	records, _ := history.ListRecent(context.Background(), 10)
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	first := records[0]
	if first.Direction != numeral.DirectionToNumber || first.Input != "XIV" || first.Output != "14" || first.Code != numeral.ResultOK || first.RequestID != "req-7" {
		t.Fatalf("unexpected success record %+v", first)
	}
	second := records[1]
	if second.Direction != numeral.DirectionToRoman || second.Input != "-1" || second.Output != "" || second.Code != string(apperrors.CodeNumeralOutOfRange) {
		t.Fatalf("unexpected failure record %+v", second)
	}
}

func TestHistoryFailureDoesNotFailConversion(t *testing.T) {
	history := &fakeHistory{err: errors.New("disk full")}
	client := startConverter(t, NewService(nil, WithHistory(history)))

	roman, err := client.ToRoman(testContext(t), wrapperspb.Int32(3999))
	if err != nil {
		t.Fatalf("ToRoman: %v", err)
	}
	if roman.GetValue() != "MMMCMXCIX" {
		t.Fatalf("ToRoman = %q", roman.GetValue())
	}
}

type brokenConverter struct{}

func (brokenConverter) ToNumber(string) (int, error) { return 0, errors.New("boom") }
func (brokenConverter) ToRoman(int) (string, error)  { return "", errors.New("boom") }

func TestUntypedFailureIsInternal(t *testing.T) {
	client := startConverter(t, NewService(brokenConverter{}))
	_, err := client.ToNumber(testContext(t), wrapperspb.String("X"))
	if status.Code(err) != codes.Internal {
		t.Fatalf("code = %v, want Internal", status.Code(err))
	}
}
