// Package metadata defines the headers that carry request context across
// gRPC boundaries between roman services.
package metadata

import (
	"context"
	"strings"

	"github.com/louisbranch/roman/internal/platform/id"
	"github.com/louisbranch/roman/internal/platform/requestctx"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDHeader is the gRPC metadata key for request correlation ids.
const RequestIDHeader = "x-roman-request-id"

// LocaleHeader is the gRPC metadata key for the caller's message locale.
const LocaleHeader = "x-roman-locale"

// IsPrintableASCII reports whether a string contains only printable ASCII characters.
func IsPrintableASCII(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < 0x20 || value[i] > 0x7e {
			return false
		}
	}
	return true
}

// FirstMetadataValue returns the first printable ASCII value for key.
func FirstMetadataValue(md metadata.MD, key string) string {
	for _, value := range md.Get(key) {
		if IsPrintableASCII(value) {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// OutgoingContext copies the request id and locale held in ctx onto outgoing
// gRPC metadata.
func OutgoingContext(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	var pairs []string
	if requestID := requestctx.RequestIDFromContext(ctx); requestID != "" {
		pairs = append(pairs, RequestIDHeader, requestID)
	}
	if locale := requestctx.LocaleFromContext(ctx); locale != "" {
		pairs = append(pairs, LocaleHeader, locale)
	}
	if len(pairs) == 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, pairs...)
}

// UnaryClientInterceptor applies OutgoingContext to every unary call.
func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		return invoker(OutgoingContext(ctx), method, req, reply, cc, opts...)
	}
}

// UnaryServerInterceptor moves incoming request metadata into the handler
// context, generating a request id when the caller sent none, and echoes the
// id in the response headers.
func UnaryServerInterceptor(idGenerator func() (string, error)) grpc.UnaryServerInterceptor {
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, _ := metadata.FromIncomingContext(ctx)
		requestID := FirstMetadataValue(md, RequestIDHeader)
		if requestID == "" {
			generated, err := idGenerator()
			if err != nil {
				return nil, status.Errorf(codes.Internal, "generate request id: %v", err)
			}
			requestID = generated
		}

		ctx = requestctx.WithRequestID(ctx, requestID)
		if locale := FirstMetadataValue(md, LocaleHeader); locale != "" {
			ctx = requestctx.WithLocale(ctx, locale)
		}
		if err := grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID)); err != nil {
			return nil, status.Errorf(codes.Internal, "set response metadata: %v", err)
		}
		return handler(ctx, req)
	}
}
