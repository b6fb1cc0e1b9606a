// Package errors defines typed web failures and their HTTP status mapping.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/roman/internal/platform/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind classifies web failures for consistent HTTP mapping.
type Kind string

const (
	KindNotFound    Kind = "not_found"
	KindRateLimited Kind = "rate_limited"
)

// Error is a typed web failure.
type Error struct {
	Kind    Kind
	Key     string
	Message string
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// EK builds a typed Error with a localization key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// LocalizationKey returns the web catalog key carried by err, if any.
func LocalizationKey(err error) string {
	var webErr Error
	if err == nil || !stderrors.As(err, &webErr) {
		return ""
	}
	return strings.TrimSpace(webErr.Key)
}

// Domain returns the converter failure carried by err, either directly or
// inside a gRPC status from a remote converter, with the remote's localized
// message when one was attached.
func Domain(err error) (*apperrors.Error, string, bool) {
	if err == nil {
		return nil, "", false
	}
	if domainErr, ok := apperrors.As(err); ok {
		if remote, message, ok := apperrors.FromGRPCStatus(domainErr.Cause); ok && remote.Code == domainErr.Code {
			return domainErr, message, true
		}
		return domainErr, "", true
	}
	return apperrors.FromGRPCStatus(err)
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if domainErr, _, ok := Domain(err); ok {
		return domainErr.Code.HTTPStatus()
	}
	var webErr Error
	if !stderrors.As(err, &webErr) {
		return grpcErrorHTTPStatus(err, http.StatusInternalServerError)
	}
	switch webErr.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// grpcErrorHTTPStatus maps common gRPC status codes to HTTP status codes.
// It returns fallback when err is not a gRPC status or is unmapped.
func grpcErrorHTTPStatus(err error, fallback int) int {
	st, ok := status.FromError(err)
	if !ok {
		return fallback
	}
	switch st.Code() {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	default:
		return fallback
	}
}
