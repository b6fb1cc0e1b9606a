package web

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/roman/internal/platform/telemetry/metrics"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type stubConverter struct {
	err error
}

func (s stubConverter) ToNumber(context.Context, string) (int, error) { return 0, s.err }
func (s stubConverter) ToRoman(context.Context, int) (string, error)  { return "", s.err }

func newTestHandler(cfg Config) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	return NewHandler(cfg)
}

func serve(t *testing.T, handler http.Handler, path string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for key, value := range header {
		req.Header.Set(key, value)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return payload
}

func TestHealth(t *testing.T) {
	w := serve(t, newTestHandler(Config{}), "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := decodeBody(t, w)["status"]; got != "UP" {
		t.Fatalf("status field = %v, want UP", got)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}
}

func TestHello(t *testing.T) {
	handler := newTestHandler(Config{})
	tests := []struct {
		path     string
		language string
		want     string
	}{
		{path: "/hello", want: "Hello, World!"},
		{path: "/hello/Luc", want: "Hello, Luc!"},
		{path: "/hello", language: "pt-BR,pt;q=0.9", want: "Olá, Mundo!"},
		{path: "/hello/Ana", language: "pt-BR", want: "Olá, Ana!"},
	}
	for _, tc := range tests {
		t.Run(tc.path+"/"+tc.language, func(t *testing.T) {
			w := serve(t, handler, tc.path, map[string]string{"Accept-Language": tc.language})
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			if got := w.Body.String(); got != tc.want {
				t.Fatalf("body = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestToNumber(t *testing.T) {
	w := serve(t, newTestHandler(Config{}), "/to-number/MCMXCIV", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["roman"] != "MCMXCIV" || body["number"] != float64(1994) {
		t.Fatalf("body = %v", body)
	}
}

func TestToNumberRejectsInvalidNumeral(t *testing.T) {
	tests := []struct {
		path     string
		language string
		code     string
		message  string
	}{
		{
			path:    "/to-number/IIII",
			code:    "NUMERAL_REPEATED_TOO_MANY_TIMES",
			message: "Cannot repeat I 4 times in a row",
		},
		{
			path:     "/to-number/ABC",
			language: "pt-BR",
			code:     "NUMERAL_INVALID_CHARACTER",
			message:  "Caractere romano inválido 'A'",
		},
		{
			path:    "/to-number/IIV",
			code:    "NUMERAL_ILLEGAL_ASCENT",
			message: "Cannot go up: 1 to 5",
		},
	}
	handler := newTestHandler(Config{})
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			w := serve(t, handler, tc.path, map[string]string{"Accept-Language": tc.language})
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			body := decodeBody(t, w)
			if body["code"] != tc.code {
				t.Fatalf("code = %v, want %s", body["code"], tc.code)
			}
			if body["error"] != tc.message {
				t.Fatalf("error = %v, want %q", body["error"], tc.message)
			}
		})
	}
}

func TestToRoman(t *testing.T) {
	handler := newTestHandler(Config{})
	tests := map[string]string{"0": "nulla", "14": "XIV", "3999": "MMMCMXCIX", "3.0": "III"}
	for input, want := range tests {
		w := serve(t, handler, "/to-roman/"+input, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, body = %s", input, w.Code, w.Body.String())
		}
		if got := decodeBody(t, w)["roman"]; got != want {
			t.Fatalf("%s: roman = %v, want %s", input, got, want)
		}
	}
}

func TestToRomanRejectsOutOfRange(t *testing.T) {
	handler := newTestHandler(Config{})
	for _, input := range []string{"4000", "-1", "3.5", "abc"} {
		w := serve(t, handler, "/to-roman/"+input, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", input, w.Code)
		}
		if got := decodeBody(t, w)["code"]; got != "NUMERAL_OUT_OF_RANGE" {
			t.Fatalf("%s: code = %v", input, got)
		}
	}
	w := serve(t, handler, "/to-roman/4000", nil)
	if got := decodeBody(t, w)["error"]; got != "Only integers from 0-3999 are allowed, got 4000" {
		t.Fatalf("error = %v", got)
	}
}

func TestNotFoundIsLocalized(t *testing.T) {
	handler := newTestHandler(Config{})
	w := serve(t, handler, "/nope", map[string]string{"Accept-Language": "pt-BR"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if got := decodeBody(t, w)["error"]; got != "Rota não encontrada" {
		t.Fatalf("error = %v", got)
	}
	if got := w.Header().Get("Content-Language"); got != "pt-BR" {
		t.Fatalf("Content-Language = %q", got)
	}
}

func TestRateLimit(t *testing.T) {
	handler := newTestHandler(Config{RateLimitRPS: 0.001, RateLimitBurst: 1})
	if w := serve(t, handler, "/health", nil); w.Code != http.StatusOK {
		t.Fatalf("first status = %d", w.Code)
	}
	w := serve(t, handler, "/health", nil)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second status = %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") != "1" {
		t.Fatalf("Retry-After = %q", w.Header().Get("Retry-After"))
	}
	if got := decodeBody(t, w)["error"]; got != "Too many requests, slow down" {
		t.Fatalf("error = %v", got)
	}
	spoofed := serve(t, handler, "/health", map[string]string{"X-Forwarded-For": "203.0.113.9"})
	if spoofed.Code != http.StatusTooManyRequests {
		t.Fatalf("spoofed forwarded status = %d, want 429", spoofed.Code)
	}
}

func TestRateLimitBehindTrustedProxy(t *testing.T) {
	handler := newTestHandler(Config{RateLimitRPS: 0.001, RateLimitBurst: 1, TrustForwardedFor: true})
	client := map[string]string{"X-Forwarded-For": "203.0.113.9"}
	if w := serve(t, handler, "/health", client); w.Code != http.StatusOK {
		t.Fatalf("first status = %d", w.Code)
	}
	if w := serve(t, handler, "/health", client); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second status = %d, want 429", w.Code)
	}
	other := serve(t, handler, "/health", map[string]string{"X-Forwarded-For": "203.0.113.10"})
	if other.Code != http.StatusOK {
		t.Fatalf("other client status = %d", other.Code)
	}
}

func TestConverterFailuresMapToHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: status.Error(codes.Unavailable, "converter down"), want: http.StatusServiceUnavailable},
		{err: status.Error(codes.DeadlineExceeded, "slow"), want: http.StatusGatewayTimeout},
		{err: context.Canceled, want: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		handler := newTestHandler(Config{Converter: stubConverter{err: tc.err}})
		w := serve(t, handler, "/to-number/XIV", nil)
		if w.Code != tc.want {
			t.Fatalf("%v: status = %d, want %d", tc.err, w.Code, tc.want)
		}
		body := decodeBody(t, w)
		if body["error"] != http.StatusText(tc.want) {
			t.Fatalf("%v: error = %v", tc.err, body["error"])
		}
		if _, ok := body["code"]; ok {
			t.Fatalf("%v: unexpected code field", tc.err)
		}
	}
}

func TestMetricsEndpointUsesRoutePatterns(t *testing.T) {
	m := metrics.New()
	handler := newTestHandler(Config{Metrics: m})
	serve(t, handler, "/to-number/XIV", nil)
	serve(t, handler, "/to-number/IIII", nil)

	w := serve(t, handler, "/metrics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		`roman_http_requests_total{method="GET",route="GET /to-number/{roman}",status="200"} 1`,
		`roman_http_requests_total{method="GET",route="GET /to-number/{roman}",status="400"} 1`,
		`roman_conversions_total{direction="to_number",result="OK"} 1`,
		`roman_conversions_total{direction="to_number",result="NUMERAL_REPEATED_TOO_MANY_TIMES"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics missing %q", want)
		}
	}
	if strings.Contains(body, `route="/to-number/XIV"`) {
		t.Fatal("raw path leaked into route label")
	}
}

func TestNewServerRequiresHTTPAddr(t *testing.T) {
	if _, err := NewServer(context.Background(), Config{HTTPAddr: "  "}); err == nil {
		t.Fatal("expected error for blank address")
	}
}

func TestNewServerFailsWhenConverterUnreachable(t *testing.T) {
	_, err := NewServer(context.Background(), Config{
		HTTPAddr:             "127.0.0.1:0",
		ConverterAddr:        "127.0.0.1:1",
		ConverterDialTimeout: 100 * time.Millisecond,
	})
	if err == nil {
		t.Fatal("expected dial error")
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	server, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0", Logger: log.New(io.Discard, "", 0)})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.ListenAndServe(ctx) }()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ListenAndServe: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestListenAndServeNilServer(t *testing.T) {
	var server *Server
	if err := server.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected error for nil server")
	}
	server.Close()
}
