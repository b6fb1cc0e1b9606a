// Package web parses web command flags and starts the HTTP service.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/roman/internal/platform/cmd"
	"github.com/louisbranch/roman/internal/platform/timeouts"
	"github.com/louisbranch/roman/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr          string        `env:"ROMAN_WEB_HTTP_ADDR" envDefault:"localhost:8091"`
	ConverterAddr     string        `env:"ROMAN_WEB_CONVERTER_ADDR"`
	RateLimitRPS      float64       `env:"ROMAN_WEB_RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst    int           `env:"ROMAN_WEB_RATE_LIMIT_BURST" envDefault:"40"`
	TrustForwardedFor bool          `env:"ROMAN_WEB_TRUST_FORWARDED_FOR"`
	GRPCDialTimeout   time.Duration `env:"ROMAN_WEB_CONVERTER_DIAL_TIMEOUT"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.GRPCDialTimeout <= 0 {
		cfg.GRPCDialTimeout = timeouts.GRPCDial
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.ConverterAddr, "converter-addr", cfg.ConverterAddr, "Converter gRPC address (empty converts in-process)")
	fs.Float64Var(&cfg.RateLimitRPS, "rate-limit-rps", cfg.RateLimitRPS, "Requests per second allowed per client (0 disables limiting)")
	fs.IntVar(&cfg.RateLimitBurst, "rate-limit-burst", cfg.RateLimitBurst, "Burst size per client")
	fs.BoolVar(&cfg.TrustForwardedFor, "trust-forwarded-for", cfg.TrustForwardedFor, "Key rate limits on X-Forwarded-For (enable only behind a proxy)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:             cfg.HTTPAddr,
			ConverterAddr:        cfg.ConverterAddr,
			ConverterDialTimeout: cfg.GRPCDialTimeout,
			RateLimitRPS:         cfg.RateLimitRPS,
			RateLimitBurst:       cfg.RateLimitBurst,
			TrustForwardedFor:    cfg.TrustForwardedFor,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
