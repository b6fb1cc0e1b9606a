// Package converter parses converter command flags and starts the gRPC
// service.
package converter

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/roman/internal/platform/cmd"
	server "github.com/louisbranch/roman/internal/services/converter/app"
)

// Config holds converter command configuration.
type Config struct {
	Port          int    `env:"ROMAN_CONVERTER_PORT" envDefault:"8090"`
	Addr          string `env:"ROMAN_CONVERTER_ADDR"`
	HistoryDBPath string `env:"ROMAN_CONVERTER_HISTORY_DB_PATH"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The converter gRPC port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The converter listen address (overrides -port)")
	fs.StringVar(&cfg.HistoryDBPath, "history-db", cfg.HistoryDBPath, "SQLite path for conversion history (empty disables it)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the converter gRPC service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceConverter, func(ctx context.Context) error {
		return server.Run(ctx, server.Config{
			Addr:          cfg.Addr,
			Port:          cfg.Port,
			HistoryDBPath: cfg.HistoryDBPath,
		})
	})
}
