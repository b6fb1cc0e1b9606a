package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/louisbranch/roman/internal/platform/config"
	"github.com/louisbranch/roman/internal/services/converter/storage"
	"github.com/louisbranch/roman/internal/services/converter/storage/sqlite"
	"github.com/spf13/cobra"
)

// historyEnv shares the converter's history location so both default to the
// same database.
type historyEnv struct {
	DBPath string `env:"ROMAN_CONVERTER_HISTORY_DB_PATH"`
}

func historyCmd() *cobra.Command {
	var (
		dbPath string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent conversions recorded by the converter service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("db") {
				var env historyEnv
				if err := config.ParseEnv(&env); err != nil {
					return err
				}
				dbPath = env.DBPath
			}
			dbPath = strings.TrimSpace(dbPath)
			if dbPath == "" {
				return errors.New("--db is required")
			}
			// Open creates missing databases; history only reads existing ones.
			if _, err := os.Stat(dbPath); err != nil {
				return fmt.Errorf("open history %s: %w", dbPath, err)
			}
			store, err := sqlite.Open(dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			conversions, err := store.ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(conversions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "(no conversions recorded)")
				return nil
			}
			for _, conversion := range conversions {
				writeConversion(cmd.OutOrStdout(), conversion)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite history database path (default $ROMAN_CONVERTER_HISTORY_DB_PATH)")
	cmd.Flags().IntVarP(&limit, "limit", "n", storage.DefaultListLimit, "maximum rows to print")
	return cmd
}

// writeConversion prints created_at, direction, input, output, code and
// request id separated by tabs. Empty fields print as "-".
func writeConversion(w io.Writer, c storage.Conversion) {
	fields := []string{
		c.CreatedAt.UTC().Format(time.RFC3339),
		c.Direction,
		c.Input,
		c.Output,
		c.Code,
		c.RequestID,
	}
	for i, field := range fields {
		if strings.TrimSpace(field) == "" {
			fields[i] = "-"
		}
	}
	fmt.Fprintln(w, strings.Join(fields, "\t"))
}
