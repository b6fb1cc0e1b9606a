// Package cli implements the roman command-line converter.
package cli

import (
	"io"
	"os"

	apperrors "github.com/louisbranch/roman/internal/platform/errors"
	"github.com/louisbranch/roman/internal/platform/config"
	"github.com/louisbranch/roman/internal/platform/i18n/catalog"
	"github.com/spf13/cobra"
)

// Execute runs the CLI with the process arguments and exits non-zero on failure.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var locale string
	cmd := newRootCmd(&locale)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		config.Fprintf(stderr, "%s", errorMessage(err, locale))
		return 1
	}
	return 0
}

func newRootCmd(locale *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "roman",
		Short:         "Convert between Roman numerals and integers (0-3999)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(locale, "locale", catalog.BaseLocale, "message locale (en-US, pt-BR)")
	cmd.AddCommand(toNumberCmd())
	cmd.AddCommand(toRomanCmd())
	cmd.AddCommand(historyCmd())
	return cmd
}

// errorMessage localizes converter failures; anything else prints as is.
func errorMessage(err error, locale string) string {
	if domainErr, ok := apperrors.As(err); ok {
		return domainErr.LocalizedMessage(catalog.Default().Match(locale))
	}
	return err.Error()
}
