package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/louisbranch/roman/internal/services/converter/numeral"
	"github.com/spf13/cobra"
)

func toNumberCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "to-number <roman>",
		Short:   "Convert a Roman numeral to an integer",
		Example: "  roman to-number XIV",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := numeral.NewService().ToNumber(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func toRomanCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "to-roman <number>",
		Short:   "Convert an integer in 0-3999 to a Roman numeral",
		Example: "  roman to-roman 14",
		// Flags are parsed in RunE so negative numbers reach the converter
		// instead of failing as unknown shorthand flags.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			positional, err := parseSignedArgs(cmd, args)
			if err != nil {
				return err
			}
			if help, _ := cmd.Flags().GetBool("help"); help {
				return cmd.Help()
			}
			if len(positional) != 1 {
				return fmt.Errorf("accepts 1 arg(s), received %d", len(positional))
			}
			n, err := numeral.ParseNumber(positional[0])
			if err != nil {
				return err
			}
			roman, err := numeral.NewService().ToRoman(n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), roman)
			return nil
		},
	}
}

// parseSignedArgs parses the flags in args and returns the positional
// arguments, treating anything that reads as a negative number as positional.
func parseSignedArgs(cmd *cobra.Command, args []string) ([]string, error) {
	flagArgs := make([]string, 0, len(args))
	var numbers []string
	for i, arg := range args {
		if arg == "--" {
			flagArgs = append(flagArgs, args[i:]...)
			break
		}
		if isNegativeNumber(arg) {
			numbers = append(numbers, arg)
			continue
		}
		flagArgs = append(flagArgs, arg)
	}

	// InheritedFlags merges the root's persistent flags into cmd.Flags().
	cmd.InheritedFlags()
	flags := cmd.Flags()
	if err := flags.Parse(flagArgs); err != nil {
		return nil, err
	}
	return append(flags.Args(), numbers...), nil
}

func isNegativeNumber(arg string) bool {
	if !strings.HasPrefix(arg, "-") {
		return false
	}
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}
