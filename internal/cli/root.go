// Package cli provides the command-line interface for tempconv.
package cli

import (
	"fmt"

	"github.com/runoshun/tempconv/internal/app"
	"github.com/runoshun/tempconv/internal/domain"
	"github.com/spf13/cobra"
)

// Flag names.
const (
	flagFahrenheitToCelsius = "fahrenheit-to-celsius"
	flagCelsiusToFahrenheit = "celsius-to-fahrenheit"
	flagTable               = "table"
	flagFormat              = "format"
	flagLogLevel            = "log-level"
)

// NewRootCommand creates the root command for tempconv.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var fahrenheit, celsius string
	var table bool
	var format, logLevel string

	root := &cobra.Command{
		Use:   "tempconv [command [degrees]]",
		Short: "Convert temperatures between Fahrenheit and Celsius",
		Long: `tempconv converts temperatures between Fahrenheit and Celsius.

Commands:
  ftoc <degrees>   Convert degrees Fahrenheit to Celsius
  ctof <degrees>   Convert degrees Celsius to Fahrenheit
  table, list      Print a list of common conversions
  interactive      Run the interactive menu
  tui              Run the full-screen converter
  help, usage      Show the usage text

Flags must come before the command, so negative degrees need no quoting:
  tempconv --format yaml ftoc -40`,
		Version:   version,
		Args:      cobra.ArbitraryArgs,
		ValidArgs: domain.CommandNames(),
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			if cmd.Flags().Changed(flagLogLevel) {
				c.SetLogLevel(cmd.ErrOrStderr(), logLevel)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := domain.ValidateFormat(format); err != nil {
				return err
			}

			command, ok, err := commandFromFlags(cmd, args, fahrenheit, celsius)
			if err != nil {
				return err
			}
			if !ok {
				argv := append([]string{c.Config.Program}, args...)
				command, err = domain.ParseArgs(argv, c.AppConfig.DefaultCommand)
				if err != nil {
					return err
				}
			}

			return dispatch(cmd, c, command, format)
		},
	}

	// Stop at the first positional argument so "ftoc -40" keeps its degrees.
	root.Flags().SetInterspersed(false)

	root.Flags().StringVarP(&fahrenheit, flagFahrenheitToCelsius, "f", "", "Convert degrees Fahrenheit to Celsius")
	root.Flags().StringVarP(&celsius, flagCelsiusToFahrenheit, "c", "", "Convert degrees Celsius to Fahrenheit")
	root.Flags().BoolVarP(&table, flagTable, "t", false, "Print a list of common conversions")
	root.PersistentFlags().StringVar(&format, flagFormat, c.AppConfig.Format, "Output format for conversions and the table: text, json, yaml, toml")
	root.PersistentFlags().StringVar(&logLevel, flagLogLevel, c.AppConfig.Log.Level, "Log level: debug, info, warn, error")

	return root
}

// commandFromFlags turns the flag form into a Command.
// ok is false when no conversion flag was given.
func commandFromFlags(cmd *cobra.Command, args []string, fahrenheit, celsius string) (domain.Command, bool, error) {
	flags := cmd.Flags()
	var commands []domain.Command
	if flags.Changed(flagFahrenheitToCelsius) {
		commands = append(commands, domain.Command{Name: domain.CommandFToC, Degrees: fahrenheit})
	}
	if flags.Changed(flagCelsiusToFahrenheit) {
		commands = append(commands, domain.Command{Name: domain.CommandCToF, Degrees: celsius})
	}
	if table, _ := flags.GetBool(flagTable); table {
		commands = append(commands, domain.Command{Name: domain.CommandTable})
	}

	switch {
	case len(commands) == 0:
		return domain.Command{}, false, nil
	case len(commands) > 1:
		return domain.Command{}, false, fmt.Errorf("%w: use only one of --%s, --%s, --%s",
			domain.ErrConflictingFlags, flagFahrenheitToCelsius, flagCelsiusToFahrenheit, flagTable)
	case len(args) > 0:
		return domain.Command{}, false, fmt.Errorf("%w: flags cannot be combined with command %q",
			domain.ErrWrongArgumentCount, args[0])
	}
	return commands[0], true, nil
}
