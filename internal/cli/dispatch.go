package cli

import (
	"context"
	"io"

	"github.com/runoshun/tempconv/internal/app"
	"github.com/runoshun/tempconv/internal/domain"
	"github.com/runoshun/tempconv/internal/usecase"
	"github.com/spf13/cobra"
)

// dispatch runs the action a command names.
// Unknown commands and unparsable degrees print the usage text on stderr
// before their error is returned.
func dispatch(cmd *cobra.Command, c *app.Container, command domain.Command, format string) error {
	ctx := cmd.Context()

	action, err := command.Action()
	if err != nil {
		_ = printUsage(ctx, cmd.ErrOrStderr(), c)
		return err
	}
	c.Logger.DebugContext(ctx, "dispatching command", "name", command.Name, "degrees", command.Degrees)

	switch action {
	case domain.ActionUsage:
		return printUsage(ctx, cmd.OutOrStdout(), c)
	case domain.ActionTable:
		return printTable(ctx, cmd.OutOrStdout(), c, format)
	case domain.ActionInteractive:
		return runInteractive(cmd, c)
	case domain.ActionTUI:
		return launchTUIFunc(c)
	}

	scale, _ := action.Scale()
	out, err := c.ConvertTemperatureUseCase().Execute(ctx, usecase.ConvertTemperatureInput{
		Degrees: command.Degrees,
		Scale:   scale,
	})
	if err != nil {
		_ = printUsage(ctx, cmd.ErrOrStderr(), c)
		return err
	}

	if format == domain.FormatText {
		_, err = io.WriteString(cmd.OutOrStdout(), domain.FormatConversion(out.Conversion.From))
		return err
	}
	return writeConversions(cmd.OutOrStdout(), format, []domain.Conversion{out.Conversion})
}

func printUsage(ctx context.Context, w io.Writer, c *app.Container) error {
	out, err := c.ShowUsageUseCase().Execute(ctx, usecase.ShowUsageInput{Program: c.Config.Program})
	if err != nil {
		return err
	}
	c.Logger.DebugContext(ctx, "printing usage", "builtin", out.Builtin)
	_, err = io.WriteString(w, out.Text)
	return err
}

func printTable(ctx context.Context, w io.Writer, c *app.Container, format string) error {
	out, err := c.ShowTableUseCase().Execute(ctx, usecase.ShowTableInput{})
	if err != nil {
		return err
	}
	if format == domain.FormatText {
		_, err = io.WriteString(w, domain.FormatTable(out.Rows))
		return err
	}
	return writeConversions(w, format, out.Rows)
}

func runInteractive(cmd *cobra.Command, c *app.Container) error {
	reader, err := c.NewLineReader(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = reader.Close() }()

	uc := c.RunInteractiveUseCase(reader, cmd.OutOrStdout(), cmd.ErrOrStderr())
	out, err := uc.Execute(cmd.Context(), usecase.RunInteractiveInput{})
	if out != nil {
		c.Logger.DebugContext(cmd.Context(), "interactive session ended", "conversions", out.Conversions)
	}
	return err
}
