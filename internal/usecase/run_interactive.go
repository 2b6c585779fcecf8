package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/runoshun/tempconv/internal/domain"
)

// Interactive loop text.
const (
	interactiveBanner = "Temperature Converter\n\n" +
		"Type 'exit' or 'quit' to leave at anytime\n\n"
	interactiveMenu = "Enter a number to run a function listed below.\n\n" +
		"1: Fahrenheit to Celsius\n" +
		"2: Celsius to Fahrenheit\n" +
		"3: Print a list of common conversions\n\n"
	interactiveFarewell = "Goodbye!\n"
	interactiveExitHint = "\nType 'exit' or 'quit' to leave\n\n"

	promptChoice = "Choice: "

	msgInvalidChoice = "\nInvalid choice!\n\n"
	msgInvalidInput  = "\nInvalid input!\n\n"
	msgUnknownChoice = "\nEnter 1, 2, 3, exit, or quit!\n\n"
)

// RunInteractiveInput contains the input for the RunInteractive use case.
type RunInteractiveInput struct{}

// RunInteractiveOutput contains the output of the RunInteractive use case.
type RunInteractiveOutput struct {
	Conversions int // Number of conversions printed during the session
}

// RunInteractive runs the menu-driven prompt loop until the user exits.
type RunInteractive struct {
	reader domain.LineReader
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// NewRunInteractive creates a new RunInteractive use case.
// stdout and stderr are the writers for loop output and diagnostics.
func NewRunInteractive(reader domain.LineReader, stdout, stderr io.Writer, logger *slog.Logger) *RunInteractive {
	return &RunInteractive{
		reader: reader,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}
}

// readStatus tells the loop what to do after a read.
type readStatus int

const (
	readOK    readStatus = iota // A line was read
	readRetry                   // The line was cancelled; show the menu again
	readEnd                     // Input ended; leave the loop
)

// Execute runs the loop. It returns nil when the user types exit/quit or input
// ends, and an error wrapping domain.ErrInputRead when reading fails.
func (uc *RunInteractive) Execute(ctx context.Context, _ RunInteractiveInput) (*RunInteractiveOutput, error) {
	out := &RunInteractiveOutput{}
	uc.write(uc.stdout, interactiveBanner)

	for {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		uc.write(uc.stdout, interactiveMenu)
		line, status, err := uc.read(promptChoice)
		if err != nil {
			return out, err
		}
		switch status {
		case readRetry:
			continue
		case readEnd:
			uc.write(uc.stdout, "\n"+interactiveFarewell)
			return out, nil
		}

		if domain.IsExitInput(line) {
			uc.write(uc.stdout, interactiveFarewell)
			return out, nil
		}

		choice, err := domain.ParseMenuChoice(line)
		if err != nil {
			uc.logger.DebugContext(ctx, "rejected menu input", "error", err)
			uc.write(uc.stderr, msgInvalidChoice)
			continue
		}

		done, err := uc.handleChoice(ctx, choice, out)
		if err != nil || done {
			return out, err
		}
	}
}

// handleChoice runs one menu entry. done is true when input ended.
func (uc *RunInteractive) handleChoice(ctx context.Context, choice domain.MenuChoice, out *RunInteractiveOutput) (done bool, err error) {
	if !choice.Valid() {
		uc.write(uc.stderr, msgUnknownChoice)
		return false, nil
	}

	scale, converts := choice.Scale()
	if !converts {
		uc.write(uc.stdout, domain.FormatTable(domain.CommonTable()))
		return false, nil
	}

	line, status, err := uc.read(fmt.Sprintf("Enter %s: ", scale.Symbol()))
	if err != nil {
		return true, err
	}
	switch status {
	case readRetry:
		return false, nil
	case readEnd:
		uc.write(uc.stdout, "\n"+interactiveFarewell)
		return true, nil
	}

	t, err := domain.ParseTemperature(line, scale)
	if err != nil {
		uc.logger.DebugContext(ctx, "rejected degree input", "error", err)
		uc.write(uc.stderr, msgInvalidInput)
		return false, nil
	}

	uc.write(uc.stdout, domain.FormatConversion(t))
	out.Conversions++
	return false, nil
}

// read reads one line and classifies the outcome.
// End of input is a graceful exit; other failures are fatal.
func (uc *RunInteractive) read(prompt string) (string, readStatus, error) {
	line, err := uc.reader.ReadLine(prompt)
	switch {
	case err == nil:
		return line, readOK, nil
	case errors.Is(err, io.EOF):
		return "", readEnd, nil
	case errors.Is(err, domain.ErrInterrupted):
		uc.write(uc.stderr, interactiveExitHint)
		return "", readRetry, nil
	case errors.Is(err, domain.ErrInputRead):
		return "", readEnd, err
	default:
		return "", readEnd, fmt.Errorf("%w: %v", domain.ErrInputRead, err)
	}
}

func (uc *RunInteractive) write(w io.Writer, s string) {
	_, _ = io.WriteString(w, s)
}
