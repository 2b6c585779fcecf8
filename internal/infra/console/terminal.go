package console

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/runoshun/tempconv/internal/domain"
)

// Ensure Terminal implements domain.LineReader.
var _ domain.LineReader = (*Terminal)(nil)

// Terminal reads lines from an interactive terminal with line editing and history.
type Terminal struct {
	rl *readline.Instance
}

// TerminalOptions configures a Terminal.
type TerminalOptions struct {
	Stdout      io.Writer
	Stderr      io.Writer
	HistoryFile string // Empty disables history
}

// NewTerminal opens a readline instance on the process terminal.
func NewTerminal(opts TerminalOptions) (*Terminal, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     opts.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       domain.InputExit,
		Stdout:          opts.Stdout,
		Stderr:          opts.Stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize readline: %w", err)
	}
	return &Terminal{rl: rl}, nil
}

// ReadLine shows prompt and reads one edited line.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	t.rl.SetPrompt(prompt)
	line, err := t.rl.Readline()
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, readline.ErrInterrupt):
		return "", domain.ErrInterrupted
	case errors.Is(err, io.EOF):
		return "", io.EOF
	default:
		return "", fmt.Errorf("%w: %v", domain.ErrInputRead, err)
	}
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	return t.rl.Close()
}

// IsTerminal reports whether r is a terminal device.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return readline.IsTerminal(int(f.Fd()))
}
