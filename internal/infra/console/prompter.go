// Package console provides line readers for the interactive loop.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/runoshun/tempconv/internal/domain"
)

// Ensure Prompter implements domain.LineReader.
var _ domain.LineReader = (*Prompter)(nil)

// Prompter reads lines from a plain reader such as a pipe or a file.
// The prompt is written to out before every read.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and prompting on out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadLine writes prompt and reads one line.
// A final line without a newline is returned before io.EOF.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(p.out, prompt); err != nil {
			return "", fmt.Errorf("%w: write prompt: %v", domain.ErrInputRead, err)
		}
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %v", domain.ErrInputRead, err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Close is a no-op; the underlying reader belongs to the caller.
func (p *Prompter) Close() error {
	return nil
}
