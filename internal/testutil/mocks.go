// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"io"

	"github.com/runoshun/tempconv/internal/domain"
)

// MockUsageSource is a test double for domain.UsageSource.
type MockUsageSource struct {
	Err   error
	Text  string
	Calls int
}

// Load returns the configured text or error.
func (m *MockUsageSource) Load() (string, error) {
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}
	return m.Text, nil
}

// MockLineReader is a test double for domain.LineReader.
// It returns Lines in order, then EndErr (io.EOF when nil).
// Errs injects an error at a given read index instead of a line.
// Fields are ordered to minimize memory padding.
type MockLineReader struct {
	EndErr  error
	Errs    map[int]error
	Lines   []string
	Prompts []string
	reads   int
	Closed  bool
}

// NewMockLineReader creates a MockLineReader returning lines.
func NewMockLineReader(lines ...string) *MockLineReader {
	return &MockLineReader{
		Lines: lines,
		Errs:  make(map[int]error),
	}
}

// ReadLine records the prompt and returns the next scripted line.
func (m *MockLineReader) ReadLine(prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	idx := m.reads
	m.reads++

	if err, ok := m.Errs[idx]; ok {
		return "", err
	}
	// Injected errors take a read slot without consuming a line.
	lineIdx := idx
	for i := range m.Errs {
		if i < idx {
			lineIdx--
		}
	}
	if lineIdx >= len(m.Lines) {
		if m.EndErr != nil {
			return "", m.EndErr
		}
		return "", io.EOF
	}
	return m.Lines[lineIdx], nil
}

// Close marks the reader closed.
func (m *MockLineReader) Close() error {
	m.Closed = true
	return nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
	Calls   int
}

// NewMockConfigLoader creates a MockConfigLoader returning the default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{Config: domain.NewDefaultConfig()}
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	m.Calls++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}
