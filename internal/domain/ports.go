package domain

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults <- global <- local).
	Load() (*Config, error)
}

// UsageSource provides externally supplied usage text.
type UsageSource interface {
	// Load returns the usage text, or an error when none is available.
	Load() (string, error)
}

// LineReader reads lines typed by the user.
// Implementations return io.EOF when input ends and ErrInterrupted
// when the user cancels the current line.
type LineReader interface {
	// ReadLine shows prompt and returns the next line without its line ending.
	ReadLine(prompt string) (string, error)

	// Close releases the underlying terminal or reader.
	Close() error
}
