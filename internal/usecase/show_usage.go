package usecase

import (
	"context"
	"log/slog"

	"github.com/runoshun/tempconv/internal/domain"
)

// ShowUsageInput contains the input for the ShowUsage use case.
type ShowUsageInput struct {
	Program string // Program name shown in the built-in text
}

// ShowUsageOutput contains the output of the ShowUsage use case.
type ShowUsageOutput struct {
	Text    string
	Builtin bool // True when the usage source was unavailable
}

// ShowUsage resolves the usage text, preferring the external usage source.
type ShowUsage struct {
	source domain.UsageSource
	logger *slog.Logger
}

// NewShowUsage creates a new ShowUsage use case.
func NewShowUsage(source domain.UsageSource, logger *slog.Logger) *ShowUsage {
	return &ShowUsage{source: source, logger: logger}
}

// Execute returns the usage text. It never fails: when the source cannot be
// read the built-in text is returned.
func (uc *ShowUsage) Execute(ctx context.Context, in ShowUsageInput) (*ShowUsageOutput, error) {
	if uc.source != nil {
		text, err := uc.source.Load()
		if err == nil {
			return &ShowUsageOutput{Text: text}, nil
		}
		uc.logger.DebugContext(ctx, "using built-in usage", "reason", err)
	}
	return &ShowUsageOutput{Text: domain.BuiltinUsage(in.Program), Builtin: true}, nil
}
