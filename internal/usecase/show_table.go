package usecase

import (
	"context"
	"log/slog"

	"github.com/runoshun/tempconv/internal/domain"
)

// ShowTableInput contains the input for the ShowTable use case.
type ShowTableInput struct{}

// ShowTableOutput contains the output of the ShowTable use case.
type ShowTableOutput struct {
	Rows []domain.Conversion
}

// ShowTable builds the common conversions table.
type ShowTable struct {
	logger *slog.Logger
}

// NewShowTable creates a new ShowTable use case.
func NewShowTable(logger *slog.Logger) *ShowTable {
	return &ShowTable{logger: logger}
}

// Execute returns the common table rows.
func (uc *ShowTable) Execute(ctx context.Context, _ ShowTableInput) (*ShowTableOutput, error) {
	rows := domain.CommonTable()
	uc.logger.DebugContext(ctx, "built common table", "rows", len(rows))
	return &ShowTableOutput{Rows: rows}, nil
}
