// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"log/slog"

	"github.com/runoshun/tempconv/internal/domain"
)

// ConvertTemperatureInput contains the input for the ConvertTemperature use case.
type ConvertTemperatureInput struct {
	Degrees string       // Raw degree text as typed by the user
	Scale   domain.Scale // Scale the degrees are given in
}

// ConvertTemperatureOutput contains the output of the ConvertTemperature use case.
type ConvertTemperatureOutput struct {
	Conversion domain.Conversion
}

// ConvertTemperature parses a degree value and converts it to the opposite scale.
type ConvertTemperature struct {
	logger *slog.Logger
}

// NewConvertTemperature creates a new ConvertTemperature use case.
func NewConvertTemperature(logger *slog.Logger) *ConvertTemperature {
	return &ConvertTemperature{logger: logger}
}

// Execute converts the degrees.
// Returns domain.ErrInvalidDegrees if the degree text is not a number.
func (uc *ConvertTemperature) Execute(ctx context.Context, in ConvertTemperatureInput) (*ConvertTemperatureOutput, error) {
	t, err := domain.ParseTemperature(in.Degrees, in.Scale)
	if err != nil {
		return nil, err
	}

	conv := domain.Convert(t)
	uc.logger.DebugContext(ctx, "converted temperature",
		"from", conv.From.String(),
		"to", conv.To.String(),
	)
	return &ConvertTemperatureOutput{Conversion: conv}, nil
}
