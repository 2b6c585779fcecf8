package cli

import (
	"bytes"
	"testing"

	"github.com/runoshun/tempconv/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConversions_JSON(t *testing.T) {
	var buf bytes.Buffer
	rows := []domain.Conversion{domain.Convert(domain.NewFahrenheit(0))}

	require.NoError(t, writeConversions(&buf, domain.FormatJSON, rows))
	assert.JSONEq(t, `{"conversions":[{"from":0,"from_scale":"Fahrenheit","to":-17.78,"to_scale":"Celsius"}]}`, buf.String())
}

func TestWriteConversions_YAML(t *testing.T) {
	var buf bytes.Buffer
	rows := []domain.Conversion{domain.Convert(domain.NewCelsius(100))}

	require.NoError(t, writeConversions(&buf, domain.FormatYAML, rows))
	assert.YAMLEq(t, "conversions:\n  - from: 100\n    from_scale: Celsius\n    to: 212\n    to_scale: Fahrenheit\n", buf.String())
}

func TestWriteConversions_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := writeConversions(&buf, domain.FormatText, nil)
	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 37.0, round2(37.000000000000001))
	assert.Equal(t, -17.78, round2(-17.7777777))
	assert.Equal(t, 98.6, round2(98.6))
}
