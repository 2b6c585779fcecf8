package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestTemperature_Convert(t *testing.T) {
	tests := []struct {
		name string
		in   Temperature
		want float64
	}{
		{"0C -> 32F", NewCelsius(0), 32},
		{"100C -> 212F", NewCelsius(100), 212},
		{"-40C -> -40F", NewCelsius(-40), -40},
		{"37C -> 98.6F", NewCelsius(37), 98.6},
		{"32F -> 0C", NewFahrenheit(32), 0},
		{"212F -> 100C", NewFahrenheit(212), 100},
		{"98.6F -> 37C", NewFahrenheit(98.6), 37},
		{"-40F -> -40C", NewFahrenheit(-40), -40},
		{"below absolute zero", NewCelsius(-500), -868},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.in.Convert(), tolerance)
		})
	}
}

func TestTemperature_RoundTrip(t *testing.T) {
	for x := -1000.0; x <= 1000.0; x += 0.25 {
		back := NewFahrenheit(NewCelsius(x).Convert()).Convert()
		assert.InDelta(t, x, back, tolerance, "celsius %v", x)

		back = NewCelsius(NewFahrenheit(x).Convert()).Convert()
		assert.InDelta(t, x, back, tolerance, "fahrenheit %v", x)
	}
}

func TestTemperature_Converted(t *testing.T) {
	got := NewFahrenheit(212).Converted()
	assert.Equal(t, Celsius, got.Scale)
	assert.InDelta(t, 100, got.Degrees, tolerance)

	got = NewCelsius(100).Converted()
	assert.Equal(t, Fahrenheit, got.Scale)
	assert.InDelta(t, 212, got.Degrees, tolerance)
}

func TestConvert(t *testing.T) {
	c := Convert(NewCelsius(0))
	assert.Equal(t, NewCelsius(0), c.From)
	assert.Equal(t, Fahrenheit, c.To.Scale)
	assert.InDelta(t, 32, c.To.Degrees, tolerance)
}

func TestScale(t *testing.T) {
	assert.Equal(t, "Fahrenheit", Fahrenheit.String())
	assert.Equal(t, "Celsius", Celsius.String())
	assert.Equal(t, "Scale(7)", Scale(7).String())
	assert.Equal(t, "ºF", Fahrenheit.Symbol())
	assert.Equal(t, "ºC", Celsius.Symbol())
	assert.Equal(t, Celsius, Fahrenheit.Opposite())
	assert.Equal(t, Fahrenheit, Celsius.Opposite())
}

func TestTemperature_String(t *testing.T) {
	assert.Equal(t, "32.00ºF", NewFahrenheit(32).String())
	assert.Equal(t, "-17.78ºC", NewFahrenheit(0).Converted().String())
}

func TestParseDegrees(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"32", 32, false},
		{"-40", -40, false},
		{"98.6", 98.6, false},
		{"  212\n", 212, false},
		{"1e2", 100, false},
		{"abc", 0, true},
		{"", 0, true},
		{"12abc", 0, true},
		{"1_0", 0, true},
		{"1_000.5", 0, true},
		{"0x1p4", 0, true},
		{"-0X1p4", 0, true},
		{"0.5", 0.5, false},
		{"+10", 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDegrees(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDegrees)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, tolerance)
		})
	}
}

func TestParseTemperature(t *testing.T) {
	got, err := ParseTemperature("-40", Celsius)
	require.NoError(t, err)
	assert.Equal(t, NewCelsius(-40), got)

	_, err = ParseTemperature("abc", Fahrenheit)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDegrees))
	assert.Contains(t, err.Error(), "Fahrenheit")
}
