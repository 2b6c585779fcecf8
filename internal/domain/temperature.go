// Package domain contains the core types of tempconv.
package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Scale identifies the temperature scale a degree value is measured in.
type Scale int

const (
	Fahrenheit Scale = iota // Degrees Fahrenheit
	Celsius                 // Degrees Celsius
)

// String returns the scale name.
func (s Scale) String() string {
	switch s {
	case Fahrenheit:
		return "Fahrenheit"
	case Celsius:
		return "Celsius"
	default:
		return fmt.Sprintf("Scale(%d)", int(s))
	}
}

// Symbol returns the unit symbol used in printed conversions.
func (s Scale) Symbol() string {
	if s == Celsius {
		return "ºC"
	}
	return "ºF"
}

// Opposite returns the scale a value in s converts to.
func (s Scale) Opposite() Scale {
	if s == Celsius {
		return Fahrenheit
	}
	return Celsius
}

// Temperature is a degree value tagged with its scale.
// Any float64 is accepted, including values below absolute zero.
type Temperature struct {
	Degrees float64
	Scale   Scale
}

// NewFahrenheit returns a temperature in degrees Fahrenheit.
func NewFahrenheit(degrees float64) Temperature {
	return Temperature{Degrees: degrees, Scale: Fahrenheit}
}

// NewCelsius returns a temperature in degrees Celsius.
func NewCelsius(degrees float64) Temperature {
	return Temperature{Degrees: degrees, Scale: Celsius}
}

// FahrenheitToCelsius converts degrees Fahrenheit to degrees Celsius.
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * (5.0 / 9.0)
}

// CelsiusToFahrenheit converts degrees Celsius to degrees Fahrenheit.
func CelsiusToFahrenheit(c float64) float64 {
	return c*(9.0/5.0) + 32
}

// Convert returns the degree value of t in the opposite scale.
func (t Temperature) Convert() float64 {
	if t.Scale == Celsius {
		return CelsiusToFahrenheit(t.Degrees)
	}
	return FahrenheitToCelsius(t.Degrees)
}

// Converted returns t expressed in the opposite scale.
func (t Temperature) Converted() Temperature {
	return Temperature{Degrees: t.Convert(), Scale: t.Scale.Opposite()}
}

// String formats t with two decimals and its unit symbol, e.g. "32.00ºF".
func (t Temperature) String() string {
	return fmt.Sprintf("%.2f%s", t.Degrees, t.Scale.Symbol())
}

// Conversion pairs an input temperature with its converted value.
type Conversion struct {
	From Temperature
	To   Temperature
}

// Convert converts t and returns both sides of the conversion.
func Convert(t Temperature) Conversion {
	return Conversion{From: t, To: t.Converted()}
}

// ParseDegrees parses a degree value typed by the user.
// Surrounding whitespace is ignored. Only plain decimal notation is accepted:
// digit separators and hexadecimal floats are rejected.
func ParseDegrees(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if !isDecimal(trimmed) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDegrees, s)
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDegrees, s)
	}
	return v, nil
}

func isDecimal(s string) bool {
	if strings.Contains(s, "_") {
		return false
	}
	unsigned := strings.TrimLeft(s, "+-")
	return !strings.HasPrefix(unsigned, "0x") && !strings.HasPrefix(unsigned, "0X")
}

// ParseTemperature parses s as a degree value in the given scale.
func ParseTemperature(s string, scale Scale) (Temperature, error) {
	v, err := ParseDegrees(s)
	if err != nil {
		return Temperature{}, fmt.Errorf("could not parse degrees %s: %w", scale, err)
	}
	return Temperature{Degrees: v, Scale: scale}, nil
}
