package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// MenuChoice is a numbered entry of the interactive menu.
type MenuChoice uint8

const (
	ChoiceFahrenheitToCelsius MenuChoice = 1
	ChoiceCelsiusToFahrenheit MenuChoice = 2
	ChoiceTable               MenuChoice = 3
)

// Words that end the interactive session.
const (
	InputExit = "exit"
	InputQuit = "quit"
)

// IsExitInput reports whether a line asks to leave the interactive loop.
// Surrounding whitespace is ignored; case is not.
func IsExitInput(line string) bool {
	line = strings.TrimSpace(line)
	return line == InputExit || line == InputQuit
}

// ParseMenuChoice parses a menu selection. Any small unsigned integer is accepted;
// use Valid to check it names a menu entry.
func ParseMenuChoice(line string) (MenuChoice, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(line), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, line)
	}
	return MenuChoice(n), nil
}

// Valid reports whether c is one of the menu entries.
func (c MenuChoice) Valid() bool {
	return c >= ChoiceFahrenheitToCelsius && c <= ChoiceTable
}

// Scale returns the input scale for conversion entries.
func (c MenuChoice) Scale() (scale Scale, ok bool) {
	switch c {
	case ChoiceFahrenheitToCelsius:
		return Fahrenheit, true
	case ChoiceCelsiusToFahrenheit:
		return Celsius, true
	default:
		return 0, false
	}
}
