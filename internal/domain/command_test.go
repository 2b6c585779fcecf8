package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Command
		wantErr bool
	}{
		{"program only uses default", []string{"prog"}, Command{Name: CommandUsage}, false},
		{"command only", []string{"prog", "table"}, Command{Name: "table"}, false},
		{"command and degrees", []string{"prog", "ftoc", "32"}, Command{Name: "ftoc", Degrees: "32"}, false},
		{"negative degrees", []string{"prog", "ctof", "-40"}, Command{Name: "ctof", Degrees: "-40"}, false},
		{"name is not validated", []string{"prog", "bogus", "x"}, Command{Name: "bogus", Degrees: "x"}, false},
		{"too many", []string{"prog", "a", "b", "c"}, Command{}, true},
		{"empty", []string{}, Command{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs(tt.args, CommandUsage)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrWrongArgumentCount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArgs_InteractiveDefault(t *testing.T) {
	got, err := ParseArgs([]string{"prog"}, CommandInteractive)
	require.NoError(t, err)
	assert.Equal(t, Command{Name: CommandInteractive}, got)
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		name string
		want Action
	}{
		{"usage", ActionUsage},
		{"help", ActionUsage},
		{"ftoc", ActionFahrenheitToCelsius},
		{"ctof", ActionCelsiusToFahrenheit},
		{"table", ActionTable},
		{"list", ActionTable},
		{"interactive", ActionInteractive},
		{"tui", ActionTUI},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Command{Name: tt.name}.Action()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, name := range []string{"", "FTOC", "Help", "convert"} {
		_, err := ParseAction(name)
		assert.ErrorIs(t, err, ErrUnknownCommand, "name %q", name)
	}
}

func TestCommandNames_AllResolve(t *testing.T) {
	for _, name := range CommandNames() {
		_, err := ParseAction(name)
		assert.NoError(t, err, name)
	}
}

func TestAction_Scale(t *testing.T) {
	s, ok := ActionFahrenheitToCelsius.Scale()
	assert.True(t, ok)
	assert.Equal(t, Fahrenheit, s)

	s, ok = ActionCelsiusToFahrenheit.Scale()
	assert.True(t, ok)
	assert.Equal(t, Celsius, s)

	_, ok = ActionTable.Scale()
	assert.False(t, ok)
}
