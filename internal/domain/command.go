package domain

import "fmt"

// Command is a normalized command line: a command name and its raw degree argument.
// Neither field is validated until the command is dispatched.
type Command struct {
	Name    string
	Degrees string // Empty when not given
}

// Action is the closed set of things a command can do.
type Action int

const (
	ActionUsage              Action = iota // Print usage text
	ActionFahrenheitToCelsius              // One-shot ºF -> ºC conversion
	ActionCelsiusToFahrenheit              // One-shot ºC -> ºF conversion
	ActionTable                            // Print the common table
	ActionInteractive                      // Run the interactive prompt loop
	ActionTUI                              // Run the full-screen UI
)

// Command names accepted on the command line.
const (
	CommandUsage       = "usage"
	CommandHelp        = "help"
	CommandFToC        = "ftoc"
	CommandCToF        = "ctof"
	CommandTable       = "table"
	CommandList        = "list"
	CommandInteractive = "interactive"
	CommandTUI         = "tui"
)

var commandActions = map[string]Action{
	CommandUsage:       ActionUsage,
	CommandHelp:        ActionUsage,
	CommandFToC:        ActionFahrenheitToCelsius,
	CommandCToF:        ActionCelsiusToFahrenheit,
	CommandTable:       ActionTable,
	CommandList:        ActionTable,
	CommandInteractive: ActionInteractive,
	CommandTUI:         ActionTUI,
}

// CommandNames returns every accepted command name in display order.
func CommandNames() []string {
	return []string{
		CommandUsage,
		CommandHelp,
		CommandFToC,
		CommandCToF,
		CommandTable,
		CommandList,
		CommandInteractive,
		CommandTUI,
	}
}

// ParseAction resolves a command name. Matching is case-sensitive.
func ParseAction(name string) (Action, error) {
	action, ok := commandActions[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	return action, nil
}

// Action resolves the command name to an Action.
func (c Command) Action() (Action, error) {
	return ParseAction(c.Name)
}

// Scale returns the input scale of a conversion action.
// ok is false for actions that do not convert.
func (a Action) Scale() (scale Scale, ok bool) {
	switch a {
	case ActionFahrenheitToCelsius:
		return Fahrenheit, true
	case ActionCelsiusToFahrenheit:
		return Celsius, true
	default:
		return 0, false
	}
}

// ParseArgs builds a Command from a full argument vector, program name included.
// A lone program name yields defaultName.
func ParseArgs(args []string, defaultName string) (Command, error) {
	switch len(args) {
	case 1:
		return Command{Name: defaultName}, nil
	case 2:
		return Command{Name: args[1]}, nil
	case 3:
		return Command{Name: args[1], Degrees: args[2]}, nil
	default:
		return Command{}, fmt.Errorf("%w: got %d, want at most 2", ErrWrongArgumentCount, len(args)-1)
	}
}
