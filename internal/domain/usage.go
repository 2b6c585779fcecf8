package domain

import (
	"fmt"
	"strings"
)

// DefaultUsageFile is the usage file looked up in the working directory.
const DefaultUsageFile = "usage.txt"

// BuiltinUsage returns the usage text shown when no usage file is available.
func BuiltinUsage(program string) string {
	var b strings.Builder
	b.WriteString("Valid commands\n\n")
	fmt.Fprintf(&b, "%s ftoc degrees_fahrenheit\n", program)
	b.WriteString("\tConvert given degrees Fahrenheit to Celsius\n\n")
	fmt.Fprintf(&b, "%s ctof degrees_celsius\n", program)
	b.WriteString("\tConvert given degrees Celsius to Fahrenheit\n\n")
	fmt.Fprintf(&b, "%s table or list\n", program)
	b.WriteString("\tPrint a list of common conversions\n\n")
	fmt.Fprintf(&b, "%s interactive\n", program)
	b.WriteString("\tRun interactive program\n\n")
	fmt.Fprintf(&b, "%s tui\n", program)
	b.WriteString("\tRun full-screen converter\n\n")
	fmt.Fprintf(&b, "%s help or usage\n", program)
	b.WriteString("\tThis help message\n")
	return b.String()
}
