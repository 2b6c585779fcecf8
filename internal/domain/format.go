package domain

import (
	"fmt"
	"strings"
)

// FormatConversion renders the conversion of t as a block surrounded by blank lines:
//
//	"\n212.00ºF = 100.00ºC\n\n"
func FormatConversion(t Temperature) string {
	return fmt.Sprintf("\n%s = %s\n\n", t, t.Converted())
}

// FormatTableRow renders one common table row with right-aligned columns.
func FormatTableRow(c Conversion) string {
	return fmt.Sprintf("%7.2f%s = %7.2f%s", c.From.Degrees, c.From.Scale.Symbol(), c.To.Degrees, c.To.Scale.Symbol())
}

// FormatTable renders rows one per line followed by a blank line.
func FormatTable(rows []Conversion) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(FormatTableRow(row))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}
