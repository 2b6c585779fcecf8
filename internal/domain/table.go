package domain

// Common table bounds in degrees Celsius.
const (
	TableStartCelsius = -40
	TableEndCelsius   = 100
	TableStepCelsius  = 10
)

// CommonTable returns the common conversions from -40ºC to 100ºC in steps of 10,
// each paired with its Fahrenheit value.
func CommonTable() []Conversion {
	rows := make([]Conversion, 0, (TableEndCelsius-TableStartCelsius)/TableStepCelsius+1)
	for c := TableStartCelsius; c <= TableEndCelsius; c += TableStepCelsius {
		rows = append(rows, Convert(NewCelsius(float64(c))))
	}
	return rows
}
