package types

import "fmt"

// Units is the temperature measurement system requested by the client
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

const (
	SymbolCelsius    = "°C"
	SymbolFahrenheit = "°F"
)

// ParseUnits validates a units query value. Only the exact literals
// "metric" and "imperial" are accepted.
func ParseUnits(s string) (Units, error) {
	switch Units(s) {
	case UnitsMetric, UnitsImperial:
		return Units(s), nil
	}
	return "", fmt.Errorf("invalid units %q", s)
}

// TemperatureUnit returns the token the forecast provider expects
func (u Units) TemperatureUnit() string {
	if u == UnitsImperial {
		return "fahrenheit"
	}
	return "celsius"
}

// Symbol returns the display symbol for temperatures in u
func (u Units) Symbol() string {
	if u == UnitsImperial {
		return SymbolFahrenheit
	}
	return SymbolCelsius
}

// UnitsFromSymbol maps a provider unit symbol back to a unit system.
func UnitsFromSymbol(symbol string) (Units, bool) {
	switch symbol {
	case SymbolCelsius:
		return UnitsMetric, true
	case SymbolFahrenheit:
		return UnitsImperial, true
	}
	return "", false
}
