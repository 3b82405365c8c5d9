package units

// Temperature units do not scale linearly from zero, so each unit carries an
// affine function pair to and from Celsius, the category's base unit.

var toCelsius = map[string]func(float64) float64{
	"c": func(x float64) float64 { return x },
	"k": func(x float64) float64 { return x - 273.15 },
	"f": func(x float64) float64 { return (x - 32) * 5 / 9 },
}

var fromCelsius = map[string]func(float64) float64{
	"c": func(x float64) float64 { return x },
	"k": func(x float64) float64 { return x + 273.15 },
	"f": func(x float64) float64 { return x*9/5 + 32 },
}

// ConvertTemperature converts a temperature between Celsius, Fahrenheit, and
// Kelvin.
func ConvertTemperature(value float64, fromUnit, toUnit string) (float64, error) {
	from, err := Normalize(fromUnit, "temperature")
	if err != nil {
		return 0, err
	}
	to, err := Normalize(toUnit, "temperature")
	if err != nil {
		return 0, err
	}
	if from == to {
		return value, nil
	}
	return fromCelsius[to](toCelsius[from](value)), nil
}
