package units

// Multiplicative factors to grams, the mass category's base unit.
var massToGrams = map[string]float64{
	"mg":    0.001,
	"g":     1,
	"kg":    1000,
	"tonne": 1_000_000,       // metric tonne
	"gr":    0.06479891,      // grain
	"dr":    1.7718451953125, // dram
	"oz":    28.349523125,    // ounce
	"lb":    453.59237,       // pound
	"ton":   907_184.74,      // US short ton
}

// ConvertMass converts a mass value between metric and US customary units.
func ConvertMass(value float64, fromUnit, toUnit string) (float64, error) {
	from, err := Normalize(fromUnit, "mass")
	if err != nil {
		return 0, err
	}
	to, err := Normalize(toUnit, "mass")
	if err != nil {
		return 0, err
	}
	if from == to {
		return value, nil
	}
	return value * massToGrams[from] / massToGrams[to], nil
}
