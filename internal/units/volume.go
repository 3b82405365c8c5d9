package units

// Multiplicative factors to litres, the volume category's base unit.
var volumeToLitres = map[string]float64{
	"ml":        0.001,
	"l":         1,
	"cl":        0.01,
	"dl":        0.1,
	"m3":        1000,
	"tsp":       0.00492892, // US teaspoon
	"tbsp":      0.0147868,  // US tablespoon
	"fl_oz":     0.0295735,  // US fluid ounce
	"cup":       0.24,       // metric cup
	"pt":        0.473176,   // US pint
	"qt":        0.946353,   // US quart
	"gal":       3.78541,    // US gallon
	"imp_fl_oz": 0.0284131,  // Imperial fluid ounce
	"imp_pt":    0.568261,   // Imperial pint
	"imp_qt":    1.13652,    // Imperial quart
	"imp_gal":   4.54609,    // Imperial gallon
}

// ConvertVolume converts a volume value between metric, US, and Imperial units.
func ConvertVolume(value float64, fromUnit, toUnit string) (float64, error) {
	from, err := Normalize(fromUnit, "volume")
	if err != nil {
		return 0, err
	}
	to, err := Normalize(toUnit, "volume")
	if err != nil {
		return 0, err
	}
	if from == to {
		return value, nil
	}
	return value * volumeToLitres[from] / volumeToLitres[to], nil
}
