package units

// Multiplicative factors to ABV, the alcohol category's base unit.
// ABW = ABV * 0.794, so one ABW point is 1/0.794 ABV points.
var alcoholToABV = map[string]float64{
	"abv":       1,
	"abw":       1 / 0.794,
	"proof(us)": 0.5,
	"proof(uk)": 1.0 / 1.75,
}

// ConvertAlcohol converts an alcohol content value between ABV, ABW, and the
// US/UK proof scales.
func ConvertAlcohol(value float64, fromUnit, toUnit string) (float64, error) {
	from, err := Normalize(fromUnit, "alcohol")
	if err != nil {
		return 0, err
	}
	to, err := Normalize(toUnit, "alcohol")
	if err != nil {
		return 0, err
	}
	if from == to {
		return value, nil
	}
	return value * alcoholToABV[from] / alcoholToABV[to], nil
}
