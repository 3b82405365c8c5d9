package units

import (
	"fmt"
	"sort"
)

// Density units split into two schemes: plain factor units scaled against
// g/L, and the empirical brewing scales (SG, Brix, Plato, Oechsle, Twaddell)
// which each carry a forward/inverse function pair relative to g/L.

// Multiplicative factors to g/L for the linear density units.
var densityToGL = map[string]float64{
	"g/ml":       1000,
	"g/l":        1,
	"kg/m3":      1, // same magnitude as g/L
	"lb/gal(us)": 119.826,
	"lb/gal(uk)": 99.7764,
	"lb/ft3":     16.0185,
}

// empiricalScale converts between a non-linear brewing scale and g/L.
type empiricalScale struct {
	toGL   func(float64) float64
	fromGL func(float64) float64
}

func sgToGL(sg float64) float64 { return sg * 1000 }
func glToSG(gl float64) float64 { return gl / 1000 }

func brixToGL(brix float64) float64 {
	sg := 1 + (brix / (258.6 - (brix/258.2)*227.1))
	return sgToGL(sg)
}

// glToBrix approximates Brix from SG with a cubic fit. It is not the
// algebraic inverse of brixToGL; the round-trip discrepancy is accepted at
// brewing precision and both formulas are kept as published.
func glToBrix(gl float64) float64 {
	sg := glToSG(gl)
	return 182.4601*sg*sg*sg - 775.6821*sg*sg + 1262.7794*sg - 669.5622
}

// Oechsle: °Oe = (SG - 1) * 1000, so SG 1.075 reads 75 °Oe.
func oeToGL(oe float64) float64 { return sgToGL(oe/1000 + 1) }
func glToOE(gl float64) float64 { return (glToSG(gl) - 1) * 1000 }

// Twaddell: SG = 1 + °Tw / 200.
func twToGL(tw float64) float64 { return sgToGL(1 + tw/200) }
func glToTW(gl float64) float64 { return (glToSG(gl) - 1) * 200 }

// Plato shares the Brix formulas; only the label differs.
var densityScales = map[string]empiricalScale{
	"sg":    {sgToGL, glToSG},
	"brix":  {brixToGL, glToBrix},
	"plato": {brixToGL, glToBrix},
	"oe":    {oeToGL, glToOE},
	"tw":    {twToGL, glToTW},
}

// DensityScaleKeys returns the unit keys of the empirical brewing scales,
// sorted. Hydrometer-facing features (gravity correction, ABV) present these
// rather than the full density unit list.
func DensityScaleKeys() []string {
	keys := make([]string, 0, len(densityScales))
	for key := range densityScales {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ConvertDensity converts a density value between factor units and the
// empirical brewing scales, pivoting through g/L.
func ConvertDensity(value float64, fromUnit, toUnit string) (float64, error) {
	from, err := Normalize(fromUnit, "density")
	if err != nil {
		return 0, err
	}
	to, err := Normalize(toUnit, "density")
	if err != nil {
		return 0, err
	}
	if from == to {
		return value, nil
	}

	var gl float64
	if factor, ok := densityToGL[from]; ok {
		gl = value * factor
	} else if scale, ok := densityScales[from]; ok {
		gl = scale.toGL(value)
	} else {
		// Unreachable while the registry and the two tables agree.
		return 0, fmt.Errorf("%w: %q in category %q", ErrUnsupportedUnit, from, "density")
	}

	if factor, ok := densityToGL[to]; ok {
		return gl / factor, nil
	}
	if scale, ok := densityScales[to]; ok {
		return scale.fromGL(gl), nil
	}
	return 0, fmt.Errorf("%w: %q in category %q", ErrUnsupportedUnit, to, "density")
}
