// Package fermentation estimates alcohol by volume from gravity readings and
// sizes priming sugar additions for bottle carbonation. It builds on the
// units package for scale handling and hydrometer temperature correction.
package fermentation

import (
	"errors"
	"fmt"
	"sort"

	"github.com/brewcode/brewcode/internal/units"
)

var ErrUnknownFormula = errors.New("unknown ABV formula")

// Formula pairs a display label with an estimate over original and final
// gravity, both in SG.
type Formula struct {
	Label    string
	Estimate func(originalSG, finalSG float64) float64
}

var formulas = map[string]Formula{
	"basic": {"Basic", abvBasic},
	"berry": {"Berry", abvBerry},
	"hall":  {"Hall", abvHall},
	"hmrc":  {"HMRC", abvHMRC},
}

// FormulaKeys returns the registered formula keys, sorted for menu display.
func FormulaKeys() []string {
	keys := make([]string, 0, len(formulas))
	for key := range formulas {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// FormulaLabel returns the display label for a formula key.
func FormulaLabel(key string) (string, error) {
	f, ok := formulas[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormula, key)
	}
	return f.Label, nil
}

// abvBasic is the standard homebrew rule of thumb.
func abvBasic(og, fg float64) float64 {
	return (og - fg) * 131.25
}

// abvBerry follows C.J.J. Berry's winemaking method.
func abvBerry(og, fg float64) float64 {
	return (og - fg) / 0.736
}

// abvHall applies Michael Hall's two-step estimate: alcohol by weight from
// the gravity drop, then ABW to ABV.
func abvHall(og, fg float64) float64 {
	abw := 76.08 * (og - fg) / (1.775 - og)
	// Both unit keys are fixed registry entries, so this cannot fail.
	abv, _ := units.ConvertAlcohol(abw, "abw", "abv")
	return abv
}

// hmrcBrackets maps gravity-drop thresholds to the multipliers of the UK
// HMRC taxation table. Scanned in ascending order; drops beyond the last
// threshold use its multiplier.
var hmrcBrackets = []struct {
	threshold  float64
	multiplier float64
}{
	{0.0069, 125},
	{0.0104, 126},
	{0.0172, 127},
	{0.0261, 128},
	{0.0360, 129},
	{0.0465, 130},
	{0.0571, 131},
	{0.0679, 132},
	{0.0788, 133},
	{0.0897, 134},
	{0.1007, 135},
}

func abvHMRC(og, fg float64) float64 {
	delta := og - fg
	for _, bracket := range hmrcBrackets {
		if delta <= bracket.threshold {
			return delta * bracket.multiplier
		}
	}
	return delta * 135
}

// ABVInput collects everything EstimateABV needs. Reading temperatures are
// optional; nil means the reading was taken at the calibration temperature.
type ABVInput struct {
	Formula         string
	DensityScale    string
	TempScale       string
	CalibrationTemp float64
	OriginalReading float64
	OriginalTemp    *float64
	FinalReading    float64
	FinalTemp       *float64
}

// EstimateABV corrects both gravity readings for temperature, converts them
// to SG, and applies the selected formula. The result is ABV percent.
func EstimateABV(in ABVInput) (float64, error) {
	formula, ok := formulas[in.Formula]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormula, in.Formula)
	}

	originalTemp := in.CalibrationTemp
	if in.OriginalTemp != nil {
		originalTemp = *in.OriginalTemp
	}
	finalTemp := in.CalibrationTemp
	if in.FinalTemp != nil {
		finalTemp = *in.FinalTemp
	}

	originalCorrected, err := units.CorrectDensity(in.DensityScale, in.TempScale, in.OriginalReading, originalTemp, in.CalibrationTemp)
	if err != nil {
		return 0, err
	}
	finalCorrected, err := units.CorrectDensity(in.DensityScale, in.TempScale, in.FinalReading, finalTemp, in.CalibrationTemp)
	if err != nil {
		return 0, err
	}

	originalSG, err := units.ConvertDensity(originalCorrected, in.DensityScale, "sg")
	if err != nil {
		return 0, err
	}
	finalSG, err := units.ConvertDensity(finalCorrected, in.DensityScale, "sg")
	if err != nil {
		return 0, err
	}

	return formula.Estimate(originalSG, finalSG), nil
}
