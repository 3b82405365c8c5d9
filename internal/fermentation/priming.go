package fermentation

import (
	"errors"
	"fmt"

	"github.com/brewcode/brewcode/internal/units"
)

var ErrMissingDensity = errors.New("sugar density unresolved")

// sugarProperties holds the fermentable fraction and density (g/L) assumed
// for a priming sugar type.
type sugarProperties struct {
	fraction float64
	density  float64
}

var sugarDefaults = map[string]sugarProperties{
	"dextrose": {1.0, 1587},
	"sucrose":  {1.0, 1587},
	"honey":    {0.75, 1420},
	"maltose":  {1.0, 1540},
}

// PrimingInput collects the parameters of a priming calculation. SugarType
// selects property defaults (unrecognised or empty falls back to dextrose);
// the pointer fields override them individually, and CustomFactor replaces
// the derived grams-per-litre-per-volume dosing factor outright.
type PrimingInput struct {
	BeverageVolume      float64
	VolumeUnit          string
	BeverageTemp        float64
	TempScale           string
	DesiredVolCO2       float64
	SugarType           string
	SugarDensity        *float64
	FermentableFraction *float64
	CustomFactor        *float64
}

// PrimingResult reports the sugar addition and its side effects.
type PrimingResult struct {
	MassG      float64 // sugar mass in grams
	VolumeML   float64 // sugar volume in millilitres
	DeltaSG    float64 // estimated gravity increase
	NewVolumeL float64 // beverage volume after the addition, litres
}

// ResidualCO2 estimates the volumes of CO₂ still dissolved in a beverage at
// the given temperature in °C, clamped to zero for warm beverages.
func ResidualCO2(tempC float64) float64 {
	residual := 3.0378 - 0.050062*tempC + 0.00026555*tempC*tempC
	if residual < 0 {
		return 0
	}
	return residual
}

// Priming computes the sugar mass needed to carbonate a beverage to the
// desired CO₂ volumes, accounting for CO₂ already in solution. A beverage
// at or above the desired carbonation needs no sugar at all.
func Priming(in PrimingInput) (PrimingResult, error) {
	volumeL, err := units.ConvertVolume(in.BeverageVolume, in.VolumeUnit, "l")
	if err != nil {
		return PrimingResult{}, err
	}
	tempC, err := units.ConvertTemperature(in.BeverageTemp, in.TempScale, "c")
	if err != nil {
		return PrimingResult{}, err
	}

	additionalCO2 := in.DesiredVolCO2 - ResidualCO2(tempC)
	if additionalCO2 < 0 {
		additionalCO2 = 0
	}

	// Resolve sugar properties in one pass: explicit override, then the
	// type's defaults, then dextrose.
	properties, ok := sugarDefaults[in.SugarType]
	if !ok {
		properties = sugarDefaults["dextrose"]
	}
	fraction := properties.fraction
	if in.FermentableFraction != nil {
		fraction = *in.FermentableFraction
	}
	density := properties.density
	if in.SugarDensity != nil {
		density = *in.SugarDensity
	}
	factor := 4.01 * fraction
	if in.CustomFactor != nil {
		factor = *in.CustomFactor
	}

	if density <= 0 {
		return PrimingResult{}, fmt.Errorf("%w for sugar type %q", ErrMissingDensity, in.SugarType)
	}

	massG := volumeL * additionalCO2 * factor
	volumeML := massG / (density / 1000)
	deltaSG := (massG / volumeL) * 0.0004
	newVolumeL := volumeL + volumeML/1000

	return PrimingResult{
		MassG:      massG,
		VolumeML:   volumeML,
		DeltaSG:    deltaSG,
		NewVolumeL: newVolumeL,
	}, nil
}
