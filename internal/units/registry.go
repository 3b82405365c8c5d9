// Package units converts brewing measurements between units within five fixed
// categories: alcohol content, density, mass, temperature, and volume. Every
// category stores values relative to a canonical base unit; converters first
// normalise the requested units through the registry, then go through the base
// unit. All tables are package-level constants, so concurrent use needs no
// locking.
package units

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnknownCategory = errors.New("unknown unit category")
	ErrUnknownUnit     = errors.New("unknown unit")
	ErrUnsupportedUnit = errors.New("unsupported unit")
)

// Category groups the units of one measurable quantity. Units maps internal
// keys (lowercase, stable) to the labels shown to users.
type Category struct {
	Label string
	Base  string
	Units map[string]string
}

var categories = map[string]Category{
	"alcohol": {
		Label: "Alcohol Content",
		Base:  "abv",
		Units: map[string]string{
			"abv":       "ABV",
			"abw":       "ABW",
			"proof(us)": "Proof (US)",
			"proof(uk)": "Proof (UK)",
		},
	},
	"density": {
		Label: "Density",
		Base:  "g/l",
		Units: map[string]string{
			"sg":         "Specific Gravity (SG)",
			"brix":       "°Bx (Brix)",
			"plato":      "°P (Plato)",
			"oe":         "°Oe (Oechsle)",
			"tw":         "°Tw (Twaddell)",
			"g/ml":       "g/mL",
			"g/l":        "g/L",
			"kg/m3":      "kg/m³",
			"lb/gal(us)": "lb/gal (US)",
			"lb/gal(uk)": "lb/gal (UK)",
			"lb/ft3":     "lb/ft³",
		},
	},
	"mass": {
		Label: "Mass",
		Base:  "g",
		Units: map[string]string{
			"mg":    "mg",
			"g":     "g",
			"kg":    "kg",
			"tonne": "t",
			"gr":    "gr",
			"dr":    "dr",
			"oz":    "oz",
			"lb":    "lb",
			"ton":   "ton",
		},
	},
	"temperature": {
		Label: "Temperature",
		Base:  "c",
		Units: map[string]string{
			"c": "°C",
			"f": "°F",
			"k": "K",
		},
	},
	"volume": {
		Label: "Volume",
		Base:  "l",
		Units: map[string]string{
			"ml":        "mL",
			"l":         "L",
			"cl":        "cL",
			"dl":        "dL",
			"m3":        "m³",
			"tsp":       "tsp",
			"tbsp":      "tbsp",
			"fl_oz":     "fl oz",
			"cup":       "cup",
			"pt":        "pt",
			"qt":        "qt",
			"gal":       "gal",
			"imp_fl_oz": "imp fl oz",
			"imp_pt":    "imp pt",
			"imp_qt":    "imp qt",
			"imp_gal":   "imp gal",
		},
	},
}

// CategoryNames returns the registered category names, sorted for stable menus.
func CategoryNames() []string {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the registry entry for a category.
func Lookup(category string) (Category, error) {
	cat, ok := categories[strings.ToLower(category)]
	if !ok {
		return Category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return cat, nil
}

// UnitKeys returns the internal unit keys of a category, sorted.
func UnitKeys(category string) ([]string, error) {
	cat, err := Lookup(category)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(cat.Units))
	for key := range cat.Units {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// Normalize resolves a user-facing unit string (internal key or display label,
// both case-insensitive) to its internal key within the given category. Label
// matching is exact, never prefix or fuzzy.
func Normalize(unit, category string) (string, error) {
	cat, err := Lookup(category)
	if err != nil {
		return "", err
	}
	key := strings.ToLower(unit)
	if _, ok := cat.Units[key]; ok {
		return key, nil
	}
	for k, label := range cat.Units {
		if key == strings.ToLower(label) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q in category %q", ErrUnknownUnit, unit, category)
}

// Convert dispatches a conversion to the category's converter. The category
// set is closed, so dispatch is a plain switch rather than a function table.
func Convert(category, fromUnit, toUnit string, value float64) (float64, error) {
	switch strings.ToLower(category) {
	case "alcohol":
		return ConvertAlcohol(value, fromUnit, toUnit)
	case "density":
		return ConvertDensity(value, fromUnit, toUnit)
	case "mass":
		return ConvertMass(value, fromUnit, toUnit)
	case "temperature":
		return ConvertTemperature(value, fromUnit, toUnit)
	case "volume":
		return ConvertVolume(value, fromUnit, toUnit)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
}
