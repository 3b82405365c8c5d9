package units

import "testing"

func TestConvertTemperatureKnownValues(t *testing.T) {
	tests := []struct {
		name  string
		from  string
		to    string
		value float64
		want  float64
	}{
		{"boiling point C to F", "c", "f", 100, 212},
		{"freezing point F to C", "f", "c", 32, 0},
		{"absolute C to K", "c", "k", 0, 273.15},
		{"K to C", "k", "c", 273.15, 0},
		{"body temp F to C", "f", "c", 98.6, 37},
		{"F to K", "f", "k", 32, 273.15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertTemperature(tt.value, tt.from, tt.to)
			if err != nil {
				t.Fatalf("ConvertTemperature: %v", err)
			}
			if !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("ConvertTemperature(%v, %q, %q) = %v, want %v", tt.value, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestConvertTemperatureLabels(t *testing.T) {
	got, err := ConvertTemperature(20, "°C", "°F")
	if err != nil {
		t.Fatalf("ConvertTemperature: %v", err)
	}
	if got != 68 {
		t.Fatalf("20 °C = %v °F, want 68", got)
	}
}
