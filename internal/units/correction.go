package units

// DefaultCalibrationTemp is the typical hydrometer calibration temperature,
// 20 °C (68 °F).
const DefaultCalibrationTemp = 20.0

// correctionPoly evaluates the ASBC hydrometer correction polynomial at a
// temperature in °F.
func correctionPoly(tempF float64) float64 {
	return 1.00130346 -
		0.000134722124*tempF +
		0.00000204052596*tempF*tempF -
		0.00000000232820948*tempF*tempF*tempF
}

// CorrectDensity adjusts a hydrometer reading for the temperature it was
// taken at. The reading is converted to SG, scaled by the ratio of the ASBC
// polynomial at the reading and calibration temperatures, and converted back
// to the caller's density scale. Both temperatures are interpreted in
// tempScale. Identical reading and calibration temperatures leave the value
// unchanged.
func CorrectDensity(densityScale, tempScale string, measured, readingTemp, calibrationTemp float64) (float64, error) {
	scale, err := Normalize(densityScale, "density")
	if err != nil {
		return 0, err
	}
	if _, err := Normalize(tempScale, "temperature"); err != nil {
		return 0, err
	}

	sg, err := ConvertDensity(measured, scale, "sg")
	if err != nil {
		return 0, err
	}

	// The polynomial is defined in Fahrenheit.
	readingF, err := ConvertTemperature(readingTemp, tempScale, "f")
	if err != nil {
		return 0, err
	}
	calibrationF, err := ConvertTemperature(calibrationTemp, tempScale, "f")
	if err != nil {
		return 0, err
	}

	corrected := sg * correctionPoly(readingF) / correctionPoly(calibrationF)
	return ConvertDensity(corrected, "sg", scale)
}
