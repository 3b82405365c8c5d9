package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/brewcode/brewcode/internal/fermentation"
	"github.com/brewcode/brewcode/internal/models"
	"github.com/brewcode/brewcode/internal/recipe"
	"github.com/brewcode/brewcode/internal/units"
)

// errBack unwinds one menu level; io.EOF (Ctrl+D) unwinds the whole program.
var errBack = errors.New("back")

// prompt reads a trimmed line. "back" and Ctrl+C map to errBack.
func prompt(line *liner.State, label string) (string, error) {
	input, err := line.Prompt(label)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", errBack
		}
		return "", err
	}
	input = strings.TrimSpace(input)
	if input != "" {
		line.AppendHistory(input)
	}
	if strings.EqualFold(input, "back") {
		return "", errBack
	}
	return input, nil
}

// promptFloat re-prompts until the input parses as a number.
func promptFloat(line *liner.State, label string) (float64, error) {
	for {
		input, err := prompt(line, label)
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseFloat(input, 64)
		if err != nil {
			fmt.Println("Invalid input. Please enter a numeric value.")
			continue
		}
		return value, nil
	}
}

// parseID parses a record ID. Floats silently truncate and negatives wrap
// through uint conversion, so IDs only accept plain unsigned integers.
func parseID(input string) (uint, error) {
	id, err := strconv.ParseUint(input, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// promptID re-prompts until the input parses as a whole-number ID.
func promptID(line *liner.State, label string) (uint, error) {
	for {
		input, err := prompt(line, label)
		if err != nil {
			return 0, err
		}
		id, err := parseID(input)
		if err != nil {
			fmt.Println("Invalid input. Please enter a whole-number ID.")
			continue
		}
		return id, nil
	}
}

// promptOptionalFloat accepts an empty line as "not provided".
func promptOptionalFloat(line *liner.State, label string) (*float64, error) {
	for {
		input, err := prompt(line, label)
		if err != nil {
			return nil, err
		}
		if input == "" {
			return nil, nil
		}
		value, err := strconv.ParseFloat(input, 64)
		if err != nil {
			fmt.Println("Invalid input. Please enter a numeric value or leave blank.")
			continue
		}
		return &value, nil
	}
}

// precisionFor returns the display precision the menus use per category.
func precisionFor(category string) int {
	switch strings.ToLower(category) {
	case "alcohol", "temperature":
		return 2
	default:
		return 3
	}
}

// back converts errBack into a normal return so only EOF propagates.
func back(err error) error {
	if errors.Is(err, errBack) {
		return nil
	}
	return err
}

func mainMenu(line *liner.State, recipes *recipe.Service) error {
	for {
		fmt.Println("\n--Main Menu--")
		fmt.Println("1. ABV Calculator")
		fmt.Println("2. Gravity Corrector")
		fmt.Println("3. Priming Calculator")
		fmt.Println("4. Unit Converter")
		fmt.Println("5. Recipes")
		fmt.Println("6. Exit")

		choice, err := prompt(line, "Select an option: ")
		if errors.Is(err, errBack) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = abvMenu(line)
		case "2":
			err = gravityMenu(line)
		case "3":
			err = primingMenu(line)
		case "4":
			err = conversionsMenu(line)
		case "5":
			err = recipesMenu(line, recipes)
		case "6", "exit":
			return nil
		default:
			fmt.Println("Invalid choice. Please try again.")
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func conversionsMenu(line *liner.State) error {
	categories := strings.Join(units.CategoryNames(), ", ")
	for {
		fmt.Println("\n--Conversions Menu--")
		fmt.Println("Select 'back' to return to the main menu.")

		category, err := prompt(line, fmt.Sprintf("Enter category (%s): ", categories))
		if err != nil {
			return back(err)
		}
		keys, err := units.UnitKeys(category)
		if err != nil {
			fmt.Println("Invalid category. Try again.")
			continue
		}
		unitList := strings.Join(keys, ", ")

		value, err := promptFloat(line, "Enter value to convert: ")
		if err != nil {
			return back(err)
		}
		fromUnit, err := prompt(line, fmt.Sprintf("Enter from unit (%s): ", unitList))
		if err != nil {
			return back(err)
		}
		toUnit, err := prompt(line, fmt.Sprintf("Enter to unit (%s): ", unitList))
		if err != nil {
			return back(err)
		}

		result, err := units.Convert(category, fromUnit, toUnit, value)
		if err != nil {
			fmt.Println("Conversion failed:", err)
			continue
		}
		precision := precisionFor(category)
		fmt.Printf("%v %s (%s) = %.*f %s\n", value, fromUnit, category, precision, result, toUnit)
	}
}

func gravityMenu(line *liner.State) error {
	scales := strings.Join(units.DensityScaleKeys(), ", ")
	for {
		fmt.Println("\n--Gravity Corrector Menu--")
		fmt.Println("Select 'back' to return to the main menu.")

		scale, err := prompt(line, fmt.Sprintf("Select scale (%s): ", scales))
		if err != nil {
			return back(err)
		}
		tempScale, err := prompt(line, "Enter temperature scale (C/F): ")
		if err != nil {
			return back(err)
		}
		reading, err := promptFloat(line, fmt.Sprintf("Enter gravity reading (%s): ", scale))
		if err != nil {
			return back(err)
		}
		readingTemp, err := promptFloat(line, "Enter the temperature of the reading: ")
		if err != nil {
			return back(err)
		}
		calibrationTemp, err := promptFloat(line, fmt.Sprintf("Enter the calibration temperature (%s): ", tempScale))
		if err != nil {
			return back(err)
		}

		corrected, err := units.CorrectDensity(scale, tempScale, reading, readingTemp, calibrationTemp)
		if err != nil {
			fmt.Println("Correction failed:", err)
			continue
		}
		fmt.Printf("Corrected reading: %.*f %s\n", precisionFor("density"), corrected, scale)
	}
}

func abvMenu(line *liner.State) error {
	formulaList := strings.Join(fermentation.FormulaKeys(), ", ")
	scales := strings.Join(units.DensityScaleKeys(), ", ")
	for {
		fmt.Println("\n--ABV Calculator Menu--")
		fmt.Println("Select 'back' to return to the main menu.")

		formula, err := prompt(line, fmt.Sprintf("Select formula (%s): ", formulaList))
		if err != nil {
			return back(err)
		}
		label, err := fermentation.FormulaLabel(formula)
		if err != nil {
			fmt.Println("Invalid formula. Try again.")
			continue
		}

		scale, err := prompt(line, fmt.Sprintf("Select scale (%s): ", scales))
		if err != nil {
			return back(err)
		}
		original, err := promptFloat(line, fmt.Sprintf("Enter original reading (%s): ", scale))
		if err != nil {
			return back(err)
		}
		final, err := promptFloat(line, fmt.Sprintf("Enter final reading (%s): ", scale))
		if err != nil {
			return back(err)
		}

		in := fermentation.ABVInput{
			Formula:         formula,
			DensityScale:    scale,
			TempScale:       "c",
			CalibrationTemp: units.DefaultCalibrationTemp,
			OriginalReading: original,
			FinalReading:    final,
		}

		correct, err := prompt(line, "Apply temperature correction? (y/n): ")
		if err != nil {
			return back(err)
		}
		if strings.HasPrefix(strings.ToLower(correct), "y") {
			tempScale, err := prompt(line, "Enter temperature scale (C/F): ")
			if err != nil {
				return back(err)
			}
			originalTemp, err := promptOptionalFloat(line, "Temperature of the original reading (blank to skip): ")
			if err != nil {
				return back(err)
			}
			finalTemp, err := promptOptionalFloat(line, "Temperature of the final reading (blank to skip): ")
			if err != nil {
				return back(err)
			}
			calibrationTemp, err := promptFloat(line, fmt.Sprintf("Enter the calibration temperature (%s): ", tempScale))
			if err != nil {
				return back(err)
			}
			in.TempScale = tempScale
			in.CalibrationTemp = calibrationTemp
			in.OriginalTemp = originalTemp
			in.FinalTemp = finalTemp
		}

		result, err := fermentation.EstimateABV(in)
		if err != nil {
			fmt.Println("Calculation failed:", err)
			continue
		}
		fmt.Printf("ABV (%s formula): %.*f%%\n", label, precisionFor("alcohol"), result)
	}
}

func primingMenu(line *liner.State) error {
	for {
		fmt.Println("\n--Priming Calculator Menu--")
		fmt.Println("Select 'back' to return to the main menu.")

		volume, err := promptFloat(line, "Enter beverage volume: ")
		if err != nil {
			return back(err)
		}
		volumeUnit, err := prompt(line, "Enter volume unit (l, ml, gal, qt, ...): ")
		if err != nil {
			return back(err)
		}
		temp, err := promptFloat(line, "Enter beverage temperature at bottling: ")
		if err != nil {
			return back(err)
		}
		tempScale, err := prompt(line, "Enter temperature scale (C/F): ")
		if err != nil {
			return back(err)
		}
		desired, err := promptFloat(line, "Enter desired CO2 volumes: ")
		if err != nil {
			return back(err)
		}
		sugarType, err := prompt(line, "Sugar type (dextrose, sucrose, honey, maltose; blank for dextrose): ")
		if err != nil {
			return back(err)
		}

		result, err := fermentation.Priming(fermentation.PrimingInput{
			BeverageVolume: volume,
			VolumeUnit:     volumeUnit,
			BeverageTemp:   temp,
			TempScale:      tempScale,
			DesiredVolCO2:  desired,
			SugarType:      strings.ToLower(sugarType),
		})
		if err != nil {
			fmt.Println("Calculation failed:", err)
			continue
		}
		fmt.Printf("Sugar needed: %.*f g (%.*f mL)\n", precisionFor("mass"), result.MassG, precisionFor("volume"), result.VolumeML)
		fmt.Printf("Estimated gravity increase: %.4f SG\n", result.DeltaSG)
		fmt.Printf("New total volume: %.*f L\n", precisionFor("volume"), result.NewVolumeL)
	}
}

func recipesMenu(line *liner.State, recipes *recipe.Service) error {
	if recipes == nil {
		fmt.Println("Recipe storage is unavailable; check DATABASE_DSN.")
		return nil
	}
	for {
		fmt.Println("\n--Recipes Menu--")
		fmt.Println("Select 'back' to return to the main menu.")

		action, err := prompt(line, "Action (list, view, scale): ")
		if err != nil {
			return back(err)
		}
		switch strings.ToLower(action) {
		case "list":
			all, err := recipes.List()
			if err != nil {
				fmt.Println("List failed:", err)
				continue
			}
			if len(all) == 0 {
				fmt.Println("No recipes stored yet.")
				continue
			}
			for _, r := range all {
				fmt.Printf("%4d  %-30s %6.1f L\n", r.ID, r.Name, r.BatchSizeL)
			}
		case "view":
			id, err := promptID(line, "Recipe ID: ")
			if err != nil {
				return back(err)
			}
			r, err := recipes.Get(id)
			if err != nil {
				fmt.Println("View failed:", err)
				continue
			}
			printRecipe(r)
		case "scale":
			id, err := promptID(line, "Recipe ID: ")
			if err != nil {
				return back(err)
			}
			target, err := promptFloat(line, "Target batch size (L): ")
			if err != nil {
				return back(err)
			}
			r, err := recipes.Get(id)
			if err != nil {
				fmt.Println("Scale failed:", err)
				continue
			}
			scaled, err := recipe.Scale(r, target)
			if err != nil {
				fmt.Println("Scale failed:", err)
				continue
			}
			printRecipe(scaled)
		default:
			fmt.Println("Invalid action. Try again.")
		}
	}
}

func printRecipe(r *models.Recipe) {
	fmt.Printf("\n%s (%.1f L)\n", r.Name, r.BatchSizeL)
	if r.Description != "" {
		fmt.Println(r.Description)
	}
	for _, stage := range r.Stages {
		optional := ""
		if stage.IsOptional {
			optional = " (optional)"
		}
		fmt.Printf("  %d. %s%s\n", stage.StageOrder, stage.Name, optional)
		for _, ing := range stage.Ingredients {
			timing := ""
			if ing.Timing != nil {
				timing = ", " + *ing.Timing
			}
			fmt.Printf("     - item %d: %.*f %s (%s%s)\n", ing.ItemID, precisionFor("mass"), ing.Amount, ing.Unit, ing.ScalingMethod, timing)
		}
	}
}
