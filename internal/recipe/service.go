// Package recipe stores brewing recipes and scales them to a target batch
// size. Amount handling leans on the units registry: every ingredient unit
// must normalise in some category before it is persisted.
package recipe

import (
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"github.com/brewcode/brewcode/internal/models"
	"github.com/brewcode/brewcode/internal/units"
)

// litresPerYeastPacket drives the "step" scaling method: one packet per
// started 20 L of batch volume.
const litresPerYeastPacket = 20.0

var (
	ErrUnknownScalingMethod = errors.New("unknown scaling method")
	ErrInvalidUnit          = errors.New("ingredient unit not in any category")
	ErrNotFound             = errors.New("recipe not found")
)

type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{db: db} }

// Get loads a recipe with its stages in brewing order and their ingredients.
func (s *Service) Get(id uint) (*models.Recipe, error) {
	var r models.Recipe
	err := s.db.
		Preload("Stages", func(tx *gorm.DB) *gorm.DB { return tx.Order("stage_order") }).
		Preload("Stages.Ingredients").
		First(&r, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// List returns all recipes without their stages, ordered by name.
func (s *Service) List() ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.Order("name").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Create validates and persists a recipe with its stages and ingredients.
func (s *Service) Create(r *models.Recipe) error {
	if err := validate(r); err != nil {
		return err
	}
	return s.db.Create(r).Error
}

// Delete removes a recipe together with its stages and ingredients. The
// children are deleted explicitly because SQLite connections do not enforce
// the cascade constraints unless foreign keys are switched on.
func (s *Service) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var stageIDs []uint
		if err := tx.Model(&models.RecipeStage{}).Where("recipe_id = ?", id).Pluck("id", &stageIDs).Error; err != nil {
			return err
		}
		if len(stageIDs) > 0 {
			if err := tx.Where("stage_id IN ?", stageIDs).Delete(&models.RecipeIngredient{}).Error; err != nil {
				return err
			}
			if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeStage{}).Error; err != nil {
				return err
			}
		}
		result := tx.Delete(&models.Recipe{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: id %d", ErrNotFound, id)
		}
		return nil
	})
}

func validate(r *models.Recipe) error {
	if r.Name == "" {
		return errors.New("recipe name is required")
	}
	if r.BatchSizeL <= 0 {
		return fmt.Errorf("batch size must be positive, got %v", r.BatchSizeL)
	}
	for _, stage := range r.Stages {
		for _, ing := range stage.Ingredients {
			if !unitResolvable(ing.Unit) {
				return fmt.Errorf("%w: %q", ErrInvalidUnit, ing.Unit)
			}
			switch ing.ScalingMethod {
			case models.ScaleLinear, models.ScaleFixed, models.ScaleStep:
			default:
				return fmt.Errorf("%w: %q", ErrUnknownScalingMethod, ing.ScalingMethod)
			}
		}
	}
	return nil
}

// unitResolvable reports whether any category's registry resolves the unit.
func unitResolvable(unit string) bool {
	for _, category := range units.CategoryNames() {
		if _, err := units.Normalize(unit, category); err == nil {
			return true
		}
	}
	return false
}

// Scale returns a copy of the recipe with ingredient amounts adjusted to the
// desired batch volume in litres. The input recipe is never mutated.
func Scale(r *models.Recipe, desiredVolumeL float64) (*models.Recipe, error) {
	if r.BatchSizeL <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %v", r.BatchSizeL)
	}
	if desiredVolumeL <= 0 {
		return nil, fmt.Errorf("desired volume must be positive, got %v", desiredVolumeL)
	}
	factor := desiredVolumeL / r.BatchSizeL

	scaled := clone(r)
	scaled.BatchSizeL = desiredVolumeL
	for si := range scaled.Stages {
		for ii := range scaled.Stages[si].Ingredients {
			ing := &scaled.Stages[si].Ingredients[ii]
			switch ing.ScalingMethod {
			case models.ScaleLinear:
				ing.Amount *= factor
			case models.ScaleFixed:
				// unchanged
			case models.ScaleStep:
				packets := math.Floor((desiredVolumeL-1e-9)/litresPerYeastPacket) + 1
				ing.Amount = packets
			default:
				return nil, fmt.Errorf("%w: %q", ErrUnknownScalingMethod, ing.ScalingMethod)
			}
		}
	}
	return scaled, nil
}

func clone(r *models.Recipe) *models.Recipe {
	out := *r
	out.Stages = make([]models.RecipeStage, len(r.Stages))
	for i, stage := range r.Stages {
		copied := stage
		copied.Ingredients = append([]models.RecipeIngredient(nil), stage.Ingredients...)
		out.Stages[i] = copied
	}
	return &out
}
