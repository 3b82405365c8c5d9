package recipe

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/brewcode/brewcode/internal/models"
)

func setupTestDB(t *testing.T, name string) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.StageType{}, &models.Recipe{}, &models.RecipeStage{}, &models.RecipeIngredient{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testRecipe() *models.Recipe {
	timing := "60 min"
	return &models.Recipe{
		Name:       "Amber Ale",
		BatchSizeL: 20,
		Stages: []models.RecipeStage{
			{
				StageTypeID: 1,
				StageOrder:  2,
				Name:        "Boil",
				Ingredients: []models.RecipeIngredient{
					{ItemID: 2, Amount: 30, Unit: "g", Timing: &timing, ScalingMethod: models.ScaleLinear},
				},
			},
			{
				StageTypeID: 2,
				StageOrder:  1,
				Name:        "Mash",
				Ingredients: []models.RecipeIngredient{
					{ItemID: 1, Amount: 4.5, Unit: "kg", ScalingMethod: models.ScaleLinear},
					{ItemID: 3, Amount: 10, Unit: "L", ScalingMethod: models.ScaleFixed},
				},
			},
			{
				StageTypeID: 3,
				StageOrder:  3,
				Name:        "Primary",
				Ingredients: []models.RecipeIngredient{
					{ItemID: 4, Amount: 1, Unit: "g", ScalingMethod: models.ScaleStep},
				},
			},
		},
	}
}

func TestCreateAndGet(t *testing.T) {
	svc := New(setupTestDB(t, t.Name()))

	r := testRecipe()
	if err := svc.Create(r); err != nil {
		t.Fatalf("create: %v", err)
	}
	if r.ID == 0 {
		t.Fatal("expected recipe ID set after create")
	}

	got, err := svc.Get(r.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Amber Ale" || got.BatchSizeL != 20 {
		t.Fatalf("unexpected recipe: %+v", got)
	}
	if len(got.Stages) != 3 {
		t.Fatalf("expected 3 stages, got %d", len(got.Stages))
	}
	// Stages come back in brewing order, not insertion order.
	for i, want := range []string{"Mash", "Boil", "Primary"} {
		if got.Stages[i].Name != want {
			t.Fatalf("stage %d = %q, want %q", i, got.Stages[i].Name, want)
		}
	}
	if len(got.Stages[0].Ingredients) != 2 {
		t.Fatalf("expected 2 mash ingredients, got %d", len(got.Stages[0].Ingredients))
	}
}

func TestGetMissingRecipe(t *testing.T) {
	svc := New(setupTestDB(t, t.Name()))
	if _, err := svc.Get(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateRejectsBadUnit(t *testing.T) {
	svc := New(setupTestDB(t, t.Name()))
	r := testRecipe()
	r.Stages[0].Ingredients[0].Unit = "bushel"
	if err := svc.Create(r); !errors.Is(err, ErrInvalidUnit) {
		t.Fatalf("expected ErrInvalidUnit, got %v", err)
	}
}

func TestCreateRejectsBadScalingMethod(t *testing.T) {
	svc := New(setupTestDB(t, t.Name()))
	r := testRecipe()
	r.Stages[0].Ingredients[0].ScalingMethod = "exponential"
	if err := svc.Create(r); !errors.Is(err, ErrUnknownScalingMethod) {
		t.Fatalf("expected ErrUnknownScalingMethod, got %v", err)
	}
}

func TestCreateRejectsBadBatchSize(t *testing.T) {
	svc := New(setupTestDB(t, t.Name()))
	r := testRecipe()
	r.BatchSizeL = 0
	if err := svc.Create(r); err == nil {
		t.Fatal("expected an error for zero batch size")
	}
}

func TestList(t *testing.T) {
	svc := New(setupTestDB(t, t.Name()))
	for _, name := range []string{"Stout", "Amber Ale", "Cider"} {
		r := testRecipe()
		r.Name = name
		if err := svc.Create(r); err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
	}
	got, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 recipes, got %d", len(got))
	}
	for i, want := range []string{"Amber Ale", "Cider", "Stout"} {
		if got[i].Name != want {
			t.Fatalf("recipe %d = %q, want %q", i, got[i].Name, want)
		}
	}
}

func TestDelete(t *testing.T) {
	svc := New(setupTestDB(t, t.Name()))
	r := testRecipe()
	if err := svc.Create(r); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(r.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(r.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(r.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for second delete, got %v", err)
	}
}

func TestDeleteRemovesStagesAndIngredients(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := New(db)
	r := testRecipe()
	if err := svc.Create(r); err != nil {
		t.Fatalf("create: %v", err)
	}

	var stages, ingredients int64
	db.Model(&models.RecipeStage{}).Count(&stages)
	db.Model(&models.RecipeIngredient{}).Count(&ingredients)
	if stages != 3 || ingredients != 4 {
		t.Fatalf("before delete: %d stages, %d ingredients, want 3 and 4", stages, ingredients)
	}

	if err := svc.Delete(r.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	db.Model(&models.RecipeStage{}).Count(&stages)
	db.Model(&models.RecipeIngredient{}).Count(&ingredients)
	if stages != 0 {
		t.Errorf("%d stage rows left after delete, want 0", stages)
	}
	if ingredients != 0 {
		t.Errorf("%d ingredient rows left after delete, want 0", ingredients)
	}
}

func TestScale(t *testing.T) {
	original := testRecipe()
	scaled, err := Scale(original, 40)
	if err != nil {
		t.Fatalf("scale: %v", err)
	}

	if scaled.BatchSizeL != 40 {
		t.Fatalf("scaled batch size = %v, want 40", scaled.BatchSizeL)
	}
	// linear doubles, fixed holds, step recomputes packets: 40 L needs 2.
	if got := scaled.Stages[1].Ingredients[0].Amount; math.Abs(got-9) > 1e-9 {
		t.Errorf("linear ingredient = %v, want 9", got)
	}
	if got := scaled.Stages[1].Ingredients[1].Amount; got != 10 {
		t.Errorf("fixed ingredient = %v, want 10", got)
	}
	if got := scaled.Stages[2].Ingredients[0].Amount; got != 2 {
		t.Errorf("step ingredient = %v, want 2 packets", got)
	}

	// The original is untouched.
	if original.BatchSizeL != 20 {
		t.Fatalf("original batch size mutated to %v", original.BatchSizeL)
	}
	if got := original.Stages[1].Ingredients[0].Amount; got != 4.5 {
		t.Fatalf("original ingredient mutated to %v", got)
	}
}

func TestScaleStepBoundaries(t *testing.T) {
	// One packet covers a started 20 L; 20 L needs one, 20.5 L needs two.
	tests := []struct {
		volume  float64
		packets float64
	}{
		{5, 1},
		{20, 1},
		{20.5, 2},
		{40, 2},
		{41, 3},
	}
	for _, tt := range tests {
		r := testRecipe()
		scaled, err := Scale(r, tt.volume)
		if err != nil {
			t.Fatalf("scale to %v: %v", tt.volume, err)
		}
		if got := scaled.Stages[2].Ingredients[0].Amount; got != tt.packets {
			t.Errorf("Scale(%v L) step amount = %v, want %v packets", tt.volume, got, tt.packets)
		}
	}
}

func TestScaleRejectsUnknownMethod(t *testing.T) {
	r := testRecipe()
	r.Stages[0].Ingredients[0].ScalingMethod = "mystery"
	if _, err := Scale(r, 25); !errors.Is(err, ErrUnknownScalingMethod) {
		t.Fatalf("expected ErrUnknownScalingMethod, got %v", err)
	}
}

func TestScaleRejectsBadVolumes(t *testing.T) {
	r := testRecipe()
	if _, err := Scale(r, 0); err == nil {
		t.Fatal("expected an error for zero desired volume")
	}
	r.BatchSizeL = 0
	if _, err := Scale(r, 10); err == nil {
		t.Fatal("expected an error for zero batch size")
	}
}
