package models

// Scaling methods for recipe ingredients.
const (
	ScaleLinear = "linear" // amount grows with batch size
	ScaleFixed  = "fixed"  // amount never changes
	ScaleStep   = "step"   // whole units per started volume step, e.g. yeast packets
)

type Recipe struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:255;not null"`
	Description string
	BatchSizeL  float64 `gorm:"not null"`
	Notes       string
	Stages      []RecipeStage `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

type RecipeStage struct {
	ID           uint   `gorm:"primaryKey"`
	RecipeID     uint   `gorm:"index;not null"`
	StageTypeID  uint   `gorm:"not null"`
	StageOrder   int    `gorm:"not null"`
	Name         string `gorm:"size:255;not null"`
	Instructions string
	DurationDays *int
	IsOptional   bool
	Ingredients  []RecipeIngredient `gorm:"foreignKey:StageID;constraint:OnDelete:CASCADE"`
}

type RecipeIngredient struct {
	ID      uint    `gorm:"primaryKey"`
	StageID uint    `gorm:"index;not null"`
	ItemID  uint    `gorm:"not null"`
	Amount  float64 `gorm:"not null"`
	// Unit must resolve through the units registry so stored amounts stay
	// convertible.
	Unit          string `gorm:"size:50;not null"`
	Timing        *string
	ScalingMethod string `gorm:"size:50;not null;default:'linear'"`
	Notes         *string
}

// StageType is a lookup table for the kind of brewing stage (mash, boil,
// primary fermentation, ...). Seeded at migration time.
type StageType struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:255;uniqueIndex;not null"`
}
