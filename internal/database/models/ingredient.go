package models

// Ingredient is the canonical catalog entry for an ingredient name and its
// measurement unit. Seeded once, never mutated by recipe operations.
type Ingredient struct {
	BaseModel
	Name            string `json:"name" gorm:"uniqueIndex:idx_ingredients_name_unit;not null;size:100" validate:"required,min=1,max=100"`
	MeasurementUnit string `json:"measurement_unit" gorm:"uniqueIndex:idx_ingredients_name_unit;not null;size:128" validate:"required,min=1,max=128"`
}

// TableName returns the table name for Ingredient
func (Ingredient) TableName() string {
	return "ingredients"
}
