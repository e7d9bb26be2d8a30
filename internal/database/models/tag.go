package models

// Tag is reference data with a lifecycle independent from recipes
type Tag struct {
	BaseModel
	Name  string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Color string `json:"color" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Slug  string `json:"slug" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
}

// TableName returns the table name for Tag
func (Tag) TableName() string {
	return "tags"
}
