package models

// User represents a registered account that authors recipes and
// subscribes to other authors
type User struct {
	BaseModel
	Username     string `json:"username" gorm:"uniqueIndex;not null;size:150" validate:"required,min=1,max=150"`
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	FirstName    string `json:"first_name" gorm:"size:150" validate:"max=150"`
	LastName     string `json:"last_name" gorm:"size:150" validate:"max=150"`
	PasswordHash string `json:"-" gorm:"not null;size:128"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
