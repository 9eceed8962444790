package models

import (
	"time"
)

// DefaultRecipeImage is used when a recipe is created without an image reference.
const DefaultRecipeImage = "/food.png"

// Recipe represents a recipe authored by a user. Ingredients and steps are
// stored as newline-delimited text.
type Recipe struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Ingredients string    `gorm:"type:text" json:"ingredients"`
	Steps       string    `gorm:"type:text" json:"steps"`
	ImageURL    string    `json:"image_url"`
	// Author is the owner's username, populated by joined queries only.
	Author    string    `gorm:"->;-:migration" json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
