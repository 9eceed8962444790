package models

import (
	"time"
)

// Comment represents a comment left on a recipe.
type Comment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RecipeID uint   `gorm:"not null;index" json:"recipe_id"`
	Recipe   Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	User     User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Content  string `gorm:"type:text;not null" json:"content"`
	// Author is the commenter's username, populated by joined queries only.
	Author    string    `gorm:"->;-:migration" json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
