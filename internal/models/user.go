// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered Recipe World account.
// The password hash is never serialized.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Username  string    `gorm:"not null;index" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Recipes   []Recipe  `gorm:"foreignKey:UserID" json:"recipes,omitempty"`
}

// AuthorProfile is the public view of a user composed for the author page.
type AuthorProfile struct {
	ID             uint      `json:"id"`
	Username       string    `json:"username"`
	JoinedAt       time.Time `json:"joined_at"`
	FollowersCount int64     `json:"followers_count"`
}
