// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account. Identity fields are set at
// registration and do not change afterwards; mutable per-user state
// lives on the Profile.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:20;uniqueIndex;not null" json:"username"`
	FirstName string    `gorm:"size:20;not null" json:"first_name"`
	LastName  string    `gorm:"size:20;not null" json:"last_name"`
	Email     string    `gorm:"size:50;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
