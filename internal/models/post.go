// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post is a short text update. Posts are append-only: the author and
// creation timestamp never change and there is no edit operation.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Text      string    `gorm:"size:280;not null" json:"text"`
	Comments  []Comment `gorm:"foreignKey:PostID" json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}
