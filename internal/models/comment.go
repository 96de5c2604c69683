// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Comment is a reply attached to exactly one post. Append-only, like
// posts.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Text      string    `gorm:"size:280;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
