// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Profile is the per-user extension record: bio, picture reference and
// the outgoing side of the follow graph. Exactly one Profile exists per
// User (unique index on user_id); it is created lazily on first access.
type Profile struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID" json:"user"`
	Bio    string `gorm:"size:500" json:"bio"`
	// Picture is a path reference into external file storage; the
	// storage itself is not managed here.
	Picture   string    `json:"picture"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Follow is one directed edge of the follow graph: the follower's feed
// includes the followee's posts. The relation is not symmetric and an
// edge exists at most once (composite primary key).
type Follow struct {
	FollowerID uint      `gorm:"primaryKey;autoIncrement:false" json:"follower_id"`
	FolloweeID uint      `gorm:"primaryKey;autoIncrement:false;index" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}
