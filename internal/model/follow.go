package model

import "time"

// Follow is a directed edge: Follower wants Author's posts in their feed.
// The composite unique index is what makes follow idempotent under
// concurrent requests; never check-then-create around it.
// idx_follow_pair = (follower_id, author_id)
type Follow struct {
	ID         uint `gorm:"primaryKey"`
	FollowerID uint `gorm:"index:idx_follow_follower;index:idx_follow_pair,unique;not null"`
	AuthorID   uint `gorm:"not null;index:idx_follow_author;index:idx_follow_pair,unique"`
	CreatedAt  time.Time

	Follower User `gorm:"foreignKey:FollowerID"`
	Author   User `gorm:"foreignKey:AuthorID"`
}

func (Follow) TableName() string { return "follows" }
