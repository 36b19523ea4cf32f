package model

import "time"

// Comment is a reply attached to exactly one post. Immutable after
// creation; destroyed together with its post.
type Comment struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Text      string `json:"text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	AuthorID  uint `json:"author_id" gorm:"not null;index:idx_comment_author"`
	PostID    uint `json:"post_id" gorm:"not null;index:idx_comment_post"`

	Author User `json:"author" gorm:"foreignKey:AuthorID"`
	Post   Post `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

func (Comment) TableName() string { return "comments" }
