package model

import "time"

// Post is an authored content item. Author is set at creation and never
// changes; Group and Image are optional. Listing order everywhere is
// created_at DESC with id DESC as the tiebreaker, so the auto-increment
// primary key doubles as the insertion-order cursor.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_post_created"`
	AuthorID  uint      `json:"author_id" gorm:"not null;index:idx_post_author"`
	GroupID   *uint     `json:"group_id" gorm:"index:idx_post_group"`
	Image     *string   `json:"image"`

	Author User   `json:"author" gorm:"foreignKey:AuthorID"`
	Group  *Group `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
}

func (Post) TableName() string { return "posts" }
