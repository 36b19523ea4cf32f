package model

import "time"

// User mirrors the identity owned by the external auth subsystem. Only the
// id and username are meaningful here; nothing in this service authenticates
// or mutates users.
type User struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Username  string `json:"username" gorm:"type:varchar(150);uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }
