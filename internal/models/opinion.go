package models

import "time"

// Opinion is a short social post.
type Opinion struct {
	ID        string    `gorm:"primaryKey" json:"_id"`
	Author    string    `gorm:"index;not null" json:"author"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
