package models

import "time"

// AudioBook is a catalogue entry. Playback is handled by the consumer; the
// API only serves metadata and the audio URL.
type AudioBook struct {
	ID          string    `gorm:"primaryKey" json:"_id"`
	Title       string    `gorm:"not null" json:"title"`
	Author      string    `json:"author"`
	Narrator    string    `json:"narrator,omitempty"`
	CoverImage  string    `json:"coverImage,omitempty"`
	AudioURL    string    `json:"audioUrl"`
	Duration    int       `json:"duration"` // seconds
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
