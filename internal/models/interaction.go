package models

import (
	"time"
)

// Interaction records one chat exchange between a user and a character.
// Response and Emotion stay empty when the provider call fails after the
// row is prepared.
type Interaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	CharacterID uint      `gorm:"index;not null" json:"character_id"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	Response    string    `gorm:"type:text" json:"response,omitempty"`
	Emotion     string    `gorm:"size:50" json:"emotion,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
