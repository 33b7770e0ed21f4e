package models

import (
	"time"
)

// User represents an account tracked for credit usage. Users are created
// lazily the first time a client reads or writes credits for a username.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null;size:80" json:"username"`
	Email     *string   `gorm:"uniqueIndex;size:120" json:"email,omitempty"`
	Credits   int       `gorm:"default:100" json:"credits"`
	CreatedAt time.Time `json:"created_at"`
}

// CreditsResponse is the payload for both the get and save credit endpoints.
type CreditsResponse struct {
	Success          bool   `json:"success,omitempty"`
	UserID           string `json:"userId"`
	CreditsRemaining int    `json:"creditsRemaining"`
}

// SaveCreditsRequest is the body of POST /api/save-credits. Credits are
// persisted verbatim; the endpoint does not validate sign or bounds.
type SaveCreditsRequest struct {
	UserID  string `json:"userId"`
	Credits int    `json:"credits"`
}
