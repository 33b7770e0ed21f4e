package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Personality is the structured persona attached to a character. It is
// stored as a single JSON column rather than normalized tables because the
// client consumes it as one opaque object.
type Personality struct {
	Type        string   `json:"type"`
	Traits      []string `json:"traits"`
	Background  string   `json:"background"`
	SpeechStyle string   `json:"speechStyle"`
}

// Value implements driver.Valuer so gorm can write the JSON column.
func (p Personality) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner for reading the JSON column back.
func (p *Personality) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported type %T for personality column", value)
	}
}

// Character is a seeded anime persona. Characters are read-only through the
// API surface; rows are inserted once by the seed loader.
type Character struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Name        string      `gorm:"not null;size:80" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	ImageURL    string      `gorm:"size:255" json:"image_url"`
	Personality Personality `gorm:"type:jsonb" json:"personality"`
	VoiceType   string      `gorm:"size:50;default:nova" json:"voice_type"`
	CreatedAt   time.Time   `json:"created_at"`
}

// CharacterResponse is a character plus its emotion-to-image mapping, built
// by joining CharacterExpression rows at query time.
type CharacterResponse struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	ImageURL    string            `json:"image_url"`
	Personality Personality       `json:"personality"`
	VoiceType   string            `json:"voice_type"`
	Expressions map[string]string `json:"expressions"`
}
