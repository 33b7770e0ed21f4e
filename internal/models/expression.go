package models

// CharacterExpression maps one character emotion to an image. The seed
// loader inserts one row per character per emotion in EmotionVocabulary;
// (character_id, emotion) is expected unique but not enforced by the schema.
type CharacterExpression struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CharacterID uint   `gorm:"index;not null" json:"character_id"`
	Emotion     string `gorm:"not null;size:50" json:"emotion"`
	ImageURL    string `gorm:"size:255" json:"image_url"`
}

// EmotionVocabulary is the fixed set used by the chat classifier and the
// seed loader. Order matters for seeding: expression rows are inserted in
// this order for each character.
var EmotionVocabulary = []string{
	"happy", "sad", "angry", "surprised", "neutral",
	"embarrassed", "thoughtful", "excited", "nervous",
}

// FaceEmotionVocabulary constrains the facial expression analyzer.
var FaceEmotionVocabulary = []string{
	"happy", "sad", "angry", "surprised", "neutral", "confused", "other",
}

// DefaultSheetEmotions is the fallback emotion list for the expression
// sheet endpoint when the client does not supply one.
var DefaultSheetEmotions = []string{"happy", "sad", "angry", "surprised", "neutral"}

// IsKnownEmotion reports whether emotion belongs to the chat vocabulary.
func IsKnownEmotion(emotion string) bool {
	for _, e := range EmotionVocabulary {
		if e == emotion {
			return true
		}
	}
	return false
}
