package service

import (
	"fmt"

	"animeai-app/backend/internal/models"
	"animeai-app/backend/pkg/logger"

	"gorm.io/gorm"
)

// defaultCharacters are the three personas inserted on first startup, in
// this order. Their base image doubles as every expression image until
// per-emotion art exists.
func defaultCharacters() []models.Character {
	return []models.Character{
		{
			Name:        "Mika",
			Description: "A cheerful and kind teenage girl. She radiates positive energy and loves encouraging her friends.",
			ImageURL:    "/assets/mika.png",
			Personality: models.Personality{
				Type:        "Friendly",
				Traits:      []string{"positive", "enthusiastic", "caring"},
				Background:  "High school student council president. Loves art and music.",
				SpeechStyle: "Speaks in a warm, upbeat way and often ends sentences with a playful flourish.",
			},
			VoiceType: "nova",
		},
		{
			Name:        "Yuki",
			Description: "A quiet, thoughtful university student. She loves reading and enjoys deep philosophical conversations.",
			ImageURL:    "/assets/yuki.png",
			Personality: models.Personality{
				Type:        "Thoughtful",
				Traits:      []string{"calm", "philosophical", "intelligent"},
				Background:  "Literature major who works at a cafe while writing a novel.",
				SpeechStyle: "Speaks softly and deliberately, sometimes quoting passages from books.",
			},
			VoiceType: "alloy",
		},
		{
			Name:        "Taro",
			Description: "A passionate, energetic teenage boy. He loves sports and adventure.",
			ImageURL:    "/assets/taro.png",
			Personality: models.Personality{
				Type:        "Energetic",
				Traits:      []string{"passionate", "brave", "competitive"},
				Background:  "Captain of the high school basketball team. Dreams of going pro.",
				SpeechStyle: "Speaks with confidence and fire, always ready to turn anything into a challenge.",
			},
			VoiceType: "onyx",
		},
	}
}

// SeedDefaults inserts the default characters and their per-emotion
// expression rows when the character table is empty. Any existing character
// row skips the whole seed, not individual rows, so restarts stay
// idempotent. A crash between the character commit and the expression
// commit therefore leaves expressions missing permanently; healing that
// would need a per-row check and is deliberately not done here.
func SeedDefaults(db *gorm.DB, log *logger.Logger) error {
	var count int64
	if err := db.Model(&models.Character{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing characters: %w", err)
	}
	if count > 0 {
		log.Info("characters already seeded, skipping", "count", count)
		return nil
	}

	characters := defaultCharacters()
	if err := db.Create(&characters).Error; err != nil {
		return fmt.Errorf("failed to seed characters: %w", err)
	}
	log.Info("seeded default characters", "count", len(characters))

	var expressions []models.CharacterExpression
	for _, character := range characters {
		for _, emotion := range models.EmotionVocabulary {
			expressions = append(expressions, models.CharacterExpression{
				CharacterID: character.ID,
				Emotion:     emotion,
				ImageURL:    character.ImageURL, // same image for every emotion until per-emotion art exists
			})
		}
	}
	if err := db.Create(&expressions).Error; err != nil {
		return fmt.Errorf("failed to seed character expressions: %w", err)
	}
	log.Info("seeded character expressions", "count", len(expressions))

	return nil
}
