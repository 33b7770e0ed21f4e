package service

import (
	"animeai-app/backend/internal/models"

	"gorm.io/gorm"
)

// InteractionService persists chat exchanges for later history features.
type InteractionService struct {
	db *gorm.DB
}

func NewInteractionService(db *gorm.DB) *InteractionService {
	return &InteractionService{db: db}
}

// Record stores one exchange. The chat endpoint treats recording as
// best-effort: a failure here is logged by the caller, never returned to
// the client.
func (s *InteractionService) Record(userID, characterID uint, message, response, emotion string) error {
	interaction := models.Interaction{
		UserID:      userID,
		CharacterID: characterID,
		Message:     message,
		Response:    response,
		Emotion:     emotion,
	}
	return s.db.Create(&interaction).Error
}

// ListForUser returns a user's interactions, newest first.
func (s *InteractionService) ListForUser(userID uint, limit int) ([]models.Interaction, error) {
	var interactions []models.Interaction
	q := s.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&interactions).Error; err != nil {
		return nil, err
	}
	return interactions, nil
}
