package service

import (
	"errors"

	"animeai-app/backend/internal/models"
	"animeai-app/backend/pkg/cache"
	apperrors "animeai-app/backend/pkg/errors"

	"gorm.io/gorm"
)

const characterListCacheKey = "characters:list"

type CharacterService struct {
	db    *gorm.DB
	cache *cache.Cache
}

// NewCharacterService creates the service. cache may be nil to disable
// list caching.
func NewCharacterService(db *gorm.DB, cache *cache.Cache) *CharacterService {
	return &CharacterService{db: db, cache: cache}
}

// ListCharacters returns all characters in id order with their
// emotion-to-image expression maps attached.
func (s *CharacterService) ListCharacters() ([]models.CharacterResponse, error) {
	if s.cache != nil {
		if cached, found := s.cache.Get(characterListCacheKey); found {
			if list, ok := cached.([]models.CharacterResponse); ok {
				return list, nil
			}
		}
	}

	var characters []models.Character
	if err := s.db.Order("id").Find(&characters).Error; err != nil {
		return nil, err
	}

	var expressions []models.CharacterExpression
	if err := s.db.Find(&expressions).Error; err != nil {
		return nil, err
	}

	expressionsByCharacter := make(map[uint]map[string]string)
	for _, expr := range expressions {
		if expressionsByCharacter[expr.CharacterID] == nil {
			expressionsByCharacter[expr.CharacterID] = make(map[string]string)
		}
		expressionsByCharacter[expr.CharacterID][expr.Emotion] = expr.ImageURL
	}

	list := make([]models.CharacterResponse, 0, len(characters))
	for _, character := range characters {
		exprs := expressionsByCharacter[character.ID]
		if exprs == nil {
			exprs = make(map[string]string)
		}
		list = append(list, models.CharacterResponse{
			ID:          character.ID,
			Name:        character.Name,
			Description: character.Description,
			ImageURL:    character.ImageURL,
			Personality: character.Personality,
			VoiceType:   character.VoiceType,
			Expressions: exprs,
		})
	}

	if s.cache != nil {
		s.cache.Set(characterListCacheKey, list)
	}

	return list, nil
}

// GetCharacter returns a single character by id. A missing row comes back
// as a not-found AppError so the handler can map it to a 404.
func (s *CharacterService) GetCharacter(id uint) (*models.Character, error) {
	var character models.Character
	if err := s.db.First(&character, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("CHARACTER_NOT_FOUND", "Character not found")
		}
		return nil, err
	}
	return &character, nil
}
