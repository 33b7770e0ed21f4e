package service

import (
	"testing"

	"animeai-app/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDefaults(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SeedDefaults(db, testLogger()))

	var characters []models.Character
	require.NoError(t, db.Order("id").Find(&characters).Error)
	require.Len(t, characters, 3)
	assert.Equal(t, "Mika", characters[0].Name)
	assert.Equal(t, "Yuki", characters[1].Name)
	assert.Equal(t, "Taro", characters[2].Name)
	assert.Equal(t, "nova", characters[0].VoiceType)

	// one expression row per character per vocabulary entry
	var expressionCount int64
	require.NoError(t, db.Model(&models.CharacterExpression{}).Count(&expressionCount).Error)
	assert.EqualValues(t, 3*len(models.EmotionVocabulary), expressionCount)

	// every expression reuses the character's base image for now
	var expressions []models.CharacterExpression
	require.NoError(t, db.Where("character_id = ?", characters[0].ID).Find(&expressions).Error)
	require.Len(t, expressions, len(models.EmotionVocabulary))
	for _, expr := range expressions {
		assert.Equal(t, characters[0].ImageURL, expr.ImageURL)
	}
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SeedDefaults(db, testLogger()))
	require.NoError(t, SeedDefaults(db, testLogger()))

	var characterCount, expressionCount int64
	require.NoError(t, db.Model(&models.Character{}).Count(&characterCount).Error)
	require.NoError(t, db.Model(&models.CharacterExpression{}).Count(&expressionCount).Error)
	assert.EqualValues(t, 3, characterCount)
	assert.EqualValues(t, 3*len(models.EmotionVocabulary), expressionCount)
}

func TestSeedDefaultsSkipsNonEmptyTable(t *testing.T) {
	db := setupTestDB(t)

	custom := models.Character{Name: "Custom", ImageURL: "/assets/custom.png"}
	require.NoError(t, db.Create(&custom).Error)

	require.NoError(t, SeedDefaults(db, testLogger()))

	// any existing character suppresses the whole seed
	var characterCount int64
	require.NoError(t, db.Model(&models.Character{}).Count(&characterCount).Error)
	assert.EqualValues(t, 1, characterCount)
}
