package api

import (
	"net/http"
	"strconv"

	"animeai-app/backend/internal/models"
	apperrors "animeai-app/backend/pkg/errors"
	"animeai-app/backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CharacterLister is the slice of the character service this handler needs.
type CharacterLister interface {
	ListCharacters() ([]models.CharacterResponse, error)
	GetCharacter(id uint) (*models.Character, error)
}

type CharacterHandler struct {
	service CharacterLister
}

func NewCharacterHandler(service CharacterLister) *CharacterHandler {
	return &CharacterHandler{service: service}
}

// ListCharacters answers GET /api/characters with every character and its
// emotion-to-image expression map.
func (h *CharacterHandler) ListCharacters(c *gin.Context) {
	characters, err := h.service.ListCharacters()
	if err != nil {
		logger.FromContext(c).LogError(err, "failed to list characters")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"characters": characters,
	})
}

// GetCharacter answers GET /api/characters/:id.
func (h *CharacterHandler) GetCharacter(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid character id"})
		return
	}

	character, err := h.service.GetCharacter(uint(id))
	if err != nil {
		appErr := apperrors.FromError(err)
		if appErr.StatusCode >= http.StatusInternalServerError {
			logger.FromContext(c).LogError(err, "failed to load character", "id", id)
		}
		c.JSON(appErr.StatusCode, gin.H{"error": appErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"character": character,
	})
}
