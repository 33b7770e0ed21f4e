package api

import (
	"github.com/gin-gonic/gin"
)

// Handlers bundles every endpoint handler for route registration.
type Handlers struct {
	Health     *HealthHandler
	Characters *CharacterHandler
	Chat       *ChatHandler
	Expression *ExpressionHandler
	Speech     *SpeechHandler
	Image      *ImageHandler
	Credits    *CreditsHandler
}

// RegisterRoutes wires all /api endpoints onto the engine.
func RegisterRoutes(engine *gin.Engine, h Handlers) {
	apiGroup := engine.Group("/api")
	{
		apiGroup.GET("/health", h.Health.Health)
		apiGroup.GET("/status", h.Health.Health)
		apiGroup.GET("/health/details", h.Health.Details)

		apiGroup.GET("/characters", h.Characters.ListCharacters)
		apiGroup.GET("/characters/:id", h.Characters.GetCharacter)

		apiGroup.POST("/chat", h.Chat.Chat)
		apiGroup.POST("/analyze-expression", h.Expression.AnalyzeExpression)
		apiGroup.POST("/get-character-expressions", h.Expression.GetCharacterExpressions)
		apiGroup.POST("/text-to-speech", h.Speech.TextToSpeech)
		apiGroup.POST("/generate-character-image", h.Image.GenerateCharacterImage)

		apiGroup.GET("/get-credits", h.Credits.GetCredits)
		apiGroup.POST("/save-credits", h.Credits.SaveCredits)
	}
}
