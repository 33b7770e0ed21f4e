package api

import (
	"net/http"

	"animeai-app/backend/internal/models"
	"animeai-app/backend/pkg/logger"
	"animeai-app/backend/shared/observability"

	"github.com/gin-gonic/gin"
)

// defaultUserID is used when the client does not identify itself.
const defaultUserID = "user1"

// CreditStore is the slice of the user service the credit endpoints need.
type CreditStore interface {
	GetOrCreate(username string) (*models.User, error)
	SetCredits(username string, credits int) (*models.User, error)
}

type CreditsHandler struct {
	users   CreditStore
	metrics *observability.Metrics
}

func NewCreditsHandler(users CreditStore, metrics *observability.Metrics) *CreditsHandler {
	return &CreditsHandler{users: users, metrics: metrics}
}

// GetCredits answers GET /api/get-credits?userId=. Unknown users are
// created on the spot with the default balance.
func (h *CreditsHandler) GetCredits(c *gin.Context) {
	userID := c.DefaultQuery("userId", defaultUserID)

	user, err := h.users.GetOrCreate(userID)
	if err != nil {
		logger.FromContext(c).LogError(err, "failed to load credits", "user", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.CreditsResponse{
		UserID:           userID,
		CreditsRemaining: user.Credits,
	})
}

// SaveCredits answers POST /api/save-credits. The supplied balance is
// persisted verbatim; there is no sign or bounds validation and concurrent
// writes for a user are last-write-wins.
func (h *CreditsHandler) SaveCredits(c *gin.Context) {
	var req models.SaveCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}
	if req.UserID == "" {
		req.UserID = defaultUserID
	}

	user, err := h.users.SetCredits(req.UserID, req.Credits)
	if err != nil {
		logger.FromContext(c).LogError(err, "failed to save credits", "user", req.UserID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.metrics.RecordCreditUpdate(c.Request.Context())

	c.JSON(http.StatusOK, models.CreditsResponse{
		Success:          true,
		UserID:           req.UserID,
		CreditsRemaining: user.Credits,
	})
}
