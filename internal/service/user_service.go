package service

import (
	"animeai-app/backend/internal/models"

	"gorm.io/gorm"
)

// UserService owns user rows and their credit balances. Usernames are
// opaque client-supplied strings; there is no authentication in front of
// these operations.
type UserService struct {
	db             *gorm.DB
	defaultCredits int
}

// NewUserService creates a new user service. defaultCredits is the balance
// assigned to lazily created users.
func NewUserService(db *gorm.DB, defaultCredits int) *UserService {
	return &UserService{db: db, defaultCredits: defaultCredits}
}

// GetOrCreate returns the user for username, creating it with the default
// credit balance on first sight. Calling it twice for the same username
// returns the same row.
func (s *UserService) GetOrCreate(username string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).
		Attrs(models.User{Username: username, Credits: s.defaultCredits}).
		FirstOrCreate(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SetCredits upserts the user and persists the given balance verbatim.
// Concurrent writes for the same username are last-write-wins; the endpoint
// contract has no compare-and-swap.
func (s *UserService) SetCredits(username string, credits int) (*models.User, error) {
	user, err := s.GetOrCreate(username)
	if err != nil {
		return nil, err
	}

	if user.Credits != credits {
		if err := s.db.Model(user).Update("credits", credits).Error; err != nil {
			return nil, err
		}
		user.Credits = credits
	}

	return user, nil
}
