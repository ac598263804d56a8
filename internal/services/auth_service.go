package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"budgetbites/internal/config"
	apperrors "budgetbites/internal/errors"
	"budgetbites/internal/models"
)

// authService mirrors the external identity provider's session and issues
// local device-session tokens that gate the API.
type authService struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewAuthService creates a new AuthServicer.
func NewAuthService(db *gorm.DB, cfg *config.Config) AuthServicer {
	return &authService{db: db, cfg: cfg}
}

// GetAuthState returns the singleton, creating the signed-out default if
// seeding has not run against this store yet.
func (s *authService) GetAuthState() (*models.AuthState, error) {
	var state models.AuthState
	err := s.db.First(&state, models.SingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		state = models.AuthState{Base: models.Base{ID: models.SingletonID}}
		if err := s.db.Create(&state).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &state, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &state, nil
}

// SignIn stores the identity provider's session wholesale and issues a
// local JWT for subsequent API calls.
func (s *authService) SignIn(userID, email, accessToken, refreshToken string) (*Session, error) {
	if userID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "User ID is required")
	}

	if _, err := s.GetAuthState(); err != nil {
		return nil, err
	}

	err := s.db.Model(&models.AuthState{}).
		Where("id = ?", models.SingletonID).
		Updates(map[string]interface{}{
			"is_logged_in":  true,
			"user_id":       userID,
			"email":         email,
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		}).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	token, err := s.issueToken(userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &Session{Token: token, UserID: userID}, nil
}

// SignOut clears the mirrored session. Already-issued local tokens expire
// on their own; there is no revocation list.
func (s *authService) SignOut() error {
	if _, err := s.GetAuthState(); err != nil {
		return err
	}

	err := s.db.Model(&models.AuthState{}).
		Where("id = ?", models.SingletonID).
		Updates(map[string]interface{}{
			"is_logged_in":  false,
			"user_id":       nil,
			"email":         nil,
			"access_token":  nil,
			"refresh_token": nil,
		}).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *authService) issueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(s.cfg.JWTExpirationDur).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
