package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "budgetbites/internal/errors"
	"budgetbites/internal/models"
)

// premiumService mirrors the billing collaborator's subscription state.
type premiumService struct {
	db *gorm.DB
}

// NewPremiumService creates a new PremiumServicer.
func NewPremiumService(db *gorm.DB) PremiumServicer {
	return &premiumService{db: db}
}

// GetPremiumStatus returns the singleton, creating the free-tier default if
// seeding has not run against this store yet.
func (s *premiumService) GetPremiumStatus() (*models.PremiumStatus, error) {
	var status models.PremiumStatus
	err := s.db.First(&status, models.SingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		status = models.PremiumStatus{Base: models.Base{ID: models.SingletonID}}
		if err := s.db.Create(&status).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &status, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &status, nil
}

// UpdatePremiumStatus overwrites the singleton wholesale with the billing
// collaborator's latest view.
func (s *premiumService) UpdatePremiumStatus(isPremium bool, subscriptionID, expiresAt *string) (*models.PremiumStatus, error) {
	if _, err := s.GetPremiumStatus(); err != nil {
		return nil, err
	}

	err := s.db.Model(&models.PremiumStatus{}).
		Where("id = ?", models.SingletonID).
		Updates(map[string]interface{}{
			"is_premium":      isPremium,
			"subscription_id": subscriptionID,
			"expires_at":      expiresAt,
		}).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetPremiumStatus()
}
