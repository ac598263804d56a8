package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "budgetbites/internal/errors"
	"budgetbites/internal/models"
)

// preferenceService handles the dietary preference singleton.
type preferenceService struct {
	db *gorm.DB
}

// NewPreferenceService creates a new PreferenceServicer.
func NewPreferenceService(db *gorm.DB) PreferenceServicer {
	return &preferenceService{db: db}
}

// GetPreferences returns the preference singleton, creating the default row
// if seeding has not run against this store yet.
func (s *preferenceService) GetPreferences() (*models.Preference, error) {
	var pref models.Preference
	err := s.db.First(&pref, models.SingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		pref = models.Preference{
			Base:             models.Base{ID: models.SingletonID},
			TastePreference:  models.TastePreferenceBalanced,
			Allergies:        models.StringList{},
			AvoidIngredients: models.StringList{},
		}
		if err := s.db.Create(&pref).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &pref, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &pref, nil
}

// UpdatePreferences applies a partial update to the singleton. Empty lists
// are skipped rather than stored, so this path cannot clear a previously
// saved allergy or avoid list. Kept for contract compatibility with
// existing clients; see DESIGN.md.
func (s *preferenceService) UpdatePreferences(update PreferenceUpdate) (*models.Preference, error) {
	if _, err := s.GetPreferences(); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.TastePreference != nil {
		if !update.TastePreference.Valid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid taste preference")
		}
		updates["taste_preference"] = *update.TastePreference
	}
	if len(update.Allergies) > 0 {
		updates["allergies"] = update.Allergies
	}
	if len(update.AvoidIngredients) > 0 {
		updates["avoid_ingredients"] = update.AvoidIngredients
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.Preference{}).
			Where("id = ?", models.SingletonID).
			Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetPreferences()
}
