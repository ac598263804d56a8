package services

import (
	"gorm.io/gorm"

	"budgetbites/internal/database"
	apperrors "budgetbites/internal/errors"
	"budgetbites/internal/logger"
	"budgetbites/internal/models"
)

// settingService handles app-level maintenance operations.
type settingService struct {
	db *gorm.DB
}

// NewSettingService creates a new SettingServicer.
func NewSettingService(db *gorm.DB) SettingServicer {
	return &settingService{db: db}
}

// DeleteAllData wipes the user's planning data and restores the seeded
// defaults, all in one transaction. Identity, premium and backup state
// survive the wipe.
func (s *settingService) DeleteAllData() error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.Preference{},
			&models.Budget{},
			&models.MealPlan{},
			&models.MealLog{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}
		return database.SeedDefaults(tx)
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("all planning data deleted and defaults restored")
	return nil
}
