package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "budgetbites/internal/errors"
	"budgetbites/internal/models"
)

// mealLogService handles completed-meal records.
type mealLogService struct {
	db *gorm.DB
}

// NewMealLogService creates a new MealLogServicer.
func NewMealLogService(db *gorm.DB) MealLogServicer {
	return &mealLogService{db: db}
}

// SaveMealLog records a completed meal, replacing any existing record for
// the same date and meal type.
func (s *mealLogService) SaveMealLog(log *models.MealLog) (*models.MealLog, error) {
	if log.Date == "" || !log.MealType.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Date and meal type are required")
	}
	if log.ActualCost < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Actual cost cannot be negative")
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}, {Name: "meal_type"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"menu_name", "actual_cost", "notes", "executed_at", "updated_at",
		}),
	}).Create(log).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Reload by natural key: on conflict the original row's id survives.
	var saved models.MealLog
	err = s.db.Where("date = ? AND meal_type = ?", log.Date, log.MealType).First(&saved).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &saved, nil
}

// GetMonthlyLogs returns the month's records ordered by date and meal type.
func (s *mealLogService) GetMonthlyLogs(month string) ([]models.MealLog, error) {
	var logs []models.MealLog
	err := s.db.Where("date LIKE ?", month+"%").
		Order("date, meal_type").
		Find(&logs).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return logs, nil
}

// GetMonthlySpend returns the month's total actual cost.
func (s *mealLogService) GetMonthlySpend(month string) (int, error) {
	var spent int
	err := s.db.Model(&models.MealLog{}).
		Where("date LIKE ?", month+"%").
		Select("COALESCE(SUM(actual_cost), 0)").
		Scan(&spent).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return spent, nil
}
