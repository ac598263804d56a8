package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "budgetbites/internal/errors"
	"budgetbites/internal/models"
)

// mealTimeService handles the notification time slots.
type mealTimeService struct {
	db *gorm.DB
}

// NewMealTimeService creates a new MealTimeServicer.
func NewMealTimeService(db *gorm.DB) MealTimeServicer {
	return &mealTimeService{db: db}
}

// GetMealTimes returns all slots in daily order.
func (s *mealTimeService) GetMealTimes() ([]models.MealTime, error) {
	var mealTimes []models.MealTime
	if err := s.db.Order("hour, minute").Find(&mealTimes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return mealTimes, nil
}

// UpdateMealTime moves a slot to a new wall-clock time.
func (s *mealTimeService) UpdateMealTime(mealType models.MealType, hour, minute int) (*models.MealTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Time must be a valid hour and minute")
	}
	return s.update(mealType, map[string]interface{}{"hour": hour, "minute": minute})
}

// SetMealTimeEnabled toggles reminder delivery for a slot.
func (s *mealTimeService) SetMealTimeEnabled(mealType models.MealType, enabled bool) (*models.MealTime, error) {
	return s.update(mealType, map[string]interface{}{"enabled": enabled})
}

func (s *mealTimeService) update(mealType models.MealType, updates map[string]interface{}) (*models.MealTime, error) {
	if !mealType.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid meal type")
	}

	result := s.db.Model(&models.MealTime{}).Where("meal_type = ?", mealType).Updates(updates)
	if result.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrMealTimeNotFound
	}

	var mt models.MealTime
	if err := s.db.Where("meal_type = ?", mealType).First(&mt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMealTimeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &mt, nil
}
