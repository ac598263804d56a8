package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "budgetbites/internal/errors"
	"budgetbites/internal/models"
)

// budgetDays is the fixed divisor for the daily budget. The plan horizon
// is always treated as a 30-day month regardless of calendar length.
const budgetDays = 30

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// GetCurrentBudget returns the singleton budget, or nil when setup has not
// configured one yet.
func (s *budgetService) GetCurrentBudget() (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.First(&budget, models.SingletonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// SetBudget persists the monthly total and its derived daily budget.
// Called once during initial setup.
func (s *budgetService) SetBudget(total int) (*models.Budget, error) {
	if total <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Budget must be positive")
	}

	budget := &models.Budget{
		Base:        models.Base{ID: models.SingletonID},
		TotalBudget: total,
		DailyBudget: total / budgetDays,
	}
	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budget, nil
}

// UpdateBudget recomputes and stores the budget in place. The row must
// already exist.
func (s *budgetService) UpdateBudget(total int) (*models.Budget, error) {
	if total <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Budget must be positive")
	}

	result := s.db.Model(&models.Budget{}).Where("id = ?", models.SingletonID).
		Updates(map[string]interface{}{
			"total_budget": total,
			"daily_budget": total / budgetDays,
		})
	if result.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrBudgetNotSet
	}

	var budget models.Budget
	if err := s.db.First(&budget, models.SingletonID).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// GetBudgetStatus reports the month's spending against the budget. Spent
// is the sum of logged actual costs over the month. The percentage is not
// clamped; a month over budget reports more than 100.
func (s *budgetService) GetBudgetStatus(month string) (*BudgetStatus, error) {
	budget, err := s.GetCurrentBudget()
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return &BudgetStatus{}, nil
	}

	var spent int
	err = s.db.Model(&models.MealLog{}).
		Where("date LIKE ?", month+"%").
		Select("COALESCE(SUM(actual_cost), 0)").
		Scan(&spent).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	status := &BudgetStatus{
		TotalBudget: budget.TotalBudget,
		DailyBudget: budget.DailyBudget,
		Spent:       spent,
		Remaining:   budget.TotalBudget - spent,
		IsSet:       true,
	}
	if budget.TotalBudget > 0 {
		status.Percentage = float64(spent) / float64(budget.TotalBudget) * 100
	}
	return status, nil
}
