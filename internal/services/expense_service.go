package services

import (
	"gorm.io/gorm"

	apperrors "budgetbites/internal/errors"
	"budgetbites/internal/models"
	"budgetbites/internal/pagination"
)

// expenseService handles ad-hoc food expenses outside the meal log.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// AddExpense appends an expense record.
func (s *expenseService) AddExpense(date string, amount int, category, description string) (*models.Expense, error) {
	if date == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Date is required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must be positive")
	}

	expense := &models.Expense{
		Date:        date,
		Amount:      amount,
		Category:    category,
		Description: description,
	}
	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// GetMonthlyExpenses returns a paginated month of expenses, newest first.
func (s *expenseService) GetMonthlyExpenses(month string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := s.db.Model(&models.Expense{}).Where("date LIKE ?", month+"%")

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	err := base.Order("date DESC, id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// DeleteExpense removes an expense by id.
func (s *expenseService) DeleteExpense(id uint) error {
	result := s.db.Delete(&models.Expense{}, id)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}
