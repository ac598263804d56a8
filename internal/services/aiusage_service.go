package services

import (
	"gorm.io/gorm"

	"budgetbites/internal/ai"
	apperrors "budgetbites/internal/errors"
	"budgetbites/internal/logger"
	"budgetbites/internal/models"
	"budgetbites/internal/pagination"
)

// aiUsageService records collaborator calls for cost tracking and
// debugging.
type aiUsageService struct {
	db *gorm.DB
}

// NewAIUsageService creates a new AIUsageServicer.
func NewAIUsageService(db *gorm.DB) AIUsageServicer {
	return &aiUsageService{db: db}
}

// RecordCall stores one usage row and one history row for a collaborator
// call. Recording is best effort: a bookkeeping failure is logged and never
// fails the call it describes.
func (s *aiUsageService) RecordCall(action, input, output string, usage ai.Usage, callErr error) {
	if err := s.db.Create(&models.AIUsage{
		ActionType:       action,
		PromptTokens:     usage.PromptTokens,
		CompletionTokens: usage.CompletionTokens,
	}).Error; err != nil {
		logger.Get().Errorw("failed to record AI usage", "action", action, "error", err)
	}

	history := &models.AIHistory{
		ActionType: action,
		InputData:  input,
		OutputData: output,
		Status:     "success",
	}
	if callErr != nil {
		history.Status = "error"
		history.ErrorMessage = callErr.Error()
	}
	if err := s.db.Create(history).Error; err != nil {
		logger.Get().Errorw("failed to record AI history", "action", action, "error", err)
	}
}

// GetMonthlyUsage returns the month's usage rows. The created_at text
// representation starts with the date, so a month prefix match works.
func (s *aiUsageService) GetMonthlyUsage(month string) ([]models.AIUsage, error) {
	var usage []models.AIUsage
	err := s.db.Where("created_at LIKE ?", month+"%").
		Order("created_at, id").
		Find(&usage).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return usage, nil
}

// GetHistory returns a paginated call history, newest first.
func (s *aiUsageService) GetHistory(page pagination.PageRequest) (*pagination.PageResponse[models.AIHistory], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.AIHistory{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var history []models.AIHistory
	err := s.db.Order("created_at DESC, id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&history).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(history, page.Page, page.PageSize, totalItems)
	return &result, nil
}
