package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "budgetbites/internal/errors"
	"budgetbites/internal/pagination"
	"budgetbites/internal/services"
)

// AIUsageHandler exposes collaborator cost tracking.
type AIUsageHandler struct {
	usageService services.AIUsageServicer
}

// NewAIUsageHandler creates a new AIUsageHandler.
func NewAIUsageHandler(usageService services.AIUsageServicer) *AIUsageHandler {
	return &AIUsageHandler{usageService: usageService}
}

// GetMonthlyUsage lists a month of token usage rows.
// @Summary     Get AI usage
// @Tags        ai
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month (YYYY-MM), defaults to the current month"
// @Success     200 {array} models.AIUsage "Usage rows"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /ai/usage [get]
func (h *AIUsageHandler) GetMonthlyUsage(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	usage, err := h.usageService.GetMonthlyUsage(month)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"usage": usage})
}

// GetHistory lists the collaborator call history.
// @Summary     Get AI call history
// @Tags        ai
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.AIHistory] "Paginated history"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /ai/history [get]
func (h *AIUsageHandler) GetHistory(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	history, err := h.usageService.GetHistory(page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
