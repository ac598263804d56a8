package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "budgetbites/internal/errors"
	"budgetbites/internal/models"
	"budgetbites/internal/services"
)

// MealLogHandler handles completed-meal records.
type MealLogHandler struct {
	mealLogService services.MealLogServicer
}

// NewMealLogHandler creates a new MealLogHandler.
func NewMealLogHandler(mealLogService services.MealLogServicer) *MealLogHandler {
	return &MealLogHandler{mealLogService: mealLogService}
}

// SaveMealLogRequest represents a completed meal to record.
type SaveMealLogRequest struct {
	Date       string          `json:"date" binding:"required,plan_date"`
	MealType   models.MealType `json:"meal_type" binding:"required,meal_type"`
	MenuName   string          `json:"menu_name" binding:"required"`
	ActualCost int             `json:"actual_cost" binding:"min=0"`
	Notes      string          `json:"notes"`
}

// SaveMealLog records a completed meal, replacing any record for the key.
// @Summary     Save a meal log
// @Description Record a completed meal; saving the same date and meal type again replaces it
// @Tags        meal-logs
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SaveMealLogRequest true "Completed meal"
// @Success     200 {object} models.MealLog "Saved record"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /meal-logs [put]
func (h *MealLogHandler) SaveMealLog(c *gin.Context) {
	var req SaveMealLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	log, err := h.mealLogService.SaveMealLog(&models.MealLog{
		Date:       req.Date,
		MealType:   req.MealType,
		MenuName:   req.MenuName,
		ActualCost: req.ActualCost,
		Notes:      req.Notes,
		ExecutedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal_log": log})
}

// GetMonthlyLogs lists a month of records.
// @Summary     Get a month of meal logs
// @Tags        meal-logs
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month (YYYY-MM), defaults to the current month"
// @Success     200 {array} models.MealLog "Month's records"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /meal-logs [get]
func (h *MealLogHandler) GetMonthlyLogs(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	logs, err := h.mealLogService.GetMonthlyLogs(month)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal_logs": logs})
}

// GetMonthlySpend reports the month's total actual cost.
// @Summary     Get a month's spend
// @Tags        meal-logs
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month (YYYY-MM), defaults to the current month"
// @Success     200 {object} map[string]int "Total spend"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /meal-logs/spend [get]
func (h *MealLogHandler) GetMonthlySpend(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	spent, err := h.mealLogService.GetMonthlySpend(month)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"month": month, "spent": spent})
}
