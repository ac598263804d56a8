package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "budgetbites/internal/errors"
	"budgetbites/internal/models"
	"budgetbites/internal/services"
)

// MealPlanHandler handles meal plan generation and reads.
type MealPlanHandler struct {
	mealPlanService services.MealPlanServicer
}

// NewMealPlanHandler creates a new MealPlanHandler.
func NewMealPlanHandler(mealPlanService services.MealPlanServicer) *MealPlanHandler {
	return &MealPlanHandler{mealPlanService: mealPlanService}
}

// GenerateMonthlyRequest represents the payload for monthly generation.
type GenerateMonthlyRequest struct {
	Month string `json:"month" binding:"required,plan_month"`
}

// RegenerateDailyRequest represents the payload for single-meal regeneration.
type RegenerateDailyRequest struct {
	Date     string          `json:"date" binding:"required,plan_date"`
	MealType models.MealType `json:"meal_type" binding:"required,meal_type"`
}

// RegenerateTodayRequest represents the payload for full-day regeneration.
type RegenerateTodayRequest struct {
	Date string `json:"date" binding:"omitempty,plan_date"`
}

// GenerateMonthly generates a full month of meal plans.
// @Summary     Generate a monthly plan
// @Description Replace the month's plans with a freshly generated set
// @Tags        meal-plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body GenerateMonthlyRequest true "Target month"
// @Success     201 {array} models.MealPlan "Generated plans"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     412 {object} ErrorResponse "Budget not set"
// @Failure     502 {object} ErrorResponse "Collaborator failure"
// @Router      /meal-plans/generate [post]
func (h *MealPlanHandler) GenerateMonthly(c *gin.Context) {
	var req GenerateMonthlyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	plans, err := h.mealPlanService.GenerateMonthlyPlan(c.Request.Context(), req.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"plans": plans})
}

// RegenerateDaily replaces one meal.
// @Summary     Regenerate one meal
// @Description Replace a single (date, meal type) plan, leaving the rest untouched
// @Tags        meal-plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body RegenerateDailyRequest true "Target meal"
// @Success     200 {object} models.MealPlan "Replacement plan"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     412 {object} ErrorResponse "Budget not set"
// @Failure     502 {object} ErrorResponse "Collaborator failure"
// @Router      /meal-plans/regenerate [post]
func (h *MealPlanHandler) RegenerateDaily(c *gin.Context) {
	var req RegenerateDailyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	plan, err := h.mealPlanService.RegenerateDailyMeal(c.Request.Context(), req.Date, req.MealType)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// RegenerateToday replaces all of a day's meals.
// @Summary     Regenerate a full day
// @Description Replace all three meals for a date (default today)
// @Tags        meal-plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body RegenerateTodayRequest false "Target date"
// @Success     200 {array} models.MealPlan "Replacement plans"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     412 {object} ErrorResponse "Budget not set"
// @Failure     502 {object} ErrorResponse "Collaborator failure"
// @Router      /meal-plans/regenerate-today [post]
func (h *MealPlanHandler) RegenerateToday(c *gin.Context) {
	var req RegenerateTodayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}

	plans, err := h.mealPlanService.RegenerateTodayMeals(c.Request.Context(), req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// GetToday returns today's plans.
// @Summary     Get today's meals
// @Tags        meal-plans
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.MealPlan "Today's plans"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /meal-plans/today [get]
func (h *MealPlanHandler) GetToday(c *gin.Context) {
	plans, err := h.mealPlanService.GetMealsForDate(time.Now().Format("2006-01-02"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// GetMonthly returns a month of plans.
// @Summary     Get a month of meals
// @Tags        meal-plans
// @Produce     json
// @Security    BearerAuth
// @Param       month query string true "Month (YYYY-MM)"
// @Success     200 {array} models.MealPlan "Month's plans"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /meal-plans [get]
func (h *MealPlanHandler) GetMonthly(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "month is required"))
		return
	}

	plans, err := h.mealPlanService.GetMonthlyMeals(month)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// SyncNotifications reconciles today's meal reminders.
// @Summary     Sync meal reminders
// @Description Reschedule daily reminders so each enabled slot carries today's menu
// @Tags        meal-plans
// @Produce     json
// @Security    BearerAuth
// @Success     204 "Reminders synced"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /meal-plans/notifications/sync [post]
func (h *MealPlanHandler) SyncNotifications(c *gin.Context) {
	if err := h.mealPlanService.SyncTodayNotifications(time.Now().Format("2006-01-02")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
