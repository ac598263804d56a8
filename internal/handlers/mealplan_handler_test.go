package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "budgetbites/internal/errors"
	"budgetbites/internal/models"
	"budgetbites/internal/services"
)

// --- mock meal plan service ---

type mockMealPlanService struct {
	generateMonthlyFn  func(month string) ([]models.MealPlan, error)
	regenerateDailyFn  func(date string, mealType models.MealType) (*models.MealPlan, error)
	regenerateTodayFn  func(date string) ([]models.MealPlan, error)
	getMealsForDateFn  func(date string) ([]models.MealPlan, error)
	getMonthlyMealsFn  func(month string) ([]models.MealPlan, error)
	syncNotificationFn func(date string) error
}

func (m *mockMealPlanService) GenerateMonthlyPlan(ctx context.Context, month string) ([]models.MealPlan, error) {
	if m.generateMonthlyFn != nil {
		return m.generateMonthlyFn(month)
	}
	return []models.MealPlan{}, nil
}

func (m *mockMealPlanService) RegenerateDailyMeal(ctx context.Context, date string, mealType models.MealType) (*models.MealPlan, error) {
	if m.regenerateDailyFn != nil {
		return m.regenerateDailyFn(date, mealType)
	}
	return &models.MealPlan{Date: date, MealType: mealType}, nil
}

func (m *mockMealPlanService) RegenerateTodayMeals(ctx context.Context, date string) ([]models.MealPlan, error) {
	if m.regenerateTodayFn != nil {
		return m.regenerateTodayFn(date)
	}
	return []models.MealPlan{}, nil
}

func (m *mockMealPlanService) GetMealsForDate(date string) ([]models.MealPlan, error) {
	if m.getMealsForDateFn != nil {
		return m.getMealsForDateFn(date)
	}
	return []models.MealPlan{}, nil
}

func (m *mockMealPlanService) GetMonthlyMeals(month string) ([]models.MealPlan, error) {
	if m.getMonthlyMealsFn != nil {
		return m.getMonthlyMealsFn(month)
	}
	return []models.MealPlan{}, nil
}

func (m *mockMealPlanService) SyncTodayNotifications(date string) error {
	if m.syncNotificationFn != nil {
		return m.syncNotificationFn(date)
	}
	return nil
}

func setupMealPlanRouter(svc services.MealPlanServicer) *gin.Engine {
	r := gin.New()
	h := NewMealPlanHandler(svc)
	r.POST("/meal-plans/generate", h.GenerateMonthly)
	r.POST("/meal-plans/regenerate", h.RegenerateDaily)
	r.POST("/meal-plans/regenerate-today", h.RegenerateToday)
	r.GET("/meal-plans/today", h.GetToday)
	r.GET("/meal-plans", h.GetMonthly)
	r.POST("/meal-plans/notifications/sync", h.SyncNotifications)
	return r
}

func TestGenerateMonthly(t *testing.T) {
	var gotMonth string
	r := setupMealPlanRouter(&mockMealPlanService{
		generateMonthlyFn: func(month string) ([]models.MealPlan, error) {
			gotMonth = month
			return []models.MealPlan{{Date: "2024-06-01", MealType: models.MealTypeBreakfast}}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/meal-plans/generate", strings.NewReader(`{"month": "2024-06"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	if gotMonth != "2024-06" {
		t.Errorf("expected month 2024-06, got %q", gotMonth)
	}
}

func TestGenerateMonthlyRejectsBadMonth(t *testing.T) {
	r := setupMealPlanRouter(&mockMealPlanService{})

	for _, payload := range []string{`{"month": "2024-6"}`, `{"month": "June"}`, `{}`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/meal-plans/generate", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("payload %s: expected 400, got %d", payload, w.Code)
		}
	}
}

func TestGenerateMonthlyBudgetNotSet(t *testing.T) {
	r := setupMealPlanRouter(&mockMealPlanService{
		generateMonthlyFn: func(month string) ([]models.MealPlan, error) {
			return nil, apperrors.ErrBudgetNotSet
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/meal-plans/generate", strings.NewReader(`{"month": "2024-06"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusPreconditionFailed {
		t.Errorf("expected 412, got %d", w.Code)
	}
}

func TestGenerateMonthlyCollaboratorFailure(t *testing.T) {
	r := setupMealPlanRouter(&mockMealPlanService{
		generateMonthlyFn: func(month string) ([]models.MealPlan, error) {
			return nil, apperrors.ErrAIUnavailable
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/meal-plans/generate", strings.NewReader(`{"month": "2024-06"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "AI_UNAVAILABLE") {
		t.Errorf("expected AI_UNAVAILABLE code, got %s", w.Body.String())
	}
}

func TestRegenerateDailyRejectsBadMealType(t *testing.T) {
	r := setupMealPlanRouter(&mockMealPlanService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/meal-plans/regenerate",
		strings.NewReader(`{"date": "2024-06-15", "meal_type": "brunch"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestRegenerateDaily(t *testing.T) {
	r := setupMealPlanRouter(&mockMealPlanService{
		regenerateDailyFn: func(date string, mealType models.MealType) (*models.MealPlan, error) {
			return &models.MealPlan{Date: date, MealType: mealType, MenuName: "Replacement"}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/meal-plans/regenerate",
		strings.NewReader(`{"date": "2024-06-15", "meal_type": "lunch"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Replacement") {
		t.Errorf("expected replacement plan in body, got %s", w.Body.String())
	}
}

func TestGetMonthlyRequiresMonth(t *testing.T) {
	r := setupMealPlanRouter(&mockMealPlanService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/meal-plans", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without month, got %d", w.Code)
	}
}

func TestSyncNotifications(t *testing.T) {
	called := false
	r := setupMealPlanRouter(&mockMealPlanService{
		syncNotificationFn: func(date string) error {
			called = true
			return nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/meal-plans/notifications/sync", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", w.Code)
	}
	if !called {
		t.Error("expected sync to reach the service")
	}
}
