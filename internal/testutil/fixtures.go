package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"budgetbites/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestBudget creates the singleton budget row for the given monthly total.
func CreateTestBudget(t *testing.T, db *gorm.DB, total int) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		Base:        models.Base{ID: models.SingletonID},
		TotalBudget: total,
		DailyBudget: total / 30,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestPreference creates the singleton preference row.
func CreateTestPreference(t *testing.T, db *gorm.DB, taste models.TastePreference) *models.Preference {
	t.Helper()

	pref := &models.Preference{
		Base:             models.Base{ID: models.SingletonID},
		TastePreference:  taste,
		Allergies:        models.StringList{},
		AvoidIngredients: models.StringList{},
	}
	if err := db.Create(pref).Error; err != nil {
		t.Fatalf("failed to create test preference: %v", err)
	}
	return pref
}

// CreateTestMealPlan creates a meal plan for the given date and meal type.
func CreateTestMealPlan(t *testing.T, db *gorm.DB, date string, mealType models.MealType) *models.MealPlan {
	t.Helper()

	plan := &models.MealPlan{
		Date:     date,
		MealType: mealType,
		MenuName: fmt.Sprintf("Test Menu %d", nextID()),
		Ingredients: models.IngredientList{
			{Name: "rice", Amount: "150g", Cost: 120},
			{Name: "egg", Amount: "2", Cost: 60},
		},
		Recipe:        models.StringList{"cook rice", "fry eggs", "serve"},
		Nutrition:     models.Nutrition{Calories: 520, Protein: 18, Fat: 12, Carbs: 80},
		CookingTime:   20,
		EstimatedCost: 180,
	}
	if err := db.Create(plan).Error; err != nil {
		t.Fatalf("failed to create test meal plan: %v", err)
	}
	return plan
}

// CreateTestMealLog creates a completed-meal record with the given cost.
func CreateTestMealLog(t *testing.T, db *gorm.DB, date string, mealType models.MealType, actualCost int) *models.MealLog {
	t.Helper()

	log := &models.MealLog{
		Date:       date,
		MealType:   mealType,
		MenuName:   fmt.Sprintf("Test Menu %d", nextID()),
		ActualCost: actualCost,
		ExecutedAt: date + "T12:00:00Z",
	}
	if err := db.Create(log).Error; err != nil {
		t.Fatalf("failed to create test meal log: %v", err)
	}
	return log
}

// CreateTestExpense creates an expense on the given date.
func CreateTestExpense(t *testing.T, db *gorm.DB, date string, amount int) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Date:        date,
		Amount:      amount,
		Category:    "groceries",
		Description: fmt.Sprintf("Test Expense %d", nextID()),
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestMealTime creates a notification slot for the given meal type.
func CreateTestMealTime(t *testing.T, db *gorm.DB, mealType models.MealType, hour, minute int) *models.MealTime {
	t.Helper()

	mt := &models.MealTime{
		MealType: mealType,
		Hour:     hour,
		Minute:   minute,
		Enabled:  true,
	}
	if err := db.Create(mt).Error; err != nil {
		t.Fatalf("failed to create test meal time: %v", err)
	}
	return mt
}
