package testutil_test

import (
	"testing"

	"budgetbites/internal/errors"
	"budgetbites/internal/models"
	"budgetbites/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"preferences", "budgets", "meal_plans", "meal_logs", "meal_times", "expenses", "premium_status", "auth", "ai_usage", "ai_history", "backup_settings"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	budget := testutil.CreateTestBudget(t, db, 30000)
	if budget.DailyBudget != 1000 {
		t.Errorf("expected daily budget 1000, got %d", budget.DailyBudget)
	}

	pref := testutil.CreateTestPreference(t, db, models.TastePreferenceBalanced)
	if pref.ID != models.SingletonID {
		t.Errorf("expected singleton preference, got id %d", pref.ID)
	}

	plan := testutil.CreateTestMealPlan(t, db, "2025-03-10", models.MealTypeLunch)
	if plan.EstimatedCost != plan.Ingredients.TotalCost() {
		t.Errorf("fixture cost %d disagrees with ingredient total %d", plan.EstimatedCost, plan.Ingredients.TotalCost())
	}

	log := testutil.CreateTestMealLog(t, db, "2025-03-10", models.MealTypeLunch, 450)
	if log.ActualCost != 450 {
		t.Errorf("expected actual cost 450, got %d", log.ActualCost)
	}

	expense := testutil.CreateTestExpense(t, db, "2025-03-10", 1200)
	if expense.Amount != 1200 {
		t.Errorf("expected amount 1200, got %d", expense.Amount)
	}

	mt := testutil.CreateTestMealTime(t, db, models.MealTypeBreakfast, 7, 30)
	if mt.Hour != 7 || mt.Minute != 30 {
		t.Errorf("expected 07:30, got %02d:%02d", mt.Hour, mt.Minute)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrBudgetNotSet, "custom message")
	testutil.AssertAppError(t, err, "BUDGET_NOT_SET")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
