package services

import (
	"context"
	"fmt"
	"testing"

	"budgetbites/internal/ai"
	apperrors "budgetbites/internal/errors"
	"budgetbites/internal/models"
	"budgetbites/internal/testutil"
)

// stubPlanner is a canned ai.Planner for service tests.
type stubPlanner struct {
	monthlyPlans []models.MealPlan
	dailyPlan    *models.MealPlan
	todayPlans   []models.MealPlan
	err          error

	calls int
}

func (p *stubPlanner) GenerateMonthlyPlan(ctx context.Context, pc ai.PlanContext) ([]models.MealPlan, ai.Usage, error) {
	p.calls++
	return p.monthlyPlans, ai.Usage{PromptTokens: 10, CompletionTokens: 20}, p.err
}

func (p *stubPlanner) RegenerateDailyMeal(ctx context.Context, date string, mealType models.MealType, pc ai.PlanContext) (*models.MealPlan, ai.Usage, error) {
	p.calls++
	return p.dailyPlan, ai.Usage{PromptTokens: 10, CompletionTokens: 20}, p.err
}

func (p *stubPlanner) RegenerateTodayMeals(ctx context.Context, date string, pc ai.PlanContext) ([]models.MealPlan, ai.Usage, error) {
	p.calls++
	return p.todayPlans, ai.Usage{PromptTokens: 10, CompletionTokens: 20}, p.err
}

// fakeScheduler records schedule calls without running anything.
type fakeScheduler struct {
	next    int
	entries map[string]string
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{entries: make(map[string]string)}
}

func (s *fakeScheduler) Schedule(spec string, job func()) (string, error) {
	s.next++
	id := fmt.Sprintf("reminder-%d", s.next)
	s.entries[id] = spec
	return id, nil
}

func (s *fakeScheduler) Cancel(id string) bool {
	if _, ok := s.entries[id]; !ok {
		return false
	}
	delete(s.entries, id)
	return true
}

func (s *fakeScheduler) CancelAll() {
	s.entries = make(map[string]string)
}

func (s *fakeScheduler) Scheduled() []string {
	ids := make([]string, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	return ids
}

// monthOfPlans builds three meals a day for the given number of days.
func monthOfPlans(month string, days int) []models.MealPlan {
	plans := make([]models.MealPlan, 0, days*3)
	for d := 1; d <= days; d++ {
		date := fmt.Sprintf("%s-%02d", month, d)
		for _, mealType := range models.MealTypes {
			plans = append(plans, models.MealPlan{
				Date:          date,
				MealType:      mealType,
				MenuName:      fmt.Sprintf("Generated %s %s", mealType, date),
				Ingredients:   models.IngredientList{{Name: "rice", Amount: "150g", Cost: 120}},
				Recipe:        models.StringList{"cook"},
				Nutrition:     models.Nutrition{Calories: 500},
				CookingTime:   15,
				EstimatedCost: 120,
			})
		}
	}
	return plans
}

func TestGenerateMonthlyPlanWithoutBudget(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	planner := &stubPlanner{monthlyPlans: monthOfPlans("2024-06", 30)}
	svc := NewMealPlanService(db, planner, newFakeScheduler(), NewAIUsageService(db))

	_, err := svc.GenerateMonthlyPlan(context.Background(), "2024-06")
	testutil.AssertAppError(t, err, "BUDGET_NOT_SET")

	if planner.calls != 0 {
		t.Errorf("collaborator must not be called without a budget, got %d calls", planner.calls)
	}
	var count int64
	if err := db.Model(&models.MealPlan{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count plans: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no writes, found %d rows", count)
	}
}

func TestGenerateMonthlyPlanReplacesTheMonth(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	testutil.CreateTestBudget(t, db, 30000)
	testutil.CreateTestPreference(t, db, models.TastePreferenceBalanced)
	stale := testutil.CreateTestMealPlan(t, db, "2024-06-10", models.MealTypeBreakfast)
	kept := testutil.CreateTestMealPlan(t, db, "2024-07-01", models.MealTypeLunch)

	planner := &stubPlanner{monthlyPlans: monthOfPlans("2024-06", 30)}
	svc := NewMealPlanService(db, planner, newFakeScheduler(), NewAIUsageService(db))

	plans, err := svc.GenerateMonthlyPlan(context.Background(), "2024-06")
	testutil.AssertNoError(t, err)

	if len(plans) != 90 {
		t.Fatalf("expected 90 plans for June, got %d", len(plans))
	}

	// The stale June row is gone; its key now holds generated content.
	var replaced models.MealPlan
	if err := db.Where("date = ? AND meal_type = ?", "2024-06-10", models.MealTypeBreakfast).First(&replaced).Error; err != nil {
		t.Fatalf("failed to load replaced row: %v", err)
	}
	if replaced.MenuName == stale.MenuName {
		t.Errorf("pre-existing June plan survived the replace: %q", replaced.MenuName)
	}

	// The July row is untouched.
	var outside models.MealPlan
	if err := db.First(&outside, kept.ID).Error; err != nil {
		t.Fatalf("plan outside the month was deleted: %v", err)
	}

	// The collaborator call was recorded.
	var usageCount int64
	if err := db.Model(&models.AIUsage{}).Count(&usageCount).Error; err != nil {
		t.Fatalf("failed to count usage rows: %v", err)
	}
	if usageCount != 1 {
		t.Errorf("expected 1 usage row, got %d", usageCount)
	}
}

func TestGenerateMonthlyPlanCollaboratorFailure(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	testutil.CreateTestBudget(t, db, 30000)
	existing := testutil.CreateTestMealPlan(t, db, "2024-06-10", models.MealTypeBreakfast)

	planner := &stubPlanner{err: apperrors.ErrAIUnavailable}
	svc := NewMealPlanService(db, planner, newFakeScheduler(), NewAIUsageService(db))

	_, err := svc.GenerateMonthlyPlan(context.Background(), "2024-06")
	testutil.AssertAppError(t, err, "AI_UNAVAILABLE")

	// The failed call must not have touched existing plans.
	var survivor models.MealPlan
	if err := db.First(&survivor, existing.ID).Error; err != nil {
		t.Fatalf("existing plan was deleted on collaborator failure: %v", err)
	}

	// The failure is in the call history.
	var history models.AIHistory
	if err := db.First(&history).Error; err != nil {
		t.Fatalf("failed to load history row: %v", err)
	}
	if history.Status != "error" || history.ErrorMessage == "" {
		t.Errorf("expected error history row, got %+v", history)
	}
}

func TestRegenerateDailyMealTouchesOnlyOneRow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	testutil.CreateTestBudget(t, db, 30000)
	breakfast := testutil.CreateTestMealPlan(t, db, "2024-06-15", models.MealTypeBreakfast)
	lunch := testutil.CreateTestMealPlan(t, db, "2024-06-15", models.MealTypeLunch)
	dinner := testutil.CreateTestMealPlan(t, db, "2024-06-15", models.MealTypeDinner)
	other := testutil.CreateTestMealPlan(t, db, "2024-06-16", models.MealTypeLunch)

	planner := &stubPlanner{dailyPlan: &models.MealPlan{
		Date:          "2024-06-15",
		MealType:      models.MealTypeLunch,
		MenuName:      "Replacement Lunch",
		Ingredients:   models.IngredientList{{Name: "noodles", Amount: "200g", Cost: 150}},
		Recipe:        models.StringList{"boil"},
		EstimatedCost: 150,
	}}
	svc := NewMealPlanService(db, planner, newFakeScheduler(), NewAIUsageService(db))

	saved, err := svc.RegenerateDailyMeal(context.Background(), "2024-06-15", models.MealTypeLunch)
	testutil.AssertNoError(t, err)

	if saved.MenuName != "Replacement Lunch" {
		t.Errorf("expected replacement content, got %q", saved.MenuName)
	}
	if saved.ID != lunch.ID {
		t.Errorf("upsert must keep the original row id %d, got %d", lunch.ID, saved.ID)
	}

	// Every other row is untouched.
	for _, untouched := range []*models.MealPlan{breakfast, dinner, other} {
		var row models.MealPlan
		if err := db.First(&row, untouched.ID).Error; err != nil {
			t.Fatalf("row %d disappeared: %v", untouched.ID, err)
		}
		if row.MenuName != untouched.MenuName {
			t.Errorf("row %d changed: %q -> %q", untouched.ID, untouched.MenuName, row.MenuName)
		}
	}

	var count int64
	if err := db.Model(&models.MealPlan{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count plans: %v", err)
	}
	if count != 4 {
		t.Errorf("expected 4 rows, got %d", count)
	}
}

func TestRegenerateDailyMealIsAnUpsert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	testutil.CreateTestBudget(t, db, 30000)

	planner := &stubPlanner{dailyPlan: &models.MealPlan{
		Date:     "2024-06-15",
		MealType: models.MealTypeLunch,
		MenuName: "First Suggestion",
	}}
	svc := NewMealPlanService(db, planner, newFakeScheduler(), NewAIUsageService(db))

	_, err := svc.RegenerateDailyMeal(context.Background(), "2024-06-15", models.MealTypeLunch)
	testutil.AssertNoError(t, err)

	planner.dailyPlan = &models.MealPlan{
		Date:     "2024-06-15",
		MealType: models.MealTypeLunch,
		MenuName: "Second Suggestion",
	}
	saved, err := svc.RegenerateDailyMeal(context.Background(), "2024-06-15", models.MealTypeLunch)
	testutil.AssertNoError(t, err)

	if saved.MenuName != "Second Suggestion" {
		t.Errorf("expected latest content, got %q", saved.MenuName)
	}
	var count int64
	if err := db.Model(&models.MealPlan{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count plans: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly one row for the key, got %d", count)
	}
}

func TestRegenerateTodayMeals(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	testutil.CreateTestBudget(t, db, 30000)
	testutil.CreateTestMealPlan(t, db, "2024-06-15", models.MealTypeBreakfast)

	planner := &stubPlanner{todayPlans: []models.MealPlan{
		{Date: "2024-06-15", MealType: models.MealTypeBreakfast, MenuName: "New Breakfast"},
		{Date: "2024-06-15", MealType: models.MealTypeLunch, MenuName: "New Lunch"},
		{Date: "2024-06-15", MealType: models.MealTypeDinner, MenuName: "New Dinner"},
	}}
	svc := NewMealPlanService(db, planner, newFakeScheduler(), NewAIUsageService(db))

	plans, err := svc.RegenerateTodayMeals(context.Background(), "2024-06-15")
	testutil.AssertNoError(t, err)

	if len(plans) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(plans))
	}
	var count int64
	if err := db.Model(&models.MealPlan{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count plans: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 rows after full-day upsert, got %d", count)
	}
}

func TestGetMonthlyMealsOrdering(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	testutil.CreateTestMealPlan(t, db, "2024-06-20", models.MealTypeBreakfast)
	testutil.CreateTestMealPlan(t, db, "2024-06-05", models.MealTypeLunch)
	testutil.CreateTestMealPlan(t, db, "2024-06-05", models.MealTypeBreakfast)

	svc := NewMealPlanService(db, &stubPlanner{}, newFakeScheduler(), NewAIUsageService(db))

	plans, err := svc.GetMonthlyMeals("2024-06")
	testutil.AssertNoError(t, err)

	if len(plans) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(plans))
	}
	if plans[0].Date != "2024-06-05" || plans[0].MealType != models.MealTypeBreakfast {
		t.Errorf("unexpected first plan: %s %s", plans[0].Date, plans[0].MealType)
	}
	if plans[2].Date != "2024-06-20" {
		t.Errorf("unexpected last plan date: %s", plans[2].Date)
	}
}

func TestSyncTodayNotifications(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	testutil.CreateTestMealTime(t, db, models.MealTypeBreakfast, 7, 0)
	testutil.CreateTestMealTime(t, db, models.MealTypeLunch, 12, 0)
	disabled := models.MealTime{MealType: models.MealTypeDinner, Hour: 18, Minute: 0, Enabled: false}
	if err := db.Create(&disabled).Error; err != nil {
		t.Fatalf("failed to create disabled meal time: %v", err)
	}

	testutil.CreateTestMealPlan(t, db, "2024-06-15", models.MealTypeBreakfast)

	scheduler := newFakeScheduler()
	svc := NewMealPlanService(db, &stubPlanner{}, scheduler, NewAIUsageService(db))

	testutil.AssertNoError(t, svc.SyncTodayNotifications("2024-06-15"))
	if got := len(scheduler.Scheduled()); got != 2 {
		t.Errorf("expected 2 reminders for the enabled slots, got %d", got)
	}

	// A second sync replaces the reminders instead of stacking them.
	testutil.AssertNoError(t, svc.SyncTodayNotifications("2024-06-15"))
	if got := len(scheduler.Scheduled()); got != 2 {
		t.Errorf("expected 2 reminders after re-sync, got %d", got)
	}
}
