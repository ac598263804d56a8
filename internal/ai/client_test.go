package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"budgetbites/internal/models"
	"budgetbites/internal/testutil"
)

// geminiEnvelope wraps text in a minimal generateContent response body.
func geminiEnvelope(text string, promptTokens, completionTokens int) string {
	body, _ := json.Marshal(map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"role":  "model",
				"parts": []map[string]string{{"text": text}},
			}},
		},
		"usageMetadata": map[string]int{
			"promptTokenCount":     promptTokens,
			"candidatesTokenCount": completionTokens,
		},
	})
	return string(body)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "test-key", "test-model", 5*time.Second)
}

func testPlanContext() PlanContext {
	return PlanContext{
		Month:  "2025-03",
		Budget: &models.Budget{TotalBudget: 30000, DailyBudget: 1000},
		Preferences: &models.Preference{
			TastePreference: models.TastePreferenceBalanced,
			Allergies:       models.StringList{"peanut"},
		},
	}
}

func TestGenerateMonthlyPlan(t *testing.T) {
	plansJSON := `{"plans": [
		{"date": "2025-03-01", "meal_type": "breakfast", "menu_name": "Oatmeal",
		 "ingredients": [{"name": "oats", "amount": "80g", "cost": 100}, {"name": "milk", "amount": "200ml", "cost": 80}],
		 "recipe": ["boil", "serve"],
		 "nutrition": {"calories": 350, "protein": 12, "fat": 8, "carbs": 55},
		 "cooking_time": 10, "estimated_cost": 180},
		{"date": "2025-03-01", "meal_type": "lunch", "menu_name": "Fried Rice",
		 "ingredients": [{"name": "rice", "amount": "150g", "cost": 120}, {"name": "egg", "amount": "2", "cost": 60}],
		 "recipe": ["fry"],
		 "nutrition": {"calories": 600, "protein": 20, "fat": 15, "carbs": 90},
		 "cooking_time": 15, "estimated_cost": 999}
	]}`

	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, geminiEnvelope(plansJSON, 1200, 3400))
	})

	plans, usage, err := client.GenerateMonthlyPlan(context.Background(), testPlanContext())
	testutil.AssertNoError(t, err)

	if gotPath != "/v1beta/models/test-model:generateContent" {
		t.Errorf("unexpected request path %q", gotPath)
	}
	if len(plans) != 2 {
		t.Fatalf("expected 2 plans, got %d", len(plans))
	}
	if plans[0].MenuName != "Oatmeal" || plans[0].MealType != models.MealTypeBreakfast {
		t.Errorf("unexpected first plan: %+v", plans[0])
	}
	if plans[0].EstimatedCost != 180 {
		t.Errorf("consistent cost should be kept, got %d", plans[0].EstimatedCost)
	}
	// The second plan reports a cost that disagrees with its ingredients;
	// the stored value is recomputed from the ingredient total.
	if plans[1].EstimatedCost != 180 {
		t.Errorf("expected recomputed cost 180, got %d", plans[1].EstimatedCost)
	}
	if usage.PromptTokens != 1200 || usage.CompletionTokens != 3400 {
		t.Errorf("unexpected usage: %+v", usage)
	}
}

func TestGenerateMonthlyPlanFencedJSON(t *testing.T) {
	text := "Here is your plan:\n```json\n{\"plans\": [{\"date\": \"2025-03-01\", \"meal_type\": \"dinner\", \"menu_name\": \"Stew\"}]}\n```\nEnjoy!"
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, geminiEnvelope(text, 0, 0))
	})

	plans, _, err := client.GenerateMonthlyPlan(context.Background(), testPlanContext())
	testutil.AssertNoError(t, err)
	if len(plans) != 1 || plans[0].MenuName != "Stew" {
		t.Errorf("expected one Stew plan, got %+v", plans)
	}
}

func TestGenerateMonthlyPlanMissingPlansArray(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, geminiEnvelope(`{"meals": []}`, 0, 0))
	})

	_, _, err := client.GenerateMonthlyPlan(context.Background(), testPlanContext())
	testutil.AssertAppError(t, err, "AI_BAD_RESPONSE")
}

func TestGenerateMonthlyPlanNoExtractableJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, geminiEnvelope("I cannot help with that.", 0, 0))
	})

	_, _, err := client.GenerateMonthlyPlan(context.Background(), testPlanContext())
	testutil.AssertAppError(t, err, "AI_BAD_RESPONSE")
}

func TestGenerateServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, _, err := client.GenerateMonthlyPlan(context.Background(), testPlanContext())
	testutil.AssertAppError(t, err, "AI_UNAVAILABLE")
}

func TestGenerateUnreachableServer(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := NewClient(server.URL, "test-key", "test-model", time.Second)
	_, _, err := client.GenerateMonthlyPlan(context.Background(), testPlanContext())
	testutil.AssertAppError(t, err, "AI_UNAVAILABLE")
}

func TestRegenerateDailyMeal(t *testing.T) {
	// The payload omits date and meal_type; the client fills them from the
	// request arguments.
	text := `{"menu_name": "Miso Soup",
		"ingredients": [{"name": "tofu", "amount": "100g", "cost": 90}],
		"recipe": ["simmer"],
		"nutrition": {"calories": 120, "protein": 9, "fat": 4, "carbs": 10},
		"cooking_time": 10, "estimated_cost": 90}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, geminiEnvelope(text, 0, 0))
	})

	plan, _, err := client.RegenerateDailyMeal(context.Background(), "2025-03-15", models.MealTypeDinner, testPlanContext())
	testutil.AssertNoError(t, err)

	if plan.Date != "2025-03-15" || plan.MealType != models.MealTypeDinner {
		t.Errorf("expected filled date and meal type, got %s / %s", plan.Date, plan.MealType)
	}
	if plan.MenuName != "Miso Soup" {
		t.Errorf("unexpected menu name %q", plan.MenuName)
	}
}

func TestRegenerateDailyMealEmptyPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, geminiEnvelope(`{}`, 0, 0))
	})

	_, _, err := client.RegenerateDailyMeal(context.Background(), "2025-03-15", models.MealTypeDinner, testPlanContext())
	testutil.AssertAppError(t, err, "AI_BAD_RESPONSE")
}

func TestRegenerateTodayMeals(t *testing.T) {
	text := `{"plans": [
		{"date": "2025-03-15", "meal_type": "breakfast", "menu_name": "Toast"},
		{"date": "2025-03-15", "meal_type": "lunch", "menu_name": "Salad"},
		{"date": "2025-03-15", "meal_type": "dinner", "menu_name": "Curry"}
	]}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, geminiEnvelope(text, 0, 0))
	})

	plans, _, err := client.RegenerateTodayMeals(context.Background(), "2025-03-15", testPlanContext())
	testutil.AssertNoError(t, err)
	if len(plans) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(plans))
	}
	for _, p := range plans {
		if p.Date != "2025-03-15" {
			t.Errorf("expected date 2025-03-15, got %s", p.Date)
		}
	}
}

func TestDaysIn(t *testing.T) {
	cases := []struct {
		month string
		want  int
	}{
		{"2025-01", 31},
		{"2025-02", 28},
		{"2024-02", 29},
		{"2025-04", 30},
		{"not-a-month", 30},
	}
	for _, tc := range cases {
		if got := daysIn(tc.month); got != tc.want {
			t.Errorf("daysIn(%q) = %d, want %d", tc.month, got, tc.want)
		}
	}
}
