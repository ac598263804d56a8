package ai

import (
	"fmt"
	"strings"
	"time"

	"budgetbites/internal/models"
)

const planShape = `{
  "date": "YYYY-MM-DD",
  "meal_type": "breakfast" | "lunch" | "dinner",
  "menu_name": "string",
  "ingredients": [{"name": "string", "amount": "string", "cost": number}],
  "recipe": ["step 1", "step 2"],
  "nutrition": {"calories": number, "protein": number, "fat": number, "carbs": number},
  "cooking_time": number,
  "estimated_cost": number
}`

// buildMonthlyPrompt produces the instruction for a full-month plan:
// three meals per day for every day of the month, inside the daily budget.
func buildMonthlyPrompt(pc PlanContext) string {
	var b strings.Builder

	days := daysIn(pc.Month)
	fmt.Fprintf(&b, "You are a meal planning assistant for a household on a fixed food budget.\n")
	fmt.Fprintf(&b, "Create a meal plan for the month %s (%d days).\n", pc.Month, days)
	fmt.Fprintf(&b, "Generate breakfast, lunch and dinner for every day, %d meals in total.\n\n", days*len(models.MealTypes))

	writeBudget(&b, pc.Budget)
	writePreferences(&b, pc.Preferences)

	fmt.Fprintf(&b, "\nRespond with JSON only, in this exact shape:\n")
	fmt.Fprintf(&b, "{\"plans\": [%s]}\n", planShape)
	fmt.Fprintf(&b, "Costs are integers in the smallest currency unit. ")
	fmt.Fprintf(&b, "estimated_cost must equal the sum of the ingredient costs.\n")

	return b.String()
}

// buildDailyPrompt produces the instruction for a single replacement meal.
func buildDailyPrompt(date string, mealType models.MealType, pc PlanContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a meal planning assistant for a household on a fixed food budget.\n")
	fmt.Fprintf(&b, "Suggest a new %s for %s, different from a typical everyday choice.\n\n", mealType, date)

	writeBudget(&b, pc.Budget)
	writePreferences(&b, pc.Preferences)

	fmt.Fprintf(&b, "\nRespond with a single JSON object only, in this exact shape:\n%s\n", planShape)
	fmt.Fprintf(&b, "Use %q for date and %q for meal_type. ", date, mealType)
	fmt.Fprintf(&b, "Costs are integers in the smallest currency unit.\n")

	return b.String()
}

// buildTodayPrompt produces the instruction for regenerating one full day.
func buildTodayPrompt(date string, pc PlanContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a meal planning assistant for a household on a fixed food budget.\n")
	fmt.Fprintf(&b, "Create a fresh plan for %s: one breakfast, one lunch and one dinner.\n\n", date)

	writeBudget(&b, pc.Budget)
	writePreferences(&b, pc.Preferences)

	fmt.Fprintf(&b, "\nRespond with JSON only, in this exact shape:\n")
	fmt.Fprintf(&b, "{\"plans\": [%s]}\n", planShape)
	fmt.Fprintf(&b, "All three plans use the date %q. Costs are integers in the smallest currency unit.\n", date)

	return b.String()
}

func writeBudget(b *strings.Builder, budget *models.Budget) {
	if budget == nil {
		return
	}
	fmt.Fprintf(b, "Monthly food budget: %d. Daily budget for all three meals combined: %d.\n",
		budget.TotalBudget, budget.DailyBudget)
}

func writePreferences(b *strings.Builder, pref *models.Preference) {
	if pref == nil {
		return
	}
	fmt.Fprintf(b, "Taste preference: %s.\n", pref.TastePreference)
	if len(pref.Allergies) > 0 {
		fmt.Fprintf(b, "Strictly exclude these allergens: %s.\n", strings.Join(pref.Allergies, ", "))
	}
	if len(pref.AvoidIngredients) > 0 {
		fmt.Fprintf(b, "Avoid these ingredients: %s.\n", strings.Join(pref.AvoidIngredients, ", "))
	}
}

// daysIn returns the number of days in a YYYY-MM month, or 30 when the
// month cannot be parsed. Validation upstream keeps the fallback rare.
func daysIn(month string) int {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return 30
	}
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
