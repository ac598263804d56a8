package services

import (
	"context"

	"budgetbites/internal/ai"
	"budgetbites/internal/models"
	"budgetbites/internal/pagination"
)

// BudgetStatus summarizes one month of spending against the configured
// budget. All fields are zero when no budget has been set.
type BudgetStatus struct {
	TotalBudget int     `json:"total_budget"`
	DailyBudget int     `json:"daily_budget"`
	Spent       int     `json:"spent"`
	Remaining   int     `json:"remaining"`
	Percentage  float64 `json:"percentage"`
	IsSet       bool    `json:"is_set"`
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	GetCurrentBudget() (*models.Budget, error)
	SetBudget(total int) (*models.Budget, error)
	UpdateBudget(total int) (*models.Budget, error)
	GetBudgetStatus(month string) (*BudgetStatus, error)
}

// PreferenceUpdate carries a partial preference update. The taste
// preference is applied when non-nil; the two lists are applied only when
// non-empty, so an empty list never clears stored values (see DESIGN.md).
type PreferenceUpdate struct {
	TastePreference  *models.TastePreference
	Allergies        models.StringList
	AvoidIngredients models.StringList
}

// PreferenceServicer defines the contract for dietary preferences.
type PreferenceServicer interface {
	GetPreferences() (*models.Preference, error)
	UpdatePreferences(update PreferenceUpdate) (*models.Preference, error)
}

// MealPlanServicer defines the contract for plan generation and reads.
type MealPlanServicer interface {
	GenerateMonthlyPlan(ctx context.Context, month string) ([]models.MealPlan, error)
	RegenerateDailyMeal(ctx context.Context, date string, mealType models.MealType) (*models.MealPlan, error)
	RegenerateTodayMeals(ctx context.Context, date string) ([]models.MealPlan, error)
	GetMealsForDate(date string) ([]models.MealPlan, error)
	GetMonthlyMeals(month string) ([]models.MealPlan, error)
	SyncTodayNotifications(date string) error
}

// MealLogServicer defines the contract for completed-meal records.
type MealLogServicer interface {
	SaveMealLog(log *models.MealLog) (*models.MealLog, error)
	GetMonthlyLogs(month string) ([]models.MealLog, error)
	GetMonthlySpend(month string) (int, error)
}

// MealTimeServicer defines the contract for notification time slots.
type MealTimeServicer interface {
	GetMealTimes() ([]models.MealTime, error)
	UpdateMealTime(mealType models.MealType, hour, minute int) (*models.MealTime, error)
	SetMealTimeEnabled(mealType models.MealType, enabled bool) (*models.MealTime, error)
}

// ExpenseServicer defines the contract for ad-hoc expense tracking.
type ExpenseServicer interface {
	AddExpense(date string, amount int, category, description string) (*models.Expense, error)
	GetMonthlyExpenses(month string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	DeleteExpense(id uint) error
}

// PremiumServicer defines the contract for the billing mirror.
type PremiumServicer interface {
	GetPremiumStatus() (*models.PremiumStatus, error)
	UpdatePremiumStatus(isPremium bool, subscriptionID, expiresAt *string) (*models.PremiumStatus, error)
}

// Session is an issued device-session token with its subject.
type Session struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

// AuthServicer defines the contract for the identity mirror and local
// device sessions.
type AuthServicer interface {
	GetAuthState() (*models.AuthState, error)
	SignIn(userID, email, accessToken, refreshToken string) (*Session, error)
	SignOut() error
}

// SettingServicer defines the contract for app-level settings operations.
type SettingServicer interface {
	DeleteAllData() error
}

// AIUsageServicer records collaborator calls for cost tracking and debugging.
type AIUsageServicer interface {
	RecordCall(action, input, output string, usage ai.Usage, callErr error)
	GetMonthlyUsage(month string) ([]models.AIUsage, error)
	GetHistory(page pagination.PageRequest) (*pagination.PageResponse[models.AIHistory], error)
}
