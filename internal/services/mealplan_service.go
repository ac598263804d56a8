package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"budgetbites/internal/ai"
	apperrors "budgetbites/internal/errors"
	"budgetbites/internal/logger"
	"budgetbites/internal/models"
	"budgetbites/internal/notify"
)

// reminderPlaceholder is the notification body used when no plan exists
// for the slot yet.
const reminderPlaceholder = "No meal planned yet"

// mealPlanService generates and reads meal plans, and keeps the daily
// reminder schedule in sync with today's plans.
type mealPlanService struct {
	db        *gorm.DB
	planner   ai.Planner
	scheduler notify.Scheduler
	usage     AIUsageServicer

	mu        sync.Mutex
	reminders map[models.MealType]string
}

// NewMealPlanService creates a new MealPlanServicer.
func NewMealPlanService(db *gorm.DB, planner ai.Planner, scheduler notify.Scheduler, usage AIUsageServicer) MealPlanServicer {
	return &mealPlanService{
		db:        db,
		planner:   planner,
		scheduler: scheduler,
		usage:     usage,
		reminders: make(map[models.MealType]string),
	}
}

// loadPlanContext gathers the generation inputs. A missing budget is the
// precondition failure; missing preferences fall back to the defaults.
func (s *mealPlanService) loadPlanContext(month string) (ai.PlanContext, error) {
	var budget models.Budget
	if err := s.db.First(&budget, models.SingletonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ai.PlanContext{}, apperrors.ErrBudgetNotSet
		}
		return ai.PlanContext{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	pref := models.Preference{
		TastePreference:  models.TastePreferenceBalanced,
		Allergies:        models.StringList{},
		AvoidIngredients: models.StringList{},
	}
	err := s.db.First(&pref, models.SingletonID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return ai.PlanContext{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return ai.PlanContext{Month: month, Budget: &budget, Preferences: &pref}, nil
}

// GenerateMonthlyPlan replaces the whole month with a freshly generated
// plan. Existing rows for the month are deleted and the new set inserted
// in one transaction; a collaborator failure leaves the store untouched.
func (s *mealPlanService) GenerateMonthlyPlan(ctx context.Context, month string) ([]models.MealPlan, error) {
	pc, err := s.loadPlanContext(month)
	if err != nil {
		return nil, err
	}

	plans, usage, err := s.planner.GenerateMonthlyPlan(ctx, pc)
	s.usage.RecordCall("generate_monthly_plan", month, fmt.Sprintf("%d plans", len(plans)), usage, err)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("date LIKE ?", month+"%").Delete(&models.MealPlan{}).Error; err != nil {
			return err
		}
		if len(plans) == 0 {
			return nil
		}
		return tx.CreateInBatches(&plans, 100).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("monthly plan generated", "month", month, "plans", len(plans))
	return s.GetMonthlyMeals(month)
}

// RegenerateDailyMeal replaces a single meal, leaving the rest of the
// month untouched.
func (s *mealPlanService) RegenerateDailyMeal(ctx context.Context, date string, mealType models.MealType) (*models.MealPlan, error) {
	if !mealType.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid meal type")
	}
	if len(date) < 7 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid date")
	}

	pc, err := s.loadPlanContext(date[:7])
	if err != nil {
		return nil, err
	}

	plan, usage, err := s.planner.RegenerateDailyMeal(ctx, date, mealType, pc)
	output := ""
	if plan != nil {
		output = plan.MenuName
	}
	s.usage.RecordCall("regenerate_daily_meal", date+" "+string(mealType), output, usage, err)
	if err != nil {
		return nil, err
	}

	if err := s.upsertPlans(s.db, []models.MealPlan{*plan}); err != nil {
		return nil, err
	}

	var saved models.MealPlan
	err = s.db.Where("date = ? AND meal_type = ?", plan.Date, plan.MealType).First(&saved).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &saved, nil
}

// RegenerateTodayMeals replaces all three of a day's meals.
func (s *mealPlanService) RegenerateTodayMeals(ctx context.Context, date string) ([]models.MealPlan, error) {
	if len(date) < 7 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid date")
	}

	pc, err := s.loadPlanContext(date[:7])
	if err != nil {
		return nil, err
	}

	plans, usage, err := s.planner.RegenerateTodayMeals(ctx, date, pc)
	s.usage.RecordCall("regenerate_today_meals", date, fmt.Sprintf("%d plans", len(plans)), usage, err)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.upsertPlans(tx, plans)
	})
	if err != nil {
		return nil, err
	}
	return s.GetMealsForDate(date)
}

// upsertPlans writes plans keyed by (date, meal_type), replacing content
// for keys that already exist.
func (s *mealPlanService) upsertPlans(db *gorm.DB, plans []models.MealPlan) error {
	if len(plans) == 0 {
		return nil
	}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}, {Name: "meal_type"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"menu_name", "ingredients", "recipe", "nutrition",
			"cooking_time", "estimated_cost", "updated_at",
		}),
	}).Create(&plans).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetMealsForDate returns one day's plans.
func (s *mealPlanService) GetMealsForDate(date string) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := s.db.Where("date = ?", date).Order("date, meal_type").Find(&plans).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return plans, nil
}

// GetMonthlyMeals returns a month of plans ordered by date and meal type.
func (s *mealPlanService) GetMonthlyMeals(month string) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := s.db.Where("date LIKE ?", month+"%").Order("date, meal_type").Find(&plans).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return plans, nil
}

// SyncTodayNotifications reconciles the reminder schedule with today's
// plans: every enabled meal time gets exactly one repeating daily reminder
// carrying the menu name, or a placeholder when no plan exists yet.
// Reminders for disabled slots are cancelled.
func (s *mealPlanService) SyncTodayNotifications(date string) error {
	var mealTimes []models.MealTime
	if err := s.db.Find(&mealTimes).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	plans, err := s.GetMealsForDate(date)
	if err != nil {
		return err
	}
	menuByType := make(map[models.MealType]string, len(plans))
	for _, p := range plans {
		menuByType[p.MealType] = p.MenuName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, mt := range mealTimes {
		if id, ok := s.reminders[mt.MealType]; ok {
			s.scheduler.Cancel(id)
			delete(s.reminders, mt.MealType)
		}
		if !mt.Enabled {
			continue
		}

		mealType := mt.MealType
		menu := menuByType[mealType]
		if menu == "" {
			menu = reminderPlaceholder
		}
		id, err := s.scheduler.Schedule(notify.DailySpec(mt.Hour, mt.Minute), func() {
			logger.Get().Infow("meal reminder", "meal_type", mealType, "menu", menu)
		})
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		s.reminders[mealType] = id
	}

	return nil
}
