package database

import (
	"budgetbites/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// defaultMealTimes are the notification slots seeded on first run.
var defaultMealTimes = []models.MealTime{
	{MealType: models.MealTypeBreakfast, Hour: 7, Minute: 0, Enabled: true},
	{MealType: models.MealTypeLunch, Hour: 12, Minute: 0, Enabled: true},
	{MealType: models.MealTypeDinner, Hour: 18, Minute: 0, Enabled: true},
}

// SeedDefaults inserts baseline rows for every singleton entity and the
// meal time slots, with insert-if-absent semantics. It runs on every cold
// start and is safe against a pre-existing populated store; the
// all-data-delete flow also calls it to restore defaults after a wipe.
// The budget singleton is deliberately not seeded: "no budget row" is the
// signal that setup has not completed.
func SeedDefaults(db *gorm.DB) error {
	ignoreExisting := clause.OnConflict{DoNothing: true}

	if err := db.Clauses(ignoreExisting).Create(&models.Preference{
		Base:             models.Base{ID: models.SingletonID},
		TastePreference:  models.TastePreferenceBalanced,
		Allergies:        models.StringList{},
		AvoidIngredients: models.StringList{},
	}).Error; err != nil {
		return err
	}

	if err := db.Clauses(ignoreExisting).Create(&models.PremiumStatus{
		Base: models.Base{ID: models.SingletonID},
	}).Error; err != nil {
		return err
	}

	if err := db.Clauses(ignoreExisting).Create(&models.AuthState{
		Base: models.Base{ID: models.SingletonID},
	}).Error; err != nil {
		return err
	}

	if err := db.Clauses(ignoreExisting).Create(&models.BackupSetting{
		Base: models.Base{ID: models.SingletonID},
	}).Error; err != nil {
		return err
	}

	for _, mt := range defaultMealTimes {
		mt := mt
		if err := db.Clauses(ignoreExisting).Create(&mt).Error; err != nil {
			return err
		}
	}

	return nil
}

