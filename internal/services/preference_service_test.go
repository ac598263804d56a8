package services

import (
	"testing"

	"budgetbites/internal/models"
	"budgetbites/internal/testutil"
)

func TestGetPreferencesCreatesDefault(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewPreferenceService(db)

	pref, err := svc.GetPreferences()
	testutil.AssertNoError(t, err)
	if pref.TastePreference != models.TastePreferenceBalanced {
		t.Errorf("expected balanced default, got %s", pref.TastePreference)
	}
	if len(pref.Allergies) != 0 || len(pref.AvoidIngredients) != 0 {
		t.Errorf("expected empty default lists, got %v / %v", pref.Allergies, pref.AvoidIngredients)
	}
}

func TestUpdatePreferences(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewPreferenceService(db)

	taste := models.TastePreferenceRich
	pref, err := svc.UpdatePreferences(PreferenceUpdate{
		TastePreference: &taste,
		Allergies:       models.StringList{"peanut", "shrimp"},
	})
	testutil.AssertNoError(t, err)

	if pref.TastePreference != models.TastePreferenceRich {
		t.Errorf("expected rich, got %s", pref.TastePreference)
	}
	if len(pref.Allergies) != 2 {
		t.Errorf("expected 2 allergies, got %v", pref.Allergies)
	}
}

func TestUpdatePreferencesRejectsUnknownTaste(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewPreferenceService(db)

	taste := models.TastePreference("spicy")
	_, err := svc.UpdatePreferences(PreferenceUpdate{TastePreference: &taste})
	testutil.AssertAppError(t, err, "INVALID_INPUT")
}

func TestUpdatePreferencesEmptyListDoesNotClear(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewPreferenceService(db)

	_, err := svc.UpdatePreferences(PreferenceUpdate{
		Allergies: models.StringList{"peanut"},
	})
	testutil.AssertNoError(t, err)

	// Updating with an empty list leaves the stored list in place.
	pref, err := svc.UpdatePreferences(PreferenceUpdate{
		Allergies: models.StringList{},
	})
	testutil.AssertNoError(t, err)
	if len(pref.Allergies) != 1 || pref.Allergies[0] != "peanut" {
		t.Errorf("empty-list update cleared stored allergies: %v", pref.Allergies)
	}
}
