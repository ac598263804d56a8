package models

// TastePreference represents the user's preferred seasoning intensity
type TastePreference string

const (
	TastePreferenceLight    TastePreference = "light"
	TastePreferenceBalanced TastePreference = "balanced"
	TastePreferenceRich     TastePreference = "rich"
)

// Valid reports whether t is one of the known taste preferences.
func (t TastePreference) Valid() bool {
	switch t {
	case TastePreferenceLight, TastePreferenceBalanced, TastePreferenceRich:
		return true
	}
	return false
}

// Preference is the singleton row (id=1) of dietary settings used when
// generating meal plans. It is updated in place and never deleted.
type Preference struct {
	Base
	TastePreference  TastePreference `gorm:"not null;default:balanced" json:"taste_preference"`
	Allergies        StringList      `gorm:"type:text" json:"allergies"`
	AvoidIngredients StringList      `gorm:"type:text" json:"avoid_ingredients"`
}
