package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// The embedded store keeps list- and object-valued fields as JSON in TEXT
// columns. These types are the codec boundary: they serialize on write and
// deserialize on read, so raw JSON never leaks past the models package.

// StringList is a []string stored as a JSON array.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l, "StringList")
}

// Ingredient is one line of a meal plan's shopping list.
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Cost   int    `json:"cost"`
}

// IngredientList is a []Ingredient stored as a JSON array.
type IngredientList []Ingredient

// TotalCost returns the sum of all ingredient costs.
func (l IngredientList) TotalCost() int {
	total := 0
	for _, ing := range l {
		total += ing.Cost
	}
	return total
}

// Value implements driver.Valuer.
func (l IngredientList) Value() (driver.Value, error) {
	if l == nil {
		l = IngredientList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *IngredientList) Scan(value interface{}) error {
	return scanJSON(value, l, "IngredientList")
}

// Nutrition holds per-meal macros, stored as a JSON object.
type Nutrition struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// Value implements driver.Valuer.
func (n Nutrition) Value() (driver.Value, error) {
	b, err := json.Marshal(n)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (n *Nutrition) Scan(value interface{}) error {
	return scanJSON(value, n, "Nutrition")
}

// scanJSON decodes a TEXT column into dst. NULL decodes to the zero value.
func scanJSON(value, dst interface{}, typeName string) error {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return json.Unmarshal([]byte(v), dst)
	case []byte:
		return json.Unmarshal(v, dst)
	default:
		return fmt.Errorf("cannot scan %T into %s", value, typeName)
	}
}
