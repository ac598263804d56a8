package models

import "testing"

func TestStringListRoundTrip(t *testing.T) {
	t.Run("values", func(t *testing.T) {
		list := StringList{"egg", "peanut"}
		v, err := list.Value()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.(string) != `["egg","peanut"]` {
			t.Errorf("unexpected encoding: %v", v)
		}

		var decoded StringList
		if err := decoded.Scan(v); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		if len(decoded) != 2 || decoded[0] != "egg" || decoded[1] != "peanut" {
			t.Errorf("unexpected decode: %v", decoded)
		}
	})

	t.Run("nil_encodes_as_empty_array", func(t *testing.T) {
		var list StringList
		v, err := list.Value()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.(string) != "[]" {
			t.Errorf("expected [], got %v", v)
		}
	})

	t.Run("null_column_scans_to_zero_value", func(t *testing.T) {
		var list StringList
		if err := list.Scan(nil); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		if len(list) != 0 {
			t.Errorf("expected empty list, got %v", list)
		}
	})

	t.Run("rejects_malformed_json", func(t *testing.T) {
		var list StringList
		if err := list.Scan("not json"); err == nil {
			t.Error("expected error for malformed JSON")
		}
	})

	t.Run("rejects_unsupported_source_type", func(t *testing.T) {
		var list StringList
		if err := list.Scan(42); err == nil {
			t.Error("expected error for int source")
		}
	})
}

func TestIngredientListRoundTrip(t *testing.T) {
	list := IngredientList{
		{Name: "bread", Amount: "1 slice", Cost: 30},
		{Name: "butter", Amount: "10g", Cost: 20},
	}

	v, err := list.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded IngredientList
	if err := decoded.Scan([]byte(v.(string))); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 ingredients, got %d", len(decoded))
	}
	if decoded[1].Name != "butter" || decoded[1].Cost != 20 {
		t.Errorf("unexpected decode: %+v", decoded[1])
	}
}

func TestIngredientListTotalCost(t *testing.T) {
	list := IngredientList{
		{Name: "rice", Amount: "150g", Cost: 60},
		{Name: "salmon", Amount: "1 fillet", Cost: 180},
		{Name: "miso", Amount: "1 tbsp", Cost: 10},
	}
	if got := list.TotalCost(); got != 250 {
		t.Errorf("expected total 250, got %d", got)
	}

	var empty IngredientList
	if got := empty.TotalCost(); got != 0 {
		t.Errorf("expected total 0 for empty list, got %d", got)
	}
}

func TestNutritionRoundTrip(t *testing.T) {
	n := Nutrition{Calories: 250, Protein: 5, Fat: 8, Carbs: 40}

	v, err := n.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded Nutrition
	if err := decoded.Scan(v); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if decoded != n {
		t.Errorf("expected %+v, got %+v", n, decoded)
	}
}
