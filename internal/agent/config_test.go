package agent

import (
	"reflect"
	"testing"
)

func TestMergeDefaultWinsWhenOverrideAbsent(t *testing.T) {
	defaultTeam := []any{"equipo-a", "equipo-b"}
	merged := Merge(map[string]any{"team": defaultTeam}, map[string]any{})
	if !reflect.DeepEqual(merged["team"], defaultTeam) {
		t.Fatalf("expected default team, got %v", merged["team"])
	}
}

func TestMergeFalsyOverrideFallsBackToDefault(t *testing.T) {
	defaultTeam := []any{"equipo-a", "equipo-b"}

	cases := []struct {
		name     string
		override any
	}{
		{"empty slice", []any{}},
		{"empty string", ""},
		{"nil", nil},
		{"zero int", 0},
		{"zero float", float64(0)},
		{"false", false},
		{"empty map", map[string]any{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			merged := Merge(map[string]any{"team": defaultTeam}, map[string]any{"team": tc.override})
			if !reflect.DeepEqual(merged["team"], defaultTeam) {
				t.Fatalf("falsy override %v should fall back to default, got %v", tc.override, merged["team"])
			}
		})
	}
}

func TestMergeTruthyOverrideWins(t *testing.T) {
	customTeam := []any{"equipo-propio"}
	merged := Merge(map[string]any{"team": []any{"equipo-a"}}, map[string]any{"team": customTeam})
	if !reflect.DeepEqual(merged["team"], customTeam) {
		t.Fatalf("expected custom team, got %v", merged["team"])
	}
}

func TestMergeUnknownOverrideKeysPassThrough(t *testing.T) {
	merged := Merge(map[string]any{"team": "x"}, map[string]any{"extra": "y", "empty": ""})
	if merged["extra"] != "y" {
		t.Fatalf("override-only key should pass through, got %v", merged["extra"])
	}
	// Pass-through keys are not subject to the falsy rule; there is no
	// default to fall back to.
	if merged["empty"] != "" {
		t.Fatalf("override-only falsy key should pass through, got %v", merged["empty"])
	}
}

func TestMergeIsShallow(t *testing.T) {
	defaults := map[string]any{"stats": map[string]any{"clicks": 10, "views": 20}}
	override := map[string]any{"stats": map[string]any{"clicks": 3}}

	merged := Merge(defaults, override)
	stats, ok := merged["stats"].(map[string]any)
	if !ok {
		t.Fatalf("expected map, got %T", merged["stats"])
	}
	if stats["clicks"] != 3 {
		t.Fatalf("override object should replace default, got %v", stats["clicks"])
	}
	if _, kept := stats["views"]; kept {
		t.Fatalf("nested default keys must not survive a shallow replace")
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	defaults := map[string]any{"team": "a"}
	override := map[string]any{"team": "b"}
	Merge(defaults, override)
	if defaults["team"] != "a" || override["team"] != "b" {
		t.Fatalf("inputs mutated: defaults=%v override=%v", defaults, override)
	}
}
