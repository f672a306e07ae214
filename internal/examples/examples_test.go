package examples

import (
	"strings"
	"testing"

	"gsearch/internal/models"
	"gsearch/internal/query"
)

func TestAllPresetsGenerateQueries(t *testing.T) {
	all := All()
	if len(all) != 20 {
		t.Fatalf("Expected 20 presets, got %d", len(all))
	}

	seen := make(map[string]bool)
	for _, ex := range all {
		if ex.Title == "" {
			t.Error("Preset with empty title")
		}
		if seen[ex.Title] {
			t.Errorf("Duplicate preset title %q", ex.Title)
		}
		seen[ex.Title] = true

		if q := query.Build(ex.Criteria); q == "" {
			t.Errorf("Preset %q generates an empty query", ex.Title)
		}
	}
}

func TestPresetDetails(t *testing.T) {
	all := All()

	laptop := all[2].Criteria
	if got := query.Build(laptop); !strings.Contains(got, "$500..$1000") {
		t.Errorf("Price-range preset query = %q, expected $500..$1000 token", got)
	}

	images := all[13].Criteria
	if images.SearchType != models.SearchTypeImages {
		t.Errorf("Image preset search type = %q", images.SearchType)
	}
	if !strings.Contains(query.Params(images), "&tbm=isch") {
		t.Error("Image preset params missing tbm=isch")
	}

	historical := all[17].Criteria
	got := query.Build(historical)
	if !strings.Contains(got, "after:1939-01-01") || !strings.Contains(got, "before:1945-12-31") {
		t.Errorf("Historical preset query = %q, expected both date operators", got)
	}
}
