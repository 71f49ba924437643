package model

import "testing"

func TestValidCategory(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"Sensors & Modules", true},
		{"Other", true},
		{"Tools & Accessories", true},
		// Lookup is exact, not fuzzy.
		{"sensors & modules", false},
		{"Sensors", false},
		{"", false},
		{"Crystals", false},
	}

	for _, tt := range tests {
		got := ValidCategory(tt.name)
		if got != tt.expected {
			t.Errorf("ValidCategory(%q) = %v, want %v", tt.name, got, tt.expected)
		}
	}
}

func TestCategoriesList(t *testing.T) {
	if len(Categories) != 12 {
		t.Fatalf("expected 12 categories, got %d", len(Categories))
	}
	if Categories[len(Categories)-1] != "Other" {
		t.Errorf("expected 'Other' as the catch-all last entry, got %q", Categories[len(Categories)-1])
	}

	seen := make(map[string]bool)
	for _, c := range Categories {
		if c == "" {
			t.Error("empty category label")
		}
		if seen[c] {
			t.Errorf("duplicate category label %q", c)
		}
		seen[c] = true
	}
}

func TestStatsTotalQuantity(t *testing.T) {
	s := &Stats{
		TotalItems: 3,
		Categories: []CategoryStat{
			{Category: "Sensors & Modules", Count: 2, TotalQty: 8},
			{Category: "Other", Count: 1, TotalQty: 3},
		},
	}
	if got := s.TotalQuantity(); got != 11 {
		t.Errorf("TotalQuantity() = %d, want 11", got)
	}

	empty := &Stats{}
	if got := empty.TotalQuantity(); got != 0 {
		t.Errorf("TotalQuantity() on empty stats = %d, want 0", got)
	}
}
