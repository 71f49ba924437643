package store

import (
	"context"
	"testing"

	"github.com/erazemk/partsbin/internal/db"
)

func TestStatsEmptyInventory(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	stats, err := Stats(ctx, database)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalItems != 0 {
		t.Errorf("expected 0 items, got %d", stats.TotalItems)
	}
	if len(stats.Categories) != 0 {
		t.Errorf("expected no categories, got %d", len(stats.Categories))
	}
	if stats.TotalQuantity() != 0 {
		t.Errorf("expected 0 total quantity, got %d", stats.TotalQuantity())
	}
}

func TestStatsSumsPerCategory(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	Insert(ctx, database, "Basic Components", "10k resistor", 5, "", 0.02, nil)
	Insert(ctx, database, "Basic Components", "LED red", 3, "", 0.05, nil)

	stats, err := Stats(ctx, database)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalItems != 2 {
		t.Errorf("expected 2 items, got %d", stats.TotalItems)
	}
	if len(stats.Categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(stats.Categories))
	}
	row := stats.Categories[0]
	if row.Category != "Basic Components" || row.Count != 2 || row.TotalQty != 8 {
		t.Errorf("expected Basic Components/2/8, got %s/%d/%d", row.Category, row.Count, row.TotalQty)
	}
}

func TestStatsOrdersByCountDescending(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	Insert(ctx, database, "Sensors & Modules", "PIR", 1, "", 2.0, nil)
	Insert(ctx, database, "Basic Components", "Resistor", 10, "", 0.02, nil)
	Insert(ctx, database, "Basic Components", "Capacitor", 20, "", 0.05, nil)
	Insert(ctx, database, "Basic Components", "Diode", 30, "", 0.03, nil)
	Insert(ctx, database, "Display Modules", "OLED", 2, "", 6.0, nil)
	Insert(ctx, database, "Display Modules", "LCD 16x2", 1, "", 3.0, nil)

	stats, err := Stats(ctx, database)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalItems != 6 {
		t.Errorf("expected 6 items, got %d", stats.TotalItems)
	}

	want := []string{"Basic Components", "Display Modules", "Sensors & Modules"}
	if len(stats.Categories) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(stats.Categories))
	}
	for i, name := range want {
		if stats.Categories[i].Category != name {
			t.Errorf("position %d: expected %q, got %q", i, name, stats.Categories[i].Category)
		}
	}
	if stats.TotalQuantity() != 64 {
		t.Errorf("expected total quantity 64, got %d", stats.TotalQuantity())
	}
}

func TestStatsTiesBreakByCategoryName(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	Insert(ctx, database, "Wires & Connectors", "Jumper pack", 1, "", 2.0, nil)
	Insert(ctx, database, "Basic Components", "Resistor", 1, "", 0.02, nil)

	stats, err := Stats(ctx, database)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if len(stats.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(stats.Categories))
	}
	if stats.Categories[0].Category != "Basic Components" {
		t.Errorf("expected alphabetical tiebreak, got %q first", stats.Categories[0].Category)
	}
}
