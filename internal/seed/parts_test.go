package seed

import (
	"context"
	"testing"

	"github.com/erazemk/partsbin/internal/db"
	"github.com/erazemk/partsbin/internal/model"
	"github.com/erazemk/partsbin/internal/store"
)

func TestDatasetsUseKnownCategories(t *testing.T) {
	for _, set := range [][]Part{NewParts, OldParts} {
		for _, part := range set {
			if !model.ValidCategory(part.Category) {
				t.Errorf("part %q has unknown category %q", part.Name, part.Category)
			}
			if part.Name == "" {
				t.Error("found part with empty name")
			}
			if part.Quantity < 0 || part.Price < 0 {
				t.Errorf("part %q has negative quantity or price", part.Name)
			}
		}
	}
}

func TestBySet(t *testing.T) {
	newSet, ok := BySet("new")
	if !ok || len(newSet) != len(NewParts) {
		t.Errorf("BySet(new): ok=%v len=%d", ok, len(newSet))
	}

	oldSet, ok := BySet("old")
	if !ok || len(oldSet) != len(OldParts) {
		t.Errorf("BySet(old): ok=%v len=%d", ok, len(oldSet))
	}

	all, ok := BySet("all")
	if !ok || len(all) != len(NewParts)+len(OldParts) {
		t.Errorf("BySet(all): ok=%v len=%d", ok, len(all))
	}

	if _, ok := BySet("bogus"); ok {
		t.Error("expected unknown set name to be rejected")
	}
}

func TestApplyInsertsInOrder(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	count, err := Apply(ctx, database, OldParts)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if count != len(OldParts) {
		t.Errorf("expected %d inserts, got %d", len(OldParts), count)
	}

	// Insert order shows up as id order.
	first, err := store.GetByID(ctx, database, 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if first == nil || first.Name != OldParts[0].Name {
		t.Errorf("expected first row %q, got %+v", OldParts[0].Name, first)
	}

	last, _ := store.GetByID(ctx, database, int64(len(OldParts)))
	if last == nil || last.Name != OldParts[len(OldParts)-1].Name {
		t.Errorf("expected last row %q, got %+v", OldParts[len(OldParts)-1].Name, last)
	}

	// Seeded rows never carry images.
	if first.HasImage {
		t.Error("expected seeded part to have no image")
	}
}

func TestApplyAppendsDuplicatesOnRerun(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	Apply(ctx, database, OldParts)
	Apply(ctx, database, OldParts)

	items, err := store.ListAll(ctx, database)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(items) != 2*len(OldParts) {
		t.Errorf("expected %d rows after double apply, got %d", 2*len(OldParts), len(items))
	}
}
