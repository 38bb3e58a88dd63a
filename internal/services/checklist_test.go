package services_test

import (
	"context"
	"testing"

	"github.com/portretcoach/overdracht-dashboard/internal/repository"
	"github.com/portretcoach/overdracht-dashboard/internal/services"
	"github.com/portretcoach/overdracht-dashboard/internal/testutil"
	"pgregory.net/rapid"
)

func setupChecklist(t *testing.T) *services.Checklist {
	t.Helper()
	return services.NewChecklist(setupDocuments(t), repository.KeyTransferChild1, "Geen notities.")
}

func TestChecklist_EmptyList(t *testing.T) {
	checklist := setupChecklist(t)

	items, err := checklist.List(context.Background())
	if err != nil {
		t.Fatalf("listing: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", items)
	}
	if checklist.EmptyMessage() != "Geen notities." {
		t.Errorf("unexpected empty message %q", checklist.EmptyMessage())
	}
}

func TestChecklist_AddThenList(t *testing.T) {
	checklist := setupChecklist(t)
	ctx := context.Background()

	if _, err := checklist.Add(ctx, "  Gymtas mee  "); err != nil {
		t.Fatalf("adding: %v", err)
	}

	items, _ := checklist.List(ctx)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Text != "Gymtas mee" || items[0].Checked || items[0].ID == "" {
		t.Errorf("unexpected item %+v", items[0])
	}
}

func TestChecklist_AddBlankIsNoop(t *testing.T) {
	checklist := setupChecklist(t)
	ctx := context.Background()

	items, err := checklist.Add(ctx, "   ")
	if err != nil {
		t.Fatalf("adding blank: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
}

func TestChecklist_KeepsInsertionOrder(t *testing.T) {
	checklist := setupChecklist(t)
	ctx := context.Background()

	for _, text := range []string{"een", "twee", "drie"} {
		checklist.Add(ctx, text)
	}

	items, _ := checklist.List(ctx)
	for i, want := range []string{"een", "twee", "drie"} {
		if items[i].Text != want {
			t.Errorf("position %d: expected %q, got %q", i, want, items[i].Text)
		}
	}
}

func TestChecklist_ToggleFlipsOnlyTarget(t *testing.T) {
	checklist := setupChecklist(t)
	ctx := context.Background()

	checklist.Add(ctx, "een")
	items, _ := checklist.Add(ctx, "twee")

	items, err := checklist.Toggle(ctx, items[1].ID)
	if err != nil {
		t.Fatalf("toggling: %v", err)
	}
	if items[0].Checked || !items[1].Checked {
		t.Errorf("expected only second item checked, got %+v", items)
	}

	items, _ = checklist.Toggle(ctx, items[1].ID)
	if items[1].Checked {
		t.Error("expected second toggle to uncheck")
	}
}

func TestChecklist_ToggleUnknownIsNoop(t *testing.T) {
	checklist := setupChecklist(t)
	ctx := context.Background()

	checklist.Add(ctx, "een")
	items, err := checklist.Toggle(ctx, "missing")
	if err != nil {
		t.Fatalf("toggling unknown id: %v", err)
	}
	if len(items) != 1 || items[0].Checked {
		t.Errorf("expected list unchanged, got %+v", items)
	}
}

func TestChecklist_RemoveIsIdempotent(t *testing.T) {
	checklist := setupChecklist(t)
	ctx := context.Background()

	checklist.Add(ctx, "een")
	items, _ := checklist.Add(ctx, "twee")
	removedID := items[0].ID

	items, err := checklist.Remove(ctx, removedID)
	if err != nil {
		t.Fatalf("removing: %v", err)
	}
	if len(items) != 1 || items[0].Text != "twee" {
		t.Fatalf("expected only 'twee' left, got %+v", items)
	}

	again, err := checklist.Remove(ctx, removedID)
	if err != nil {
		t.Fatalf("removing again: %v", err)
	}
	if len(again) != 1 || again[0] != items[0] {
		t.Errorf("expected unchanged list, got %+v", again)
	}
}

func TestChecklist_CollectionsAreIndependent(t *testing.T) {
	documents := setupDocuments(t)
	ctx := context.Background()

	house := services.NewChecklist(documents, repository.KeyHouseNotes, "Geen notities over het huis.")
	pets := services.NewChecklist(documents, repository.KeyTransferPets, "Geen notities.")

	house.Add(ctx, "Lamp in gang kapot")

	items, _ := pets.List(ctx)
	if len(items) != 0 {
		t.Errorf("expected pets list to be unaffected, got %+v", items)
	}
}

func TestChecklist_MalformedDocumentIsEmpty(t *testing.T) {
	documents := setupDocuments(t)
	ctx := context.Background()

	documents.Save(ctx, repository.KeyHouseNotes, `[{"id": 1`)
	checklist := services.NewChecklist(documents, repository.KeyHouseNotes, "")

	items, err := checklist.List(ctx)
	if err != nil {
		t.Fatalf("malformed document should not fail: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty list, got %+v", items)
	}

	items, _ = checklist.Add(ctx, "opnieuw")
	if len(items) != 1 {
		t.Errorf("expected add to recover the list, got %+v", items)
	}
}

func TestChecklist_AddKeepsItemsBesideMalformedOne(t *testing.T) {
	documents := setupDocuments(t)
	ctx := context.Background()

	documents.Save(ctx, repository.KeyHouseNotes, `[{"id":"a","text":"Sleutels"},{"id":1,"text":"kapot"}]`)
	checklist := services.NewChecklist(documents, repository.KeyHouseNotes, "")

	items, err := checklist.Add(ctx, "Post")
	if err != nil {
		t.Fatalf("adding item: %v", err)
	}
	if len(items) != 2 || items[0].Text != "Sleutels" || items[1].Text != "Post" {
		t.Errorf("expected existing item to survive, got %+v", items)
	}

	items, _ = checklist.List(ctx)
	if len(items) != 2 {
		t.Errorf("expected 2 stored items, got %+v", items)
	}
}

func TestChecklist_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		checklist := services.NewChecklist(testutil.NewMemoryDocuments(), "list", "")
		ctx := context.Background()

		texts := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,10}`), 1, 20).Draw(t, "texts")
		for _, text := range texts {
			if _, err := checklist.Add(ctx, text); err != nil {
				t.Fatalf("adding: %v", err)
			}
		}

		items, _ := checklist.List(ctx)
		if len(items) != len(texts) {
			t.Fatalf("expected %d items, got %d", len(texts), len(items))
		}
		seen := make(map[string]bool)
		for _, item := range items {
			if seen[item.ID] {
				t.Fatalf("duplicate id %s", item.ID)
			}
			seen[item.ID] = true
		}

		index := rapid.IntRange(0, len(items)-1).Draw(t, "index")
		toggled, _ := checklist.Toggle(ctx, items[index].ID)
		for i := range toggled {
			if toggled[i].Checked != (i == index) {
				t.Fatalf("toggle changed item %d unexpectedly", i)
			}
		}
	})
}
