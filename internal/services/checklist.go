package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/portretcoach/overdracht-dashboard/internal/models"
	"github.com/portretcoach/overdracht-dashboard/internal/repository"
)

// Checklist is an ordered list of checkable items stored as one document
// under its own key. Every command rewrites the whole list and returns it.
type Checklist struct {
	documents    repository.DocumentRepository
	key          string
	emptyMessage string
	defaults     []string
	mu           sync.Mutex
}

func NewChecklist(documents repository.DocumentRepository, key string, emptyMessage string) *Checklist {
	return &Checklist{
		documents:    documents,
		key:          key,
		emptyMessage: emptyMessage,
	}
}

func (checklist *Checklist) Key() string {
	return checklist.key
}

// EmptyMessage is the placeholder shown when the list has no items.
func (checklist *Checklist) EmptyMessage() string {
	return checklist.emptyMessage
}

func (checklist *Checklist) List(ctx context.Context) ([]models.ChecklistItem, error) {
	checklist.mu.Lock()
	defer checklist.mu.Unlock()
	return checklist.load(ctx)
}

// Add appends an unchecked item. Blank text is ignored.
func (checklist *Checklist) Add(ctx context.Context, text string) ([]models.ChecklistItem, error) {
	text = strings.TrimSpace(text)

	checklist.mu.Lock()
	defer checklist.mu.Unlock()

	items, err := checklist.load(ctx)
	if err != nil || text == "" {
		return items, err
	}
	items = append(items, newChecklistItem(text))
	return items, checklist.save(ctx, items)
}

// Toggle flips the checked state of the item with id. Unknown ids are ignored.
func (checklist *Checklist) Toggle(ctx context.Context, id string) ([]models.ChecklistItem, error) {
	checklist.mu.Lock()
	defer checklist.mu.Unlock()

	items, err := checklist.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			items[i].Checked = !items[i].Checked
			return items, checklist.save(ctx, items)
		}
	}
	return items, nil
}

// Remove deletes the item with id. Unknown ids are ignored.
func (checklist *Checklist) Remove(ctx context.Context, id string) ([]models.ChecklistItem, error) {
	checklist.mu.Lock()
	defer checklist.mu.Unlock()

	items, err := checklist.load(ctx)
	if err != nil {
		return nil, err
	}
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return kept, nil
	}
	return kept, checklist.save(ctx, kept)
}

// uncheckAll clears every checked flag in one write.
func (checklist *Checklist) uncheckAll(ctx context.Context) ([]models.ChecklistItem, error) {
	checklist.mu.Lock()
	defer checklist.mu.Unlock()

	items, err := checklist.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Checked = false
	}
	return items, checklist.save(ctx, items)
}

// load reads the stored list. A checklist with defaults writes them when
// the stored list is absent or empty.
func (checklist *Checklist) load(ctx context.Context) ([]models.ChecklistItem, error) {
	items, _, err := repository.LoadJSONList[models.ChecklistItem](ctx, checklist.documents, checklist.key)
	if err != nil {
		return nil, fmt.Errorf("loading checklist %s: %w", checklist.key, err)
	}
	if len(items) == 0 && len(checklist.defaults) > 0 {
		items = make([]models.ChecklistItem, len(checklist.defaults))
		for i, text := range checklist.defaults {
			items[i] = newChecklistItem(text)
		}
		if err := checklist.save(ctx, items); err != nil {
			return nil, err
		}
	}

	if items == nil {
		items = []models.ChecklistItem{}
	}
	return items, nil
}

func (checklist *Checklist) save(ctx context.Context, items []models.ChecklistItem) error {
	if err := repository.SaveJSON(ctx, checklist.documents, checklist.key, items); err != nil {
		return fmt.Errorf("saving checklist %s: %w", checklist.key, err)
	}
	return nil
}

func newChecklistItem(text string) models.ChecklistItem {
	return models.ChecklistItem{ID: uuid.NewString(), Text: text}
}
