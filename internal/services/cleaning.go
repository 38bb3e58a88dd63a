package services

import (
	"context"

	"github.com/portretcoach/overdracht-dashboard/internal/models"
	"github.com/portretcoach/overdracht-dashboard/internal/repository"
)

var DefaultCleaningTasks = []string{
	"Stofzuigen woonkamer",
	"Stofzuigen slaapkamers",
	"Dweilen vloeren",
	"Keuken aanrecht & kookplaat schoonmaken",
	"Afwas / vaatwasser in- en uitruimen",
	"Badkamer schoonmaken (douche, wastafel, toilet)",
	"Toilet schoonmaken",
	"Prullenbakken legen",
	"Wasgoed wassen, drogen en opvouwen",
	"Bedden verschonen",
	"Spiegels en glazen oppervlakken schoonmaken",
	"Eettafel afnemen",
	"Koelkast check (verlopen producten)",
}

// CleaningChecklist is the recurring household chores list. It is seeded
// with DefaultCleaningTasks whenever the stored list is absent or empty.
type CleaningChecklist struct {
	*Checklist
}

func NewCleaningChecklist(documents repository.DocumentRepository) *CleaningChecklist {
	checklist := NewChecklist(documents, repository.KeyCleaningTasks, "Geen schoonmaaktaken.")
	checklist.defaults = DefaultCleaningTasks
	return &CleaningChecklist{Checklist: checklist}
}

func (cleaning *CleaningChecklist) Progress(ctx context.Context) (models.CleaningProgress, error) {
	items, err := cleaning.List(ctx)
	if err != nil {
		return models.CleaningProgress{}, err
	}
	return ProgressOf(items), nil
}

// AllDone reports whether every task is checked. An empty list is never done.
func (cleaning *CleaningChecklist) AllDone(ctx context.Context) (bool, error) {
	progress, err := cleaning.Progress(ctx)
	if err != nil {
		return false, err
	}
	return progress.AllDone, nil
}

// ResetAll unchecks every task so the round can start over.
func (cleaning *CleaningChecklist) ResetAll(ctx context.Context) ([]models.ChecklistItem, error) {
	return cleaning.uncheckAll(ctx)
}

// ProgressOf counts the checked items of a cleaning list.
func ProgressOf(items []models.ChecklistItem) models.CleaningProgress {
	progress := models.CleaningProgress{Total: len(items)}
	for _, item := range items {
		if item.Checked {
			progress.Done++
		}
	}
	progress.AllDone = progress.Total > 0 && progress.Done == progress.Total
	return progress
}
