package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/portretcoach/overdracht-dashboard/internal/models"
	"github.com/portretcoach/overdracht-dashboard/internal/repository"
)

const (
	NotesEmptyMessage = "Nog geen notities."
	createdLayout     = "2006-01-02T15:04:05.000Z07:00"
)

// NotesLog is the dated free-text log. Notes are never edited, only added
// and removed.
type NotesLog struct {
	documents repository.DocumentRepository
	now       func() time.Time
	mu        sync.Mutex
}

func NewNotesLog(documents repository.DocumentRepository) *NotesLog {
	return &NotesLog{documents: documents, now: time.Now}
}

// Add stores a note for date. The date must be a valid YYYY-MM-DD calendar
// date; the note is skipped when text is blank or the date is empty or does
// not parse.
func (notesLog *NotesLog) Add(ctx context.Context, date string, text string) ([]models.Note, error) {
	date = strings.TrimSpace(date)
	text = strings.TrimSpace(text)

	notesLog.mu.Lock()
	defer notesLog.mu.Unlock()

	notes, err := notesLog.load(ctx)
	if err != nil {
		return nil, err
	}
	if text == "" || date == "" {
		return notes, nil
	}
	if _, err := ParseDate(date); err != nil {
		return notes, nil
	}

	notes = append(notes, models.Note{
		ID:      uuid.NewString(),
		Date:    date,
		Text:    text,
		Created: notesLog.now().UTC().Format(createdLayout),
	})
	return notes, notesLog.save(ctx, notes)
}

// Remove deletes the note with id. Unknown ids are ignored.
func (notesLog *NotesLog) Remove(ctx context.Context, id string) ([]models.Note, error) {
	notesLog.mu.Lock()
	defer notesLog.mu.Unlock()

	notes, err := notesLog.load(ctx)
	if err != nil {
		return nil, err
	}
	kept := make([]models.Note, 0, len(notes))
	for _, note := range notes {
		if note.ID != id {
			kept = append(kept, note)
		}
	}
	if len(kept) == len(notes) {
		return kept, nil
	}
	return kept, notesLog.save(ctx, kept)
}

// ListSortedDescending returns the notes newest date first. Notes sharing a
// date keep the order in which they were added.
func (notesLog *NotesLog) ListSortedDescending(ctx context.Context) ([]models.Note, error) {
	notesLog.mu.Lock()
	notes, err := notesLog.load(ctx)
	notesLog.mu.Unlock()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Date > notes[j].Date
	})
	return notes, nil
}

// ListDecorated returns the sorted notes with the name of the parent on duty
// for each note's date.
func (notesLog *NotesLog) ListDecorated(ctx context.Context, settings models.Settings, assignments models.CalendarAssignments) ([]models.NoteView, error) {
	notes, err := notesLog.ListSortedDescending(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.NoteView, len(notes))
	for i, note := range notes {
		parent := assignments[note.Date]
		views[i] = models.NoteView{
			Note:       note,
			Parent:     parent,
			ParentName: settings.ParentName(parent),
		}
	}
	return views, nil
}

func (notesLog *NotesLog) load(ctx context.Context) ([]models.Note, error) {
	notes, found, err := repository.LoadJSONList[models.Note](ctx, notesLog.documents, repository.KeyNotes)
	if err != nil {
		return nil, fmt.Errorf("loading notes: %w", err)
	}
	if !found || notes == nil {
		return []models.Note{}, nil
	}
	return notes, nil
}

func (notesLog *NotesLog) save(ctx context.Context, notes []models.Note) error {
	if err := repository.SaveJSON(ctx, notesLog.documents, repository.KeyNotes, notes); err != nil {
		return fmt.Errorf("saving notes: %w", err)
	}
	return nil
}
