package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/portretcoach/overdracht-dashboard/internal/models"
	"github.com/portretcoach/overdracht-dashboard/internal/repository"
)

var ErrInvalidAssignment = errors.New("invalid calendar assignment")

type CalendarService struct {
	documents repository.DocumentRepository
	mu        sync.Mutex
}

func NewCalendarService(documents repository.DocumentRepository) *CalendarService {
	return &CalendarService{documents: documents}
}

// All returns every stored day assignment. Entries with an unparseable date
// or a parent other than A or B are dropped.
func (service *CalendarService) All(ctx context.Context) (models.CalendarAssignments, error) {
	service.mu.Lock()
	defer service.mu.Unlock()
	return service.load(ctx)
}

func (service *CalendarService) load(ctx context.Context) (models.CalendarAssignments, error) {
	var stored map[string]string
	found, err := repository.LoadJSON(ctx, service.documents, repository.KeyCalendar, &stored)
	if err != nil {
		return nil, fmt.Errorf("loading calendar: %w", err)
	}

	assignments := make(models.CalendarAssignments, len(stored))
	if !found {
		return assignments, nil
	}
	for date, value := range stored {
		parent := models.Parent(value)
		if _, err := ParseDate(date); err != nil || !parent.Valid() {
			slog.Warn("skipping calendar entry", "date", date, "parent", value)
			continue
		}
		assignments[date] = parent
	}
	return assignments, nil
}

func (service *CalendarService) save(ctx context.Context, assignments models.CalendarAssignments) error {
	if err := repository.SaveJSON(ctx, service.documents, repository.KeyCalendar, assignments); err != nil {
		return fmt.Errorf("saving calendar: %w", err)
	}
	return nil
}

// GetAssignment reports which parent is on duty for date, if any.
func (service *CalendarService) GetAssignment(ctx context.Context, date string) (models.Parent, bool, error) {
	assignments, err := service.All(ctx)
	if err != nil {
		return "", false, err
	}
	parent, ok := assignments[date]
	return parent, ok, nil
}

// Range returns the assignments between from and to inclusive. An empty
// bound is open.
func (service *CalendarService) Range(ctx context.Context, from, to string) (models.CalendarAssignments, error) {
	assignments, err := service.All(ctx)
	if err != nil {
		return nil, err
	}
	for date := range assignments {
		if (from != "" && date < from) || (to != "" && date > to) {
			delete(assignments, date)
		}
	}
	return assignments, nil
}

func (service *CalendarService) Assign(ctx context.Context, date string, parent models.Parent) (models.CalendarAssignments, error) {
	if _, err := ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: date %q", ErrInvalidAssignment, date)
	}
	if !parent.Valid() {
		return nil, fmt.Errorf("%w: parent %q", ErrInvalidAssignment, parent)
	}

	service.mu.Lock()
	defer service.mu.Unlock()

	assignments, err := service.load(ctx)
	if err != nil {
		return nil, err
	}
	assignments[date] = parent
	if err := service.save(ctx, assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// Clear removes the assignment for date. Clearing an unassigned day is a no-op.
func (service *CalendarService) Clear(ctx context.Context, date string) (models.CalendarAssignments, error) {
	service.mu.Lock()
	defer service.mu.Unlock()

	assignments, err := service.load(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := assignments[date]; !ok {
		return assignments, nil
	}
	delete(assignments, date)
	if err := service.save(ctx, assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// FillWeekFromRotation assigns the rotation parent of day's ISO week to each
// of that week's seven days that has no assignment yet.
func (service *CalendarService) FillWeekFromRotation(ctx context.Context, day time.Time) (models.CalendarAssignments, error) {
	parent := CurrentWeekAssignment(day, models.Settings{}).Parent

	service.mu.Lock()
	defer service.mu.Unlock()

	assignments, err := service.load(ctx)
	if err != nil {
		return nil, err
	}
	changed := false
	for _, date := range WeekDates(day) {
		key := FormatDate(date)
		if _, ok := assignments[key]; ok {
			continue
		}
		assignments[key] = parent
		changed = true
	}
	if changed {
		if err := service.save(ctx, assignments); err != nil {
			return nil, err
		}
	}
	return assignments, nil
}

// WeekStrip describes the seven days of day's week with their assignments.
// IsToday marks the entry matching today, which may lie outside that week.
func (service *CalendarService) WeekStrip(ctx context.Context, day time.Time, today time.Time) ([]models.WeekDay, error) {
	assignments, err := service.All(ctx)
	if err != nil {
		return nil, err
	}

	todayKey := FormatDate(today)
	dates := WeekDates(day)
	days := make([]models.WeekDay, len(dates))
	for i, date := range dates {
		key := FormatDate(date)
		days[i] = models.WeekDay{
			Date:    key,
			Label:   dayLabels[i],
			Day:     date.Day(),
			Parent:  assignments[key],
			IsToday: key == todayKey,
		}
	}
	return days, nil
}
