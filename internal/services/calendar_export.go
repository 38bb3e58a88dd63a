package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	ical "github.com/arran4/golang-ical"
)

// CalendarExporter renders the duty calendar and the notes log as an
// iCalendar feed with all-day events.
type CalendarExporter struct {
	settings *SettingsService
	calendar *CalendarService
	notes    *NotesLog
	now      func() time.Time
}

func NewCalendarExporter(settings *SettingsService, calendar *CalendarService, notes *NotesLog) *CalendarExporter {
	return &CalendarExporter{
		settings: settings,
		calendar: calendar,
		notes:    notes,
		now:      time.Now,
	}
}

func (exporter *CalendarExporter) Export(ctx context.Context, calendarName string) (string, error) {
	settings, err := exporter.settings.Get(ctx)
	if err != nil {
		return "", err
	}
	assignments, err := exporter.calendar.All(ctx)
	if err != nil {
		return "", err
	}
	notes, err := exporter.notes.ListSortedDescending(ctx)
	if err != nil {
		return "", err
	}

	stamp := exporter.now().UTC()

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(fmt.Sprintf("-//%s//%s//NL", calendarName, calendarName))
	cal.SetXWRCalName(calendarName)

	dates := make([]string, 0, len(assignments))
	for date := range assignments {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		day, err := ParseDate(date)
		if err != nil {
			continue
		}
		event := cal.AddEvent("duty-" + date + "@overdracht")
		event.SetSummary(settings.ParentName(assignments[date]))
		event.SetAllDayStartAt(day)
		event.SetAllDayEndAt(day.AddDate(0, 0, 1))
		event.SetDtStampTime(stamp)
	}

	for _, note := range notes {
		day, err := ParseDate(note.Date)
		if err != nil {
			slog.Debug("skipping note in export", "id", note.ID, "date", note.Date)
			continue
		}
		event := cal.AddEvent("note-" + note.ID + "@overdracht")
		event.SetSummary(note.Text)
		if parentName := settings.ParentName(assignments[note.Date]); parentName != "" {
			event.SetDescription("Dienst: " + parentName)
		}
		event.SetAllDayStartAt(day)
		event.SetAllDayEndAt(day.AddDate(0, 0, 1))
		event.SetDtStampTime(stamp)
	}

	return cal.Serialize(), nil
}
