package services

import (
	"time"

	"github.com/portretcoach/overdracht-dashboard/internal/models"
)

const DateLayout = "2006-01-02"

var dayLabels = [7]string{"Ma", "Di", "Wo", "Do", "Vr", "Za", "Zo"}

func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// ISOWeekNumber returns the ISO-8601 week of the calendar date shown by
// date in its own location. Week 1 is the week containing the first Thursday
// of the year, so late December can fall in week 1 and early January in
// week 52 or 53.
func ISOWeekNumber(date time.Time) int {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	_, week := day.ISOWeek()
	return week
}

// CurrentWeekAssignment applies the default rotation: odd weeks belong to
// parent A, even weeks to parent B. Per-day calendar assignments do not
// affect it.
func CurrentWeekAssignment(today time.Time, settings models.Settings) models.WeekAssignment {
	week := ISOWeekNumber(today)
	assignment := models.WeekAssignment{WeekNumber: week}
	if week%2 != 0 {
		assignment.Parity = models.ParityOdd
		assignment.Parent = models.ParentA
	} else {
		assignment.Parity = models.ParityEven
		assignment.Parent = models.ParentB
	}
	assignment.ParentName = settings.ParentName(assignment.Parent)
	return assignment
}

// MondayOfWeek returns midnight of the Monday starting the week that
// contains today. Sunday is the last day of its week.
func MondayOfWeek(today time.Time) time.Time {
	weekday := int(today.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return time.Date(today.Year(), today.Month(), today.Day()-(weekday-1), 0, 0, 0, 0, today.Location())
}

// WeekDates returns the Monday of today's week followed by the six days
// after it.
func WeekDates(today time.Time) []time.Time {
	monday := MondayOfWeek(today)
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return dates
}
