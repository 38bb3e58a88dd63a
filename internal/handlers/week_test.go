package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/portretcoach/overdracht-dashboard/internal/models"
	"github.com/portretcoach/overdracht-dashboard/internal/services"
)

func TestWeekHandler_Overview(t *testing.T) {
	calendarService := services.NewCalendarService(setupDocuments(t))
	calendarService.Assign(context.Background(), "2024-01-10", models.ParentA)

	today := func() time.Time { return time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC) }
	handler := NewWeekHandler(calendarService, today)

	recorder := httptest.NewRecorder()
	handler.Overview(recorder, httptest.NewRequest(http.MethodGet, "/week", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
	var response weekResponse
	decodeBody(t, recorder, &response)

	if response.WeekNumber != 2 || response.Parent != models.ParentB || response.ParentName != "Koen" {
		t.Errorf("expected even week 2 for Koen, got %+v", response.WeekAssignment)
	}
	if len(response.Days) != 7 || response.Days[0].Date != "2024-01-08" {
		t.Fatalf("unexpected days %+v", response.Days)
	}
	if !response.Days[2].IsToday || response.Days[2].Parent != models.ParentA {
		t.Errorf("expected Wednesday to be today and assigned to A, got %+v", response.Days[2])
	}
}

func TestWeekHandler_DateOverride(t *testing.T) {
	handler := NewWeekHandler(services.NewCalendarService(setupDocuments(t)), time.Now)

	recorder := httptest.NewRecorder()
	handler.Overview(recorder, httptest.NewRequest(http.MethodGet, "/week?date=2024-12-31", nil))

	var response weekResponse
	decodeBody(t, recorder, &response)
	if response.WeekNumber != 1 || response.Parity != models.ParityOdd {
		t.Errorf("expected odd week 1, got %+v", response.WeekAssignment)
	}
}

func TestWeekHandler_InvalidDate(t *testing.T) {
	handler := NewWeekHandler(services.NewCalendarService(setupDocuments(t)), time.Now)

	recorder := httptest.NewRecorder()
	handler.Overview(recorder, httptest.NewRequest(http.MethodGet, "/week?date=morgen", nil))

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", recorder.Code)
	}
}

func TestWeekHandler_DateOverrideKeepsRealToday(t *testing.T) {
	today := func() time.Time { return time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC) }
	handler := NewWeekHandler(services.NewCalendarService(setupDocuments(t)), today)

	recorder := httptest.NewRecorder()
	handler.Overview(recorder, httptest.NewRequest(http.MethodGet, "/week?date=2024-03-13", nil))

	var response weekResponse
	decodeBody(t, recorder, &response)
	for _, day := range response.Days {
		if day.IsToday != (day.Date == "2024-03-15") {
			t.Errorf("day %s: IsToday=%v", day.Date, day.IsToday)
		}
	}

	recorder = httptest.NewRecorder()
	handler.Overview(recorder, httptest.NewRequest(http.MethodGet, "/week?date=2024-06-05", nil))
	var otherWeek weekResponse
	decodeBody(t, recorder, &otherWeek)
	for _, day := range otherWeek.Days {
		if day.IsToday {
			t.Errorf("expected no day flagged as today in another week, got %s", day.Date)
		}
	}
}
