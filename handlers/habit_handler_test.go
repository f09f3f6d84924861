package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"habitTrackerAPI/middleware"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// entriesRequest builds an authenticated GET /habits/1/entries request
// with the given query string. Validation failures must surface before
// the service is touched, so the handler under test carries none.
func entriesRequest(query string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/habits/1/entries"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, uuid.New())
	return req.WithContext(ctx)
}

func TestGetTrackingEntriesRejectsHalfOpenRange(t *testing.T) {
	h := NewHabitHandler(nil)

	cases := []struct {
		name  string
		query string
	}{
		{"start without end", "?start=2026-02-01"},
		{"end without start", "?end=2026-02-28"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.GetTrackingEntries(rr, entriesRequest(tc.query))
			if rr.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rr.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestGetTrackingEntriesRejectsMalformedDates(t *testing.T) {
	h := NewHabitHandler(nil)

	rr := httptest.NewRecorder()
	h.GetTrackingEntries(rr, entriesRequest("?date=02-10-2026"))
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}
