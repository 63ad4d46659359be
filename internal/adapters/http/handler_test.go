package httpadapter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmonzon/beacon/internal/adapters/emotion"
	httpadapter "github.com/dmonzon/beacon/internal/adapters/http"
	"github.com/dmonzon/beacon/internal/adapters/scorer"
	"github.com/dmonzon/beacon/internal/adapters/storage/memory"
	"github.com/dmonzon/beacon/internal/app/assessment"
	"github.com/dmonzon/beacon/internal/domain"
)

type downChecker struct{}

func (downChecker) Health(context.Context) error { return errors.New("unreachable") }

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	store := memory.NewEventStore()
	stress := 4
	store.AddEvent(domain.CalendarEvent{
		UserID:      "emp-1",
		StartTime:   time.Date(2025, 1, 7, 9, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2025, 1, 7, 10, 0, 0, 0, time.UTC),
		Type:        domain.EventMeeting,
		StressLevel: &stress,
	})

	svc := assessment.NewService(
		store,
		scorer.NewHeuristic(),
		emotion.NewKeyword(emotion.DefaultLexicon()),
	)
	return httpadapter.NewServer(svc, downChecker{})
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	// An unreachable scorer does not fail readiness, the fallback covers it.
	if body["status"] != "ok" || body["remote_scorer"] != "unavailable" {
		t.Fatalf("unexpected health body: %v", body)
	}
}

func TestPostAssessment(t *testing.T) {
	srv := newTestServer(t)

	payload := []byte(`{
		"user_id": "emp-1",
		"window_start": "2025-01-06T00:00:00Z",
		"window_end": "2025-01-13T00:00:00Z",
		"self_reported": {"sleep_quality": 8, "exercise_frequency": 4, "social_interaction": 6}
	}`)
	req := httptest.NewRequest(http.MethodPost, "/assessments", bytes.NewReader(payload))
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var body struct {
		Assessment struct {
			ID        string             `json:"id"`
			RiskLevel string             `json:"risk_level"`
			Features  map[string]float64 `json:"features"`
		} `json:"assessment"`
		Recommendations []struct {
			Category string `json:"category"`
		} `json:"recommendations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}

	if body.Assessment.ID == "" {
		t.Error("expected an assessment id")
	}
	if len(body.Assessment.Features) != 26 {
		t.Errorf("features carry %d keys, want 26", len(body.Assessment.Features))
	}
	if len(body.Recommendations) == 0 {
		t.Error("expected at least one recommendation")
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a request id header")
	}
}

func TestPostAssessmentValidation(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{`},
		{"missing user", `{"window_start":"2025-01-06T00:00:00Z","window_end":"2025-01-13T00:00:00Z"}`},
		{"inverted window", `{"user_id":"emp-1","window_start":"2025-01-13T00:00:00Z","window_end":"2025-01-06T00:00:00Z"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/assessments", bytes.NewReader([]byte(tc.body)))
			w := httptest.NewRecorder()

			srv.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodDelete, "/assessments", nil)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}
