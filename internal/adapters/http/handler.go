package httpadapter

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dmonzon/beacon/internal/app/assessment"
	"github.com/dmonzon/beacon/internal/domain"
)

// HealthChecker reports whether the remote scoring service is reachable.
// Optional: a nil checker means the readiness probe only covers this process.
type HealthChecker interface {
	Health(ctx context.Context) error
}

type Server struct {
	svc    *assessment.Service
	health HealthChecker
}

func NewServer(svc *assessment.Service, health HealthChecker) http.Handler {
	s := &Server{svc: svc, health: health}
	mux := http.NewServeMux()

	// /assessments → run the pipeline for one user and window (POST)
	mux.HandleFunc("/assessments", s.handleAssessments)
	mux.HandleFunc("/healthz", s.handleHealthz)

	return chainMiddlewares(mux, withLogging, withCORS, withRequestID)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type assessRequest struct {
	UserID       string              `json:"user_id"`
	WindowStart  time.Time           `json:"window_start"`
	WindowEnd    time.Time           `json:"window_end"`
	SelfReported domain.SelfReported `json:"self_reported"`
}

type assessResponse struct {
	Assessment      assessmentResponse       `json:"assessment"`
	Recommendations []recommendationResponse `json:"recommendations"`
}

type assessmentResponse struct {
	ID            string             `json:"id"`
	UserID        string             `json:"user_id"`
	WindowStart   time.Time          `json:"window_start"`
	WindowEnd     time.Time          `json:"window_end"`
	RiskLevel     string             `json:"risk_level"`
	RiskScore     float64            `json:"risk_score"`
	Confidence    float64            `json:"confidence"`
	Probabilities map[string]float64 `json:"probabilities"`
	Features      map[string]float64 `json:"features"`
	ScoredBy      string             `json:"scored_by"`
	CreatedAt     time.Time          `json:"created_at"`
}

type recommendationResponse struct {
	Priority    string   `json:"priority"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ActionItems []string `json:"action_items"`
	Resources   []string `json:"resources,omitempty"`
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleAssessments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req assessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	if req.UserID == "" {
		badRequest(w, "user_id is required")
		return
	}
	if !req.WindowEnd.After(req.WindowStart) {
		badRequest(w, "window_end must be after window_start")
		return
	}

	out, err := s.svc.Assess(r.Context(), assessment.AssessInput{
		UserID:       domain.UserID(req.UserID),
		WindowStart:  req.WindowStart,
		WindowEnd:    req.WindowEnd,
		SelfReported: req.SelfReported,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, assessResponse{
		Assessment:      toAssessmentResponse(out.Assessment),
		Recommendations: toRecommendationsResponse(out.Recommendations),
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	resp := map[string]string{"status": "ok"}
	if s.health != nil {
		if err := s.health.Health(r.Context()); err != nil {
			// The pipeline still works through the local fallback, so the
			// process stays healthy; the scorer state is informational.
			resp["remote_scorer"] = "unavailable"
		} else {
			resp["remote_scorer"] = "ok"
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// ─────────────────────────────────────────────
// Mapping helpers
// ─────────────────────────────────────────────

func toAssessmentResponse(a *domain.RiskAssessment) assessmentResponse {
	probs := make(map[string]float64, len(a.Probabilities))
	for lvl, p := range a.Probabilities {
		probs[string(lvl)] = p
	}

	return assessmentResponse{
		ID:            string(a.ID),
		UserID:        string(a.UserID),
		WindowStart:   a.WindowStart,
		WindowEnd:     a.WindowEnd,
		RiskLevel:     string(a.RiskLevel),
		RiskScore:     a.RiskScore,
		Confidence:    a.Confidence,
		Probabilities: probs,
		Features:      a.SourceFeatures.AsMap(),
		ScoredBy:      string(a.ScoredBy),
		CreatedAt:     a.CreatedAt,
	}
}

func toRecommendationsResponse(recs []domain.Recommendation) []recommendationResponse {
	out := make([]recommendationResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, recommendationResponse{
			Priority:    string(rec.Priority),
			Category:    string(rec.Category),
			Title:       rec.Title,
			Description: rec.Description,
			ActionItems: rec.ActionItems,
			Resources:   rec.Resources,
		})
	}
	return out
}

// ─────────────────────────────────────────────
// HTTP Helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func internalError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}
