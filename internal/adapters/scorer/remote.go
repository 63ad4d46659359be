package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dmonzon/beacon/internal/domain"
)

// DefaultTimeout bounds a single remote scoring attempt.
const DefaultTimeout = 10 * time.Second

// Remote is the HTTP client for the scoring service's /predict endpoint.
// One Score call makes exactly one attempt; any failure is reported as an
// error for the composing scorer to handle, never retried here.
type Remote struct {
	baseURL      string
	modelVersion string
	timeout      time.Duration
	client       *http.Client
}

func NewRemote(baseURL, modelVersion string, timeout time.Duration) *Remote {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Remote{
		baseURL:      baseURL,
		modelVersion: modelVersion,
		timeout:      timeout,
		client:       &http.Client{},
	}
}

type predictRequest struct {
	EmployeeID string             `json:"employeeId"`
	Features   map[string]float64 `json:"features"`
	Metadata   predictMetadata    `json:"metadata"`
}

type predictMetadata struct {
	ModelVersion string `json:"modelVersion"`
}

type predictResponse struct {
	RiskLevel     string             `json:"riskLevel"`
	RiskScore     float64            `json:"riskScore"`
	Confidence    float64            `json:"confidence"`
	Probabilities map[string]float64 `json:"probabilities"`
}

// Score implements domain.RiskScorer against the remote model.
func (r *Remote) Score(
	ctx context.Context,
	userID domain.UserID,
	features domain.FeatureVector,
) (*domain.RiskAssessment, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	body, err := json.Marshal(predictRequest{
		EmployeeID: string(userID),
		Features:   features.AsMap(),
		Metadata:   predictMetadata{ModelVersion: r.modelVersion},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling scoring service: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("scoring service returned status %d", res.StatusCode)
	}

	var parsed predictResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding predict response: %w", err)
	}

	level, err := parseRiskLevel(parsed.RiskLevel)
	if err != nil {
		return nil, err
	}
	if parsed.RiskScore < 0 || parsed.RiskScore > 1 {
		return nil, fmt.Errorf("scoring service returned out-of-range score %v", parsed.RiskScore)
	}

	probs := make(map[domain.RiskLevel]float64, len(parsed.Probabilities))
	for k, v := range parsed.Probabilities {
		lvl, err := parseRiskLevel(k)
		if err != nil {
			return nil, err
		}
		probs[lvl] = v
	}

	return &domain.RiskAssessment{
		UserID:         userID,
		RiskLevel:      level,
		RiskScore:      parsed.RiskScore,
		Confidence:     parsed.Confidence,
		Probabilities:  probs,
		SourceFeatures: features,
		ScoredBy:       domain.ScoredByRemote,
	}, nil
}

// Health probes the scoring service's /health endpoint. Used by the
// readiness surface, not by Score.
func (r *Remote) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("building health request: %w", err)
	}

	res, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling scoring service health: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("scoring service health returned status %d", res.StatusCode)
	}
	return nil
}

func parseRiskLevel(s string) (domain.RiskLevel, error) {
	switch domain.RiskLevel(s) {
	case domain.RiskLow, domain.RiskMedium, domain.RiskHigh, domain.RiskCritical:
		return domain.RiskLevel(s), nil
	default:
		return "", fmt.Errorf("scoring service returned unknown risk level %q", s)
	}
}
