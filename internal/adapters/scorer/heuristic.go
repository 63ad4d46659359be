package scorer

import (
	"context"
	"math"

	"github.com/dmonzon/beacon/internal/domain"
)

// Formula weights for the local scorer. The formula is monotone in each of
// its three inputs: more hours, stress or workload never lowers the score.
const (
	weightWorkHours     = 0.3
	weightStressLevel   = 0.4
	weightWorkloadLevel = 0.3

	heuristicConfidence = 0.5

	dominantProbability = 0.7
	residualProbability = 0.1
)

// Heuristic is the deterministic local scorer used when the remote model is
// unreachable. It never fails and completes in constant time, so the
// pipeline always returns an assessment.
type Heuristic struct{}

func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Score implements domain.RiskScorer with a fixed weighted formula.
// Confidence is pinned at 0.5 to signal reduced reliability next to the
// remote model.
func (h *Heuristic) Score(
	_ context.Context,
	userID domain.UserID,
	features domain.FeatureVector,
) (*domain.RiskAssessment, error) {
	raw := features.WorkHours*weightWorkHours +
		features.StressLevel*weightStressLevel +
		features.WorkloadLevel*weightWorkloadLevel
	score := math.Min(1.0, raw/10)

	level := domain.RiskLevelForScore(score)

	probs := make(map[domain.RiskLevel]float64, len(domain.RiskLevels))
	for _, lvl := range domain.RiskLevels {
		if lvl == level {
			probs[lvl] = dominantProbability
		} else {
			probs[lvl] = residualProbability
		}
	}

	return &domain.RiskAssessment{
		UserID:         userID,
		RiskLevel:      level,
		RiskScore:      score,
		Confidence:     heuristicConfidence,
		Probabilities:  probs,
		SourceFeatures: features,
		ScoredBy:       domain.ScoredByHeuristic,
	}, nil
}
