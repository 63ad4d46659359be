package scorer_test

import (
	"context"
	"testing"

	"pgregory.net/rapid"

	"github.com/dmonzon/beacon/internal/adapters/scorer"
	"github.com/dmonzon/beacon/internal/domain"
)

func heuristicScore(t *rapid.T, fv domain.FeatureVector) float64 {
	out, err := scorer.NewHeuristic().Score(context.Background(), "prop-user", fv)
	if err != nil {
		t.Fatalf("heuristic scorer must never fail: %v", err)
	}
	return out.RiskScore
}

// Increasing any one of the three inputs never decreases the score.
func TestHeuristicMonotonicity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		fv := domain.FeatureVector{
			WorkHours:     rapid.Float64Range(0, 100).Draw(rt, "workHours"),
			StressLevel:   rapid.Float64Range(0, 5).Draw(rt, "stressLevel"),
			WorkloadLevel: rapid.Float64Range(0, 5).Draw(rt, "workloadLevel"),
		}
		base := heuristicScore(rt, fv)

		bumped := fv
		bumped.WorkHours += rapid.Float64Range(0, 50).Draw(rt, "workHoursDelta")
		if heuristicScore(rt, bumped) < base {
			rt.Errorf("score decreased when workHours increased")
		}

		bumped = fv
		bumped.StressLevel += rapid.Float64Range(0, 5).Draw(rt, "stressDelta")
		if heuristicScore(rt, bumped) < base {
			rt.Errorf("score decreased when stressLevel increased")
		}

		bumped = fv
		bumped.WorkloadLevel += rapid.Float64Range(0, 5).Draw(rt, "workloadDelta")
		if heuristicScore(rt, bumped) < base {
			rt.Errorf("score decreased when workloadLevel increased")
		}
	})
}

// Every score in [0,1] lands in exactly one bucket, with the documented
// edges: [0,0.3) low, [0.3,0.6) medium, [0.6,0.8) high, [0.8,1] critical.
func TestBucketingPartition(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		score := rapid.Float64Range(0, 1).Draw(rt, "score")
		level := domain.RiskLevelForScore(score)

		var want domain.RiskLevel
		switch {
		case score < 0.3:
			want = domain.RiskLow
		case score < 0.6:
			want = domain.RiskMedium
		case score < 0.8:
			want = domain.RiskHigh
		default:
			want = domain.RiskCritical
		}

		if level != want {
			rt.Errorf("RiskLevelForScore(%v) = %v, want %v", score, level, want)
		}
	})
}

func TestBucketEdges(t *testing.T) {
	tests := []struct {
		score float64
		want  domain.RiskLevel
	}{
		{0, domain.RiskLow},
		{0.29999, domain.RiskLow},
		{0.3, domain.RiskMedium},
		{0.59999, domain.RiskMedium},
		{0.6, domain.RiskHigh},
		{0.79999, domain.RiskHigh},
		{0.8, domain.RiskCritical},
		{1, domain.RiskCritical},
	}

	for _, tc := range tests {
		if got := domain.RiskLevelForScore(tc.score); got != tc.want {
			t.Errorf("RiskLevelForScore(%v) = %v, want %v", tc.score, got, tc.want)
		}
	}
}
