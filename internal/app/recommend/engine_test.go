package recommend_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/dmonzon/beacon/internal/app/recommend"
	"github.com/dmonzon/beacon/internal/domain"
)

// healthyVector has nothing to recommend against: every rule threshold is
// comfortably cleared.
func healthyVector() domain.FeatureVector {
	return domain.FeatureVector{
		WorkloadLevel:     2,
		StressLevel:       2,
		SleepQuality:      8,
		ExerciseFrequency: 4,
		WorkLifeBalance:   0.9,
		SocialInteraction: 6,
	}
}

func TestDefaultRecommendationWhenNothingFires(t *testing.T) {
	e := recommend.NewEngine()

	out := e.Recommend(healthyVector(), domain.RiskLow)

	if len(out) != 1 {
		t.Fatalf("expected exactly one default recommendation, got %d", len(out))
	}
	if out[0].Category != domain.CategoryLifestyle || out[0].Priority != domain.PriorityLow {
		t.Fatalf("unexpected default recommendation: %+v", out[0])
	}
}

func TestRuleEmissionOrder(t *testing.T) {
	e := recommend.NewEngine()

	fv := healthyVector()
	fv.WorkloadLevel = 5
	fv.StressLevel = 5
	fv.SleepQuality = 2

	out := e.Recommend(fv, domain.RiskLow)

	if len(out) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(out))
	}
	// Emission order is evaluation order, never re-sorted by priority.
	wantCategories := []domain.Category{
		domain.CategoryWorkload,
		domain.CategoryStress,
		domain.CategoryHealth,
	}
	for i, want := range wantCategories {
		if out[i].Category != want {
			t.Errorf("recommendation[%d].Category = %v, want %v", i, out[i].Category, want)
		}
	}
}

func TestWorkloadRuleBoundary(t *testing.T) {
	e := recommend.NewEngine()

	fv := healthyVector()
	fv.WorkloadLevel = 3 // not strictly greater, must not fire
	out := e.Recommend(fv, domain.RiskLow)
	for _, rec := range out {
		if rec.Category == domain.CategoryWorkload {
			t.Fatalf("workload rule fired at the threshold value")
		}
	}

	fv.WorkloadLevel = 3.5
	out = e.Recommend(fv, domain.RiskLow)
	if out[0].Category != domain.CategoryWorkload || out[0].Priority != domain.PriorityHigh {
		t.Fatalf("expected a high priority workload recommendation first, got %+v", out[0])
	}
}

func TestHealthRuleFiresOnEitherSignal(t *testing.T) {
	e := recommend.NewEngine()

	lowSleep := healthyVector()
	lowSleep.SleepQuality = 3
	if got := e.Recommend(lowSleep, domain.RiskLow); got[0].Category != domain.CategoryHealth {
		t.Errorf("expected a health recommendation for low sleep, got %+v", got[0])
	}

	lowExercise := healthyVector()
	lowExercise.ExerciseFrequency = 1
	if got := e.Recommend(lowExercise, domain.RiskLow); got[0].Category != domain.CategoryHealth {
		t.Errorf("expected a health recommendation for low exercise, got %+v", got[0])
	}
}

func TestEscalationForHighRisk(t *testing.T) {
	e := recommend.NewEngine()

	out := e.Recommend(healthyVector(), domain.RiskCritical)

	var found bool
	for _, rec := range out {
		if rec.Category == domain.CategoryStress && rec.Priority == domain.PriorityHigh && len(rec.Resources) > 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a support escalation for critical risk, got %+v", out)
	}
}

// For every combination of risk level and feature values, the list is
// non-empty.
func TestRecommendationsNeverEmpty(t *testing.T) {
	e := recommend.NewEngine()

	rapid.Check(t, func(rt *rapid.T) {
		fv := domain.FeatureVector{
			WorkloadLevel:     rapid.Float64Range(0, 5).Draw(rt, "workload"),
			StressLevel:       rapid.Float64Range(0, 5).Draw(rt, "stress"),
			SleepQuality:      rapid.Float64Range(0, 10).Draw(rt, "sleep"),
			ExerciseFrequency: rapid.Float64Range(0, 10).Draw(rt, "exercise"),
			WorkLifeBalance:   rapid.Float64Range(0, 1).Draw(rt, "balance"),
			SocialInteraction: rapid.Float64Range(0, 10).Draw(rt, "social"),
		}
		level := rapid.SampledFrom(domain.RiskLevels).Draw(rt, "level")

		if out := e.Recommend(fv, level); len(out) == 0 {
			rt.Fatalf("Recommend returned an empty list for level=%v features=%+v", level, fv)
		}
	})
}
