package scorer

import (
	"context"

	"github.com/dmonzon/beacon/internal/domain"
	"github.com/dmonzon/beacon/internal/observability"
)

// Fallback composes two scorers: it tries the primary (remote) once and on
// any failure returns the secondary (local) result instead. Callers never
// see a scoring error under normal operation.
type Fallback struct {
	primary   domain.RiskScorer
	secondary domain.RiskScorer
}

func NewFallback(primary, secondary domain.RiskScorer) *Fallback {
	return &Fallback{primary: primary, secondary: secondary}
}

// Score implements domain.RiskScorer.
func (f *Fallback) Score(
	ctx context.Context,
	userID domain.UserID,
	features domain.FeatureVector,
) (*domain.RiskAssessment, error) {
	assessment, err := f.primary.Score(ctx, userID, features)
	if err == nil {
		return assessment, nil
	}

	observability.LoggerFromContext(ctx).Warn("remote scorer unavailable, using local heuristic",
		"user_id", userID,
		"error", err)

	return f.secondary.Score(ctx, userID, features)
}
