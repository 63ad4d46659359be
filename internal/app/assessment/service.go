package assessment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmonzon/beacon/internal/app/features"
	"github.com/dmonzon/beacon/internal/app/recommend"
	"github.com/dmonzon/beacon/internal/domain"
	"github.com/dmonzon/beacon/internal/observability"
)

// Service runs the full pipeline for one user and window: fetch signals,
// aggregate, assemble, score, recommend. Each call is stateless and
// independent; concurrent calls share nothing mutable.
type Service struct {
	source     domain.EventSource
	scorer     domain.RiskScorer
	calendar   *features.CalendarAggregator
	comm       *features.CommunicationAggregator
	assembler  *features.Assembler
	recommends *recommend.Engine
	now        func() time.Time
}

func NewService(
	source domain.EventSource,
	scorer domain.RiskScorer,
	classifier domain.EmotionClassifier,
) *Service {
	return &Service{
		source:     source,
		scorer:     scorer,
		calendar:   features.NewCalendarAggregator(),
		comm:       features.NewCommunicationAggregator(classifier),
		assembler:  features.NewAssembler(),
		recommends: recommend.NewEngine(),
		now:        time.Now,
	}
}

type AssessInput struct {
	UserID       domain.UserID
	WindowStart  time.Time
	WindowEnd    time.Time
	SelfReported domain.SelfReported
}

type AssessOutput struct {
	Assessment      *domain.RiskAssessment
	Recommendations []domain.Recommendation
}

// Assess produces a risk assessment for the window [WindowStart, WindowEnd).
// Scoring degradation (remote model down) is handled inside the scorer; the
// only errors surfaced here are event-source failures and feature-vector
// contract violations.
func (s *Service) Assess(ctx context.Context, in AssessInput) (*AssessOutput, error) {
	log := observability.LoggerFromContext(ctx).With(
		"user_id", in.UserID,
		"window_start", in.WindowStart,
		"window_end", in.WindowEnd,
	)
	log.Info("starting assessment")

	if !in.WindowEnd.After(in.WindowStart) {
		return nil, fmt.Errorf("window end must be after window start")
	}

	events, err := s.source.FindEventsByUserAndRange(ctx, in.UserID, in.WindowStart, in.WindowEnd)
	if err != nil {
		log.Error("failed to load calendar events", "error", err)
		return nil, fmt.Errorf("loading calendar events: %w", err)
	}

	messages, err := s.source.FindMessagesByUserAndRange(ctx, in.UserID, in.WindowStart, in.WindowEnd)
	if err != nil {
		log.Error("failed to load email messages", "error", err)
		return nil, fmt.Errorf("loading email messages: %w", err)
	}

	cal := s.calendar.Aggregate(ctx, events, in.WindowStart, in.WindowEnd)
	comm := s.comm.Aggregate(ctx, messages)

	vector, err := s.assembler.Assemble(cal, comm, in.SelfReported)
	if err != nil {
		// Contract violation in the aggregation code, not bad input.
		log.Error("feature vector assembly failed", "error", err)
		return nil, err
	}

	log.Info("feature vector assembled",
		"events", len(events),
		"messages", len(messages))

	result, err := s.scorer.Score(ctx, in.UserID, vector)
	if err != nil {
		log.Error("scoring failed", "error", err)
		return nil, fmt.Errorf("scoring features: %w", err)
	}

	result.ID = domain.AssessmentID(uuid.NewString())
	result.WindowStart = in.WindowStart
	result.WindowEnd = in.WindowEnd
	result.CreatedAt = s.now()

	recs := s.recommends.Recommend(vector, result.RiskLevel)

	log.Info("assessment completed",
		"assessment_id", result.ID,
		"risk_level", result.RiskLevel,
		"risk_score", result.RiskScore,
		"scored_by", result.ScoredBy,
		"recommendations", len(recs))

	return &AssessOutput{
		Assessment:      result,
		Recommendations: recs,
	}, nil
}
