package domain

import (
	"context"
	"time"
)

// EventSource supplies a user's raw behavioral signals for a window.
// Calendar events must come back sorted ascending by StartTime; no ordering
// is guaranteed for messages.
type EventSource interface {
	FindEventsByUserAndRange(ctx context.Context, userID UserID, start, end time.Time) ([]CalendarEvent, error)
	FindMessagesByUserAndRange(ctx context.Context, userID UserID, start, end time.Time) ([]EmailMessage, error)
}

// RiskScorer turns a feature vector into a risk assessment.
type RiskScorer interface {
	Score(ctx context.Context, userID UserID, features FeatureVector) (*RiskAssessment, error)
}

// EmotionSignals is the classifier's judgement for one message.
type EmotionSignals struct {
	Stress bool
	Urgent bool
}

// EmotionClassifier decides whether a message signals stress or urgency.
// The default implementation is keyword-based; it is a port so a statistical
// classifier can replace it without touching the aggregator.
type EmotionClassifier interface {
	Classify(ctx context.Context, msg EmailMessage) EmotionSignals
}
