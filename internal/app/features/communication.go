package features

import (
	"context"

	"github.com/dmonzon/beacon/internal/domain"
	"github.com/dmonzon/beacon/internal/observability"
)

// CommunicationFeatures is the partial vector produced from email messages.
type CommunicationFeatures struct {
	EmailCount       float64
	AvgEmailLength   float64
	StressEmailCount float64
	UrgentEmailCount float64
	ResponseTime     float64
}

// CommunicationAggregator reduces a user's email traffic into volume, tone
// and responsiveness features. Tone decisions are delegated to the injected
// classifier so the tagging strategy stays swappable.
type CommunicationAggregator struct {
	classifier domain.EmotionClassifier
}

func NewCommunicationAggregator(classifier domain.EmotionClassifier) *CommunicationAggregator {
	return &CommunicationAggregator{classifier: classifier}
}

// Aggregate accepts messages in any order. Missing sentiment scores, emotion
// tags or response times are treated as "no signal", never as errors.
func (a *CommunicationAggregator) Aggregate(
	ctx context.Context,
	messages []domain.EmailMessage,
) CommunicationFeatures {
	log := observability.LoggerFromContext(ctx)

	var out CommunicationFeatures

	var (
		totalLength   int
		responseSum   float64
		responseCount int
	)

	for _, msg := range messages {
		out.EmailCount++
		totalLength += msg.WordCount

		signals := a.classifier.Classify(ctx, msg)
		if signals.Stress {
			out.StressEmailCount++
		}
		if signals.Urgent {
			out.UrgentEmailCount++
		}

		if msg.ResponseTime != nil {
			responseSum += *msg.ResponseTime
			responseCount++
		} else {
			log.Debug("message carries no response time", "subject", msg.Subject)
		}
	}

	if out.EmailCount > 0 {
		out.AvgEmailLength = float64(totalLength) / out.EmailCount
	}
	if responseCount > 0 {
		out.ResponseTime = responseSum / float64(responseCount)
	}

	return out
}
