package features_test

import (
	"context"
	"testing"
	"time"

	"github.com/dmonzon/beacon/internal/adapters/emotion"
	"github.com/dmonzon/beacon/internal/app/features"
	"github.com/dmonzon/beacon/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }

func message(subject string, words int) domain.EmailMessage {
	return domain.EmailMessage{
		UserID:    "test-user",
		Subject:   subject,
		WordCount: words,
		Timestamp: time.Date(2025, 1, 7, 10, 0, 0, 0, time.UTC),
	}
}

func aggregateMessages(t *testing.T, msgs []domain.EmailMessage) features.CommunicationFeatures {
	t.Helper()
	agg := features.NewCommunicationAggregator(emotion.NewKeyword(emotion.DefaultLexicon()))
	return agg.Aggregate(context.Background(), msgs)
}

func TestAggregateNoMessages(t *testing.T) {
	out := aggregateMessages(t, nil)
	if out.EmailCount != 0 || out.AvgEmailLength != 0 || out.ResponseTime != 0 {
		t.Fatalf("expected all-zero features, got %+v", out)
	}
}

func TestStressClassification(t *testing.T) {
	tests := []struct {
		name string
		msg  domain.EmailMessage
		want float64
	}{
		{"stress tag", domain.EmailMessage{Subject: "status", EmotionTags: []string{"stress"}}, 1},
		{"frustration tag", domain.EmailMessage{Subject: "status", EmotionTags: []string{"frustration"}}, 1},
		{"negative sentiment", domain.EmailMessage{Subject: "status", SentimentScore: floatPtr(-0.5)}, 1},
		{"sentiment at threshold is not stress", domain.EmailMessage{Subject: "status", SentimentScore: floatPtr(-0.3)}, 0},
		{"no signal", domain.EmailMessage{Subject: "status"}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := aggregateMessages(t, []domain.EmailMessage{tc.msg})
			if out.StressEmailCount != tc.want {
				t.Fatalf("stressEmailCount = %v, want %v", out.StressEmailCount, tc.want)
			}
		})
	}
}

// A subject-text match alone marks a message urgent; it does not make it a
// stress email.
func TestUrgentSubjectWithoutTags(t *testing.T) {
	msg := message("URGENT: server down", 40)

	out := aggregateMessages(t, []domain.EmailMessage{msg})

	if out.UrgentEmailCount != 1 {
		t.Fatalf("urgentEmailCount = %v, want 1", out.UrgentEmailCount)
	}
	if out.StressEmailCount != 0 {
		t.Fatalf("stressEmailCount = %v, want 0", out.StressEmailCount)
	}
}

func TestUrgencyTag(t *testing.T) {
	msg := message("please review", 10)
	msg.EmotionTags = []string{"urgency"}

	out := aggregateMessages(t, []domain.EmailMessage{msg})
	if out.UrgentEmailCount != 1 {
		t.Fatalf("urgentEmailCount = %v, want 1", out.UrgentEmailCount)
	}
}

func TestAverages(t *testing.T) {
	first := message("weekly report", 100)
	first.ResponseTime = floatPtr(30)
	second := message("standup notes", 200)
	// second carries no response time; the average only covers messages
	// that do.
	third := message("retro summary", 300)
	third.ResponseTime = floatPtr(90)

	out := aggregateMessages(t, []domain.EmailMessage{first, second, third})

	if out.EmailCount != 3 {
		t.Fatalf("emailCount = %v, want 3", out.EmailCount)
	}
	if out.AvgEmailLength != 200 {
		t.Fatalf("avgEmailLength = %v, want 200", out.AvgEmailLength)
	}
	if out.ResponseTime != 60 {
		t.Fatalf("responseTime = %v, want 60", out.ResponseTime)
	}
}
