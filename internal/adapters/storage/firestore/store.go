package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/dmonzon/beacon/internal/domain"
)

// Store reads behavioral signals from Firestore. It only ever reads: events
// and messages are written by the surrounding application, never by this
// pipeline.
type Store struct {
	client *firestore.Client
}

// NewStore creates a Firestore-backed event source.
// Uses the project passed (BEACON_GCP_PROJECT).
func NewStore(ctx context.Context, projectID string) (*Store, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID is required for Firestore store")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	return &Store{client: client}, nil
}

// ─────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────

func (s *Store) eventsCol() *firestore.CollectionRef {
	return s.client.Collection("calendar_events")
}

func (s *Store) messagesCol() *firestore.CollectionRef {
	return s.client.Collection("email_messages")
}

// ─────────────────────────────────────────
// Firestore Types
// ─────────────────────────────────────────

type eventDoc struct {
	UserID      string    `firestore:"user_id"`
	StartTime   time.Time `firestore:"start_time"`
	EndTime     time.Time `firestore:"end_time"`
	EventType   string    `firestore:"event_type"`
	IsVirtual   bool      `firestore:"is_virtual"`
	StressLevel *int      `firestore:"stress_level"`
	Workload    *int      `firestore:"workload"`
}

type messageDoc struct {
	UserID         string    `firestore:"user_id"`
	Subject        string    `firestore:"subject"`
	WordCount      int       `firestore:"word_count"`
	Timestamp      time.Time `firestore:"timestamp"`
	SentimentScore *float64  `firestore:"sentiment_score"`
	EmotionTags    []string  `firestore:"emotion_tags"`
	ResponseTime   *float64  `firestore:"response_time"`
}

// ─────────────────────────────────────────
// EventSource implementation
// ─────────────────────────────────────────

// FindEventsByUserAndRange returns events with start_time in [start, end),
// ordered ascending so the aggregator can rely on the sort.
func (s *Store) FindEventsByUserAndRange(
	ctx context.Context,
	userID domain.UserID,
	start, end time.Time,
) ([]domain.CalendarEvent, error) {
	q := s.eventsCol().
		Where("user_id", "==", string(userID)).
		Where("start_time", ">=", start).
		Where("start_time", "<", end).
		OrderBy("start_time", firestore.Asc)

	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []domain.CalendarEvent
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("firestore FindEventsByUserAndRange: %w", err)
		}

		var doc eventDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode eventDoc: %w", err)
		}

		out = append(out, domain.CalendarEvent{
			UserID:      domain.UserID(doc.UserID),
			StartTime:   doc.StartTime,
			EndTime:     doc.EndTime,
			Type:        domain.EventType(doc.EventType),
			IsVirtual:   doc.IsVirtual,
			StressLevel: doc.StressLevel,
			Workload:    doc.Workload,
		})
	}
	return out, nil
}

// FindMessagesByUserAndRange returns messages with timestamp in [start, end).
func (s *Store) FindMessagesByUserAndRange(
	ctx context.Context,
	userID domain.UserID,
	start, end time.Time,
) ([]domain.EmailMessage, error) {
	q := s.messagesCol().
		Where("user_id", "==", string(userID)).
		Where("timestamp", ">=", start).
		Where("timestamp", "<", end)

	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []domain.EmailMessage
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("firestore FindMessagesByUserAndRange: %w", err)
		}

		var doc messageDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode messageDoc: %w", err)
		}

		out = append(out, domain.EmailMessage{
			UserID:         domain.UserID(doc.UserID),
			Subject:        doc.Subject,
			WordCount:      doc.WordCount,
			Timestamp:      doc.Timestamp,
			SentimentScore: doc.SentimentScore,
			EmotionTags:    doc.EmotionTags,
			ResponseTime:   doc.ResponseTime,
		})
	}
	return out, nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
