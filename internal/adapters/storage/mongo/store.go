package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/dmonzon/beacon/internal/domain"
)

const opTimeout = 10 * time.Second

// Store reads behavioral signals from MongoDB collections maintained by the
// surrounding application.
type Store struct {
	client   *mongo.Client
	events   *mongo.Collection
	messages *mongo.Collection
}

// NewStore connects to Mongo and binds the calendar_events and
// email_messages collections of the given database.
func NewStore(ctx context.Context, uri, database string) (*Store, error) {
	if uri == "" {
		return nil, fmt.Errorf("uri is required for Mongo store")
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}

	db := client.Database(database)
	return &Store{
		client:   client,
		events:   db.Collection("calendar_events"),
		messages: db.Collection("email_messages"),
	}, nil
}

type eventDoc struct {
	UserID      string    `bson:"user_id"`
	StartTime   time.Time `bson:"start_time"`
	EndTime     time.Time `bson:"end_time"`
	EventType   string    `bson:"event_type"`
	IsVirtual   bool      `bson:"is_virtual"`
	StressLevel *int      `bson:"stress_level,omitempty"`
	Workload    *int      `bson:"workload,omitempty"`
}

type messageDoc struct {
	UserID         string    `bson:"user_id"`
	Subject        string    `bson:"subject"`
	WordCount      int       `bson:"word_count"`
	Timestamp      time.Time `bson:"timestamp"`
	SentimentScore *float64  `bson:"sentiment_score,omitempty"`
	EmotionTags    []string  `bson:"emotion_tags,omitempty"`
	ResponseTime   *float64  `bson:"response_time,omitempty"`
}

// FindEventsByUserAndRange returns events with start_time in [start, end),
// sorted ascending by start_time.
func (s *Store) FindEventsByUserAndRange(
	ctx context.Context,
	userID domain.UserID,
	start, end time.Time,
) ([]domain.CalendarEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{
		"user_id":    string(userID),
		"start_time": bson.M{"$gte": start, "$lt": end},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})

	cursor, err := s.events.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo FindEventsByUserAndRange: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []eventDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode eventDoc: %w", err)
	}

	out := make([]domain.CalendarEvent, 0, len(docs))
	for _, doc := range docs {
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
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{
		"user_id":   string(userID),
		"timestamp": bson.M{"$gte": start, "$lt": end},
	}

	cursor, err := s.messages.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongo FindMessagesByUserAndRange: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []messageDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode messageDoc: %w", err)
	}

	out := make([]domain.EmailMessage, 0, len(docs))
	for _, doc := range docs {
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

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
