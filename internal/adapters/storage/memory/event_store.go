package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmonzon/beacon/internal/domain"
)

// EventStore is a simple in-memory implementation of domain.EventSource.
// It is NOT persistent and is only suitable for development / local mode
// and tests.
type EventStore struct {
	mu       sync.RWMutex
	events   map[domain.UserID][]domain.CalendarEvent
	messages map[domain.UserID][]domain.EmailMessage
}

func NewEventStore() *EventStore {
	return &EventStore{
		events:   make(map[domain.UserID][]domain.CalendarEvent),
		messages: make(map[domain.UserID][]domain.EmailMessage),
	}
}

// AddEvent seeds one calendar event.
func (s *EventStore) AddEvent(ev domain.CalendarEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[ev.UserID] = append(s.events[ev.UserID], ev)
}

// AddMessage seeds one email message.
func (s *EventStore) AddMessage(msg domain.EmailMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[msg.UserID] = append(s.messages[msg.UserID], msg)
}

// ReplaceAll swaps the full contents, used by the dataset loader's refresh.
func (s *EventStore) ReplaceAll(events []domain.CalendarEvent, messages []domain.EmailMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = make(map[domain.UserID][]domain.CalendarEvent)
	s.messages = make(map[domain.UserID][]domain.EmailMessage)
	for _, ev := range events {
		s.events[ev.UserID] = append(s.events[ev.UserID], ev)
	}
	for _, msg := range messages {
		s.messages[msg.UserID] = append(s.messages[msg.UserID], msg)
	}
}

// FindEventsByUserAndRange returns the user's events with StartTime in
// [start, end), sorted ascending by StartTime as the aggregator requires.
func (s *EventStore) FindEventsByUserAndRange(
	_ context.Context,
	userID domain.UserID,
	start, end time.Time,
) ([]domain.CalendarEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.CalendarEvent
	for _, ev := range s.events[userID] {
		if !ev.StartTime.Before(start) && ev.StartTime.Before(end) {
			out = append(out, ev)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

// FindMessagesByUserAndRange returns the user's messages with Timestamp in
// [start, end). No ordering is guaranteed.
func (s *EventStore) FindMessagesByUserAndRange(
	_ context.Context,
	userID domain.UserID,
	start, end time.Time,
) ([]domain.EmailMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.EmailMessage
	for _, msg := range s.messages[userID] {
		if !msg.Timestamp.Before(start) && msg.Timestamp.Before(end) {
			out = append(out, msg)
		}
	}
	return out, nil
}
