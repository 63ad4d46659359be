package domain

// CalendarEvent is one scheduled block of time for a user.
// Events come from the external event source and are never mutated here.
type CalendarEvent struct {
	UserID    UserID
	StartTime Timestamp
	EndTime   Timestamp
	Type      EventType
	IsVirtual bool

	// Optional self-reported signals attached to the event (1-5 scale).
	// nil means the user did not report anything, which is not an error.
	StressLevel *int
	Workload    *int
}

// Duration returns the event length in hours.
func (e CalendarEvent) Duration() float64 {
	return e.EndTime.Sub(e.StartTime).Hours()
}

// Malformed reports whether the event violates the endTime > startTime
// invariant. Malformed events are skipped during aggregation, not fatal.
func (e CalendarEvent) Malformed() bool {
	return !e.EndTime.After(e.StartTime)
}

// EmailMessage is one message sent or received by the user.
type EmailMessage struct {
	UserID    UserID
	Subject   string
	WordCount int
	Timestamp Timestamp

	// SentimentScore ranges -1..1 when present.
	SentimentScore *float64
	EmotionTags    []string
	// ResponseTime is in minutes when present.
	ResponseTime *float64
}

// HasTag reports whether the message carries the given emotion tag.
func (m EmailMessage) HasTag(tag string) bool {
	for _, t := range m.EmotionTags {
		if t == tag {
			return true
		}
	}
	return false
}
