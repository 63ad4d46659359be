package memory

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmonzon/beacon/internal/domain"
)

// Dataset loads demo signals from a YAML file into an EventStore. It is an
// explicitly constructed object with a Load/Refresh lifecycle instead of a
// package-level cache, so tests and local mode can each own their copy.
type Dataset struct {
	path  string
	store *EventStore
}

func NewDataset(path string, store *EventStore) *Dataset {
	return &Dataset{path: path, store: store}
}

type datasetFile struct {
	Events   []datasetEvent   `yaml:"events"`
	Messages []datasetMessage `yaml:"messages"`
}

type datasetEvent struct {
	UserID      string    `yaml:"user_id"`
	Start       time.Time `yaml:"start"`
	End         time.Time `yaml:"end"`
	Type        string    `yaml:"type"`
	Virtual     bool      `yaml:"virtual"`
	StressLevel *int      `yaml:"stress_level"`
	Workload    *int      `yaml:"workload"`
}

type datasetMessage struct {
	UserID       string    `yaml:"user_id"`
	Subject      string    `yaml:"subject"`
	WordCount    int       `yaml:"word_count"`
	Timestamp    time.Time `yaml:"timestamp"`
	Sentiment    *float64  `yaml:"sentiment"`
	EmotionTags  []string  `yaml:"emotion_tags"`
	ResponseTime *float64  `yaml:"response_time_min"`
}

// Load reads the file and replaces the store's contents.
func (d *Dataset) Load() error {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return fmt.Errorf("reading dataset: %w", err)
	}

	var file datasetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing dataset: %w", err)
	}

	events := make([]domain.CalendarEvent, 0, len(file.Events))
	for _, ev := range file.Events {
		events = append(events, domain.CalendarEvent{
			UserID:      domain.UserID(ev.UserID),
			StartTime:   ev.Start,
			EndTime:     ev.End,
			Type:        domain.EventType(ev.Type),
			IsVirtual:   ev.Virtual,
			StressLevel: ev.StressLevel,
			Workload:    ev.Workload,
		})
	}

	messages := make([]domain.EmailMessage, 0, len(file.Messages))
	for _, msg := range file.Messages {
		messages = append(messages, domain.EmailMessage{
			UserID:         domain.UserID(msg.UserID),
			Subject:        msg.Subject,
			WordCount:      msg.WordCount,
			Timestamp:      msg.Timestamp,
			SentimentScore: msg.Sentiment,
			EmotionTags:    msg.EmotionTags,
			ResponseTime:   msg.ResponseTime,
		})
	}

	d.store.ReplaceAll(events, messages)
	return nil
}

// Refresh re-reads the file, replacing previously loaded data.
func (d *Dataset) Refresh() error {
	return d.Load()
}
