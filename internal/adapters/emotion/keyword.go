package emotion

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmonzon/beacon/internal/domain"
)

// Lexicon holds the tags and markers the keyword classifier matches on.
type Lexicon struct {
	StressTags         []string `yaml:"stress_tags"`
	UrgencyTags        []string `yaml:"urgency_tags"`
	SubjectMarkers     []string `yaml:"subject_markers"`
	SentimentThreshold float64  `yaml:"sentiment_threshold"`
}

// DefaultLexicon returns the built-in tagging rules.
func DefaultLexicon() Lexicon {
	return Lexicon{
		StressTags:         []string{"stress", "frustration"},
		UrgencyTags:        []string{"urgency"},
		SubjectMarkers:     []string{"urgent"},
		SentimentThreshold: -0.3,
	}
}

// LoadLexicon reads a lexicon from a YAML file. Fields left empty in the
// file fall back to the defaults.
func LoadLexicon(path string) (Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Lexicon{}, fmt.Errorf("reading lexicon: %w", err)
	}

	lex := DefaultLexicon()
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return Lexicon{}, fmt.Errorf("parsing lexicon: %w", err)
	}
	return lex, nil
}

// Keyword is the default EmotionClassifier: a tag and substring match, not a
// model. Messages without tags or sentiment simply produce no signal.
type Keyword struct {
	lexicon Lexicon
}

func NewKeyword(lexicon Lexicon) *Keyword {
	return &Keyword{lexicon: lexicon}
}

func (k *Keyword) Classify(_ context.Context, msg domain.EmailMessage) domain.EmotionSignals {
	var out domain.EmotionSignals

	for _, tag := range k.lexicon.StressTags {
		if msg.HasTag(tag) {
			out.Stress = true
			break
		}
	}
	if !out.Stress && msg.SentimentScore != nil && *msg.SentimentScore < k.lexicon.SentimentThreshold {
		out.Stress = true
	}

	for _, tag := range k.lexicon.UrgencyTags {
		if msg.HasTag(tag) {
			out.Urgent = true
			break
		}
	}
	if !out.Urgent {
		subject := strings.ToLower(msg.Subject)
		for _, marker := range k.lexicon.SubjectMarkers {
			if strings.Contains(subject, strings.ToLower(marker)) {
				out.Urgent = true
				break
			}
		}
	}

	return out
}
