package emotion

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"google.golang.org/genai"

	"github.com/dmonzon/beacon/internal/domain"
	"github.com/dmonzon/beacon/internal/observability"
)

// LLMClassifier asks a Gemini model whether a message signals stress or
// urgency. Any failure falls back to the keyword classifier so aggregation
// never depends on the model being reachable.
type LLMClassifier struct {
	client    *genai.Client
	modelName string
	fallback  *Keyword
}

// NewLLMClassifier creates an EmotionClassifier backed by Vertex AI (Gemini).
// Uses environment variables for project and region to simplify.
func NewLLMClassifier(ctx context.Context, fallback *Keyword) (*LLMClassifier, error) {
	projectID := os.Getenv("BEACON_GCP_PROJECT")
	location := os.Getenv("BEACON_GCP_LOCATION")
	if projectID == "" || location == "" {
		return nil, fmt.Errorf("BEACON_GCP_PROJECT and BEACON_GCP_LOCATION must be set")
	}

	modelName := os.Getenv("BEACON_MODEL_NAME")
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Vertex AI client: %w", err)
	}

	return &LLMClassifier{
		client:    client,
		modelName: modelName,
		fallback:  fallback,
	}, nil
}

type llmVerdict struct {
	Stress bool `json:"stress"`
	Urgent bool `json:"urgent"`
}

const classifyPrompt = "You label workplace emails. Given a subject line and emotion tags, " +
	"answer with strict JSON {\"stress\": bool, \"urgent\": bool}. " +
	"stress means the sender sounds stressed or frustrated; urgent means the matter needs immediate attention."

// Classify implements domain.EmotionClassifier using Vertex AI.
func (c *LLMClassifier) Classify(ctx context.Context, msg domain.EmailMessage) domain.EmotionSignals {
	log := observability.LoggerFromContext(ctx)

	payload, _ := json.Marshal(map[string]any{
		"subject":      msg.Subject,
		"emotion_tags": msg.EmotionTags,
	})

	temp := float32(0)
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(classifyPrompt, genai.RoleUser),
		Temperature:       &temp,
		ResponseMIMEType:  "application/json",
	}

	contents := []*genai.Content{
		genai.NewContentFromText(string(payload), genai.RoleUser),
	}

	res, err := c.client.Models.GenerateContent(ctx, c.modelName, contents, cfg)
	if err != nil {
		log.Warn("llm classifier unavailable, using keyword rules", "error", err)
		return c.fallback.Classify(ctx, msg)
	}

	var verdict llmVerdict
	if err := json.Unmarshal([]byte(res.Text()), &verdict); err != nil {
		log.Warn("llm classifier returned malformed verdict, using keyword rules", "error", err)
		return c.fallback.Classify(ctx, msg)
	}

	return domain.EmotionSignals{Stress: verdict.Stress, Urgent: verdict.Urgent}
}
