package config

import (
	"log"
	"os"
	"time"
)

type Config struct {
	Port string

	// Remote scoring service
	ScorerBaseURL string
	ScorerTimeout time.Duration
	ModelVersion  string

	// Event source backend: "memory", "firestore" or "mongo"
	StorageBackend string
	GCPProjectID   string
	MongoURI       string
	MongoDatabase  string

	// Demo dataset for the memory backend (optional YAML file)
	DatasetPath string

	// Emotion classifier: keyword rules by default, LLM when enabled
	UseLLMClassifier bool
	LexiconPath      string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if v == "1" || v == "true" || v == "TRUE" {
		return true
	}
	return false
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

// Load reads all env vars and builds the config
func Load() *Config {
	cfg := &Config{
		Port: getEnv("BEACON_PORT", "8080"),

		ScorerBaseURL: getEnv("BEACON_SCORER_URL", ""),
		ScorerTimeout: getDurationEnv("BEACON_SCORER_TIMEOUT", 10*time.Second),
		ModelVersion:  getEnv("BEACON_MODEL_VERSION", "v1"),

		StorageBackend: getEnv("BEACON_STORAGE_BACKEND", "memory"),
		GCPProjectID:   getEnv("BEACON_GCP_PROJECT", ""),
		MongoURI:       getEnv("BEACON_MONGO_URI", ""),
		MongoDatabase:  getEnv("BEACON_MONGO_DATABASE", "beacon"),

		DatasetPath: getEnv("BEACON_DATASET_PATH", ""),

		UseLLMClassifier: getBoolEnv("BEACON_USE_LLM_CLASSIFIER", false),
		LexiconPath:      getEnv("BEACON_LEXICON_PATH", ""),
	}

	// Minimal validation for backend-specific settings
	switch cfg.StorageBackend {
	case "firestore":
		if cfg.GCPProjectID == "" {
			log.Fatal("BEACON_GCP_PROJECT must be set for the firestore backend")
		}
	case "mongo":
		if cfg.MongoURI == "" {
			log.Fatal("BEACON_MONGO_URI must be set for the mongo backend")
		}
	}

	return cfg
}
