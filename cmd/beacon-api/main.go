package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/dmonzon/beacon/internal/adapters/emotion"
	httpadapter "github.com/dmonzon/beacon/internal/adapters/http"
	"github.com/dmonzon/beacon/internal/adapters/scorer"
	firestorestore "github.com/dmonzon/beacon/internal/adapters/storage/firestore"
	memstore "github.com/dmonzon/beacon/internal/adapters/storage/memory"
	mongostore "github.com/dmonzon/beacon/internal/adapters/storage/mongo"
	"github.com/dmonzon/beacon/internal/app/assessment"
	"github.com/dmonzon/beacon/internal/config"
	"github.com/dmonzon/beacon/internal/domain"
)

func main() {
	ctx := context.Background()

	// .env is optional, env vars win either way
	_ = godotenv.Load()

	cfg := config.Load()

	// Emotion classifier: keyword rules, optionally with a custom lexicon,
	// optionally wrapped by the LLM classifier.
	lexicon := emotion.DefaultLexicon()
	if cfg.LexiconPath != "" {
		loaded, err := emotion.LoadLexicon(cfg.LexiconPath)
		if err != nil {
			log.Fatalf("error loading emotion lexicon: %v", err)
		}
		lexicon = loaded
	}
	keyword := emotion.NewKeyword(lexicon)

	var classifier domain.EmotionClassifier = keyword
	if cfg.UseLLMClassifier {
		log.Println("[CLASSIFIER] Using LLM emotion classifier")
		llm, err := emotion.NewLLMClassifier(ctx, keyword)
		if err != nil {
			log.Fatalf("error initializing LLM classifier: %v", err)
		}
		classifier = llm
	} else {
		log.Println("[CLASSIFIER] Using keyword emotion classifier")
	}

	// Event source: memory, Firestore or Mongo
	var source domain.EventSource

	switch cfg.StorageBackend {
	case "firestore":
		log.Printf("[STORE] Using Firestore event source (project=%s)", cfg.GCPProjectID)
		fsStore, err := firestorestore.NewStore(ctx, cfg.GCPProjectID)
		if err != nil {
			log.Fatalf("error initializing Firestore store: %v", err)
		}
		source = fsStore

	case "mongo":
		log.Printf("[STORE] Using Mongo event source (db=%s)", cfg.MongoDatabase)
		mStore, err := mongostore.NewStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			log.Fatalf("error initializing Mongo store: %v", err)
		}
		source = mStore

	default:
		log.Println("[STORE] Using in-memory event source")
		store := memstore.NewEventStore()
		if cfg.DatasetPath != "" {
			dataset := memstore.NewDataset(cfg.DatasetPath, store)
			if err := dataset.Load(); err != nil {
				log.Fatalf("error loading demo dataset: %v", err)
			}
			log.Printf("[STORE] Loaded demo dataset from %s", cfg.DatasetPath)
		}
		source = store
	}

	// Risk scorer: remote model first when configured, local heuristic
	// always available as the fallback.
	local := scorer.NewHeuristic()

	var riskScorer domain.RiskScorer = local
	var health httpadapter.HealthChecker
	if cfg.ScorerBaseURL != "" {
		log.Printf("[SCORER] Using remote scorer at %s with local fallback", cfg.ScorerBaseURL)
		remote := scorer.NewRemote(cfg.ScorerBaseURL, cfg.ModelVersion, cfg.ScorerTimeout)
		riskScorer = scorer.NewFallback(remote, local)
		health = remote
	} else {
		log.Println("[SCORER] No remote scorer configured, using local heuristic only")
	}

	// Assessment service + HTTP server
	svc := assessment.NewService(source, riskScorer, classifier)
	handler := httpadapter.NewServer(svc, health)

	port := ":" + cfg.Port
	log.Println("Beacon API listening on port:", port)
	if err := http.ListenAndServe(port, handler); err != nil {
		log.Fatal(err)
	}
}
