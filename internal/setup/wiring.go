package setup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cardwise/card-assistant/internal/cards"
	"github.com/cardwise/card-assistant/internal/config"
	"github.com/cardwise/card-assistant/internal/generative"
	"github.com/cardwise/card-assistant/internal/generative/bedrock"
	"github.com/cardwise/card-assistant/internal/generative/httpgen"
	"github.com/cardwise/card-assistant/internal/index"
	"github.com/cardwise/card-assistant/internal/ingest"
	"github.com/cardwise/card-assistant/internal/mapper"
	"github.com/cardwise/card-assistant/internal/metrics"
	"github.com/cardwise/card-assistant/internal/orchestrator"
	"github.com/cardwise/card-assistant/internal/scoring"
	"github.com/rs/zerolog"
)

type Config struct {
	CardAPIBaseURL     string
	GenerativeProvider string
	GenerativeBaseURL  string
	AWSRegion          string
	ClaudeModelID      string
	DocSimilarityFloor float64
	SeedDir            string
	StreamProvider     string
	RedisAddr          string
	RedisPassword      string
	StreamName         string
	StreamGroup        string
	ConsumerName       string
}

type Dependencies struct {
	Orchestrator *orchestrator.Orchestrator
	Index        *index.Index
	Splitter     *ingest.Splitter
	Metrics      *metrics.Metrics
	Logger       *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		CardAPIBaseURL:     getEnv("CARD_API_BASE_URL", "http://localhost:8010"),
		GenerativeProvider: getEnv("GENERATIVE_PROVIDER", "http"),
		GenerativeBaseURL:  getEnv("GENERATIVE_BASE_URL", "http://localhost:8020"),
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID:      getEnv("CLAUDE_MODEL_ID", ""),
		DocSimilarityFloor: getEnvFloat("DOC_SIMILARITY_FLOOR", 0.2),
		SeedDir:            getEnv("SEED_DIR", ""),
		StreamProvider:     getEnv("STREAM_PROVIDER", ""),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		StreamName:         getEnv("STREAM_NAME", "card-documents"),
		StreamGroup:        getEnv("STREAM_GROUP", "card-assistant"),
		ConsumerName:       getEnv("CONSUMER_NAME", "card-assistant-1"),
	}
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	mappingsConfig, err := config.LoadMappingsConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load mappings config: %w", err)
	}
	queryMapper := mapper.New(mappingsConfig)

	scorer := scoring.NewScorer()
	idx := index.New(scorer)
	splitter := ingest.NewSplitter()

	cardClient, err := cards.NewClient(cfg.CardAPIBaseURL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create card API client: %w", err)
	}

	genClient, err := createGenerativeClient(ctx, cfg.GenerativeProvider, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create generative client: %w", err)
	}

	if cfg.SeedDir != "" {
		if err := LoadSeedDocuments(cfg.SeedDir, splitter, idx, logger); err != nil {
			return nil, fmt.Errorf("failed to load seed documents: %w", err)
		}
	}

	orch := orchestrator.New(queryMapper, cardClient, idx, genClient, cfg.DocSimilarityFloor, logger)

	return &Dependencies{
		Orchestrator: orch,
		Index:        idx,
		Splitter:     splitter,
		Metrics:      metrics.New(),
		Logger:       logger,
	}, nil
}

// LoadSeedDocuments walks dir and indexes every .txt and .md file.
// Files the splitter rejects are logged and skipped.
func LoadSeedDocuments(dir string, splitter *ingest.Splitter, idx *index.Index, logger *zerolog.Logger) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".txt" && ext != ".md" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", path, err)
		}

		chunks, err := splitter.Chunks(d.Name(), string(data))
		if err != nil {
			logger.Warn().Err(err).Str("file", d.Name()).Msg("Skipping seed document")
			return nil
		}

		idx.Add(chunks)
		logger.Info().Str("file", d.Name()).Int("chunks", len(chunks)).Msg("Seed document indexed")
		return nil
	})
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		value = defaultValue
	}

	return value
}

func createGenerativeClient(ctx context.Context, provider string, cfg *Config) (generative.Client, error) {
	switch provider {
	case "bedrock":
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	case "http":
		return httpgen.NewClient(cfg.GenerativeBaseURL)
	default:
		return httpgen.NewClient(cfg.GenerativeBaseURL)
	}
}
