package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ziadkadry99/campus-bot/internal/chat"
	"github.com/ziadkadry99/campus-bot/internal/config"
	"github.com/ziadkadry99/campus-bot/internal/db"
	"github.com/ziadkadry99/campus-bot/internal/engine"
	"github.com/ziadkadry99/campus-bot/internal/escalate"
	"github.com/ziadkadry99/campus-bot/internal/knowledge"
	"github.com/ziadkadry99/campus-bot/internal/llm"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `campusbot init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openDatabase opens the SQLite database under the configured data dir.
func openDatabase(cfg *config.Config) (*db.DB, error) {
	return db.Open(filepath.Join(cfg.DataDir, "campusbot.db"))
}

// buildEngine constructs the resolver from configured dictionaries and
// tuning. Zero-valued thresholds keep the built-in defaults.
func buildEngine(cfg *config.Config) *engine.Engine {
	e := cfg.Engine
	lex := engine.DefaultLexicon().Extend(
		e.ExtraFiller, e.ExtraActions, e.ExtraCritical, e.ExtraCourses, e.ExtraTopics,
	)

	tuning := engine.DefaultTuning()
	if e.ConfidenceThreshold > 0 {
		tuning.ConfidenceThreshold = e.ConfidenceThreshold
	}
	if e.VagueThreshold > 0 {
		tuning.VagueThreshold = e.VagueThreshold
	}
	if e.AmbiguityMargin > 0 {
		tuning.AmbiguityMargin = e.AmbiguityMargin
	}
	if e.AmbiguityCeiling > 0 {
		tuning.AmbiguityCeiling = e.AmbiguityCeiling
	}
	if e.MaxAmbiguous > 0 {
		tuning.MaxAmbiguous = e.MaxAmbiguous
	}

	return engine.New(lex, tuning)
}

// createProviders builds the fallback text and image providers. A
// missing API key is a warning, not an error: the knowledge base still
// answers on its own and escalated queries degrade gracefully.
func createProviders(cfg *config.Config) (llm.Provider, llm.ImageProvider) {
	provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: fallback provider unavailable: %v\n", err)
		fmt.Fprintf(os.Stderr, "Escalated questions will get a generic answer.\n")
		return nil, nil
	}
	if cfg.Chat.RateLimitRPM > 0 {
		provider = llm.NewRateLimitedProvider(provider, cfg.Chat.RateLimitRPM)
	}

	var images llm.ImageProvider
	if cfg.Images {
		images, err = llm.NewImageProvider(string(cfg.Provider), cfg.ImageModel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: image provider unavailable: %v\n", err)
		}
	}
	return provider, images
}

// buildChatService wires the full answering pipeline on top of an open
// database.
func buildChatService(cfg *config.Config, database *db.DB) (*chat.Service, *knowledge.Store, *chat.Store) {
	kb := knowledge.NewStore(database)
	sessions := chat.NewStore(database)
	provider, images := createProviders(cfg)

	opts := chat.Options{
		Model:           cfg.Model,
		ImageModel:      cfg.ImageModel,
		Language:        cfg.Language,
		HistoryLimit:    cfg.Chat.HistoryLimit,
		FallbackTimeout: time.Duration(cfg.Chat.FallbackTimeout) * time.Second,
		ImageTimeout:    time.Duration(cfg.Chat.ImageTimeout) * time.Second,
		ImagesEnabled:   cfg.Images,
		Verbose:         verbose,
	}
	svc := chat.New(kb, buildEngine(cfg), escalate.NewDefault(), provider, images, sessions, opts)
	return svc, kb, sessions
}
