package config

// ModelPreset describes the default models for a provider.
type ModelPreset struct {
	Model      string
	ImageModel string
}

// modelPresets maps each provider to its default model choices. Only
// OpenAI offers image generation; the other presets leave it empty and
// escalated answers carry text only.
var modelPresets = map[ProviderType]ModelPreset{
	ProviderOpenAI:     {Model: "gpt-4o-mini", ImageModel: "dall-e-3"},
	ProviderOpenRouter: {Model: "minimax/minimax-m2.5"},
	ProviderOllama:     {Model: "llama3"},
}

// GetPreset returns the model preset for a provider, falling back to
// the OpenAI preset for unknown values.
func GetPreset(provider ProviderType) ModelPreset {
	if p, ok := modelPresets[provider]; ok {
		return p
	}
	return modelPresets[ProviderOpenAI]
}

// DefaultImportPatterns are the glob patterns used when importing
// knowledge entries from a directory.
var DefaultImportPatterns = []string{
	"**/*.yml",
	"**/*.yaml",
	"**/*.json",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:   ProviderOpenAI,
		Model:      "gpt-4o-mini",
		ImageModel: "dall-e-3",
		Images:     true,
		Language:   "en",
		DataDir:    ".campusbot",
		Server: ServerConfig{
			Port: 8950,
		},
		Chat: ChatConfig{
			HistoryLimit:    10,
			FallbackTimeout: 30,
			ImageTimeout:    60,
			RateLimitRPM:    60,
		},
		Import: ImportConfig{
			Patterns: DefaultImportPatterns,
		},
	}
}
