package config

// ProviderType identifies an LLM provider for the fallback path.
type ProviderType string

const (
	ProviderOpenAI     ProviderType = "openai"
	ProviderOpenRouter ProviderType = "openrouter"
	ProviderOllama     ProviderType = "ollama"
)

// Config is the top-level campusbot configuration, corresponding to
// .campusbot.yml.
type Config struct {
	Provider   ProviderType `yaml:"provider" koanf:"provider"`
	Model      string       `yaml:"model" koanf:"model"`
	ImageModel string       `yaml:"image_model" koanf:"image_model"`
	Images     bool         `yaml:"images" koanf:"images"`
	Language   string       `yaml:"language" koanf:"language"`
	DataDir    string       `yaml:"data_dir" koanf:"data_dir"`

	Server ServerConfig `yaml:"server" koanf:"server"`
	Chat   ChatConfig   `yaml:"chat" koanf:"chat"`
	Engine EngineConfig `yaml:"engine" koanf:"engine"`
	Import ImportConfig `yaml:"import" koanf:"import"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// ChatConfig holds chat service settings.
type ChatConfig struct {
	HistoryLimit    int `yaml:"history_limit" koanf:"history_limit"`
	FallbackTimeout int `yaml:"fallback_timeout_seconds" koanf:"fallback_timeout_seconds"`
	ImageTimeout    int `yaml:"image_timeout_seconds" koanf:"image_timeout_seconds"`
	RateLimitRPM    int `yaml:"rate_limit_rpm" koanf:"rate_limit_rpm"`
}

// EngineConfig holds resolver tuning and dictionary extensions. Zero
// threshold values mean "keep the built-in default".
type EngineConfig struct {
	ConfidenceThreshold float64 `yaml:"confidence_threshold" koanf:"confidence_threshold"`
	VagueThreshold      float64 `yaml:"vague_threshold" koanf:"vague_threshold"`
	AmbiguityMargin     float64 `yaml:"ambiguity_margin" koanf:"ambiguity_margin"`
	AmbiguityCeiling    float64 `yaml:"ambiguity_ceiling" koanf:"ambiguity_ceiling"`
	MaxAmbiguous        int     `yaml:"max_ambiguous" koanf:"max_ambiguous"`

	ExtraFiller   []string `yaml:"extra_filler" koanf:"extra_filler"`
	ExtraActions  []string `yaml:"extra_actions" koanf:"extra_actions"`
	ExtraCritical []string `yaml:"extra_critical" koanf:"extra_critical"`
	ExtraCourses  []string `yaml:"extra_courses" koanf:"extra_courses"`
	ExtraTopics   []string `yaml:"extra_topics" koanf:"extra_topics"`
}

// ImportConfig holds knowledge base import settings.
type ImportConfig struct {
	Patterns []string `yaml:"patterns" koanf:"patterns"`
}
