package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// PlaceholderAPIKey is the value shipped in example configs. Treated the same
// as a missing key so a copy-pasted template fails loudly instead of at the
// first upstream call.
const PlaceholderAPIKey = "YOUR_API_KEY"

type Config struct {
	YouTube  YouTubeConfig  `yaml:"youtube"`
	AI       AIConfig       `yaml:"ai"`
	Server   ServerConfig   `yaml:"server"`
	Analysis AnalysisConfig `yaml:"analysis"`
}

type YouTubeConfig struct {
	// APIKey is the default access mode for the Data API.
	APIKey string `yaml:"api_key" env:"YOUTUBE_API_KEY"`

	// ClientID/ClientSecret switch the client to OAuth device flow; the
	// token is cached at TokenFile.
	ClientID     string `yaml:"client_id" env:"GOOGLE_CLIENT_ID"`
	ClientSecret string `yaml:"client_secret" env:"GOOGLE_CLIENT_SECRET"`
	TokenFile    string `yaml:"token_file"`
}

type AIConfig struct {
	// GeminiAPIKey is optional. When set, comment sentiment uses the
	// model-backed scorer; otherwise the lexical scorer is used.
	GeminiAPIKey string `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	Model        string `yaml:"model"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type AnalysisConfig struct {
	// MaxComments caps how many comments a request may pull from the
	// upstream API when the caller does not pass its own cap. 0 means all.
	MaxComments int           `yaml:"max_comments"`
	TopKeywords int           `yaml:"top_keywords"`
	MaxIdeas    int           `yaml:"max_ideas"`
	CacheSize   int           `yaml:"cache_size"`
	PageDelay   time.Duration `yaml:"page_delay"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	var cfg Config
	data, err := os.ReadFile(configFile)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	case os.IsNotExist(err):
		// Env-only configuration is fine; the file is optional.
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	if cfg.YouTube.APIKey == "" {
		cfg.YouTube.APIKey = os.Getenv("YOUTUBE_API_KEY")
	}
	if cfg.YouTube.ClientID == "" {
		cfg.YouTube.ClientID = os.Getenv("GOOGLE_CLIENT_ID")
	}
	if cfg.YouTube.ClientSecret == "" {
		cfg.YouTube.ClientSecret = os.Getenv("GOOGLE_CLIENT_SECRET")
	}
	if cfg.YouTube.TokenFile == "" {
		cfg.YouTube.TokenFile = "youtube_token.json"
	}
	if cfg.AI.GeminiAPIKey == "" {
		cfg.AI.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = "gemini-2.5-flash"
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Analysis.TopKeywords == 0 {
		cfg.Analysis.TopKeywords = 20
	}
	if cfg.Analysis.MaxIdeas == 0 {
		cfg.Analysis.MaxIdeas = 10
	}
	if cfg.Analysis.CacheSize == 0 {
		cfg.Analysis.CacheSize = 1024
	}
	if cfg.Analysis.PageDelay == 0 {
		cfg.Analysis.PageDelay = 500 * time.Millisecond
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// UseOAuth reports whether the Data API client should use the OAuth device
// flow instead of a plain API key.
func (c *YouTubeConfig) UseOAuth() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

func (c *Config) validate() error {
	if c.YouTube.APIKey == PlaceholderAPIKey {
		return fmt.Errorf("YouTube API key is still the placeholder value (edit your .env or config.yaml)")
	}
	if c.YouTube.APIKey == "" && !c.YouTube.UseOAuth() {
		return fmt.Errorf("YouTube credentials are required (set YOUTUBE_API_KEY, or GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET)")
	}
	return nil
}
