package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=120s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for content generation"`

	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Source extraction configuration"`

	Generation GenerationConfig `yaml:"generation" json:"generation" jsonschema:"description=Content generation defaults"`
}

// LLMConfig holds settings for the OpenAI-compatible provider. APIKey may be
// empty at load time; handlers fail the request with a configuration error.
type LLMConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint (default provider endpoint when empty)"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (use ${OPENAI_API_KEY} to read from environment)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"default=gpt-4-turbo-preview,description=Model name"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.7,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=8000,description=Maximum tokens for generation responses"`
	EditTokens  int           `yaml:"edit_tokens" json:"edit_tokens" jsonschema:"default=2000,description=Maximum tokens for chat editor responses"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Request timeout"`
}

// ExtractionConfig holds source extraction settings
type ExtractionConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=URL fetch timeout"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Mozilla/5.0 (compatible; ContentCycle/1.0),description=User agent for URL fetches"`
}

// GenerationConfig holds pipeline defaults
type GenerationConfig struct {
	PostCount int    `yaml:"post_count" json:"post_count" jsonschema:"default=3,description=Default number of themes to develop"`
	Tone      string `yaml:"tone" json:"tone" jsonschema:"default=Professional and engaging,description=Default tone for generated content"`
	RankCap   int    `yaml:"rank_cap" json:"rank_cap" jsonschema:"default=10,description=Maximum posts sent to the ranking call"`
}

// Load reads configuration from a YAML file, expanding environment variables
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema, warning only
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file is present.
// The API key is taken from the OPENAI_API_KEY environment variable.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 120 * time.Second
	}

	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-4-turbo-preview"
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.7
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 8000
	}
	if c.LLM.EditTokens == 0 {
		c.LLM.EditTokens = 2000
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 60 * time.Second
	}
	if c.LLM.APIKey == "" {
		c.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	if c.Extraction.Timeout == 0 {
		c.Extraction.Timeout = 30 * time.Second
	}
	if c.Extraction.UserAgent == "" {
		c.Extraction.UserAgent = "Mozilla/5.0 (compatible; ContentCycle/1.0)"
	}

	if c.Generation.PostCount == 0 {
		c.Generation.PostCount = 3
	}
	if c.Generation.Tone == "" {
		c.Generation.Tone = "Professional and engaging"
	}
	if c.Generation.RankCap == 0 {
		c.Generation.RankCap = 10
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Extraction.Timeout < time.Second {
		return fmt.Errorf("extraction timeout must be at least 1 second")
	}
	if cfg.Generation.RankCap < 1 {
		return fmt.Errorf("generation.rank_cap must be at least 1")
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// GetExtractionConfig returns source extraction configuration
func (c *Config) GetExtractionConfig() ExtractionConfig {
	return c.Extraction
}

// GetGenerationConfig returns pipeline defaults
func (c *Config) GetGenerationConfig() GenerationConfig {
	return c.Generation
}
