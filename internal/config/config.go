package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when the user does not pass
// --config. Its absence is not an error: defaults apply.
const DefaultPath = "audio-transcribe.yaml"

type Config struct {
	OpenAI  OpenAIConfig  `yaml:"openai"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Watch   WatchConfig   `yaml:"watch"`
}

type OpenAIConfig struct {
	APIKey     string `yaml:"api_key"`
	APIKeyFile string `yaml:"api_key_file"`
	BaseURL    string `yaml:"base_url"`
	Model      string `yaml:"model"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

type OutputConfig struct {
	Dir string `yaml:"dir"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type WatchConfig struct {
	SettleDelayMS int `yaml:"settle_delay_ms"`
}

// Load reads the YAML config at path. An empty path means DefaultPath, and a
// missing DefaultPath yields the built-in defaults; an explicitly named file
// that cannot be read is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			if err := cfg.Validate(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the loaded values and fills in defaults for everything left
// unset.
func (c *Config) Validate() error {
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "whisper-1"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Watch.SettleDelayMS == 0 {
		c.Watch.SettleDelayMS = 500
	}
	if c.Watch.SettleDelayMS < 0 {
		return fmt.Errorf("watch.settle_delay_ms must not be negative")
	}

	return nil
}

// ResolveOpenAIKey returns the API key for the transcription service, trying
// the inline config value, then the key file, then the OPENAI_API_KEY
// environment variable.
func (c *Config) ResolveOpenAIKey() (string, error) {
	if c.OpenAI.APIKey != "" {
		return c.OpenAI.APIKey, nil
	}
	if c.OpenAI.APIKeyFile != "" {
		data, err := os.ReadFile(c.OpenAI.APIKeyFile)
		if err != nil {
			return "", fmt.Errorf("read api key file %s: %w", c.OpenAI.APIKeyFile, err)
		}
		key := strings.TrimSpace(string(data))
		if key == "" {
			return "", fmt.Errorf("api key file %s is empty", c.OpenAI.APIKeyFile)
		}
		return key, nil
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key, nil
	}
	return "", errors.New("OpenAI API key not configured: set openai.api_key, openai.api_key_file, or OPENAI_API_KEY")
}

// ResolveGeminiKeys returns the key pool for the summarizer, falling back to
// the GEMINI_API_KEY environment variable.
func (c *Config) ResolveGeminiKeys() ([]string, error) {
	if len(c.Gemini.APIKeys) > 0 {
		return c.Gemini.APIKeys, nil
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return []string{key}, nil
	}
	return nil, errors.New("Gemini API key not configured: set gemini.api_keys or GEMINI_API_KEY")
}
