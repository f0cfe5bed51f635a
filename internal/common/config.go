package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Agent AgentConfig
	LLM   LLMConfig
}

// AgentConfig holds pipeline-related configuration
type AgentConfig struct {
	InputDir    string
	OutputDir   string
	SettleDelay time.Duration // wait after a create event before extracting
	BatchDelay  time.Duration // pause between files when draining a directory
}

// LLMConfig holds classification-service configuration
type LLMConfig struct {
	BaseURL         string
	Model           string
	APIKey          string
	Temperature     float32
	Timeout         time.Duration
	MaxContentChars int // prompt excerpt bound
}

// fileConfig mirrors Config for the optional YAML overlay file.
type fileConfig struct {
	Agent struct {
		InputDir    string `yaml:"input_dir"`
		OutputDir   string `yaml:"output_dir"`
		SettleDelay string `yaml:"settle_delay"`
		BatchDelay  string `yaml:"batch_delay"`
	} `yaml:"agent"`
	LLM struct {
		BaseURL         string  `yaml:"base_url"`
		Model           string  `yaml:"model"`
		APIKey          string  `yaml:"api_key"`
		Temperature     float32 `yaml:"temperature"`
		Timeout         string  `yaml:"timeout"`
		MaxContentChars int     `yaml:"max_content_chars"`
	} `yaml:"llm"`
}

// LoadConfig loads configuration from the optional YAML file named by
// AGENT_CONFIG, then applies environment variables on top. Env always wins.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Agent: AgentConfig{
			InputDir:    "input",
			OutputDir:   "output",
			SettleDelay: time.Second,
			BatchDelay:  500 * time.Millisecond,
		},
		LLM: LLMConfig{
			BaseURL:         "https://api.openai.com/v1",
			Model:           "gpt-4o-mini",
			Temperature:     0.3,
			Timeout:         45 * time.Second,
			MaxContentChars: 1000,
		},
	}

	if path := os.Getenv("AGENT_CONFIG"); path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	cfg.Agent.InputDir = getEnv("AGENT_INPUT_DIR", cfg.Agent.InputDir)
	cfg.Agent.OutputDir = getEnv("AGENT_OUTPUT_DIR", cfg.Agent.OutputDir)
	cfg.Agent.SettleDelay = getEnvAsDuration("AGENT_SETTLE_DELAY", cfg.Agent.SettleDelay)
	cfg.Agent.BatchDelay = getEnvAsDuration("AGENT_BATCH_DELAY", cfg.Agent.BatchDelay)

	cfg.LLM.BaseURL = getEnv("OPENAI_BASE_URL", cfg.LLM.BaseURL)
	cfg.LLM.Model = getEnv("OPENAI_MODEL", cfg.LLM.Model)
	cfg.LLM.APIKey = getEnv("OPENAI_API_KEY", cfg.LLM.APIKey)
	cfg.LLM.Temperature = getEnvAsFloat32("OPENAI_TEMPERATURE", cfg.LLM.Temperature)
	cfg.LLM.Timeout = getEnvAsDuration("OPENAI_TIMEOUT", cfg.LLM.Timeout)
	cfg.LLM.MaxContentChars = getEnvAsInt("AGENT_MAX_CONTENT_CHARS", cfg.LLM.MaxContentChars)

	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}

	if fc.Agent.InputDir != "" {
		cfg.Agent.InputDir = fc.Agent.InputDir
	}
	if fc.Agent.OutputDir != "" {
		cfg.Agent.OutputDir = fc.Agent.OutputDir
	}
	if fc.Agent.SettleDelay != "" {
		d, err := time.ParseDuration(fc.Agent.SettleDelay)
		if err != nil {
			return fmt.Errorf("agent.settle_delay: %w", err)
		}
		cfg.Agent.SettleDelay = d
	}
	if fc.Agent.BatchDelay != "" {
		d, err := time.ParseDuration(fc.Agent.BatchDelay)
		if err != nil {
			return fmt.Errorf("agent.batch_delay: %w", err)
		}
		cfg.Agent.BatchDelay = d
	}
	if fc.LLM.BaseURL != "" {
		cfg.LLM.BaseURL = fc.LLM.BaseURL
	}
	if fc.LLM.Model != "" {
		cfg.LLM.Model = fc.LLM.Model
	}
	if fc.LLM.APIKey != "" {
		cfg.LLM.APIKey = fc.LLM.APIKey
	}
	if fc.LLM.Temperature != 0 {
		cfg.LLM.Temperature = fc.LLM.Temperature
	}
	if fc.LLM.Timeout != "" {
		d, err := time.ParseDuration(fc.LLM.Timeout)
		if err != nil {
			return fmt.Errorf("llm.timeout: %w", err)
		}
		cfg.LLM.Timeout = d
	}
	if fc.LLM.MaxContentChars != 0 {
		cfg.LLM.MaxContentChars = fc.LLM.MaxContentChars
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
