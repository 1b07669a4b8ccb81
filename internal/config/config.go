// Package config provides configuration loading and validation for the
// evaluator. Values come from a JSON file, environment variables, or both;
// the environment wins.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds everything the worker and the one-shot CLI need. All fields
// are optional in the file; missing values use defaults or environment
// variables.
type Config struct {
	// Generation backend
	APIKey        string `json:"api_key,omitempty"`        // Gemini API key
	LiteModel     string `json:"lite_model,omitempty"`     // Override for the lite tier
	StandardModel string `json:"standard_model,omitempty"` // Override for the standard tier
	AdvancedModel string `json:"advanced_model,omitempty"` // Override for the advanced tier

	// Queue transport
	RedisAddr     string `json:"redis_addr,omitempty"`
	RedisPassword string `json:"redis_password,omitempty"`
	QueueName     string `json:"queue_name,omitempty"`
	CallTimeout   string `json:"call_timeout,omitempty"` // Go duration string, e.g. "10m"

	// Persistence
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL; empty disables persistence

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Debug-level logging
	JSONLog bool `json:"json_log,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		RedisAddr: "localhost:6379",
		QueueName: "evaluations",
	}
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv overlays environment variables onto the config. Set variables
// always win over file values.
func (c *Config) FromEnv() {
	setString(&c.APIKey, "GEMINI_API_KEY")
	setString(&c.LiteModel, "EVALUATOR_LITE_MODEL")
	setString(&c.StandardModel, "EVALUATOR_STANDARD_MODEL")
	setString(&c.AdvancedModel, "EVALUATOR_ADVANCED_MODEL")
	setString(&c.RedisAddr, "REDIS_ADDR")
	setString(&c.RedisPassword, "REDIS_PASSWORD")
	setString(&c.QueueName, "EVALUATOR_QUEUE")
	setString(&c.CallTimeout, "EVALUATOR_CALL_TIMEOUT")
	setString(&c.DatabaseURL, "DATABASE_URL")
	setBool(&c.Verbose, "EVALUATOR_VERBOSE")
	setBool(&c.JSONLog, "EVALUATOR_JSON_LOG")
}

// Merge fills empty fields from defaults.
func (c *Config) Merge(defaults Config) Config {
	result := *c
	if result.RedisAddr == "" {
		result.RedisAddr = defaults.RedisAddr
	}
	if result.QueueName == "" {
		result.QueueName = defaults.QueueName
	}
	if result.CallTimeout == "" {
		result.CallTimeout = defaults.CallTimeout
	}
	return result
}

// Validate checks the configuration for values that cannot work. The API
// key is not checked here; only commands that talk to the generation
// backend need it, and the client constructor enforces it.
func (c *Config) Validate() error {
	if c.QueueName == "" {
		return fmt.Errorf("config error: queue_name must not be empty")
	}
	if _, err := c.Timeout(); err != nil {
		return err
	}
	return nil
}

// Timeout parses the call timeout. Zero means "use the transport default".
func (c *Config) Timeout() (time.Duration, error) {
	if c.CallTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.CallTimeout)
	if err != nil {
		return 0, fmt.Errorf("config error: invalid call_timeout %q: %w", c.CallTimeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("config error: call_timeout must not be negative")
	}
	return d, nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			*dst = parsed
		}
	}
}
