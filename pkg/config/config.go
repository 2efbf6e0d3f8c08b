package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	// Insight is the generative-text collaborator used by the predicted
	// classification tier and the narrative risk path. Disabled or
	// unconfigured, the engine still answers through deterministic tiers.
	Insight struct {
		Enabled  bool          `yaml:"enabled"`
		BaseURL  string        `yaml:"base_url"`
		APIKey   string        `yaml:"api_key"`
		Model    string        `yaml:"model"`
		Timeout  time.Duration `yaml:"timeout"`
		MaxRPS   float64       `yaml:"max_rps"`
		CacheTTL time.Duration `yaml:"cache_ttl"`
		Redis    struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"insight"`
	// Audit streams tier-selection events to Kafka for offline review.
	Audit struct {
		Enabled         bool     `yaml:"enabled"`
		Topic           string   `yaml:"topic"`
		BufferSize      int      `yaml:"buffer_size"`
		MaxEventsPerSec int      `yaml:"max_events_per_sec"`
		Kafka           struct {
			Brokers      []string      `yaml:"brokers"`
			Compression  string        `yaml:"compression"`
			RequiredAcks int           `yaml:"required_acks"`
			MaxAttempts  int           `yaml:"max_attempts"`
			BatchSize    int           `yaml:"batch_size"`
			BatchBytes   int           `yaml:"batch_bytes"`
			Linger       time.Duration `yaml:"linger"`
			WriteTimeout time.Duration `yaml:"write_timeout"`
			ReadTimeout  time.Duration `yaml:"read_timeout"`
			Async        bool          `yaml:"async"`
		} `yaml:"kafka"`
	} `yaml:"audit"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("INSIGHT_API_KEY"); v != "" {
		c.Insight.APIKey = v
	}
	if v := os.Getenv("INSIGHT_BASE_URL"); v != "" {
		c.Insight.BaseURL = v
	}
	if v := os.Getenv("INSIGHT_MODEL"); v != "" {
		c.Insight.Model = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Audit.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("AUDIT_TOPIC"); v != "" {
		c.Audit.Topic = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Insight.Redis.Addr = v
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Insight.Enabled {
		if c.Insight.BaseURL == "" {
			return fmt.Errorf("insight.base_url is required when insight is enabled")
		}
		if c.Insight.APIKey == "" {
			return fmt.Errorf("insight.api_key is required when insight is enabled")
		}
		if c.Insight.Model == "" {
			return fmt.Errorf("insight.model is required when insight is enabled")
		}
	}
	if c.Audit.Enabled {
		if len(c.Audit.Kafka.Brokers) == 0 {
			return fmt.Errorf("audit.kafka.brokers cannot be empty when audit is enabled")
		}
		if c.Audit.Topic == "" {
			return fmt.Errorf("audit.topic is required when audit is enabled")
		}
	}
	return nil
}
