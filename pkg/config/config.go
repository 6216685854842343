package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/travigo/journey-explainer/pkg/util"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTfLBaseURL  = "https://api.tfl.gov.uk"
	DefaultOllamaHost  = "http://localhost:11434"
	DefaultOllamaModel = "llama2:7b"
)

// Config is resolved once at start-up and handed to every component that needs it
type Config struct {
	TfL    TfLConfig    `yaml:"tfl"`
	Ollama OllamaConfig `yaml:"ollama"`
	Redis  RedisConfig  `yaml:"redis"`
}

type TfLConfig struct {
	BaseURL string `yaml:"base_url" validate:"required,url"`
	AppID   string `yaml:"app_id"`
	AppKey  string `yaml:"app_key"`

	SearchTimeout  time.Duration `yaml:"search_timeout" validate:"gt=0"`
	JourneyTimeout time.Duration `yaml:"journey_timeout" validate:"gt=0"`
}

// HasCredentials reports whether authenticated (higher quota) TfL access is configured
func (t TfLConfig) HasCredentials() bool {
	return t.AppID != "" && t.AppKey != ""
}

type OllamaConfig struct {
	Host  string `yaml:"host" validate:"required,url"`
	Model string `yaml:"model" validate:"required"`

	ListTimeout     time.Duration `yaml:"list_timeout" validate:"gt=0"`
	GenerateTimeout time.Duration `yaml:"generate_timeout" validate:"gt=0"`

	// Zero disables the liveness cache
	LivenessTTL time.Duration `yaml:"liveness_ttl" validate:"gte=0"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	Database int    `yaml:"database" validate:"gte=0"`
}

func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

func Default() *Config {
	return &Config{
		TfL: TfLConfig{
			BaseURL:        DefaultTfLBaseURL,
			SearchTimeout:  10 * time.Second,
			JourneyTimeout: 15 * time.Second,
		},
		Ollama: OllamaConfig{
			Host:            DefaultOllamaHost,
			Model:           DefaultOllamaModel,
			ListTimeout:     5 * time.Second,
			GenerateTimeout: 45 * time.Second,
		},
	}
}

// Load builds the configuration from the defaults, an optional YAML file and then the environment
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvironment(util.GetEnvironmentVariables()); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvironment(env map[string]string) error {
	if value, ok := util.LookupEnvironmentVariable(env, "TFL_APP_ID"); ok {
		c.TfL.AppID = value
	}
	if value, ok := util.LookupEnvironmentVariable(env, "TFL_APP_KEY"); ok {
		c.TfL.AppKey = value
	}
	if value, ok := util.LookupEnvironmentVariable(env, "TFL_API_BASE_URL"); ok {
		c.TfL.BaseURL = value
	}

	if value, ok := util.LookupEnvironmentVariable(env, "OLLAMA_HOST"); ok {
		c.Ollama.Host = value
	}
	if value, ok := util.LookupEnvironmentVariable(env, "OLLAMA_MODEL"); ok {
		c.Ollama.Model = value
	}
	if value, ok := util.LookupEnvironmentVariable(env, "EXPLAINER_LIVENESS_TTL"); ok {
		ttl, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("EXPLAINER_LIVENESS_TTL: %w", err)
		}
		c.Ollama.LivenessTTL = ttl
	}

	if value, ok := util.LookupEnvironmentVariable(env, "EXPLAINER_REDIS_ADDRESS"); ok {
		c.Redis.Address = value
	}
	if value, ok := util.LookupEnvironmentVariable(env, "EXPLAINER_REDIS_PASSWORD"); ok {
		c.Redis.Password = value
	}
	if value, ok := util.LookupEnvironmentVariable(env, "EXPLAINER_REDIS_DATABASE"); ok {
		database, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("EXPLAINER_REDIS_DATABASE: %w", err)
		}
		c.Redis.Database = database
	}

	return nil
}

func (c *Config) Validate() error {
	v := validator.New()

	if err := v.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			first := validationErrors[0]
			return fmt.Errorf("invalid configuration: %s failed %q", first.Namespace(), first.Tag())
		}
		return err
	}

	return nil
}
