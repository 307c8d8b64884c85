// Package config loads the configuration of the royale command.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL string        = "https://api.clashroyale.com/v1/"
	DefaultTimeout time.Duration = 6 * time.Second

	EnvToken        = "ROYALE_API_TOKEN"
	EnvBaseURL      = "ROYALE_API_URL"
	EnvTimeout      = "ROYALE_TIMEOUT"
	EnvValidateTags = "ROYALE_VALIDATE_TAGS"
)

type Config struct {
	API       APIConfig       `yaml:"api"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type APIConfig struct {
	BaseURL      string        `yaml:"base_url"`
	Token        string        `yaml:"token"`
	Timeout      time.Duration `yaml:"timeout"`
	ValidateTags bool          `yaml:"validate_tags"`
	RetryMax     int           `yaml:"retry_max"`
}

type RateLimitConfig struct {
	// RequestsPerSecond is the sustained request rate, 0 for the client default.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:      DefaultBaseURL,
			Timeout:      DefaultTimeout,
			ValidateTags: true,
			RetryMax:     3,
		},
	}
}

// Load reads the YAML file at path, then applies the variables found in envFiles
// and in the environment. A missing config file or env file is not an error.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if len(path) > 0 {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, errors.Wrap(err, "failed to read the config file")
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrap(err, "failed to parse the config file")
			}
		}
	}

	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// variables already set in the environment win over the env files
func loadEnvFiles(envFiles []string) error {
	for _, name := range envFiles {
		if _, err := os.Stat(name); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return errors.Wrapf(err, "failed to load %s", name)
		}
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if token := os.Getenv(EnvToken); len(token) > 0 {
		c.API.Token = token
	}
	if baseURL := os.Getenv(EnvBaseURL); len(baseURL) > 0 {
		c.API.BaseURL = baseURL
	}
	if s := os.Getenv(EnvTimeout); len(s) > 0 {
		timeout, err := time.ParseDuration(s)
		if err != nil {
			return errors.Wrapf(err, "failed to parse %s", EnvTimeout)
		}
		c.API.Timeout = timeout
	}
	if s := os.Getenv(EnvValidateTags); len(s) > 0 {
		validateTags, err := strconv.ParseBool(s)
		if err != nil {
			return errors.Wrapf(err, "failed to parse %s", EnvValidateTags)
		}
		c.API.ValidateTags = validateTags
	}

	return nil
}
