// Package config resolves the directory client settings from an optional
// YAML file and the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go-workforce/internal/gateway"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	EnvConfigPath = "DIRECTORY_CONFIG"
	EnvBaseURL    = "DIRECTORY_BASE_URL"
	EnvTimeout    = "DIRECTORY_TIMEOUT"

	NotifyText = "text"
	NotifyLog  = "log"
)

type Client struct {
	BaseURL      string        `yaml:"base_url"`
	Timeout      time.Duration `yaml:"timeout"`
	LogLevel     string        `yaml:"log_level"`
	NotifyFormat string        `yaml:"notify_format"`
}

func Default() Client {
	return Client{
		BaseURL:      gateway.DefaultBaseURL,
		Timeout:      gateway.DefaultTimeout,
		LogLevel:     "warn",
		NotifyFormat: NotifyText,
	}
}

// Load starts from Default, applies the YAML file at path (or at
// $DIRECTORY_CONFIG when path is empty), then the environment overrides.
// A missing file is an error only when a path was given explicitly.
func Load(path string) (Client, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return Client{}, err
			}
		}
	}

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Client{}, fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
		}
		cfg.Timeout = d
	}

	if err := cfg.Validate(); err != nil {
		return Client{}, err
	}
	return cfg, nil
}

func (c *Client) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

func (c Client) Validate() error {
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("base_url must be an http(s) URL, got %q", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.NotifyFormat != NotifyText && c.NotifyFormat != NotifyLog {
		return fmt.Errorf("notify_format must be %q or %q, got %q", NotifyText, NotifyLog, c.NotifyFormat)
	}
	return nil
}

func (c Client) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
