package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-workforce/internal/config"
	"go-workforce/internal/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "directory.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv(config.EnvBaseURL, "")
	t.Setenv(config.EnvTimeout, "")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load("")

	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "http://localhost:3000/api", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, gateway.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, gateway.DefaultTimeout, cfg.Timeout)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
base_url: https://hr.example.com/api
timeout: 3s
log_level: debug
notify_format: log
`)

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "https://hr.example.com/api", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, config.NotifyLog, cfg.NotifyFormat)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "base_url: https://file.example.com/api\ntimeout: 3s\n")
	t.Setenv(config.EnvConfigPath, path)
	t.Setenv(config.EnvBaseURL, "http://env.example.com/api")
	t.Setenv(config.EnvTimeout, "750ms")

	cfg, err := config.Load("")

	require.NoError(t, err)
	assert.Equal(t, "http://env.example.com/api", cfg.BaseURL)
	assert.Equal(t, 750*time.Millisecond, cfg.Timeout)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		env     map[string]string
		wantErr string
	}{
		{name: "unknown key", body: "base_ur: http://x\n", wantErr: "failed to parse YAML"},
		{name: "bad url", body: "base_url: localhost:3000\n", wantErr: "base_url must be"},
		{name: "bad level", body: "log_level: loud\n", wantErr: "invalid log_level"},
		{name: "bad notify format", body: "notify_format: toast\n", wantErr: "notify_format must be"},
		{name: "bad env timeout", body: "", env: map[string]string{config.EnvTimeout: "soon"}, wantErr: "invalid DIRECTORY_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load(writeFile(t, tt.body))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := config.Load(missing)
	assert.Error(t, err)

	t.Setenv(config.EnvConfigPath, missing)
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
