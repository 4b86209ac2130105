package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "audio-transcriber/internal/app/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "a2t.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadBatchConfig_Defaults(t *testing.T) {
	config, err := LoadBatchConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBatchConfig(), config)
	assert.NoError(t, config.Validate())
}

func TestLoadBatchConfig_OverridesAndEnv(t *testing.T) {
	t.Setenv("A2T_TEST_KEY", "sk-from-env-1234567890abcdef")
	path := writeConfig(t, `
backend:
  provider: openai
  api_key: ${A2T_TEST_KEY}
  model: whisper-1
  temperature: 0.2
run:
  language: ur
  strategy: concurrent
  mode: kaldi
  workers: 8
`)

	config, err := LoadBatchConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "openai", config.Backend.Provider)
	assert.Equal(t, "sk-from-env-1234567890abcdef", config.Backend.APIKey)
	assert.Equal(t, 300, config.Backend.TimeoutSec, "unset fields keep their defaults")
	assert.Equal(t, "ur", config.Run.Language)
	assert.Equal(t, "concurrent", config.Run.Strategy)
	assert.Equal(t, "kaldi", config.Run.Mode)
	assert.Equal(t, 8, config.Run.Workers)
}

func TestLoadBatchConfig_Invalid(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		errorContains string
	}{
		{
			name:          "unknown provider",
			content:       "backend:\n  provider: azure\n",
			errorContains: "backend.provider is invalid",
		},
		{
			name:          "unknown strategy",
			content:       "run:\n  strategy: random\n",
			errorContains: "run.strategy is invalid",
		},
		{
			name:          "negative workers",
			content:       "run:\n  workers: -1\n",
			errorContains: "run.workers is invalid",
		},
		{
			name:          "bad base url",
			content:       "backend:\n  base_url: not a url\n",
			errorContains: "must be a URL",
		},
		{
			name:          "empty model",
			content:       "backend:\n  model: \"\"\n",
			errorContains: "backend.model is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBatchConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidConfig))
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestLoadBatchConfig_MissingFile(t *testing.T) {
	_, err := LoadBatchConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadBatchConfig_MalformedYAML(t *testing.T) {
	_, err := LoadBatchConfig(writeConfig(t, "backend: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse YAML")
}
