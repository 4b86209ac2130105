package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	apperrors "audio-transcriber/internal/app/errors"
)

// APIKeys holds all API keys loaded from environment
type APIKeys struct {
	Groq   string
	OpenAI string
}

// LoadEnv loads environment variables from the first .env file found.
// Missing files are not an error: keys may be set system-wide.
func LoadEnv(out io.Writer) error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			fmt.Fprintf(out, "✅ Loaded environment variables from %s\n", envPath)
			break
		}
	}

	return nil
}

// GetAPIKeys reads the API keys from the environment. Formats are checked by
// ForProvider, only for the provider a run actually uses.
func GetAPIKeys() *APIKeys {
	return &APIKeys{
		Groq:   strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		OpenAI: strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
	}
}

// ForProvider returns the key of the named provider, failing fast when it is
// missing or malformed.
func (k *APIKeys) ForProvider(provider string) (string, error) {
	var key, env, prefix string
	switch provider {
	case "groq":
		key, env, prefix = k.Groq, "GROQ_API_KEY", "gsk_"
	case "openai":
		key, env, prefix = k.OpenAI, "OPENAI_API_KEY", "sk-"
	default:
		return "", apperrors.Wrap(fmt.Errorf("%q", provider), apperrors.ErrProviderNotFound.Error())
	}

	if key == "" {
		return "", apperrors.Wrap(fmt.Errorf("set %s in the environment or a .env file", env), apperrors.ErrMissingAPIKey.Error())
	}
	if !strings.HasPrefix(key, prefix) {
		return "", apperrors.Wrap(fmt.Errorf("%s must start with '%s'", env, prefix), apperrors.ErrInvalidAPIKey.Error())
	}
	if len(key) < 20 {
		return "", apperrors.Wrap(fmt.Errorf("%s too short", env), apperrors.ErrInvalidAPIKey.Error())
	}
	return key, nil
}

// InitializeConfig loads the environment and returns the keys found in it.
func InitializeConfig(out io.Writer) (*APIKeys, error) {
	if err := LoadEnv(out); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}
	return GetAPIKeys(), nil
}
