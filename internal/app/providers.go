package app

import (
	"time"

	"audio-transcriber/internal/app/api"
	"audio-transcriber/internal/app/api/openai"
	"audio-transcriber/internal/app/api/openai/whisper"
	appconfig "audio-transcriber/internal/app/config"
	envconfig "audio-transcriber/internal/config"
)

// provideTranscriber builds the OpenAI-compatible transcriber described by the
// backend config. The key comes from the config file first, then the environment.
func provideTranscriber(cfg *appconfig.BatchConfig, keys *envconfig.APIKeys) (api.Transcriber, error) {
	backend := cfg.Backend

	apiKey := backend.APIKey
	if apiKey == "" {
		key, err := keys.ForProvider(backend.Provider)
		if err != nil {
			return nil, err
		}
		apiKey = key
	}

	baseURL := backend.BaseURL
	if baseURL == "" && backend.Provider == "groq" {
		baseURL = openai.GroqBaseURL
	}

	client := openai.NewClient(openai.ClientConfig{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Timeout: time.Duration(backend.TimeoutSec) * time.Second,
	})

	return whisper.NewRemoteTranscriber(client, whisper.Options{
		Provider:    backend.Provider,
		Model:       backend.Model,
		Temperature: backend.Temperature,
		Prompt:      backend.Prompt,
	}), nil
}
