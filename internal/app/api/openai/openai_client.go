package openai

import (
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

// GroqBaseURL is the OpenAI-compatible endpoint of Groq's speech-to-text API.
const GroqBaseURL = "https://api.groq.com/openai/v1"

// ClientConfig describes how to reach an OpenAI-compatible transcription API.
type ClientConfig struct {
	APIKey  string
	BaseURL string
	// Timeout bounds a single HTTP request; zero leaves the client without a timeout.
	Timeout time.Duration
}

// NewClient builds a client for the given endpoint. The returned client is safe
// for concurrent use and is meant to be shared by every worker of a batch.
func NewClient(cfg ClientConfig) *openai.Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return openai.NewClientWithConfig(clientConfig)
}
