package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"audio-transcriber/internal/app/api/openai/whisper"
	apperrors "audio-transcriber/internal/app/errors"
)

// BatchConfig is the run configuration read from a YAML file. CLI flags
// override individual fields after loading.
type BatchConfig struct {
	Backend BackendConfig `yaml:"backend"`
	Run     RunConfig     `yaml:"run"`
}

// BackendConfig selects and tunes the speech-to-text backend.
type BackendConfig struct {
	// Provider is "groq" or "openai"; both speak the OpenAI audio API.
	Provider string `yaml:"provider" validate:"required,oneof=groq openai"`
	// APIKey may reference the environment, e.g. ${GROQ_API_KEY}. When empty
	// the key is taken from the environment variable of the provider.
	APIKey      string  `yaml:"api_key,omitempty"`
	BaseURL     string  `yaml:"base_url,omitempty" validate:"omitempty,url"`
	Model       string  `yaml:"model" validate:"required"`
	Temperature float32 `yaml:"temperature" validate:"gte=0,lte=1"`
	Prompt      string  `yaml:"prompt,omitempty"`
	TimeoutSec  int     `yaml:"timeout_sec" validate:"gte=0"`
}

// RunConfig holds the batch-level settings.
type RunConfig struct {
	Language      string `yaml:"language" validate:"omitempty,min=2,max=8"`
	Strategy      string `yaml:"strategy" validate:"required,oneof=sequential concurrent parallel"`
	Mode          string `yaml:"mode" validate:"required,oneof=per-item combined simple kaldi"`
	Workers       int    `yaml:"workers" validate:"gte=0,lte=256"`
	OutputDir     string `yaml:"output_dir,omitempty"`
	StreamPerItem bool   `yaml:"stream_per_item"`
}

// DefaultBatchConfig mirrors the original tool: Groq whisper-large-v3, English,
// sequential, one sidecar file per input.
func DefaultBatchConfig() *BatchConfig {
	return &BatchConfig{
		Backend: BackendConfig{
			Provider:   "groq",
			Model:      whisper.GroqWhisperLargeV3,
			TimeoutSec: 300,
		},
		Run: RunConfig{
			Language: "en",
			Strategy: "sequential",
			Mode:     "per-item",
			Workers:  4,
		},
	}
}

// LoadBatchConfig reads configPath on top of the defaults. An empty path
// returns the defaults.
func LoadBatchConfig(configPath string) (*BatchConfig, error) {
	config := DefaultBatchConfig()
	if configPath == "" {
		return config, nil
	}

	configPath = os.ExpandEnv(configPath)
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config.expandEnvironmentVariables()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// expandEnvironmentVariables expands ${VAR} references in string fields
func (c *BatchConfig) expandEnvironmentVariables() {
	c.Backend.APIKey = os.ExpandEnv(c.Backend.APIKey)
	c.Backend.BaseURL = os.ExpandEnv(c.Backend.BaseURL)
	c.Run.OutputDir = os.ExpandEnv(c.Run.OutputDir)
}

var validate = validator.New()

// Validate checks struct tags and reports every offending field.
func (c *BatchConfig) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.Wrap(err, apperrors.ErrInvalidConfig.Error())
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldError := range validationErrs {
		field := strings.ToLower(fieldError.Namespace())
		switch fieldError.Tag() {
		case "required":
			messages = append(messages, apperrors.RequiredField(field).Error())
		case "oneof":
			messages = append(messages, apperrors.InvalidField(field, "must be one of "+fieldError.Param()).Error())
		case "url":
			messages = append(messages, apperrors.InvalidField(field, "must be a URL").Error())
		default:
			messages = append(messages, apperrors.InvalidField(field, fmt.Sprintf("failed %s=%s", fieldError.Tag(), fieldError.Param())).Error())
		}
	}
	return apperrors.Wrap(fmt.Errorf("%s", strings.Join(messages, "; ")), apperrors.ErrInvalidConfig.Error())
}
