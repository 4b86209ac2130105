package whisper

import (
	"context"
	"os"

	"github.com/sashabaranov/go-openai"

	"audio-transcriber/internal/app/api"
	apperrors "audio-transcriber/internal/app/errors"
)

// GroqWhisperLargeV3 is the model used by default against the Groq endpoint.
const GroqWhisperLargeV3 = "whisper-large-v3"

// Options tune the requests sent by RemoteTranscriber.
type Options struct {
	// Provider names the backend in errors and logs, e.g. "groq" or "openai".
	Provider    string
	Model       string
	Temperature float32
	Prompt      string
}

// RemoteTranscriber implements remote transcription using an OpenAI-compatible API.
type RemoteTranscriber struct {
	client *openai.Client
	opts   Options
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client, opts Options) *RemoteTranscriber {
	if opts.Model == "" {
		opts.Model = openai.Whisper1
	}
	if opts.Provider == "" {
		opts.Provider = "openai"
	}
	return &RemoteTranscriber{client: client, opts: opts}
}

// Transcript uploads the file and returns the recognised text.
func (rt *RemoteTranscriber) Transcript(ctx context.Context, inputFilePath string, language string) (string, error) {
	if _, err := os.Stat(inputFilePath); err != nil {
		return "", rt.fail(inputFilePath, apperrors.Wrap(err, apperrors.ErrFileNotFound.Error()))
	}

	req := openai.AudioRequest{
		Model:       rt.opts.Model,
		FilePath:    inputFilePath,
		Prompt:      rt.opts.Prompt,
		Temperature: rt.opts.Temperature,
		Language:    language,
		Format:      openai.AudioResponseFormatJSON,
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", rt.fail(inputFilePath, apperrors.Wrap(err, "createTranscription failed"))
	}

	return resp.Text, nil
}

func (rt *RemoteTranscriber) fail(path string, cause error) error {
	return &api.TranscriptionError{Provider: rt.opts.Provider, Path: path, Cause: cause}
}

var _ api.Transcriber = (*RemoteTranscriber)(nil)
