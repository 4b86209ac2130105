package api

import (
	"context"
	"fmt"
)

// Transcriber defines a transcription interface for converting audio files to text.
// Implementations must be safe for concurrent use.
type Transcriber interface {
	Transcript(ctx context.Context, inputFilePath string, language string) (string, error)
}

// TranscriptionError is returned by backends when a single file could not be transcribed.
type TranscriptionError struct {
	Provider string
	Path     string
	Cause    error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("%s: transcribe %s: %v", e.Provider, e.Path, e.Cause)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Cause
}
