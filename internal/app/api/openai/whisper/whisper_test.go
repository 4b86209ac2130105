package whisper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audio-transcriber/internal/app/api"
)

// TestRemoteTranscriber_Transcript tests the RemoteTranscriber implementation
func TestRemoteTranscriber_Transcript(t *testing.T) {
	tests := []struct {
		name          string
		mockResponse  string
		mockStatus    int
		expectedText  string
		expectError   bool
		errorContains string
	}{
		{
			name:         "successful transcription",
			mockResponse: `{"text": "This is a test transcription"}`,
			mockStatus:   http.StatusOK,
			expectedText: "This is a test transcription",
		},
		{
			name:         "urdu transcription",
			mockResponse: `{"text": "یہ ایک آزمائش ہے"}`,
			mockStatus:   http.StatusOK,
			expectedText: "یہ ایک آزمائش ہے",
		},
		{
			name:          "API error - unauthorized",
			mockResponse:  `{"error": {"message": "Invalid API key", "type": "invalid_request_error"}}`,
			mockStatus:    http.StatusUnauthorized,
			expectError:   true,
			errorContains: "401",
		},
		{
			name:          "API error - rate limit",
			mockResponse:  `{"error": {"message": "Rate limit exceeded", "type": "rate_limit_error"}}`,
			mockStatus:    http.StatusTooManyRequests,
			expectError:   true,
			errorContains: "429",
		},
		{
			name:         "empty transcription",
			mockResponse: `{"text": ""}`,
			mockStatus:   http.StatusOK,
			expectedText: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.True(t, strings.HasSuffix(r.URL.Path, "/audio/transcriptions"))
				assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

				require.NoError(t, r.ParseMultipartForm(32<<20))
				assert.Equal(t, GroqWhisperLargeV3, r.FormValue("model"))
				assert.Equal(t, "ur", r.FormValue("language"))
				assert.Equal(t, "json", r.FormValue("response_format"))

				file, _, err := r.FormFile("file")
				require.NoError(t, err)
				file.Close()

				w.WriteHeader(tt.mockStatus)
				w.Write([]byte(tt.mockResponse))
			}))
			defer server.Close()

			rt := newTestTranscriber(server.URL)
			result, err := rt.Transcript(context.Background(), createTempTestFile(t, "audio.wav"), "ur")

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)

				var terr *api.TranscriptionError
				require.True(t, errors.As(err, &terr))
				assert.Equal(t, "groq", terr.Provider)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedText, result)
		})
	}
}

// TestRemoteTranscriber_FileNotFound tests handling of non-existent files
func TestRemoteTranscriber_FileNotFound(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	rt := newTestTranscriber(server.URL)
	_, err := rt.Transcript(context.Background(), "/non/existent/file.mp3", "en")

	require.Error(t, err)
	var terr *api.TranscriptionError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, "/non/existent/file.mp3", terr.Path)
	assert.Zero(t, atomic.LoadInt32(&calls), "no request should be sent for a missing file")
}

// TestRemoteTranscriber_Defaults checks that an empty Options falls back to whisper-1
func TestRemoteTranscriber_Defaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		assert.Equal(t, openai.Whisper1, r.FormValue("model"))
		assert.Empty(t, r.FormValue("language"))
		w.Write([]byte(`{"text": "ok"}`))
	}))
	defer server.Close()

	config := openai.DefaultConfig("test-api-key")
	config.BaseURL = server.URL + "/v1"
	rt := NewRemoteTranscriber(openai.NewClientWithConfig(config), Options{})

	text, err := rt.Transcript(context.Background(), createTempTestFile(t, "a.mp3"), "")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}

func newTestTranscriber(serverURL string) *RemoteTranscriber {
	config := openai.DefaultConfig("test-api-key")
	config.BaseURL = serverURL + "/v1"
	return NewRemoteTranscriber(openai.NewClientWithConfig(config), Options{
		Provider: "groq",
		Model:    GroqWhisperLargeV3,
	})
}

func createTempTestFile(t *testing.T, name string) string {
	t.Helper()

	tempFile := filepath.Join(t.TempDir(), filepath.Base(name))

	// Minimal WAV header
	wavHeader := []byte{
		0x52, 0x49, 0x46, 0x46, // "RIFF"
		0x24, 0x00, 0x00, 0x00, // File size
		0x57, 0x41, 0x56, 0x45, // "WAVE"
		0x66, 0x6D, 0x74, 0x20, // "fmt "
		0x10, 0x00, 0x00, 0x00, // Chunk size
		0x01, 0x00, // Audio format (PCM)
		0x01, 0x00, // Channels (mono)
		0x80, 0x3E, 0x00, 0x00, // Sample rate (16000)
		0x00, 0x7D, 0x00, 0x00, // Byte rate
		0x02, 0x00, // Block align
		0x10, 0x00, // Bits per sample
		0x64, 0x61, 0x74, 0x61, // "data"
		0x00, 0x00, 0x00, 0x00, // Data size
	}
	require.NoError(t, os.WriteFile(tempFile, wavHeader, 0644))
	return tempFile
}
