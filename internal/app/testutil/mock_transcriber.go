package testutil

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"audio-transcriber/internal/app/api"
)

// MockTranscriber is a configurable implementation of api.Transcriber.
// Responses, errors, panics and latencies can be set per file path; it also
// records every call and the highest number of calls that were in flight at once.
type MockTranscriber struct {
	mock.Mock
	mu sync.Mutex

	DefaultLatency  time.Duration
	DefaultError    error
	DefaultResponse string
	EnableRealistic bool

	CallHistory []TranscriptionCall
	ErrorMap    map[string]error
	ResponseMap map[string]string
	LatencyMap  map[string]time.Duration
	PanicMap    map[string]string

	inFlight    int
	maxInFlight int
}

// TranscriptionCall represents a single transcription call for tracking
type TranscriptionCall struct {
	InputFilePath string
	Language      string
	Timestamp     time.Time
	Response      string
	Error         error
}

// NewMockTranscriber creates a mock with no latency and realistic responses.
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{
		DefaultResponse: "This is a mock transcription result.",
		EnableRealistic: true,
		ErrorMap:        make(map[string]error),
		ResponseMap:     make(map[string]string),
		LatencyMap:      make(map[string]time.Duration),
		PanicMap:        make(map[string]string),
	}
}

// Transcript implements the api.Transcriber interface
func (m *MockTranscriber) Transcript(ctx context.Context, inputFilePath string, language string) (string, error) {
	m.mu.Lock()
	m.inFlight++
	if m.inFlight > m.maxInFlight {
		m.maxInFlight = m.inFlight
	}
	latency := m.DefaultLatency
	if l, ok := m.LatencyMap[inputFilePath]; ok {
		latency = l
	}
	panicMsg, shouldPanic := m.PanicMap[inputFilePath]
	hasExpectations := len(m.ExpectedCalls) > 0
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.inFlight--
		m.mu.Unlock()
	}()

	if latency > 0 {
		select {
		case <-time.After(latency):
		case <-ctx.Done():
			m.record(inputFilePath, language, "", ctx.Err())
			return "", ctx.Err()
		}
	}

	if shouldPanic {
		panic(panicMsg)
	}

	if hasExpectations {
		args := m.Called(inputFilePath, language)
		m.record(inputFilePath, language, args.String(0), args.Error(1))
		return args.String(0), args.Error(1)
	}

	response, err := m.resolve(inputFilePath)
	m.record(inputFilePath, language, response, err)
	return response, err
}

func (m *MockTranscriber) resolve(inputFilePath string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.ErrorMap[inputFilePath]; ok {
		return "", err
	}
	if m.DefaultError != nil {
		return "", m.DefaultError
	}
	if r, ok := m.ResponseMap[inputFilePath]; ok {
		return r, nil
	}
	if m.EnableRealistic {
		return generateRealisticResponse(inputFilePath), nil
	}
	return m.DefaultResponse, nil
}

func (m *MockTranscriber) record(path, language, response string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallHistory = append(m.CallHistory, TranscriptionCall{
		InputFilePath: path,
		Language:      language,
		Timestamp:     time.Now(),
		Response:      response,
		Error:         err,
	})
}

// WithDefaultLatency sets the default processing latency
func (m *MockTranscriber) WithDefaultLatency(latency time.Duration) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DefaultLatency = latency
	return m
}

// WithDefaultError sets the default error to return
func (m *MockTranscriber) WithDefaultError(err error) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DefaultError = err
	return m
}

// WithDefaultResponse sets the default response text and disables realistic responses
func (m *MockTranscriber) WithDefaultResponse(response string) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DefaultResponse = response
	m.EnableRealistic = false
	return m
}

// SetErrorForFile sets a specific error for a given file path
func (m *MockTranscriber) SetErrorForFile(filePath string, err error) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ErrorMap[filePath] = err
	return m
}

// SetResponseForFile sets a specific response for a given file path
func (m *MockTranscriber) SetResponseForFile(filePath string, response string) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResponseMap[filePath] = response
	return m
}

// SetLatencyForFile sets a specific latency for a given file path
func (m *MockTranscriber) SetLatencyForFile(filePath string, latency time.Duration) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LatencyMap[filePath] = latency
	return m
}

// SetPanicForFile makes calls for filePath panic with msg.
func (m *MockTranscriber) SetPanicForFile(filePath string, msg string) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PanicMap[filePath] = msg
	return m
}

// SimulateNetworkError simulates network errors for API-based transcription
func (m *MockTranscriber) SimulateNetworkError(filePath string) *MockTranscriber {
	return m.SetErrorForFile(filePath, &api.TranscriptionError{
		Provider: "mock",
		Path:     filePath,
		Cause:    fmt.Errorf("network error: connection timeout"),
	})
}

// SimulateQuotaExceededError simulates quota exceeded errors
func (m *MockTranscriber) SimulateQuotaExceededError(filePath string) *MockTranscriber {
	return m.SetErrorForFile(filePath, &api.TranscriptionError{
		Provider: "mock",
		Path:     filePath,
		Cause:    fmt.Errorf("quota exceeded: API rate limit reached"),
	})
}

// GetCallCount returns the total number of completed calls
func (m *MockTranscriber) GetCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.CallHistory)
}

// GetCallHistory returns the complete call history
func (m *MockTranscriber) GetCallHistory() []TranscriptionCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	history := make([]TranscriptionCall, len(m.CallHistory))
	copy(history, m.CallHistory)
	return history
}

// WasCalledWith checks if the transcriber was called with a specific file path
func (m *MockTranscriber) WasCalledWith(filePath string) bool {
	for _, call := range m.GetCallHistory() {
		if call.InputFilePath == filePath {
			return true
		}
	}
	return false
}

// MaxInFlight returns the highest number of concurrent calls observed.
func (m *MockTranscriber) MaxInFlight() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.maxInFlight
}

// ExpectTranscriptCall sets up an expectation for a specific transcript call
func (m *MockTranscriber) ExpectTranscriptCall(filePath, language, response string, err error) *MockTranscriber {
	m.On("Transcript", filePath, language).Return(response, err)
	return m
}

func generateRealisticResponse(filePath string) string {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	switch {
	case strings.Contains(nameWithoutExt, "jfk"):
		return "And so, my fellow Americans, ask not what your country can do for you, ask what you can do for your country."
	case strings.Contains(nameWithoutExt, "empty"), strings.Contains(nameWithoutExt, "silence"):
		return ""
	case strings.Contains(nameWithoutExt, "urdu"):
		return "یہ ایک آزمائشی آڈیو فائل ہے۔"
	}
	return fmt.Sprintf("Mock transcription result for file: %s.", filename)
}

// Interface compliance check
var _ api.Transcriber = (*MockTranscriber)(nil)
