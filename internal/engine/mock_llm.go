package engine

import (
	"context"
	"fmt"
	"sync"
)

// MockClassifier implements the Classifier interface for testing. Responses
// are returned in the order calls arrive; an empty queue yields an error.
type MockClassifier struct {
	mu        sync.Mutex
	responses []mockResponse
	calls     []string
}

type mockResponse struct {
	text string
	err  error
}

// NewMockClassifier creates a mock classifier with no queued responses.
func NewMockClassifier() *MockClassifier {
	return &MockClassifier{}
}

// QueueResponse appends a successful response to the queue.
func (m *MockClassifier) QueueResponse(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, mockResponse{text: text})
}

// QueueError appends a failing response to the queue.
func (m *MockClassifier) QueueError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, mockResponse{err: err})
}

// AnalyzeAds pops the next queued response.
func (m *MockClassifier) AnalyzeAds(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, prompt)

	if len(m.responses) == 0 {
		return "", fmt.Errorf("mock classifier: no responses queued")
	}

	next := m.responses[0]
	m.responses = m.responses[1:]
	return next.text, next.err
}

// Calls returns the prompts received so far.
func (m *MockClassifier) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}
