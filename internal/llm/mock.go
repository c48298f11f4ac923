package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MockResponse is one scripted reply. Text is a schema-less reply, as the
// tutor gets; Content is structured JSON, as the problem generator gets.
// Text wins when both are set.
type MockResponse struct {
	Text    string
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays scripted exchanges. Replies queued with Script
// answer requests made under that purpose; anything else takes from the
// shared queue passed to NewMockProvider. Every request is recorded.
type MockProvider struct {
	mu       sync.Mutex
	shared   []MockResponse
	scripts  map[string][]MockResponse
	purposes []string

	Calls []Request
}

// NewMockProvider creates a MockProvider whose shared queue holds responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{shared: responses, scripts: map[string][]MockResponse{}}
}

// Script queues replies for requests labelled purpose.
func (m *MockProvider) Script(purpose string, responses ...MockResponse) *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scripts[purpose] = append(m.scripts[purpose], responses...)
	return m
}

// Generate returns the next reply for the request's purpose. With nothing
// left to replay it fails as an unreachable provider would.
func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	purpose := PurposeFrom(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, req)
	m.purposes = append(m.purposes, purpose)

	resp, ok := m.next(purpose)
	if !ok {
		return nil, &ErrProviderUnavailable{Err: fmt.Errorf("no reply scripted for %s", purpose)}
	}
	if resp.Err != nil {
		return nil, resp.Err
	}

	content := resp.Content
	if resp.Text != "" || content == nil {
		content = TextContent(resp.Text)
	}
	return &Response{
		Content:    content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: StopEnd,
	}, nil
}

func (m *MockProvider) next(purpose string) (MockResponse, bool) {
	if q := m.scripts[purpose]; len(q) > 0 {
		m.scripts[purpose] = q[1:]
		return q[0], true
	}
	if len(m.shared) > 0 {
		r := m.shared[0]
		m.shared = m.shared[1:]
		return r, true
	}
	return MockResponse{}, false
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// Purposes returns the purpose of each recorded call, in order.
func (m *MockProvider) Purposes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.purposes...)
}
