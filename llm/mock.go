package llm

import "context"

// MockLLM is a mock implementation of the LLM interfaces. Responses are
// returned in order across ChatWithTools calls, which lets tests script a
// tool-call turn followed by a final answer.
type MockLLM struct {
	// Response is the text response for Chat/Complete.
	Response string
	// Responses is the queue of completion responses for ChatWithTools.
	Responses []CompletionResponse
	// Err is the error to return (if any).
	Err error
	// Requests records the messages of every call, for assertions.
	Requests [][]ChatMessage

	next int
}

// NewMockLLM creates a new MockLLM with a simple text response.
func NewMockLLM(response string) *MockLLM {
	return &MockLLM{Response: response}
}

func (m *MockLLM) Complete(ctx context.Context, prompt string) (string, error) {
	return m.Response, m.Err
}

func (m *MockLLM) Chat(ctx context.Context, messages []ChatMessage) (string, error) {
	m.Requests = append(m.Requests, messages)
	return m.Response, m.Err
}

// SupportsToolCalling always returns true for the mock.
func (m *MockLLM) SupportsToolCalling() bool {
	return true
}

// ChatWithTools pops the next queued response, falling back to the plain
// text response once the queue is exhausted.
func (m *MockLLM) ChatWithTools(ctx context.Context, messages []ChatMessage, tools []*ToolMetadata) (CompletionResponse, error) {
	m.Requests = append(m.Requests, messages)
	if m.Err != nil {
		return CompletionResponse{}, m.Err
	}
	if m.next < len(m.Responses) {
		resp := m.Responses[m.next]
		m.next++
		return resp, nil
	}
	return NewCompletionResponse(m.Response), nil
}

var _ ToolCallingLLM = (*MockLLM)(nil)
