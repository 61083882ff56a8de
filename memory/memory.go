// Package memory provides chat history management for agents.
package memory

import (
	"context"

	"github.com/junaidbinfarooq/ai/llm"
)

// DefaultMaxMessages is the default history cap for ChatMemoryBuffer.
const DefaultMaxMessages = 50

// Memory is the interface for chat history storage.
type Memory interface {
	// GetAll retrieves all chat history.
	GetAll(ctx context.Context) ([]llm.ChatMessage, error)
	// Put adds a message to the chat history.
	Put(ctx context.Context, message llm.ChatMessage) error
	// Reset clears all chat history.
	Reset(ctx context.Context) error
}

// ChatMemoryBuffer is an in-process memory keeping the most recent messages
// up to a fixed cap. It is not safe for concurrent use.
type ChatMemoryBuffer struct {
	maxMessages int
	messages    []llm.ChatMessage
}

// ChatMemoryBufferOption configures a ChatMemoryBuffer.
type ChatMemoryBufferOption func(*ChatMemoryBuffer)

// WithMaxMessages sets the history cap.
func WithMaxMessages(n int) ChatMemoryBufferOption {
	return func(m *ChatMemoryBuffer) {
		m.maxMessages = n
	}
}

// NewChatMemoryBuffer creates a new ChatMemoryBuffer.
func NewChatMemoryBuffer(opts ...ChatMemoryBufferOption) *ChatMemoryBuffer {
	m := &ChatMemoryBuffer{
		maxMessages: DefaultMaxMessages,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// GetAll returns a copy of the stored history.
func (m *ChatMemoryBuffer) GetAll(ctx context.Context) ([]llm.ChatMessage, error) {
	out := make([]llm.ChatMessage, len(m.messages))
	copy(out, m.messages)
	return out, nil
}

// Put appends a message, dropping the oldest ones beyond the cap.
func (m *ChatMemoryBuffer) Put(ctx context.Context, message llm.ChatMessage) error {
	m.messages = append(m.messages, message)
	if m.maxMessages > 0 && len(m.messages) > m.maxMessages {
		m.messages = m.messages[len(m.messages)-m.maxMessages:]
	}
	return nil
}

// Reset clears the history.
func (m *ChatMemoryBuffer) Reset(ctx context.Context) error {
	m.messages = nil
	return nil
}

// Ensure ChatMemoryBuffer implements Memory.
var _ Memory = (*ChatMemoryBuffer)(nil)
