// Package llm provides interfaces and clients for chat language models.
package llm

import "context"

// LLM is the interface for interacting with chat language models.
type LLM interface {
	// Complete generates a completion for a given prompt.
	Complete(ctx context.Context, prompt string) (string, error)
	// Chat generates a response for a list of chat messages.
	Chat(ctx context.Context, messages []ChatMessage) (string, error)
}

// ToolCallingLLM extends LLM with tool/function calling capabilities.
type ToolCallingLLM interface {
	LLM
	// ChatWithTools generates a response that may include tool calls.
	ChatWithTools(ctx context.Context, messages []ChatMessage, tools []*ToolMetadata) (CompletionResponse, error)
	// SupportsToolCalling returns true if the model supports tool calling.
	SupportsToolCalling() bool
}
