package llm

import "encoding/json"

// MessageRole represents the role of a message sender.
type MessageRole string

const (
	// MessageRoleSystem is for system instructions.
	MessageRoleSystem MessageRole = "system"
	// MessageRoleUser is for user messages.
	MessageRoleUser MessageRole = "user"
	// MessageRoleAssistant is for assistant responses.
	MessageRoleAssistant MessageRole = "assistant"
	// MessageRoleTool is for tool/function results.
	MessageRoleTool MessageRole = "tool"
)

// ToolCall is a request from the model to invoke a named tool with JSON
// arguments.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ParseArguments decodes the JSON arguments into a map.
func (tc *ToolCall) ParseArguments() (map[string]any, error) {
	if tc.Arguments == "" {
		return map[string]any{}, nil
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(tc.Arguments), &args); err != nil {
		return nil, err
	}
	return args, nil
}

// ChatMessage represents a message in a chat conversation.
type ChatMessage struct {
	// Role is the role of the message sender.
	Role MessageRole `json:"role"`
	// Content is the text content of the message.
	Content string `json:"content,omitempty"`
	// ToolCalls holds tool invocations requested by the assistant.
	ToolCalls []*ToolCall `json:"tool_calls,omitempty"`
	// ToolCallID is the ID of the tool call this message is responding to.
	ToolCallID string `json:"tool_call_id,omitempty"`
}

// NewChatMessage creates a new chat message.
func NewChatMessage(role MessageRole, content string) ChatMessage {
	return ChatMessage{Role: role, Content: content}
}

// NewSystemMessage creates a new system message.
func NewSystemMessage(content string) ChatMessage {
	return NewChatMessage(MessageRoleSystem, content)
}

// NewUserMessage creates a new user message.
func NewUserMessage(content string) ChatMessage {
	return NewChatMessage(MessageRoleUser, content)
}

// NewAssistantMessage creates a new assistant message.
func NewAssistantMessage(content string) ChatMessage {
	return NewChatMessage(MessageRoleAssistant, content)
}

// NewToolMessage creates a new tool result message.
func NewToolMessage(toolCallID string, content string) ChatMessage {
	return ChatMessage{
		Role:       MessageRoleTool,
		Content:    content,
		ToolCallID: toolCallID,
	}
}

// HasToolCalls returns true if the message requests tool invocations.
func (m *ChatMessage) HasToolCalls() bool {
	return len(m.ToolCalls) > 0
}

// ToolMetadata describes a tool exposed to the model. It mirrors
// tools.ToolMetadata without importing it, to keep this package free of tool
// implementation concerns.
type ToolMetadata struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

// CompletionResponse is the result of a chat completion. Message is set when
// the model responded with structured content such as tool calls.
type CompletionResponse struct {
	Text    string       `json:"text"`
	Message *ChatMessage `json:"message,omitempty"`
}

// NewCompletionResponse creates a text-only completion response.
func NewCompletionResponse(text string) CompletionResponse {
	return CompletionResponse{Text: text}
}
