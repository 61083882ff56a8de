// Package agent implements a tool-calling chat agent: the model decides when
// to call a tool, observes its output, and then answers.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/junaidbinfarooq/ai/llm"
	"github.com/junaidbinfarooq/ai/memory"
	"github.com/junaidbinfarooq/ai/tools"
)

// DefaultMaxIterations bounds the tool-calling loop.
const DefaultMaxIterations = 10

// ToolCallResult records one executed tool call.
type ToolCallResult struct {
	// ToolName is the name of the tool that was called.
	ToolName string `json:"tool_name"`
	// ToolID is the ID of the tool call.
	ToolID string `json:"tool_id"`
	// Input is the parsed arguments passed to the tool.
	Input map[string]any `json:"input,omitempty"`
	// Output is the tool's output.
	Output *tools.ToolOutput `json:"output,omitempty"`
}

// ChatResponse is the agent's answer plus the tool activity that produced
// it.
type ChatResponse struct {
	// Response is the final text response.
	Response string `json:"response"`
	// ToolCalls are all tool calls made during the conversation turn.
	ToolCalls []*ToolCallResult `json:"tool_calls,omitempty"`
	// Sources are the tool outputs the answer was grounded on.
	Sources []*tools.ToolOutput `json:"sources,omitempty"`
}

// Agent is a chat agent that answers using a tool-calling LLM. Chat history
// persists across turns through its memory; it is not safe for concurrent
// use.
type Agent struct {
	llm           llm.ToolCallingLLM
	tools         []tools.Tool
	systemPrompt  string
	maxIterations int
	memory        memory.Memory
	logger        *slog.Logger
}

// Option configures an Agent.
type Option func(*Agent)

// WithSystemPrompt sets the system prompt.
func WithSystemPrompt(prompt string) Option {
	return func(a *Agent) {
		a.systemPrompt = prompt
	}
}

// WithMaxIterations sets the maximum number of tool-calling iterations per
// turn.
func WithMaxIterations(n int) Option {
	return func(a *Agent) {
		a.maxIterations = n
	}
}

// WithMemory sets the chat history memory.
func WithMemory(mem memory.Memory) Option {
	return func(a *Agent) {
		a.memory = mem
	}
}

// New creates a new Agent.
func New(model llm.ToolCallingLLM, agentTools []tools.Tool, opts ...Option) *Agent {
	a := &Agent{
		llm:           model,
		tools:         agentTools,
		maxIterations: DefaultMaxIterations,
		memory:        memory.NewChatMemoryBuffer(),
		logger:        slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Chat sends a message and returns the agent's response after any tool
// calls have been executed.
func (a *Agent) Chat(ctx context.Context, message string) (*ChatResponse, error) {
	chatHistory, err := a.memory.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat history: %w", err)
	}

	messages := make([]llm.ChatMessage, 0, len(chatHistory)+2)
	if a.systemPrompt != "" {
		messages = append(messages, llm.NewSystemMessage(a.systemPrompt))
	}
	messages = append(messages, chatHistory...)

	userMsg := llm.NewUserMessage(message)
	messages = append(messages, userMsg)
	if err := a.memory.Put(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("failed to store user message: %w", err)
	}

	toolMetadata := make([]*llm.ToolMetadata, len(a.tools))
	for i, t := range a.tools {
		meta := t.Metadata()
		toolMetadata[i] = &llm.ToolMetadata{
			Name:        meta.Name,
			Description: meta.Description,
			Parameters:  meta.Parameters,
		}
	}

	var allToolCalls []*ToolCallResult

	for iteration := 0; iteration < a.maxIterations; iteration++ {
		response, err := a.llm.ChatWithTools(ctx, messages, toolMetadata)
		if err != nil {
			return nil, fmt.Errorf("LLM chat with tools failed: %w", err)
		}

		if response.Message != nil && response.Message.HasToolCalls() {
			messages = append(messages, *response.Message)

			for _, tc := range response.Message.ToolCalls {
				result := a.executeToolCall(ctx, tc)
				allToolCalls = append(allToolCalls, result)
				messages = append(messages, llm.NewToolMessage(result.ToolID, result.Output.Content))
			}
			continue
		}

		finalResponse := response.Text
		if response.Message != nil && response.Message.Content != "" {
			finalResponse = response.Message.Content
		}

		if finalResponse != "" {
			if err := a.memory.Put(ctx, llm.NewAssistantMessage(finalResponse)); err != nil {
				return nil, fmt.Errorf("failed to store assistant message: %w", err)
			}
		}

		return &ChatResponse{
			Response:  finalResponse,
			ToolCalls: allToolCalls,
			Sources:   extractSources(allToolCalls),
		}, nil
	}

	return nil, fmt.Errorf("max iterations (%d) reached", a.maxIterations)
}

// Reset clears the agent's chat history.
func (a *Agent) Reset(ctx context.Context) error {
	return a.memory.Reset(ctx)
}

// executeToolCall runs a single tool call; a missing tool or a failing tool
// produces an error output that is fed back to the model rather than
// aborting the turn.
func (a *Agent) executeToolCall(ctx context.Context, tc *llm.ToolCall) *ToolCallResult {
	toolID := tc.ID
	if toolID == "" {
		toolID = uuid.NewString()
	}

	args, err := tc.ParseArguments()
	if err != nil {
		a.logger.Debug("failed to parse tool arguments", "tool", tc.Name, "error", err)
		return &ToolCallResult{
			ToolName: tc.Name,
			ToolID:   toolID,
			Output:   tools.NewErrorToolOutput(tc.Name, fmt.Errorf("invalid tool arguments: %w", err)),
		}
	}

	tool := a.getToolByName(tc.Name)
	if tool == nil {
		return &ToolCallResult{
			ToolName: tc.Name,
			ToolID:   toolID,
			Input:    args,
			Output:   tools.NewErrorToolOutput(tc.Name, fmt.Errorf("tool not found: %s", tc.Name)),
		}
	}

	output, err := tool.Call(ctx, args)
	if err != nil {
		a.logger.Debug("tool execution failed", "tool", tc.Name, "error", err)
		if output == nil {
			output = tools.NewErrorToolOutput(tc.Name, err)
		}
	}

	return &ToolCallResult{
		ToolName: tc.Name,
		ToolID:   toolID,
		Input:    args,
		Output:   output,
	}
}

// getToolByName finds a tool by name.
func (a *Agent) getToolByName(name string) tools.Tool {
	for _, t := range a.tools {
		if t.Metadata().Name == name {
			return t
		}
	}
	return nil
}

// extractSources collects successful tool outputs as sources.
func extractSources(toolCalls []*ToolCallResult) []*tools.ToolOutput {
	var sources []*tools.ToolOutput
	for _, tc := range toolCalls {
		if tc.Output != nil && !tc.Output.IsError {
			sources = append(sources, tc.Output)
		}
	}
	return sources
}
