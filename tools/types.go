// Package tools provides tool abstractions for chat agents.
package tools

import (
	"context"
	"encoding/json"
)

// ToolMetadata contains metadata about a tool.
type ToolMetadata struct {
	// Name is the unique name of the tool.
	Name string `json:"name"`
	// Description describes what the tool does.
	Description string `json:"description"`
	// Parameters is the JSON Schema for the tool's parameters.
	Parameters map[string]any `json:"parameters,omitempty"`
}

// DefaultParameters returns the default single-string-input parameters
// schema.
func DefaultParameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"input": map[string]any{
				"title": "input query string",
				"type":  "string",
			},
		},
		"required": []string{"input"},
	}
}

// GetParametersJSON returns the parameters as a JSON string.
func (m *ToolMetadata) GetParametersJSON() (string, error) {
	params := m.Parameters
	if params == nil {
		params = DefaultParameters()
	}
	data, err := json.Marshal(params)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ToolOutput represents the output of a tool execution.
type ToolOutput struct {
	// Content is the text content of the output.
	Content string `json:"content"`
	// ToolName is the name of the tool that produced this output.
	ToolName string `json:"tool_name"`
	// RawInput is the raw input that was passed to the tool.
	RawInput map[string]any `json:"raw_input,omitempty"`
	// RawOutput is the raw output from the tool.
	RawOutput any `json:"raw_output,omitempty"`
	// IsError indicates if this output represents an error.
	IsError bool `json:"is_error,omitempty"`
	// Error holds the error if IsError is true.
	Error error `json:"-"`
}

// NewToolOutput creates a new ToolOutput.
func NewToolOutput(toolName, content string, rawInput map[string]any, rawOutput any) *ToolOutput {
	return &ToolOutput{
		Content:   content,
		ToolName:  toolName,
		RawInput:  rawInput,
		RawOutput: rawOutput,
	}
}

// NewErrorToolOutput creates a new ToolOutput representing an error.
func NewErrorToolOutput(toolName string, err error) *ToolOutput {
	return &ToolOutput{
		Content:  err.Error(),
		ToolName: toolName,
		IsError:  true,
		Error:    err,
	}
}

// String returns the content of the tool output.
func (o *ToolOutput) String() string {
	return o.Content
}

// Tool is the interface that all tools must implement.
type Tool interface {
	// Metadata returns the tool's metadata.
	Metadata() *ToolMetadata
	// Call executes the tool with the given input.
	Call(ctx context.Context, input any) (*ToolOutput, error)
}
