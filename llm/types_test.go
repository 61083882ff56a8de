package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolCall_ParseArguments(t *testing.T) {
	tc := &ToolCall{
		ID:        "call_1",
		Name:      "similarity_search",
		Arguments: `{"input": "movies about heists", "max_items": 5}`,
	}

	args, err := tc.ParseArguments()
	require.NoError(t, err)
	assert.Equal(t, "movies about heists", args["input"])
	assert.Equal(t, 5.0, args["max_items"])
}

func TestToolCall_ParseArgumentsEmpty(t *testing.T) {
	tc := &ToolCall{ID: "call_1", Name: "similarity_search"}

	args, err := tc.ParseArguments()
	require.NoError(t, err)
	assert.Empty(t, args)
}

func TestToolCall_ParseArgumentsInvalid(t *testing.T) {
	tc := &ToolCall{Arguments: "{not json"}

	_, err := tc.ParseArguments()
	require.Error(t, err)
}

func TestChatMessage_Constructors(t *testing.T) {
	sys := NewSystemMessage("be helpful")
	assert.Equal(t, MessageRoleSystem, sys.Role)

	toolMsg := NewToolMessage("call_1", "three results")
	assert.Equal(t, MessageRoleTool, toolMsg.Role)
	assert.Equal(t, "call_1", toolMsg.ToolCallID)
	assert.False(t, toolMsg.HasToolCalls())

	assistant := ChatMessage{
		Role:      MessageRoleAssistant,
		ToolCalls: []*ToolCall{{ID: "call_1", Name: "similarity_search"}},
	}
	assert.True(t, assistant.HasToolCalls())
}
