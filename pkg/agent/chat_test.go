package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatCannedReplySkipsLLM(t *testing.T) {
	llm := failingCompleter()
	h := NewChatHandler(llm, testLogger())

	result, err := h.Process(context.Background(), Intent{Type: IntentChat, OriginalMessage: "谢谢你"}, ConversationContext{})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Contains(t, result.Message, "不客气")
	assert.Empty(t, llm.requests)
}

func TestChatUsesLLMForUnmatchedSmallTalk(t *testing.T) {
	llm := scriptedCompleter("今天天气不错！想了解什么课程吗？")
	h := NewChatHandler(llm, testLogger())

	result, err := h.Process(context.Background(), Intent{Type: IntentChat, OriginalMessage: "今天心情如何"}, ConversationContext{})
	require.NoError(t, err)
	assert.Equal(t, "今天天气不错！想了解什么课程吗？", result.Message)
}

func TestChatNeverFails(t *testing.T) {
	h := NewChatHandler(failingCompleter(), testLogger())

	result, err := h.Process(context.Background(), Intent{Type: IntentChat, OriginalMessage: "今天心情如何"}, ConversationContext{})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, chatRedirect, result.Message)
}

func TestChatPreservesContext(t *testing.T) {
	h := NewChatHandler(failingCompleter(), testLogger())

	cc := ConversationContext{
		Params:          Params{Faculty: "创新工程学院"},
		LastRecommended: testCourses()[:1],
	}
	result, err := h.Process(context.Background(), Intent{Type: IntentChat, OriginalMessage: "你好"}, cc)
	require.NoError(t, err)

	back := ContextFromMap(result.UpdatedContext, nil)
	assert.Equal(t, "创新工程学院", back.Params.Faculty)
	assert.True(t, back.HasLastRecommended())
}
