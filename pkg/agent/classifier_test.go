package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyParsesWellFormedPayload(t *testing.T) {
	llm := scriptedCompleter(`{"intentType":"NEW_QUERY","parameters":{"faculty":"创新工程学院","dayOfWeek":3,"timePeriod":1},"keywords":["编程"],"confidence":0.9}`)
	c := NewClassifier(llm, testLogger())

	intent := c.Classify(context.Background(), "推荐周三上午的编程课", ConversationContext{})

	assert.Equal(t, IntentNewQuery, intent.Type)
	assert.Equal(t, "创新工程学院", intent.Params.Faculty)
	assert.Equal(t, []int{3}, intent.Params.DayOfWeek)
	require.NotNil(t, intent.Params.TimePeriod)
	assert.Equal(t, 1, *intent.Params.TimePeriod)
	assert.Equal(t, []string{"编程"}, intent.Keywords)
	assert.Equal(t, 0.9, intent.Confidence)
	assert.Equal(t, "推荐周三上午的编程课", intent.OriginalMessage)
}

func TestClassifyStripsCodeFence(t *testing.T) {
	llm := scriptedCompleter("```json\n{\"intentType\":\"CHAT\",\"confidence\":0.95}\n```")
	c := NewClassifier(llm, testLogger())

	intent := c.Classify(context.Background(), "你好", ConversationContext{})
	assert.Equal(t, IntentChat, intent.Type)
}

func TestClassifyUnknownTypeFallsBackToNewQuery(t *testing.T) {
	llm := scriptedCompleter(`{"intentType":"SOMETHING_ELSE","confidence":0.9}`)
	c := NewClassifier(llm, testLogger())

	intent := c.Classify(context.Background(), "找课", ConversationContext{})
	assert.Equal(t, IntentNewQuery, intent.Type)
	assert.Equal(t, 0.9, intent.Confidence)
}

func TestClassifyMissingConfidenceDefaults(t *testing.T) {
	llm := scriptedCompleter(`{"intentType":"DETAIL","courseToQuery":"机器学习"}`)
	c := NewClassifier(llm, testLogger())

	intent := c.Classify(context.Background(), "介绍一下机器学习", ConversationContext{})
	assert.Equal(t, IntentDetail, intent.Type)
	assert.Equal(t, "机器学习", intent.CourseToQuery)
	assert.Equal(t, 0.8, intent.Confidence)
}

func TestClassifyDegradesOnTransportFailure(t *testing.T) {
	c := NewClassifier(failingCompleter(), testLogger())

	intent := c.Classify(context.Background(), "推荐编程课", ConversationContext{})

	assert.Equal(t, IntentNewQuery, intent.Type)
	assert.Equal(t, 0.5, intent.Confidence)
	assert.Equal(t, "推荐编程课", intent.OriginalMessage)
}

func TestClassifyDegradesOnUnparseableJSON(t *testing.T) {
	llm := scriptedCompleter("好的，我来帮你分类：这是一个新查询。")
	c := NewClassifier(llm, testLogger())

	intent := c.Classify(context.Background(), "推荐编程课", ConversationContext{})
	assert.Equal(t, IntentNewQuery, intent.Type)
	assert.Equal(t, 0.5, intent.Confidence)
}

func TestClassifyPromptCarriesContext(t *testing.T) {
	llm := scriptedCompleter(`{"intentType":"REFINE","confidence":0.9}`)
	c := NewClassifier(llm, testLogger())

	cc := ConversationContext{
		LastRecommended: testCourses()[:2],
		Params:          Params{Faculty: "创新工程学院"},
		History:         []HistoryTurn{{Role: "user", Content: "推荐编程课"}},
	}
	c.Classify(context.Background(), "这些课里有周三的吗", cc)

	require.Len(t, llm.requests, 1)
	prompt := llm.requests[0].UserPrompt
	assert.Contains(t, prompt, "Python程序设计")
	assert.Contains(t, prompt, "创新工程学院")
	assert.Contains(t, prompt, "推荐编程课")
	assert.True(t, llm.requests[0].JSONOutput)
}
