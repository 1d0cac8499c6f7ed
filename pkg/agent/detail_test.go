package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailResolvesNamedCourse(t *testing.T) {
	catalog := &fakeCatalog{courses: testCourses()}
	reviews := &fakeReviews{excerpts: map[int64][]ReviewExcerpt{
		3: {{Content: "内容很前沿", Rating: 5}, {Content: "作业偏多", Rating: 4}},
	}}
	llm := scriptedCompleter("机器学习是一门评价很高的选修课。")
	h := NewDetailHandler(catalog, reviews, llm, testLogger())

	intent := Intent{Type: IntentDetail, CourseToQuery: "机器学习", OriginalMessage: "介绍一下机器学习"}

	result, err := h.Process(context.Background(), intent, ConversationContext{})
	require.NoError(t, err)
	assert.True(t, result.Success)
	require.NotNil(t, result.CourseDetail)
	assert.Equal(t, int64(3), result.CourseDetail.ID)
	// review excerpts feed the prompt
	assert.Contains(t, llm.requests[0].UserPrompt, "内容很前沿")
}

func TestDetailDefaultsToFirstPriorRecommendation(t *testing.T) {
	catalog := &fakeCatalog{courses: testCourses()}
	llm := scriptedCompleter("这门课适合入门。")
	h := NewDetailHandler(catalog, &fakeReviews{}, llm, testLogger())

	cc := ConversationContext{LastRecommended: testCourses()[:2]}
	intent := Intent{Type: IntentDetail, OriginalMessage: "详细说说这门课"}

	result, err := h.Process(context.Background(), intent, cc)
	require.NoError(t, err)
	require.NotNil(t, result.CourseDetail)
	assert.Equal(t, "Python程序设计", result.CourseDetail.Name)
}

func TestDetailUnresolvedCourseIsNotFoundMessage(t *testing.T) {
	catalog := &fakeCatalog{courses: testCourses()}
	h := NewDetailHandler(catalog, &fakeReviews{}, failingCompleter(), testLogger())

	intent := Intent{Type: IntentDetail, CourseToQuery: "量子计算导论"}

	result, err := h.Process(context.Background(), intent, ConversationContext{})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Nil(t, result.CourseDetail)
	assert.Contains(t, result.Message, "量子计算导论")
	assert.Contains(t, result.Message, "没有找到")
}

func TestDetailToleratesReviewSourceFailure(t *testing.T) {
	catalog := &fakeCatalog{courses: testCourses()}
	reviews := &fakeReviews{err: errors.New("db down")}
	llm := scriptedCompleter("介绍文本。")
	h := NewDetailHandler(catalog, reviews, llm, testLogger())

	intent := Intent{Type: IntentDetail, CourseToQuery: "机器学习"}

	result, err := h.Process(context.Background(), intent, ConversationContext{})
	require.NoError(t, err)
	assert.Equal(t, "介绍文本。", result.Message)
}

func TestDetailFallsBackToFactTemplate(t *testing.T) {
	catalog := &fakeCatalog{courses: testCourses()}
	h := NewDetailHandler(catalog, &fakeReviews{}, failingCompleter(), testLogger())

	intent := Intent{Type: IntentDetail, CourseToQuery: "机器学习"}

	result, err := h.Process(context.Background(), intent, ConversationContext{})
	require.NoError(t, err)
	assert.Contains(t, result.Message, "📚 **机器学习**")
	assert.Contains(t, result.Message, "4.8")
}
