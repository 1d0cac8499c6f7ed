package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildRouter(catalog *fakeCatalog, llm Completer) *Router {
	log := testLogger()
	newQuery := NewNewQueryHandler(catalog, log)
	return NewRouter(
		newQuery,
		NewRefineHandler(catalog, newQuery, log),
		NewSupplementHandler(catalog, log),
		NewCompareHandler(catalog, llm, log),
		NewDetailHandler(catalog, &fakeReviews{}, llm, log),
		NewChatHandler(llm, log),
		NewSynthesizer(llm, log),
		log,
	)
}

func TestRouteSynthesizesAndInjectsRecommendations(t *testing.T) {
	catalog := &fakeCatalog{courses: testCourses()}
	llm := scriptedCompleter("为您找到了几门很棒的编程课！")
	r := buildRouter(catalog, llm)

	intent := Intent{Type: IntentNewQuery, Params: Params{Faculty: "创新工程学院"}}
	result, err := r.Route(context.Background(), intent, ConversationContext{})
	require.NoError(t, err)

	assert.Equal(t, "为您找到了几门很棒的编程课！", result.Message)
	require.NotNil(t, result.UpdatedContext)

	back := ContextFromMap(result.UpdatedContext, nil)
	require.True(t, back.HasLastRecommended())
	assert.Len(t, back.LastRecommended, len(result.Courses))
	assert.Equal(t, result.Courses[0].Name, back.LastRecommended[0].Name)
}

func TestRouteSynthesisFailureKeepsTemplateMessage(t *testing.T) {
	catalog := &fakeCatalog{courses: testCourses()}
	r := buildRouter(catalog, failingCompleter())

	intent := Intent{Type: IntentNewQuery, Params: Params{Faculty: "商学院"}}
	result, err := r.Route(context.Background(), intent, ConversationContext{})
	require.NoError(t, err)

	assert.Contains(t, result.Message, "📋")
	assert.NotEmpty(t, result.Courses)
}

func TestRouteEmptyResultSkipsSynthesis(t *testing.T) {
	catalog := &fakeCatalog{courses: testCourses()}
	llm := scriptedCompleter("不应被使用")
	r := buildRouter(catalog, llm)

	intent := Intent{Type: IntentNewQuery, Params: Params{Faculty: "法学院"}}
	result, err := r.Route(context.Background(), intent, ConversationContext{})
	require.NoError(t, err)

	assert.Empty(t, result.Courses)
	assert.Contains(t, result.Message, "没有找到")
	assert.Empty(t, llm.requests)
}

func TestRouteUnknownIntentUsesNewQueryFallback(t *testing.T) {
	catalog := &fakeCatalog{courses: testCourses()}
	r := buildRouter(catalog, failingCompleter())

	intent := Intent{Type: IntentType("MYSTERY"), Params: Params{Faculty: "商学院"}}
	result, err := r.Route(context.Background(), intent, ConversationContext{})
	require.NoError(t, err)
	require.Len(t, result.Courses, 1)
	assert.Equal(t, "市场营销学", result.Courses[0].Name)
}
