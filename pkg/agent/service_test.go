package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildService(catalog *fakeCatalog, llm Completer) *Service {
	log := testLogger()
	return NewService(NewClassifier(llm, log), buildRouter(catalog, llm), llm, log)
}

func TestChatGateWhenLLMUnavailable(t *testing.T) {
	llm := &fakeCompleter{available: false}
	svc := buildService(&fakeCatalog{courses: testCourses()}, llm)

	resp := svc.Chat(context.Background(), "推荐编程课", nil, nil)

	assert.False(t, resp.Success)
	assert.Equal(t, ResponseTypeText, resp.Type)
	assert.Contains(t, resp.Content, "AI服务未配置或未启用")
	// the gate runs before classification, so no LLM call happens
	assert.Empty(t, llm.requests)
}

func TestChatEndToEndScheduledQuery(t *testing.T) {
	catalog := &fakeCatalog{
		courses: testCourses(),
		schedules: map[int64][]scheduleSlot{
			1: {{day: 3, period: 1}},
			2: {{day: 5, period: 3}},
			3: {{day: 3, period: 3}},
		},
	}
	llm := scriptedCompleter(
		`{"intentType":"NEW_QUERY","parameters":{"faculty":"创新工程学院","dayOfWeek":[3],"timePeriod":1},"keywords":["编程"],"confidence":0.92}`,
		"周三上午有一门很合适的编程课：Python程序设计！",
	)
	svc := buildService(catalog, llm)

	resp := svc.Chat(context.Background(), "推荐周三上午的编程课", nil, nil)

	assert.True(t, resp.Success)
	assert.Equal(t, ResponseTypeRecommendation, resp.Type)
	require.Len(t, resp.Courses, 1)
	assert.Equal(t, "Python程序设计", resp.Courses[0].Name)
	assert.Contains(t, resp.Content, "Python程序设计")

	// the updated context carries both the slots and the batch
	back := ContextFromMap(resp.UpdatedContext, nil)
	assert.Equal(t, "创新工程学院", back.Params.Faculty)
	assert.Equal(t, []int{3}, back.Params.DayOfWeek)
	require.True(t, back.HasLastRecommended())
	assert.Equal(t, "Python程序设计", back.LastRecommended[0].Name)
}

func TestChatFollowUpRefinesWithinBatch(t *testing.T) {
	catalog := &fakeCatalog{courses: testCourses()}
	first := scriptedCompleter(
		`{"intentType":"NEW_QUERY","parameters":{"faculty":"创新工程学院"},"confidence":0.9}`,
		"为您推荐创新工程学院的课程。",
	)
	svc := buildService(catalog, first)

	firstResp := svc.Chat(context.Background(), "推荐创新工程学院的课", nil, nil)
	require.True(t, firstResp.Success)
	require.Len(t, firstResp.Courses, 3)

	second := scriptedCompleter(
		`{"intentType":"REFINE","parameters":{"courseType":"ELECTIVE"},"referenceLastResult":true,"confidence":0.9}`,
		"这些课里有两门是选修的。",
	)
	svc = buildService(catalog, second)

	resp := svc.Chat(context.Background(), "这些课里哪些是选修", firstResp.UpdatedContext, []HistoryTurn{
		{Role: "user", Content: "推荐创新工程学院的课"},
		{Role: "ai", Content: firstResp.Content},
	})

	assert.True(t, resp.Success)
	require.Len(t, resp.Courses, 2)
	for _, c := range resp.Courses {
		assert.Equal(t, "ELECTIVE", c.Type)
	}
}

func TestChatCatalogFailureDegrades(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("db down")}
	llm := scriptedCompleter(`{"intentType":"NEW_QUERY","confidence":0.9}`)
	svc := buildService(catalog, llm)

	resp := svc.Chat(context.Background(), "推荐编程课", nil, nil)

	assert.False(t, resp.Success)
	assert.Equal(t, ResponseTypeText, resp.Type)
	assert.Contains(t, resp.Content, "稍后再试")
}

func TestChatDetailResponseCarriesCourseCard(t *testing.T) {
	catalog := &fakeCatalog{courses: testCourses()}
	llm := scriptedCompleter(
		`{"intentType":"DETAIL","courseToQuery":"机器学习","confidence":0.9}`,
		"机器学习是一门高分选修课。",
	)
	svc := buildService(catalog, llm)

	resp := svc.Chat(context.Background(), "介绍一下机器学习", nil, nil)

	assert.True(t, resp.Success)
	assert.Equal(t, ResponseTypeRecommendation, resp.Type)
	require.Len(t, resp.Courses, 1)
	assert.Equal(t, "机器学习", resp.Courses[0].Name)
}

func TestChatClassifierFailureStillAnswers(t *testing.T) {
	catalog := &fakeCatalog{courses: testCourses()}
	// classification fails, synthesis fails: full degradation path
	svc := buildService(catalog, failingCompleter())

	resp := svc.Chat(context.Background(), "推荐几门课", nil, nil)

	assert.True(t, resp.Success)
	assert.Equal(t, ResponseTypeRecommendation, resp.Type)
	assert.NotEmpty(t, resp.Courses)
	assert.Contains(t, resp.Content, "📋")
}
