package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refineHandler(catalog *fakeCatalog) *RefineHandler {
	log := testLogger()
	return NewRefineHandler(catalog, NewNewQueryHandler(catalog, log), log)
}

func TestRefineFiltersWithinPriorBatch(t *testing.T) {
	catalog := &fakeCatalog{courses: testCourses()}
	h := refineHandler(catalog)

	cc := ConversationContext{LastRecommended: testCourses()[:3]}
	intent := Intent{Type: IntentRefine, Params: Params{CourseType: "ELECTIVE"}}

	result, err := h.Process(context.Background(), intent, cc)
	require.NoError(t, err)
	require.Len(t, result.Courses, 2)
	for _, c := range result.Courses {
		assert.Equal(t, "ELECTIVE", c.Type)
	}
}

func TestRefineKeywordsFilterTheBatch(t *testing.T) {
	catalog := &fakeCatalog{courses: testCourses()}
	h := refineHandler(catalog)

	cc := ConversationContext{LastRecommended: testCourses()[:3]}
	intent := Intent{Type: IntentRefine, Keywords: []string{"神经网络"}}

	result, err := h.Process(context.Background(), intent, cc)
	require.NoError(t, err)
	require.Len(t, result.Courses, 1)
	assert.Equal(t, "机器学习", result.Courses[0].Name)
}

func TestRefineEmptyBatchResultIsClarification(t *testing.T) {
	catalog := &fakeCatalog{courses: testCourses()}
	h := refineHandler(catalog)

	cc := ConversationContext{LastRecommended: testCourses()[:2]}
	intent := Intent{Type: IntentRefine, Params: Params{Faculty: "法学院"}}

	result, err := h.Process(context.Background(), intent, cc)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.Courses)
	assert.Contains(t, result.Message, "之前推荐的课程")
}

func TestRefineDegradesToFullQueryWithoutPriorBatch(t *testing.T) {
	catalog := &fakeCatalog{courses: testCourses()}
	h := refineHandler(catalog)

	intent := Intent{Type: IntentRefine, Params: Params{Faculty: "商学院"}}

	result, err := h.Process(context.Background(), intent, ConversationContext{})
	require.NoError(t, err)
	require.Len(t, result.Courses, 1)
	assert.Equal(t, "市场营销学", result.Courses[0].Name)
}
