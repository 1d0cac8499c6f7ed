package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQueryFiltersByFacultyAndSchedule(t *testing.T) {
	catalog := &fakeCatalog{
		courses: testCourses(),
		schedules: map[int64][]scheduleSlot{
			1: {{day: 3, period: 1}},
			2: {{day: 5, period: 3}},
		},
	}
	h := NewNewQueryHandler(catalog, testLogger())

	period := 1
	intent := Intent{
		Type:   IntentNewQuery,
		Params: Params{Faculty: "创新工程学院", DayOfWeek: []int{3}, TimePeriod: &period},
	}

	result, err := h.Process(context.Background(), intent, ConversationContext{})
	require.NoError(t, err)
	assert.True(t, result.Success)
	require.Len(t, result.Courses, 1)
	assert.Equal(t, "Python程序设计", result.Courses[0].Name)
}

func TestNewQueryKeywordFallbackWhenStructuredEmpty(t *testing.T) {
	catalog := &fakeCatalog{courses: testCourses()}
	h := NewNewQueryHandler(catalog, testLogger())

	intent := Intent{
		Type:     IntentNewQuery,
		Params:   Params{Faculty: "法学院"},
		Keywords: []string{"神经网络"},
	}

	result, err := h.Process(context.Background(), intent, ConversationContext{})
	require.NoError(t, err)
	require.Len(t, result.Courses, 1)
	assert.Equal(t, "机器学习", result.Courses[0].Name)
}

func TestNewQueryKeywordOnlyScansFullCatalog(t *testing.T) {
	catalog := &fakeCatalog{courses: testCourses()}
	h := NewNewQueryHandler(catalog, testLogger())

	intent := Intent{Type: IntentNewQuery, Keywords: []string{"编程"}}

	result, err := h.Process(context.Background(), intent, ConversationContext{})
	require.NoError(t, err)
	require.Len(t, result.Courses, 2)
	names := []string{result.Courses[0].Name, result.Courses[1].Name}
	assert.ElementsMatch(t, []string{"Python程序设计", "Java程序设计"}, names)
}

func TestNewQueryNoSlotsNoKeywordMatchReturnsRatedList(t *testing.T) {
	catalog := &fakeCatalog{courses: testCourses()}
	h := NewNewQueryHandler(catalog, testLogger())

	intent := Intent{Type: IntentNewQuery, Keywords: []string{"量子力学"}}

	result, err := h.Process(context.Background(), intent, ConversationContext{})
	require.NoError(t, err)
	require.Len(t, result.Courses, 5)
	assert.Equal(t, "机器学习", result.Courses[0].Name)
}

func TestNewQueryEmptyResultIsSuccessWithMessage(t *testing.T) {
	catalog := &fakeCatalog{courses: testCourses()}
	h := NewNewQueryHandler(catalog, testLogger())

	intent := Intent{Type: IntentNewQuery, Params: Params{Faculty: "法学院"}}

	result, err := h.Process(context.Background(), intent, ConversationContext{})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.Courses)
	assert.Contains(t, result.Message, "没有找到")
}

func TestNewQueryMergesContextParams(t *testing.T) {
	catalog := &fakeCatalog{courses: testCourses()}
	h := NewNewQueryHandler(catalog, testLogger())

	cc := ConversationContext{Params: Params{Faculty: "创新工程学院"}}
	intent := Intent{Type: IntentNewQuery, Params: Params{CourseType: "COMPULSORY"}}

	result, err := h.Process(context.Background(), intent, cc)
	require.NoError(t, err)
	require.Len(t, result.Courses, 1)
	assert.Equal(t, "Java程序设计", result.Courses[0].Name)

	// merged slots land in the updated context for the next turn
	back := ContextFromMap(result.UpdatedContext, nil)
	assert.Equal(t, "创新工程学院", back.Params.Faculty)
	assert.Equal(t, "COMPULSORY", back.Params.CourseType)
}

func TestNewQueryPropagatesCatalogError(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("db down")}
	h := NewNewQueryHandler(catalog, testLogger())

	_, err := h.Process(context.Background(), Intent{Type: IntentNewQuery}, ConversationContext{})
	assert.Error(t, err)
}
