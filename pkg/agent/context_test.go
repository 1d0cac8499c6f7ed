package agent

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsFromMapNormalizesDayOfWeek(t *testing.T) {
	// scalar becomes a singleton list
	p := ParamsFromMap(map[string]interface{}{"dayOfWeek": float64(3)})
	assert.Equal(t, []int{3}, p.DayOfWeek)

	// lists pass through, out-of-range values are dropped
	p = ParamsFromMap(map[string]interface{}{"dayOfWeek": []interface{}{float64(3), float64(9), float64(5), float64(0)}})
	assert.Equal(t, []int{3, 5}, p.DayOfWeek)
}

func TestParamsFromMapDropsMalformedSlots(t *testing.T) {
	p := ParamsFromMap(map[string]interface{}{
		"faculty":    "  ",
		"credits":    "three",
		"timePeriod": float64(9),
	})
	assert.True(t, p.IsEmpty())
}

func TestParamsMergeIntentWins(t *testing.T) {
	base := ParamsFromMap(map[string]interface{}{
		"faculty":   "创新工程学院",
		"dayOfWeek": []interface{}{float64(3)},
	})
	override := ParamsFromMap(map[string]interface{}{
		"dayOfWeek": []interface{}{float64(5)},
	})

	merged := base.Merge(override)

	// faculty persists across the turn, dayOfWeek is replaced wholesale
	assert.Equal(t, "创新工程学院", merged.Faculty)
	assert.Equal(t, []int{5}, merged.DayOfWeek)
}

func TestParamsRoundTrip(t *testing.T) {
	credits := 3.0
	period := 1
	p := Params{
		Faculty:    "商学院",
		CourseType: "ELECTIVE",
		Credits:    &credits,
		DayOfWeek:  []int{1, 3},
		TimePeriod: &period,
	}

	back := ParamsFromMap(p.ToMap())
	assert.Equal(t, p.Faculty, back.Faculty)
	assert.Equal(t, p.CourseType, back.CourseType)
	require.NotNil(t, back.Credits)
	assert.Equal(t, credits, *back.Credits)
	assert.Equal(t, p.DayOfWeek, back.DayOfWeek)
	require.NotNil(t, back.TimePeriod)
	assert.Equal(t, period, *back.TimePeriod)
}

func TestContextRoundTripKeepsRecommendations(t *testing.T) {
	cc := ConversationContext{
		ConversationID:  "conv-1",
		LastRecommended: testCourses()[:2],
		Params:          Params{Faculty: "创新工程学院"},
	}

	back := ContextFromMap(cc.ToMap(), nil)

	assert.Equal(t, "conv-1", back.ConversationID)
	assert.Equal(t, "创新工程学院", back.Params.Faculty)
	require.Len(t, back.LastRecommended, 2)
	assert.Equal(t, "Python程序设计", back.LastRecommended[0].Name)
	assert.Equal(t, int64(1), back.LastRecommended[0].ID)
	require.NotNil(t, back.LastRecommended[0].AverageRating)
	assert.Equal(t, 4.5, *back.LastRecommended[0].AverageRating)
}

func TestCourseInfoWireKeys(t *testing.T) {
	c := testCourses()[0]
	c.Reason = "评分高"

	raw, err := json.Marshal(c)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &m))

	for _, key := range []string{"id", "code", "name", "credits", "courseType", "reason"} {
		assert.Contains(t, m, key)
	}
	for _, key := range []string{"courseId", "courseCode", "courseName", "recommendReason"} {
		assert.NotContains(t, m, key)
	}
}

func TestContextFromMapToleratesGarbage(t *testing.T) {
	cc := ContextFromMap(map[string]interface{}{
		"conversationId":         42,
		"lastRecommendedCourses": "not a list",
		"dayOfWeek":              "wednesday",
	}, nil)

	assert.Empty(t, cc.ConversationID)
	assert.False(t, cc.HasLastRecommended())
	assert.Empty(t, cc.Params.DayOfWeek)
}

func TestHistorySummaryTailAndTruncation(t *testing.T) {
	long := strings.Repeat("长", 120)
	var history []HistoryTurn
	for i := 0; i < 7; i++ {
		history = append(history, HistoryTurn{Role: "user", Content: "老消息"})
	}
	history = append(history, HistoryTurn{Role: "ai", Content: long})

	cc := ConversationContext{History: history}
	summary := cc.HistorySummary()

	lines := strings.Split(strings.TrimSpace(summary), "\n")
	assert.Len(t, lines, 5)
	assert.Contains(t, lines[4], "AI: ")
	assert.Contains(t, lines[4], "...")
	assert.Less(t, len([]rune(lines[4])), 120)
}
