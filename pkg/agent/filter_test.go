package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesParamsCreditTolerance(t *testing.T) {
	course := CourseInfo{Name: "Python程序设计", Credits: 3}
	want := 3.4
	assert.True(t, matchesParams(course, Params{Credits: &want}, nil))

	want = 3.6
	assert.False(t, matchesParams(course, Params{Credits: &want}, nil))
}

func TestMatchesParamsFacultySubstringBothWays(t *testing.T) {
	course := CourseInfo{Name: "Python程序设计", FacultyName: "创新工程学院"}
	assert.True(t, matchesParams(course, Params{Faculty: "创新工程"}, nil))

	short := CourseInfo{Name: "x", FacultyName: "商学院"}
	assert.True(t, matchesParams(short, Params{Faculty: "澳门科技大学商学院"}, nil))
	assert.False(t, matchesParams(short, Params{Faculty: "法学院"}, nil))
}

func TestMatchesParamsCourseTypeExact(t *testing.T) {
	course := CourseInfo{Type: "ELECTIVE"}
	assert.True(t, matchesParams(course, Params{CourseType: "ELECTIVE"}, nil))
	assert.False(t, matchesParams(course, Params{CourseType: "COMPULSORY"}, nil))
	// exact match, stored casing only
	assert.False(t, matchesParams(course, Params{CourseType: "elective"}, nil))
}

func TestMatchesParamsFacultyCaseSensitive(t *testing.T) {
	course := CourseInfo{Name: "x", FacultyName: "School of Business"}
	assert.True(t, matchesParams(course, Params{Faculty: "Business"}, nil))
	assert.False(t, matchesParams(course, Params{Faculty: "business"}, nil))
}

func TestMatchesParamsScheduleSet(t *testing.T) {
	course := CourseInfo{ID: 7}
	assert.True(t, matchesParams(course, Params{}, map[int64]bool{7: true}))
	assert.False(t, matchesParams(course, Params{}, map[int64]bool{8: true}))
	// nil set means no schedule constraint
	assert.True(t, matchesParams(course, Params{}, nil))
}

func TestScheduleSetUnionsDays(t *testing.T) {
	catalog := &fakeCatalog{
		schedules: map[int64][]scheduleSlot{
			1: {{day: 3, period: 1}},
			2: {{day: 5, period: 3}},
			3: {{day: 3, period: 3}},
		},
	}

	set, err := scheduleSet(context.Background(), catalog, Params{DayOfWeek: []int{3, 5}})
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{1: true, 2: true, 3: true}, set)

	period := 1
	set, err = scheduleSet(context.Background(), catalog, Params{DayOfWeek: []int{3}, TimePeriod: &period})
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{1: true}, set)
}

func TestScheduleSetAbsentDaysIsNoOp(t *testing.T) {
	set, err := scheduleSet(context.Background(), &fakeCatalog{}, Params{})
	require.NoError(t, err)
	assert.Nil(t, set)
}

func TestScheduleSetPeriodWithoutDay(t *testing.T) {
	catalog := &fakeCatalog{
		schedules: map[int64][]scheduleSlot{
			1: {{day: 3, period: 1}},
			2: {{day: 5, period: 3}},
		},
	}

	period := 1
	set, err := scheduleSet(context.Background(), catalog, Params{TimePeriod: &period})
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{1: true}, set)
}

func TestMatchesKeywordsNameAndDescriptionOnly(t *testing.T) {
	course := CourseInfo{
		Name:        "市场营销学",
		Description: "品牌与消费者行为",
		FacultyName: "商学院",
		TeacherName: "陈静",
	}
	assert.True(t, matchesKeywords(course, []string{"营销"}))
	assert.True(t, matchesKeywords(course, []string{"消费者"}))
	assert.False(t, matchesKeywords(course, []string{"陈静"}))
	assert.False(t, matchesKeywords(course, []string{"商学院"}))
}

func TestRankCoursesKeywordFirstThenRating(t *testing.T) {
	courses := []CourseInfo{
		{Name: "市场营销学", AverageRating: rating(4.9)},
		{Name: "机器学习", Description: "神经网络", AverageRating: rating(4.2)},
		{Name: "Python程序设计", Description: "编程入门", AverageRating: rating(4.5)},
	}

	rankCourses(courses, []string{"编程", "神经网络"})

	assert.Equal(t, "Python程序设计", courses[0].Name)
	assert.Equal(t, "机器学习", courses[1].Name)
	assert.Equal(t, "市场营销学", courses[2].Name)
}

func TestRankCoursesUnratedSortsLast(t *testing.T) {
	courses := []CourseInfo{
		{Name: "设计思维"},
		{Name: "机器学习", AverageRating: rating(4.8)},
	}
	rankCourses(courses, nil)
	assert.Equal(t, "机器学习", courses[0].Name)
}

func TestTopCoursesCapsAtFive(t *testing.T) {
	var courses []CourseInfo
	for i := 0; i < 8; i++ {
		courses = append(courses, CourseInfo{ID: int64(i)})
	}
	assert.Len(t, topCourses(courses), 5)
	assert.Len(t, topCourses(courses[:3]), 3)
}
