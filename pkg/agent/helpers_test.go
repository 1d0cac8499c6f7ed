package agent

import (
	"context"
	"errors"

	"github.com/must-coursehub/course-advisor/pkg/deepseek"
	"github.com/must-coursehub/course-advisor/pkg/logger"
)

// fakeCompleter scripts LLM behavior per test
type fakeCompleter struct {
	available bool
	fn        func(req deepseek.CompletionRequest) (string, error)
	requests  []deepseek.CompletionRequest
}

func (f *fakeCompleter) Complete(_ context.Context, req deepseek.CompletionRequest) (string, error) {
	f.requests = append(f.requests, req)
	if f.fn == nil {
		return "", &deepseek.TransportError{Err: errors.New("no completion scripted")}
	}
	return f.fn(req)
}

func (f *fakeCompleter) Available() bool {
	return f.available
}

func failingCompleter() *fakeCompleter {
	return &fakeCompleter{available: true}
}

func scriptedCompleter(replies ...string) *fakeCompleter {
	i := 0
	return &fakeCompleter{
		available: true,
		fn: func(deepseek.CompletionRequest) (string, error) {
			if i >= len(replies) {
				return "", &deepseek.TransportError{Err: errors.New("script exhausted")}
			}
			reply := replies[i]
			i++
			return reply, nil
		},
	}
}

// fakeCatalog is an in-memory Catalog
type fakeCatalog struct {
	courses   []CourseInfo
	schedules map[int64][]scheduleSlot
	err       error
}

type scheduleSlot struct {
	day    int
	period int
}

func (f *fakeCatalog) FindAll(context.Context) ([]CourseInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]CourseInfo, len(f.courses))
	copy(out, f.courses)
	return out, nil
}

func (f *fakeCatalog) FindScheduled(_ context.Context, dayOfWeek, timePeriod int) (map[int64]bool, error) {
	if f.err != nil {
		return nil, f.err
	}
	ids := map[int64]bool{}
	for courseID, slots := range f.schedules {
		for _, s := range slots {
			if (dayOfWeek == 0 || s.day == dayOfWeek) && (timePeriod == 0 || s.period == timePeriod) {
				ids[courseID] = true
			}
		}
	}
	return ids, nil
}

// fakeReviews is an in-memory ReviewSource
type fakeReviews struct {
	excerpts map[int64][]ReviewExcerpt
	err      error
}

func (f *fakeReviews) RecentReviews(_ context.Context, courseID int64, limit int) ([]ReviewExcerpt, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := f.excerpts[courseID]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func rating(v float64) *float64 {
	return &v
}

func testCourses() []CourseInfo {
	return []CourseInfo{
		{ID: 1, Code: "CS101", Name: "Python程序设计", Credits: 3, Type: "ELECTIVE", Description: "编程入门课程", FacultyName: "创新工程学院", TeacherName: "张伟", AverageRating: rating(4.5), ReviewCount: 12},
		{ID: 2, Code: "CS201", Name: "Java程序设计", Credits: 3, Type: "COMPULSORY", Description: "面向对象编程", FacultyName: "创新工程学院", TeacherName: "李娜", AverageRating: rating(4.0), ReviewCount: 8},
		{ID: 3, Code: "CS301", Name: "机器学习", Credits: 4, Type: "ELECTIVE", Description: "神经网络与深度学习", FacultyName: "创新工程学院", TeacherName: "王强", AverageRating: rating(4.8), ReviewCount: 20},
		{ID: 4, Code: "BU110", Name: "市场营销学", Credits: 3, Type: "COMPULSORY", Description: "营销基础", FacultyName: "商学院", TeacherName: "陈静", AverageRating: rating(3.9), ReviewCount: 5},
		{ID: 5, Code: "AR150", Name: "设计思维", Credits: 2, Type: "ELECTIVE", Description: "创意与设计方法", FacultyName: "人文艺术学院", TeacherName: "刘洋", AverageRating: nil, ReviewCount: 0},
	}
}

func testLogger() logger.Logger {
	return logger.NewLogger()
}
