package repository

import (
	"context"

	"github.com/must-coursehub/course-advisor/internal/domain/course"
	"github.com/must-coursehub/course-advisor/internal/domain/review"
	"github.com/must-coursehub/course-advisor/pkg/agent"
)

// AgentCatalog adapts the course repository to the recommendation
// pipeline's Catalog interface.
type AgentCatalog struct {
	courses course.Repository
}

// NewAgentCatalog creates the catalog adapter
func NewAgentCatalog(courses course.Repository) *AgentCatalog {
	return &AgentCatalog{courses: courses}
}

// FindAll projects every course into the pipeline's CourseInfo shape
func (a *AgentCatalog) FindAll(ctx context.Context) ([]agent.CourseInfo, error) {
	all, err := a.courses.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]agent.CourseInfo, 0, len(all))
	for _, c := range all {
		infos = append(infos, courseToInfo(c))
	}
	return infos, nil
}

// FindScheduled returns the schedule membership set for one day/period
func (a *AgentCatalog) FindScheduled(ctx context.Context, dayOfWeek, timePeriod int) (map[int64]bool, error) {
	ids, err := a.courses.FindScheduledIDs(ctx, dayOfWeek, timePeriod)
	if err != nil {
		return nil, err
	}
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func courseToInfo(c course.WithStats) agent.CourseInfo {
	return agent.CourseInfo{
		ID:            c.ID,
		Code:          c.Code,
		Name:          c.Name,
		Credits:       c.Credits,
		Type:          c.Type,
		Description:   c.Description,
		FacultyName:   c.FacultyName,
		TeacherName:   c.TeacherName,
		AverageRating: c.AverageRating,
		ReviewCount:   c.ReviewCount,
	}
}

// AgentReviewSource adapts the review repository to the pipeline's
// ReviewSource interface. Only approved reviews surface.
type AgentReviewSource struct {
	reviews review.Repository
}

// NewAgentReviewSource creates the review source adapter
func NewAgentReviewSource(reviews review.Repository) *AgentReviewSource {
	return &AgentReviewSource{reviews: reviews}
}

// RecentReviews returns recent approved review excerpts for a course
func (a *AgentReviewSource) RecentReviews(ctx context.Context, courseID int64, limit int) ([]agent.ReviewExcerpt, error) {
	recent, err := a.reviews.RecentApproved(ctx, courseID, limit)
	if err != nil {
		return nil, err
	}
	excerpts := make([]agent.ReviewExcerpt, 0, len(recent))
	for _, rv := range recent {
		excerpts = append(excerpts, agent.ReviewExcerpt{Content: rv.Content, Rating: rv.Rating})
	}
	return excerpts, nil
}
