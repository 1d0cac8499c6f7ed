package course

import (
	"context"
	"errors"
)

// Repository errors
var (
	ErrCourseNotFound = errors.New("course not found")
	ErrCodeExists     = errors.New("course code already exists")
	ErrInvalidCourse  = errors.New("invalid course data")
)

// Repository defines course persistence operations
type Repository interface {
	Create(ctx context.Context, c *Course) error
	Update(ctx context.Context, c *Course) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*WithStats, error)
	FindByCode(ctx context.Context, code string) (*Course, error)
	FindAll(ctx context.Context) ([]WithStats, error)
	Search(ctx context.Context, query string) ([]WithStats, error)

	// FindScheduledIDs returns the IDs of courses that have a session
	// on the given day (1-7). dayOfWeek 0 matches any day and
	// timePeriod 0 matches any period.
	FindScheduledIDs(ctx context.Context, dayOfWeek, timePeriod int) ([]int64, error)
	FindSchedules(ctx context.Context, courseID int64) ([]Schedule, error)
	AddSchedule(ctx context.Context, s *Schedule) error
}
