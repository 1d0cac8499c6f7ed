package review

import (
	"context"
	"errors"
)

// Repository errors
var (
	ErrReviewNotFound = errors.New("review not found")
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
)

// Repository defines review persistence operations
type Repository interface {
	Create(ctx context.Context, r *Review) error
	FindByID(ctx context.Context, id int64) (*Review, error)
	FindApprovedByCourse(ctx context.Context, courseID int64) ([]Review, error)
	// RecentApproved returns the newest approved reviews for a course,
	// pinned ones first.
	RecentApproved(ctx context.Context, courseID int64, limit int) ([]Review, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}
