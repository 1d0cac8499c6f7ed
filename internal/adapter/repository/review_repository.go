package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/must-coursehub/course-advisor/internal/domain/review"
	"github.com/must-coursehub/course-advisor/pkg/logger"
)

const reviewSelect = `SELECT id, course_id, user_id, content, rating, anonymous, status, pinned, created_at FROM reviews`

// ReviewRepository is the pgx implementation of review.Repository
type ReviewRepository struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *pgxpool.Pool, logger logger.Logger) review.Repository {
	return &ReviewRepository{db: db, logger: logger}
}

// Create inserts a new review in pending status
func (r *ReviewRepository) Create(ctx context.Context, rv *review.Review) error {
	if !review.ValidRating(rv.Rating) {
		return review.ErrInvalidRating
	}
	if rv.Status == "" {
		rv.Status = review.StatusPending
	}

	query := `
		INSERT INTO reviews (course_id, user_id, content, rating, anonymous, status, pinned, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		rv.CourseID, rv.UserID, rv.Content, rv.Rating, rv.Anonymous, rv.Status, rv.Pinned,
	).Scan(&rv.ID, &rv.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create review", "course_id", rv.CourseID, "error", err)
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// FindByID returns one review
func (r *ReviewRepository) FindByID(ctx context.Context, id int64) (*review.Review, error) {
	row := r.db.QueryRow(ctx, reviewSelect+" WHERE id = $1", id)
	rv, err := scanReview(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, review.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to find review: %w", err)
	}
	return rv, nil
}

// FindApprovedByCourse returns a course's approved reviews, pinned first
func (r *ReviewRepository) FindApprovedByCourse(ctx context.Context, courseID int64) ([]review.Review, error) {
	query := reviewSelect + ` WHERE course_id = $1 AND status = $2 ORDER BY pinned DESC, created_at DESC`

	rows, err := r.db.Query(ctx, query, courseID, review.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()
	return scanReviews(rows)
}

// RecentApproved returns the newest approved reviews, pinned first
func (r *ReviewRepository) RecentApproved(ctx context.Context, courseID int64, limit int) ([]review.Review, error) {
	query := reviewSelect + ` WHERE course_id = $1 AND status = $2 ORDER BY pinned DESC, created_at DESC LIMIT $3`

	rows, err := r.db.Query(ctx, query, courseID, review.StatusApproved, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent reviews: %w", err)
	}
	defer rows.Close()
	return scanReviews(rows)
}

// UpdateStatus moves a review through moderation
func (r *ReviewRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.db.Exec(ctx, "UPDATE reviews SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("failed to update review status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return review.ErrReviewNotFound
	}
	return nil
}

// Delete removes a review
func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM reviews WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return review.ErrReviewNotFound
	}
	return nil
}

func scanReview(row pgx.Row) (*review.Review, error) {
	var rv review.Review
	err := row.Scan(&rv.ID, &rv.CourseID, &rv.UserID, &rv.Content, &rv.Rating,
		&rv.Anonymous, &rv.Status, &rv.Pinned, &rv.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func scanReviews(rows pgx.Rows) ([]review.Review, error) {
	var reviews []review.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, *rv)
	}
	return reviews, rows.Err()
}
