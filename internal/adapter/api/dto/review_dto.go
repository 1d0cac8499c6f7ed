package dto

import (
	"time"

	"github.com/must-coursehub/course-advisor/internal/domain/review"
)

// CreateReviewRequest is the body for posting a course review
type CreateReviewRequest struct {
	Content   string `json:"content" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Anonymous bool   `json:"anonymous"`
}

// ReviewResponse is the review representation returned by the API.
// Anonymous reviews carry no user ID.
type ReviewResponse struct {
	ID        int64     `json:"id"`
	CourseID  int64     `json:"course_id"`
	UserID    string    `json:"user_id,omitempty"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	Anonymous bool      `json:"anonymous"`
	Status    string    `json:"status"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewResponseFromEntity maps a review entity onto the DTO
func ReviewResponseFromEntity(rv review.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:        rv.ID,
		CourseID:  rv.CourseID,
		Content:   rv.Content,
		Rating:    rv.Rating,
		Anonymous: rv.Anonymous,
		Status:    rv.Status,
		Pinned:    rv.Pinned,
		CreatedAt: rv.CreatedAt,
	}
	if !rv.Anonymous {
		resp.UserID = rv.UserID.String()
	}
	return resp
}
