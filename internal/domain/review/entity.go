package review

import (
	"time"

	"github.com/google/uuid"
)

// Moderation status of a review. Only approved reviews feed the
// rating aggregates and the AI detail prompts.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Review is a student's rating and comment on a course
type Review struct {
	ID        int64     `json:"id"`
	CourseID  int64     `json:"course_id"`
	UserID    uuid.UUID `json:"user_id"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	Anonymous bool      `json:"anonymous"`
	Status    string    `json:"status"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidRating reports whether r is in the accepted 1-5 range
func ValidRating(r int) bool {
	return r >= 1 && r <= 5
}
