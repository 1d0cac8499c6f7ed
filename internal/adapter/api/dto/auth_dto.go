package dto

import (
	"time"

	"github.com/must-coursehub/course-advisor/internal/domain/user"
)

// RegisterRequest is the body for account registration
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	StudentID string `json:"student_id"`
	FullName  string `json:"full_name"`
}

// LoginRequest is the body for authentication
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public user representation
type UserResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	StudentID  string    `json:"student_id,omitempty"`
	FullName   string    `json:"full_name,omitempty"`
	Role       string    `json:"role"`
	CanComment bool      `json:"can_comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// UserResponseFromEntity maps a user entity onto the DTO
func UserResponseFromEntity(u *user.User) UserResponse {
	return UserResponse{
		ID:         u.ID.String(),
		Username:   u.Username,
		Email:      u.Email,
		StudentID:  u.StudentID,
		FullName:   u.FullName,
		Role:       u.Role,
		CanComment: u.CanComment,
		CreatedAt:  u.CreatedAt,
	}
}

// AuthResponse carries the access token after login or registration
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"`
	User      UserResponse `json:"user"`
}
