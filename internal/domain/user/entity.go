package user

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Roles
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User is an account in the system. Password always holds the bcrypt
// hash, never the plaintext.
type User struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Password   string    `json:"-"`
	Email      string    `json:"email"`
	StudentID  string    `json:"student_id,omitempty"`
	FullName   string    `json:"full_name,omitempty"`
	Role       string    `json:"role"`
	Active     bool      `json:"active"`
	CanComment bool      `json:"can_comment"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewUser creates an active student account with a hashed password
func NewUser(username, email, plainPassword string) (*User, error) {
	u := &User{
		ID:         uuid.New(),
		Username:   username,
		Email:      email,
		Role:       RoleStudent,
		Active:     true,
		CanComment: true,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := u.SetPassword(plainPassword); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword hashes and stores the password
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
