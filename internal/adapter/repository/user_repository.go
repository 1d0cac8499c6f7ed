package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/must-coursehub/course-advisor/internal/domain/user"
	"github.com/must-coursehub/course-advisor/pkg/logger"
)

const userSelect = `SELECT id, username, password, email, student_id, full_name, role, active, can_comment, created_at, updated_at FROM users`

// UserRepository is the pgx implementation of user.Repository
type UserRepository struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool, logger logger.Logger) user.Repository {
	return &UserRepository{db: db, logger: logger}
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, username, password, email, student_id, full_name, role, active, can_comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		u.ID, u.Username, u.Password, u.Email, u.StudentID, u.FullName,
		u.Role, u.Active, u.CanComment,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return user.ErrEmailExists
			}
			return user.ErrUsernameExists
		}
		r.logger.Error("Failed to create user", "username", u.Username, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update modifies an existing user
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users
		SET username = $1, password = $2, email = $3, student_id = $4, full_name = $5,
		    role = $6, active = $7, can_comment = $8, updated_at = NOW()
		WHERE id = $9`

	tag, err := r.db.Exec(ctx, query,
		u.Username, u.Password, u.Email, u.StudentID, u.FullName,
		u.Role, u.Active, u.CanComment, u.ID)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// FindByID returns one user
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.findOne(ctx, userSelect+" WHERE id = $1", id)
}

// FindByUsername returns the user with the given username
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.findOne(ctx, userSelect+" WHERE username = $1", username)
}

// FindByEmail returns the user with the given email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, userSelect+" WHERE email = $1", email)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg interface{}) (*user.User, error) {
	var u user.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Password, &u.Email, &u.StudentID, &u.FullName,
		&u.Role, &u.Active, &u.CanComment, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &u, nil
}
