package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/must-coursehub/course-advisor/internal/domain/faculty"
	"github.com/must-coursehub/course-advisor/pkg/logger"
)

// FacultyRepository is the pgx implementation of faculty.Repository
type FacultyRepository struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewFacultyRepository creates a new faculty repository
func NewFacultyRepository(db *pgxpool.Pool, logger logger.Logger) faculty.Repository {
	return &FacultyRepository{db: db, logger: logger}
}

// FindAll returns every faculty ordered by name
func (r *FacultyRepository) FindAll(ctx context.Context) ([]faculty.Faculty, error) {
	rows, err := r.db.Query(ctx, "SELECT id, name, description FROM faculties ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list faculties: %w", err)
	}
	defer rows.Close()

	var faculties []faculty.Faculty
	for rows.Next() {
		var f faculty.Faculty
		if err := rows.Scan(&f.ID, &f.Name, &f.Description); err != nil {
			return nil, fmt.Errorf("failed to scan faculty: %w", err)
		}
		faculties = append(faculties, f)
	}
	return faculties, rows.Err()
}

// FindByID returns one faculty
func (r *FacultyRepository) FindByID(ctx context.Context, id int64) (*faculty.Faculty, error) {
	var f faculty.Faculty
	err := r.db.QueryRow(ctx, "SELECT id, name, description FROM faculties WHERE id = $1", id).
		Scan(&f.ID, &f.Name, &f.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, faculty.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("failed to find faculty: %w", err)
	}
	return &f, nil
}
