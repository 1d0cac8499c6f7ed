package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/must-coursehub/course-advisor/internal/domain/teacher"
	"github.com/must-coursehub/course-advisor/pkg/logger"
)

const teacherSelect = `SELECT id, name, title, email, research_field, achievements, faculty_id FROM teachers`

// TeacherRepository is the pgx implementation of teacher.Repository
type TeacherRepository struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *pgxpool.Pool, logger logger.Logger) teacher.Repository {
	return &TeacherRepository{db: db, logger: logger}
}

// FindAll returns every teacher ordered by name
func (r *TeacherRepository) FindAll(ctx context.Context) ([]teacher.Teacher, error) {
	rows, err := r.db.Query(ctx, teacherSelect+" ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}
	defer rows.Close()
	return scanTeachers(rows)
}

// FindByID returns one teacher
func (r *TeacherRepository) FindByID(ctx context.Context, id int64) (*teacher.Teacher, error) {
	var t teacher.Teacher
	err := r.db.QueryRow(ctx, teacherSelect+" WHERE id = $1", id).Scan(
		&t.ID, &t.Name, &t.Title, &t.Email, &t.ResearchField, &t.Achievements, &t.FacultyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, teacher.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("failed to find teacher: %w", err)
	}
	return &t, nil
}

// FindByFaculty returns the teachers of one faculty
func (r *TeacherRepository) FindByFaculty(ctx context.Context, facultyID int64) ([]teacher.Teacher, error) {
	rows, err := r.db.Query(ctx, teacherSelect+" WHERE faculty_id = $1 ORDER BY name", facultyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list faculty teachers: %w", err)
	}
	defer rows.Close()
	return scanTeachers(rows)
}

func scanTeachers(rows pgx.Rows) ([]teacher.Teacher, error) {
	var teachers []teacher.Teacher
	for rows.Next() {
		var t teacher.Teacher
		if err := rows.Scan(&t.ID, &t.Name, &t.Title, &t.Email, &t.ResearchField, &t.Achievements, &t.FacultyID); err != nil {
			return nil, fmt.Errorf("failed to scan teacher: %w", err)
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}
