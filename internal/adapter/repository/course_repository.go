package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/must-coursehub/course-advisor/internal/domain/course"
	"github.com/must-coursehub/course-advisor/pkg/logger"
)

const courseWithStatsSelect = `
	SELECT c.id, c.code, c.name, c.credits, c.type, c.description,
	       c.assessment_criteria, c.ai_summary, c.faculty_id, c.teacher_id,
	       c.created_at, c.updated_at,
	       f.name AS faculty_name, t.name AS teacher_name,
	       AVG(r.rating) FILTER (WHERE r.status = 'APPROVED') AS average_rating,
	       COUNT(r.id) FILTER (WHERE r.status = 'APPROVED') AS review_count
	FROM courses c
	JOIN faculties f ON f.id = c.faculty_id
	JOIN teachers t ON t.id = c.teacher_id
	LEFT JOIN reviews r ON r.course_id = c.id`

const courseWithStatsGroup = `
	GROUP BY c.id, f.name, t.name`

// CourseRepository is the pgx implementation of course.Repository
type CourseRepository struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool, logger logger.Logger) course.Repository {
	return &CourseRepository{db: db, logger: logger}
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, c *course.Course) error {
	query := `
		INSERT INTO courses (code, name, credits, type, description, assessment_criteria, ai_summary, faculty_id, teacher_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		c.Code, c.Name, c.Credits, c.Type, c.Description,
		c.AssessmentCriteria, c.AISummary, c.FacultyID, c.TeacherID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return course.ErrCodeExists
		}
		r.logger.Error("Failed to create course", "code", c.Code, "error", err)
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

// Update modifies an existing course
func (r *CourseRepository) Update(ctx context.Context, c *course.Course) error {
	query := `
		UPDATE courses
		SET code = $1, name = $2, credits = $3, type = $4, description = $5,
		    assessment_criteria = $6, ai_summary = $7, faculty_id = $8, teacher_id = $9,
		    updated_at = NOW()
		WHERE id = $10`

	tag, err := r.db.Exec(ctx, query,
		c.Code, c.Name, c.Credits, c.Type, c.Description,
		c.AssessmentCriteria, c.AISummary, c.FacultyID, c.TeacherID, c.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return course.ErrCodeExists
		}
		return fmt.Errorf("failed to update course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return course.ErrCourseNotFound
	}
	return nil
}

// Delete removes a course and its schedules
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM courses WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return course.ErrCourseNotFound
	}
	return nil
}

// FindByID returns one course with its stats
func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*course.WithStats, error) {
	query := courseWithStatsSelect + ` WHERE c.id = $1` + courseWithStatsGroup

	row := r.db.QueryRow(ctx, query, id)
	c, err := scanCourseWithStats(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, course.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to find course: %w", err)
	}
	return c, nil
}

// FindByCode returns the bare course row for a code
func (r *CourseRepository) FindByCode(ctx context.Context, code string) (*course.Course, error) {
	query := `
		SELECT id, code, name, credits, type, description, assessment_criteria, ai_summary, faculty_id, teacher_id, created_at, updated_at
		FROM courses WHERE code = $1`

	var c course.Course
	err := r.db.QueryRow(ctx, query, code).Scan(
		&c.ID, &c.Code, &c.Name, &c.Credits, &c.Type, &c.Description,
		&c.AssessmentCriteria, &c.AISummary, &c.FacultyID, &c.TeacherID,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, course.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to find course by code: %w", err)
	}
	return &c, nil
}

// FindAll returns every course with stats, ordered by code
func (r *CourseRepository) FindAll(ctx context.Context) ([]course.WithStats, error) {
	query := courseWithStatsSelect + courseWithStatsGroup + ` ORDER BY c.code`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()
	return scanCourseWithStatsRows(rows)
}

// Search matches name, description or code case-insensitively
func (r *CourseRepository) Search(ctx context.Context, q string) ([]course.WithStats, error) {
	query := courseWithStatsSelect + `
	WHERE c.name ILIKE $1 OR c.description ILIKE $1 OR c.code ILIKE $1` +
		courseWithStatsGroup + ` ORDER BY c.code`

	rows, err := r.db.Query(ctx, query, "%"+q+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search courses: %w", err)
	}
	defer rows.Close()
	return scanCourseWithStatsRows(rows)
}

// FindScheduledIDs returns IDs of courses with a matching session.
// dayOfWeek 0 matches any day; timePeriod 0 matches any period.
func (r *CourseRepository) FindScheduledIDs(ctx context.Context, dayOfWeek, timePeriod int) ([]int64, error) {
	query := `
		SELECT DISTINCT course_id FROM course_schedules
		WHERE ($1 = 0 OR day_of_week = $1) AND ($2 = 0 OR time_period = $2)`

	rows, err := r.db.Query(ctx, query, dayOfWeek, timePeriod)
	if err != nil {
		return nil, fmt.Errorf("failed to find scheduled courses: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan schedule row: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// FindSchedules returns the weekly sessions of a course
func (r *CourseRepository) FindSchedules(ctx context.Context, courseID int64) ([]course.Schedule, error) {
	query := `
		SELECT id, course_id, day_of_week, time_period, location
		FROM course_schedules WHERE course_id = $1
		ORDER BY day_of_week, time_period`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find schedules: %w", err)
	}
	defer rows.Close()

	var schedules []course.Schedule
	for rows.Next() {
		var s course.Schedule
		if err := rows.Scan(&s.ID, &s.CourseID, &s.DayOfWeek, &s.TimePeriod, &s.Location); err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

// AddSchedule attaches a weekly session to a course
func (r *CourseRepository) AddSchedule(ctx context.Context, s *course.Schedule) error {
	query := `
		INSERT INTO course_schedules (course_id, day_of_week, time_period, location)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.QueryRow(ctx, query, s.CourseID, s.DayOfWeek, s.TimePeriod, s.Location).Scan(&s.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return course.ErrCourseNotFound
		}
		return fmt.Errorf("failed to add schedule: %w", err)
	}
	return nil
}

func scanCourseWithStats(row pgx.Row) (*course.WithStats, error) {
	var c course.WithStats
	err := row.Scan(
		&c.ID, &c.Code, &c.Name, &c.Credits, &c.Type, &c.Description,
		&c.AssessmentCriteria, &c.AISummary, &c.FacultyID, &c.TeacherID,
		&c.CreatedAt, &c.UpdatedAt,
		&c.FacultyName, &c.TeacherName, &c.AverageRating, &c.ReviewCount)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCourseWithStatsRows(rows pgx.Rows) ([]course.WithStats, error) {
	var courses []course.WithStats
	for rows.Next() {
		c, err := scanCourseWithStats(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, *c)
	}
	return courses, rows.Err()
}
