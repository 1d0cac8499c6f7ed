package course

import (
	"time"
)

// Type of a course in the curriculum
const (
	TypeCompulsory = "COMPULSORY"
	TypeElective   = "ELECTIVE"
)

// Course is a course offered by a faculty
type Course struct {
	ID                 int64     `json:"id"`
	Code               string    `json:"code"`
	Name               string    `json:"name"`
	Credits            float64   `json:"credits"`
	Type               string    `json:"type"`
	Description        string    `json:"description,omitempty"`
	AssessmentCriteria string    `json:"assessment_criteria,omitempty"`
	AISummary          string    `json:"ai_summary,omitempty"`
	FacultyID          int64     `json:"faculty_id"`
	TeacherID          int64     `json:"teacher_id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Schedule is one weekly session of a course.
// DayOfWeek runs 1 (Monday) through 7 (Sunday); TimePeriod is the
// timetable block: 1 early morning, 2 late morning, 3 afternoon,
// 4 evening.
type Schedule struct {
	ID         int64  `json:"id"`
	CourseID   int64  `json:"course_id"`
	DayOfWeek  int    `json:"day_of_week"`
	TimePeriod int    `json:"time_period"`
	Location   string `json:"location,omitempty"`
}

// WithStats is a course joined with its faculty/teacher names and the
// approved-review aggregates. This is the projection the
// recommendation pipeline and the list endpoints consume.
type WithStats struct {
	Course
	FacultyName   string   `json:"faculty_name"`
	TeacherName   string   `json:"teacher_name"`
	AverageRating *float64 `json:"average_rating,omitempty"`
	ReviewCount   int      `json:"review_count"`
}

// ValidType reports whether t is a known course type
func ValidType(t string) bool {
	return t == TypeCompulsory || t == TypeElective
}
