package dto

import (
	"time"

	"github.com/must-coursehub/course-advisor/internal/domain/course"
)

// CreateCourseRequest is the body for creating a course
type CreateCourseRequest struct {
	Code               string  `json:"code" binding:"required"`
	Name               string  `json:"name" binding:"required"`
	Credits            float64 `json:"credits" binding:"required,gt=0"`
	Type               string  `json:"type" binding:"required,oneof=COMPULSORY ELECTIVE"`
	Description        string  `json:"description"`
	AssessmentCriteria string  `json:"assessment_criteria"`
	FacultyID          int64   `json:"faculty_id" binding:"required"`
	TeacherID          int64   `json:"teacher_id" binding:"required"`
}

// ToEntity converts the request into a course entity
func (r CreateCourseRequest) ToEntity() *course.Course {
	return &course.Course{
		Code:               r.Code,
		Name:               r.Name,
		Credits:            r.Credits,
		Type:               r.Type,
		Description:        r.Description,
		AssessmentCriteria: r.AssessmentCriteria,
		FacultyID:          r.FacultyID,
		TeacherID:          r.TeacherID,
	}
}

// UpdateCourseRequest is the body for updating a course
type UpdateCourseRequest struct {
	Code               string  `json:"code" binding:"required"`
	Name               string  `json:"name" binding:"required"`
	Credits            float64 `json:"credits" binding:"required,gt=0"`
	Type               string  `json:"type" binding:"required,oneof=COMPULSORY ELECTIVE"`
	Description        string  `json:"description"`
	AssessmentCriteria string  `json:"assessment_criteria"`
	AISummary          string  `json:"ai_summary"`
	FacultyID          int64   `json:"faculty_id" binding:"required"`
	TeacherID          int64   `json:"teacher_id" binding:"required"`
}

// CourseResponse is the course representation returned by the API
type CourseResponse struct {
	ID                 int64     `json:"id"`
	Code               string    `json:"code"`
	Name               string    `json:"name"`
	Credits            float64   `json:"credits"`
	Type               string    `json:"type"`
	Description        string    `json:"description,omitempty"`
	AssessmentCriteria string    `json:"assessment_criteria,omitempty"`
	AISummary          string    `json:"ai_summary,omitempty"`
	FacultyID          int64     `json:"faculty_id"`
	FacultyName        string    `json:"faculty_name"`
	TeacherID          int64     `json:"teacher_id"`
	TeacherName        string    `json:"teacher_name"`
	AverageRating      *float64  `json:"average_rating,omitempty"`
	ReviewCount        int       `json:"review_count"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CourseResponseFromEntity maps a stats projection onto the DTO
func CourseResponseFromEntity(c course.WithStats) CourseResponse {
	return CourseResponse{
		ID:                 c.ID,
		Code:               c.Code,
		Name:               c.Name,
		Credits:            c.Credits,
		Type:               c.Type,
		Description:        c.Description,
		AssessmentCriteria: c.AssessmentCriteria,
		AISummary:          c.AISummary,
		FacultyID:          c.FacultyID,
		FacultyName:        c.FacultyName,
		TeacherID:          c.TeacherID,
		TeacherName:        c.TeacherName,
		AverageRating:      c.AverageRating,
		ReviewCount:        c.ReviewCount,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

// CourseListResponse wraps a course listing
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
	Total   int              `json:"total"`
}

// CreateScheduleRequest adds a weekly session to a course
type CreateScheduleRequest struct {
	DayOfWeek  int    `json:"day_of_week" binding:"required,min=1,max=7"`
	TimePeriod int    `json:"time_period" binding:"required,min=1,max=4"`
	Location   string `json:"location"`
}

// ScheduleResponse is one weekly session
type ScheduleResponse struct {
	ID         int64  `json:"id"`
	CourseID   int64  `json:"course_id"`
	DayOfWeek  int    `json:"day_of_week"`
	TimePeriod int    `json:"time_period"`
	Location   string `json:"location,omitempty"`
}

// ScheduleResponseFromEntity maps a schedule entity onto the DTO
func ScheduleResponseFromEntity(s course.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:         s.ID,
		CourseID:   s.CourseID,
		DayOfWeek:  s.DayOfWeek,
		TimePeriod: s.TimePeriod,
		Location:   s.Location,
	}
}
