package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/must-coursehub/course-advisor/internal/adapter/api/dto"
	"github.com/must-coursehub/course-advisor/internal/domain/course"
	"github.com/must-coursehub/course-advisor/pkg/logger"
)

// CourseController handles course CRUD, search and schedules
type CourseController struct {
	courses course.Repository
	logger  logger.Logger
}

// NewCourseController creates a new course controller
func NewCourseController(courses course.Repository, logger logger.Logger) *CourseController {
	return &CourseController{courses: courses, logger: logger}
}

// List godoc
// @Summary List courses
// @Description Lists every course with faculty, teacher and rating aggregates. Pass q to search by name, description or code.
// @Tags courses
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} dto.CourseListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	var (
		found []course.WithStats
		err   error
	)
	if q := ctx.Query("q"); q != "" {
		found, err = c.courses.Search(ctx.Request.Context(), q)
	} else {
		found, err = c.courses.FindAll(ctx.Request.Context())
	}
	if err != nil {
		c.logger.Error("Failed to list courses", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list courses"))
		return
	}

	resp := dto.CourseListResponse{Courses: make([]dto.CourseResponse, 0, len(found)), Total: len(found)}
	for _, item := range found {
		resp.Courses = append(resp.Courses, dto.CourseResponseFromEntity(item))
	}
	ctx.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Get one course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.CourseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id} [get]
func (c *CourseController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	found, err := c.courses.FindByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, course.ErrCourseNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
			return
		}
		c.logger.Error("Failed to find course", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to find course"))
		return
	}
	ctx.JSON(http.StatusOK, dto.CourseResponseFromEntity(*found))
}

// Create godoc
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course data"
// @Success 201 {object} dto.CourseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err.Error()))
		return
	}

	entity := req.ToEntity()
	if err := c.courses.Create(ctx.Request.Context(), entity); err != nil {
		if errors.Is(err, course.ErrCodeExists) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(err.Error()))
			return
		}
		c.logger.Error("Failed to create course", "code", req.Code, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to create course"))
		return
	}

	created, err := c.courses.FindByID(ctx.Request.Context(), entity.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to load created course"))
		return
	}
	ctx.JSON(http.StatusCreated, dto.CourseResponseFromEntity(*created))
}

// Update godoc
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Course data"
// @Success 200 {object} dto.CourseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err.Error()))
		return
	}

	entity := &course.Course{
		ID:                 id,
		Code:               req.Code,
		Name:               req.Name,
		Credits:            req.Credits,
		Type:               req.Type,
		Description:        req.Description,
		AssessmentCriteria: req.AssessmentCriteria,
		AISummary:          req.AISummary,
		FacultyID:          req.FacultyID,
		TeacherID:          req.TeacherID,
	}
	if err := c.courses.Update(ctx.Request.Context(), entity); err != nil {
		switch {
		case errors.Is(err, course.ErrCourseNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
		case errors.Is(err, course.ErrCodeExists):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(err.Error()))
		default:
			c.logger.Error("Failed to update course", "id", id, "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to update course"))
		}
		return
	}

	updated, err := c.courses.FindByID(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to load updated course"))
		return
	}
	ctx.JSON(http.StatusOK, dto.CourseResponseFromEntity(*updated))
}

// Delete godoc
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.courses.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, course.ErrCourseNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
			return
		}
		c.logger.Error("Failed to delete course", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to delete course"))
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "course deleted"})
}

// ListSchedules godoc
// @Summary List a course's weekly sessions
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {array} dto.ScheduleResponse
// @Router /courses/{id}/schedules [get]
func (c *CourseController) ListSchedules(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	schedules, err := c.courses.FindSchedules(ctx.Request.Context(), id)
	if err != nil {
		c.logger.Error("Failed to list schedules", "course_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list schedules"))
		return
	}

	resp := make([]dto.ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		resp = append(resp, dto.ScheduleResponseFromEntity(s))
	}
	ctx.JSON(http.StatusOK, resp)
}

// AddSchedule godoc
// @Summary Add a weekly session to a course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body dto.CreateScheduleRequest true "Session data"
// @Success 201 {object} dto.ScheduleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /courses/{id}/schedules [post]
func (c *CourseController) AddSchedule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.CreateScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err.Error()))
		return
	}

	s := &course.Schedule{
		CourseID:   id,
		DayOfWeek:  req.DayOfWeek,
		TimePeriod: req.TimePeriod,
		Location:   req.Location,
	}
	if err := c.courses.AddSchedule(ctx.Request.Context(), s); err != nil {
		if errors.Is(err, course.ErrCourseNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
			return
		}
		c.logger.Error("Failed to add schedule", "course_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to add schedule"))
		return
	}
	ctx.JSON(http.StatusCreated, dto.ScheduleResponseFromEntity(*s))
}

func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid id parameter"))
		return 0, false
	}
	return id, true
}
