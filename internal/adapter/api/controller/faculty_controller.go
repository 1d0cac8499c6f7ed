package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/must-coursehub/course-advisor/internal/adapter/api/dto"
	"github.com/must-coursehub/course-advisor/internal/domain/faculty"
	"github.com/must-coursehub/course-advisor/internal/domain/teacher"
	"github.com/must-coursehub/course-advisor/pkg/logger"
)

// FacultyController handles faculty read endpoints
type FacultyController struct {
	faculties faculty.Repository
	teachers  teacher.Repository
	logger    logger.Logger
}

// NewFacultyController creates a new faculty controller
func NewFacultyController(faculties faculty.Repository, teachers teacher.Repository, logger logger.Logger) *FacultyController {
	return &FacultyController{faculties: faculties, teachers: teachers, logger: logger}
}

// List godoc
// @Summary List faculties
// @Tags faculties
// @Produce json
// @Success 200 {array} faculty.Faculty
// @Router /faculties [get]
func (c *FacultyController) List(ctx *gin.Context) {
	faculties, err := c.faculties.FindAll(ctx.Request.Context())
	if err != nil {
		c.logger.Error("Failed to list faculties", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list faculties"))
		return
	}
	ctx.JSON(http.StatusOK, faculties)
}

// Get godoc
// @Summary Get one faculty
// @Tags faculties
// @Produce json
// @Param id path int true "Faculty ID"
// @Success 200 {object} faculty.Faculty
// @Failure 404 {object} dto.ErrorResponse
// @Router /faculties/{id} [get]
func (c *FacultyController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	found, err := c.faculties.FindByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, faculty.ErrFacultyNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
			return
		}
		c.logger.Error("Failed to find faculty", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to find faculty"))
		return
	}
	ctx.JSON(http.StatusOK, found)
}

// Teachers godoc
// @Summary List a faculty's teachers
// @Tags faculties
// @Produce json
// @Param id path int true "Faculty ID"
// @Success 200 {array} teacher.Teacher
// @Router /faculties/{id}/teachers [get]
func (c *FacultyController) Teachers(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	teachers, err := c.teachers.FindByFaculty(ctx.Request.Context(), id)
	if err != nil {
		c.logger.Error("Failed to list faculty teachers", "faculty_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list teachers"))
		return
	}
	ctx.JSON(http.StatusOK, teachers)
}
