package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/must-coursehub/course-advisor/internal/adapter/api/dto"
	"github.com/must-coursehub/course-advisor/internal/domain/teacher"
	"github.com/must-coursehub/course-advisor/pkg/logger"
)

// TeacherController handles teacher read endpoints
type TeacherController struct {
	teachers teacher.Repository
	logger   logger.Logger
}

// NewTeacherController creates a new teacher controller
func NewTeacherController(teachers teacher.Repository, logger logger.Logger) *TeacherController {
	return &TeacherController{teachers: teachers, logger: logger}
}

// List godoc
// @Summary List teachers
// @Tags teachers
// @Produce json
// @Success 200 {array} teacher.Teacher
// @Router /teachers [get]
func (c *TeacherController) List(ctx *gin.Context) {
	teachers, err := c.teachers.FindAll(ctx.Request.Context())
	if err != nil {
		c.logger.Error("Failed to list teachers", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list teachers"))
		return
	}
	ctx.JSON(http.StatusOK, teachers)
}

// Get godoc
// @Summary Get one teacher
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} teacher.Teacher
// @Failure 404 {object} dto.ErrorResponse
// @Router /teachers/{id} [get]
func (c *TeacherController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	found, err := c.teachers.FindByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, teacher.ErrTeacherNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
			return
		}
		c.logger.Error("Failed to find teacher", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to find teacher"))
		return
	}
	ctx.JSON(http.StatusOK, found)
}
