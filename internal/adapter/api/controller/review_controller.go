package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/must-coursehub/course-advisor/internal/adapter/api/dto"
	"github.com/must-coursehub/course-advisor/internal/domain/review"
	"github.com/must-coursehub/course-advisor/internal/domain/user"
	"github.com/must-coursehub/course-advisor/pkg/auth"
	"github.com/must-coursehub/course-advisor/pkg/logger"
)

// ReviewController handles course reviews
type ReviewController struct {
	reviews review.Repository
	users   user.Repository
	logger  logger.Logger
}

// NewReviewController creates a new review controller
func NewReviewController(reviews review.Repository, users user.Repository, logger logger.Logger) *ReviewController {
	return &ReviewController{reviews: reviews, users: users, logger: logger}
}

// ListByCourse godoc
// @Summary List a course's approved reviews
// @Tags reviews
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {array} dto.ReviewResponse
// @Router /courses/{id}/reviews [get]
func (c *ReviewController) ListByCourse(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	reviews, err := c.reviews.FindApprovedByCourse(ctx.Request.Context(), courseID)
	if err != nil {
		c.logger.Error("Failed to list reviews", "course_id", courseID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list reviews"))
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		resp = append(resp, dto.ReviewResponseFromEntity(rv))
	}
	ctx.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary Post a review for a course
// @Description Creates a pending review. It feeds the course's rating aggregates once approved.
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body dto.CreateReviewRequest true "Review data"
// @Success 201 {object} dto.ReviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /courses/{id}/reviews [post]
func (c *ReviewController) Create(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err.Error()))
		return
	}

	userID, err := uuid.Parse(auth.UserID(ctx))
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("invalid token subject"))
		return
	}

	u, err := c.users.FindByID(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("user not found"))
		return
	}
	if !u.CanComment {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse("commenting is disabled for this account"))
		return
	}

	rv := &review.Review{
		CourseID:  courseID,
		UserID:    userID,
		Content:   req.Content,
		Rating:    req.Rating,
		Anonymous: req.Anonymous,
	}
	if err := c.reviews.Create(ctx.Request.Context(), rv); err != nil {
		if errors.Is(err, review.ErrInvalidRating) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
			return
		}
		c.logger.Error("Failed to create review", "course_id", courseID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to create review"))
		return
	}
	ctx.JSON(http.StatusCreated, dto.ReviewResponseFromEntity(*rv))
}

// UpdateStatus godoc
// @Summary Moderate a review
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param request body object{status=string} true "New status: APPROVED or REJECTED"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reviews/{id}/status [put]
func (c *ReviewController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required,oneof=APPROVED REJECTED"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err.Error()))
		return
	}

	if err := c.reviews.UpdateStatus(ctx.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, review.ErrReviewNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
			return
		}
		c.logger.Error("Failed to update review status", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to update review"))
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "review status updated"})
}
