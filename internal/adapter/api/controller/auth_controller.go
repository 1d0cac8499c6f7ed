package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/must-coursehub/course-advisor/internal/adapter/api/dto"
	"github.com/must-coursehub/course-advisor/internal/domain/user"
	"github.com/must-coursehub/course-advisor/pkg/auth"
	"github.com/must-coursehub/course-advisor/pkg/logger"
)

// AuthController handles registration, login and profile lookup
type AuthController struct {
	users      user.Repository
	jwtService *auth.JWTService
	logger     logger.Logger
}

// NewAuthController creates a new auth controller
func NewAuthController(users user.Repository, jwtService *auth.JWTService, logger logger.Logger) *AuthController {
	return &AuthController{users: users, jwtService: jwtService, logger: logger}
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err.Error()))
		return
	}

	u, err := user.NewUser(req.Username, req.Email, req.Password)
	if err != nil {
		c.logger.Error("Failed to hash password", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to create user"))
		return
	}
	u.StudentID = req.StudentID
	u.FullName = req.FullName

	if err := c.users.Create(ctx.Request.Context(), u); err != nil {
		switch {
		case errors.Is(err, user.ErrUsernameExists), errors.Is(err, user.ErrEmailExists):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(err.Error()))
		default:
			c.logger.Error("Failed to create user", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to create user"))
		}
		return
	}

	c.respondWithToken(ctx, http.StatusCreated, u)
}

// Login godoc
// @Summary Authenticate and receive an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err.Error()))
		return
	}

	u, err := c.users.FindByUsername(ctx.Request.Context(), req.Username)
	if err != nil || !u.CheckPassword(req.Password) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(user.ErrInvalidCredentials.Error()))
		return
	}
	if !u.Active {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("account is disabled"))
		return
	}

	c.respondWithToken(ctx, http.StatusOK, u)
}

// Me godoc
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	id, err := uuid.Parse(auth.UserID(ctx))
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("invalid token subject"))
		return
	}

	u, err := c.users.FindByID(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(user.ErrUserNotFound.Error()))
		return
	}
	ctx.JSON(http.StatusOK, dto.UserResponseFromEntity(u))
}

func (c *AuthController) respondWithToken(ctx *gin.Context, status int, u *user.User) {
	token, err := c.jwtService.GenerateToken(u.ID.String(), u.Username, u.Role)
	if err != nil {
		c.logger.Error("Failed to generate token", "user_id", u.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to generate token"))
		return
	}
	ctx.JSON(status, dto.AuthResponse{
		Token:     token,
		ExpiresIn: int64(c.jwtService.TokenDuration().Seconds()),
		User:      dto.UserResponseFromEntity(u),
	})
}
