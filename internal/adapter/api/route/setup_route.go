package route

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/must-coursehub/course-advisor/internal/adapter/api/controller"
	"github.com/must-coursehub/course-advisor/pkg/auth"
)

// Controllers groups everything the route tree needs
type Controllers struct {
	Auth           *controller.AuthController
	Course         *controller.CourseController
	Faculty        *controller.FacultyController
	Teacher        *controller.TeacherController
	Review         *controller.ReviewController
	Conversation   *controller.ConversationController
	Recommendation *controller.RecommendationController
}

// SetupRoutes mounts every endpoint under /api/v1
func SetupRoutes(router *gin.Engine, jwtService *auth.JWTService, c Controllers) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")

	RegisterAuthRoutes(api, jwtService, c.Auth)
	RegisterCourseRoutes(api, jwtService, c.Course, c.Review)
	RegisterFacultyRoutes(api, c.Faculty)
	RegisterTeacherRoutes(api, c.Teacher)
	RegisterReviewRoutes(api, jwtService, c.Review)
	RegisterConversationRoutes(api, jwtService, c.Conversation)
	RegisterRecommendationRoutes(api, jwtService, c.Recommendation)
}
