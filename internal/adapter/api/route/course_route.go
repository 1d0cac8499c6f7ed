package route

import (
	"github.com/gin-gonic/gin"

	"github.com/must-coursehub/course-advisor/internal/adapter/api/controller"
	"github.com/must-coursehub/course-advisor/internal/domain/user"
	"github.com/must-coursehub/course-advisor/pkg/auth"
)

// RegisterCourseRoutes mounts course browsing, reviews and the
// admin-only catalog management endpoints.
func RegisterCourseRoutes(api *gin.RouterGroup, jwtService *auth.JWTService, c *controller.CourseController, reviews *controller.ReviewController) {
	group := api.Group("/courses")
	{
		group.GET("", c.List)
		group.GET("/:id", c.Get)
		group.GET("/:id/schedules", c.ListSchedules)
		group.GET("/:id/reviews", reviews.ListByCourse)
	}

	authed := group.Group("", auth.Middleware(jwtService))
	{
		authed.POST("/:id/reviews", reviews.Create)
	}

	admin := group.Group("", auth.Middleware(jwtService), auth.RequireRole(user.RoleAdmin))
	{
		admin.POST("", c.Create)
		admin.PUT("/:id", c.Update)
		admin.DELETE("/:id", c.Delete)
		admin.POST("/:id/schedules", c.AddSchedule)
	}
}
