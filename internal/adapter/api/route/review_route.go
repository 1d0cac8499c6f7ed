package route

import (
	"github.com/gin-gonic/gin"

	"github.com/must-coursehub/course-advisor/internal/adapter/api/controller"
	"github.com/must-coursehub/course-advisor/internal/domain/user"
	"github.com/must-coursehub/course-advisor/pkg/auth"
)

// RegisterReviewRoutes mounts review moderation (admin only). Review
// creation and listing live under /courses/:id/reviews.
func RegisterReviewRoutes(api *gin.RouterGroup, jwtService *auth.JWTService, c *controller.ReviewController) {
	group := api.Group("/reviews", auth.Middleware(jwtService), auth.RequireRole(user.RoleAdmin))
	{
		group.PUT("/:id/status", c.UpdateStatus)
	}
}
