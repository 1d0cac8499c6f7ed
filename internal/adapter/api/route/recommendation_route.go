package route

import (
	"github.com/gin-gonic/gin"

	"github.com/must-coursehub/course-advisor/internal/adapter/api/controller"
	"github.com/must-coursehub/course-advisor/pkg/auth"
)

// RegisterRecommendationRoutes mounts the conversational assistant
func RegisterRecommendationRoutes(api *gin.RouterGroup, jwtService *auth.JWTService, c *controller.RecommendationController) {
	group := api.Group("/ai-recommendations")
	{
		group.GET("/status", c.Status)
		group.POST("/chat", auth.Middleware(jwtService), c.Chat)
	}
}
