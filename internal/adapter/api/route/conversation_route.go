package route

import (
	"github.com/gin-gonic/gin"

	"github.com/must-coursehub/course-advisor/internal/adapter/api/controller"
	"github.com/must-coursehub/course-advisor/pkg/auth"
)

// RegisterConversationRoutes mounts the AI session store endpoints
func RegisterConversationRoutes(api *gin.RouterGroup, jwtService *auth.JWTService, c *controller.ConversationController) {
	group := api.Group("/conversations", auth.Middleware(jwtService))
	{
		group.GET("", c.List)
		group.POST("", c.Create)
		group.GET("/:id", c.Get)
		group.DELETE("/:id", c.Delete)
		group.PUT("/:id/title", c.UpdateTitle)
		group.PUT("/:id/context", c.UpdateContext)
		group.POST("/:id/messages", c.AddMessage)
	}
}
