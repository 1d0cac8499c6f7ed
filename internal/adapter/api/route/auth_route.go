package route

import (
	"github.com/gin-gonic/gin"

	"github.com/must-coursehub/course-advisor/internal/adapter/api/controller"
	"github.com/must-coursehub/course-advisor/pkg/auth"
)

// RegisterAuthRoutes mounts the authentication endpoints
func RegisterAuthRoutes(api *gin.RouterGroup, jwtService *auth.JWTService, c *controller.AuthController) {
	group := api.Group("/auth")
	{
		group.POST("/register", c.Register)
		group.POST("/login", c.Login)
		group.GET("/me", auth.Middleware(jwtService), c.Me)
	}
}
