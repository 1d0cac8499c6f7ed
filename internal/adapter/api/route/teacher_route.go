package route

import (
	"github.com/gin-gonic/gin"

	"github.com/must-coursehub/course-advisor/internal/adapter/api/controller"
)

// RegisterTeacherRoutes mounts the teacher read endpoints
func RegisterTeacherRoutes(api *gin.RouterGroup, c *controller.TeacherController) {
	group := api.Group("/teachers")
	{
		group.GET("", c.List)
		group.GET("/:id", c.Get)
	}
}
