package route

import (
	"github.com/gin-gonic/gin"

	"github.com/must-coursehub/course-advisor/internal/adapter/api/controller"
)

// RegisterFacultyRoutes mounts the faculty read endpoints
func RegisterFacultyRoutes(api *gin.RouterGroup, c *controller.FacultyController) {
	group := api.Group("/faculties")
	{
		group.GET("", c.List)
		group.GET("/:id", c.Get)
		group.GET("/:id/teachers", c.Teachers)
	}
}
