package employee

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("/",
			middleware.RateLimitByIP(10, 30),
			handler.GetAll,
		)

		employees.POST("/",
			middleware.RateLimitByIP(1, 5),
			handler.Create,
		)

		employees.GET("/:employeeId/",
			middleware.RateLimitByIP(10, 30),
			handler.GetByID,
		)

		employees.DELETE("/:employeeId/",
			middleware.RateLimitByIP(0.5, 5),
			handler.Delete,
		)
	}
}
