package attendance

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	records := r.Group("/attendance")
	{
		records.GET("/",
			middleware.RateLimitByIP(10, 30),
			handler.GetAll,
		)

		records.POST("/",
			middleware.RateLimitByIP(2, 10),
			handler.Mark,
		)
	}
}
