package attendance

import (
	"go-staffpay/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	att := r.Group("/attendance")
	{
		att.GET("", handler.List)
		att.GET("/summary", handler.MonthlySummary)
		att.POST("", middleware.Idempotency(rdb), handler.Mark)
		att.POST("/bulk", middleware.Idempotency(rdb), handler.BulkMark)
		att.POST("/part-time", middleware.Idempotency(rdb), handler.AddPartTime)
		att.PUT("/:id", handler.Update)
		att.DELETE("/part-time/:id", handler.DeletePartTime)
	}
}
