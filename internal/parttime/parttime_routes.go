package parttime

import (
	"go-staffpay/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	pt := r.Group("/part-time")
	{
		pt.GET("/staff", handler.ListStaff)
		pt.GET("/earnings", handler.Earnings)
		pt.GET("/advances", handler.ListAdvances)
		pt.PUT("/advances", handler.UpsertAdvance)
		pt.GET("/settlements", handler.SettlementStatus)
		pt.POST("/settlements/toggle", middleware.Idempotency(rdb), handler.ToggleSettlement)
	}
}
