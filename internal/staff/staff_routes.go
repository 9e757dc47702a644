package staff

import (
	"go-staffpay/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	staff := r.Group("/staff")
	{
		staff.GET("", handler.List)
		staff.GET("/options", handler.Options)
		staff.GET("/:id", handler.GetByID)
		staff.POST("", middleware.Idempotency(rdb), handler.Create)
		staff.PUT("/:id", handler.Update)
		staff.GET("/:id/hikes", handler.ListHikes)
		staff.POST("/:id/hikes", middleware.Idempotency(rdb), handler.ApplyHike)
		staff.POST("/:id/archive", middleware.Idempotency(rdb), handler.Archive)
	}

	old := r.Group("/old-staff")
	{
		old.GET("", handler.ListOldStaff)
		old.POST("/:id/rejoin", middleware.Idempotency(rdb), handler.Rejoin)
	}
}
