package payroll

import (
	"go-staffpay/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	p := r.Group("/payroll")
	{
		p.GET("/salaries", handler.MonthlySalaries)
		p.GET("/salaries/:staffId", handler.SalaryFor)
		p.POST("/advances", middleware.Idempotency(rdb), handler.SaveAdvance)
		p.GET("/advances/:staffId", handler.ListAdvances)
		p.GET("/overrides", handler.ListOverrides)
		p.PUT("/overrides", handler.UpsertOverride)
		p.DELETE("/overrides/:staffId", handler.DeleteOverride)
		p.POST("/slips", middleware.Idempotency(rdb), handler.RequestSlips)
	}
}
