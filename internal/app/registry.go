package app

import (
	"database/sql"

	"go-staffpay/internal/attendance"
	"go-staffpay/internal/config"
	"go-staffpay/internal/messaging/kafka"
	"go-staffpay/internal/parttime"
	"go-staffpay/internal/payroll"
	"go-staffpay/internal/shared/counter"
	"go-staffpay/internal/staff"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// services is the set of domain services shared by the API and the consumer.
type services struct {
	staff      staff.Service
	attendance attendance.Service
	payroll    payroll.Service
	partTime   parttime.Service
}

func buildServices(
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) services {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	partTimeRepo := parttime.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	staffRepo := staff.NewRepository(gormDB)

	// --- Services ---
	return services{
		staff:      staff.NewService(db, staffRepo, counterRepo, outboxRepo, rdb, cfg.Policy, cfg.Redis.OptionsTTL, logger),
		attendance: attendance.NewService(db, attendanceRepo, cfg.Policy, logger),
		payroll:    payroll.NewService(db, payrollRepo, outboxRepo, logger),
		partTime:   parttime.NewService(db, partTimeRepo, outboxRepo, cfg.Policy, logger),
	}
}

func registerModules(router *gin.Engine, svc services, rdb *redis.Client, logger *zap.Logger) {
	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(svc.attendance)
	partTimeHandler := parttime.NewHandler(svc.partTime)
	payrollHandler := payroll.NewHandler(svc.payroll)
	staffHandler := staff.NewHandler(svc.staff, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		staff.RegisterRoutes(api, staffHandler, rdb)
		attendance.RegisterRoutes(api, attendanceHandler, rdb)
		payroll.RegisterRoutes(api, payrollHandler, rdb)
		parttime.RegisterRoutes(api, partTimeHandler, rdb)
	}
}
