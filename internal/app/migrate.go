package app

import (
	"strings"

	"go-staffpay/internal/attendance"
	"go-staffpay/internal/messaging/kafka"
	"go-staffpay/internal/parttime"
	"go-staffpay/internal/payroll"
	"go-staffpay/internal/shared/counter"
	"go-staffpay/internal/staff"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the services read and write.
func Migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&staff.Staff{},
		&staff.SalaryHike{},
		&staff.OldStaffRecord{},
		&attendance.Attendance{},
		&payroll.AdvanceDeduction{},
		&payroll.SalaryOverride{},
		&parttime.AdvanceRecord{},
		&parttime.Settlement{},
		&counter.Counter{},
	); err != nil {
		return err
	}

	for _, stmt := range strings.Split(kafka.OutboxSchema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if err := gormDB.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
