package attendance_test

import (
	"testing"
	"time"

	"go-staffpay/internal/attendance"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fullTime(staffID uuid.UUID, date time.Time, status string) attendance.FullTime {
	return attendance.FullTime{
		Common:  attendance.Common{ID: uuid.New(), Date: date, Status: status},
		StaffID: staffID,
	}
}

func TestAggregate(t *testing.T) {
	staffID := uuid.New()
	other := uuid.New()

	var records []attendance.FullTime
	// 20 weekday presents in January 2025, skipping the Sundays 5, 12, 19, 26
	present := 0
	for d := 1; d <= 31 && present < 20; d++ {
		date := day(2025, time.January, d)
		if date.Weekday() == time.Sunday {
			continue
		}
		records = append(records, fullTime(staffID, date, attendance.StatusPresent))
		present++
	}
	records = append(records,
		fullTime(staffID, day(2025, time.January, 5), attendance.StatusHalfDay),
		fullTime(staffID, day(2025, time.January, 28), attendance.StatusHalfDay),
		fullTime(staffID, day(2025, time.January, 12), attendance.StatusAbsent),
		fullTime(staffID, day(2025, time.January, 19), attendance.StatusAbsent),
		fullTime(staffID, day(2025, time.January, 29), attendance.StatusAbsent),
		fullTime(other, day(2025, time.January, 26), attendance.StatusAbsent),
		fullTime(staffID, day(2025, time.February, 2), attendance.StatusAbsent),
	)

	m := attendance.Aggregate(staffID, records, 2025, time.January)

	assert.Equal(t, 20, m.PresentDays)
	assert.Equal(t, 2, m.HalfDays)
	assert.Equal(t, 42, m.PresentHalves())
	assert.Equal(t, 21.0, m.TotalPresentDays)
	assert.Equal(t, 10, m.LeaveDays)
	assert.Equal(t, 2, m.SundayAbsents)
	assert.Equal(t, 1, attendance.CountSundayHalfDays(staffID, records, 2025, time.January))
}

func TestAggregate_FractionalPresenceFloorsLeave(t *testing.T) {
	staffID := uuid.New()
	records := []attendance.FullTime{
		fullTime(staffID, day(2025, time.February, 3), attendance.StatusPresent),
		fullTime(staffID, day(2025, time.February, 4), attendance.StatusHalfDay),
	}

	m := attendance.Aggregate(staffID, records, 2025, time.February)

	assert.Equal(t, 1.5, m.TotalPresentDays)
	assert.Equal(t, 27, m.LeaveDays)
}

func TestAggregate_Empty(t *testing.T) {
	m := attendance.Aggregate(uuid.New(), nil, 2025, time.April)

	assert.Equal(t, 0, m.PresentDays)
	assert.Equal(t, 0, m.HalfDays)
	assert.Equal(t, 0.0, m.TotalPresentDays)
	assert.Equal(t, 30, m.LeaveDays)
	assert.Equal(t, 0, m.SundayAbsents)
}

func TestSplit_SeparatesVariants(t *testing.T) {
	staffID := uuid.New()
	name := "Ravi"
	location := "Big Shop"
	rows := []attendance.Attendance{
		{ID: uuid.New(), AttendanceDate: day(2025, time.January, 3), Status: attendance.StatusPresent, StaffID: &staffID},
		{ID: uuid.New(), AttendanceDate: day(2025, time.January, 3), Status: attendance.StatusPresent, IsPartTime: true, StaffName: &name, Location: &location},
		{ID: uuid.New(), AttendanceDate: day(2025, time.January, 3), Status: attendance.StatusPresent},
	}

	full, part := attendance.Split(rows)

	assert.Len(t, full, 1)
	assert.Equal(t, staffID, full[0].StaffID)
	assert.Len(t, part, 1)
	assert.Equal(t, "ravi", part[0].NameKey())
	assert.Equal(t, "Big Shop", part[0].Location)
}

func TestDefaultPartTimePay(t *testing.T) {
	policy := testPolicy()

	assert.Equal(t, int64(350), attendance.DefaultPartTimePay(day(2025, time.January, 3), attendance.ShiftBoth, policy))
	assert.Equal(t, int64(175), attendance.DefaultPartTimePay(day(2025, time.January, 3), attendance.ShiftMorning, policy))
	assert.Equal(t, int64(400), attendance.DefaultPartTimePay(day(2025, time.January, 5), attendance.ShiftBoth, policy))
	assert.Equal(t, int64(200), attendance.DefaultPartTimePay(day(2025, time.January, 5), attendance.ShiftEvening, policy))
	assert.Equal(t, int64(350), attendance.DefaultPartTimePay(day(2025, time.January, 3), "", policy))
}

func TestPartTime_ResolvedPayPrefersStoredSalary(t *testing.T) {
	stored := int64(500)
	pt := attendance.PartTime{
		Common: attendance.Common{Date: day(2025, time.January, 5), Shift: attendance.ShiftMorning},
		Salary: &stored,
	}

	assert.Equal(t, int64(500), pt.ResolvedPay(testPolicy()))
	pt.Salary = nil
	assert.Equal(t, int64(200), pt.ResolvedPay(testPolicy()))
}
