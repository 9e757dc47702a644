package payroll_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-staffpay/internal/attendance"
	"go-staffpay/internal/events"
	"go-staffpay/internal/messaging/kafka"
	"go-staffpay/internal/payroll"
	payrollerrors "go-staffpay/internal/payroll/errors"
	"go-staffpay/internal/staff"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakePayrollRepository struct {
	staff       []staff.Staff
	attendance  []attendance.Attendance
	advances    []payroll.AdvanceDeduction
	overrides   []payroll.SalaryOverride
	upserted    []payroll.AdvanceDeduction
	deleteErr   error
	upsertOvrFn func(ctx context.Context, row *payroll.SalaryOverride) error
}

func (f *fakePayrollRepository) WithTx(tx *sql.Tx) payroll.Repository { return f }

func (f *fakePayrollRepository) FindActiveFullTimeStaff(ctx context.Context, location string) ([]staff.Staff, error) {
	var out []staff.Staff
	for _, s := range f.staff {
		if s.IsActive && s.EmploymentType == staff.EmploymentFullTime && (location == "" || s.Location == location) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakePayrollRepository) FindStaffByID(ctx context.Context, id string) (*staff.Staff, error) {
	for _, s := range f.staff {
		if s.ID.String() == id {
			s := s
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePayrollRepository) FindFullTimeAttendance(ctx context.Context, from, to time.Time, staffIDs []uuid.UUID) ([]attendance.Attendance, error) {
	return f.attendance, nil
}

func (f *fakePayrollRepository) FindAdvances(ctx context.Context, staffIDs []uuid.UUID) ([]payroll.AdvanceDeduction, error) {
	return append(append([]payroll.AdvanceDeduction{}, f.advances...), f.upserted...), nil
}

func (f *fakePayrollRepository) UpsertAdvance(ctx context.Context, row *payroll.AdvanceDeduction) error {
	f.upserted = append(f.upserted, *row)
	return nil
}

func (f *fakePayrollRepository) FindOverrides(ctx context.Context, year int, month time.Month) ([]payroll.SalaryOverride, error) {
	return f.overrides, nil
}

func (f *fakePayrollRepository) FindOverride(ctx context.Context, staffID uuid.UUID, year int, month time.Month) (*payroll.SalaryOverride, error) {
	for _, o := range f.overrides {
		if o.StaffID == staffID && o.Year == year && o.Month == int(month) {
			o := o
			return &o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePayrollRepository) UpsertOverride(ctx context.Context, row *payroll.SalaryOverride) error {
	if f.upsertOvrFn != nil {
		return f.upsertOvrFn(ctx, row)
	}
	f.overrides = append(f.overrides, *row)
	return nil
}

func (f *fakePayrollRepository) DeleteOverride(ctx context.Context, staffID uuid.UUID, year int, month time.Month) error {
	return f.deleteErr
}

type fakeOutbox struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}

func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

type payrollServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service payroll.Service
	repo    *fakePayrollRepository
	outbox  *fakeOutbox
}

func setupPayrollServiceTest(t *testing.T) *payrollServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakePayrollRepository{}
	outbox := &fakeOutbox{}
	svc := payroll.NewService(db, repo, outbox)

	return &payrollServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo, outbox: outbox}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func presentRows(staffID uuid.UUID, year int, month time.Month, days int) []attendance.Attendance {
	rows := make([]attendance.Attendance, 0, days)
	for d := 1; len(rows) < days; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		if date.Weekday() == time.Sunday {
			continue
		}
		id := staffID
		rows = append(rows, attendance.Attendance{
			ID:              uuid.New(),
			AttendanceDate:  date,
			Status:          attendance.StatusPresent,
			AttendanceValue: 1,
			StaffID:         &id,
		})
	}
	return rows
}

func TestPayrollService_MonthlySalaries(t *testing.T) {
	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	anita := testStaff()
	inactive := testStaff()
	inactive.IsActive = false
	deps.repo.staff = []staff.Staff{anita, inactive}
	deps.repo.attendance = presentRows(anita.ID, 2025, time.January, 26)
	deps.repo.advances = []payroll.AdvanceDeduction{
		{StaffID: anita.ID, Year: 2024, Month: 12, NewAdvance: 2000},
	}
	deps.repo.overrides = []payroll.SalaryOverride{
		{StaffID: anita.ID, Year: 2025, Month: 1, HRA: int64Ptr(0)},
	}

	got, err := deps.service.MonthlySalaries(context.Background(), payroll.PeriodQuery{Year: 2025, Month: 1})

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	d := got[0]
	assert.Equal(t, anita.ID, d.StaffID)
	assert.Equal(t, 26, d.PresentDays)
	assert.Equal(t, 5, d.LeaveDays)
	assert.Equal(t, int64(2000), d.OldAdvance)
	assert.Equal(t, int64(2000), d.NewAdvance)
	assert.True(t, d.Overridden)
	assert.Equal(t, int64(13000+2600+0+500), d.GrossSalary)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_MonthlySalaries_InvalidPeriod(t *testing.T) {
	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.MonthlySalaries(context.Background(), payroll.PeriodQuery{Year: 2025, Month: 13})

	assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriod)
}

func TestPayrollService_SalaryFor(t *testing.T) {
	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	anita := testStaff()
	partTimer := testStaff()
	partTimer.EmploymentType = staff.EmploymentPartTime
	deps.repo.staff = []staff.Staff{anita, partTimer}
	deps.repo.attendance = presentRows(anita.ID, 2025, time.February, 20)

	d, err := deps.service.SalaryFor(context.Background(), anita.ID.String(), payroll.PeriodQuery{Year: 2025, Month: 2})
	assert.NoError(t, err)
	assert.Equal(t, int64(10000), d.BasicEarned)
	assert.Equal(t, int64(2000), d.IncentiveEarned)
	assert.Equal(t, 8, d.LeaveDays)

	_, err = deps.service.SalaryFor(context.Background(), partTimer.ID.String(), payroll.PeriodQuery{Year: 2025, Month: 2})
	assert.ErrorIs(t, err, payrollerrors.ErrNotFullTime)

	_, err = deps.service.SalaryFor(context.Background(), uuid.NewString(), payroll.PeriodQuery{Year: 2025, Month: 2})
	assert.ErrorIs(t, err, payrollerrors.ErrStaffNotFound)

	_, err = deps.service.SalaryFor(context.Background(), "nope", payroll.PeriodQuery{Year: 2025, Month: 2})
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidStaffID)
}

func TestPayrollService_SaveAdvance(t *testing.T) {
	t.Run("carries the previous balance forward", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		anita := testStaff()
		deps.repo.staff = []staff.Staff{anita}
		deps.repo.advances = []payroll.AdvanceDeduction{
			{ID: uuid.New(), StaffID: anita.ID, Year: 2024, Month: 11, NewAdvance: 2000},
		}
		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.SaveAdvance(context.Background(), payroll.SaveAdvanceRequest{
			StaffID: anita.ID.String(), Year: 2025, Month: 1, CurrentAdvance: 1000, Deduction: 500,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(2000), resp.OldAdvance)
		assert.Equal(t, int64(2500), resp.NewAdvance)
		assert.Len(t, deps.outbox.created, 1)
		assert.Equal(t, events.AdvanceTopic, deps.outbox.created[0].Topic)

		var ev events.AdvanceRecordedEvent
		assert.NoError(t, json.Unmarshal(deps.outbox.created[0].Payload, &ev))
		assert.Equal(t, events.EventFullTimeAdvanceRecorded, ev.EventType)
		assert.Equal(t, int64(2500), ev.ClosingBalance)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("explicit old advance wins", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		anita := testStaff()
		deps.repo.staff = []staff.Staff{anita}
		deps.repo.advances = []payroll.AdvanceDeduction{
			{StaffID: anita.ID, Year: 2024, Month: 12, NewAdvance: 2000},
		}
		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.SaveAdvance(context.Background(), payroll.SaveAdvanceRequest{
			StaffID: anita.ID.String(), Year: 2025, Month: 1, OldAdvance: int64Ptr(0), CurrentAdvance: 1004,
		})

		assert.NoError(t, err)
		assert.Zero(t, resp.OldAdvance)
		assert.Equal(t, int64(1000), resp.NewAdvance)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("part-time staff rolls back", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		partTimer := testStaff()
		partTimer.EmploymentType = staff.EmploymentPartTime
		deps.repo.staff = []staff.Staff{partTimer}
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.SaveAdvance(context.Background(), payroll.SaveAdvanceRequest{
			StaffID: partTimer.ID.String(), Year: 2025, Month: 1, CurrentAdvance: 100,
		})

		assert.ErrorIs(t, err, payrollerrors.ErrNotFullTime)
		assert.Empty(t, deps.outbox.created)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.SaveAdvance(context.Background(), payroll.SaveAdvanceRequest{
			StaffID: uuid.NewString(), Year: 2025, Month: 1, Deduction: -1,
		})

		assert.ErrorIs(t, err, payrollerrors.ErrNegativeAmount)
	})
}

func TestPayrollService_UpsertOverride(t *testing.T) {
	t.Run("empty override rejected", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.UpsertOverride(context.Background(), payroll.UpsertOverrideRequest{
			StaffID: uuid.NewString(), Year: 2025, Month: 1,
		})

		assert.ErrorIs(t, err, payrollerrors.ErrEmptyOverride)
	})

	t.Run("stored", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		anita := testStaff()
		deps.repo.staff = []staff.Staff{anita}
		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.UpsertOverride(context.Background(), payroll.UpsertOverrideRequest{
			StaffID: anita.ID.String(), Year: 2025, Month: 1, MealAllowance: int64Ptr(0),
		})

		assert.NoError(t, err)
		assert.Equal(t, anita.ID.String(), resp.StaffID)
		assert.Equal(t, int64(0), *resp.MealAllowance)
		assert.Nil(t, resp.Basic)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPayrollService_DeleteOverride_NotFound(t *testing.T) {
	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()
	deps.repo.deleteErr = gorm.ErrRecordNotFound

	err := deps.service.DeleteOverride(context.Background(), uuid.NewString(), payroll.PeriodQuery{Year: 2025, Month: 1})

	assert.ErrorIs(t, err, payrollerrors.ErrOverrideNotFound)
}

func TestPayrollService_RequestSlips(t *testing.T) {
	t.Run("queued", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.RequestSlips(context.Background(), payroll.RequestSlipsRequest{Year: 2025, Month: 1, Location: "Big Shop"})

		assert.NoError(t, err)
		assert.True(t, resp.Queued)
		assert.Len(t, deps.outbox.created, 1)
		assert.Equal(t, events.PayrollSlipRequestedTopic, deps.outbox.created[0].Topic)
		assert.Equal(t, "2025-01", deps.outbox.created[0].AggregateID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("no outbox configured", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()
		svc := payroll.NewService(db, &fakePayrollRepository{}, nil)

		_, err = svc.RequestSlips(context.Background(), payroll.RequestSlipsRequest{Year: 2025, Month: 1})

		assert.ErrorIs(t, err, payrollerrors.ErrSlipQueueUnavailable)
	})
}

func TestPayrollService_PublishSlips(t *testing.T) {
	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	anita := testStaff()
	deps.repo.staff = []staff.Staff{anita}
	deps.repo.attendance = presentRows(anita.ID, 2025, time.January, 26)
	expectTx(t, deps.sqlMock, true)

	n, err := deps.service.PublishSlips(context.Background(), events.SlipRequestedEvent{
		RequestID: "rid-1",
		Year:      2025,
		Month:     1,
		StaffIDs:  []string{anita.ID.String(), uuid.NewString()},
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Len(t, deps.outbox.created, 1)

	var ready events.SlipReadyEvent
	assert.NoError(t, json.Unmarshal(deps.outbox.created[0].Payload, &ready))
	assert.Equal(t, anita.ID.String(), ready.StaffID)

	var detail payroll.SalaryDetail
	assert.NoError(t, json.Unmarshal(ready.Detail, &detail))
	assert.Equal(t, int64(16900), detail.NetSalary)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}
