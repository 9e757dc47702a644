package attendance_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-staffpay/internal/attendance"
	attendanceerrors "go-staffpay/internal/attendance/errors"
	"go-staffpay/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeAttendanceRepository struct {
	upsertFullTimeFn          func(ctx context.Context, rows []attendance.Attendance) error
	createPartTimeFn          func(ctx context.Context, rows []attendance.Attendance) error
	findByIDFn                func(ctx context.Context, id string) (*attendance.Attendance, error)
	updateFn                  func(ctx context.Context, row *attendance.Attendance) error
	deleteFn                  func(ctx context.Context, id string) error
	findBetweenFn             func(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error)
	findPartTimeOnDateFn      func(ctx context.Context, date time.Time) ([]attendance.Attendance, error)
	findActiveFullTimeStaffFn func(ctx context.Context, location string) ([]attendance.StaffRef, error)
	findActiveFullTimeByIDFn  func(ctx context.Context, id string) (*attendance.StaffRef, error)
	findActiveFullTimeNamesFn func(ctx context.Context, nameKeys []string) ([]string, error)
}

func (f *fakeAttendanceRepository) WithTx(tx *sql.Tx) attendance.Repository {
	return f
}

func (f *fakeAttendanceRepository) UpsertFullTime(ctx context.Context, rows []attendance.Attendance) error {
	if f.upsertFullTimeFn != nil {
		return f.upsertFullTimeFn(ctx, rows)
	}
	return nil
}

func (f *fakeAttendanceRepository) CreatePartTime(ctx context.Context, rows []attendance.Attendance) error {
	if f.createPartTimeFn != nil {
		return f.createPartTimeFn(ctx, rows)
	}
	return nil
}

func (f *fakeAttendanceRepository) FindByID(ctx context.Context, id string) (*attendance.Attendance, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepository) Update(ctx context.Context, row *attendance.Attendance) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, row)
	}
	return nil
}

func (f *fakeAttendanceRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeAttendanceRepository) FindBetween(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	if f.findBetweenFn != nil {
		return f.findBetweenFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) FindPartTimeOnDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	if f.findPartTimeOnDateFn != nil {
		return f.findPartTimeOnDateFn(ctx, date)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) FindActiveFullTimeStaff(ctx context.Context, location string) ([]attendance.StaffRef, error) {
	if f.findActiveFullTimeStaffFn != nil {
		return f.findActiveFullTimeStaffFn(ctx, location)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) FindActiveFullTimeByID(ctx context.Context, id string) (*attendance.StaffRef, error) {
	if f.findActiveFullTimeByIDFn != nil {
		return f.findActiveFullTimeByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepository) FindActiveFullTimeNames(ctx context.Context, nameKeys []string) ([]string, error) {
	if f.findActiveFullTimeNamesFn != nil {
		return f.findActiveFullTimeNamesFn(ctx, nameKeys)
	}
	return nil, nil
}

type attendanceServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service attendance.Service
	repo    *fakeAttendanceRepository
}

func testPolicy() config.PayPolicy {
	return config.DefaultPayPolicy()
}

func setupAttendanceServiceTest(t *testing.T) *attendanceServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeAttendanceRepository{}
	svc := attendance.NewService(db, repo, testPolicy())

	return &attendanceServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
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

func partTimeRow(name, location, shift string, date time.Time) attendance.Attendance {
	key := name
	return attendance.Attendance{
		ID:             uuid.New(),
		AttendanceDate: date,
		Status:         attendance.StatusPresent,
		Shift:          &shift,
		IsPartTime:     true,
		StaffName:      &name,
		NameKey:        &key,
		Location:       &location,
	}
}

func TestAttendanceService_AddPartTime_DuplicateShift(t *testing.T) {
	ctx := context.Background()
	date := day(2025, time.January, 3)
	existing := []attendance.Attendance{partTimeRow("Ravi", "Big Shop", attendance.ShiftMorning, date)}

	t.Run("same name and shift on the same date is rejected", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findPartTimeOnDateFn = func(ctx context.Context, d time.Time) ([]attendance.Attendance, error) {
			assert.Equal(t, date, d)
			return existing, nil
		}
		deps.repo.createPartTimeFn = func(ctx context.Context, rows []attendance.Attendance) error {
			t.Fatal("duplicate entry must not be persisted")
			return nil
		}

		_, err := deps.service.AddPartTime(ctx, attendance.AddPartTimeRequest{
			Date:    "2025-01-03",
			Entries: []attendance.PartTimeEntryRequest{{StaffName: "ravi ", Location: "Big Shop", Shift: attendance.ShiftMorning}},
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrDuplicatePartTime)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("same name on a different shift is accepted", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findPartTimeOnDateFn = func(ctx context.Context, d time.Time) ([]attendance.Attendance, error) {
			return existing, nil
		}
		var created []attendance.Attendance
		deps.repo.createPartTimeFn = func(ctx context.Context, rows []attendance.Attendance) error {
			created = rows
			return nil
		}

		resp, err := deps.service.AddPartTime(ctx, attendance.AddPartTimeRequest{
			Date:    "2025-01-03",
			Entries: []attendance.PartTimeEntryRequest{{StaffName: "Ravi", Location: "Big Shop", Shift: attendance.ShiftEvening}},
		})

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Len(t, created, 1)
		assert.Equal(t, "ravi", *created[0].NameKey)
		assert.Equal(t, int64(175), *created[0].Salary)
		assert.False(t, created[0].SalaryOverride)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("both shift overlaps an existing half shift", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findPartTimeOnDateFn = func(ctx context.Context, d time.Time) ([]attendance.Attendance, error) {
			return existing, nil
		}

		_, err := deps.service.AddPartTime(ctx, attendance.AddPartTimeRequest{
			Date:    "2025-01-03",
			Entries: []attendance.PartTimeEntryRequest{{StaffName: "Ravi", Location: "Small Shop", Shift: attendance.ShiftBoth}},
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrDuplicatePartTime)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestAttendanceService_AddPartTime_DuplicateInsideBatch(t *testing.T) {
	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)

	_, err := deps.service.AddPartTime(context.Background(), attendance.AddPartTimeRequest{
		Date: "2025-01-03",
		Entries: []attendance.PartTimeEntryRequest{
			{StaffName: "Meena", Location: "Warehouse", Shift: attendance.ShiftMorning},
			{StaffName: "MEENA", Location: "Warehouse", Shift: attendance.ShiftMorning},
		},
	})

	assert.ErrorIs(t, err, attendanceerrors.ErrDuplicatePartTime)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestAttendanceService_AddPartTime_FullTimeNameRejected(t *testing.T) {
	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.findActiveFullTimeNamesFn = func(ctx context.Context, keys []string) ([]string, error) {
		assert.Equal(t, []string{"suresh"}, keys)
		return []string{"suresh"}, nil
	}

	_, err := deps.service.AddPartTime(context.Background(), attendance.AddPartTimeRequest{
		Date:    "2025-01-03",
		Entries: []attendance.PartTimeEntryRequest{{StaffName: "Suresh", Location: "Big Shop"}},
	})

	assert.ErrorIs(t, err, attendanceerrors.ErrNameIsFullTimeStaff)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestAttendanceService_AddPartTime_PayResolution(t *testing.T) {
	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	var created []attendance.Attendance
	deps.repo.createPartTimeFn = func(ctx context.Context, rows []attendance.Attendance) error {
		created = rows
		return nil
	}
	manual := int64(450)

	_, err := deps.service.AddPartTime(context.Background(), attendance.AddPartTimeRequest{
		Date: "2025-01-05",
		Entries: []attendance.PartTimeEntryRequest{
			{StaffName: "Anil", Location: "Big Shop"},
			{StaffName: "Kiran", Location: "Big Shop", Shift: attendance.ShiftEvening},
			{StaffName: "Latha", Location: "Big Shop", Salary: &manual},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, created, 3)
	assert.Equal(t, int64(400), *created[0].Salary)
	assert.Equal(t, attendance.ShiftBoth, *created[0].Shift)
	assert.Equal(t, int64(200), *created[1].Salary)
	assert.Equal(t, int64(450), *created[2].Salary)
	assert.True(t, created[2].SalaryOverride)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestAttendanceService_AddPartTime_InvalidInput(t *testing.T) {
	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.AddPartTime(context.Background(), attendance.AddPartTimeRequest{Date: "2025-01-05"})
	assert.ErrorIs(t, err, attendanceerrors.ErrEmptyPartTimeBatch)

	_, err = deps.service.AddPartTime(context.Background(), attendance.AddPartTimeRequest{
		Date:    "05-01-2025",
		Entries: []attendance.PartTimeEntryRequest{{StaffName: "Anil", Location: "Big Shop"}},
	})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDate)

	_, err = deps.service.AddPartTime(context.Background(), attendance.AddPartTimeRequest{
		Date:    "2025-01-05",
		Entries: []attendance.PartTimeEntryRequest{{StaffName: "Anil", Location: "Big Shop", Shift: "Night"}},
	})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidShift)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestAttendanceService_Mark(t *testing.T) {
	ctx := context.Background()
	staffID := uuid.New()

	t.Run("success returns stored row", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		storedID := uuid.New()
		deps.repo.findActiveFullTimeByIDFn = func(ctx context.Context, id string) (*attendance.StaffRef, error) {
			return &attendance.StaffRef{ID: staffID, Name: "Suresh", IsActive: true}, nil
		}
		deps.repo.upsertFullTimeFn = func(ctx context.Context, rows []attendance.Attendance) error {
			assert.Len(t, rows, 1)
			assert.Equal(t, 0.5, rows[0].AttendanceValue)
			assert.False(t, rows[0].IsPartTime)
			return nil
		}
		deps.repo.findBetweenFn = func(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
			assert.Equal(t, staffID, *filter.StaffID)
			return []attendance.Attendance{{ID: storedID, AttendanceDate: day(2025, time.January, 5), Status: attendance.StatusHalfDay, AttendanceValue: 0.5, StaffID: &staffID}}, nil
		}

		resp, err := deps.service.Mark(ctx, attendance.MarkAttendanceRequest{
			StaffID: staffID.String(),
			Date:    "2025-01-05",
			Status:  attendance.StatusHalfDay,
			Shift:   attendance.ShiftMorning,
		})

		assert.NoError(t, err)
		assert.Equal(t, storedID.String(), resp.ID)
		assert.Equal(t, "2025-01-05", resp.Date)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown staff", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Mark(ctx, attendance.MarkAttendanceRequest{
			StaffID: staffID.String(),
			Date:    "2025-01-05",
			Status:  attendance.StatusPresent,
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrStaffNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid status never opens a transaction", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Mark(ctx, attendance.MarkAttendanceRequest{
			StaffID: staffID.String(),
			Date:    "2025-01-05",
			Status:  "Late",
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidStatus)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestAttendanceService_BulkMark(t *testing.T) {
	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	deps.repo.findActiveFullTimeStaffFn = func(ctx context.Context, location string) ([]attendance.StaffRef, error) {
		assert.Equal(t, "Warehouse", location)
		return []attendance.StaffRef{{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}}, nil
	}
	deps.repo.upsertFullTimeFn = func(ctx context.Context, rows []attendance.Attendance) error {
		for _, r := range rows {
			assert.Equal(t, attendance.StatusAbsent, r.Status)
			assert.Equal(t, 0.0, r.AttendanceValue)
		}
		return nil
	}

	resp, err := deps.service.BulkMark(context.Background(), attendance.BulkMarkRequest{
		Date: "2025-01-26", Status: attendance.StatusAbsent, Location: "Warehouse",
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, resp.Marked)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())

	_, err = deps.service.BulkMark(context.Background(), attendance.BulkMarkRequest{Date: "2025-01-26", Status: attendance.StatusHalfDay})
	assert.ErrorIs(t, err, attendanceerrors.ErrBulkStatus)
}

func TestAttendanceService_UpdatePartTime(t *testing.T) {
	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	date := day(2025, time.January, 3)
	row := partTimeRow("Ravi", "Big Shop", attendance.ShiftBoth, date)
	salary := int64(350)
	row.Salary = &salary

	expectTx(t, deps.sqlMock, true)
	deps.repo.findByIDFn = func(ctx context.Context, id string) (*attendance.Attendance, error) {
		copied := row
		return &copied, nil
	}
	deps.repo.findPartTimeOnDateFn = func(ctx context.Context, d time.Time) ([]attendance.Attendance, error) {
		return []attendance.Attendance{row}, nil
	}
	var saved *attendance.Attendance
	deps.repo.updateFn = func(ctx context.Context, r *attendance.Attendance) error {
		saved = r
		return nil
	}

	shift := attendance.ShiftMorning
	resp, err := deps.service.Update(context.Background(), row.ID.String(), attendance.UpdateAttendanceRequest{Shift: &shift})

	assert.NoError(t, err)
	assert.Equal(t, attendance.ShiftMorning, resp.Shift)
	assert.Equal(t, int64(175), *saved.Salary)
	assert.Equal(t, row.ID, saved.ID)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestAttendanceService_DeletePartTime(t *testing.T) {
	ctx := context.Background()

	t.Run("full-time rows cannot be deleted", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		staffID := uuid.New()
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*attendance.Attendance, error) {
			return &attendance.Attendance{ID: uuid.New(), StaffID: &staffID}, nil
		}

		err := deps.service.DeletePartTime(ctx, uuid.NewString())

		assert.ErrorIs(t, err, attendanceerrors.ErrNotPartTime)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		err := deps.service.DeletePartTime(ctx, uuid.NewString())

		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("part-time row deleted", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		row := partTimeRow("Ravi", "Big Shop", attendance.ShiftBoth, day(2025, time.January, 3))
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*attendance.Attendance, error) {
			return &row, nil
		}
		deleted := ""
		deps.repo.deleteFn = func(ctx context.Context, id string) error {
			deleted = id
			return nil
		}

		err := deps.service.DeletePartTime(ctx, row.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, row.ID.String(), deleted)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestAttendanceService_MonthlySummary(t *testing.T) {
	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	staffID := uuid.New()
	deps.repo.findActiveFullTimeStaffFn = func(ctx context.Context, location string) ([]attendance.StaffRef, error) {
		return []attendance.StaffRef{{ID: staffID, Name: "Suresh", Location: "Big Shop"}}, nil
	}
	deps.repo.findBetweenFn = func(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
		assert.Equal(t, day(2025, time.January, 1), filter.From)
		assert.Equal(t, day(2025, time.January, 31), filter.To)
		assert.False(t, *filter.PartTime)
		return []attendance.Attendance{
			{ID: uuid.New(), AttendanceDate: day(2025, time.January, 5), Status: attendance.StatusHalfDay, StaffID: &staffID},
			{ID: uuid.New(), AttendanceDate: day(2025, time.January, 12), Status: attendance.StatusAbsent, StaffID: &staffID},
			{ID: uuid.New(), AttendanceDate: day(2025, time.January, 13), Status: attendance.StatusPresent, StaffID: &staffID},
		}, nil
	}

	resp, err := deps.service.MonthlySummary(context.Background(), attendance.MonthlySummaryRequest{Year: 2025, Month: 1})

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, 1, resp[0].PresentDays)
	assert.Equal(t, 1, resp[0].HalfDays)
	assert.Equal(t, 1, resp[0].SundayAbsents)
	assert.Equal(t, 1, resp[0].SundayHalfDays)
	assert.Equal(t, 30, resp[0].LeaveDays)
}
