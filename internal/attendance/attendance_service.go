package attendance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	attendanceerrors "go-staffpay/internal/attendance/errors"
	"go-staffpay/internal/calendar"
	"go-staffpay/internal/config"
	"go-staffpay/internal/shared/contextutil"
	"go-staffpay/internal/shared/scope"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	BulkMark(ctx context.Context, req BulkMarkRequest) (BulkMarkResponse, error)
	AddPartTime(ctx context.Context, req AddPartTimeRequest) ([]AttendanceResponse, error)
	Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error)
	DeletePartTime(ctx context.Context, id string) error
	List(ctx context.Context, req ListAttendanceRequest) ([]AttendanceResponse, error)
	MonthlySummary(ctx context.Context, req MonthlySummaryRequest) ([]MonthlySummaryResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	policy config.PayPolicy
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, policy config.PayPolicy, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, policy: policy, logger: l}
}

func (s *service) Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("mark attendance requested",
		zap.String("request_id", rid),
		zap.String("staff_id", req.StaffID),
		zap.String("date", req.Date),
		zap.String("status", req.Status),
	)

	staffID, err := uuid.Parse(req.StaffID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidStaffID
	}
	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDate
	}
	if !ValidStatus(req.Status) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidStatus
	}
	if req.Shift != "" && !ValidShift(req.Shift) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidShift
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("mark attendance begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if _, err := qtx.FindActiveFullTimeByID(ctx, staffID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("mark attendance staff not found", zap.String("staff_id", req.StaffID))
			return AttendanceResponse{}, attendanceerrors.ErrStaffNotFound
		}
		log.Error("mark attendance load staff failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	row := newFullTimeRow(FullTime{
		Common:           Common{ID: uuid.New(), Date: date, Status: req.Status, Shift: req.Shift},
		StaffID:          staffID,
		LocationOverride: strings.TrimSpace(req.LocationOverride),
	})
	if err := qtx.UpsertFullTime(ctx, []Attendance{row}); err != nil {
		log.Error("mark attendance persist failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	// the upsert may have kept an existing row id, read back the stored row
	stored, err := qtx.FindBetween(ctx, ListFilter{From: date, To: date, StaffID: &staffID})
	if err != nil {
		log.Error("mark attendance reload failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if len(stored) > 0 {
		row = stored[0]
	}

	if err := tx.Commit(); err != nil {
		log.Error("mark attendance commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	log.Info("mark attendance success",
		zap.String("request_id", rid),
		zap.String("attendance_id", row.ID.String()),
	)
	return mapToResponse(row), nil
}

func (s *service) BulkMark(ctx context.Context, req BulkMarkRequest) (BulkMarkResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("bulk mark attendance requested",
		zap.String("date", req.Date),
		zap.String("status", req.Status),
		zap.String("location", req.Location),
	)

	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		return BulkMarkResponse{}, attendanceerrors.ErrInvalidDate
	}
	if req.Status != StatusPresent && req.Status != StatusAbsent {
		return BulkMarkResponse{}, attendanceerrors.ErrBulkStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("bulk mark begin tx failed", zap.Error(err))
		return BulkMarkResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	staff, err := qtx.FindActiveFullTimeStaff(ctx, req.Location)
	if err != nil {
		log.Error("bulk mark load staff failed", zap.Error(err))
		return BulkMarkResponse{}, err
	}

	rows := make([]Attendance, 0, len(staff))
	for _, st := range staff {
		rows = append(rows, newFullTimeRow(FullTime{
			Common:  Common{ID: uuid.New(), Date: date, Status: req.Status},
			StaffID: st.ID,
		}))
	}
	if err := qtx.UpsertFullTime(ctx, rows); err != nil {
		log.Error("bulk mark persist failed", zap.Error(err))
		return BulkMarkResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("bulk mark commit failed", zap.Error(err))
		return BulkMarkResponse{}, err
	}

	log.Info("bulk mark success", zap.Int("marked", len(rows)))
	return BulkMarkResponse{Date: req.Date, Status: req.Status, Marked: len(rows)}, nil
}

func (s *service) AddPartTime(ctx context.Context, req AddPartTimeRequest) ([]AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("add part-time attendance requested",
		zap.String("request_id", rid),
		zap.String("date", req.Date),
		zap.Int("entries", len(req.Entries)),
	)

	if len(req.Entries) == 0 {
		return nil, attendanceerrors.ErrEmptyPartTimeBatch
	}
	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDate
	}

	candidates := make([]PartTime, 0, len(req.Entries))
	keys := make([]string, 0, len(req.Entries))
	for _, e := range req.Entries {
		shift := e.Shift
		if shift == "" {
			shift = ShiftBoth
		}
		if !ValidShift(shift) {
			return nil, attendanceerrors.ErrInvalidShift
		}
		pt := PartTime{
			Common:      Common{ID: uuid.New(), Date: date, Status: StatusPresent, Shift: shift},
			StaffName:   strings.TrimSpace(e.StaffName),
			Location:    strings.TrimSpace(e.Location),
			ArrivalTime: e.ArrivalTime,
			LeavingTime: e.LeavingTime,
		}
		if e.Salary != nil {
			salary := *e.Salary
			pt.Salary = &salary
			pt.SalaryOverride = true
		} else {
			salary := DefaultPartTimePay(date, shift, s.policy)
			pt.Salary = &salary
		}
		candidates = append(candidates, pt)
		keys = append(keys, pt.NameKey())
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("add part-time begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	existingRows, err := qtx.FindPartTimeOnDate(ctx, date)
	if err != nil {
		log.Error("add part-time load existing failed", zap.Error(err))
		return nil, err
	}
	_, existing := Split(existingRows)

	fullTimeNames, err := qtx.FindActiveFullTimeNames(ctx, keys)
	if err != nil {
		log.Error("add part-time load full-time names failed", zap.Error(err))
		return nil, err
	}
	fullTime := make(map[string]struct{}, len(fullTimeNames))
	for _, n := range fullTimeNames {
		fullTime[scope.NormalizeName(n)] = struct{}{}
	}

	rows := make([]Attendance, 0, len(candidates))
	for _, c := range candidates {
		if _, clash := fullTime[c.NameKey()]; clash {
			log.Warn("add part-time name matches full-time staff", zap.String("staff_name", c.StaffName))
			return nil, attendanceerrors.ErrNameIsFullTimeStaff.WithCause(fmt.Errorf("staff_name %q", c.StaffName))
		}
		if partTimeConflict(existing, c) {
			log.Warn("add part-time duplicate rejected",
				zap.String("staff_name", c.StaffName),
				zap.String("shift", c.Shift),
				zap.String("date", req.Date),
			)
			return nil, attendanceerrors.ErrDuplicatePartTime.WithCause(
				fmt.Errorf("%s (%s) on %s", c.StaffName, c.Shift, req.Date),
			)
		}
		existing = append(existing, c)
		rows = append(rows, newPartTimeRow(c))
	}

	if err := qtx.CreatePartTime(ctx, rows); err != nil {
		log.Error("add part-time persist failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("add part-time commit failed", zap.Error(err))
		return nil, err
	}

	log.Info("add part-time success", zap.String("request_id", rid), zap.Int("created", len(rows)))
	return mapToListResponse(rows), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update attendance requested", zap.String("attendance_id", id))

	if req.Status != nil && !ValidStatus(*req.Status) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidStatus
	}
	if req.Shift != nil && *req.Shift != "" && !ValidShift(*req.Shift) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidShift
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update attendance begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		log.Warn("update attendance fetch failed", zap.String("attendance_id", id), zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if row.IsPartTime {
		if err := s.applyPartTimeUpdate(ctx, qtx, row, req); err != nil {
			log.Warn("update part-time attendance rejected", zap.String("attendance_id", id), zap.Error(err))
			return AttendanceResponse{}, err
		}
	} else {
		ft, _ := row.FullTime()
		if req.Status != nil {
			ft.Status = *req.Status
		}
		if req.Shift != nil {
			ft.Shift = *req.Shift
		}
		if req.LocationOverride != nil {
			ft.LocationOverride = strings.TrimSpace(*req.LocationOverride)
		}
		updated := newFullTimeRow(ft)
		updated.CreatedAt = row.CreatedAt
		*row = updated
	}

	if err := qtx.Update(ctx, row); err != nil {
		log.Error("update attendance persist failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("update attendance commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	log.Info("update attendance success", zap.String("attendance_id", id))
	return mapToResponse(*row), nil
}

func (s *service) applyPartTimeUpdate(ctx context.Context, qtx Repository, row *Attendance, req UpdateAttendanceRequest) error {
	pt, _ := row.PartTime()
	before := pt

	if req.Status != nil {
		pt.Status = *req.Status
	}
	if req.Shift != nil && *req.Shift != "" {
		pt.Shift = *req.Shift
	}
	if req.StaffName != nil && strings.TrimSpace(*req.StaffName) != "" {
		pt.StaffName = strings.TrimSpace(*req.StaffName)
	}
	if req.Location != nil && strings.TrimSpace(*req.Location) != "" {
		pt.Location = strings.TrimSpace(*req.Location)
	}
	if req.ArrivalTime != nil {
		pt.ArrivalTime = *req.ArrivalTime
	}
	if req.LeavingTime != nil {
		pt.LeavingTime = *req.LeavingTime
	}

	switch {
	case req.Salary != nil:
		salary := *req.Salary
		pt.Salary = &salary
		pt.SalaryOverride = true
	case !pt.SalaryOverride && pt.Shift != before.Shift:
		salary := DefaultPartTimePay(pt.Date, pt.Shift, s.policy)
		pt.Salary = &salary
	}

	if pt.NameKey() != before.NameKey() || pt.Shift != before.Shift {
		names, err := qtx.FindActiveFullTimeNames(ctx, []string{pt.NameKey()})
		if err != nil {
			return err
		}
		if len(names) > 0 {
			return attendanceerrors.ErrNameIsFullTimeStaff.WithCause(fmt.Errorf("staff_name %q", pt.StaffName))
		}
		sameDay, err := qtx.FindPartTimeOnDate(ctx, pt.Date)
		if err != nil {
			return err
		}
		_, existing := Split(sameDay)
		if partTimeConflict(existing, pt) {
			return attendanceerrors.ErrDuplicatePartTime.WithCause(
				fmt.Errorf("%s (%s) on %s", pt.StaffName, pt.Shift, pt.Date.Format(calendar.DateLayout)),
			)
		}
	}

	updated := newPartTimeRow(pt)
	updated.CreatedAt = row.CreatedAt
	*row = updated
	return nil
}

func (s *service) DeletePartTime(ctx context.Context, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("delete part-time attendance requested", zap.String("attendance_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("delete attendance begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if !row.IsPartTime {
		log.Warn("delete attendance rejected for full-time row", zap.String("attendance_id", id))
		return attendanceerrors.ErrNotPartTime
	}
	if err := qtx.Delete(ctx, id); err != nil {
		log.Error("delete attendance failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("delete attendance commit failed", zap.Error(err))
		return err
	}

	log.Info("delete part-time attendance success", zap.String("attendance_id", id))
	return nil
}

func (s *service) List(ctx context.Context, req ListAttendanceRequest) ([]AttendanceResponse, error) {
	from, to, err := parseRange(req.From, req.To)
	if err != nil {
		return nil, err
	}
	filter := ListFilter{From: from, To: to, PartTime: req.PartTime}
	if req.StaffID != "" {
		staffID, err := uuid.Parse(req.StaffID)
		if err != nil {
			return nil, attendanceerrors.ErrInvalidStaffID
		}
		filter.StaffID = &staffID
	}

	rows, err := s.repo.FindBetween(ctx, filter)
	if err != nil {
		s.logger.Error("list attendance failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) MonthlySummary(ctx context.Context, req MonthlySummaryRequest) ([]MonthlySummaryResponse, error) {
	month := time.Month(req.Month)
	from, to := calendar.MonthRange(req.Year, month)

	staff, err := s.repo.FindActiveFullTimeStaff(ctx, req.Location)
	if err != nil {
		s.logger.Error("monthly summary load staff failed", zap.Error(err))
		return nil, err
	}
	partTime := false
	rows, err := s.repo.FindBetween(ctx, ListFilter{From: from, To: to, PartTime: &partTime})
	if err != nil {
		s.logger.Error("monthly summary load attendance failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	records, _ := Split(rows)

	out := make([]MonthlySummaryResponse, 0, len(staff))
	for _, st := range staff {
		out = append(out, MonthlySummaryResponse{
			StaffID:        st.ID.String(),
			StaffName:      st.Name,
			Location:       st.Location,
			SundayHalfDays: CountSundayHalfDays(st.ID, records, req.Year, month),
			Metrics:        Aggregate(st.ID, records, req.Year, month),
		})
	}
	return out, nil
}

// partTimeConflict reports whether candidate repeats a name on an overlapping
// shift. Both overlaps every shift.
func partTimeConflict(existing []PartTime, candidate PartTime) bool {
	for _, e := range existing {
		if e.ID == candidate.ID || e.NameKey() != candidate.NameKey() {
			continue
		}
		if e.Shift == candidate.Shift || e.Shift == ShiftBoth || candidate.Shift == ShiftBoth {
			return true
		}
	}
	return false
}

func parseRange(fromRaw, toRaw string) (time.Time, time.Time, error) {
	from, err := calendar.ParseDate(fromRaw)
	if err != nil {
		return time.Time{}, time.Time{}, attendanceerrors.ErrInvalidDate
	}
	to, err := calendar.ParseDate(toRaw)
	if err != nil {
		return time.Time{}, time.Time{}, attendanceerrors.ErrInvalidDate
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, attendanceerrors.ErrInvalidDateRange
	}
	return from, to, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:               a.ID.String(),
		Date:             a.AttendanceDate.Format(calendar.DateLayout),
		Status:           a.Status,
		AttendanceValue:  a.AttendanceValue,
		Shift:            deref(a.Shift),
		IsPartTime:       a.IsPartTime,
		LocationOverride: deref(a.LocationOverride),
		StaffName:        deref(a.StaffName),
		Location:         deref(a.Location),
		Salary:           a.Salary,
		SalaryOverride:   a.SalaryOverride,
		ArrivalTime:      deref(a.ArrivalTime),
		LeavingTime:      deref(a.LeavingTime),
	}
	if a.StaffID != nil {
		resp.StaffID = a.StaffID.String()
	}
	return resp
}

func mapToListResponse(rows []Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapToResponse(r))
	}
	return out
}
