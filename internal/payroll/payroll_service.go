package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-staffpay/internal/attendance"
	"go-staffpay/internal/calendar"
	"go-staffpay/internal/events"
	"go-staffpay/internal/messaging/kafka"
	payrollerrors "go-staffpay/internal/payroll/errors"
	"go-staffpay/internal/shared/contextutil"
	"go-staffpay/internal/staff"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	MonthlySalaries(ctx context.Context, q PeriodQuery) ([]SalaryDetail, error)
	SalaryFor(ctx context.Context, staffID string, q PeriodQuery) (SalaryDetail, error)
	SaveAdvance(ctx context.Context, req SaveAdvanceRequest) (AdvanceResponse, error)
	ListAdvances(ctx context.Context, staffID string) ([]AdvanceResponse, error)
	UpsertOverride(ctx context.Context, req UpsertOverrideRequest) (OverrideResponse, error)
	DeleteOverride(ctx context.Context, staffID string, q PeriodQuery) error
	ListOverrides(ctx context.Context, q PeriodQuery) ([]OverrideResponse, error)
	RequestSlips(ctx context.Context, req RequestSlipsRequest) (RequestSlipsResponse, error)
	PublishSlips(ctx context.Context, event events.SlipRequestedEvent) (int, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{db: db, repo: repo, outbox: outbox, logger: l}
}

// snapshot is one consistent read of every calculator input for a month.
type snapshot struct {
	attendance []attendance.FullTime
	advances   []AdvanceDeduction
	overrides  map[uuid.UUID]*SalaryOverride
}

func (s *service) MonthlySalaries(ctx context.Context, q PeriodQuery) ([]SalaryDetail, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("monthly salaries requested",
		zap.Int("year", q.Year),
		zap.Int("month", q.Month),
		zap.String("location", q.Location),
	)

	year, month, err := validatePeriod(q.Year, q.Month)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.FindActiveFullTimeStaff(ctx, q.Location)
	if err != nil {
		log.Error("monthly salaries load staff failed", zap.Error(err))
		return nil, err
	}
	if len(members) == 0 {
		return []SalaryDetail{}, nil
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}

	snap, err := s.loadSnapshot(ctx, ids, year, month)
	if err != nil {
		log.Error("monthly salaries load inputs failed", zap.Error(err))
		return nil, err
	}

	out := make([]SalaryDetail, 0, len(members))
	for _, m := range members {
		out = append(out, snap.detail(m, year, month))
	}

	log.Info("monthly salaries computed",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int("count", len(out)),
	)
	return out, nil
}

func (s *service) SalaryFor(ctx context.Context, staffID string, q PeriodQuery) (SalaryDetail, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("salary detail requested", zap.String("staff_id", staffID))

	year, month, err := validatePeriod(q.Year, q.Month)
	if err != nil {
		return SalaryDetail{}, err
	}

	member, err := s.loadFullTimeStaff(ctx, s.repo, staffID)
	if err != nil {
		log.Warn("salary detail staff rejected", zap.String("staff_id", staffID), zap.Error(err))
		return SalaryDetail{}, err
	}

	snap, err := s.loadSnapshot(ctx, []uuid.UUID{member.ID}, year, month)
	if err != nil {
		log.Error("salary detail load inputs failed", zap.Error(err))
		return SalaryDetail{}, err
	}

	return snap.detail(*member, year, month), nil
}

func (s *service) loadSnapshot(ctx context.Context, ids []uuid.UUID, year int, month time.Month) (snapshot, error) {
	from, to := calendar.MonthRange(year, month)

	var (
		rows      []attendance.Attendance
		advances  []AdvanceDeduction
		overrides []SalaryOverride
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.repo.FindFullTimeAttendance(gctx, from, to, ids)
		return err
	})
	g.Go(func() error {
		var err error
		advances, err = s.repo.FindAdvances(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		overrides, err = s.repo.FindOverrides(gctx, year, month)
		return err
	})
	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}

	full, _ := attendance.Split(rows)
	snap := snapshot{
		attendance: full,
		advances:   advances,
		overrides:  make(map[uuid.UUID]*SalaryOverride, len(overrides)),
	}
	for i := range overrides {
		snap.overrides[overrides[i].StaffID] = &overrides[i]
	}
	return snap, nil
}

func (snap snapshot) detail(member staff.Staff, year int, month time.Month) SalaryDetail {
	var current *AdvanceDeduction
	for i := range snap.advances {
		a := &snap.advances[i]
		if a.StaffID == member.ID && a.Year == year && a.Month == int(month) {
			current = a
			break
		}
	}

	d := Calculate(Input{
		Staff:          member,
		Metrics:        attendance.Aggregate(member.ID, snap.attendance, year, month),
		SundayHalfDays: attendance.CountSundayHalfDays(member.ID, snap.attendance, year, month),
		Advance:        current,
		History:        snap.advances,
		Year:           year,
		Month:          month,
	})
	return ApplyOverride(d, snap.overrides[member.ID])
}

func (s *service) SaveAdvance(ctx context.Context, req SaveAdvanceRequest) (AdvanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("save advance requested",
		zap.String("request_id", rid),
		zap.String("staff_id", req.StaffID),
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
	)

	year, month, err := validatePeriod(req.Year, req.Month)
	if err != nil {
		return AdvanceResponse{}, err
	}
	if req.CurrentAdvance < 0 || req.Deduction < 0 || (req.OldAdvance != nil && *req.OldAdvance < 0) {
		return AdvanceResponse{}, payrollerrors.ErrNegativeAmount
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("save advance begin tx failed", zap.Error(err))
		return AdvanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	member, err := s.loadFullTimeStaff(ctx, qtx, req.StaffID)
	if err != nil {
		log.Warn("save advance staff rejected", zap.String("staff_id", req.StaffID), zap.Error(err))
		return AdvanceResponse{}, err
	}

	history, err := qtx.FindAdvances(ctx, []uuid.UUID{member.ID})
	if err != nil {
		log.Error("save advance load history failed", zap.Error(err))
		return AdvanceResponse{}, err
	}

	oldAdvance := CarriedAdvance(member.ID, history, year, month)
	if req.OldAdvance != nil {
		oldAdvance = *req.OldAdvance
	}

	row := AdvanceDeduction{
		ID:             uuid.New(),
		StaffID:        member.ID,
		Year:           year,
		Month:          int(month),
		OldAdvance:     oldAdvance,
		CurrentAdvance: req.CurrentAdvance,
		Deduction:      req.Deduction,
		NewAdvance:     NewAdvanceBalance(oldAdvance, req.CurrentAdvance, req.Deduction),
	}
	if err := qtx.UpsertAdvance(ctx, &row); err != nil {
		log.Error("save advance persist failed", zap.Error(err))
		return AdvanceResponse{}, mapRepositoryError(err, payrollerrors.ErrStaffNotFound)
	}

	// an existing period row keeps its id on conflict
	stored, err := qtx.FindAdvances(ctx, []uuid.UUID{member.ID})
	if err != nil {
		log.Error("save advance reload failed", zap.Error(err))
		return AdvanceResponse{}, err
	}
	for _, a := range stored {
		if a.Year == year && a.Month == int(month) {
			row = a
			break
		}
	}

	if s.outbox != nil {
		event, err := kafka.NewOutboxEvent(
			events.AdvanceTopic,
			events.EventFullTimeAdvanceRecorded,
			"staff",
			member.ID.String(),
			rid,
			events.AdvanceRecordedEvent{
				EventType:      events.EventFullTimeAdvanceRecorded,
				RequestID:      rid,
				StaffID:        member.ID.String(),
				StaffName:      member.Name,
				Location:       member.Location,
				Year:           year,
				Month:          int(month),
				OpeningBalance: row.OldAdvance,
				Advance:        row.CurrentAdvance,
				Deduction:      row.Deduction,
				ClosingBalance: row.NewAdvance,
				OccurredAt:     time.Now().UTC(),
			},
		)
		if err != nil {
			return AdvanceResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			log.Error("save advance outbox persist failed", zap.Error(err))
			return AdvanceResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("save advance commit failed", zap.Error(err))
		return AdvanceResponse{}, err
	}

	log.Info("save advance success",
		zap.String("request_id", rid),
		zap.String("staff_id", member.ID.String()),
		zap.Int64("new_advance", row.NewAdvance),
	)
	return mapAdvanceResponse(row), nil
}

func (s *service) ListAdvances(ctx context.Context, staffID string) ([]AdvanceResponse, error) {
	id, err := uuid.Parse(staffID)
	if err != nil {
		return nil, payrollerrors.ErrInvalidStaffID
	}

	rows, err := s.repo.FindAdvances(ctx, []uuid.UUID{id})
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list advances failed", zap.Error(err))
		return nil, err
	}

	out := make([]AdvanceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapAdvanceResponse(r))
	}
	return out, nil
}

func (s *service) UpsertOverride(ctx context.Context, req UpsertOverrideRequest) (OverrideResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("upsert override requested",
		zap.String("request_id", rid),
		zap.String("staff_id", req.StaffID),
	)

	year, month, err := validatePeriod(req.Year, req.Month)
	if err != nil {
		return OverrideResponse{}, err
	}

	row := SalaryOverride{
		ID:            uuid.New(),
		Year:          year,
		Month:         int(month),
		Basic:         req.Basic,
		Incentive:     req.Incentive,
		HRA:           req.HRA,
		MealAllowance: req.MealAllowance,
		SundayPenalty: req.SundayPenalty,
	}
	if row.IsEmpty() {
		return OverrideResponse{}, payrollerrors.ErrEmptyOverride
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("upsert override begin tx failed", zap.Error(err))
		return OverrideResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	member, err := s.loadFullTimeStaff(ctx, qtx, req.StaffID)
	if err != nil {
		log.Warn("upsert override staff rejected", zap.String("staff_id", req.StaffID), zap.Error(err))
		return OverrideResponse{}, err
	}
	row.StaffID = member.ID

	if err := qtx.UpsertOverride(ctx, &row); err != nil {
		log.Error("upsert override persist failed", zap.Error(err))
		return OverrideResponse{}, mapRepositoryError(err, payrollerrors.ErrStaffNotFound)
	}

	stored, err := qtx.FindOverride(ctx, member.ID, year, month)
	if err != nil {
		log.Error("upsert override reload failed", zap.Error(err))
		return OverrideResponse{}, mapRepositoryError(err, payrollerrors.ErrOverrideNotFound)
	}

	if err := tx.Commit(); err != nil {
		log.Error("upsert override commit failed", zap.Error(err))
		return OverrideResponse{}, err
	}

	log.Info("upsert override success",
		zap.String("request_id", rid),
		zap.String("override_id", stored.ID.String()),
	)
	return mapOverrideResponse(*stored), nil
}

func (s *service) DeleteOverride(ctx context.Context, staffID string, q PeriodQuery) error {
	log := contextutil.GetLogger(ctx, s.logger)

	id, err := uuid.Parse(staffID)
	if err != nil {
		return payrollerrors.ErrInvalidStaffID
	}
	year, month, err := validatePeriod(q.Year, q.Month)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteOverride(ctx, id, year, month); err != nil {
		log.Warn("delete override failed", zap.String("staff_id", staffID), zap.Error(err))
		return mapRepositoryError(err, payrollerrors.ErrOverrideNotFound)
	}

	log.Info("delete override success",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("staff_id", staffID),
	)
	return nil
}

func (s *service) ListOverrides(ctx context.Context, q PeriodQuery) ([]OverrideResponse, error) {
	year, month, err := validatePeriod(q.Year, q.Month)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindOverrides(ctx, year, month)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list overrides failed", zap.Error(err))
		return nil, err
	}

	out := make([]OverrideResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapOverrideResponse(r))
	}
	return out, nil
}

func (s *service) RequestSlips(ctx context.Context, req RequestSlipsRequest) (RequestSlipsResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("request slips requested",
		zap.String("request_id", rid),
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
		zap.Int("staff_count", len(req.StaffIDs)),
	)

	year, month, err := validatePeriod(req.Year, req.Month)
	if err != nil {
		return RequestSlipsResponse{}, err
	}
	for _, id := range req.StaffIDs {
		if _, err := uuid.Parse(id); err != nil {
			return RequestSlipsResponse{}, payrollerrors.ErrInvalidStaffID
		}
	}
	if s.outbox == nil {
		return RequestSlipsResponse{}, payrollerrors.ErrSlipQueueUnavailable
	}

	event, err := kafka.NewOutboxEvent(
		events.PayrollSlipRequestedTopic,
		events.EventSlipRequested,
		"payroll",
		slipAggregateID(year, month),
		rid,
		events.SlipRequestedEvent{
			EventType:  events.EventSlipRequested,
			RequestID:  rid,
			Year:       year,
			Month:      int(month),
			Location:   req.Location,
			StaffIDs:   req.StaffIDs,
			OccurredAt: time.Now().UTC(),
		},
	)
	if err != nil {
		return RequestSlipsResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("request slips begin tx failed", zap.Error(err))
		return RequestSlipsResponse{}, err
	}
	defer tx.Rollback()

	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		log.Error("request slips outbox persist failed", zap.Error(err))
		return RequestSlipsResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		log.Error("request slips commit failed", zap.Error(err))
		return RequestSlipsResponse{}, err
	}

	log.Info("request slips queued", zap.String("request_id", rid), zap.String("outbox_id", event.ID))
	return RequestSlipsResponse{
		Year:     year,
		Month:    int(month),
		Location: req.Location,
		StaffIDs: req.StaffIDs,
		Queued:   true,
	}, nil
}

// PublishSlips computes the requested salary details and queues one ready
// event per staff member. It returns the number of slips queued.
func (s *service) PublishSlips(ctx context.Context, req events.SlipRequestedEvent) (int, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if s.outbox == nil {
		return 0, payrollerrors.ErrSlipQueueUnavailable
	}

	q := PeriodQuery{Year: req.Year, Month: req.Month, Location: req.Location}
	var details []SalaryDetail
	if len(req.StaffIDs) == 0 {
		all, err := s.MonthlySalaries(ctx, q)
		if err != nil {
			return 0, err
		}
		details = all
	} else {
		for _, id := range req.StaffIDs {
			d, err := s.SalaryFor(ctx, id, q)
			if err != nil {
				if errors.Is(err, payrollerrors.ErrStaffNotFound) || errors.Is(err, payrollerrors.ErrNotFullTime) {
					log.Warn("publish slips skipping staff", zap.String("staff_id", id), zap.Error(err))
					continue
				}
				return 0, err
			}
			details = append(details, d)
		}
	}
	if len(details) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("publish slips begin tx failed", zap.Error(err))
		return 0, err
	}
	defer tx.Rollback()

	outbox := s.outbox.WithTx(tx)
	now := time.Now().UTC()
	for _, d := range details {
		body, err := json.Marshal(d)
		if err != nil {
			return 0, err
		}
		event, err := kafka.NewOutboxEvent(
			events.PayrollSlipReadyTopic,
			events.EventSlipReady,
			"staff",
			d.StaffID.String(),
			req.RequestID,
			events.SlipReadyEvent{
				EventType:  events.EventSlipReady,
				RequestID:  req.RequestID,
				StaffID:    d.StaffID.String(),
				Year:       d.Year,
				Month:      d.Month,
				Detail:     body,
				OccurredAt: now,
			},
		)
		if err != nil {
			return 0, err
		}
		if err := outbox.Create(ctx, event); err != nil {
			log.Error("publish slips outbox persist failed", zap.Error(err))
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("publish slips commit failed", zap.Error(err))
		return 0, err
	}

	log.Info("publish slips queued",
		zap.String("request_id", req.RequestID),
		zap.Int("count", len(details)),
	)
	return len(details), nil
}

func (s *service) loadFullTimeStaff(ctx context.Context, repo Repository, staffID string) (*staff.Staff, error) {
	if _, err := uuid.Parse(staffID); err != nil {
		return nil, payrollerrors.ErrInvalidStaffID
	}
	member, err := repo.FindStaffByID(ctx, staffID)
	if err != nil {
		return nil, mapRepositoryError(err, payrollerrors.ErrStaffNotFound)
	}
	if member.EmploymentType != staff.EmploymentFullTime {
		return nil, payrollerrors.ErrNotFullTime
	}
	return member, nil
}

func validatePeriod(year, month int) (int, time.Month, error) {
	if year <= 0 || month < 1 || month > 12 {
		return 0, 0, payrollerrors.ErrInvalidPeriod
	}
	return year, time.Month(month), nil
}

func slipAggregateID(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

func mapAdvanceResponse(a AdvanceDeduction) AdvanceResponse {
	return AdvanceResponse{
		ID:             a.ID.String(),
		StaffID:        a.StaffID.String(),
		Year:           a.Year,
		Month:          a.Month,
		OldAdvance:     a.OldAdvance,
		CurrentAdvance: a.CurrentAdvance,
		Deduction:      a.Deduction,
		NewAdvance:     a.NewAdvance,
	}
}

func mapOverrideResponse(o SalaryOverride) OverrideResponse {
	return OverrideResponse{
		ID:            o.ID.String(),
		StaffID:       o.StaffID.String(),
		Year:          o.Year,
		Month:         o.Month,
		Basic:         o.Basic,
		Incentive:     o.Incentive,
		HRA:           o.HRA,
		MealAllowance: o.MealAllowance,
		SundayPenalty: o.SundayPenalty,
	}
}
