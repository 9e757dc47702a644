package parttime

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"go-staffpay/internal/attendance"
	"go-staffpay/internal/calendar"
	"go-staffpay/internal/config"
	"go-staffpay/internal/events"
	"go-staffpay/internal/messaging/kafka"
	parttimeerrors "go-staffpay/internal/parttime/errors"
	"go-staffpay/internal/shared/contextutil"
	"go-staffpay/internal/shared/scope"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=parttime_service.go -destination=mock/parttime_service_mock.go -package=mock
type Service interface {
	ListStaff(ctx context.Context, req PeriodRequest) ([]SalaryDetail, error)
	Earnings(ctx context.Context, req EarningsRequest) (SalaryDetail, error)
	UpsertAdvance(ctx context.Context, req UpsertAdvanceRequest) (AdvanceRecordResponse, error)
	ListAdvances(ctx context.Context, req ListAdvancesRequest) ([]AdvanceRecordResponse, error)
	SettlementStatus(ctx context.Context, req SettlementRequest) (SettlementResponse, error)
	ToggleSettlement(ctx context.Context, req SettlementRequest) (SettlementResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	policy config.PayPolicy
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	policy config.PayPolicy,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("parttime.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("parttime.service")
	}
	return &service{db: db, repo: repo, outbox: outbox, policy: policy, logger: l}
}

func (s *service) ListStaff(ctx context.Context, req PeriodRequest) ([]SalaryDetail, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	period, err := req.toPeriod()
	if err != nil {
		log.Warn("list part-time staff invalid period", zap.Error(err))
		return nil, err
	}

	records, err := s.loadRecords(ctx, s.repo, period, "")
	if err != nil {
		log.Error("list part-time staff load attendance failed", zap.Error(err))
		return nil, err
	}

	return Project(records, period, s.policy), nil
}

func (s *service) Earnings(ctx context.Context, req EarningsRequest) (SalaryDetail, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("part-time earnings requested",
		zap.String("staff_name", req.StaffName),
		zap.String("period", req.Period),
	)

	key := scope.NormalizeName(req.StaffName)
	if key == "" {
		return SalaryDetail{}, parttimeerrors.ErrNameRequired
	}
	period, err := req.toPeriod()
	if err != nil {
		return SalaryDetail{}, err
	}

	records, err := s.loadRecords(ctx, s.repo, period, key)
	if err != nil {
		log.Error("part-time earnings load attendance failed", zap.Error(err))
		return SalaryDetail{}, err
	}

	return Calculate(req.StaffName, strings.TrimSpace(req.Location), records, period, s.policy), nil
}

func (s *service) UpsertAdvance(ctx context.Context, req UpsertAdvanceRequest) (AdvanceRecordResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("upsert part-time advance requested",
		zap.String("request_id", rid),
		zap.String("staff_name", req.StaffName),
		zap.String("location", req.Location),
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
		zap.Int("week_number", req.WeekNumber),
	)

	name := strings.TrimSpace(req.StaffName)
	key := scope.NormalizeName(name)
	location := strings.TrimSpace(req.Location)
	if key == "" {
		return AdvanceRecordResponse{}, parttimeerrors.ErrNameRequired
	}
	if location == "" {
		return AdvanceRecordResponse{}, parttimeerrors.ErrLocationRequired
	}
	if req.AdvanceGiven < 0 || (req.OpeningBalance != nil && *req.OpeningBalance < 0) {
		return AdvanceRecordResponse{}, parttimeerrors.ErrNegativeAmount
	}
	week := WeekPeriod(req.Year, time.Month(req.Month), req.WeekNumber)
	if err := week.Validate(); err != nil {
		return AdvanceRecordResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("upsert part-time advance begin tx failed", zap.Error(err))
		return AdvanceRecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	history, err := qtx.FindAdvanceRecords(ctx, AdvanceFilter{NameKey: key, Location: location})
	if err != nil {
		log.Error("upsert part-time advance load history failed", zap.Error(err))
		return AdvanceRecordResponse{}, err
	}

	opening := OpeningBalance(history, week.Year, week.Month, week.Week)
	if req.OpeningBalance != nil {
		opening = *req.OpeningBalance
	}

	records, err := s.loadRecords(ctx, qtx, week, key)
	if err != nil {
		log.Error("upsert part-time advance load attendance failed", zap.Error(err))
		return AdvanceRecordResponse{}, err
	}
	earnings := Calculate(name, location, records, week, s.policy).TotalEarnings
	balance := Reconcile(opening, req.AdvanceGiven, earnings)

	row := AdvanceRecord{
		ID:             uuid.New(),
		StaffName:      name,
		NameKey:        key,
		Location:       location,
		Year:           week.Year,
		Month:          int(week.Month),
		WeekNumber:     week.Week,
		OpeningBalance: opening,
		AdvanceGiven:   req.AdvanceGiven,
		Earnings:       earnings,
		Adjustment:     balance.Adjustment,
		ClosingBalance: balance.ClosingBalance,
		PendingSalary:  balance.PendingSalary,
	}
	if err := qtx.UpsertAdvanceRecord(ctx, &row); err != nil {
		log.Error("upsert part-time advance persist failed", zap.Error(err))
		return AdvanceRecordResponse{}, mapRepositoryError(err)
	}

	stored, err := qtx.FindAdvanceRecords(ctx, AdvanceFilter{
		NameKey:    key,
		Location:   location,
		FromPeriod: row.Year*100 + row.Month,
		ToPeriod:   row.Year*100 + row.Month,
	})
	if err != nil {
		log.Error("upsert part-time advance reload failed", zap.Error(err))
		return AdvanceRecordResponse{}, err
	}
	for _, r := range stored {
		if r.WeekNumber == row.WeekNumber {
			row = r
			break
		}
	}

	if s.outbox != nil {
		weekNumber := row.WeekNumber
		event, err := kafka.NewOutboxEvent(
			events.AdvanceTopic,
			events.EventPartTimeAdvanceRecorded,
			"part_time_staff",
			key+"|"+location,
			rid,
			events.AdvanceRecordedEvent{
				EventType:      events.EventPartTimeAdvanceRecorded,
				RequestID:      rid,
				StaffName:      name,
				Location:       location,
				Year:           row.Year,
				Month:          row.Month,
				WeekNumber:     &weekNumber,
				OpeningBalance: row.OpeningBalance,
				Advance:        row.AdvanceGiven,
				Earnings:       row.Earnings,
				ClosingBalance: row.ClosingBalance,
				PendingSalary:  row.PendingSalary,
				OccurredAt:     time.Now().UTC(),
			},
		)
		if err != nil {
			return AdvanceRecordResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			log.Error("upsert part-time advance outbox persist failed", zap.Error(err))
			return AdvanceRecordResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("upsert part-time advance commit failed", zap.Error(err))
		return AdvanceRecordResponse{}, err
	}

	log.Info("upsert part-time advance success",
		zap.String("request_id", rid),
		zap.String("staff_name", name),
		zap.Int64("closing_balance", row.ClosingBalance),
		zap.Int64("pending_salary", row.PendingSalary),
	)
	return mapAdvanceResponse(row), nil
}

func (s *service) ListAdvances(ctx context.Context, req ListAdvancesRequest) ([]AdvanceRecordResponse, error) {
	filter := AdvanceFilter{
		NameKey:  scope.NormalizeName(req.StaffName),
		Location: strings.TrimSpace(req.Location),
	}

	var from, to time.Time
	if req.From != "" {
		d, err := calendar.ParseDate(req.From)
		if err != nil {
			return nil, parttimeerrors.ErrInvalidDate
		}
		from = d
		// the previous month's last week can spill into from
		filter.FromPeriod = periodNumber(time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0))
	}
	if req.To != "" {
		d, err := calendar.ParseDate(req.To)
		if err != nil {
			return nil, parttimeerrors.ErrInvalidDate
		}
		to = d
		filter.ToPeriod = periodNumber(d)
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, parttimeerrors.ErrInvalidDateRange
	}

	rows, err := s.repo.FindAdvanceRecords(ctx, filter)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list part-time advances failed", zap.Error(err))
		return nil, err
	}

	out := make([]AdvanceRecordResponse, 0, len(rows))
	for _, r := range rows {
		resp := mapAdvanceResponse(r)
		w := weekOf(r)
		if !from.IsZero() && w.End.Before(from) {
			continue
		}
		if !to.IsZero() && w.Start.After(to) {
			continue
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *service) SettlementStatus(ctx context.Context, req SettlementRequest) (SettlementResponse, error) {
	key, location, keys, err := settlementScope(req)
	if err != nil {
		return SettlementResponse{}, err
	}

	status, err := s.loadStatus(ctx, s.repo, key, location, keys)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("settlement status load failed", zap.Error(err))
		return SettlementResponse{}, err
	}
	return SettlementResponse{StaffName: strings.TrimSpace(req.StaffName), Location: location, SettlementStatus: status}, nil
}

func (s *service) ToggleSettlement(ctx context.Context, req SettlementRequest) (SettlementResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("toggle settlement requested",
		zap.String("request_id", rid),
		zap.String("staff_name", req.StaffName),
		zap.String("location", req.Location),
		zap.String("period", req.Period),
	)

	key, location, keys, err := settlementScope(req)
	if err != nil {
		return SettlementResponse{}, err
	}
	name := strings.TrimSpace(req.StaffName)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("toggle settlement begin tx failed", zap.Error(err))
		return SettlementResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	current, err := s.loadStatus(ctx, qtx, key, location, keys)
	if err != nil {
		log.Error("toggle settlement load failed", zap.Error(err))
		return SettlementResponse{}, err
	}

	target := current.ToggleTarget()
	rows := make([]Settlement, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, Settlement{
			ID:            uuid.New(),
			StaffName:     name,
			NameKey:       key,
			Location:      location,
			SettlementKey: k,
			Settled:       target,
		})
	}
	if err := qtx.UpsertSettlements(ctx, rows); err != nil {
		log.Error("toggle settlement persist failed", zap.Error(err))
		return SettlementResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event, err := kafka.NewOutboxEvent(
			events.AdvanceTopic,
			events.EventPartTimeSettlement,
			"part_time_staff",
			key+"|"+location,
			rid,
			events.SettlementToggledEvent{
				EventType:  events.EventPartTimeSettlement,
				RequestID:  rid,
				StaffName:  name,
				Location:   location,
				Keys:       keys,
				Settled:    target,
				OccurredAt: time.Now().UTC(),
			},
		)
		if err != nil {
			return SettlementResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			log.Error("toggle settlement outbox persist failed", zap.Error(err))
			return SettlementResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("toggle settlement commit failed", zap.Error(err))
		return SettlementResponse{}, err
	}

	settled := make(map[string]bool, len(keys))
	for _, k := range keys {
		settled[k] = target
	}
	log.Info("toggle settlement success",
		zap.String("request_id", rid),
		zap.Int("keys", len(keys)),
		zap.Bool("settled", target),
	)
	return SettlementResponse{StaffName: name, Location: location, SettlementStatus: StatusOf(keys, settled)}, nil
}

func (s *service) loadRecords(ctx context.Context, repo Repository, period Period, nameKey string) ([]attendance.PartTime, error) {
	from, to := period.Bounds()
	rows, err := repo.FindAttendance(ctx, from, to, nameKey)
	if err != nil {
		return nil, err
	}
	_, part := attendance.Split(rows)
	return part, nil
}

func (s *service) loadStatus(ctx context.Context, repo Repository, nameKey, location string, keys []string) (SettlementStatus, error) {
	rows, err := repo.FindSettlements(ctx, nameKey, location, keys)
	if err != nil {
		return SettlementStatus{}, err
	}
	settled := make(map[string]bool, len(rows))
	for _, r := range rows {
		settled[r.SettlementKey] = r.Settled
	}
	return StatusOf(keys, settled), nil
}

func settlementScope(req SettlementRequest) (string, string, []string, error) {
	key := scope.NormalizeName(req.StaffName)
	location := strings.TrimSpace(req.Location)
	if key == "" {
		return "", "", nil, parttimeerrors.ErrNameRequired
	}
	if location == "" {
		return "", "", nil, parttimeerrors.ErrLocationRequired
	}
	period, err := req.toPeriod()
	if err != nil {
		return "", "", nil, err
	}
	return key, location, period.SettlementKeys(), nil
}

func periodNumber(t time.Time) int {
	return t.Year()*100 + int(t.Month())
}

func weekOf(r AdvanceRecord) calendar.Week {
	weeks := calendar.WeeksInMonth(r.Year, time.Month(r.Month))
	if r.WeekNumber < 0 || r.WeekNumber >= len(weeks) {
		start, end := calendar.MonthRange(r.Year, time.Month(r.Month))
		return calendar.Week{Start: start, End: end}
	}
	return weeks[r.WeekNumber]
}

func mapAdvanceResponse(r AdvanceRecord) AdvanceRecordResponse {
	w := weekOf(r)
	return AdvanceRecordResponse{
		ID:             r.ID.String(),
		StaffName:      r.StaffName,
		Location:       r.Location,
		Year:           r.Year,
		Month:          r.Month,
		WeekNumber:     r.WeekNumber,
		WeekStart:      w.Start.Format(calendar.DateLayout),
		WeekEnd:        w.End.Format(calendar.DateLayout),
		OpeningBalance: r.OpeningBalance,
		AdvanceGiven:   r.AdvanceGiven,
		Earnings:       r.Earnings,
		Balance: Balance{
			Adjustment:     r.Adjustment,
			ClosingBalance: r.ClosingBalance,
			PendingSalary:  r.PendingSalary,
		},
	}
}
