package staff

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-staffpay/internal/calendar"
	"go-staffpay/internal/config"
	"go-staffpay/internal/events"
	"go-staffpay/internal/messaging/kafka"
	"go-staffpay/internal/shared/contextutil"
	"go-staffpay/internal/shared/counter"
	stafferrors "go-staffpay/internal/staff/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const OptionsKeyPrefix = "staff:options:"

// OptionsKey is the cache key of the active staff pick list for a location.
func OptionsKey(location string) string {
	location = strings.ToLower(strings.TrimSpace(location))
	if location == "" {
		location = "all"
	}
	return OptionsKeyPrefix + location
}

//go:generate mockgen -source=staff_service.go -destination=mock/staff_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateStaffRequest) (StaffResponse, error)
	Update(ctx context.Context, id string, req UpdateStaffRequest) (StaffResponse, error)
	GetByID(ctx context.Context, id string) (StaffResponse, error)
	List(ctx context.Context, req ListStaffRequest) ([]StaffResponse, error)
	Options(ctx context.Context, location string) ([]OptionResponse, error)
	InvalidateOptions(ctx context.Context, location string) error
	ApplyHike(ctx context.Context, id string, req HikeRequest) (HikeResponse, error)
	ListHikes(ctx context.Context, id string) ([]HikeResponse, error)
	Archive(ctx context.Context, id string, req ArchiveRequest) (OldStaffResponse, error)
	ListOldStaff(ctx context.Context, location string) ([]OldStaffResponse, error)
	Rejoin(ctx context.Context, oldRecordID string, req RejoinRequest) (StaffResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	counter    counter.Repository
	outbox     kafka.OutboxRepository
	rdb        *redis.Client
	sf         *singleflight.Group
	policy     config.PayPolicy
	optionsTTL time.Duration
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
	policy config.PayPolicy,
	optionsTTL time.Duration,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("staff.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("staff.service")
	}
	if optionsTTL <= 0 {
		optionsTTL = time.Hour
	}
	return &service{
		db:         db,
		repo:       repo,
		counter:    counterRepo,
		outbox:     outbox,
		rdb:        rdb,
		sf:         &singleflight.Group{},
		policy:     policy,
		optionsTTL: optionsTTL,
		logger:     l,
	}
}

func (s *service) Create(ctx context.Context, req CreateStaffRequest) (StaffResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)
	log.Debug("create staff requested",
		zap.String("request_id", rid),
		zap.String("location", req.Location),
		zap.String("employment_type", req.EmploymentType),
	)

	if err := s.validate(req); err != nil {
		log.Warn("create staff rejected", zap.Error(err))
		return StaffResponse{}, err
	}
	joined, err := parseDateOrToday(req.JoinedDate)
	if err != nil {
		log.Warn("create staff invalid joined_date", zap.String("joined_date", req.JoinedDate))
		return StaffResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create staff begin tx failed", zap.Error(err))
		return StaffResponse{}, err
	}
	defer tx.Rollback()

	next, err := s.counter.WithTx(tx).GetNextValue(ctx, counter.StaffCode)
	if err != nil {
		log.Error("create staff generate code failed", zap.Error(err))
		return StaffResponse{}, err
	}

	member := &Staff{
		ID:         uuid.New(),
		Code:       fmt.Sprintf("STF-%06d", next),
		IsActive:   true,
		JoinedDate: joined,
	}
	applyRequest(member, req)

	if err := s.repo.WithTx(tx).Create(ctx, member); err != nil {
		log.Error("create staff persist failed", zap.Error(err))
		return StaffResponse{}, mapRepositoryError(err, stafferrors.ErrStaffNotFound)
	}

	if err := tx.Commit(); err != nil {
		log.Error("create staff commit failed", zap.Error(err))
		return StaffResponse{}, err
	}

	s.dropOptions(ctx, member.Location)

	log.Info("create staff success",
		zap.String("request_id", rid),
		zap.String("staff_id", member.ID.String()),
		zap.String("code", member.Code),
	)
	return mapToResponse(*member), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateStaffRequest) (StaffResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update staff requested", zap.String("staff_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return StaffResponse{}, stafferrors.ErrInvalidStaffID
	}
	if err := s.validate(req); err != nil {
		log.Warn("update staff rejected", zap.Error(err))
		return StaffResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update staff begin tx failed", zap.Error(err))
		return StaffResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	member, err := qtx.FindByID(ctx, id)
	if err != nil {
		log.Error("update staff fetch existing failed", zap.Error(err))
		return StaffResponse{}, mapRepositoryError(err, stafferrors.ErrStaffNotFound)
	}
	previousLocation := member.Location

	if strings.TrimSpace(req.JoinedDate) != "" {
		joined, err := calendar.ParseDate(req.JoinedDate)
		if err != nil {
			return StaffResponse{}, stafferrors.ErrInvalidDate
		}
		member.JoinedDate = joined
	}
	applyRequest(member, req)

	if err := qtx.Update(ctx, member); err != nil {
		log.Error("update staff persist failed", zap.Error(err))
		return StaffResponse{}, mapRepositoryError(err, stafferrors.ErrStaffNotFound)
	}

	if err := tx.Commit(); err != nil {
		log.Error("update staff commit failed", zap.Error(err))
		return StaffResponse{}, err
	}

	s.dropOptions(ctx, previousLocation)
	if previousLocation != member.Location {
		s.dropOptions(ctx, member.Location)
	}

	log.Info("update staff success", zap.String("staff_id", id))
	return mapToResponse(*member), nil
}

func (s *service) GetByID(ctx context.Context, id string) (StaffResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("get staff by id requested", zap.String("staff_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return StaffResponse{}, stafferrors.ErrInvalidStaffID
	}
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Error("get staff by id failed", zap.Error(err))
		return StaffResponse{}, mapRepositoryError(err, stafferrors.ErrStaffNotFound)
	}
	return mapToResponse(*member), nil
}

func (s *service) List(ctx context.Context, req ListStaffRequest) ([]StaffResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("list staff requested",
		zap.String("location", req.Location),
		zap.String("employment_type", req.EmploymentType),
		zap.Bool("active_only", req.ActiveOnly),
	)

	rows, err := s.repo.FindAll(ctx, ListFilter{
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		ActiveOnly:     req.ActiveOnly,
	})
	if err != nil {
		log.Error("list staff failed", zap.Error(err))
		return nil, err
	}

	out := make([]StaffResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapToResponse(r))
	}
	return out, nil
}

func (s *service) Options(ctx context.Context, location string) ([]OptionResponse, error) {
	cacheKey := OptionsKey(location)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []OptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindOptions(ctx, location)
		if err != nil {
			return nil, err
		}

		resp := make([]OptionResponse, 0, len(rows))
		for _, r := range rows {
			resp = append(resp, OptionResponse{
				ID:       r.ID.String(),
				Code:     r.Code,
				Name:     r.Name,
				Location: r.Location,
			})
		}

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, data, s.optionsTTL).Err(); err != nil {
					s.logger.Warn("cache staff options failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("load staff options failed", zap.Error(err))
		return nil, err
	}

	return v.([]OptionResponse), nil
}

// InvalidateOptions drops the location list and the all-locations list.
func (s *service) InvalidateOptions(ctx context.Context, location string) error {
	if s.rdb == nil {
		return nil
	}
	keys := []string{OptionsKey("")}
	if strings.TrimSpace(location) != "" {
		keys = append(keys, OptionsKey(location))
	}
	return s.rdb.Del(ctx, keys...).Err()
}

func (s *service) dropOptions(ctx context.Context, location string) {
	if err := s.InvalidateOptions(ctx, location); err != nil {
		s.logger.Error("failed to invalidate staff options cache",
			zap.String("location", location),
			zap.Error(err),
		)
	}
}

func (s *service) ApplyHike(ctx context.Context, id string, req HikeRequest) (HikeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("apply hike requested", zap.String("staff_id", id), zap.Int64("new_basic", req.NewBasic))

	if _, err := uuid.Parse(id); err != nil {
		return HikeResponse{}, stafferrors.ErrInvalidStaffID
	}
	if req.NewBasic < 0 {
		return HikeResponse{}, stafferrors.ErrNegativeAmount
	}
	effective, err := calendar.ParseDate(req.EffectiveDate)
	if err != nil {
		return HikeResponse{}, stafferrors.ErrInvalidDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("apply hike begin tx failed", zap.Error(err))
		return HikeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	member, err := qtx.FindByID(ctx, id)
	if err != nil {
		return HikeResponse{}, mapRepositoryError(err, stafferrors.ErrStaffNotFound)
	}

	hike := &SalaryHike{
		ID:            uuid.New(),
		StaffID:       member.ID,
		PreviousBasic: member.BasicSalary,
		NewBasic:      req.NewBasic,
		EffectiveDate: effective,
		Reason:        strings.TrimSpace(req.Reason),
	}
	if err := qtx.CreateHike(ctx, hike); err != nil {
		log.Error("apply hike persist failed", zap.Error(err))
		return HikeResponse{}, err
	}

	member.BasicSalary = req.NewBasic
	if err := qtx.Update(ctx, member); err != nil {
		log.Error("apply hike update staff failed", zap.Error(err))
		return HikeResponse{}, mapRepositoryError(err, stafferrors.ErrStaffNotFound)
	}

	if err := tx.Commit(); err != nil {
		log.Error("apply hike commit failed", zap.Error(err))
		return HikeResponse{}, err
	}

	log.Info("apply hike success",
		zap.String("staff_id", id),
		zap.Int64("previous_basic", hike.PreviousBasic),
		zap.Int64("new_basic", hike.NewBasic),
	)
	return mapHike(*hike), nil
}

func (s *service) ListHikes(ctx context.Context, id string) ([]HikeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, stafferrors.ErrInvalidStaffID
	}
	rows, err := s.repo.FindHikes(ctx, id)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list hikes failed", zap.Error(err))
		return nil, err
	}
	out := make([]HikeResponse, 0, len(rows))
	for _, h := range rows {
		out = append(out, mapHike(h))
	}
	return out, nil
}

// Archive deactivates the staff member and freezes its compensation, tenure
// and latest advance into an OldStaffRecord.
func (s *service) Archive(ctx context.Context, id string, req ArchiveRequest) (OldStaffResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)
	log.Debug("archive staff requested", zap.String("request_id", rid), zap.String("staff_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return OldStaffResponse{}, stafferrors.ErrInvalidStaffID
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return OldStaffResponse{}, stafferrors.ErrLeaveReasonRequired
	}
	leftDate, err := parseDateOrToday(req.LeftDate)
	if err != nil {
		return OldStaffResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("archive staff begin tx failed", zap.Error(err))
		return OldStaffResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	member, err := qtx.FindByID(ctx, id)
	if err != nil {
		return OldStaffResponse{}, mapRepositoryError(err, stafferrors.ErrStaffNotFound)
	}
	if !member.IsActive {
		log.Warn("archive staff rejected, already inactive", zap.String("staff_id", id))
		return OldStaffResponse{}, stafferrors.ErrAlreadyArchived
	}

	latest, err := qtx.FindLatestAdvance(ctx, id)
	if err != nil {
		log.Error("archive staff load latest advance failed", zap.Error(err))
		return OldStaffResponse{}, err
	}

	rec := snapshotOf(*member, latest, leftDate, reason)
	if err := qtx.CreateOldStaff(ctx, &rec); err != nil {
		log.Error("archive staff persist snapshot failed", zap.Error(err))
		return OldStaffResponse{}, err
	}

	member.IsActive = false
	if err := qtx.Update(ctx, member); err != nil {
		log.Error("archive staff deactivate failed", zap.Error(err))
		return OldStaffResponse{}, mapRepositoryError(err, stafferrors.ErrStaffNotFound)
	}

	if err := s.queueLifecycle(ctx, tx, events.EventStaffArchived, *member, reason); err != nil {
		log.Error("archive staff outbox persist failed", zap.Error(err))
		return OldStaffResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("archive staff commit failed", zap.Error(err))
		return OldStaffResponse{}, err
	}

	s.dropOptions(ctx, member.Location)

	log.Info("archive staff success",
		zap.String("request_id", rid),
		zap.String("staff_id", id),
		zap.String("experience", rec.Experience),
	)
	return mapOldStaff(rec), nil
}

func (s *service) ListOldStaff(ctx context.Context, location string) ([]OldStaffResponse, error) {
	rows, err := s.repo.FindOldStaff(ctx, location)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list old staff failed", zap.Error(err))
		return nil, err
	}
	out := make([]OldStaffResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapOldStaff(r))
	}
	return out, nil
}

// Rejoin restores an archived staff member from its snapshot and consumes the
// snapshot. The original staff row is reactivated when it still exists.
func (s *service) Rejoin(ctx context.Context, oldRecordID string, req RejoinRequest) (StaffResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)
	log.Debug("rejoin staff requested", zap.String("request_id", rid), zap.String("old_record_id", oldRecordID))

	if _, err := uuid.Parse(oldRecordID); err != nil {
		return StaffResponse{}, stafferrors.ErrInvalidStaffID
	}
	joined, err := parseDateOrToday(req.JoinedDate)
	if err != nil {
		return StaffResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("rejoin staff begin tx failed", zap.Error(err))
		return StaffResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	rec, err := qtx.FindOldStaffByID(ctx, oldRecordID)
	if err != nil {
		return StaffResponse{}, mapRepositoryError(err, stafferrors.ErrOldStaffNotFound)
	}

	member, err := qtx.FindByID(ctx, rec.StaffID.String())
	exists := err == nil
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("rejoin staff load original failed", zap.Error(err))
			return StaffResponse{}, err
		}
		next, err := s.counter.WithTx(tx).GetNextValue(ctx, counter.StaffCode)
		if err != nil {
			log.Error("rejoin staff generate code failed", zap.Error(err))
			return StaffResponse{}, err
		}
		member = &Staff{ID: uuid.New(), Code: fmt.Sprintf("STF-%06d", next)}
	}
	restoreFrom(member, *rec, joined)

	if exists {
		err = qtx.Update(ctx, member)
	} else {
		err = qtx.Create(ctx, member)
	}
	if err != nil {
		log.Error("rejoin staff persist failed", zap.Error(err))
		return StaffResponse{}, mapRepositoryError(err, stafferrors.ErrStaffNotFound)
	}

	if err := qtx.DeleteOldStaff(ctx, oldRecordID); err != nil {
		log.Error("rejoin staff consume snapshot failed", zap.Error(err))
		return StaffResponse{}, mapRepositoryError(err, stafferrors.ErrOldStaffNotFound)
	}

	if err := s.queueLifecycle(ctx, tx, events.EventStaffRejoined, *member, ""); err != nil {
		log.Error("rejoin staff outbox persist failed", zap.Error(err))
		return StaffResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("rejoin staff commit failed", zap.Error(err))
		return StaffResponse{}, err
	}

	s.dropOptions(ctx, member.Location)

	log.Info("rejoin staff success",
		zap.String("request_id", rid),
		zap.String("staff_id", member.ID.String()),
		zap.Bool("reactivated", exists),
	)
	return mapToResponse(*member), nil
}

func (s *service) queueLifecycle(ctx context.Context, tx *sql.Tx, eventType string, member Staff, reason string) error {
	if s.outbox == nil {
		return nil
	}
	rid := contextutil.GetRequestID(ctx)
	event, err := kafka.NewOutboxEvent(
		events.StaffLifecycleTopic,
		eventType,
		"staff",
		member.ID.String(),
		rid,
		events.StaffLifecycleEvent{
			EventType:   eventType,
			RequestID:   rid,
			StaffID:     member.ID.String(),
			StaffName:   member.Name,
			Location:    member.Location,
			LeaveReason: reason,
			OccurredAt:  time.Now().UTC(),
		},
	)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}

func (s *service) validate(req StaffRequest) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Phone) == "" || strings.TrimSpace(req.Location) == "" {
		return stafferrors.ErrMissingContact
	}
	switch req.EmploymentType {
	case EmploymentFullTime, EmploymentPartTime:
	default:
		return stafferrors.ErrInvalidEmploymentType
	}
	if req.BasicSalary < 0 || req.Incentive < 0 || req.HRA < 0 || req.MealAllowance < 0 || req.SalaryCalculationDays < 0 {
		return stafferrors.ErrNegativeAmount
	}
	for category, amount := range req.Supplements {
		if !s.policy.HasCategory(category) {
			return stafferrors.ErrUnknownCategory
		}
		if amount < 0 {
			return stafferrors.ErrNegativeAmount
		}
	}
	return nil
}

func applyRequest(member *Staff, req StaffRequest) {
	member.Name = strings.TrimSpace(req.Name)
	member.Phone = strings.TrimSpace(req.Phone)
	member.Location = strings.TrimSpace(req.Location)
	member.EmploymentType = req.EmploymentType
	member.BasicSalary = req.BasicSalary
	member.Incentive = req.Incentive
	member.HRA = req.HRA
	member.MealAllowance = req.MealAllowance
	member.Supplements = datatypes.NewJSONType(copyAmounts(req.Supplements))

	member.SundayPenaltyEnabled = true
	if req.SundayPenaltyEnabled != nil {
		member.SundayPenaltyEnabled = *req.SundayPenaltyEnabled
	}
	member.SalaryCalculationDays = req.SalaryCalculationDays
	if member.SalaryCalculationDays == 0 {
		member.SalaryCalculationDays = DefaultSalaryCalculationDays
	}
}

func snapshotOf(member Staff, latest *AdvanceSnapshot, leftDate time.Time, reason string) OldStaffRecord {
	rec := OldStaffRecord{
		ID:                    uuid.New(),
		StaffID:               member.ID,
		Code:                  member.Code,
		Name:                  member.Name,
		Phone:                 member.Phone,
		Location:              member.Location,
		EmploymentType:        member.EmploymentType,
		JoinedDate:            member.JoinedDate,
		LeftDate:              leftDate,
		Experience:            calendar.ExperienceLabel(member.JoinedDate, leftDate),
		BasicSalary:           member.BasicSalary,
		Incentive:             member.Incentive,
		HRA:                   member.HRA,
		MealAllowance:         member.MealAllowance,
		Supplements:           datatypes.NewJSONType(copyAmounts(member.SupplementAmounts())),
		TotalSalary:           member.TotalSalary(),
		SundayPenaltyEnabled:  member.SundayPenaltyEnabled,
		SalaryCalculationDays: member.SalaryCalculationDays,
		LeaveReason:           reason,
	}
	if latest != nil {
		month, year := latest.Month, latest.Year
		rec.LastAdvanceMonth = &month
		rec.LastAdvanceYear = &year
		rec.LastOldAdvance = latest.OldAdvance
		rec.LastCurrentAdvance = latest.CurrentAdvance
		rec.LastDeduction = latest.Deduction
		rec.LastNewAdvance = latest.NewAdvance
	}
	return rec
}

func restoreFrom(member *Staff, rec OldStaffRecord, joined time.Time) {
	if member.Code == "" {
		member.Code = rec.Code
	}
	member.Name = rec.Name
	member.Phone = rec.Phone
	member.Location = rec.Location
	member.EmploymentType = rec.EmploymentType
	member.IsActive = true
	member.JoinedDate = joined
	member.BasicSalary = rec.BasicSalary
	member.Incentive = rec.Incentive
	member.HRA = rec.HRA
	member.MealAllowance = rec.MealAllowance
	member.Supplements = datatypes.NewJSONType(copyAmounts(rec.Supplements.Data()))
	member.SundayPenaltyEnabled = rec.SundayPenaltyEnabled
	member.SalaryCalculationDays = rec.SalaryCalculationDays
	if member.SalaryCalculationDays == 0 {
		member.SalaryCalculationDays = DefaultSalaryCalculationDays
	}
}

func parseDateOrToday(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return calendar.DateOnly(time.Now()), nil
	}
	t, err := calendar.ParseDate(raw)
	if err != nil {
		return time.Time{}, stafferrors.ErrInvalidDate
	}
	return t, nil
}

func copyAmounts(in map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func mapToResponse(s Staff) StaffResponse {
	return StaffResponse{
		ID:                    s.ID.String(),
		Code:                  s.Code,
		Name:                  s.Name,
		Phone:                 s.Phone,
		Location:              s.Location,
		EmploymentType:        s.EmploymentType,
		IsActive:              s.IsActive,
		JoinedDate:            s.JoinedDate.Format(calendar.DateLayout),
		BasicSalary:           s.BasicSalary,
		Incentive:             s.Incentive,
		HRA:                   s.HRA,
		MealAllowance:         s.MealAllowance,
		Supplements:           s.SupplementAmounts(),
		TotalSalary:           s.TotalSalary(),
		SundayPenaltyEnabled:  s.SundayPenaltyEnabled,
		SalaryCalculationDays: s.SalaryCalculationDays,
	}
}

func mapHike(h SalaryHike) HikeResponse {
	return HikeResponse{
		ID:            h.ID.String(),
		StaffID:       h.StaffID.String(),
		PreviousBasic: h.PreviousBasic,
		NewBasic:      h.NewBasic,
		EffectiveDate: h.EffectiveDate.Format(calendar.DateLayout),
		Reason:        h.Reason,
	}
}

func mapOldStaff(r OldStaffRecord) OldStaffResponse {
	resp := OldStaffResponse{
		ID:             r.ID.String(),
		StaffID:        r.StaffID.String(),
		Code:           r.Code,
		Name:           r.Name,
		Phone:          r.Phone,
		Location:       r.Location,
		EmploymentType: r.EmploymentType,
		JoinedDate:     r.JoinedDate.Format(calendar.DateLayout),
		LeftDate:       r.LeftDate.Format(calendar.DateLayout),
		Experience:     r.Experience,
		BasicSalary:    r.BasicSalary,
		Incentive:      r.Incentive,
		HRA:            r.HRA,
		MealAllowance:  r.MealAllowance,
		Supplements:    r.Supplements.Data(),
		TotalSalary:    r.TotalSalary,
		LeaveReason:    r.LeaveReason,
	}
	if r.LastAdvanceMonth != nil && r.LastAdvanceYear != nil {
		resp.LastAdvance = &LastAdvance{
			Month:          *r.LastAdvanceMonth,
			Year:           *r.LastAdvanceYear,
			OldAdvance:     r.LastOldAdvance,
			CurrentAdvance: r.LastCurrentAdvance,
			Deduction:      r.LastDeduction,
			NewAdvance:     r.LastNewAdvance,
		}
	}
	return resp
}
