package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"

	"github.com/yungbote/studytrack-backend/internal/data/repos"
	types "github.com/yungbote/studytrack-backend/internal/domain"
	"github.com/yungbote/studytrack-backend/internal/domain/aicall"
	"github.com/yungbote/studytrack-backend/internal/modules/study/backlog"
	"github.com/yungbote/studytrack-backend/internal/modules/study/catalog"
	"github.com/yungbote/studytrack-backend/internal/modules/study/routine"
	"github.com/yungbote/studytrack-backend/internal/platform/clock"
	"github.com/yungbote/studytrack-backend/internal/platform/dbctx"
	"github.com/yungbote/studytrack-backend/internal/platform/inflight"
	"github.com/yungbote/studytrack-backend/internal/platform/logger"
)

// ErrRoutineInProgress is the message of the conflict returned while another
// smart routine for the same user is being generated.
const ErrRoutineInProgress = "routine_in_progress"

type RoutineService interface {
	// Today is the rule-based routine for day ("" means today).
	Today(day string) (routine.DailyRoutine, error)
	// Smart asks the generator for a routine built from the caller's backlog
	// and logs. One generation per user runs at a time.
	Smart(dbc dbctx.Context) (routine.SmartRoutine, error)
	RecentCalls(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.AICallLog, error)
}

type RoutineConfig struct {
	Model   string
	LockTTL time.Duration
}

type routineService struct {
	log       *logger.Logger
	clock     *clock.Clock
	catalog   *catalog.Catalog
	logs      repos.StudyLogRepo
	items     repos.BacklogItemRepo
	calls     repos.AICallLogRepo
	generator routine.Generator
	guard     inflight.Guard
	cfg       RoutineConfig
}

func NewRoutineService(
	log *logger.Logger,
	clk *clock.Clock,
	cat *catalog.Catalog,
	logs repos.StudyLogRepo,
	items repos.BacklogItemRepo,
	calls repos.AICallLogRepo,
	generator routine.Generator,
	guard inflight.Guard,
	cfg RoutineConfig,
) RoutineService {
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = inflight.DefaultTTL
	}
	if guard == nil {
		guard = inflight.NewMemoryGuard()
	}
	return &routineService{
		log:       log.With("service", "RoutineService"),
		clock:     clk,
		catalog:   cat,
		logs:      logs,
		items:     items,
		calls:     calls,
		generator: generator,
		guard:     guard,
		cfg:       cfg,
	}
}

func (s *routineService) Today(day string) (routine.DailyRoutine, error) {
	if day == "" {
		day = s.clock.Weekday()
	}
	out, err := routine.ForDay(day, s.catalog)
	if err != nil {
		return routine.DailyRoutine{}, types.Validation("routine.today", "%s", err.Error())
	}
	return out, nil
}

func (s *routineService) Smart(dbc dbctx.Context) (routine.SmartRoutine, error) {
	const op = "routine.smart"
	userID, err := requireUser(dbc, op)
	if err != nil {
		return routine.SmartRoutine{}, err
	}
	if s.generator == nil {
		return routine.SmartRoutine{}, types.NewError(types.CodeInternal, op, "routine generator not configured", nil)
	}

	release, err := s.guard.Acquire(dbc.Ctx, "routine:"+userID.String(), s.cfg.LockTTL)
	if errors.Is(err, inflight.ErrBusy) {
		return routine.SmartRoutine{}, types.NewError(types.CodeConflict, op, ErrRoutineInProgress, err)
	}
	if err != nil {
		s.log.Error("routine guard failed", "user_id", userID.String(), "error", err)
		return routine.SmartRoutine{}, types.Wrap(types.CodeRetryable, op, err)
	}
	defer release()

	snap, err := s.snapshot(dbc, userID)
	if err != nil {
		return routine.SmartRoutine{}, storeErr(s.log, op, err)
	}
	prompt, err := routine.BuildPrompt(snap)
	if err != nil {
		return routine.SmartRoutine{}, types.Wrap(types.CodeInternal, op, err)
	}

	start := time.Now()
	out, genErr := s.generator.Generate(dbc.Ctx, prompt)
	s.recordCall(dbc, userID, time.Since(start), out, genErr)
	if genErr != nil {
		s.log.Warn("smart routine generation failed", "user_id", userID.String(), "error", genErr)
		return routine.SmartRoutine{}, types.Wrap(types.CodeInternal, op, genErr)
	}
	return out, nil
}

// snapshot loads backlog and logs concurrently; the first failure cancels the
// other. Inside a caller's transaction the loads run in turn, since one Tx is
// one connection.
func (s *routineService) snapshot(dbc dbctx.Context, userID uuid.UUID) (routine.Snapshot, error) {
	snap := routine.Snapshot{Weekday: s.clock.Weekday(), Timetable: s.catalog}
	loadBacklog := func(dbc dbctx.Context) error {
		rows, err := s.items.ListByUser(dbc, userID)
		if err != nil {
			return err
		}
		snap.Backlog = backlog.Sort(rows)
		return nil
	}
	loadLogs := func(dbc dbctx.Context) error {
		rows, err := s.logs.ListByUser(dbc, userID)
		if err != nil {
			return err
		}
		snap.Logs = rows
		return nil
	}

	if dbc.Tx != nil {
		for _, load := range []func(dbctx.Context) error{loadBacklog, loadLogs} {
			if err := load(dbc); err != nil {
				return routine.Snapshot{}, err
			}
		}
		return snap, nil
	}

	g, gctx := errgroup.WithContext(dbc.Ctx)
	inner := dbctx.Context{Ctx: gctx}
	g.Go(func() error { return loadBacklog(inner) })
	g.Go(func() error { return loadLogs(inner) })
	if err := g.Wait(); err != nil {
		return routine.Snapshot{}, err
	}
	return snap, nil
}

// recordCall is best effort: failures are logged only.
func (s *routineService) recordCall(dbc dbctx.Context, userID uuid.UUID, latency time.Duration, out routine.SmartRoutine, genErr error) {
	if s.calls == nil {
		return
	}
	row := &types.AICallLog{
		UserID:    userID,
		Kind:      aicall.KindSmartRoutine,
		Model:     s.cfg.Model,
		Status:    aicall.StatusSucceeded,
		LatencyMS: latency.Milliseconds(),
	}
	if genErr != nil {
		row.Status = aicall.StatusFailed
		row.Error = genErr.Error()
	} else if raw, err := json.Marshal(out); err == nil {
		row.Response = datatypes.JSON(raw)
	}
	// The audit row is written even when the request context is already done.
	wctx := dbctx.Context{Ctx: context.WithoutCancel(dbc.Ctx), Tx: dbc.Tx}
	if err := s.calls.Create(wctx, row); err != nil {
		s.log.Warn("ai call log write failed", "user_id", userID.String(), "error", err)
	}
}

func (s *routineService) RecentCalls(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.AICallLog, error) {
	const op = "routine.recent_calls"
	if userID == uuid.Nil {
		return nil, types.Validation(op, "user id is required")
	}
	out, err := s.calls.ListRecentByUser(dbc, userID, limit)
	if err != nil {
		return nil, storeErr(s.log, op, err)
	}
	return out, nil
}
