package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/yungbote/studytrack-backend/internal/domain"
	"github.com/yungbote/studytrack-backend/internal/domain/aicall"
	"github.com/yungbote/studytrack-backend/internal/modules/study/catalog"
	"github.com/yungbote/studytrack-backend/internal/modules/study/routine"
	"github.com/yungbote/studytrack-backend/internal/platform/clock"
	"github.com/yungbote/studytrack-backend/internal/platform/dbctx"
	"github.com/yungbote/studytrack-backend/internal/platform/inflight"
	"github.com/yungbote/studytrack-backend/internal/platform/logger"
)

// 2024-01-01 is a Monday.
var monday = clock.Fixed(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))

func newRoutineService(gen routine.Generator, guard inflight.Guard, logs *fakeLogs, items *fakeItems, calls *fakeCalls) RoutineService {
	return NewRoutineService(logger.NewNop(), monday, catalog.Default(), logs, items, calls, gen, guard, RoutineConfig{Model: "test-model"})
}

func TestRoutineService_Today(t *testing.T) {
	svc := newRoutineService(nil, nil, &fakeLogs{}, &fakeItems{}, &fakeCalls{})

	got, err := svc.Today("")
	if err != nil {
		t.Fatalf("Today: %v", err)
	}
	if got.Weekday != "MONDAY" || got.Morning.Subjects[0] != "Probability and Statistics" {
		t.Fatalf("unexpected routine %+v", got)
	}
	sun, err := svc.Today("sunday")
	if err != nil || sun.Morning.Title != routine.MockTestTitle {
		t.Fatalf("sunday = %+v, %v", sun, err)
	}
	if _, err := svc.Today("someday"); !types.IsCode(err, types.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRoutineService_SmartRecordsCall(t *testing.T) {
	userID := uuid.New()
	logs := &fakeLogs{rows: []*types.StudyLog{{ID: uuid.New(), UserID: userID, Date: datatypes.Date(day(2023, 12, 31)), Subject: "Machine Learning", HoursStudied: 2}}}
	items := &fakeItems{rows: []*types.BacklogItem{item(userID, "Eigenvalues", types.PriorityHigh, types.StatusPending, nil)}}
	calls := &fakeCalls{}
	gen := &routine.StaticGenerator{Routine: routine.SmartRoutine{
		MorningBlock:   routine.RoutineBlock{Title: "Eigenvalues", Duration: "2h", Reasoning: "high priority"},
		AfternoonBlock: routine.RoutineBlock{Title: "Classes"},
		EveningBlock:   routine.RoutineBlock{Title: "Review"},
	}}
	svc := newRoutineService(gen, inflight.NewMemoryGuard(), logs, items, calls)

	got, err := svc.Smart(userCtx(userID))
	if err != nil {
		t.Fatalf("Smart: %v", err)
	}
	if got.MorningBlock.Title != "Eigenvalues" {
		t.Fatalf("unexpected routine %+v", got)
	}
	for _, want := range []string{"Eigenvalues", "Machine Learning", "Current Day: Monday", "MONDAY:"} {
		if !strings.Contains(gen.LastPrompt.User, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
	if len(calls.rows) != 1 {
		t.Fatalf("expected one call log, got %d", len(calls.rows))
	}
	row := calls.rows[0]
	if row.Status != aicall.StatusSucceeded || row.Model != "test-model" || row.Kind != aicall.KindSmartRoutine || len(row.Response) == 0 {
		t.Fatalf("unexpected call log %+v", row)
	}
}

func TestRoutineService_SmartFailure(t *testing.T) {
	userID := uuid.New()
	calls := &fakeCalls{err: errors.New("audit table missing")}
	gen := &routine.StaticGenerator{Err: errors.New("upstream 502")}
	svc := newRoutineService(gen, inflight.NewMemoryGuard(), &fakeLogs{}, &fakeItems{}, calls)

	_, err := svc.Smart(userCtx(userID))
	if err == nil || !strings.Contains(err.Error(), "upstream 502") {
		t.Fatalf("expected generator error, got %v", err)
	}
	if types.IsCode(err, types.CodeConflict) {
		t.Fatalf("generator failure must not look like a conflict")
	}

	// The guard is released after a failure.
	gen.Err = nil
	if _, err := svc.Smart(userCtx(userID)); err != nil {
		t.Fatalf("second attempt should run, got %v", err)
	}
}

func TestRoutineService_SmartSnapshotFailure(t *testing.T) {
	gen := &routine.StaticGenerator{}
	svc := newRoutineService(gen, inflight.NewMemoryGuard(), &fakeLogs{err: errStoreDown}, &fakeItems{}, &fakeCalls{})
	if _, err := svc.Smart(userCtx(uuid.New())); err == nil {
		t.Fatalf("expected store error")
	}
	if gen.LastPrompt.User != "" {
		t.Fatalf("generator must not be called without a snapshot")
	}
}

type blockingGenerator struct {
	started chan struct{}
	unblock chan struct{}
	once    sync.Once
}

func (b *blockingGenerator) Generate(ctx context.Context, p routine.Prompt) (routine.SmartRoutine, error) {
	b.once.Do(func() { close(b.started) })
	<-b.unblock
	return routine.SmartRoutine{MorningBlock: routine.RoutineBlock{Title: "m"}}, nil
}

func TestRoutineService_SmartInFlightConflict(t *testing.T) {
	userID := uuid.New()
	gen := &blockingGenerator{started: make(chan struct{}), unblock: make(chan struct{})}
	svc := newRoutineService(gen, inflight.NewMemoryGuard(), &fakeLogs{}, &fakeItems{}, &fakeCalls{})

	done := make(chan error, 1)
	go func() {
		_, err := svc.Smart(userCtx(userID))
		done <- err
	}()
	<-gen.started

	_, err := svc.Smart(userCtx(userID))
	if !types.IsCode(err, types.CodeConflict) || !strings.Contains(err.Error(), ErrRoutineInProgress) {
		t.Fatalf("expected in-progress conflict, got %v", err)
	}

	// A different user is not blocked.
	other := make(chan error, 1)
	go func() {
		_, err := svc.Smart(userCtx(uuid.New()))
		other <- err
	}()

	close(gen.unblock)
	if err := <-done; err != nil {
		t.Fatalf("first call: %v", err)
	}
	if err := <-other; err != nil {
		t.Fatalf("other user: %v", err)
	}
}

func TestRoutineService_RecentCalls(t *testing.T) {
	userID := uuid.New()
	calls := &fakeCalls{rows: []*types.AICallLog{{UserID: userID, Status: aicall.StatusFailed}, {UserID: userID, Status: aicall.StatusSucceeded}}}
	svc := newRoutineService(nil, nil, &fakeLogs{}, &fakeItems{}, calls)
	got, err := svc.RecentCalls(userCtx(userID), userID, 10)
	if err != nil || len(got) != 2 || got[0].Status != aicall.StatusSucceeded {
		t.Fatalf("RecentCalls = %v, %v", got, err)
	}
	if _, err := svc.RecentCalls(userCtx(userID), uuid.Nil, 10); !types.IsCode(err, types.CodeValidation) {
		t.Fatalf("expected validation, got %v", err)
	}
}

// overlapMeter records the peak number of list calls running at once.
type overlapMeter struct {
	mu     sync.Mutex
	active int
	peak   int
}

func (m *overlapMeter) enter() {
	m.mu.Lock()
	m.active++
	if m.active > m.peak {
		m.peak = m.active
	}
	m.mu.Unlock()
	time.Sleep(20 * time.Millisecond)
}

func (m *overlapMeter) leave() {
	m.mu.Lock()
	m.active--
	m.mu.Unlock()
}

type meteredLogs struct {
	*fakeLogs
	m *overlapMeter
}

func (f meteredLogs) ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.StudyLog, error) {
	f.m.enter()
	defer f.m.leave()
	return f.fakeLogs.ListByUser(dbc, userID)
}

type meteredItems struct {
	*fakeItems
	m *overlapMeter
}

func (f meteredItems) ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.BacklogItem, error) {
	f.m.enter()
	defer f.m.leave()
	return f.fakeItems.ListByUser(dbc, userID)
}

func TestRoutineService_SnapshotSerialInsideTx(t *testing.T) {
	userID := uuid.New()
	cases := []struct {
		name     string
		tx       *gorm.DB
		wantPeak int // 0 skips the check
	}{
		{name: "no_tx", tx: nil},
		{name: "tx_loads_in_turn", tx: &gorm.DB{}, wantPeak: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := &overlapMeter{}
			logs := meteredLogs{fakeLogs: &fakeLogs{rows: []*types.StudyLog{{ID: uuid.New(), UserID: userID, Subject: "Machine Learning", HoursStudied: 1}}}, m: m}
			items := meteredItems{fakeItems: &fakeItems{rows: []*types.BacklogItem{item(userID, "Eigenvalues", types.PriorityHigh, types.StatusPending, nil)}}, m: m}
			svc := NewRoutineService(logger.NewNop(), monday, catalog.Default(), logs, items, &fakeCalls{}, nil, nil, RoutineConfig{}).(*routineService)

			dbc := userCtx(userID)
			dbc.Tx = tc.tx
			snap, err := svc.snapshot(dbc, userID)
			if err != nil {
				t.Fatalf("snapshot: %v", err)
			}
			if len(snap.Logs) != 1 || len(snap.Backlog) != 1 {
				t.Fatalf("unexpected snapshot %+v", snap)
			}
			if tc.wantPeak > 0 && m.peak != tc.wantPeak {
				t.Fatalf("peak concurrent loads=%d want %d", m.peak, tc.wantPeak)
			}
		})
	}
}
