package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/studytrack-backend/internal/domain"
	"github.com/yungbote/studytrack-backend/internal/platform/ctxutil"
	"github.com/yungbote/studytrack-backend/internal/platform/dbctx"
)

func userCtx(userID uuid.UUID) dbctx.Context {
	return dbctx.New(ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{UserID: userID}))
}

type fakeLogs struct {
	mu   sync.Mutex
	rows []*types.StudyLog
	err  error
}

func (f *fakeLogs) Create(dbc dbctx.Context, row *types.StudyLog) (*types.StudyLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	f.rows = append(f.rows, row)
	return row, nil
}

func (f *fakeLogs) ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.StudyLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []*types.StudyLog
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Day().After(out[j].Day()) })
	return out, nil
}

func (f *fakeLogs) ListByUserInRange(dbc dbctx.Context, userID uuid.UUID, from, to time.Time) ([]*types.StudyLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []*types.StudyLog
	for _, r := range f.rows {
		d := r.Day()
		if r.UserID == userID && !d.Before(from) && !d.After(to) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Day().Before(out[j].Day()) })
	return out, nil
}

func (f *fakeLogs) SumHoursByUser(dbc dbctx.Context, userID uuid.UUID) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	var total float64
	for _, r := range f.rows {
		if r.UserID == userID {
			total += r.HoursStudied
		}
	}
	return total, nil
}

type fakeItems struct {
	mu   sync.Mutex
	rows []*types.BacklogItem
	err  error
}

func (f *fakeItems) Create(dbc dbctx.Context, row *types.BacklogItem) (*types.BacklogItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	f.rows = append(f.rows, row)
	return row, nil
}

func (f *fakeItems) ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.BacklogItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []*types.BacklogItem
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeItems) GetByID(dbc dbctx.Context, userID, id uuid.UUID) (*types.BacklogItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.UserID == userID && r.ID == id {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeItems) UpdateStatus(dbc dbctx.Context, userID, id uuid.UUID, status types.Status) (*types.BacklogItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.rows {
		if r.UserID == userID && r.ID == id {
			r.Status = status
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeItems) CountByStatus(dbc dbctx.Context, userID uuid.UUID) (map[types.Status]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := map[types.Status]int64{}
	for _, r := range f.rows {
		if r.UserID == userID {
			out[r.Status]++
		}
	}
	return out, nil
}

type fakeCalls struct {
	mu   sync.Mutex
	rows []*types.AICallLog
	err  error
}

func (f *fakeCalls) Create(dbc dbctx.Context, row *types.AICallLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeCalls) ListRecentByUser(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.AICallLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*types.AICallLog
	for i := len(f.rows) - 1; i >= 0 && len(out) < limit; i-- {
		if f.rows[i].UserID == userID {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

var errStoreDown = errors.New("connection refused")
