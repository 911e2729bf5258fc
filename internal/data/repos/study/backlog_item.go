package study

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/studytrack-backend/internal/domain"
	"github.com/yungbote/studytrack-backend/internal/platform/dbctx"
	"github.com/yungbote/studytrack-backend/internal/platform/logger"
)

type BacklogItemRepo interface {
	Create(dbc dbctx.Context, row *types.BacklogItem) (*types.BacklogItem, error)
	ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.BacklogItem, error)
	GetByID(dbc dbctx.Context, userID, id uuid.UUID) (*types.BacklogItem, error)
	// UpdateStatus returns gorm.ErrRecordNotFound when no row matches (id, userID).
	UpdateStatus(dbc dbctx.Context, userID, id uuid.UUID, status types.Status) (*types.BacklogItem, error)
	CountByStatus(dbc dbctx.Context, userID uuid.UUID) (map[types.Status]int64, error)
}

type backlogItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBacklogItemRepo(db *gorm.DB, baseLog *logger.Logger) BacklogItemRepo {
	return &backlogItemRepo{
		db:  db,
		log: baseLog.With("repo", "BacklogItemRepo"),
	}
}

func (r *backlogItemRepo) Create(dbc dbctx.Context, row *types.BacklogItem) (*types.BacklogItem, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(dbc.Ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *backlogItemRepo) ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.BacklogItem, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.BacklogItem
	if userID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *backlogItemRepo) GetByID(dbc dbctx.Context, userID, id uuid.UUID) (*types.BacklogItem, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if userID == uuid.Nil || id == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	var row types.BacklogItem
	if err := t.WithContext(dbc.Ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *backlogItemRepo) UpdateStatus(dbc dbctx.Context, userID, id uuid.UUID, status types.Status) (*types.BacklogItem, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if userID == uuid.Nil || id == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	res := t.WithContext(dbc.Ctx).
		Model(&types.BacklogItem{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(dbc, userID, id)
}

func (r *backlogItemRepo) CountByStatus(dbc dbctx.Context, userID uuid.UUID) (map[types.Status]int64, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := map[types.Status]int64{}
	if userID == uuid.Nil {
		return out, nil
	}
	var rows []struct {
		Status types.Status
		N      int64
	}
	if err := t.WithContext(dbc.Ctx).
		Model(&types.BacklogItem{}).
		Select("status, COUNT(*) AS n").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.Status] = row.N
	}
	return out, nil
}
