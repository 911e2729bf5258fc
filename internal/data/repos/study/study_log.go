package study

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/yungbote/studytrack-backend/internal/domain"
	"github.com/yungbote/studytrack-backend/internal/platform/dbctx"
	"github.com/yungbote/studytrack-backend/internal/platform/logger"
)

type StudyLogRepo interface {
	Create(dbc dbctx.Context, row *types.StudyLog) (*types.StudyLog, error)
	// ListByUser returns every log of the user, newest date first.
	ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.StudyLog, error)
	// ListByUserInRange returns logs with from <= date <= to, oldest first.
	ListByUserInRange(dbc dbctx.Context, userID uuid.UUID, from, to time.Time) ([]*types.StudyLog, error)
	SumHoursByUser(dbc dbctx.Context, userID uuid.UUID) (float64, error)
}

type studyLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStudyLogRepo(db *gorm.DB, baseLog *logger.Logger) StudyLogRepo {
	return &studyLogRepo{
		db:  db,
		log: baseLog.With("repo", "StudyLogRepo"),
	}
}

func (r *studyLogRepo) Create(dbc dbctx.Context, row *types.StudyLog) (*types.StudyLog, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(dbc.Ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *studyLogRepo) ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.StudyLog, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.StudyLog
	if userID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *studyLogRepo) ListByUserInRange(dbc dbctx.Context, userID uuid.UUID, from, to time.Time) ([]*types.StudyLog, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.StudyLog
	if userID == uuid.Nil || to.Before(from) {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, datatypes.Date(from), datatypes.Date(to)).
		Order("date ASC").
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *studyLogRepo) SumHoursByUser(dbc dbctx.Context, userID uuid.UUID) (float64, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if userID == uuid.Nil {
		return 0, nil
	}
	var total float64
	if err := t.WithContext(dbc.Ctx).
		Model(&types.StudyLog{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(hours_studied), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
