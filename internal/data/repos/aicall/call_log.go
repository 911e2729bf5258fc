package aicall

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/studytrack-backend/internal/domain"
	"github.com/yungbote/studytrack-backend/internal/platform/dbctx"
	"github.com/yungbote/studytrack-backend/internal/platform/logger"
)

type AICallLogRepo interface {
	Create(dbc dbctx.Context, row *types.AICallLog) error
	ListRecentByUser(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.AICallLog, error)
}

type aiCallLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAICallLogRepo(db *gorm.DB, baseLog *logger.Logger) AICallLogRepo {
	return &aiCallLogRepo{
		db:  db,
		log: baseLog.With("repo", "AICallLogRepo"),
	}
}

func (r *aiCallLogRepo) Create(dbc dbctx.Context, row *types.AICallLog) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(dbc.Ctx).Create(row).Error
}

func (r *aiCallLogRepo) ListRecentByUser(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.AICallLog, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.AICallLog
	if userID == uuid.Nil {
		return out, nil
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	if err := t.WithContext(dbc.Ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
