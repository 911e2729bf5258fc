package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/yungbote/studytrack-backend/internal/domain"
)

// Day builds a UTC-midnight calendar date.
func Day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func SeedStudyLog(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, day time.Time, subject string, hours float64) *types.StudyLog {
	tb.Helper()
	row := &types.StudyLog{
		ID:           uuid.New(),
		UserID:       userID,
		Date:         datatypes.Date(day),
		Subject:      subject,
		HoursStudied: hours,
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed study log: %v", err)
	}
	return row
}

func SeedBacklogItem(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, topic string, priority types.Priority, status types.Status) *types.BacklogItem {
	tb.Helper()
	row := &types.BacklogItem{
		ID:       uuid.New(),
		UserID:   userID,
		Subject:  "Linear Algebra",
		Topic:    topic,
		Priority: priority,
		Status:   status,
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed backlog item: %v", err)
	}
	return row
}
