package aicall

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/studytrack-backend/internal/data/repos/testutil"
	types "github.com/yungbote/studytrack-backend/internal/domain"
	domainaicall "github.com/yungbote/studytrack-backend/internal/domain/aicall"
	"github.com/yungbote/studytrack-backend/internal/platform/dbctx"
)

func TestAICallLogRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewAICallLogRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	userID := uuid.New()

	for i, status := range []string{domainaicall.StatusFailed, domainaicall.StatusSucceeded} {
		row := &types.AICallLog{
			UserID:    userID,
			Kind:      domainaicall.KindSmartRoutine,
			Model:     "gpt-4o-mini",
			Status:    status,
			LatencyMS: int64(100 * (i + 1)),
			Response:  datatypes.JSON([]byte(`{"morningBlock":{"title":"x"}}`)),
		}
		if err := repo.Create(dbc, row); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if row.ID == uuid.Nil {
			t.Fatalf("Create: id not assigned")
		}
	}

	rows, err := repo.ListRecentByUser(dbc, userID, 10)
	if err != nil {
		t.Fatalf("ListRecentByUser: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("ListRecentByUser: expected 2 rows, got %d", len(rows))
	}
	if rows[0].Kind != domainaicall.KindSmartRoutine || len(rows[0].Response) == 0 {
		t.Fatalf("ListRecentByUser: unexpected row %+v", rows[0])
	}

	if err := repo.Create(dbc, nil); err != nil {
		t.Fatalf("Create(nil) should be a no-op: %v", err)
	}
}
