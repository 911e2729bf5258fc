// Package services binds repositories and the study modules to the
// authenticated caller.
package services

import (
	"github.com/google/uuid"

	"github.com/yungbote/studytrack-backend/internal/data/repos"
	"github.com/yungbote/studytrack-backend/internal/domain"
	"github.com/yungbote/studytrack-backend/internal/platform/ctxutil"
	"github.com/yungbote/studytrack-backend/internal/platform/dbctx"
	"github.com/yungbote/studytrack-backend/internal/platform/logger"
)

func requireUser(dbc dbctx.Context, op string) (uuid.UUID, error) {
	userID := ctxutil.UserID(dbc.Ctx)
	if userID == uuid.Nil {
		return uuid.Nil, domain.NewError(domain.CodeUnauthorized, op, "request data not set in context", nil)
	}
	return userID, nil
}

// storeErr maps a repository failure and logs it once at the service boundary.
func storeErr(log *logger.Logger, op string, err error) error {
	mapped := repos.MapError(op, err)
	switch domain.CodeOf(mapped) {
	case domain.CodeNotFound, domain.CodeValidation:
	default:
		log.Error("store operation failed", "op", op, "error", err)
	}
	return mapped
}
