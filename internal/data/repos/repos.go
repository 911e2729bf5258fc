package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/studytrack-backend/internal/data/repos/aicall"
	"github.com/yungbote/studytrack-backend/internal/data/repos/study"
	"github.com/yungbote/studytrack-backend/internal/platform/logger"
)

type StudyLogRepo = study.StudyLogRepo
type BacklogItemRepo = study.BacklogItemRepo
type AICallLogRepo = aicall.AICallLogRepo

func NewStudyLogRepo(db *gorm.DB, baseLog *logger.Logger) StudyLogRepo {
	return study.NewStudyLogRepo(db, baseLog)
}

func NewBacklogItemRepo(db *gorm.DB, baseLog *logger.Logger) BacklogItemRepo {
	return study.NewBacklogItemRepo(db, baseLog)
}

func NewAICallLogRepo(db *gorm.DB, baseLog *logger.Logger) AICallLogRepo {
	return aicall.NewAICallLogRepo(db, baseLog)
}
