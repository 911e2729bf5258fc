package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/studytrack-backend/internal/data/repos"
	"github.com/yungbote/studytrack-backend/internal/platform/logger"
)

type Repos struct {
	StudyLog    repos.StudyLogRepo
	BacklogItem repos.BacklogItemRepo
	AICallLog   repos.AICallLogRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		StudyLog:    repos.NewStudyLogRepo(db, log),
		BacklogItem: repos.NewBacklogItemRepo(db, log),
		AICallLog:   repos.NewAICallLogRepo(db, log),
	}
}
