package services

import (
	"fmt"

	"github.com/yungbote/studytrack-backend/internal/data/repos"
	types "github.com/yungbote/studytrack-backend/internal/domain"
	"github.com/yungbote/studytrack-backend/internal/modules/study/analytics"
	"github.com/yungbote/studytrack-backend/internal/platform/dbctx"
	"github.com/yungbote/studytrack-backend/internal/platform/logger"
)

type Dashboard struct {
	TotalHours        float64 `json:"totalHours"`
	OpenBacklog       int64   `json:"openBacklog"`
	CompletedBacklog  int64   `json:"completedBacklog"`
	WeeklyTargetHours float64 `json:"weeklyTargetHours"`
	WeeklyTarget      string  `json:"weeklyTarget"`
}

type DashboardService interface {
	Summary(dbc dbctx.Context) (*Dashboard, error)
}

type dashboardService struct {
	log          *logger.Logger
	logs         repos.StudyLogRepo
	items        repos.BacklogItemRepo
	weeklyTarget float64
}

func NewDashboardService(log *logger.Logger, logs repos.StudyLogRepo, items repos.BacklogItemRepo, weeklyTargetHours float64) DashboardService {
	if weeklyTargetHours <= 0 {
		weeklyTargetHours = 40
	}
	return &dashboardService{
		log:          log.With("service", "DashboardService"),
		logs:         logs,
		items:        items,
		weeklyTarget: weeklyTargetHours,
	}
}

func (s *dashboardService) Summary(dbc dbctx.Context) (*Dashboard, error) {
	const op = "dashboard.summary"
	userID, err := requireUser(dbc, op)
	if err != nil {
		return nil, err
	}
	total, err := s.logs.SumHoursByUser(dbc, userID)
	if err != nil {
		return nil, storeErr(s.log, op, err)
	}
	counts, err := s.items.CountByStatus(dbc, userID)
	if err != nil {
		return nil, storeErr(s.log, op, err)
	}
	out := &Dashboard{
		TotalHours:        analytics.Round1(total),
		WeeklyTargetHours: s.weeklyTarget,
		WeeklyTarget:      fmt.Sprintf("%gh", s.weeklyTarget),
	}
	for status, n := range counts {
		if status == types.StatusCompleted {
			out.CompletedBacklog += n
		} else {
			out.OpenBacklog += n
		}
	}
	return out, nil
}
