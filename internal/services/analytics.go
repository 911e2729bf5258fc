package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/studytrack-backend/internal/data/repos"
	"github.com/yungbote/studytrack-backend/internal/modules/study/analytics"
	"github.com/yungbote/studytrack-backend/internal/platform/clock"
	"github.com/yungbote/studytrack-backend/internal/platform/dbctx"
	"github.com/yungbote/studytrack-backend/internal/platform/logger"
)

type AnalyticsService interface {
	// Weekly reports the caller's trailing seven days ending today.
	Weekly(dbc dbctx.Context) (analytics.WeeklyReport, error)
	// WeeklyFor is Weekly for an explicit user and anchor day.
	WeeklyFor(dbc dbctx.Context, userID uuid.UUID, today time.Time) (analytics.WeeklyReport, error)
}

type analyticsService struct {
	log   *logger.Logger
	clock *clock.Clock
	logs  repos.StudyLogRepo
}

func NewAnalyticsService(log *logger.Logger, clk *clock.Clock, logs repos.StudyLogRepo) AnalyticsService {
	return &analyticsService{
		log:   log.With("service", "AnalyticsService"),
		clock: clk,
		logs:  logs,
	}
}

func (s *analyticsService) Weekly(dbc dbctx.Context) (analytics.WeeklyReport, error) {
	userID, err := requireUser(dbc, "analytics.weekly")
	if err != nil {
		return analytics.WeeklyReport{}, err
	}
	return s.WeeklyFor(dbc, userID, s.clock.Today())
}

func (s *analyticsService) WeeklyFor(dbc dbctx.Context, userID uuid.UUID, today time.Time) (analytics.WeeklyReport, error) {
	const op = "analytics.weekly"
	from, to := analytics.Window(today)
	rows, err := s.logs.ListByUserInRange(dbc, userID, from, to)
	if err != nil {
		return analytics.WeeklyReport{}, storeErr(s.log, op, err)
	}
	entries := make([]analytics.Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, analytics.Entry{Date: r.Day(), Hours: r.HoursStudied})
	}
	return analytics.Weekly(entries, today), nil
}
