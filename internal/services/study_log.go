package services

import (
	"math"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/yungbote/studytrack-backend/internal/data/repos"
	types "github.com/yungbote/studytrack-backend/internal/domain"
	"github.com/yungbote/studytrack-backend/internal/platform/clock"
	"github.com/yungbote/studytrack-backend/internal/platform/dbctx"
	"github.com/yungbote/studytrack-backend/internal/platform/logger"
)

// StudyLogInput is a submitted log. Date is YYYY-MM-DD and defaults to today.
type StudyLogInput struct {
	Date         string
	Subject      string
	HoursStudied *float64
	TopicCovered string
	Notes        string
}

type StudyLogService interface {
	// List returns the caller's logs newest first. from and to (YYYY-MM-DD) are
	// optional inclusive bounds.
	List(dbc dbctx.Context, from, to string) ([]*types.StudyLog, error)
	Create(dbc dbctx.Context, in StudyLogInput) (*types.StudyLog, error)
}

type studyLogService struct {
	log   *logger.Logger
	clock *clock.Clock
	logs  repos.StudyLogRepo
}

func NewStudyLogService(log *logger.Logger, clk *clock.Clock, logs repos.StudyLogRepo) StudyLogService {
	return &studyLogService{
		log:   log.With("service", "StudyLogService"),
		clock: clk,
		logs:  logs,
	}
}

func (s *studyLogService) List(dbc dbctx.Context, from, to string) ([]*types.StudyLog, error) {
	const op = "study_log.list"
	userID, err := requireUser(dbc, op)
	if err != nil {
		return nil, err
	}
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" && to == "" {
		out, err := s.logs.ListByUser(dbc, userID)
		if err != nil {
			return nil, storeErr(s.log, op, err)
		}
		return out, nil
	}

	lo := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	hi := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	if from != "" {
		if lo, err = clock.ParseDate(from); err != nil {
			return nil, types.Validation(op, "invalid from %q, want YYYY-MM-DD", from)
		}
	}
	if to != "" {
		if hi, err = clock.ParseDate(to); err != nil {
			return nil, types.Validation(op, "invalid to %q, want YYYY-MM-DD", to)
		}
	}
	if hi.Before(lo) {
		return nil, types.Validation(op, "from must not be after to")
	}
	rows, err := s.logs.ListByUserInRange(dbc, userID, lo, hi)
	if err != nil {
		return nil, storeErr(s.log, op, err)
	}
	out := make([]*types.StudyLog, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		out = append(out, rows[i])
	}
	return out, nil
}

func (s *studyLogService) Create(dbc dbctx.Context, in StudyLogInput) (*types.StudyLog, error) {
	const op = "study_log.create"
	userID, err := requireUser(dbc, op)
	if err != nil {
		return nil, err
	}
	subject := strings.TrimSpace(in.Subject)
	if subject == "" {
		return nil, types.Validation(op, "subject is required")
	}
	if in.HoursStudied == nil {
		return nil, types.Validation(op, "hours_studied is required")
	}
	hours := *in.HoursStudied
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours < 0 {
		return nil, types.Validation(op, "hours_studied must be a non-negative number")
	}
	day := s.clock.Today()
	if raw := strings.TrimSpace(in.Date); raw != "" {
		if day, err = clock.ParseDate(raw); err != nil {
			return nil, types.Validation(op, "invalid date %q, want YYYY-MM-DD", raw)
		}
	}

	row := &types.StudyLog{
		UserID:       userID,
		Date:         datatypes.Date(day),
		Subject:      subject,
		HoursStudied: hours,
		TopicCovered: optionalText(in.TopicCovered),
		Notes:        optionalText(in.Notes),
	}
	created, err := s.logs.Create(dbc, row)
	if err != nil {
		return nil, storeErr(s.log, op, err)
	}
	s.log.Debug("study log created", "user_id", userID.String(), "log_id", created.ID.String())
	return created, nil
}

func optionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
