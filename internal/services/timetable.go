package services

import (
	"github.com/yungbote/studytrack-backend/internal/domain"
	"github.com/yungbote/studytrack-backend/internal/modules/study/catalog"
	"github.com/yungbote/studytrack-backend/internal/platform/clock"
)

type TodayClasses struct {
	Weekday string              `json:"weekday"`
	Classes []catalog.ClassSlot `json:"classes"`
}

type TimetableService interface {
	Catalog() *catalog.Catalog
	// Day lists the classes of day ("" means today).
	Day(day string) (TodayClasses, error)
}

type timetableService struct {
	clock   *clock.Clock
	catalog *catalog.Catalog
}

func NewTimetableService(clk *clock.Clock, cat *catalog.Catalog) TimetableService {
	return &timetableService{clock: clk, catalog: cat}
}

func (s *timetableService) Catalog() *catalog.Catalog { return s.catalog }

func (s *timetableService) Day(day string) (TodayClasses, error) {
	if day == "" {
		day = s.clock.Weekday()
	}
	norm, err := catalog.NormalizeWeekday(day)
	if err != nil {
		return TodayClasses{}, domain.Validation("timetable.day", "%s", err.Error())
	}
	return TodayClasses{Weekday: norm, Classes: s.catalog.Classes(norm)}, nil
}
