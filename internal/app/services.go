package app

import (
	"fmt"

	"github.com/yungbote/studytrack-backend/internal/modules/study/catalog"
	"github.com/yungbote/studytrack-backend/internal/modules/study/routine"
	"github.com/yungbote/studytrack-backend/internal/platform/clock"
	"github.com/yungbote/studytrack-backend/internal/platform/logger"
	"github.com/yungbote/studytrack-backend/internal/services"
)

type Services struct {
	Auth      services.AuthService
	StudyLog  services.StudyLogService
	Backlog   services.BacklogService
	Analytics services.AnalyticsService
	Dashboard services.DashboardService
	Routine   services.RoutineService
	Timetable services.TimetableService
}

// Domain holds the request-independent pieces shared by the server and the CLI.
type Domain struct {
	Clock   *clock.Clock
	Catalog *catalog.Catalog
}

func LoadDomain(cfg Config) (Domain, error) {
	clk, err := clock.New(cfg.StudyTimezone)
	if err != nil {
		return Domain{}, fmt.Errorf("study timezone: %w", err)
	}
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		if cat, err = catalog.Load(cfg.CatalogPath); err != nil {
			return Domain{}, fmt.Errorf("load catalog: %w", err)
		}
	}
	return Domain{Clock: clk, Catalog: cat}, nil
}

func wireServices(log *logger.Logger, cfg Config, dom Domain, reposet Repos, clients Clients) (Services, error) {
	log.Info("Wiring services...")

	auth, err := services.NewAuthService(log, services.AuthConfig{
		JWTSecret: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
		Audience:  cfg.JWTAudience,
	})
	if err != nil {
		return Services{}, fmt.Errorf("init auth service: %w", err)
	}

	var generator routine.Generator
	model := ""
	if clients.OpenAI != nil {
		generator = routine.NewModelGenerator(clients.OpenAI)
		model = clients.OpenAI.Model()
	}

	return Services{
		Auth:      auth,
		StudyLog:  services.NewStudyLogService(log, dom.Clock, reposet.StudyLog),
		Backlog:   services.NewBacklogService(log, reposet.BacklogItem),
		Analytics: services.NewAnalyticsService(log, dom.Clock, reposet.StudyLog),
		Dashboard: services.NewDashboardService(log, reposet.StudyLog, reposet.BacklogItem, cfg.WeeklyTargetHours),
		Routine: services.NewRoutineService(log, dom.Clock, dom.Catalog,
			reposet.StudyLog, reposet.BacklogItem, reposet.AICallLog,
			generator, clients.RoutineGuard,
			services.RoutineConfig{Model: model, LockTTL: cfg.RoutineLockTTL},
		),
		Timetable: services.NewTimetableService(dom.Clock, dom.Catalog),
	}, nil
}
