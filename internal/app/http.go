package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/studytrack-backend/internal/http"
	httpH "github.com/yungbote/studytrack-backend/internal/http/handlers"
	httpMW "github.com/yungbote/studytrack-backend/internal/http/middleware"
	"github.com/yungbote/studytrack-backend/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health    *httpH.HealthHandler
	StudyLog  *httpH.StudyLogHandler
	Backlog   *httpH.BacklogHandler
	Analytics *httpH.AnalyticsHandler
	Routine   *httpH.RoutineHandler
}

func wireHandlers(log *logger.Logger, svc Services, store httpH.Pinger) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:    httpH.NewHealthHandler(store),
		StudyLog:  httpH.NewStudyLogHandler(svc.StudyLog),
		Backlog:   httpH.NewBacklogHandler(svc.Backlog),
		Analytics: httpH.NewAnalyticsHandler(svc.Analytics, svc.Dashboard),
		Routine:   httpH.NewRoutineHandler(svc.Routine, svc.Timetable),
	}
}

func wireMiddleware(log *logger.Logger, svc Services) Middleware {
	return Middleware{Auth: httpMW.NewAuthMiddleware(log, svc.Auth)}
}

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware) *gin.Engine {
	return http.NewRouter(http.RouterConfig{
		Log:              log,
		ServiceName:      cfg.ServiceName,
		AllowedOrigins:   cfg.AllowedOrigins,
		AuthMiddleware:   middleware.Auth,
		HealthHandler:    handlers.Health,
		StudyLogHandler:  handlers.StudyLog,
		BacklogHandler:   handlers.Backlog,
		AnalyticsHandler: handlers.Analytics,
		RoutineHandler:   handlers.Routine,
	})
}
