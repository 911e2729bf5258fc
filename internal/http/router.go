package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/studytrack-backend/internal/http/handlers"
	httpMW "github.com/yungbote/studytrack-backend/internal/http/middleware"
	"github.com/yungbote/studytrack-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	ServiceName    string
	AllowedOrigins []string

	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler    *httpH.HealthHandler
	StudyLogHandler  *httpH.StudyLogHandler
	BacklogHandler   *httpH.BacklogHandler
	AnalyticsHandler *httpH.AnalyticsHandler
	RoutineHandler   *httpH.RoutineHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}

	protected := r.Group("/api")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Daily logs
		if cfg.StudyLogHandler != nil {
			protected.GET("/daily-logs", cfg.StudyLogHandler.List)
			protected.POST("/daily-logs", cfg.StudyLogHandler.Create)
		}

		// Backlog
		if cfg.BacklogHandler != nil {
			protected.GET("/backlog", cfg.BacklogHandler.List)
			protected.POST("/backlog", cfg.BacklogHandler.Create)
			protected.PATCH("/backlog/:id/status", cfg.BacklogHandler.UpdateStatus)
		}

		// Analytics
		if cfg.AnalyticsHandler != nil {
			protected.GET("/analytics/weekly", cfg.AnalyticsHandler.Weekly)
			protected.GET("/dashboard", cfg.AnalyticsHandler.Dashboard)
		}

		// Timetable + routine
		if cfg.RoutineHandler != nil {
			protected.GET("/timetable", cfg.RoutineHandler.Timetable)
			protected.GET("/timetable/today", cfg.RoutineHandler.TimetableToday)
			protected.GET("/routine/today", cfg.RoutineHandler.Today)
			protected.GET("/ai/routine", cfg.RoutineHandler.Smart)
		}
	}

	return r
}
