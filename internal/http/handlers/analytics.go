package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/studytrack-backend/internal/http/response"
	"github.com/yungbote/studytrack-backend/internal/platform/dbctx"
	"github.com/yungbote/studytrack-backend/internal/services"
)

type AnalyticsHandler struct {
	analytics services.AnalyticsService
	dashboard services.DashboardService
}

func NewAnalyticsHandler(analytics services.AnalyticsService, dashboard services.DashboardService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics, dashboard: dashboard}
}

// GET /api/analytics/weekly
func (h *AnalyticsHandler) Weekly(c *gin.Context) {
	rep, err := h.analytics.Weekly(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"from":  rep.From.Format(dateLayout),
		"to":    rep.To.Format(dateLayout),
		"days":  rep.Days,
		"stats": rep.Stats,
	})
}

// GET /api/dashboard
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	summary, err := h.dashboard.Summary(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, summary)
}
