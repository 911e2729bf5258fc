package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/studytrack-backend/internal/domain"
	"github.com/yungbote/studytrack-backend/internal/http/response"
	"github.com/yungbote/studytrack-backend/internal/platform/dbctx"
	"github.com/yungbote/studytrack-backend/internal/services"
)

type StudyLogHandler struct {
	logs services.StudyLogService
}

func NewStudyLogHandler(logs services.StudyLogService) *StudyLogHandler {
	return &StudyLogHandler{logs: logs}
}

// GET /api/daily-logs?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *StudyLogHandler) List(c *gin.Context) {
	rows, err := h.logs.List(dbctx.Context{Ctx: c.Request.Context()}, c.Query("from"), c.Query("to"))
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{"logs": toStudyLogDTOs(rows)})
}

// POST /api/daily-logs
// body: { "date": "2024-01-01", "subject": "...", "hours_studied": 2.5, "topic_covered": "...", "notes": "..." }
func (h *StudyLogHandler) Create(c *gin.Context) {
	var req struct {
		Date         string   `json:"date"`
		Subject      string   `json:"subject"`
		HoursStudied *float64 `json:"hours_studied"`
		TopicCovered string   `json:"topic_covered"`
		Notes        string   `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondErr(c, domain.Validation("study_log.create", "invalid request body: %s", err.Error()))
		return
	}
	row, err := h.logs.Create(dbctx.Context{Ctx: c.Request.Context()}, services.StudyLogInput{
		Date:         req.Date,
		Subject:      req.Subject,
		HoursStudied: req.HoursStudied,
		TopicCovered: req.TopicCovered,
		Notes:        req.Notes,
	})
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"log": toStudyLogDTO(row)})
}
