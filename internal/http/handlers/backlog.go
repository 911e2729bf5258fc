package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/studytrack-backend/internal/domain"
	"github.com/yungbote/studytrack-backend/internal/http/response"
	"github.com/yungbote/studytrack-backend/internal/modules/study/backlog"
	"github.com/yungbote/studytrack-backend/internal/platform/dbctx"
	"github.com/yungbote/studytrack-backend/internal/services"
)

type BacklogHandler struct {
	backlog services.BacklogService
}

func NewBacklogHandler(backlog services.BacklogService) *BacklogHandler {
	return &BacklogHandler{backlog: backlog}
}

// GET /api/backlog?status=All|Pending|In Progress|Completed
func (h *BacklogHandler) List(c *gin.Context) {
	rows, err := h.backlog.List(dbctx.Context{Ctx: c.Request.Context()}, c.Query("status"))
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{"items": toBacklogItemDTOs(rows)})
}

// POST /api/backlog
// body: { "subject": "...", "topic": "...", "priority": "High", "status": "Pending", "target_date": "2024-02-01" }
func (h *BacklogHandler) Create(c *gin.Context) {
	var req struct {
		Subject    string `json:"subject"`
		Topic      string `json:"topic"`
		Priority   string `json:"priority"`
		Status     string `json:"status"`
		TargetDate string `json:"target_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondErr(c, domain.Validation("backlog.create", "invalid request body: %s", err.Error()))
		return
	}
	item, err := h.backlog.Create(dbctx.Context{Ctx: c.Request.Context()}, backlog.NewItemInput{
		Subject:    req.Subject,
		Topic:      req.Topic,
		Priority:   req.Priority,
		Status:     req.Status,
		TargetDate: req.TargetDate,
	})
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"item": toBacklogItemDTO(item)})
}

// PATCH /api/backlog/:id/status
// body: { "status": "In Progress" }
func (h *BacklogHandler) UpdateStatus(c *gin.Context) {
	const op = "backlog.update_status"
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondErr(c, domain.Validation(op, "invalid item id"))
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondErr(c, domain.Validation(op, "invalid request body: %s", err.Error()))
		return
	}
	item, err := h.backlog.UpdateStatus(dbctx.Context{Ctx: c.Request.Context()}, id, req.Status)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{"item": toBacklogItemDTO(item)})
}
