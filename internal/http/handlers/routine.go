package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/studytrack-backend/internal/domain"
	"github.com/yungbote/studytrack-backend/internal/http/response"
	"github.com/yungbote/studytrack-backend/internal/modules/study/catalog"
	"github.com/yungbote/studytrack-backend/internal/platform/dbctx"
	"github.com/yungbote/studytrack-backend/internal/services"
)

type RoutineHandler struct {
	routine   services.RoutineService
	timetable services.TimetableService
}

func NewRoutineHandler(routine services.RoutineService, timetable services.TimetableService) *RoutineHandler {
	return &RoutineHandler{routine: routine, timetable: timetable}
}

// GET /api/timetable
func (h *RoutineHandler) Timetable(c *gin.Context) {
	cat := h.timetable.Catalog()
	response.RespondOK(c, gin.H{
		"currentSubjects": cat.CurrentSubjects,
		"backlogSubjects": cat.BacklogSubjects,
		"subjects":        cat.Subjects(),
		"weekdays":        catalog.Weekdays,
		"timetable":       cat.Timetable,
	})
}

// GET /api/timetable/today?day=MONDAY
func (h *RoutineHandler) TimetableToday(c *gin.Context) {
	out, err := h.timetable.Day(c.Query("day"))
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /api/routine/today?day=MONDAY
func (h *RoutineHandler) Today(c *gin.Context) {
	out, err := h.routine.Today(c.Query("day"))
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /api/ai/routine
// Failures answer with a flat { "error": "..." } body.
func (h *RoutineHandler) Smart(c *gin.Context) {
	out, err := h.routine.Smart(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		_ = c.Error(err)
		status := http.StatusInternalServerError
		msg := err.Error()
		switch domain.CodeOf(err) {
		case domain.CodeConflict:
			status, msg = http.StatusConflict, services.ErrRoutineInProgress
		case domain.CodeUnauthorized:
			status, msg = http.StatusUnauthorized, "unauthorized"
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}
	response.RespondOK(c, out)
}
