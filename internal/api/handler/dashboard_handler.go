package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"doro/backend/internal/service"
	"doro/backend/pkg/response"
)

// DashboardHandler 대시보드 모듈 HTTP 처리기
type DashboardHandler struct {
	noticeSvc  service.NoticeService
	lectureSvc service.LectureService
	exportSvc  service.ExportService
}

// NewDashboardHandler 创建 DashboardHandler
func NewDashboardHandler(noticeSvc service.NoticeService, lectureSvc service.LectureService, exportSvc service.ExportService) *DashboardHandler {
	return &DashboardHandler{noticeSvc: noticeSvc, lectureSvc: lectureSvc, exportSvc: exportSvc}
}

// Notices 통합 공지 피드
// GET /api/dashboard/notices/
func (h *DashboardHandler) Notices(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	feed, err := h.noticeSvc.DashboardNotices(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, feed)
}

// NoticeDetail 전체 공지 상세
// GET /api/dashboard/notices/:id/
func (h *DashboardHandler) NoticeDetail(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	notice, err := h.noticeSvc.SystemNoticeDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSystemNoticeNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, notice)
}

// MyCourses 내 수강 강의 목록
// GET /api/dashboard/my-courses/
func (h *DashboardHandler) MyCourses(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	courses, err := h.lectureSvc.MyCourses(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, courses)
}

// MyTasks 내 과제 현황（전체 수강 강의 기준）
// GET /api/dashboard/tasks/
func (h *DashboardHandler) MyTasks(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	tasks, err := h.lectureSvc.MyTasks(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, tasks)
}

// TasksCalendar 과제 마감 일정 iCal 피드
// GET /api/dashboard/tasks/ical/
func (h *DashboardHandler) TasksCalendar(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	ical, err := h.exportSvc.TasksCalendar(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="tasks.ics"`)
	c.Data(200, "text/calendar; charset=utf-8", []byte(ical))
}

