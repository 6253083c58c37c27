package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"doro/backend/internal/service"
	"doro/backend/pkg/response"
)

// LectureHandler 강의 모듈 HTTP 처리기
type LectureHandler struct {
	lectureSvc service.LectureService
	exportSvc  service.ExportService
}

// NewLectureHandler 创建 LectureHandler
func NewLectureHandler(lectureSvc service.LectureService, exportSvc service.ExportService) *LectureHandler {
	return &LectureHandler{lectureSvc: lectureSvc, exportSvc: exportSvc}
}

// Notices 강의 공지 목록
// GET /api/lecture/:lecture_id/notices/
func (h *LectureHandler) Notices(c *gin.Context) {
	lectureID, ok := ParseIDParam(c, "lecture_id")
	if !ok {
		return
	}

	notices, err := h.lectureSvc.CourseNotices(c.Request.Context(), lectureID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, notices)
}

// NoticeDetail 강의 공지 상세
// GET /api/lecture/notices/:id/
func (h *LectureHandler) NoticeDetail(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	notice, err := h.lectureSvc.LectureNoticeDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrLectureNoticeNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, notice)
}

// Assignments 강의 과제 목록
// GET /api/lecture/:lecture_id/assignments/
func (h *LectureHandler) Assignments(c *gin.Context) {
	lectureID, ok := ParseIDParam(c, "lecture_id")
	if !ok {
		return
	}

	assignments, err := h.lectureSvc.CourseAssignments(c.Request.Context(), lectureID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, assignments)
}

// Attendance 내 출결 현황
// GET /api/lecture/:lecture_id/attendance/
// 未수강 강의를 지정해도 403 이 아닌 빈 목록을 반환한다（既有可见性契约）
func (h *LectureHandler) Attendance(c *gin.Context) {
	lectureID, ok := ParseIDParam(c, "lecture_id")
	if !ok {
		return
	}
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	attendances, err := h.lectureSvc.MyAttendance(c.Request.Context(), lectureID, userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, attendances)
}

// AttendanceExport 내 출결 현황 Excel 다운로드
// GET /api/lecture/:lecture_id/attendance/export/
func (h *LectureHandler) AttendanceExport(c *gin.Context) {
	lectureID, ok := ParseIDParam(c, "lecture_id")
	if !ok {
		return
	}
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportAttendance(c.Request.Context(), lectureID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExportLectureNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrExportNoAttendance):
			response.NotFound(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	// 파일명은 RFC 5987 방식으로 인코딩（한글 포함 가능）
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

