package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"doro/backend/internal/dto"
	"doro/backend/internal/service"
	"doro/backend/pkg/response"
)

// ConsultationHandler 상담 모듈 HTTP 처리기
type ConsultationHandler struct {
	consultationSvc service.ConsultationService
}

// NewConsultationHandler 创建 ConsultationHandler
func NewConsultationHandler(consultationSvc service.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{consultationSvc: consultationSvc}
}

// List 내가 신청한 상담 목록（필터 지원）
// GET /api/consultations/?status=&type=&method=&instructor=
func (h *ConsultationHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var query dto.ConsultationListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "검색 조건이 올바르지 않습니다.")
		return
	}

	consultations, err := h.consultationSvc.List(c.Request.Context(), userID, &query)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, consultations)
}

// Create 상담 신청
// POST /api/consultations/
func (h *ConsultationHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "입력값이 올바르지 않습니다.")
		return
	}

	consultation, err := h.consultationSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleConsultationError(c, err)
		return
	}

	response.Created(c, consultation)
}

// Instructors 내 수강 강의의 담당 강사 목록
// GET /api/consultations/instructors/
func (h *ConsultationHandler) Instructors(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	instructors, err := h.consultationSvc.Instructors(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, instructors)
}

// Detail 상담 상세
// GET /api/consultations/:id/
func (h *ConsultationHandler) Detail(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	consultation, err := h.consultationSvc.Detail(c.Request.Context(), userID, id)
	if err != nil {
		h.handleConsultationError(c, err)
		return
	}

	response.OK(c, consultation)
}

// Update 상담 수정（部分更新）
// PUT /api/consultations/:id/
func (h *ConsultationHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "입력값이 올바르지 않습니다.")
		return
	}

	consultation, err := h.consultationSvc.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		h.handleConsultationError(c, err)
		return
	}

	response.OK(c, consultation)
}

// Delete 상담 삭제
// DELETE /api/consultations/:id/
func (h *ConsultationHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.consultationSvc.Delete(c.Request.Context(), userID, id); err != nil {
		h.handleConsultationError(c, err)
		return
	}

	response.NoContent(c)
}

// handleConsultationError 상담 모듈 에러 → HTTP 응답 매핑
func (h *ConsultationHandler) handleConsultationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrConsultationNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrConsultationForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrInstructorNotFound):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrInvalidConsultation):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c)
	}
}

