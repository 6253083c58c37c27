package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"doro/backend/internal/dto"
	"doro/backend/internal/service"
	"doro/backend/pkg/response"
)

// CommunityHandler 커뮤니티 모듈 HTTP 처리기
type CommunityHandler struct {
	communitySvc service.CommunityService
}

// NewCommunityHandler 创建 CommunityHandler
func NewCommunityHandler(communitySvc service.CommunityService) *CommunityHandler {
	return &CommunityHandler{communitySvc: communitySvc}
}

// ListThreads 게시글 목록（전체 혹은 강의별）
// GET /api/community/?lecture_id=N
func (h *CommunityHandler) ListThreads(c *gin.Context) {
	var lectureID *uint
	if raw := c.Query("lecture_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "lecture_id가 올바르지 않습니다.")
			return
		}
		v := uint(id)
		lectureID = &v
	}

	threads, err := h.communitySvc.ListThreads(c.Request.Context(), lectureID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, threads)
}

// CreateThread 게시글 작성
// POST /api/community/
func (h *CommunityHandler) CreateThread(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "입력값이 올바르지 않습니다.")
		return
	}

	thread, err := h.communitySvc.CreateThread(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, thread)
}

// ThreadDetail 게시글 상세（댓글 포함）
// GET /api/community/:id/
func (h *CommunityHandler) ThreadDetail(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	thread, err := h.communitySvc.ThreadDetail(c.Request.Context(), id)
	if err != nil {
		h.handleCommunityError(c, err)
		return
	}

	response.OK(c, thread)
}

// AddComment 댓글 작성
// POST /api/community/:id/comments/
func (h *CommunityHandler) AddComment(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "입력값이 올바르지 않습니다.")
		return
	}

	comment, err := h.communitySvc.AddComment(c.Request.Context(), id, userID, &req)
	if err != nil {
		h.handleCommunityError(c, err)
		return
	}

	response.Created(c, comment)
}

// MyActivity 내 활동 내역
// GET /api/community/me/
func (h *CommunityHandler) MyActivity(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	activity, err := h.communitySvc.MyActivity(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, activity)
}

// handleCommunityError 커뮤니티 모듈 에러 → HTTP 응답 매핑
func (h *CommunityHandler) handleCommunityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrThreadNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c)
	}
}

