package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"doro/backend/config"
	"doro/backend/internal/dto"
	"doro/backend/internal/model"
	"doro/backend/pkg/jwt"
)

// mockMailer 捕获发送内容，便于断言
type mockMailer struct {
	to      string
	subject string
	body    string
	sent    int
}

func (m *mockMailer) Send(to, subject, body string) error {
	m.to = to
	m.subject = subject
	m.body = body
	m.sent++
	return nil
}

func setupAuthService() (AuthService, *testRepos, *mockMailer) {
	repos := newTestRepos()
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:              "test-secret-key-32-bytes-long!!",
			AccessTokenTTL:         30 * time.Minute,
			RefreshTokenTTLDefault: 168 * time.Hour,
		},
	}
	mail := &mockMailer{}
	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := NewAuthService(cfg, repos.repo, jwtMgr, nil, mail, zap.NewNop())
	return svc, repos, mail
}

func TestAuthService_Signup_DefaultsToStudent(t *testing.T) {
	svc, _, _ := setupAuthService()

	user, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Username: "newbie",
		Password: "password123",
		Email:    "newbie@doro.com",
		Birth:    "2001-05-14",
	})
	if err != nil {
		t.Fatalf("Signup 应成功: %v", err)
	}
	if user.Role != model.RoleStudent {
		t.Errorf("未指定role时期望학생(1)，实际=%d", user.Role)
	}
	if user.Birth == nil || *user.Birth != "2001-05-14" {
		t.Errorf("期望birth=2001-05-14，实际=%v", user.Birth)
	}
}

func TestAuthService_Signup_ExplicitRole(t *testing.T) {
	svc, _, _ := setupAuthService()

	role := model.RoleInstructor
	user, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Username: "teacher_lee",
		Password: "password123",
		Role:     &role,
	})
	if err != nil {
		t.Fatalf("Signup 应成功: %v", err)
	}
	if user.Role != model.RoleInstructor {
		t.Errorf("期望role=강사(2)，实际=%d", user.Role)
	}
}

func TestAuthService_Signup_DuplicateUsername(t *testing.T) {
	svc, repos, _ := setupAuthService()
	addUser(repos, 1, "taken")

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Username: "taken",
		Password: "password123",
	})
	if err != ErrUsernameTaken {
		t.Errorf("期望ErrUsernameTaken，实际=%v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, repos, _ := setupAuthService()

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	repos.users.users[1] = &model.User{ID: 1, Username: "student_u", PasswordHash: string(hash), Role: model.RoleStudent}

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "student_u", Password: "password123"})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if resp.Message != "로그인 성공" {
		t.Errorf("期望message=로그인 성공，实际=%s", resp.Message)
	}
	if resp.Token.Access == "" || resp.Token.Refresh == "" {
		t.Error("期望同时发放access/refresh token")
	}
	if resp.User.Username != "student_u" {
		t.Errorf("期望user.username=student_u，实际=%s", resp.User.Username)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repos, _ := setupAuthService()

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	repos.users.users[1] = &model.User{ID: 1, Username: "student_u", PasswordHash: string(hash)}

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "student_u", Password: "wrong"})
	if err != ErrInvalidCredentials {
		t.Errorf("期望ErrInvalidCredentials，实际=%v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _, _ := setupAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "whatever"})
	if err != ErrInvalidCredentials {
		t.Errorf("未知用户也应返回ErrInvalidCredentials，实际=%v", err)
	}
}

func TestAuthService_Withdraw_DeletesUser(t *testing.T) {
	svc, repos, _ := setupAuthService()
	addUser(repos, 1, "leaver")

	if err := svc.Withdraw(context.Background(), 1); err != nil {
		t.Fatalf("Withdraw 应成功: %v", err)
	}
	if _, ok := repos.users.users[1]; ok {
		t.Error("期望用户已删除")
	}
}

func TestAuthService_ResetPassword_SendsTempPassword(t *testing.T) {
	svc, repos, mail := setupAuthService()

	hash, _ := bcrypt.GenerateFromPassword([]byte("oldpass"), bcrypt.DefaultCost)
	repos.users.users[1] = &model.User{ID: 1, Username: "student_u", Email: "u@doro.com", PasswordHash: string(hash)}

	if err := svc.ResetPassword(context.Background(), "u@doro.com"); err != nil {
		t.Fatalf("ResetPassword 应成功: %v", err)
	}
	if mail.sent != 1 {
		t.Fatalf("期望发送1封邮件，实际=%d", mail.sent)
	}
	if mail.to != "u@doro.com" {
		t.Errorf("期望收件人u@doro.com，实际=%s", mail.to)
	}
	if !strings.Contains(mail.subject, "임시 비밀번호") {
		t.Errorf("期望主题包含임시 비밀번호，实际=%s", mail.subject)
	}

	// 旧密码不再可用
	updated := repos.users.users[1]
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("oldpass")); err == nil {
		t.Error("期望旧密码已失效")
	}
}

func TestAuthService_ResetPassword_UnknownEmail(t *testing.T) {
	svc, _, mail := setupAuthService()

	err := svc.ResetPassword(context.Background(), "ghost@doro.com")
	if err != ErrEmailNotFound {
		t.Errorf("期望ErrEmailNotFound，实际=%v", err)
	}
	if mail.sent != 0 {
		t.Errorf("未注册邮箱不应发信，实际发送=%d", mail.sent)
	}
}

