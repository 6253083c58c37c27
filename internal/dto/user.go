package dto

import "time"

// ── 유저 (User) 모듈 DTO ──

// ProfileResponse 내 정보 응답
// id / username / date_joined / role 는 읽기 전용
type ProfileResponse struct {
	ID         uint      `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Birth      *string   `json:"birth"`
	Phone      *string   `json:"phone"`
	DateJoined time.Time `json:"date_joined"`
	Role       int       `json:"role"`
	Interests  *string   `json:"interests"`
}

// UpdateProfileRequest 내 정보 수정 요청（部分更新，未提供的字段不变）
type UpdateProfileRequest struct {
	Email     *string `json:"email"      binding:"omitempty,email"`
	FirstName *string `json:"first_name" binding:"omitempty,max=150"`
	LastName  *string `json:"last_name"  binding:"omitempty,max=150"`
	Birth     *string `json:"birth"      binding:"omitempty,datetime=2006-01-02"`
	Phone     *string `json:"phone"      binding:"omitempty,max=20"`
	Interests *string `json:"interests"  binding:"omitempty,max=255"`
}

// UpdateProfileResponse 수정 완료 응답
type UpdateProfileResponse struct {
	Message string          `json:"message"`
	User    ProfileResponse `json:"user"`
}

// OverviewResponse 학습 통계 응답
type OverviewResponse struct {
	Username         string  `json:"username"`
	CompletedCourses int     `json:"completed_courses"`
	InProgress       int     `json:"in_progress"`
	AverageScore     float64 `json:"average_score"`
}
