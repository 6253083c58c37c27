package dto

import "time"

// ── 상담 (Consultation) 모듈 DTO ──

// CreateConsultationRequest 상담 신청 요청
type CreateConsultationRequest struct {
	Instructor       uint      `json:"instructor"        binding:"required"`
	ConsultationType string    `json:"consultation_type" binding:"omitempty"`
	Method           string    `json:"method"            binding:"omitempty"`
	Topic            *string   `json:"topic"             binding:"omitempty,max=200"`
	Content          string    `json:"content"           binding:"required"`
	ScheduledAt      time.Time `json:"scheduled_at"      binding:"required"`
}

// UpdateConsultationRequest 상담 수정 요청（部分更新）
// status 는 양측 누구든 임의 값으로 갱신 가능（既有契约；越级跳转仅记录告警）
type UpdateConsultationRequest struct {
	ConsultationType *string    `json:"consultation_type"`
	Method           *string    `json:"method"`
	Topic            *string    `json:"topic" binding:"omitempty,max=200"`
	Content          *string    `json:"content"`
	ScheduledAt      *time.Time `json:"scheduled_at"`
	Status           *string    `json:"status"`
}

// ConsultationListQuery 상담 목록 필터
// 누락된 파라미터는 "제약 없음"을 의미한다（빈 값 매칭이 아님）
type ConsultationListQuery struct {
	Status     string `form:"status"`
	Type       string `form:"type"`
	Method     string `form:"method"`
	Instructor *uint  `form:"instructor"`
}

// ConsultationResponse 상담 응답
type ConsultationResponse struct {
	ID               uint      `json:"id"`
	Student          uint      `json:"student"`
	Instructor       uint      `json:"instructor"`
	ConsultationType string    `json:"consultation_type"`
	Method           string    `json:"method"`
	Topic            *string   `json:"topic"`
	Content          string    `json:"content"`
	ScheduledAt      time.Time `json:"scheduled_at"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	StudentName      string    `json:"student_name"`
	InstructorName   string    `json:"instructor_name"`
}

// InstructorResponse 강사 목록 항목
type InstructorResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

