package dto

import "time"

// ── 강의/대시보드 모듈 DTO ──

// LectureResponse 강의 정보
type LectureResponse struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	InstructorName *string `json:"instructor_name"`
	Status         string  `json:"status"`
	Description    *string `json:"description"`
}

// EnrollmentResponse 수강 내역（내 강의 목록용）
type EnrollmentResponse struct {
	ID       uint            `json:"id"`
	Lecture  LectureResponse `json:"lecture"`
	JoinedAt time.Time       `json:"joined_at"`
}

// AssignmentResponse 과제 정보
type AssignmentResponse struct {
	ID          uint      `json:"id"`
	LectureName string    `json:"lecture_name"`
	Title       string    `json:"title"`
	Deadline    time.Time `json:"deadline"`
	Content     string    `json:"content"`
}

// LectureNoticeResponse 강의 공지
// content 字段实际来自 body 列（序列化层改名，兼容既有前端）
type LectureNoticeResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	LectureName string    `json:"lecture_name"`
	AuthorName  *string   `json:"author_name"`
	Lecture     uint      `json:"lecture"`
}

// AttendanceResponse 출결 현황
// status 以展示字符串（ABSENT/PRESENT/LATE）输出
type AttendanceResponse struct {
	ID             uint   `json:"id"`
	Week           int    `json:"week"`
	AttendanceDate string `json:"attendance_date"`
	Status         string `json:"status"`
}

