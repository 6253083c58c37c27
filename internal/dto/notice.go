package dto

import "time"

// ── 공지 (Notice) 모듈 DTO ──

// 통합 피드의 구분 태그
const (
	NoticeTypeSystem  = "system"
	NoticeTypeLecture = "lecture"

	// SystemNoticeCategory 전체 공지 카테고리（既有前端依赖的字面值）
	SystemNoticeCategory = "전체 공지"
)

// SystemNoticeResponse 전체 공지
type SystemNoticeResponse struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	AuthorName string    `json:"author_name"`
}

// NoticeFeedItem 대시보드 통합 공지 피드 항목
// system/lecture 두 종류 공지를 하나의 시퀀스로 병합해 내려준다.
// lecture 항목에만 lecture_name / lecture 필드가 채워진다.
type NoticeFeedItem struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	AuthorName  *string   `json:"author_name,omitempty"`
	LectureName string    `json:"lecture_name,omitempty"`
	Lecture     uint      `json:"lecture,omitempty"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
}

