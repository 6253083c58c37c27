package dto

import "time"

// ── 커뮤니티 (Community) 모듈 DTO ──

// CreateThreadRequest 게시글 작성 요청
// lecture 는 있는 그대로 저장된다（존재/수강 여부 검증 없음 — 既有契约）
type CreateThreadRequest struct {
	Title   string `json:"title"   binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
	Lecture *uint  `json:"lecture"`
}

// CreateCommentRequest 댓글 작성 요청
// thread 는 URL 에서 확정되며 payload 의 값은 무시된다
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// ThreadResponse 게시글 목록 항목
type ThreadResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	StudentName *string   `json:"student_name"`
	Lecture     *uint     `json:"lecture"`
}

// CommentResponse 댓글
type CommentResponse struct {
	ID          uint      `json:"id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	StudentName *string   `json:"student_name"`
}

// ThreadDetailResponse 게시글 상세（댓글 포함）
type ThreadDetailResponse struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Content     string            `json:"content"`
	CreatedAt   time.Time         `json:"created_at"`
	StudentName *string           `json:"student_name"`
	Comments    []CommentResponse `json:"comments"`
}

// ActivityCommentResponse 내 활동 내역의 댓글 항목（원글 제목 포함）
type ActivityCommentResponse struct {
	ID          uint      `json:"id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	ThreadID    uint      `json:"thread_id"`
	ThreadTitle string    `json:"thread_title"`
}

// ActivityResponse 내 활동 내역（작성한 글 + 댓글）
type ActivityResponse struct {
	Threads  []ThreadResponse          `json:"threads"`
	Comments []ActivityCommentResponse `json:"comments"`
}

