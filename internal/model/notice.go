package model

import "time"

// SystemNotice 전체 공지 — 对应 system_notices
// 对所有已认证用户全局可见
type SystemNotice struct {
	ID        uint      `gorm:"primaryKey"                 json:"id"`
	AuthorID  uint      `gorm:"not null"                   json:"author_id"`
	Title     string    `gorm:"type:varchar(200);not null" json:"title"`
	Content   string    `gorm:"type:text;not null"         json:"content"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"    json:"created_at"`

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// TableName 指定表名
func (SystemNotice) TableName() string { return "system_notices" }
