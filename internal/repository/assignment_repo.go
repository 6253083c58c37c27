package repository

import (
	"context"

	"gorm.io/gorm"

	"doro/backend/internal/model"
)

// AssignmentRepository 과제数据访问接口
type AssignmentRepository interface {
	// ListByLectureIDs 返回一组课程的全部과제，按 deadline ASC, id ASC 稳定全序排列
	ListByLectureIDs(ctx context.Context, lectureIDs []uint) ([]model.Assignment, error)
	// ListByLecture 返回单个课程的과제，同样按 deadline ASC, id ASC
	ListByLecture(ctx context.Context, lectureID uint) ([]model.Assignment, error)
}

// assignmentRepo AssignmentRepository 的 GORM 实现
type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo 创建 AssignmentRepository 实例
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) ListByLectureIDs(ctx context.Context, lectureIDs []uint) ([]model.Assignment, error) {
	var assignments []model.Assignment
	if len(lectureIDs) == 0 {
		return assignments, nil
	}
	err := r.db.WithContext(ctx).
		Preload("Lecture").
		Where("lecture_id IN ?", lectureIDs).
		Order("deadline ASC, id ASC").
		Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepo) ListByLecture(ctx context.Context, lectureID uint) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.db.WithContext(ctx).
		Preload("Lecture").
		Where("lecture_id = ?", lectureID).
		Order("deadline ASC, id ASC").
		Find(&assignments).Error
	return assignments, err
}

// ── Attendance ──

// AttendanceRepository 출결数据访问接口
type AttendanceRepository interface {
	// ListByLectureAndUser 返回 (lecture, user) 对应的출결 기록，按 week ASC。
	// 注意：调用方不校验 user 是否在读该课程（既有可见性契约）。
	ListByLectureAndUser(ctx context.Context, lectureID, userID uint) ([]model.Attendance, error)
}

// attendanceRepo AttendanceRepository 的 GORM 实现
type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo 创建 AttendanceRepository 实例
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) ListByLectureAndUser(ctx context.Context, lectureID, userID uint) ([]model.Attendance, error) {
	var attendances []model.Attendance
	err := r.db.WithContext(ctx).
		Where("lecture_id = ? AND user_id = ?", lectureID, userID).
		Order("week ASC, id ASC").
		Find(&attendances).Error
	return attendances, err
}

