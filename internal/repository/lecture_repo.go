package repository

import (
	"context"

	"gorm.io/gorm"

	"doro/backend/internal/model"
)

// LectureRepository 강의数据访问接口
type LectureRepository interface {
	GetByID(ctx context.Context, id uint) (*model.Lecture, error)
}

// lectureRepo LectureRepository 的 GORM 实现
type lectureRepo struct {
	db *gorm.DB
}

// NewLectureRepo 创建 LectureRepository 实例
func NewLectureRepo(db *gorm.DB) LectureRepository {
	return &lectureRepo{db: db}
}

func (r *lectureRepo) GetByID(ctx context.Context, id uint) (*model.Lecture, error) {
	var lecture model.Lecture
	err := r.db.WithContext(ctx).
		Preload("Instructor").
		Where("id = ?", id).
		First(&lecture).Error
	if err != nil {
		return nil, err
	}
	return &lecture, nil
}

// ── Enrollment ──

// EnrollmentRepository 수강 등록数据访问接口
// "学生是否属于课程"的唯一授权边都从这里读出
type EnrollmentRepository interface {
	// ListByStudent 返回某学生的全部수강 내역（携带 Lecture 与其 Instructor）。
	// 不排序：按存储自然顺序返回。
	ListByStudent(ctx context.Context, studentID uint) ([]model.Enrollment, error)
	// ListLectureIDsByStudent 返回某学生在读课程的 ID 集合
	ListLectureIDsByStudent(ctx context.Context, studentID uint) ([]uint, error)
}

// enrollmentRepo EnrollmentRepository 的 GORM 实现
type enrollmentRepo struct {
	db *gorm.DB
}

// NewEnrollmentRepo 创建 EnrollmentRepository 实例
func NewEnrollmentRepo(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

func (r *enrollmentRepo) ListByStudent(ctx context.Context, studentID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Lecture").
		Preload("Lecture.Instructor").
		Where("student_id = ?", studentID).
		Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepo) ListLectureIDsByStudent(ctx context.Context, studentID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&model.Enrollment{}).
		Where("student_id = ?", studentID).
		Pluck("lecture_id", &ids).Error
	return ids, err
}

