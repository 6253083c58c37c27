package repository

import (
	"context"

	"gorm.io/gorm"

	"doro/backend/internal/model"
)

// SystemNoticeRepository 전체 공지数据访问接口
type SystemNoticeRepository interface {
	List(ctx context.Context) ([]model.SystemNotice, error)
	GetByID(ctx context.Context, id uint) (*model.SystemNotice, error)
}

// systemNoticeRepo SystemNoticeRepository 的 GORM 实现
type systemNoticeRepo struct {
	db *gorm.DB
}

// NewSystemNoticeRepo 创建 SystemNoticeRepository 实例
func NewSystemNoticeRepo(db *gorm.DB) SystemNoticeRepository {
	return &systemNoticeRepo{db: db}
}

func (r *systemNoticeRepo) List(ctx context.Context) ([]model.SystemNotice, error) {
	var notices []model.SystemNotice
	err := r.db.WithContext(ctx).
		Preload("Author").
		Find(&notices).Error
	return notices, err
}

func (r *systemNoticeRepo) GetByID(ctx context.Context, id uint) (*model.SystemNotice, error) {
	var notice model.SystemNotice
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&notice).Error
	if err != nil {
		return nil, err
	}
	return &notice, nil
}

// ── LectureNotice ──

// LectureNoticeRepository 강의 공지数据访问接口
type LectureNoticeRepository interface {
	// ListByLecture 返回单个课程的공지，按 created_at DESC
	ListByLecture(ctx context.Context, lectureID uint) ([]model.LectureNotice, error)
	// ListByLectureIDs 返回一组课程的공지（통합 피드用，排序交给聚合层）
	ListByLectureIDs(ctx context.Context, lectureIDs []uint) ([]model.LectureNotice, error)
	GetByID(ctx context.Context, id uint) (*model.LectureNotice, error)
}

// lectureNoticeRepo LectureNoticeRepository 的 GORM 实现
type lectureNoticeRepo struct {
	db *gorm.DB
}

// NewLectureNoticeRepo 创建 LectureNoticeRepository 实例
func NewLectureNoticeRepo(db *gorm.DB) LectureNoticeRepository {
	return &lectureNoticeRepo{db: db}
}

func (r *lectureNoticeRepo) ListByLecture(ctx context.Context, lectureID uint) ([]model.LectureNotice, error) {
	var notices []model.LectureNotice
	err := r.db.WithContext(ctx).
		Preload("Lecture").
		Preload("Lecture.Instructor").
		Where("lecture_id = ?", lectureID).
		Order("created_at DESC, id DESC").
		Find(&notices).Error
	return notices, err
}

func (r *lectureNoticeRepo) ListByLectureIDs(ctx context.Context, lectureIDs []uint) ([]model.LectureNotice, error) {
	var notices []model.LectureNotice
	if len(lectureIDs) == 0 {
		return notices, nil
	}
	err := r.db.WithContext(ctx).
		Preload("Lecture").
		Preload("Lecture.Instructor").
		Where("lecture_id IN ?", lectureIDs).
		Find(&notices).Error
	return notices, err
}

func (r *lectureNoticeRepo) GetByID(ctx context.Context, id uint) (*model.LectureNotice, error) {
	var notice model.LectureNotice
	err := r.db.WithContext(ctx).
		Preload("Lecture").
		Preload("Lecture.Instructor").
		Where("id = ?", id).
		First(&notice).Error
	if err != nil {
		return nil, err
	}
	return &notice, nil
}

