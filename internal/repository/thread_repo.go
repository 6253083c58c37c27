package repository

import (
	"context"

	"gorm.io/gorm"

	"doro/backend/internal/model"
)

// ThreadRepository 게시글数据访问接口
type ThreadRepository interface {
	Create(ctx context.Context, thread *model.Thread) error
	// GetByID 返回게시글及其全部댓글（댓글按 created_at ASC, id ASC）
	GetByID(ctx context.Context, id uint) (*model.Thread, error)
	// List 返回게시글列表，lectureID 为 nil 时不过滤（전체 게시판），按 created_at DESC
	List(ctx context.Context, lectureID *uint) ([]model.Thread, error)
	// ListByStudent 返回某用户作成的게시글，按 created_at DESC
	ListByStudent(ctx context.Context, studentID uint) ([]model.Thread, error)
}

// threadRepo ThreadRepository 的 GORM 实现
type threadRepo struct {
	db *gorm.DB
}

// NewThreadRepo 创建 ThreadRepository 实例
func NewThreadRepo(db *gorm.DB) ThreadRepository {
	return &threadRepo{db: db}
}

func (r *threadRepo) Create(ctx context.Context, thread *model.Thread) error {
	return r.db.WithContext(ctx).Create(thread).Error
}

func (r *threadRepo) GetByID(ctx context.Context, id uint) (*model.Thread, error) {
	var thread model.Thread
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Preload("Comments.Student").
		Where("id = ?", id).
		First(&thread).Error
	if err != nil {
		return nil, err
	}
	return &thread, nil
}

func (r *threadRepo) List(ctx context.Context, lectureID *uint) ([]model.Thread, error) {
	var threads []model.Thread

	db := r.db.WithContext(ctx).Preload("Student")
	if lectureID != nil {
		db = db.Where("lecture_id = ?", *lectureID)
	}

	err := db.Order("created_at DESC, id DESC").Find(&threads).Error
	return threads, err
}

func (r *threadRepo) ListByStudent(ctx context.Context, studentID uint) ([]model.Thread, error) {
	var threads []model.Thread
	err := r.db.WithContext(ctx).
		Preload("Student").
		Where("student_id = ?", studentID).
		Order("created_at DESC, id DESC").
		Find(&threads).Error
	return threads, err
}

// ── Comment ──

// CommentRepository 댓글数据访问接口
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	// ListByStudent 返回某用户作成的댓글（携带原글），按 created_at DESC
	ListByStudent(ctx context.Context, studentID uint) ([]model.Comment, error)
}

// commentRepo CommentRepository 的 GORM 实现
type commentRepo struct {
	db *gorm.DB
}

// NewCommentRepo 创建 CommentRepository 实例
func NewCommentRepo(db *gorm.DB) CommentRepository {
	return &commentRepo{db: db}
}

func (r *commentRepo) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepo) ListByStudent(ctx context.Context, studentID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.WithContext(ctx).
		Preload("Thread").
		Where("student_id = ?", studentID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	return comments, err
}

