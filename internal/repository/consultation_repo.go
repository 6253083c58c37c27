package repository

import (
	"context"

	"gorm.io/gorm"

	"doro/backend/internal/model"
)

// ConsultationFilters 상담 목록过滤条件
// 零值字段表示"无约束"，非零字段做等值匹配并以 AND 组合
type ConsultationFilters struct {
	Status       string
	Type         string
	Method       string
	InstructorID *uint
}

// ConsultationRepository 상담数据访问接口
type ConsultationRepository interface {
	Create(ctx context.Context, consultation *model.Consultation) error
	GetByID(ctx context.Context, id uint) (*model.Consultation, error)
	Update(ctx context.Context, consultation *model.Consultation) error
	Delete(ctx context.Context, id uint) error
	// ListByStudent 仅返回 student = callerID 的상담（讲师侧没有对应入口），按 created_at DESC
	ListByStudent(ctx context.Context, studentID uint, filters *ConsultationFilters) ([]model.Consultation, error)
}

// consultationRepo ConsultationRepository 的 GORM 实现
type consultationRepo struct {
	db *gorm.DB
}

// NewConsultationRepo 创建 ConsultationRepository 实例
func NewConsultationRepo(db *gorm.DB) ConsultationRepository {
	return &consultationRepo{db: db}
}

func (r *consultationRepo) Create(ctx context.Context, consultation *model.Consultation) error {
	return r.db.WithContext(ctx).Create(consultation).Error
}

func (r *consultationRepo) GetByID(ctx context.Context, id uint) (*model.Consultation, error) {
	var consultation model.Consultation
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Instructor").
		Where("id = ?", id).
		First(&consultation).Error
	if err != nil {
		return nil, err
	}
	return &consultation, nil
}

func (r *consultationRepo) Update(ctx context.Context, consultation *model.Consultation) error {
	return r.db.WithContext(ctx).Save(consultation).Error
}

func (r *consultationRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Consultation{}, id).Error
}

func (r *consultationRepo) ListByStudent(ctx context.Context, studentID uint, filters *ConsultationFilters) ([]model.Consultation, error) {
	var consultations []model.Consultation

	db := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Instructor").
		Where("student_id = ?", studentID)

	if filters != nil {
		if filters.Status != "" {
			db = db.Where("status = ?", filters.Status)
		}
		if filters.Type != "" {
			db = db.Where("consultation_type = ?", filters.Type)
		}
		if filters.Method != "" {
			db = db.Where("method = ?", filters.Method)
		}
		if filters.InstructorID != nil {
			db = db.Where("instructor_id = ?", *filters.InstructorID)
		}
	}

	err := db.Order("created_at DESC, id DESC").Find(&consultations).Error
	return consultations, err
}

