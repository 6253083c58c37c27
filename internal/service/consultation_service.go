package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"doro/backend/internal/dto"
	"doro/backend/internal/model"
	"doro/backend/internal/repository"
)

// ── 상담 모듈 업무 에러 ──

var (
	ErrConsultationNotFound  = errors.New("상담 내역을 찾을 수 없습니다.")
	ErrConsultationForbidden = errors.New("권한이 없습니다.")
	ErrInvalidConsultation   = errors.New("유효하지 않은 상담 정보입니다.")
	ErrInstructorNotFound    = errors.New("강사를 찾을 수 없습니다.")
)

// ConsultationService 상담 업무 인터페이스
type ConsultationService interface {
	// List 调用者（学生侧）신청한 상담 목록；filters 缺省字段表示无约束
	List(ctx context.Context, studentID uint, query *dto.ConsultationListQuery) ([]dto.ConsultationResponse, error)
	Create(ctx context.Context, studentID uint, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error)
	// Instructors 调用者在读课程的담당 강사 목록（去重）
	Instructors(ctx context.Context, studentID uint) ([]dto.InstructorResponse, error)
	// Detail/Update/Delete 仅限当事人（学生或讲师）；不存在时优先返回 404
	Detail(ctx context.Context, callerID, consultationID uint) (*dto.ConsultationResponse, error)
	Update(ctx context.Context, callerID, consultationID uint, req *dto.UpdateConsultationRequest) (*dto.ConsultationResponse, error)
	Delete(ctx context.Context, callerID, consultationID uint) error
}

type consultationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewConsultationService 创建 ConsultationService 实例
func NewConsultationService(repo *repository.Repository, logger *zap.Logger) ConsultationService {
	return &consultationService{repo: repo, logger: logger}
}

func (s *consultationService) List(ctx context.Context, studentID uint, query *dto.ConsultationListQuery) ([]dto.ConsultationResponse, error) {
	filters := &repository.ConsultationFilters{}
	if query != nil {
		filters.Status = query.Status
		filters.Type = query.Type
		filters.Method = query.Method
		filters.InstructorID = query.Instructor
	}

	consultations, err := s.repo.Consultation.ListByStudent(ctx, studentID, filters)
	if err != nil {
		s.logger.Error("查询상담 목록失败", zap.Uint("student_id", studentID), zap.Error(err))
		return nil, err
	}

	resp := make([]dto.ConsultationResponse, 0, len(consultations))
	for i := range consultations {
		resp = append(resp, toConsultationResponse(&consultations[i]))
	}
	return resp, nil
}

func (s *consultationService) Create(ctx context.Context, studentID uint, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error) {
	// 讲师必须真实存在
	instructor, err := s.repo.User.GetByID(ctx, req.Instructor)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstructorNotFound
		}
		s.logger.Error("查询讲师失败", zap.Uint("instructor_id", req.Instructor), zap.Error(err))
		return nil, err
	}

	consultationType := req.ConsultationType
	if consultationType == "" {
		consultationType = model.ConsultationTypeCareer
	}
	method := req.Method
	if method == "" {
		method = model.ConsultationMethodOffline
	}
	if !model.ValidConsultationType(consultationType) || !model.ValidConsultationMethod(method) {
		return nil, ErrInvalidConsultation
	}

	consultation := &model.Consultation{
		StudentID:        studentID,
		InstructorID:     instructor.ID,
		ConsultationType: consultationType,
		Method:           method,
		Topic:            req.Topic,
		Content:          req.Content,
		ScheduledAt:      req.ScheduledAt,
		Status:           model.ConsultationPending,
	}

	if err := s.repo.Consultation.Create(ctx, consultation); err != nil {
		s.logger.Error("创建상담失败", zap.Uint("student_id", studentID), zap.Error(err))
		return nil, err
	}

	// 回读以携带当事人关联
	created, err := s.repo.Consultation.GetByID(ctx, consultation.ID)
	if err != nil {
		s.logger.Error("回读상담失败", zap.Uint("consultation_id", consultation.ID), zap.Error(err))
		return nil, err
	}

	resp := toConsultationResponse(created)
	return &resp, nil
}

func (s *consultationService) Instructors(ctx context.Context, studentID uint) ([]dto.InstructorResponse, error) {
	enrollments, err := s.repo.Enrollment.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("查询수강 내역失败", zap.Uint("student_id", studentID), zap.Error(err))
		return nil, err
	}

	// 按 instructor id 去重（两门课同一讲师只出现一次）
	seen := make(map[uint]bool)
	ids := make([]uint, 0, len(enrollments))
	for _, e := range enrollments {
		if e.Lecture == nil || e.Lecture.InstructorID == nil {
			continue
		}
		id := *e.Lecture.InstructorID
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	instructors, err := s.repo.User.ListByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("查询讲师失败", zap.Uint("student_id", studentID), zap.Error(err))
		return nil, err
	}

	resp := make([]dto.InstructorResponse, 0, len(instructors))
	for _, u := range instructors {
		resp = append(resp, dto.InstructorResponse{
			ID:        u.ID,
			Username:  u.Username,
			FirstName: u.FirstName,
			LastName:  u.LastName,
		})
	}
	return resp, nil
}

// getOwned 取出상담并校验调用者是当事人。404 优先于 403。
func (s *consultationService) getOwned(ctx context.Context, callerID, consultationID uint) (*model.Consultation, error) {
	consultation, err := s.repo.Consultation.GetByID(ctx, consultationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConsultationNotFound
		}
		s.logger.Error("查询상담失败", zap.Uint("consultation_id", consultationID), zap.Error(err))
		return nil, err
	}
	if consultation.StudentID != callerID && consultation.InstructorID != callerID {
		return nil, ErrConsultationForbidden
	}
	return consultation, nil
}

func (s *consultationService) Detail(ctx context.Context, callerID, consultationID uint) (*dto.ConsultationResponse, error) {
	consultation, err := s.getOwned(ctx, callerID, consultationID)
	if err != nil {
		return nil, err
	}
	resp := toConsultationResponse(consultation)
	return &resp, nil
}

func (s *consultationService) Update(ctx context.Context, callerID, consultationID uint, req *dto.UpdateConsultationRequest) (*dto.ConsultationResponse, error) {
	consultation, err := s.getOwned(ctx, callerID, consultationID)
	if err != nil {
		return nil, err
	}

	if req.ConsultationType != nil {
		if !model.ValidConsultationType(*req.ConsultationType) {
			return nil, ErrInvalidConsultation
		}
		consultation.ConsultationType = *req.ConsultationType
	}
	if req.Method != nil {
		if !model.ValidConsultationMethod(*req.Method) {
			return nil, ErrInvalidConsultation
		}
		consultation.Method = *req.Method
	}
	if req.Topic != nil {
		consultation.Topic = req.Topic
	}
	if req.Content != nil {
		consultation.Content = *req.Content
	}
	if req.ScheduledAt != nil {
		consultation.ScheduledAt = *req.ScheduledAt
	}
	if req.Status != nil {
		if !model.ValidConsultationStatus(*req.Status) {
			return nil, ErrInvalidConsultation
		}
		// 状态按既有契约直接写入；越级跳转仅记录告警，留待后续收紧
		if !model.IsForwardStatusTransition(consultation.Status, *req.Status) {
			s.logger.Warn("상담状态越级跳转",
				zap.Uint("consultation_id", consultation.ID),
				zap.Uint("caller_id", callerID),
				zap.String("from", consultation.Status),
				zap.String("to", *req.Status))
		}
		consultation.Status = *req.Status
	}

	if err := s.repo.Consultation.Update(ctx, consultation); err != nil {
		s.logger.Error("更新상담失败", zap.Uint("consultation_id", consultationID), zap.Error(err))
		return nil, err
	}

	resp := toConsultationResponse(consultation)
	return &resp, nil
}

func (s *consultationService) Delete(ctx context.Context, callerID, consultationID uint) error {
	consultation, err := s.getOwned(ctx, callerID, consultationID)
	if err != nil {
		return err
	}

	if err := s.repo.Consultation.Delete(ctx, consultation.ID); err != nil {
		s.logger.Error("删除상담失败", zap.Uint("consultation_id", consultationID), zap.Error(err))
		return err
	}
	return nil
}

// toConsultationResponse 映射为상담 응답。
// student_name 取 username；instructor_name 取성+이름，皆空时回退 username。
func toConsultationResponse(c *model.Consultation) dto.ConsultationResponse {
	resp := dto.ConsultationResponse{
		ID:               c.ID,
		Student:          c.StudentID,
		Instructor:       c.InstructorID,
		ConsultationType: c.ConsultationType,
		Method:           c.Method,
		Topic:            c.Topic,
		Content:          c.Content,
		ScheduledAt:      c.ScheduledAt,
		Status:           c.Status,
		CreatedAt:        c.CreatedAt,
	}
	if c.Student != nil {
		resp.StudentName = c.Student.Username
	}
	if c.Instructor != nil {
		resp.InstructorName = c.Instructor.FullName()
	}
	return resp
}

