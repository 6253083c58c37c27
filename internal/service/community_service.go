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

// ErrThreadNotFound 게시글不存在
var ErrThreadNotFound = errors.New("게시글을 찾을 수 없습니다.")

// CommunityService 커뮤니티 업무 인터페이스
type CommunityService interface {
	// ListThreads lectureID 为 nil 时返回전체 게시판，按 created_at DESC
	ListThreads(ctx context.Context, lectureID *uint) ([]dto.ThreadResponse, error)
	// CreateThread 作成者取调用者本人；payload 的 lecture 原样入库（不校验存在/在读）
	CreateThread(ctx context.Context, studentID uint, req *dto.CreateThreadRequest) (*dto.ThreadResponse, error)
	ThreadDetail(ctx context.Context, threadID uint) (*dto.ThreadDetailResponse, error)
	// AddComment 댓글归属 Thread 由 URL 确定，payload 中的 thread 值被忽略
	AddComment(ctx context.Context, threadID, studentID uint, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	// MyActivity 내가 작성한 글/댓글 모음
	MyActivity(ctx context.Context, studentID uint) (*dto.ActivityResponse, error)
}

type communityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCommunityService 创建 CommunityService 实例
func NewCommunityService(repo *repository.Repository, logger *zap.Logger) CommunityService {
	return &communityService{repo: repo, logger: logger}
}

func (s *communityService) ListThreads(ctx context.Context, lectureID *uint) ([]dto.ThreadResponse, error) {
	threads, err := s.repo.Thread.List(ctx, lectureID)
	if err != nil {
		s.logger.Error("查询게시글列表失败", zap.Error(err))
		return nil, err
	}

	resp := make([]dto.ThreadResponse, 0, len(threads))
	for i := range threads {
		resp = append(resp, toThreadResponse(&threads[i]))
	}
	return resp, nil
}

func (s *communityService) CreateThread(ctx context.Context, studentID uint, req *dto.CreateThreadRequest) (*dto.ThreadResponse, error) {
	thread := &model.Thread{
		Title:     req.Title,
		Content:   req.Content,
		StudentID: &studentID,
		LectureID: req.Lecture,
	}

	if err := s.repo.Thread.Create(ctx, thread); err != nil {
		s.logger.Error("创建게시글失败", zap.Uint("student_id", studentID), zap.Error(err))
		return nil, err
	}

	// 回读以携带 Student 关联（响应需要 student_name）
	created, err := s.repo.Thread.GetByID(ctx, thread.ID)
	if err != nil {
		s.logger.Error("回读게시글失败", zap.Uint("thread_id", thread.ID), zap.Error(err))
		return nil, err
	}

	resp := toThreadResponse(created)
	return &resp, nil
}

func (s *communityService) ThreadDetail(ctx context.Context, threadID uint) (*dto.ThreadDetailResponse, error) {
	thread, err := s.repo.Thread.GetByID(ctx, threadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrThreadNotFound
		}
		s.logger.Error("查询게시글失败", zap.Uint("thread_id", threadID), zap.Error(err))
		return nil, err
	}

	resp := &dto.ThreadDetailResponse{
		ID:          thread.ID,
		Title:       thread.Title,
		Content:     thread.Content,
		CreatedAt:   thread.CreatedAt,
		StudentName: studentName(thread.Student),
		Comments:    make([]dto.CommentResponse, 0, len(thread.Comments)),
	}
	for i := range thread.Comments {
		c := &thread.Comments[i]
		resp.Comments = append(resp.Comments, dto.CommentResponse{
			ID:          c.ID,
			Content:     c.Content,
			CreatedAt:   c.CreatedAt,
			StudentName: studentName(c.Student),
		})
	}
	return resp, nil
}

func (s *communityService) AddComment(ctx context.Context, threadID, studentID uint, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	// 先确认원글存在
	if _, err := s.repo.Thread.GetByID(ctx, threadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrThreadNotFound
		}
		s.logger.Error("查询게시글失败", zap.Uint("thread_id", threadID), zap.Error(err))
		return nil, err
	}

	comment := &model.Comment{
		Content:   req.Content,
		StudentID: &studentID,
		ThreadID:  threadID,
	}

	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		s.logger.Error("创建댓글失败", zap.Uint("thread_id", threadID), zap.Error(err))
		return nil, err
	}

	student, err := s.repo.User.GetByID(ctx, studentID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询用户失败", zap.Uint("user_id", studentID), zap.Error(err))
		return nil, err
	}

	return &dto.CommentResponse{
		ID:          comment.ID,
		Content:     comment.Content,
		CreatedAt:   comment.CreatedAt,
		StudentName: studentName(student),
	}, nil
}

func (s *communityService) MyActivity(ctx context.Context, studentID uint) (*dto.ActivityResponse, error) {
	threads, err := s.repo.Thread.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("查询我的게시글失败", zap.Uint("student_id", studentID), zap.Error(err))
		return nil, err
	}

	comments, err := s.repo.Comment.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("查询我的댓글失败", zap.Uint("student_id", studentID), zap.Error(err))
		return nil, err
	}

	resp := &dto.ActivityResponse{
		Threads:  make([]dto.ThreadResponse, 0, len(threads)),
		Comments: make([]dto.ActivityCommentResponse, 0, len(comments)),
	}
	for i := range threads {
		resp.Threads = append(resp.Threads, toThreadResponse(&threads[i]))
	}
	for i := range comments {
		c := &comments[i]
		// 원글已不可达时跳过该댓글（正常情况下级联删除保证不会出现）
		if c.Thread == nil {
			s.logger.Warn("댓글指向的게시글缺失，跳过", zap.Uint("comment_id", c.ID))
			continue
		}
		resp.Comments = append(resp.Comments, dto.ActivityCommentResponse{
			ID:          c.ID,
			Content:     c.Content,
			CreatedAt:   c.CreatedAt,
			ThreadID:    c.Thread.ID,
			ThreadTitle: c.Thread.Title,
		})
	}
	return resp, nil
}

// ── 映射辅助 ──

func studentName(student *model.User) *string {
	if student == nil {
		return nil
	}
	name := student.Username
	return &name
}

func toThreadResponse(thread *model.Thread) dto.ThreadResponse {
	return dto.ThreadResponse{
		ID:          thread.ID,
		Title:       thread.Title,
		Content:     thread.Content,
		CreatedAt:   thread.CreatedAt,
		StudentName: studentName(thread.Student),
		Lecture:     thread.LectureID,
	}
}

