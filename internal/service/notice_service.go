package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"doro/backend/internal/dto"
	"doro/backend/internal/repository"
)

// ErrSystemNoticeNotFound 전체 공지不存在
var ErrSystemNoticeNotFound = errors.New("공지사항을 찾을 수 없습니다.")

// NoticeService 공지 업무 인터페이스
type NoticeService interface {
	// DashboardNotices 대시보드 통합 공지 피드。
	// 合并전체 공지与调用者在读课程的강의 공지，按 created_at DESC 全局排序；
	// 时间戳相同时按 type ASC（lecture 先于 system）、再按 id DESC 决定顺序。
	DashboardNotices(ctx context.Context, callerID uint) ([]dto.NoticeFeedItem, error)
	SystemNoticeDetail(ctx context.Context, noticeID uint) (*dto.SystemNoticeResponse, error)
}

type noticeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNoticeService 创建 NoticeService 实例
func NewNoticeService(repo *repository.Repository, logger *zap.Logger) NoticeService {
	return &noticeService{repo: repo, logger: logger}
}

func (s *noticeService) DashboardNotices(ctx context.Context, callerID uint) ([]dto.NoticeFeedItem, error) {
	systemNotices, err := s.repo.SystemNotice.List(ctx)
	if err != nil {
		s.logger.Error("查询전체 공지失败", zap.Error(err))
		return nil, err
	}

	lectureIDs, err := s.repo.Enrollment.ListLectureIDsByStudent(ctx, callerID)
	if err != nil {
		s.logger.Error("查询在读课程失败", zap.Uint("caller_id", callerID), zap.Error(err))
		return nil, err
	}

	lectureNotices, err := s.repo.LectureNotice.ListByLectureIDs(ctx, lectureIDs)
	if err != nil {
		s.logger.Error("查询강의 공지失败", zap.Uint("caller_id", callerID), zap.Error(err))
		return nil, err
	}

	feed := make([]dto.NoticeFeedItem, 0, len(systemNotices)+len(lectureNotices))

	for i := range systemNotices {
		n := &systemNotices[i]
		item := dto.NoticeFeedItem{
			ID:        n.ID,
			Title:     n.Title,
			Content:   n.Content,
			CreatedAt: n.CreatedAt,
			Category:  dto.SystemNoticeCategory,
			Type:      dto.NoticeTypeSystem,
		}
		if n.Author != nil {
			name := n.Author.Username
			item.AuthorName = &name
		}
		feed = append(feed, item)
	}

	for i := range lectureNotices {
		n := &lectureNotices[i]
		item := dto.NoticeFeedItem{
			ID:        n.ID,
			Title:     n.Title,
			Content:   n.Body,
			CreatedAt: n.CreatedAt,
			Lecture:   n.LectureID,
			Type:      dto.NoticeTypeLecture,
		}
		if n.Lecture != nil {
			item.LectureName = n.Lecture.Name
			item.Category = n.Lecture.Name
			if n.Lecture.Instructor != nil {
				name := n.Lecture.Instructor.Username
				item.AuthorName = &name
			}
		}
		feed = append(feed, item)
	}

	// 合并后全局排序：created_at DESC → type ASC → id DESC
	sort.Slice(feed, func(i, j int) bool {
		a, b := feed[i], feed[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.ID > b.ID
	})

	return feed, nil
}

func (s *noticeService) SystemNoticeDetail(ctx context.Context, noticeID uint) (*dto.SystemNoticeResponse, error) {
	notice, err := s.repo.SystemNotice.GetByID(ctx, noticeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSystemNoticeNotFound
		}
		s.logger.Error("查询전체 공지失败", zap.Uint("notice_id", noticeID), zap.Error(err))
		return nil, err
	}

	resp := &dto.SystemNoticeResponse{
		ID:        notice.ID,
		Title:     notice.Title,
		Content:   notice.Content,
		CreatedAt: notice.CreatedAt,
	}
	if notice.Author != nil {
		resp.AuthorName = notice.Author.Username
	}
	return resp, nil
}

