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

// ErrLectureNoticeNotFound 강의 공지不存在
var ErrLectureNoticeNotFound = errors.New("공지사항을 찾을 수 없습니다.")

// LectureService 강의/대시보드 업무 인터페이스
type LectureService interface {
	// MyCourses 내 수강 강의 목록（按存储自然顺序）
	MyCourses(ctx context.Context, studentID uint) ([]dto.EnrollmentResponse, error)
	// MyTasks 在读课程的全部과제，按 deadline ASC, id ASC
	MyTasks(ctx context.Context, studentID uint) ([]dto.AssignmentResponse, error)
	// CourseNotices 指定课程的공지 목록（不校验在读关系，最新优先）
	CourseNotices(ctx context.Context, lectureID uint) ([]dto.LectureNoticeResponse, error)
	LectureNoticeDetail(ctx context.Context, noticeID uint) (*dto.LectureNoticeResponse, error)
	// CourseAssignments 指定课程的과제 목록，按 deadline ASC
	CourseAssignments(ctx context.Context, lectureID uint) ([]dto.AssignmentResponse, error)
	// MyAttendance 指定课程中调用者本人的출결 기록。
	// 不校验在读关系：未在读时返回空序列而非 403（既有可见性契约）。
	MyAttendance(ctx context.Context, lectureID, userID uint) ([]dto.AttendanceResponse, error)
}

type lectureService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLectureService 创建 LectureService 实例
func NewLectureService(repo *repository.Repository, logger *zap.Logger) LectureService {
	return &lectureService{repo: repo, logger: logger}
}

func (s *lectureService) MyCourses(ctx context.Context, studentID uint) ([]dto.EnrollmentResponse, error) {
	enrollments, err := s.repo.Enrollment.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("查询수강 내역失败", zap.Uint("student_id", studentID), zap.Error(err))
		return nil, err
	}

	resp := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		item := dto.EnrollmentResponse{
			ID:       e.ID,
			JoinedAt: e.JoinedAt,
		}
		if e.Lecture != nil {
			item.Lecture = toLectureResponse(e.Lecture)
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *lectureService) MyTasks(ctx context.Context, studentID uint) ([]dto.AssignmentResponse, error) {
	lectureIDs, err := s.repo.Enrollment.ListLectureIDsByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("查询在读课程失败", zap.Uint("student_id", studentID), zap.Error(err))
		return nil, err
	}

	assignments, err := s.repo.Assignment.ListByLectureIDs(ctx, lectureIDs)
	if err != nil {
		s.logger.Error("查询과제失败", zap.Uint("student_id", studentID), zap.Error(err))
		return nil, err
	}

	return toAssignmentResponses(assignments), nil
}

func (s *lectureService) CourseNotices(ctx context.Context, lectureID uint) ([]dto.LectureNoticeResponse, error) {
	notices, err := s.repo.LectureNotice.ListByLecture(ctx, lectureID)
	if err != nil {
		s.logger.Error("查询강의 공지失败", zap.Uint("lecture_id", lectureID), zap.Error(err))
		return nil, err
	}

	resp := make([]dto.LectureNoticeResponse, 0, len(notices))
	for i := range notices {
		resp = append(resp, toLectureNoticeResponse(&notices[i]))
	}
	return resp, nil
}

func (s *lectureService) LectureNoticeDetail(ctx context.Context, noticeID uint) (*dto.LectureNoticeResponse, error) {
	notice, err := s.repo.LectureNotice.GetByID(ctx, noticeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLectureNoticeNotFound
		}
		s.logger.Error("查询강의 공지失败", zap.Uint("notice_id", noticeID), zap.Error(err))
		return nil, err
	}

	resp := toLectureNoticeResponse(notice)
	return &resp, nil
}

func (s *lectureService) CourseAssignments(ctx context.Context, lectureID uint) ([]dto.AssignmentResponse, error) {
	assignments, err := s.repo.Assignment.ListByLecture(ctx, lectureID)
	if err != nil {
		s.logger.Error("查询과제失败", zap.Uint("lecture_id", lectureID), zap.Error(err))
		return nil, err
	}
	return toAssignmentResponses(assignments), nil
}

func (s *lectureService) MyAttendance(ctx context.Context, lectureID, userID uint) ([]dto.AttendanceResponse, error) {
	attendances, err := s.repo.Attendance.ListByLectureAndUser(ctx, lectureID, userID)
	if err != nil {
		s.logger.Error("查询출결失败", zap.Uint("lecture_id", lectureID), zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	resp := make([]dto.AttendanceResponse, 0, len(attendances))
	for _, a := range attendances {
		resp = append(resp, dto.AttendanceResponse{
			ID:             a.ID,
			Week:           a.Week,
			AttendanceDate: a.AttendanceDate.Format("2006-01-02"),
			Status:         a.StatusDisplay(),
		})
	}
	return resp, nil
}

// ── 映射辅助 ──

func toLectureResponse(lecture *model.Lecture) dto.LectureResponse {
	resp := dto.LectureResponse{
		ID:          lecture.ID,
		Name:        lecture.Name,
		Status:      lecture.Status,
		Description: lecture.Description,
	}
	if lecture.Instructor != nil {
		name := lecture.Instructor.Username
		resp.InstructorName = &name
	}
	return resp
}

func toAssignmentResponses(assignments []model.Assignment) []dto.AssignmentResponse {
	resp := make([]dto.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		item := dto.AssignmentResponse{
			ID:       a.ID,
			Title:    a.Title,
			Deadline: a.Deadline,
			Content:  a.Content,
		}
		if a.Lecture != nil {
			item.LectureName = a.Lecture.Name
		}
		resp = append(resp, item)
	}
	return resp
}

func toLectureNoticeResponse(notice *model.LectureNotice) dto.LectureNoticeResponse {
	resp := dto.LectureNoticeResponse{
		ID:        notice.ID,
		Title:     notice.Title,
		Content:   notice.Body,
		CreatedAt: notice.CreatedAt,
		Lecture:   notice.LectureID,
	}
	if notice.Lecture != nil {
		resp.LectureName = notice.Lecture.Name
		if notice.Lecture.Instructor != nil {
			name := notice.Lecture.Instructor.Username
			resp.AuthorName = &name
		}
	}
	return resp
}

