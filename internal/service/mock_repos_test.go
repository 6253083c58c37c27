package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"doro/backend/internal/model"
	"doro/backend/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.ID == 0 {
		user.ID = m.nextID
		m.nextID++
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uint) error {
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) ListByIDs(_ context.Context, ids []uint) ([]model.User, error) {
	var result []model.User
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			result = append(result, *u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ── Mock LectureRepository ──

type mockLectureRepo struct {
	lectures map[uint]*model.Lecture
}

func newMockLectureRepo() *mockLectureRepo {
	return &mockLectureRepo{lectures: make(map[uint]*model.Lecture)}
}

func (m *mockLectureRepo) GetByID(_ context.Context, id uint) (*model.Lecture, error) {
	if l, ok := m.lectures[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock EnrollmentRepository ──

type mockEnrollmentRepo struct {
	enrollments []model.Enrollment
}

func newMockEnrollmentRepo() *mockEnrollmentRepo {
	return &mockEnrollmentRepo{}
}

func (m *mockEnrollmentRepo) ListByStudent(_ context.Context, studentID uint) ([]model.Enrollment, error) {
	var result []model.Enrollment
	for _, e := range m.enrollments {
		if e.StudentID == studentID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockEnrollmentRepo) ListLectureIDsByStudent(_ context.Context, studentID uint) ([]uint, error) {
	var ids []uint
	for _, e := range m.enrollments {
		if e.StudentID == studentID {
			ids = append(ids, e.LectureID)
		}
	}
	return ids, nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct {
	assignments []model.Assignment
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{}
}

func sortAssignments(result []model.Assignment) {
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Deadline.Equal(result[j].Deadline) {
			return result[i].Deadline.Before(result[j].Deadline)
		}
		return result[i].ID < result[j].ID
	})
}

func (m *mockAssignmentRepo) ListByLectureIDs(_ context.Context, lectureIDs []uint) ([]model.Assignment, error) {
	idSet := make(map[uint]bool, len(lectureIDs))
	for _, id := range lectureIDs {
		idSet[id] = true
	}
	var result []model.Assignment
	for _, a := range m.assignments {
		if idSet[a.LectureID] {
			result = append(result, a)
		}
	}
	sortAssignments(result)
	return result, nil
}

func (m *mockAssignmentRepo) ListByLecture(_ context.Context, lectureID uint) ([]model.Assignment, error) {
	var result []model.Assignment
	for _, a := range m.assignments {
		if a.LectureID == lectureID {
			result = append(result, a)
		}
	}
	sortAssignments(result)
	return result, nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	attendances []model.Attendance
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{}
}

func (m *mockAttendanceRepo) ListByLectureAndUser(_ context.Context, lectureID, userID uint) ([]model.Attendance, error) {
	var result []model.Attendance
	for _, a := range m.attendances {
		if a.LectureID == lectureID && a.UserID == userID {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Week != result[j].Week {
			return result[i].Week < result[j].Week
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// ── Mock SystemNoticeRepository ──

type mockSystemNoticeRepo struct {
	notices []model.SystemNotice
}

func newMockSystemNoticeRepo() *mockSystemNoticeRepo {
	return &mockSystemNoticeRepo{}
}

func (m *mockSystemNoticeRepo) List(_ context.Context) ([]model.SystemNotice, error) {
	return append([]model.SystemNotice(nil), m.notices...), nil
}

func (m *mockSystemNoticeRepo) GetByID(_ context.Context, id uint) (*model.SystemNotice, error) {
	for i := range m.notices {
		if m.notices[i].ID == id {
			return &m.notices[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock LectureNoticeRepository ──

type mockLectureNoticeRepo struct {
	notices []model.LectureNotice
}

func newMockLectureNoticeRepo() *mockLectureNoticeRepo {
	return &mockLectureNoticeRepo{}
}

func (m *mockLectureNoticeRepo) ListByLecture(_ context.Context, lectureID uint) ([]model.LectureNotice, error) {
	var result []model.LectureNotice
	for _, n := range m.notices {
		if n.LectureID == lectureID {
			result = append(result, n)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (m *mockLectureNoticeRepo) ListByLectureIDs(_ context.Context, lectureIDs []uint) ([]model.LectureNotice, error) {
	idSet := make(map[uint]bool, len(lectureIDs))
	for _, id := range lectureIDs {
		idSet[id] = true
	}
	var result []model.LectureNotice
	for _, n := range m.notices {
		if idSet[n.LectureID] {
			result = append(result, n)
		}
	}
	return result, nil
}

func (m *mockLectureNoticeRepo) GetByID(_ context.Context, id uint) (*model.LectureNotice, error) {
	for i := range m.notices {
		if m.notices[i].ID == id {
			return &m.notices[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock Thread/CommentRepository（共享存储，模拟级联删除） ──

type mockCommunityStore struct {
	threads  map[uint]*model.Thread
	comments []*model.Comment
	nextTID  uint
	nextCID  uint
}

func newMockCommunityStore() *mockCommunityStore {
	return &mockCommunityStore{threads: make(map[uint]*model.Thread), nextTID: 1, nextCID: 1}
}

// deleteThread 模拟数据库级联：删除게시글时其댓글一并消失
func (s *mockCommunityStore) deleteThread(id uint) {
	delete(s.threads, id)
	kept := s.comments[:0]
	for _, c := range s.comments {
		if c.ThreadID != id {
			kept = append(kept, c)
		}
	}
	s.comments = kept
}

type mockThreadRepo struct {
	store *mockCommunityStore
	users *mockUserRepo
}

// resolveStudent 模拟真实仓储的 Preload("Student")
func (m *mockThreadRepo) resolveStudent(t *model.Thread) {
	if t.Student == nil && t.StudentID != nil {
		t.Student = m.users.users[*t.StudentID]
	}
}

func (m *mockThreadRepo) Create(_ context.Context, thread *model.Thread) error {
	if thread.ID == 0 {
		thread.ID = m.store.nextTID
		m.store.nextTID++
	}
	m.store.threads[thread.ID] = thread
	return nil
}

func (m *mockThreadRepo) GetByID(_ context.Context, id uint) (*model.Thread, error) {
	t, ok := m.store.threads[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *t
	m.resolveStudent(&copied)
	copied.Comments = nil
	for _, c := range m.store.comments {
		if c.ThreadID == id {
			cc := *c
			if cc.Student == nil && cc.StudentID != nil {
				cc.Student = m.users.users[*cc.StudentID]
			}
			copied.Comments = append(copied.Comments, cc)
		}
	}
	sort.Slice(copied.Comments, func(i, j int) bool {
		if !copied.Comments[i].CreatedAt.Equal(copied.Comments[j].CreatedAt) {
			return copied.Comments[i].CreatedAt.Before(copied.Comments[j].CreatedAt)
		}
		return copied.Comments[i].ID < copied.Comments[j].ID
	})
	return &copied, nil
}

func sortThreadsDesc(result []model.Thread) {
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
}

func (m *mockThreadRepo) List(_ context.Context, lectureID *uint) ([]model.Thread, error) {
	var result []model.Thread
	for _, t := range m.store.threads {
		if lectureID != nil && (t.LectureID == nil || *t.LectureID != *lectureID) {
			continue
		}
		copied := *t
		m.resolveStudent(&copied)
		result = append(result, copied)
	}
	sortThreadsDesc(result)
	return result, nil
}

func (m *mockThreadRepo) ListByStudent(_ context.Context, studentID uint) ([]model.Thread, error) {
	var result []model.Thread
	for _, t := range m.store.threads {
		if t.StudentID != nil && *t.StudentID == studentID {
			copied := *t
			m.resolveStudent(&copied)
			result = append(result, copied)
		}
	}
	sortThreadsDesc(result)
	return result, nil
}

type mockCommentRepo struct {
	store *mockCommunityStore
}

func (m *mockCommentRepo) Create(_ context.Context, comment *model.Comment) error {
	if comment.ID == 0 {
		comment.ID = m.store.nextCID
		m.store.nextCID++
	}
	m.store.comments = append(m.store.comments, comment)
	return nil
}

func (m *mockCommentRepo) ListByStudent(_ context.Context, studentID uint) ([]model.Comment, error) {
	var result []model.Comment
	for _, c := range m.store.comments {
		if c.StudentID != nil && *c.StudentID == studentID {
			copied := *c
			if t, ok := m.store.threads[c.ThreadID]; ok {
				copied.Thread = t
			} else {
				copied.Thread = nil
			}
			result = append(result, copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

// ── Mock ConsultationRepository ──

type mockConsultationRepo struct {
	consultations map[uint]*model.Consultation
	nextID        uint
}

func newMockConsultationRepo() *mockConsultationRepo {
	return &mockConsultationRepo{consultations: make(map[uint]*model.Consultation), nextID: 1}
}

func (m *mockConsultationRepo) Create(_ context.Context, consultation *model.Consultation) error {
	if consultation.ID == 0 {
		consultation.ID = m.nextID
		m.nextID++
	}
	m.consultations[consultation.ID] = consultation
	return nil
}

func (m *mockConsultationRepo) GetByID(_ context.Context, id uint) (*model.Consultation, error) {
	if c, ok := m.consultations[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockConsultationRepo) Update(_ context.Context, consultation *model.Consultation) error {
	m.consultations[consultation.ID] = consultation
	return nil
}

func (m *mockConsultationRepo) Delete(_ context.Context, id uint) error {
	delete(m.consultations, id)
	return nil
}

func (m *mockConsultationRepo) ListByStudent(_ context.Context, studentID uint, filters *repository.ConsultationFilters) ([]model.Consultation, error) {
	var result []model.Consultation
	for _, c := range m.consultations {
		if c.StudentID != studentID {
			continue
		}
		if filters != nil {
			if filters.Status != "" && c.Status != filters.Status {
				continue
			}
			if filters.Type != "" && c.ConsultationType != filters.Type {
				continue
			}
			if filters.Method != "" && c.Method != filters.Method {
				continue
			}
			if filters.InstructorID != nil && c.InstructorID != *filters.InstructorID {
				continue
			}
		}
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

// ── 测试用 Repository 聚合 ──

type testRepos struct {
	repo         *repository.Repository
	users        *mockUserRepo
	lectures     *mockLectureRepo
	enrollments  *mockEnrollmentRepo
	assignments  *mockAssignmentRepo
	attendances  *mockAttendanceRepo
	lectureNotes *mockLectureNoticeRepo
	systemNotes  *mockSystemNoticeRepo
	community    *mockCommunityStore
	consults     *mockConsultationRepo
}

func newTestRepos() *testRepos {
	users := newMockUserRepo()
	lectures := newMockLectureRepo()
	enrollments := newMockEnrollmentRepo()
	assignments := newMockAssignmentRepo()
	attendances := newMockAttendanceRepo()
	lectureNotes := newMockLectureNoticeRepo()
	systemNotes := newMockSystemNoticeRepo()
	community := newMockCommunityStore()
	consults := newMockConsultationRepo()

	return &testRepos{
		repo: &repository.Repository{
			User:          users,
			Lecture:       lectures,
			Enrollment:    enrollments,
			Assignment:    assignments,
			Attendance:    attendances,
			LectureNotice: lectureNotes,
			SystemNotice:  systemNotes,
			Thread:        &mockThreadRepo{store: community, users: users},
			Comment:       &mockCommentRepo{store: community},
			Consultation:  consults,
		},
		users:        users,
		lectures:     lectures,
		enrollments:  enrollments,
		assignments:  assignments,
		attendances:  attendances,
		lectureNotes: lectureNotes,
		systemNotes:  systemNotes,
		community:    community,
		consults:     consults,
	}
}

