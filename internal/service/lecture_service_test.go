package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"doro/backend/internal/model"
)

func setupLectureService() (LectureService, *testRepos) {
	repos := newTestRepos()
	svc := NewLectureService(repos.repo, zap.NewNop())
	return svc, repos
}

func TestLectureService_MyCourses_CountMatchesEnrollments(t *testing.T) {
	svc, repos := setupLectureService()

	instructor := &model.User{ID: 100, Username: "teacher_kim"}
	iid := instructor.ID
	enroll(repos, 10, &model.Lecture{ID: 1, Name: "Go 입문", InstructorID: &iid, Instructor: instructor})
	enroll(repos, 10, &model.Lecture{ID: 2, Name: "자료구조", InstructorID: &iid, Instructor: instructor})
	enroll(repos, 77, &model.Lecture{ID: 3, Name: "남의 강의"})

	courses, err := svc.MyCourses(context.Background(), 10)
	if err != nil {
		t.Fatalf("MyCourses 应成功: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("期望2条수강 내역，实际=%d", len(courses))
	}
	if courses[0].Lecture.InstructorName == nil || *courses[0].Lecture.InstructorName != "teacher_kim" {
		t.Errorf("期望instructor_name=teacher_kim，实际=%v", courses[0].Lecture.InstructorName)
	}
}

// 과제排序：deadline ASC，同 deadline 时按 id ASC 稳定
func TestLectureService_MyTasks_SortedByDeadlineThenID(t *testing.T) {
	svc, repos := setupLectureService()

	lecture := &model.Lecture{ID: 1, Name: "Go 입문"}
	enroll(repos, 10, lecture)

	early := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	repos.assignments.assignments = append(repos.assignments.assignments,
		model.Assignment{ID: 9, LectureID: 1, Title: "late", Deadline: late, Lecture: lecture},
		model.Assignment{ID: 4, LectureID: 1, Title: "tie-b", Deadline: early, Lecture: lecture},
		model.Assignment{ID: 2, LectureID: 1, Title: "tie-a", Deadline: early, Lecture: lecture},
	)

	tasks, err := svc.MyTasks(context.Background(), 10)
	if err != nil {
		t.Fatalf("MyTasks 应成功: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("期望3条과제，实际=%d", len(tasks))
	}
	if tasks[0].ID != 2 || tasks[1].ID != 4 || tasks[2].ID != 9 {
		t.Errorf("期望顺序[2,4,9]，实际=[%d,%d,%d]", tasks[0].ID, tasks[1].ID, tasks[2].ID)
	}
}

// 未수강 강의的과제不出现在내 과제目录
func TestLectureService_MyTasks_OnlyEnrolledLectures(t *testing.T) {
	svc, repos := setupLectureService()

	enroll(repos, 10, &model.Lecture{ID: 1, Name: "Go 입문"})

	repos.assignments.assignments = append(repos.assignments.assignments,
		model.Assignment{ID: 1, LectureID: 1, Title: "mine", Deadline: time.Now()},
		model.Assignment{ID: 2, LectureID: 2, Title: "theirs", Deadline: time.Now()},
	)

	tasks, err := svc.MyTasks(context.Background(), 10)
	if err != nil {
		t.Fatalf("MyTasks 应成功: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "mine" {
		t.Errorf("期望仅包含在读课程的과제，实际=%v", tasks)
	}
}

// 未在读该课程的调用者也能得到空序列，而不是 403/404
func TestLectureService_MyAttendance_UnenrolledGetsEmpty(t *testing.T) {
	svc, repos := setupLectureService()

	repos.attendances.attendances = append(repos.attendances.attendances,
		model.Attendance{ID: 1, LectureID: 5, UserID: 99, Week: 1, AttendanceDate: time.Now(), Status: model.AttendancePresent},
	)

	// 调用者 10 未在读 lecture 5，也没有任何记录
	result, err := svc.MyAttendance(context.Background(), 5, 10)
	if err != nil {
		t.Fatalf("未在读时应返回空序列而非错误: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("期望空序列，实际=%d条", len(result))
	}
}

func TestLectureService_MyAttendance_StatusDisplayAndWeekOrder(t *testing.T) {
	svc, repos := setupLectureService()

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	repos.attendances.attendances = append(repos.attendances.attendances,
		model.Attendance{ID: 2, LectureID: 1, UserID: 10, Week: 2, AttendanceDate: day, Status: model.AttendanceLate},
		model.Attendance{ID: 1, LectureID: 1, UserID: 10, Week: 1, AttendanceDate: day, Status: model.AttendancePresent},
	)

	result, err := svc.MyAttendance(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("MyAttendance 应成功: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("期望2条출결 기록，实际=%d", len(result))
	}
	if result[0].Week != 1 || result[1].Week != 2 {
		t.Errorf("期望按week升序，实际=[%d,%d]", result[0].Week, result[1].Week)
	}
	if result[0].Status != "PRESENT" || result[1].Status != "LATE" {
		t.Errorf("期望状态[PRESENT,LATE]，实际=[%s,%s]", result[0].Status, result[1].Status)
	}
}

func TestLectureService_LectureNoticeDetail_NotFound(t *testing.T) {
	svc, _ := setupLectureService()

	_, err := svc.LectureNoticeDetail(context.Background(), 999)
	if err != ErrLectureNoticeNotFound {
		t.Errorf("期望ErrLectureNoticeNotFound，实际=%v", err)
	}
}

// content 字段应映射自 body 列
func TestLectureService_CourseNotices_ContentFromBody(t *testing.T) {
	svc, repos := setupLectureService()

	lecture := &model.Lecture{ID: 1, Name: "Go 입문"}
	repos.lectureNotes.notices = append(repos.lectureNotes.notices,
		model.LectureNotice{ID: 1, LectureID: 1, Title: "공지", Body: "본문입니다", CreatedAt: time.Now(), Lecture: lecture},
	)

	notices, err := svc.CourseNotices(context.Background(), 1)
	if err != nil {
		t.Fatalf("CourseNotices 应成功: %v", err)
	}
	if len(notices) != 1 {
		t.Fatalf("期望1条공지，实际=%d", len(notices))
	}
	if notices[0].Content != "본문입니다" {
		t.Errorf("期望content=본문입니다，实际=%s", notices[0].Content)
	}
	if notices[0].Lecture != 1 {
		t.Errorf("期望lecture=1，实际=%d", notices[0].Lecture)
	}
}

