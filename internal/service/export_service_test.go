package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"doro/backend/internal/model"
)

func setupExportService() (ExportService, *testRepos) {
	repos := newTestRepos()
	svc := NewExportService(repos.repo, zap.NewNop())
	return svc, repos
}

func TestExportService_ExportAttendance_LectureNotFound(t *testing.T) {
	svc, _ := setupExportService()

	_, _, err := svc.ExportAttendance(context.Background(), 999, 10)
	if err != ErrExportLectureNotFound {
		t.Errorf("期望ErrExportLectureNotFound，实际=%v", err)
	}
}

func TestExportService_ExportAttendance_NoRecords(t *testing.T) {
	svc, repos := setupExportService()
	repos.lectures.lectures[1] = &model.Lecture{ID: 1, Name: "Go 입문"}

	_, _, err := svc.ExportAttendance(context.Background(), 1, 10)
	if err != ErrExportNoAttendance {
		t.Errorf("출결 기록이 없으면 ErrExportNoAttendance，实际=%v", err)
	}
}

func TestExportService_ExportAttendance_FilenameAndContent(t *testing.T) {
	svc, repos := setupExportService()
	repos.lectures.lectures[1] = &model.Lecture{ID: 1, Name: "Go 입문"}
	repos.attendances.attendances = append(repos.attendances.attendances,
		model.Attendance{ID: 1, LectureID: 1, UserID: 10, Week: 1,
			AttendanceDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			Status:         model.AttendancePresent},
	)

	buf, filename, err := svc.ExportAttendance(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("ExportAttendance 应成功: %v", err)
	}
	if filename != "출결현황_Go 입문.xlsx" {
		t.Errorf("期望filename=출결현황_Go 입문.xlsx，实际=%s", filename)
	}
	if buf == nil || buf.Len() == 0 {
		t.Error("期望非空 xlsx 数据")
	}
}

func TestExportService_TasksCalendar_ContainsDeadlines(t *testing.T) {
	svc, repos := setupExportService()

	lecture := &model.Lecture{ID: 1, Name: "Go 입문"}
	enroll(repos, 10, lecture)
	repos.assignments.assignments = append(repos.assignments.assignments,
		model.Assignment{ID: 1, LectureID: 1, Title: "1주차 과제",
			Deadline: time.Date(2025, 4, 1, 23, 59, 0, 0, time.UTC), Lecture: lecture},
	)

	ical, err := svc.TasksCalendar(context.Background(), 10)
	if err != nil {
		t.Fatalf("TasksCalendar 应成功: %v", err)
	}
	if !strings.Contains(ical, "BEGIN:VCALENDAR") || !strings.Contains(ical, "BEGIN:VEVENT") {
		t.Error("期望输出包含 VCALENDAR/VEVENT 结构")
	}
	if !strings.Contains(ical, "[Go 입문] 1주차 과제") {
		t.Errorf("期望SUMMARY包含课程名与과제标题，实际输出:\n%s", ical)
	}
}

func TestExportService_TasksCalendar_EmptyStillValid(t *testing.T) {
	svc, _ := setupExportService()

	ical, err := svc.TasksCalendar(context.Background(), 10)
	if err != nil {
		t.Fatalf("无과제时也应输出空日历: %v", err)
	}
	if !strings.Contains(ical, "BEGIN:VCALENDAR") {
		t.Error("期望输出合法的空 VCALENDAR")
	}
	if strings.Contains(ical, "BEGIN:VEVENT") {
		t.Error("无과제时不应包含 VEVENT")
	}
}
