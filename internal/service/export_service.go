package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"doro/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportLectureNotFound = errors.New("강의를 찾을 수 없습니다.")
	ErrExportNoAttendance    = errors.New("출결 기록이 없습니다.")
	ErrExportGenerateFail    = errors.New("파일 생성에 실패했습니다.")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 출결 현황导出为 Excel (.xlsx)，仅含调用者本人在该课程的记录
//   - 과제 마감일导出为 iCalendar (RFC 5545)，覆盖调用者全部在读课程
//   - Excel 以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
type ExportService interface {
	// ExportAttendance 导出 (lecture, caller) 的출결 현황为 Excel
	ExportAttendance(ctx context.Context, lectureID, userID uint) (*bytes.Buffer, string, error)
	// TasksCalendar 以 iCal 文本输出调用者的과제 마감 일정
	TasksCalendar(ctx context.Context, studentID uint) (string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportAttendance — 출결 현황导出为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 单 Sheet "출결 현황"
//   - 表头: | 주차 | 날짜 | 상태 |
//   - 状态以展示字符串（ABSENT/PRESENT/LATE）写入
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportAttendance(ctx context.Context, lectureID, userID uint) (*bytes.Buffer, string, error) {
	// 1. 课程必须存在（文件名需要课程名）
	lecture, err := s.repo.Lecture.GetByID(ctx, lectureID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrExportLectureNotFound
		}
		s.logger.Error("查询강의失败", zap.Uint("lecture_id", lectureID), zap.Error(err))
		return nil, "", err
	}

	// 2. 查询출결 기록（与在线查询同一可见性：仅过滤 user）
	attendances, err := s.repo.Attendance.ListByLectureAndUser(ctx, lectureID, userID)
	if err != nil {
		s.logger.Error("查询출결失败", zap.Uint("lecture_id", lectureID), zap.Error(err))
		return nil, "", err
	}
	if len(attendances) == 0 {
		return nil, "", ErrExportNoAttendance
	}

	// 3. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "출결 현황"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 14)
	f.SetColWidth(sheetName, "C", "C", 12)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s — 출결 현황", lecture.Name))
	f.MergeCell(sheetName, "A1", "C1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	row := 2
	f.SetCellValue(sheetName, cell("A", row), "주차")
	f.SetCellValue(sheetName, cell("B", row), "날짜")
	f.SetCellValue(sheetName, cell("C", row), "상태")

	// 数据行
	row = 3
	for i := range attendances {
		a := &attendances[i]
		f.SetCellValue(sheetName, cell("A", row), a.Week)
		f.SetCellValue(sheetName, cell("B", row), a.AttendanceDate.Format("2006-01-02"))
		f.SetCellValue(sheetName, cell("C", row), a.StatusDisplay())
		row++
	}

	// 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("출결현황_%s.xlsx", lecture.Name)
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// TasksCalendar — 과제 마감 일정输出为 iCalendar
// ═══════════════════════════════════════════════════════════
//
// 每条과제生成一个 VEVENT：
//   - DTSTART = deadline，持续 1 小时
//   - SUMMARY = "[课程名] 과제标题"
//   - DESCRIPTION = 과제内容

func (s *exportService) TasksCalendar(ctx context.Context, studentID uint) (string, error) {
	lectureIDs, err := s.repo.Enrollment.ListLectureIDsByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("查询在读课程失败", zap.Uint("student_id", studentID), zap.Error(err))
		return "", err
	}

	assignments, err := s.repo.Assignment.ListByLectureIDs(ctx, lectureIDs)
	if err != nil {
		s.logger.Error("查询과제失败", zap.Uint("student_id", studentID), zap.Error(err))
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//doro//assignment-deadlines//KO")

	now := time.Now()
	for i := range assignments {
		a := &assignments[i]

		event := cal.AddEvent(fmt.Sprintf("assignment-%d@doro", a.ID))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetStartAt(a.Deadline)
		event.SetEndAt(a.Deadline.Add(time.Hour))

		summary := a.Title
		if a.Lecture != nil {
			summary = fmt.Sprintf("[%s] %s", a.Lecture.Name, a.Title)
		}
		event.SetSummary(summary)
		event.SetDescription(a.Content)
	}

	return cal.Serialize(), nil
}

// ── 辅助函数 ──

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

