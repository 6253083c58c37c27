package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"doro/backend/internal/dto"
	"doro/backend/internal/model"
)

func setupCommunityService() (CommunityService, *testRepos) {
	repos := newTestRepos()
	svc := NewCommunityService(repos.repo, zap.NewNop())
	return svc, repos
}

func addUser(repos *testRepos, id uint, username string) *model.User {
	u := &model.User{ID: id, Username: username}
	repos.users.users[id] = u
	if id >= repos.users.nextID {
		repos.users.nextID = id + 1
	}
	return u
}

// 미수강 강의 id 를 지정해도 게시글은 그대로 생성된다（既有契约）
func TestCommunityService_CreateThread_ArbitraryLectureID(t *testing.T) {
	svc, repos := setupCommunityService()
	addUser(repos, 10, "student_u")

	lectureID := uint(5)
	thread, err := svc.CreateThread(context.Background(), 10, &dto.CreateThreadRequest{
		Title:   "질문 있습니다",
		Content: "본문",
		Lecture: &lectureID,
	})
	if err != nil {
		t.Fatalf("CreateThread 应成功: %v", err)
	}
	if thread.Lecture == nil || *thread.Lecture != 5 {
		t.Errorf("期望lecture=5，实际=%v", thread.Lecture)
	}
	if thread.StudentName == nil || *thread.StudentName != "student_u" {
		t.Errorf("期望student_name=student_u，实际=%v", thread.StudentName)
	}
}

func TestCommunityService_ListThreads_FilterByLecture(t *testing.T) {
	svc, repos := setupCommunityService()
	student := addUser(repos, 10, "writer")
	sid := student.ID

	l1 := uint(1)
	now := time.Now()
	repos.community.threads[1] = &model.Thread{ID: 1, Title: "global", CreatedAt: now, StudentID: &sid}
	repos.community.threads[2] = &model.Thread{ID: 2, Title: "scoped", CreatedAt: now.Add(time.Minute), StudentID: &sid, LectureID: &l1}
	repos.community.nextTID = 3

	all, err := svc.ListThreads(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListThreads 应成功: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("无过滤时期望2条게시글，实际=%d", len(all))
	}
	if all[0].Title != "scoped" {
		t.Errorf("期望按created_at降序，首条=scoped，实际=%s", all[0].Title)
	}
	if all[0].StudentName == nil || *all[0].StudentName != "writer" {
		t.Errorf("期望作成者关联被解析，student_name=writer，实际=%v", all[0].StudentName)
	}

	filtered, err := svc.ListThreads(context.Background(), &l1)
	if err != nil {
		t.Fatalf("ListThreads 应成功: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Title != "scoped" {
		t.Errorf("期望仅lecture=1的게시글，实际=%v", filtered)
	}
}

func TestCommunityService_ThreadDetail_NotFound(t *testing.T) {
	svc, _ := setupCommunityService()

	_, err := svc.ThreadDetail(context.Background(), 999)
	if err != ErrThreadNotFound {
		t.Errorf("期望ErrThreadNotFound，实际=%v", err)
	}
}

func TestCommunityService_ThreadDetail_CommentsAscending(t *testing.T) {
	svc, repos := setupCommunityService()
	student := addUser(repos, 10, "writer")
	sid := student.ID

	now := time.Now()
	repos.community.threads[1] = &model.Thread{ID: 1, Title: "글", CreatedAt: now, StudentID: &sid, Student: student}
	repos.community.nextTID = 2
	repos.community.comments = append(repos.community.comments,
		&model.Comment{ID: 2, ThreadID: 1, Content: "second", CreatedAt: now.Add(2 * time.Minute), StudentID: &sid, Student: student},
		&model.Comment{ID: 1, ThreadID: 1, Content: "first", CreatedAt: now.Add(time.Minute), StudentID: &sid, Student: student},
	)
	repos.community.nextCID = 3

	detail, err := svc.ThreadDetail(context.Background(), 1)
	if err != nil {
		t.Fatalf("ThreadDetail 应成功: %v", err)
	}
	if len(detail.Comments) != 2 {
		t.Fatalf("期望2条댓글，实际=%d", len(detail.Comments))
	}
	if detail.Comments[0].Content != "first" || detail.Comments[1].Content != "second" {
		t.Errorf("期望댓글按created_at升序，实际=[%s,%s]", detail.Comments[0].Content, detail.Comments[1].Content)
	}
}

func TestCommunityService_AddComment_ThreadNotFound(t *testing.T) {
	svc, _ := setupCommunityService()

	_, err := svc.AddComment(context.Background(), 999, 10, &dto.CreateCommentRequest{Content: "댓글"})
	if err != ErrThreadNotFound {
		t.Errorf("期望ErrThreadNotFound，实际=%v", err)
	}
}

// 게시글 삭제（级联）后，내 활동에서 해당 댓글도 사라진다
func TestCommunityService_MyActivity_AfterThreadCascadeDelete(t *testing.T) {
	svc, repos := setupCommunityService()
	student := addUser(repos, 10, "writer")
	sid := student.ID

	now := time.Now()
	repos.community.threads[1] = &model.Thread{ID: 1, Title: "남을 글", CreatedAt: now, StudentID: &sid, Student: student}
	repos.community.threads[2] = &model.Thread{ID: 2, Title: "지울 글", CreatedAt: now, StudentID: &sid, Student: student}
	repos.community.nextTID = 3
	repos.community.comments = append(repos.community.comments,
		&model.Comment{ID: 1, ThreadID: 1, Content: "남는 댓글", CreatedAt: now, StudentID: &sid},
		&model.Comment{ID: 2, ThreadID: 2, Content: "사라질 댓글", CreatedAt: now, StudentID: &sid},
	)
	repos.community.nextCID = 3

	repos.community.deleteThread(2)

	activity, err := svc.MyActivity(context.Background(), 10)
	if err != nil {
		t.Fatalf("MyActivity 应成功: %v", err)
	}
	if len(activity.Threads) != 1 || activity.Threads[0].ID != 1 {
		t.Errorf("期望仅剩게시글1，实际=%v", activity.Threads)
	}
	if len(activity.Comments) != 1 || activity.Comments[0].ThreadID != 1 {
		t.Errorf("期望仅剩thread 1上的댓글，实际=%v", activity.Comments)
	}
	if activity.Comments[0].ThreadTitle != "남을 글" {
		t.Errorf("期望thread_title=남을 글，实际=%s", activity.Comments[0].ThreadTitle)
	}
}

// 存储不一致（원글缺失但댓글残留）时跳过该댓글而不报错
func TestCommunityService_MyActivity_SkipsDanglingComment(t *testing.T) {
	svc, repos := setupCommunityService()
	student := addUser(repos, 10, "writer")
	sid := student.ID

	now := time.Now()
	// ThreadID=99 不存在于 store 中
	repos.community.comments = append(repos.community.comments,
		&model.Comment{ID: 1, ThreadID: 99, Content: "dangling", CreatedAt: now, StudentID: &sid},
	)

	activity, err := svc.MyActivity(context.Background(), 10)
	if err != nil {
		t.Fatalf("MyActivity 不应因悬挂댓글报错: %v", err)
	}
	if len(activity.Comments) != 0 {
		t.Errorf("期望悬挂댓글被跳过，实际=%d条", len(activity.Comments))
	}
}

