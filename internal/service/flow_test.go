package service

import (
	"testing"
	"time"

	"lyn_studio_backend/internal/model"
	"lyn_studio_backend/internal/navigation"
	"lyn_studio_backend/internal/repository"
)

// 打卡到日历再进详情的完整链路：
// 建题 -> 打卡 -> 派生日历事件 -> 从日历打开详情 -> 返回日历
func TestCheckInToCalendarFlow(t *testing.T) {
	db := testDB(t)
	problemRepo := repository.NewProblemRepository(db)
	logRepo := repository.NewLogRepository(db)
	notebookRepo := repository.NewNotebookRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	problems := NewProblemService(problemRepo, logRepo)
	calendar := NewCalendarService(logRepo)
	machine := navigation.NewMachine(NewNavigationLookup(problemRepo, notebookRepo, noteRepo))

	p, err := problems.CreateProblem("Two Sum", model.DifficultyEasy, model.TagList{"array", "hash-table"}, "", "")
	if err != nil {
		t.Fatalf("create problem: %v", err)
	}

	today := time.Now()
	if _, err := problems.CheckIn(p.ID, today, ""); err != nil {
		t.Fatalf("check in: %v", err)
	}

	events, err := calendar.Events()
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("want 1 event, got %d", len(events))
	}
	ev := events[0]
	if ev.ProblemID != p.ID || ev.Title != "Two Sum" {
		t.Fatalf("event not derived from log: %+v", ev)
	}
	if ev.Date != today.Format(time.DateOnly) {
		t.Fatalf("want date %s, got %s", today.Format(time.DateOnly), ev.Date)
	}
	if ev.Color.Border != "#0ca678" {
		t.Fatalf("easy problem should use green hints, got %+v", ev.Color)
	}

	// 点击日历事件打开详情，来源记为日历
	machine.Navigate(navigation.ProblemDetail{ProblemID: ev.ProblemID, Source: navigation.PageCalendar})
	v, notice, err := machine.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if notice != nil {
		t.Fatalf("unexpected notice %v", notice)
	}
	detail, ok := v.(navigation.ProblemDetail)
	if !ok || detail.ProblemID != p.ID {
		t.Fatalf("want ProblemDetail for %d, got %+v", p.ID, v)
	}

	if _, ok := machine.Back().(navigation.Calendar); !ok {
		t.Fatalf("back should return to calendar, got %T", machine.Current())
	}

	// 题目删除后日志级联清除，事件随之消失
	if err := problems.DeleteProblem(p.ID); err != nil {
		t.Fatalf("delete problem: %v", err)
	}
	events, err = calendar.Events()
	if err != nil {
		t.Fatalf("events after delete: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("events should vanish with the problem, got %d", len(events))
	}
}
