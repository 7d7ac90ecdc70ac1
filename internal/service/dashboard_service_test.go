package service

import (
	"testing"
	"time"

	"lyn_studio_backend/internal/model"
	"lyn_studio_backend/internal/repository"
)

func TestDashboardSummary(t *testing.T) {
	db := testDB(t)
	problemRepo := repository.NewProblemRepository(db)
	logRepo := repository.NewLogRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	notebookRepo := repository.NewNotebookRepository(db)

	problems := NewProblemService(problemRepo, logRepo)
	resources := NewResourceService(resourceRepo)
	notebooks := NewNotebookService(notebookRepo, repository.NewNoteRepository(db))
	dashboard := NewDashboardService(problemRepo, resourceRepo, notebookRepo, logRepo)

	p := mustCreate(t, problems, "Two Sum", model.DifficultyEasy, nil)
	if _, err := resources.CreateResource("CLRS", model.CategoryBook, "", ""); err != nil {
		t.Fatalf("create resource: %v", err)
	}
	if _, err := notebooks.CreateNotebook("Daily"); err != nil {
		t.Fatalf("create notebook: %v", err)
	}

	// 打卡7次，动态只保留最近5条
	base := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		if _, err := problems.CheckIn(p.ID, base.AddDate(0, 0, i), ""); err != nil {
			t.Fatalf("check in %d: %v", i, err)
		}
	}

	summary, err := dashboard.Summary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.ProblemCount != 1 || summary.ResourceCount != 1 || summary.NotebookCount != 1 {
		t.Fatalf("counts wrong: %+v", summary)
	}
	if len(summary.RecentActivity) != 5 {
		t.Fatalf("want 5 recent entries, got %d", len(summary.RecentActivity))
	}
	if want := base.AddDate(0, 0, 6).Format(time.DateOnly); summary.RecentActivity[0].LogDate != want {
		t.Fatalf("want newest first (%s), got %s", want, summary.RecentActivity[0].LogDate)
	}
	if summary.RecentActivity[0].Title != "Two Sum" {
		t.Fatalf("activity should join problem title, got %+v", summary.RecentActivity[0])
	}
}

func TestResourceCategoryValidation(t *testing.T) {
	db := testDB(t)
	resources := NewResourceService(repository.NewResourceRepository(db))

	if _, err := resources.CreateResource("x", "podcast", "", ""); err == nil {
		t.Fatal("unknown category should be rejected")
	}

	r, err := resources.CreateResource("CLRS", model.CategoryBook, "https://example.com", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if r.Status != model.ResourceStatusUnread {
		t.Fatalf("want default status unread, got %q", r.Status)
	}

	list, err := resources.ListResources()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("want 1 resource, got %d", len(list))
	}
}
