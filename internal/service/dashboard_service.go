package service

import (
	"time"

	"lyn_studio_backend/internal/repository"
)

// DashboardSummary 仪表盘概览数据
type DashboardSummary struct {
	ProblemCount   int64            `json:"problemCount"`
	ResourceCount  int64            `json:"resourceCount"`
	NotebookCount  int64            `json:"notebookCount"`
	RecentActivity []RecentActivity `json:"recentActivity"`
}

// RecentActivity 仪表盘上的一条近期打卡动态
type RecentActivity struct {
	ProblemID uint   `json:"problemId"`
	Title     string `json:"title"`
	LogDate   string `json:"logDate"`
	Status    string `json:"status"`
}

const recentActivityLimit = 5

type DashboardService struct {
	ProblemRepo  *repository.ProblemRepository
	ResourceRepo *repository.ResourceRepository
	NotebookRepo *repository.NotebookRepository
	LogRepo      *repository.LogRepository
}

func NewDashboardService(
	problemRepo *repository.ProblemRepository,
	resourceRepo *repository.ResourceRepository,
	notebookRepo *repository.NotebookRepository,
	logRepo *repository.LogRepository,
) *DashboardService {
	return &DashboardService{
		ProblemRepo:  problemRepo,
		ResourceRepo: resourceRepo,
		NotebookRepo: notebookRepo,
		LogRepo:      logRepo,
	}
}

// Summary 汇总三类实体的数量和最近的打卡动态
func (s *DashboardService) Summary() (*DashboardSummary, error) {
	problemCount, err := s.ProblemRepo.Count()
	if err != nil {
		return nil, err
	}
	resourceCount, err := s.ResourceRepo.Count()
	if err != nil {
		return nil, err
	}
	notebookCount, err := s.NotebookRepo.Count()
	if err != nil {
		return nil, err
	}

	entries, err := s.LogRepo.FindRecentWithProblem(recentActivityLimit)
	if err != nil {
		return nil, err
	}
	activity := make([]RecentActivity, 0, len(entries))
	for _, e := range entries {
		activity = append(activity, RecentActivity{
			ProblemID: e.ProblemID,
			Title:     e.Title,
			LogDate:   e.LogDate.Format(time.DateOnly),
			Status:    e.Status,
		})
	}

	return &DashboardSummary{
		ProblemCount:   problemCount,
		ResourceCount:  resourceCount,
		NotebookCount:  notebookCount,
		RecentActivity: activity,
	}, nil
}
