package service

import (
	"sort"
	"strings"
	"time"

	"lyn_studio_backend/internal/model"
	"lyn_studio_backend/internal/repository"
	"lyn_studio_backend/internal/util"
)

// ProblemFilter 题目列表的筛选条件
// 难度匹配下推到数据层，标签匹配在取回后做 OR 语义的交集判断
type ProblemFilter struct {
	Difficulty model.Difficulty
	Tags       []string
}

type ProblemService struct {
	Repo    *repository.ProblemRepository
	LogRepo *repository.LogRepository
}

func NewProblemService(repo *repository.ProblemRepository, logRepo *repository.LogRepository) *ProblemService {
	return &ProblemService{
		Repo:    repo,
		LogRepo: logRepo,
	}
}

// ListProblems 按筛选条件查询题目，最新创建的排在最前
func (s *ProblemService) ListProblems(filter ProblemFilter) ([]model.Problem, error) {
	difficulty := filter.Difficulty
	if difficulty == "all" {
		difficulty = ""
	}
	if difficulty != "" && !difficulty.Valid() {
		return nil, util.ErrInvalidDifficulty
	}

	problems, err := s.Repo.FindAll(difficulty)
	if err != nil {
		return nil, err
	}

	if len(filter.Tags) == 0 {
		return problems, nil
	}

	filtered := make([]model.Problem, 0, len(problems))
	for _, p := range problems {
		if p.Tags.ContainsAny(filter.Tags) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// AvailableTags 全部题目标签的去重并集，不受当前难度筛选影响
func (s *ProblemService) AvailableTags() ([]string, error) {
	lists, err := s.Repo.AllTags()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, list := range lists {
		for _, tag := range list {
			if _, ok := seen[tag]; !ok {
				seen[tag] = struct{}{}
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	return tags, nil
}

// CreateProblem 新建题目，题目名为必填项
func (s *ProblemService) CreateProblem(title string, difficulty model.Difficulty, tags model.TagList, link, description string) (*model.Problem, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, util.ErrTitleRequired
	}
	if !difficulty.Valid() {
		return nil, util.ErrInvalidDifficulty
	}
	if tags == nil {
		tags = model.TagList{}
	}

	problem := &model.Problem{
		Title:       title,
		Difficulty:  difficulty,
		Tags:        tags,
		Link:        link,
		Description: description,
	}
	if err := s.Repo.Create(problem); err != nil {
		return nil, err
	}
	return problem, nil
}

// GetProblem 按ID查询题目
func (s *ProblemService) GetProblem(id uint) (*model.Problem, error) {
	return s.Repo.FindByID(id)
}

// UpdateProblem 更新题目的可编辑字段，创建日期与打卡记录不变
func (s *ProblemService) UpdateProblem(id uint, title string, difficulty model.Difficulty, tags model.TagList, link, description, solutionCode, notes string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return util.ErrTitleRequired
	}
	if !difficulty.Valid() {
		return util.ErrInvalidDifficulty
	}
	if tags == nil {
		tags = model.TagList{}
	}

	problem := &model.Problem{
		ID:           id,
		Title:        title,
		Difficulty:   difficulty,
		Tags:         tags,
		Link:         link,
		Description:  description,
		SolutionCode: solutionCode,
		Notes:        notes,
	}
	return s.Repo.Update(problem)
}

// DeleteProblem 删除题目，打卡日志级联删除
func (s *ProblemService) DeleteProblem(id uint) error {
	return s.Repo.Delete(id)
}

// CheckIn 为题目追加一条打卡记录
// 引用完整性由应用保证：题目不存在时拒绝写入
func (s *ProblemService) CheckIn(problemID uint, logDate time.Time, status string) (*model.PracticeLog, error) {
	exists, err := s.Repo.Exists(problemID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, util.ErrProblemNotFound
	}

	if logDate.IsZero() {
		logDate = time.Now()
	}
	if status == "" {
		status = model.LogStatusCompleted
	}

	log := &model.PracticeLog{
		ProblemID: problemID,
		LogDate:   logDate,
		Status:    status,
	}
	if err := s.LogRepo.Create(log); err != nil {
		return nil, err
	}
	return log, nil
}
