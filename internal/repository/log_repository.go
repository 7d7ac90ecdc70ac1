package repository

import (
	"lyn_studio_backend/internal/model"

	"gorm.io/gorm"
)

type LogRepository struct {
	DB *gorm.DB
}

// NewLogRepository 创建打卡日志仓库实例
func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{DB: db}
}

// Create 追加一条打卡记录
func (r *LogRepository) Create(log *model.PracticeLog) error {
	return r.DB.Create(log).Error
}

// FindAllWithProblem 查询全部打卡记录并联结题目信息，日历事件由此派生
func (r *LogRepository) FindAllWithProblem() ([]model.CalendarEntry, error) {
	var entries []model.CalendarEntry
	err := r.DB.Model(&model.PracticeLog{}).
		Select("logs.id AS log_id, logs.log_date, logs.status, problems.id AS problem_id, problems.title, problems.difficulty").
		Joins("JOIN problems ON logs.problem_id = problems.id").
		Order("logs.log_date DESC").
		Scan(&entries).Error
	return entries, err
}

// FindRecentWithProblem 最近的若干条打卡记录，用于仪表盘动态
func (r *LogRepository) FindRecentWithProblem(limit int) ([]model.CalendarEntry, error) {
	var entries []model.CalendarEntry
	err := r.DB.Model(&model.PracticeLog{}).
		Select("logs.id AS log_id, logs.log_date, logs.status, problems.id AS problem_id, problems.title, problems.difficulty").
		Joins("JOIN problems ON logs.problem_id = problems.id").
		Order("logs.log_date DESC").
		Limit(limit).
		Scan(&entries).Error
	return entries, err
}

// CountByProblem 某题目的打卡次数
func (r *LogRepository) CountByProblem(problemID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.PracticeLog{}).Where("problem_id = ?", problemID).Count(&count).Error
	return count, err
}
