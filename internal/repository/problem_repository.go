package repository

import (
	"errors"

	"lyn_studio_backend/internal/model"
	"lyn_studio_backend/internal/util"

	"gorm.io/gorm"
)

type ProblemRepository struct {
	DB *gorm.DB
}

// NewProblemRepository 创建题目仓库实例
func NewProblemRepository(db *gorm.DB) *ProblemRepository {
	return &ProblemRepository{DB: db}
}

// Create 新建题目
func (r *ProblemRepository) Create(problem *model.Problem) error {
	return r.DB.Create(problem).Error
}

// FindByID 按ID查询题目
func (r *ProblemRepository) FindByID(id uint) (*model.Problem, error) {
	var problem model.Problem
	err := r.DB.First(&problem, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProblemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &problem, nil
}

// FindAll 查询题目列表，最新创建的排在最前
// 难度筛选下推到SQL等值匹配，标签筛选在服务层完成
func (r *ProblemRepository) FindAll(difficulty model.Difficulty) ([]model.Problem, error) {
	var problems []model.Problem
	query := r.DB.Order("id DESC")
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}
	err := query.Find(&problems).Error
	return problems, err
}

// AllTags 取出全部题目的标签列，用于计算可选标签集合
func (r *ProblemRepository) AllTags() ([]model.TagList, error) {
	var lists []model.TagList
	err := r.DB.Model(&model.Problem{}).Pluck("tags", &lists).Error
	return lists, err
}

// Update 更新题目的可编辑字段，created_at 与打卡记录保持不变
func (r *ProblemRepository) Update(problem *model.Problem) error {
	result := r.DB.Model(&model.Problem{}).
		Where("id = ?", problem.ID).
		Select("title", "difficulty", "tags", "link", "description", "solution_code", "notes").
		Updates(problem)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return util.ErrProblemNotFound
	}
	return nil
}

// Delete 删除题目并级联删除其全部打卡记录
// 先删日志再删题目，两步在同一事务中提交或一起回滚
func (r *ProblemRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("problem_id = ?", id).Delete(&model.PracticeLog{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Problem{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return util.ErrProblemNotFound
		}
		return nil
	})
}

// Count 题目总数
func (r *ProblemRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Problem{}).Count(&count).Error
	return count, err
}

// Exists 判断题目是否存在
func (r *ProblemRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Problem{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
