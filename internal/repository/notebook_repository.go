package repository

import (
	"errors"

	"lyn_studio_backend/internal/model"
	"lyn_studio_backend/internal/util"

	"gorm.io/gorm"
)

type NotebookRepository struct {
	DB *gorm.DB
}

// NewNotebookRepository 创建笔记本仓库实例
func NewNotebookRepository(db *gorm.DB) *NotebookRepository {
	return &NotebookRepository{DB: db}
}

// Create 新建笔记本，名称重复返回 ErrNotebookNameTaken，不做静默覆盖
func (r *NotebookRepository) Create(notebook *model.Notebook) error {
	err := r.DB.Create(notebook).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return util.ErrNotebookNameTaken
	}
	return err
}

// NameExists 判断笔记本名称是否已被占用
func (r *NotebookRepository) NameExists(name string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Notebook{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// FindByID 按ID查询笔记本
func (r *NotebookRepository) FindByID(id uint) (*model.Notebook, error) {
	var notebook model.Notebook
	err := r.DB.First(&notebook, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotebookNotFound
	}
	if err != nil {
		return nil, err
	}
	return &notebook, nil
}

// FindAll 查询全部笔记本，按创建时间倒序
func (r *NotebookRepository) FindAll() ([]model.Notebook, error) {
	var notebooks []model.Notebook
	err := r.DB.Order("created_at DESC, id DESC").Find(&notebooks).Error
	return notebooks, err
}

// Delete 删除笔记本并级联删除其全部笔记
// 先删笔记再删笔记本，两步在同一事务中提交或一起回滚
func (r *NotebookRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("notebook_id = ?", id).Delete(&model.Note{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Notebook{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return util.ErrNotebookNotFound
		}
		return nil
	})
}

// Count 笔记本总数
func (r *NotebookRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Notebook{}).Count(&count).Error
	return count, err
}

// Exists 判断笔记本是否存在
func (r *NotebookRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Notebook{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
