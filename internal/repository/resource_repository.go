package repository

import (
	"errors"

	"lyn_studio_backend/internal/model"
	"lyn_studio_backend/internal/util"

	"gorm.io/gorm"
)

type ResourceRepository struct {
	DB *gorm.DB
}

// NewResourceRepository 创建资源仓库实例
func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{DB: db}
}

// Create 新建资源
func (r *ResourceRepository) Create(resource *model.Resource) error {
	return r.DB.Create(resource).Error
}

// FindByID 按ID查询资源
func (r *ResourceRepository) FindByID(id uint) (*model.Resource, error) {
	var resource model.Resource
	err := r.DB.First(&resource, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrResourceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// FindAll 查询全部资源，最新收藏的排在最前
func (r *ResourceRepository) FindAll() ([]model.Resource, error) {
	var resources []model.Resource
	err := r.DB.Order("id DESC").Find(&resources).Error
	return resources, err
}

// Delete 删除资源，无级联
func (r *ResourceRepository) Delete(id uint) error {
	result := r.DB.Delete(&model.Resource{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return util.ErrResourceNotFound
	}
	return nil
}

// Count 资源总数
func (r *ResourceRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Resource{}).Count(&count).Error
	return count, err
}
