package service

import (
	"strings"

	"lyn_studio_backend/internal/model"
	"lyn_studio_backend/internal/repository"
	"lyn_studio_backend/internal/util"
)

type ResourceService struct {
	Repo *repository.ResourceRepository
}

func NewResourceService(repo *repository.ResourceRepository) *ResourceService {
	return &ResourceService{Repo: repo}
}

// CreateResource 新建收藏资源，标题必填，状态默认待看
func (s *ResourceService) CreateResource(title string, category model.ResourceCategory, url, imageURL string) (*model.Resource, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, util.ErrTitleRequired
	}
	if !category.Valid() {
		return nil, util.ErrInvalidCategory
	}

	resource := &model.Resource{
		Title:    title,
		Category: category,
		URL:      url,
		ImageURL: imageURL,
		Status:   model.ResourceStatusUnread,
	}
	if err := s.Repo.Create(resource); err != nil {
		return nil, err
	}
	return resource, nil
}

// ListResources 全部资源，最新收藏的排在最前
func (s *ResourceService) ListResources() ([]model.Resource, error) {
	return s.Repo.FindAll()
}

// GetResource 按ID查询资源
func (s *ResourceService) GetResource(id uint) (*model.Resource, error) {
	return s.Repo.FindByID(id)
}

// DeleteResource 删除资源
func (s *ResourceService) DeleteResource(id uint) error {
	return s.Repo.Delete(id)
}
