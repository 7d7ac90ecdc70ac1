package repository

import (
	"errors"

	"lyn_studio_backend/internal/model"
	"lyn_studio_backend/internal/util"

	"gorm.io/gorm"
)

type NoteRepository struct {
	DB *gorm.DB
}

// NewNoteRepository 创建笔记仓库实例
func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

// Create 新建笔记
func (r *NoteRepository) Create(note *model.Note) error {
	return r.DB.Create(note).Error
}

// FindByID 按ID查询笔记
func (r *NoteRepository) FindByID(id uint) (*model.Note, error) {
	var note model.Note
	err := r.DB.First(&note, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNoteNotFound
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// ExistsInNotebook 判断笔记是否存在且属于指定笔记本
func (r *NoteRepository) ExistsInNotebook(notebookID, noteID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Note{}).
		Where("id = ? AND notebook_id = ?", noteID, notebookID).
		Count(&count).Error
	return count > 0, err
}

// FindByNotebook 某笔记本的全部笔记，目录按创建时间倒序展示
func (r *NoteRepository) FindByNotebook(notebookID uint) ([]model.Note, error) {
	var notes []model.Note
	err := r.DB.Where("notebook_id = ?", notebookID).
		Order("created_at DESC, id DESC").
		Find(&notes).Error
	return notes, err
}

// Update 更新笔记标题与内容，updated_at 由 gorm 自动刷新
func (r *NoteRepository) Update(note *model.Note) error {
	result := r.DB.Model(&model.Note{}).
		Where("id = ?", note.ID).
		Select("title", "content", "updated_at").
		Updates(note)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return util.ErrNoteNotFound
	}
	return nil
}

// Delete 删除单条笔记
func (r *NoteRepository) Delete(id uint) error {
	result := r.DB.Delete(&model.Note{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return util.ErrNoteNotFound
	}
	return nil
}
