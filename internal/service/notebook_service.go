package service

import (
	"strings"

	"lyn_studio_backend/internal/model"
	"lyn_studio_backend/internal/repository"
	"lyn_studio_backend/internal/util"
)

type NotebookService struct {
	Repo     *repository.NotebookRepository
	NoteRepo *repository.NoteRepository
}

func NewNotebookService(repo *repository.NotebookRepository, noteRepo *repository.NoteRepository) *NotebookService {
	return &NotebookService{
		Repo:     repo,
		NoteRepo: noteRepo,
	}
}

// DefaultNote 在未指定笔记时选出默认展开的一篇：
// 最近更新优先，更新时间相同取ID较大的；没有笔记返回 nil
func DefaultNote(notes []model.Note) *model.Note {
	var best *model.Note
	for i := range notes {
		n := &notes[i]
		if best == nil ||
			n.UpdatedAt.After(best.UpdatedAt) ||
			(n.UpdatedAt.Equal(best.UpdatedAt) && n.ID > best.ID) {
			best = n
		}
	}
	return best
}

// CreateNotebook 新建笔记本，名称必填且全局唯一
func (s *NotebookService) CreateNotebook(name string) (*model.Notebook, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, util.ErrNameRequired
	}

	taken, err := s.Repo.NameExists(name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, util.ErrNotebookNameTaken
	}

	notebook := &model.Notebook{Name: name}
	if err := s.Repo.Create(notebook); err != nil {
		return nil, err
	}
	return notebook, nil
}

// ListNotebooks 全部笔记本
func (s *NotebookService) ListNotebooks() ([]model.Notebook, error) {
	return s.Repo.FindAll()
}

// GetNotebook 按ID查询笔记本
func (s *NotebookService) GetNotebook(id uint) (*model.Notebook, error) {
	return s.Repo.FindByID(id)
}

// DeleteNotebook 删除笔记本，笔记级联删除
func (s *NotebookService) DeleteNotebook(id uint) error {
	return s.Repo.Delete(id)
}

// ListNotes 某笔记本的全部笔记
func (s *NotebookService) ListNotes(notebookID uint) ([]model.Note, error) {
	exists, err := s.Repo.Exists(notebookID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, util.ErrNotebookNotFound
	}
	return s.NoteRepo.FindByNotebook(notebookID)
}

// CreateNote 在笔记本下新建笔记，未给标题时默认 Untitled
// 引用完整性由应用保证：笔记本不存在时拒绝写入
func (s *NotebookService) CreateNote(notebookID uint, title string) (*model.Note, error) {
	exists, err := s.Repo.Exists(notebookID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, util.ErrNotebookNotFound
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = model.DefaultNoteTitle
	}

	note := &model.Note{
		NotebookID: notebookID,
		Title:      title,
	}
	if err := s.NoteRepo.Create(note); err != nil {
		return nil, err
	}
	return note, nil
}

// GetNote 按ID查询笔记
func (s *NotebookService) GetNote(id uint) (*model.Note, error) {
	return s.NoteRepo.FindByID(id)
}

// UpdateNote 就地更新笔记标题与内容
func (s *NotebookService) UpdateNote(id uint, title, content string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		title = model.DefaultNoteTitle
	}
	return s.NoteRepo.Update(&model.Note{
		ID:      id,
		Title:   title,
		Content: content,
	})
}

// DeleteNote 删除笔记并返回该笔记本剩余笔记中的默认选中项，删空时返回 nil
func (s *NotebookService) DeleteNote(id uint) (*model.Note, error) {
	note, err := s.NoteRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.NoteRepo.Delete(id); err != nil {
		return nil, err
	}

	remaining, err := s.NoteRepo.FindByNotebook(note.NotebookID)
	if err != nil {
		return nil, err
	}
	return DefaultNote(remaining), nil
}
