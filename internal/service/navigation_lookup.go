package service

import (
	"lyn_studio_backend/internal/repository"
)

// NavigationLookup 导航状态机解析视图时的数据访问适配器
type NavigationLookup struct {
	ProblemRepo  *repository.ProblemRepository
	NotebookRepo *repository.NotebookRepository
	NoteRepo     *repository.NoteRepository
}

func NewNavigationLookup(
	problemRepo *repository.ProblemRepository,
	notebookRepo *repository.NotebookRepository,
	noteRepo *repository.NoteRepository,
) *NavigationLookup {
	return &NavigationLookup{
		ProblemRepo:  problemRepo,
		NotebookRepo: notebookRepo,
		NoteRepo:     noteRepo,
	}
}

func (l *NavigationLookup) ProblemExists(id uint) (bool, error) {
	return l.ProblemRepo.Exists(id)
}

func (l *NavigationLookup) NotebookExists(id uint) (bool, error) {
	return l.NotebookRepo.Exists(id)
}

func (l *NavigationLookup) NoteInNotebook(notebookID, noteID uint) (bool, error) {
	return l.NoteRepo.ExistsInNotebook(notebookID, noteID)
}

func (l *NavigationLookup) DefaultNoteID(notebookID uint) (uint, bool, error) {
	notes, err := l.NoteRepo.FindByNotebook(notebookID)
	if err != nil {
		return 0, false, err
	}
	note := DefaultNote(notes)
	if note == nil {
		return 0, false, nil
	}
	return note.ID, true, nil
}
