package service

import (
	"errors"
	"testing"
	"time"

	"lyn_studio_backend/internal/model"
	"lyn_studio_backend/internal/repository"
	"lyn_studio_backend/internal/util"
)

func newNotebookService(t *testing.T) *NotebookService {
	t.Helper()
	db := testDB(t)
	return NewNotebookService(repository.NewNotebookRepository(db), repository.NewNoteRepository(db))
}

func TestDefaultNote(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	if got := DefaultNote(nil); got != nil {
		t.Fatalf("empty slice should give nil, got %v", got)
	}

	notes := []model.Note{
		{ID: 1, UpdatedAt: base},
		{ID: 2, UpdatedAt: base.Add(time.Hour)},
		{ID: 3, UpdatedAt: base},
	}
	if got := DefaultNote(notes); got.ID != 2 {
		t.Fatalf("want latest-updated note 2, got %d", got.ID)
	}

	// 更新时间相同时取ID较大的
	tied := []model.Note{
		{ID: 5, UpdatedAt: base},
		{ID: 9, UpdatedAt: base},
		{ID: 7, UpdatedAt: base},
	}
	if got := DefaultNote(tied); got.ID != 9 {
		t.Fatalf("want highest id on tie, got %d", got.ID)
	}
}

func TestCreateNotebookNameRules(t *testing.T) {
	s := newNotebookService(t)

	if _, err := s.CreateNotebook("  "); !errors.Is(err, util.ErrNameRequired) {
		t.Fatalf("want ErrNameRequired, got %v", err)
	}

	if _, err := s.CreateNotebook("Algorithms"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.CreateNotebook("Algorithms"); !errors.Is(err, util.ErrNotebookNameTaken) {
		t.Fatalf("want ErrNotebookNameTaken, got %v", err)
	}
}

func TestCreateNoteRequiresNotebook(t *testing.T) {
	s := newNotebookService(t)

	if _, err := s.CreateNote(404, "x"); !errors.Is(err, util.ErrNotebookNotFound) {
		t.Fatalf("want ErrNotebookNotFound, got %v", err)
	}

	nb, err := s.CreateNotebook("Daily")
	if err != nil {
		t.Fatalf("create notebook: %v", err)
	}
	note, err := s.CreateNote(nb.ID, "   ")
	if err != nil {
		t.Fatalf("create note: %v", err)
	}
	if note.Title != model.DefaultNoteTitle {
		t.Fatalf("want default title, got %q", note.Title)
	}
}

func TestDeleteNoteReturnsNextSelection(t *testing.T) {
	s := newNotebookService(t)
	nb, err := s.CreateNotebook("Daily")
	if err != nil {
		t.Fatalf("create notebook: %v", err)
	}

	first, err := s.CreateNote(nb.ID, "first")
	if err != nil {
		t.Fatalf("create note: %v", err)
	}
	second, err := s.CreateNote(nb.ID, "second")
	if err != nil {
		t.Fatalf("create note: %v", err)
	}

	next, err := s.DeleteNote(second.ID)
	if err != nil {
		t.Fatalf("delete note: %v", err)
	}
	if next == nil || next.ID != first.ID {
		t.Fatalf("want remaining note %d selected, got %v", first.ID, next)
	}

	next, err = s.DeleteNote(first.ID)
	if err != nil {
		t.Fatalf("delete last note: %v", err)
	}
	if next != nil {
		t.Fatalf("emptied notebook should select nothing, got %v", next)
	}

	if _, err := s.DeleteNote(first.ID); !errors.Is(err, util.ErrNoteNotFound) {
		t.Fatalf("want ErrNoteNotFound, got %v", err)
	}
}
