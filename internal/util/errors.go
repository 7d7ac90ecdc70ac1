package util

import "errors"

var (
	ErrProblemNotFound   = errors.New("problem not found")
	ErrResourceNotFound  = errors.New("resource not found")
	ErrNotebookNotFound  = errors.New("notebook not found")
	ErrNoteNotFound      = errors.New("note not found")
	ErrNotebookNameTaken = errors.New("notebook name already exists")
	ErrConfirmRequired   = errors.New("deletion requires confirmation")
	ErrTitleRequired     = errors.New("title is required")
	ErrNameRequired      = errors.New("name is required")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrInvalidView       = errors.New("unknown view")
)
