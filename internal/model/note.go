package model

import (
	"time"
)

const DefaultNoteTitle = "Untitled"

// Note 从属于某个笔记本的一篇笔记
type Note struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	NotebookID uint      `gorm:"index;not null" json:"notebookId"`
	Title      string    `gorm:"not null" json:"title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `gorm:"type:date" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"type:date" json:"updatedAt"`
}

func (Note) TableName() string {
	return "notes"
}
