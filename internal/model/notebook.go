package model

import (
	"time"
)

// Notebook 笔记本，名称全局唯一，删除时级联删除所有笔记
type Notebook struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"type:date" json:"createdAt"`
}

func (Notebook) TableName() string {
	return "notebooks"
}
