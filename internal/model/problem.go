package model

import (
	"time"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Problem 收录的算法题目
// 标签以 JSON 字符串数组存储，例如 '["array","hash-table"]'
type Problem struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string     `gorm:"not null" json:"title"`
	Difficulty   Difficulty `gorm:"type:text;index" json:"difficulty"`
	Tags         TagList    `gorm:"type:text" json:"tags"`
	Link         string     `json:"link"`
	Description  string     `json:"description"`
	SolutionCode string     `json:"solutionCode"`
	Notes        string     `json:"notes"`
	CreatedAt    time.Time  `gorm:"type:date" json:"createdAt"`
}

func (Problem) TableName() string {
	return "problems"
}
