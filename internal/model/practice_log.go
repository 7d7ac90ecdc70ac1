package model

import (
	"time"
)

const LogStatusCompleted = "completed"

// PracticeLog 一次刷题打卡记录，同一题目允许多次打卡
// 只支持插入和随题目级联删除，不支持编辑
type PracticeLog struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProblemID uint      `gorm:"index;not null" json:"problemId"`
	LogDate   time.Time `gorm:"type:date;not null" json:"logDate"`
	Status    string    `json:"status"`
}

func (PracticeLog) TableName() string {
	return "logs"
}

// CalendarEntry logs 与 problems 联结出的一行，日历事件由它派生
type CalendarEntry struct {
	LogID      uint       `json:"logId"`
	LogDate    time.Time  `json:"logDate"`
	Status     string     `json:"status"`
	ProblemID  uint       `json:"problemId"`
	Title      string     `json:"title"`
	Difficulty Difficulty `json:"difficulty"`
}
