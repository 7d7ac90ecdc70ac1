package service

import (
	"time"

	"lyn_studio_backend/internal/model"
	"lyn_studio_backend/internal/repository"
)

// EventColor 日历事件的配色提示，按题目难度着色
type EventColor struct {
	Background string `json:"background"`
	Border     string `json:"border"`
	Text       string `json:"text"`
}

// CalendarEvent 提供给日历组件的事件记录
// 事件不落库，每次由打卡日志联结题目即时派生
type CalendarEvent struct {
	LogID     uint       `json:"logId"`
	ProblemID uint       `json:"problemId"`
	Title     string     `json:"title"`
	Date      string     `json:"date"`
	Color     EventColor `json:"colorHints"`
}

type CalendarService struct {
	LogRepo *repository.LogRepository
}

func NewCalendarService(logRepo *repository.LogRepository) *CalendarService {
	return &CalendarService{LogRepo: logRepo}
}

var difficultyColors = map[model.Difficulty]EventColor{
	model.DifficultyEasy:   {Background: "#e6fcf5", Border: "#0ca678", Text: "#0ca678"},
	model.DifficultyMedium: {Background: "#fff3bf", Border: "#f59f00", Text: "#f59f00"},
	model.DifficultyHard:   {Background: "#fff5f5", Border: "#fa5252", Text: "#fa5252"},
}

// Events 全部日历事件，每条打卡记录对应一个事件
func (s *CalendarService) Events() ([]CalendarEvent, error) {
	entries, err := s.LogRepo.FindAllWithProblem()
	if err != nil {
		return nil, err
	}

	events := make([]CalendarEvent, 0, len(entries))
	for _, e := range entries {
		events = append(events, CalendarEvent{
			LogID:     e.LogID,
			ProblemID: e.ProblemID,
			Title:     e.Title,
			Date:      e.LogDate.Format(time.DateOnly),
			Color:     difficultyColors[e.Difficulty],
		})
	}
	return events, nil
}
