package service

import (
	"fmt"
	"strings"

	"quiz_progress_backend/internal/model"
)

// NoAnswerText 未作答题目的占位文本
const NoAnswerText = "(no answer)"

type Progress struct {
	QuizID           uint  `json:"quiz_id"`
	ActiveQuestionID *uint `json:"active_question_id"`
	CurrentIndex     int   `json:"current_index"`
	Total            int   `json:"total"`
	Percent          int   `json:"percent"`
}

type ResultItem struct {
	Position            int    `json:"position"`
	QuestionID          uint   `json:"question_id"`
	Content             string `json:"content"`
	SelectedChoiceIndex *int   `json:"selected_choice_index"`
	AnswerText          string `json:"answer_text"`
	Correct             bool   `json:"correct"`
}

type QuizResults struct {
	QuizID        uint         `json:"quiz_id"`
	Title         string       `json:"title"`
	Completed     bool         `json:"completed"`
	CorrectCount  int          `json:"correct_count"`
	QuestionCount int          `json:"question_count"`
	TotalSeconds  int          `json:"total_seconds"`
	TotalTime     string       `json:"total_time"`
	Items         []ResultItem `json:"items"`
}

// ComputeProgress active 为 nil 或题目不在测验中时 CurrentIndex 为 0
func ComputeProgress(quiz *model.Quiz, active *model.Answer) Progress {
	p := Progress{QuizID: quiz.ID, Total: len(quiz.Questions)}
	if active != nil {
		id := active.QuestionID
		p.ActiveQuestionID = &id
		if i := quiz.QuestionIndex(active.QuestionID); i >= 0 {
			p.CurrentIndex = i
		}
	}
	if p.Total > 0 {
		p.Percent = p.CurrentIndex * 100 / p.Total
	}
	return p
}

// ComputeResults 按测验题目顺序汇总；选择下标为 model.CorrectChoiceIndex 视为答对
func ComputeResults(quiz *model.Quiz, answers []model.Answer) QuizResults {
	byQuestion := make(map[uint]*model.Answer, len(answers))
	totalSeconds := 0
	for i := range answers {
		byQuestion[answers[i].QuestionID] = &answers[i]
		totalSeconds += answers[i].SecondsOnQuestion
	}

	res := QuizResults{
		QuizID:        quiz.ID,
		Title:         quiz.Title,
		QuestionCount: len(quiz.Questions),
		TotalSeconds:  totalSeconds,
		TotalTime:     FormatDuration(totalSeconds),
		Items:         make([]ResultItem, 0, len(quiz.Questions)),
	}

	for i := range quiz.Questions {
		question := &quiz.Questions[i]
		item := ResultItem{
			Position:   i + 1,
			QuestionID: question.ID,
			Content:    question.Content,
			AnswerText: NoAnswerText,
		}
		if answer, ok := byQuestion[question.ID]; ok && answer.SelectedChoiceIndex != nil {
			item.SelectedChoiceIndex = answer.SelectedChoiceIndex
			if text, ok := question.ChoiceText(*answer.SelectedChoiceIndex); ok {
				item.AnswerText = text
			}
			item.Correct = model.IsCorrectChoice(answer.SelectedChoiceIndex)
		}
		if item.Correct {
			res.CorrectCount++
		}
		res.Items = append(res.Items, item)
	}
	return res
}

// FormatDuration 格式为 "1h 1m 1s"；小时为 0 时省略小时，小时与分钟都为 0 时省略分钟
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	parts := make([]string, 0, 3)
	if h > 0 {
		parts = append(parts, fmt.Sprintf("%dh", h))
	}
	if m > 0 || h > 0 {
		parts = append(parts, fmt.Sprintf("%dm", m))
	}
	parts = append(parts, fmt.Sprintf("%ds", s))
	return strings.Join(parts, " ")
}
