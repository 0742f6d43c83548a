package model

import "time"

// Answer 每个 (用户, 测验, 题目) 至多一行；同一 (用户, 测验) 下至多一行 IsActive
//
// swagger:model Answer
type Answer struct {
	ID                  uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID              uint      `gorm:"not null;uniqueIndex:idx_answer_key,priority:1;index:idx_answer_user_quiz_active,priority:1" json:"user_id"`
	QuizID              uint      `gorm:"not null;uniqueIndex:idx_answer_key,priority:2;index:idx_answer_user_quiz_active,priority:2" json:"quiz_id"`
	QuestionID          uint      `gorm:"not null;uniqueIndex:idx_answer_key,priority:3" json:"question_id"`
	SelectedChoiceIndex *int      `json:"selected_choice_index"`
	IsActive            bool      `gorm:"not null;index:idx_answer_user_quiz_active,priority:3" json:"is_active"`
	SecondsOnQuestion   int       `gorm:"not null;default:0" json:"seconds_on_question"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (Answer) TableName() string {
	return "quiz_answers"
}
