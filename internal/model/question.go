package model

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// CorrectChoiceIndex 约定：存储顺序中的第一个选项为正确答案
const CorrectChoiceIndex = 0

// Choice Index 为存储顺序（未打乱）中的下标
type Choice struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// swagger:model Question
type Question struct {
	BaseModel
	QuizID   uint                        `gorm:"index;not null" json:"quiz_id"`
	Position int                         `gorm:"default:0" json:"position"`
	Content  string                      `gorm:"type:text;not null" json:"content"`
	Choices  datatypes.JSONSlice[string] `json:"-"`
}

func (Question) TableName() string {
	return "quiz_questions"
}

func (q *Question) ChoiceList() []Choice {
	choices := make([]Choice, len(q.Choices))
	for i, text := range q.Choices {
		choices[i] = Choice{Index: i, Text: text}
	}
	return choices
}

func (q *Question) HasChoice(index int) bool {
	return index >= 0 && index < len(q.Choices)
}

func (q *Question) ChoiceText(index int) (string, bool) {
	if !q.HasChoice(index) {
		return "", false
	}
	return q.Choices[index], true
}

func IsCorrectChoice(index *int) bool {
	return index != nil && *index == CorrectChoiceIndex
}

type questionJSON struct {
	ID       uint     `json:"id"`
	QuizID   uint     `json:"quiz_id"`
	Position int      `json:"position"`
	Content  string   `json:"content"`
	Choices  []Choice `json:"choices"`
}

func (q Question) MarshalJSON() ([]byte, error) {
	return json.Marshal(questionJSON{
		ID:       q.ID,
		QuizID:   q.QuizID,
		Position: q.Position,
		Content:  q.Content,
		Choices:  q.ChoiceList(),
	})
}

func (q *Question) UnmarshalJSON(data []byte) error {
	var raw questionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	q.ID = raw.ID
	q.QuizID = raw.QuizID
	q.Position = raw.Position
	q.Content = raw.Content
	q.Choices = make(datatypes.JSONSlice[string], len(raw.Choices))
	for i, c := range raw.Choices {
		q.Choices[i] = c.Text
	}
	return nil
}
