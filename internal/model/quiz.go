package model

// swagger:model Quiz
type Quiz struct {
	BaseModel
	Title     string     `gorm:"size:200;not null" json:"title"`
	Questions []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// QuestionIndex 返回题目在测验中的位置，不存在时返回 -1
func (q *Quiz) QuestionIndex(questionID uint) int {
	for i, question := range q.Questions {
		if question.ID == questionID {
			return i
		}
	}
	return -1
}

func (q *Quiz) FindQuestion(questionID uint) *Question {
	if i := q.QuestionIndex(questionID); i >= 0 {
		return &q.Questions[i]
	}
	return nil
}
