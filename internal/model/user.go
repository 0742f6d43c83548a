package model

import (
	"gorm.io/datatypes"
)

// swagger:model User
type User struct {
	BaseModel
	Name             string                   `gorm:"size:100;not null" json:"name"`
	Email            string                   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	CompletedQuizIDs datatypes.JSONSlice[uint] `json:"completed_quiz_ids"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) HasCompleted(quizID uint) bool {
	for _, id := range u.CompletedQuizIDs {
		if id == quizID {
			return true
		}
	}
	return false
}

// AddCompleted 集合语义：已存在时不重复添加，返回是否发生变化
func (u *User) AddCompleted(quizID uint) bool {
	if u.HasCompleted(quizID) {
		return false
	}
	u.CompletedQuizIDs = append(u.CompletedQuizIDs, quizID)
	return true
}
