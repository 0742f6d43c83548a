package database

import (
	"fmt"
	"os"

	"quiz_progress_backend/internal/model"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SeedData struct {
	Users   []SeedUser `yaml:"users"`
	Quizzes []SeedQuiz `yaml:"quizzes"`
}

type SeedUser struct {
	ID    uint   `yaml:"id"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

type SeedQuiz struct {
	ID        uint           `yaml:"id"`
	Title     string         `yaml:"title"`
	Questions []SeedQuestion `yaml:"questions"`
}

// SeedQuestion Choices 第一个为正确答案
type SeedQuestion struct {
	Content string   `yaml:"content"`
	Choices []string `yaml:"choices"`
}

func LoadSeedFile(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &data, nil
}

// Seed 已存在的用户/测验（按 ID）会被跳过，可重复执行
func Seed(db *gorm.DB, data *SeedData) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, u := range data.Users {
			var count int64
			if err := tx.Model(&model.User{}).Where("id = ?", u.ID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			user := model.User{
				BaseModel:        model.BaseModel{ID: u.ID},
				Name:             u.Name,
				Email:            u.Email,
				CompletedQuizIDs: datatypes.JSONSlice[uint]{},
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		}

		for _, q := range data.Quizzes {
			var count int64
			if err := tx.Model(&model.Quiz{}).Where("id = ?", q.ID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			if len(q.Questions) == 0 {
				return fmt.Errorf("quiz %d (%s) has no questions", q.ID, q.Title)
			}
			quiz := model.Quiz{
				BaseModel: model.BaseModel{ID: q.ID},
				Title:     q.Title,
			}
			for i, sq := range q.Questions {
				if len(sq.Choices) == 0 {
					return fmt.Errorf("quiz %d question %d has no choices", q.ID, i+1)
				}
				quiz.Questions = append(quiz.Questions, model.Question{
					Position: i,
					Content:  sq.Content,
					Choices:  datatypes.JSONSlice[string](sq.Choices),
				})
			}
			if err := tx.Create(&quiz).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
