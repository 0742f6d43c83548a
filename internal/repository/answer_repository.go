package repository

import (
	"context"
	"errors"
	"time"

	"quiz_progress_backend/internal/model"
	"quiz_progress_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertAnswerInput nil 字段表示“未提供”，更新时保留原值
type UpsertAnswerInput struct {
	UserID              uint
	QuizID              uint
	QuestionID          uint
	SelectedChoiceIndex *int
	SecondsOnQuestion   *int
}

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

func (r *AnswerRepository) GetActive(ctx context.Context, userID, quizID uint) (*model.Answer, error) {
	var answer model.Answer
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND quiz_id = ? AND is_active = ?", userID, quizID, true).
		First(&answer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAnswerNotFound
	}
	if err != nil {
		return nil, util.StorageError("find active answer", err)
	}
	return &answer, nil
}

func (r *AnswerRepository) List(ctx context.Context, userID, quizID uint) ([]model.Answer, error) {
	answers := []model.Answer{}
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Find(&answers).Error
	if err != nil {
		return nil, util.StorageError("list answers", err)
	}
	return answers, nil
}

// UpsertAndActivate 必须在调用方的事务 tx 中执行：
// 先停用同一 (用户, 测验) 下其它题目的答案，再按唯一键插入或部分更新目标行并回读
func (r *AnswerRepository) UpsertAndActivate(tx *gorm.DB, in UpsertAnswerInput) (*model.Answer, error) {
	err := tx.Model(&model.Answer{}).
		Where("user_id = ? AND quiz_id = ? AND question_id <> ? AND is_active = ?",
			in.UserID, in.QuizID, in.QuestionID, true).
		Update("is_active", false).Error
	if err != nil {
		return nil, util.StorageError("deactivate answers", err)
	}

	answer := model.Answer{
		UserID:              in.UserID,
		QuizID:              in.QuizID,
		QuestionID:          in.QuestionID,
		SelectedChoiceIndex: in.SelectedChoiceIndex,
		IsActive:            true,
	}
	if in.SecondsOnQuestion != nil {
		answer.SecondsOnQuestion = *in.SecondsOnQuestion
	}

	updates := map[string]interface{}{
		"is_active":  true,
		"updated_at": time.Now(),
	}
	if in.SelectedChoiceIndex != nil {
		updates["selected_choice_index"] = *in.SelectedChoiceIndex
	}
	if in.SecondsOnQuestion != nil {
		updates["seconds_on_question"] = *in.SecondsOnQuestion
	}

	err = tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "quiz_id"}, {Name: "question_id"}},
		DoUpdates: clause.Assignments(updates),
	}).Create(&answer).Error
	if err != nil {
		return nil, util.StorageError("upsert answer", err)
	}

	var stored model.Answer
	err = tx.Where("user_id = ? AND quiz_id = ? AND question_id = ?", in.UserID, in.QuizID, in.QuestionID).
		First(&stored).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAnswerNotFound
	}
	if err != nil {
		return nil, util.StorageError("read back answer", err)
	}
	return &stored, nil
}

// CountActiveSessions 每个 (用户, 测验) 至多一行活跃答案，活跃行数即会话数
func (r *AnswerRepository) CountActiveSessions(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Answer{}).Where("is_active = ?", true).Count(&count).Error
	if err != nil {
		return 0, util.StorageError("count active sessions", err)
	}
	return count, nil
}
