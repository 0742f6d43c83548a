package repository

import (
	"context"
	"errors"

	"quiz_progress_backend/internal/model"
	"quiz_progress_backend/internal/util"
	"quiz_progress_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// QuizRepository 测验内容不可变，命中缓存时不访问数据库
type QuizRepository struct {
	DB    *gorm.DB
	cache *QuizCache
}

func NewQuizRepository(db *gorm.DB, cache *QuizCache) *QuizRepository {
	return &QuizRepository{DB: db, cache: cache}
}

func (r *QuizRepository) List(ctx context.Context) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	if err := r.DB.WithContext(ctx).Order("id").Find(&quizzes).Error; err != nil {
		return nil, util.StorageError("list quizzes", err)
	}
	return quizzes, nil
}

// FindByID 加载测验及按 position 排序的题目
func (r *QuizRepository) FindByID(ctx context.Context, id uint) (*model.Quiz, error) {
	if quiz, ok := r.cache.Get(ctx, id); ok {
		return quiz, nil
	}

	var quiz model.Quiz
	err := r.DB.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, id ASC")
		}).
		First(&quiz, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	if err != nil {
		return nil, util.StorageError("find quiz", err)
	}

	if err := r.cache.Set(ctx, &quiz); err != nil {
		logger.Log.Warn("quiz cache write failed", zap.Uint("quiz_id", id), zap.Error(err))
	}
	return &quiz, nil
}

// Exists 在事务内校验测验存在
func (r *QuizRepository) Exists(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&model.Quiz{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return util.StorageError("check quiz", err)
	}
	if count == 0 {
		return util.ErrQuizNotFound
	}
	return nil
}
