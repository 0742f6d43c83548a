package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quiz_progress_backend/internal/model"
	"quiz_progress_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const quizCacheKeyPrefix = "quiz:content:"

// QuizCache 以 JSON 缓存测验内容；client 为 nil 时所有操作为空操作
type QuizCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewQuizCache(client *redis.Client, ttl time.Duration) *QuizCache {
	return &QuizCache{client: client, ttl: ttl}
}

func quizCacheKey(id uint) string {
	return fmt.Sprintf("%s%d", quizCacheKeyPrefix, id)
}

func (c *QuizCache) enabled() bool {
	return c != nil && c.client != nil
}

func (c *QuizCache) Get(ctx context.Context, id uint) (*model.Quiz, bool) {
	if !c.enabled() {
		return nil, false
	}
	raw, err := c.client.Get(ctx, quizCacheKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Log.Warn("quiz cache read failed", zap.Uint("quiz_id", id), zap.Error(err))
		}
		return nil, false
	}
	var quiz model.Quiz
	if err := json.Unmarshal(raw, &quiz); err != nil {
		logger.Log.Warn("quiz cache entry corrupt", zap.Uint("quiz_id", id), zap.Error(err))
		return nil, false
	}
	return &quiz, true
}

func (c *QuizCache) Set(ctx context.Context, quiz *model.Quiz) error {
	if !c.enabled() {
		return nil
	}
	raw, err := json.Marshal(quiz)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, quizCacheKey(quiz.ID), raw, c.ttl).Err()
}
