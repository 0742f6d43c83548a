package service

import (
	"context"
	"errors"
	"fmt"

	"quiz_progress_backend/internal/model"
	"quiz_progress_backend/internal/repository"
	"quiz_progress_backend/internal/util"
	"quiz_progress_backend/pkg/logger"
	"quiz_progress_backend/pkg/monitoring"
	"quiz_progress_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SubmitAnswerInput SelectedChoiceIndex / SecondsOnQuestion 为 nil 时不覆盖已存储的值
type SubmitAnswerInput struct {
	UserID              uint `json:"user_id" validate:"required"`
	QuizID              uint `json:"quiz_id" validate:"required"`
	QuestionID          uint `json:"question_id" validate:"required"`
	SelectedChoiceIndex *int `json:"selected_choice_index,omitempty" validate:"omitempty,min=0"`
	SecondsOnQuestion   *int `json:"seconds_on_question,omitempty" validate:"omitempty,min=0"`
}

type AnswerService struct {
	AnswerRepo *repository.AnswerRepository
	QuizRepo   *repository.QuizRepository
	UserRepo   *repository.UserRepository
	DB         *gorm.DB
}

func NewAnswerService(answerRepo *repository.AnswerRepository, quizRepo *repository.QuizRepository, userRepo *repository.UserRepository, db *gorm.DB) *AnswerService {
	return &AnswerService{
		AnswerRepo: answerRepo,
		QuizRepo:   quizRepo,
		UserRepo:   userRepo,
		DB:         db,
	}
}

// SubmitAnswer 激活协议：在同一事务中锁定用户行、停用其它题目答案、upsert 目标答案并回读
func (s *AnswerService) SubmitAnswer(ctx context.Context, in SubmitAnswerInput) (answer *model.Answer, err error) {
	ctx, span := tracing.Tracer.Start(ctx, "AnswerService.SubmitAnswer")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("user_id", int64(in.UserID)),
		attribute.Int64("quiz_id", int64(in.QuizID)),
		attribute.Int64("question_id", int64(in.QuestionID)),
	)

	defer func() {
		monitoring.AnswerSubmissions.WithLabelValues(outcome(err)).Inc()
		if errors.Is(err, util.ErrStorage) {
			span.RecordError(err)
			logger.Log.Error("submit answer failed",
				zap.Uint("user_id", in.UserID),
				zap.Uint("quiz_id", in.QuizID),
				zap.Uint("question_id", in.QuestionID),
				zap.Error(err),
			)
		}
	}()

	if err := validateStruct(in); err != nil {
		return nil, err
	}

	quiz, err := s.QuizRepo.FindByID(ctx, in.QuizID)
	if err != nil {
		return nil, err
	}
	question := quiz.FindQuestion(in.QuestionID)
	if question == nil {
		return nil, fmt.Errorf("%w: question %d is not part of quiz %d", util.ErrQuestionNotFound, in.QuestionID, in.QuizID)
	}
	if in.SelectedChoiceIndex != nil && !question.HasChoice(*in.SelectedChoiceIndex) {
		return nil, util.ValidationError("selected_choice_index %d out of range for question %d (%d choices)",
			*in.SelectedChoiceIndex, question.ID, len(question.Choices))
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.UserRepo.LockByID(tx, in.UserID); err != nil {
			return err
		}
		var err error
		answer, err = s.AnswerRepo.UpsertAndActivate(tx, repository.UpsertAnswerInput{
			UserID:              in.UserID,
			QuizID:              in.QuizID,
			QuestionID:          in.QuestionID,
			SelectedChoiceIndex: in.SelectedChoiceIndex,
			SecondsOnQuestion:   in.SecondsOnQuestion,
		})
		return err
	})
	if err != nil {
		return nil, storageOrSelf("submit answer transaction", err)
	}

	logger.Log.Debug("answer activated",
		zap.Uint("user_id", answer.UserID),
		zap.Uint("quiz_id", answer.QuizID),
		zap.Uint("question_id", answer.QuestionID),
	)
	return answer, nil
}

func (s *AnswerService) GetActiveAnswer(ctx context.Context, userID, quizID uint) (*model.Answer, error) {
	return s.AnswerRepo.GetActive(ctx, userID, quizID)
}

func (s *AnswerService) ListAnswers(ctx context.Context, userID, quizID uint) ([]model.Answer, error) {
	return s.AnswerRepo.List(ctx, userID, quizID)
}

// RefreshActiveSessions 由定时任务调用，更新活跃会话指标
func (s *AnswerService) RefreshActiveSessions(ctx context.Context) error {
	n, err := s.AnswerRepo.CountActiveSessions(ctx)
	if err != nil {
		return err
	}
	monitoring.ActiveQuizSessions.Set(float64(n))
	return nil
}
