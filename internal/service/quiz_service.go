package service

import (
	"context"
	"errors"

	"quiz_progress_backend/internal/model"
	"quiz_progress_backend/internal/repository"
	"quiz_progress_backend/internal/util"
	"quiz_progress_backend/pkg/tracing"
)

type QuizService struct {
	QuizRepo   *repository.QuizRepository
	AnswerRepo *repository.AnswerRepository
	UserRepo   *repository.UserRepository
}

func NewQuizService(quizRepo *repository.QuizRepository, answerRepo *repository.AnswerRepository, userRepo *repository.UserRepository) *QuizService {
	return &QuizService{QuizRepo: quizRepo, AnswerRepo: answerRepo, UserRepo: userRepo}
}

func (s *QuizService) ListQuizzes(ctx context.Context) ([]model.Quiz, error) {
	return s.QuizRepo.List(ctx)
}

func (s *QuizService) GetQuiz(ctx context.Context, id uint) (*model.Quiz, error) {
	return s.QuizRepo.FindByID(ctx, id)
}

func (s *QuizService) GetProgress(ctx context.Context, userID, quizID uint) (*Progress, error) {
	ctx, span := tracing.Tracer.Start(ctx, "QuizService.GetProgress")
	defer span.End()

	quiz, err := s.QuizRepo.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	active, err := s.AnswerRepo.GetActive(ctx, userID, quizID)
	if err != nil && !errors.Is(err, util.ErrAnswerNotFound) {
		return nil, err
	}
	p := ComputeProgress(quiz, active)
	return &p, nil
}

func (s *QuizService) GetResults(ctx context.Context, userID, quizID uint) (*QuizResults, error) {
	ctx, span := tracing.Tracer.Start(ctx, "QuizService.GetResults")
	defer span.End()

	user, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	quiz, err := s.QuizRepo.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	answers, err := s.AnswerRepo.List(ctx, userID, quizID)
	if err != nil {
		return nil, err
	}
	res := ComputeResults(quiz, answers)
	res.Completed = user.HasCompleted(quizID)
	return &res, nil
}
