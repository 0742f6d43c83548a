package service

import (
	"context"

	"quiz_progress_backend/internal/model"
	"quiz_progress_backend/internal/repository"
	"quiz_progress_backend/pkg/logger"
	"quiz_progress_backend/pkg/monitoring"
	"quiz_progress_backend/pkg/tracing"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompleteQuizInput struct {
	UserID uint `json:"user_id" validate:"required"`
	QuizID uint `json:"quiz_id" validate:"required"`
}

type UserService struct {
	UserRepo *repository.UserRepository
	QuizRepo *repository.QuizRepository
	DB       *gorm.DB
}

func NewUserService(userRepo *repository.UserRepository, quizRepo *repository.QuizRepository, db *gorm.DB) *UserService {
	return &UserService{UserRepo: userRepo, QuizRepo: quizRepo, DB: db}
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.UserRepo.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	return s.UserRepo.FindByID(ctx, id)
}

// MarkQuizComplete 幂等：测验已在完成集合中时不做修改
func (s *UserService) MarkQuizComplete(ctx context.Context, in CompleteQuizInput) ([]uint, error) {
	ctx, span := tracing.Tracer.Start(ctx, "UserService.MarkQuizComplete")
	defer span.End()

	if err := validateStruct(in); err != nil {
		return nil, err
	}

	var (
		completed []uint
		changed   bool
	)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.UserRepo.LockByID(tx, in.UserID)
		if err != nil {
			return err
		}
		if err := s.QuizRepo.Exists(tx, in.QuizID); err != nil {
			return err
		}
		if changed = user.AddCompleted(in.QuizID); changed {
			if err := s.UserRepo.SaveCompleted(tx, user); err != nil {
				return err
			}
		}
		completed = append([]uint{}, user.CompletedQuizIDs...)
		return nil
	})
	if err != nil {
		err = storageOrSelf("mark quiz complete", err)
		if outcome(err) == "error" {
			logger.Log.Error("mark quiz complete failed", zap.Uint("user_id", in.UserID), zap.Uint("quiz_id", in.QuizID), zap.Error(err))
		}
		return nil, err
	}

	if changed {
		monitoring.QuizCompletions.Inc()
		logger.Log.Info("quiz completed", zap.Uint("user_id", in.UserID), zap.Uint("quiz_id", in.QuizID))
	}
	return completed, nil
}

// IsQuizComplete 结果页展示前的检查
func (s *UserService) IsQuizComplete(ctx context.Context, userID, quizID uint) (bool, error) {
	user, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.HasCompleted(quizID), nil
}
