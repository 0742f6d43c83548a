package repository

import (
	"context"
	"errors"

	"quiz_progress_backend/internal/model"
	"quiz_progress_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.DB.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, util.StorageError("list users", err)
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	return findUser(r.DB.WithContext(ctx), id)
}

// LockByID 在事务中以 SELECT ... FOR UPDATE 读取用户行，串行化同一用户的写操作
func (r *UserRepository) LockByID(tx *gorm.DB, id uint) (*model.User, error) {
	return findUser(tx.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *UserRepository) SaveCompleted(tx *gorm.DB, user *model.User) error {
	err := tx.Model(user).Update("completed_quiz_ids", user.CompletedQuizIDs).Error
	return util.StorageError("update completed quizzes", err)
}

func findUser(db *gorm.DB, id uint) (*model.User, error) {
	var user model.User
	err := db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, util.StorageError("find user", err)
	}
	return &user, nil
}
