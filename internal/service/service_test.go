package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"quiz_progress_backend/internal/config"
	"quiz_progress_backend/internal/model"
	"quiz_progress_backend/internal/repository"
	"quiz_progress_backend/internal/util"
	"quiz_progress_backend/pkg/database"
	"quiz_progress_backend/pkg/monitoring"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type fixture struct {
	db      *gorm.DB
	answers *AnswerService
	users   *UserService
	quizzes *QuizService
}

func init() {
	monitoring.Init()
}

// newFixture 用户 1；测验 5 包含题目 10、11、12，测验 6 包含题目 20
func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.InitDB(&config.DatabaseConfig{Driver: "sqlite", Path: ":memory:", LogLevel: "silent"})
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	seed := []interface{}{
		&model.User{BaseModel: model.BaseModel{ID: 1}, Name: "Ada", Email: "ada@example.com"},
		&model.Quiz{BaseModel: model.BaseModel{ID: 5}, Title: "Go basics"},
		&model.Quiz{BaseModel: model.BaseModel{ID: 6}, Title: "SQL"},
		&model.Question{BaseModel: model.BaseModel{ID: 10}, QuizID: 5, Position: 0, Content: "q1", Choices: datatypes.JSONSlice[string]{"a", "b", "c"}},
		&model.Question{BaseModel: model.BaseModel{ID: 11}, QuizID: 5, Position: 1, Content: "q2", Choices: datatypes.JSONSlice[string]{"a", "b"}},
		&model.Question{BaseModel: model.BaseModel{ID: 12}, QuizID: 5, Position: 2, Content: "q3", Choices: datatypes.JSONSlice[string]{"a", "b"}},
		&model.Question{BaseModel: model.BaseModel{ID: 20}, QuizID: 6, Position: 0, Content: "select", Choices: datatypes.JSONSlice[string]{"x", "y"}},
	}
	for _, row := range seed {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("seed %T: %v", row, err)
		}
	}

	userRepo := repository.NewUserRepository(db)
	quizRepo := repository.NewQuizRepository(db, nil)
	answerRepo := repository.NewAnswerRepository(db)
	return &fixture{
		db:      db,
		answers: NewAnswerService(answerRepo, quizRepo, userRepo, db),
		users:   NewUserService(userRepo, quizRepo, db),
		quizzes: NewQuizService(quizRepo, answerRepo, userRepo),
	}
}

func intPtr(v int) *int { return &v }

func (f *fixture) activeCount(t *testing.T, userID, quizID uint) int64 {
	t.Helper()
	var n int64
	if err := f.db.Model(&model.Answer{}).
		Where("user_id = ? AND quiz_id = ? AND is_active = ?", userID, quizID, true).
		Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestSubmitAnswerScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	steps := []SubmitAnswerInput{
		{UserID: 1, QuizID: 5, QuestionID: 10},
		{UserID: 1, QuizID: 5, QuestionID: 10, SelectedChoiceIndex: intPtr(2), SecondsOnQuestion: intPtr(7)},
		{UserID: 1, QuizID: 5, QuestionID: 11},
		{UserID: 1, QuizID: 5, QuestionID: 10},
	}
	var last *model.Answer
	for _, in := range steps {
		var err error
		if last, err = f.answers.SubmitAnswer(ctx, in); err != nil {
			t.Fatalf("submit %+v: %v", in, err)
		}
	}

	if last.QuestionID != 10 || !last.IsActive {
		t.Fatalf("last = %+v", last)
	}
	if last.SelectedChoiceIndex == nil || *last.SelectedChoiceIndex != 2 || last.SecondsOnQuestion != 7 {
		t.Fatalf("partial update overwrote stored values: %+v", last)
	}
	if n := f.activeCount(t, 1, 5); n != 1 {
		t.Fatalf("active rows = %d", n)
	}

	active, err := f.answers.GetActiveAnswer(ctx, 1, 5)
	if err != nil || active.QuestionID != 10 {
		t.Fatalf("GetActiveAnswer = %+v, %v", active, err)
	}
	all, err := f.answers.ListAnswers(ctx, 1, 5)
	if err != nil || len(all) != 2 {
		t.Fatalf("ListAnswers = %d rows, %v", len(all), err)
	}
}

func TestSubmitAnswerSingleActiveRandomSequence(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	questions := []uint{10, 11, 12}
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		in := SubmitAnswerInput{UserID: 1, QuizID: 5, QuestionID: questions[r.Intn(len(questions))]}
		if r.Intn(2) == 0 {
			in.SelectedChoiceIndex = intPtr(r.Intn(2))
		}
		if r.Intn(2) == 0 {
			in.SecondsOnQuestion = intPtr(r.Intn(100))
		}
		got, err := f.answers.SubmitAnswer(ctx, in)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if got.QuestionID != in.QuestionID || !got.IsActive {
			t.Fatalf("step %d: returned %+v", i, got)
		}
		if n := f.activeCount(t, 1, 5); n != 1 {
			t.Fatalf("step %d: %d active rows", i, n)
		}
	}
}

func TestSubmitAnswerConcurrent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	questions := []uint{10, 11, 12}

	var wg sync.WaitGroup
	errs := make(chan error, 30)
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := f.answers.SubmitAnswer(ctx, SubmitAnswerInput{UserID: 1, QuizID: 5, QuestionID: questions[i%3]})
			if err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent submit: %v", err)
	}
	if n := f.activeCount(t, 1, 5); n != 1 {
		t.Fatalf("active rows = %d", n)
	}
}

func TestSubmitAnswerQuizzesAreIndependent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.answers.SubmitAnswer(ctx, SubmitAnswerInput{UserID: 1, QuizID: 5, QuestionID: 11}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.answers.SubmitAnswer(ctx, SubmitAnswerInput{UserID: 1, QuizID: 6, QuestionID: 20}); err != nil {
		t.Fatal(err)
	}
	if f.activeCount(t, 1, 5) != 1 || f.activeCount(t, 1, 6) != 1 {
		t.Fatal("activation in one quiz deactivated another quiz")
	}
	if err := f.answers.RefreshActiveSessions(ctx); err != nil {
		t.Fatalf("RefreshActiveSessions: %v", err)
	}
}

func TestSubmitAnswerErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   SubmitAnswerInput
		want error
	}{
		{"missing user", SubmitAnswerInput{QuizID: 5, QuestionID: 10}, util.ErrValidation},
		{"missing quiz", SubmitAnswerInput{UserID: 1, QuestionID: 10}, util.ErrValidation},
		{"missing question", SubmitAnswerInput{UserID: 1, QuizID: 5}, util.ErrValidation},
		{"negative choice", SubmitAnswerInput{UserID: 1, QuizID: 5, QuestionID: 10, SelectedChoiceIndex: intPtr(-1)}, util.ErrValidation},
		{"negative seconds", SubmitAnswerInput{UserID: 1, QuizID: 5, QuestionID: 10, SecondsOnQuestion: intPtr(-3)}, util.ErrValidation},
		{"choice out of range", SubmitAnswerInput{UserID: 1, QuizID: 5, QuestionID: 11, SelectedChoiceIndex: intPtr(2)}, util.ErrValidation},
		{"unknown user", SubmitAnswerInput{UserID: 99, QuizID: 5, QuestionID: 10}, util.ErrUserNotFound},
		{"unknown quiz", SubmitAnswerInput{UserID: 1, QuizID: 99, QuestionID: 10}, util.ErrQuizNotFound},
		{"question from another quiz", SubmitAnswerInput{UserID: 1, QuizID: 5, QuestionID: 20}, util.ErrQuestionNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.answers.SubmitAnswer(ctx, tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}

	var n int64
	f.db.Model(&model.Answer{}).Count(&n)
	if n != 0 {
		t.Fatalf("rejected submissions wrote %d rows", n)
	}
}

func TestMarkQuizComplete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		got, err := f.users.MarkQuizComplete(ctx, CompleteQuizInput{UserID: 1, QuizID: 5})
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if len(got) != 1 || got[0] != 5 {
			t.Fatalf("call %d: completed = %v", i, got)
		}
	}

	got, err := f.users.MarkQuizComplete(ctx, CompleteQuizInput{UserID: 1, QuizID: 6})
	if err != nil || len(got) != 2 {
		t.Fatalf("second quiz: %v, %v", got, err)
	}

	user, err := f.users.GetUser(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !user.HasCompleted(5) || !user.HasCompleted(6) || len(user.CompletedQuizIDs) != 2 {
		t.Fatalf("persisted set = %v", user.CompletedQuizIDs)
	}
	done, err := f.users.IsQuizComplete(ctx, 1, 5)
	if err != nil || !done {
		t.Fatalf("IsQuizComplete = %v, %v", done, err)
	}
}

func TestMarkQuizCompleteErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.users.MarkQuizComplete(ctx, CompleteQuizInput{UserID: 99, QuizID: 5}); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("unknown user: %v", err)
	}
	if _, err := f.users.MarkQuizComplete(ctx, CompleteQuizInput{UserID: 1, QuizID: 99}); !errors.Is(err, util.ErrQuizNotFound) {
		t.Fatalf("unknown quiz: %v", err)
	}
	if _, err := f.users.MarkQuizComplete(ctx, CompleteQuizInput{QuizID: 5}); !errors.Is(err, util.ErrValidation) {
		t.Fatalf("missing user id: %v", err)
	}
}

func TestQuizProgressAndResults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.quizzes.GetProgress(ctx, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if p.CurrentIndex != 0 || p.Total != 3 || p.Percent != 0 || p.ActiveQuestionID != nil {
		t.Fatalf("progress before start = %+v", p)
	}

	submit := []SubmitAnswerInput{
		{UserID: 1, QuizID: 5, QuestionID: 10, SelectedChoiceIndex: intPtr(0), SecondsOnQuestion: intPtr(30)},
		{UserID: 1, QuizID: 5, QuestionID: 11, SelectedChoiceIndex: intPtr(1), SecondsOnQuestion: intPtr(40)},
		{UserID: 1, QuizID: 5, QuestionID: 12},
	}
	for _, in := range submit {
		if _, err := f.answers.SubmitAnswer(ctx, in); err != nil {
			t.Fatal(err)
		}
	}

	p, err = f.quizzes.GetProgress(ctx, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if p.CurrentIndex != 2 || p.Percent != 66 || p.ActiveQuestionID == nil || *p.ActiveQuestionID != 12 {
		t.Fatalf("progress = %+v", p)
	}

	if _, err := f.users.MarkQuizComplete(ctx, CompleteQuizInput{UserID: 1, QuizID: 5}); err != nil {
		t.Fatal(err)
	}
	res, err := f.quizzes.GetResults(ctx, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Completed || res.CorrectCount != 1 || res.QuestionCount != 3 {
		t.Fatalf("results = %+v", res)
	}
	if res.TotalSeconds != 70 || res.TotalTime != "1m 10s" {
		t.Fatalf("time = %d %q", res.TotalSeconds, res.TotalTime)
	}
	if res.Items[2].AnswerText != NoAnswerText {
		t.Fatalf("unanswered item = %+v", res.Items[2])
	}

	if _, err := f.quizzes.GetResults(ctx, 99, 5); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("unknown user: %v", err)
	}
	if _, err := f.quizzes.GetProgress(ctx, 1, 99); !errors.Is(err, util.ErrQuizNotFound) {
		t.Fatalf("unknown quiz: %v", err)
	}
}
