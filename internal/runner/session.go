package runner

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"quiz_progress_backend/internal/model"
	"quiz_progress_backend/internal/service"
	"quiz_progress_backend/internal/util"
)

var (
	ErrNoSelection = errors.New("select an answer before continuing")
	ErrNotStarted  = errors.New("session not started")
	ErrFinished    = errors.New("quiz already finished")
	ErrEmptyQuiz   = errors.New("quiz has no questions")
)

// API 会话依赖的后端接口，由 client.Client 实现
type API interface {
	GetQuiz(ctx context.Context, quizID uint) (*model.Quiz, error)
	GetActiveAnswer(ctx context.Context, userID, quizID uint) (*model.Answer, error)
	SubmitAnswer(ctx context.Context, in service.SubmitAnswerInput) (*model.Answer, error)
	CompleteQuiz(ctx context.Context, userID, quizID uint) ([]uint, error)
	GetResults(ctx context.Context, userID, quizID uint) (*service.QuizResults, error)
}

// ShuffleFunc 与 rand.Shuffle 签名一致
type ShuffleFunc func(n int, swap func(i, j int))

type Option func(*Session)

func WithShuffle(fn ShuffleFunc) Option {
	return func(s *Session) { s.shuffle = fn }
}

// View 当前题目的展示状态
type View struct {
	Position   int
	Total      int
	QuestionID uint
	Content    string
	Choices    []model.Choice
	Selected   *int
	Elapsed    int
	IsFirst    bool
	IsLast     bool
}

// Session 单个用户答一份测验的客户端状态
type Session struct {
	api      API
	userID   uint
	quizID   uint
	shuffle  ShuffleFunc
	watch    *Stopwatch
	quiz     *model.Quiz
	active   *model.Answer
	choices  []model.Choice
	finished bool
}

func NewSession(api API, userID, quizID uint, opts ...Option) *Session {
	s := &Session{
		api:     api,
		userID:  userID,
		quizID:  quizID,
		shuffle: rand.Shuffle,
		watch:   &Stopwatch{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Stopwatch() *Stopwatch {
	return s.watch
}

func (s *Session) Finished() bool {
	return s.finished
}

// Start 恢复上次激活的题目，没有时激活第一题
func (s *Session) Start(ctx context.Context) error {
	quiz, err := s.api.GetQuiz(ctx, s.quizID)
	if err != nil {
		return err
	}
	if len(quiz.Questions) == 0 {
		return ErrEmptyQuiz
	}
	s.quiz = quiz
	s.finished = false

	active, err := s.api.GetActiveAnswer(ctx, s.userID, s.quizID)
	switch {
	case errors.Is(err, util.ErrAnswerNotFound):
		return s.activate(ctx, quiz.Questions[0].ID)
	case err != nil:
		return err
	}
	if quiz.QuestionIndex(active.QuestionID) < 0 {
		return s.activate(ctx, quiz.Questions[0].ID)
	}
	s.onActivated(active)
	return nil
}

func (s *Session) View() (View, error) {
	if s.active == nil {
		return View{}, ErrNotStarted
	}
	idx := s.quiz.QuestionIndex(s.active.QuestionID)
	question := &s.quiz.Questions[idx]
	return View{
		Position:   idx + 1,
		Total:      len(s.quiz.Questions),
		QuestionID: question.ID,
		Content:    question.Content,
		Choices:    append([]model.Choice(nil), s.choices...),
		Selected:   s.active.SelectedChoiceIndex,
		Elapsed:    s.watch.Elapsed(),
		IsFirst:    idx == 0,
		IsLast:     idx == len(s.quiz.Questions)-1,
	}, nil
}

// Select 记录选择并同步当前用时；不重新打乱选项顺序
func (s *Session) Select(ctx context.Context, choiceIndex int) error {
	if err := s.ready(); err != nil {
		return err
	}
	seconds := s.watch.Elapsed()
	answer, err := s.api.SubmitAnswer(ctx, service.SubmitAnswerInput{
		UserID:              s.userID,
		QuizID:              s.quizID,
		QuestionID:          s.active.QuestionID,
		SelectedChoiceIndex: &choiceIndex,
		SecondsOnQuestion:   &seconds,
	})
	if err != nil {
		return err
	}
	s.active = answer
	return nil
}

// Next 最后一题时标记测验完成并返回 true
func (s *Session) Next(ctx context.Context) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	if s.active.SelectedChoiceIndex == nil {
		return false, ErrNoSelection
	}
	if err := s.flush(ctx); err != nil {
		return false, err
	}

	next, ok := adjacentQuestion(s.quiz, s.active.QuestionID, 1)
	if !ok {
		if _, err := s.api.CompleteQuiz(ctx, s.userID, s.quizID); err != nil {
			return false, err
		}
		s.finished = true
		return true, nil
	}
	return false, s.activate(ctx, next)
}

// Back 第一题时不做任何操作
func (s *Session) Back(ctx context.Context) error {
	if err := s.ready(); err != nil {
		return err
	}
	prev, ok := adjacentQuestion(s.quiz, s.active.QuestionID, -1)
	if !ok {
		return nil
	}
	if err := s.flush(ctx); err != nil {
		return err
	}
	return s.activate(ctx, prev)
}

func (s *Session) Results(ctx context.Context) (*service.QuizResults, error) {
	return s.api.GetResults(ctx, s.userID, s.quizID)
}

func (s *Session) ready() error {
	if s.active == nil {
		return ErrNotStarted
	}
	if s.finished {
		return ErrFinished
	}
	return nil
}

// flush 离开题目前写回累计用时
func (s *Session) flush(ctx context.Context) error {
	seconds := s.watch.Elapsed()
	answer, err := s.api.SubmitAnswer(ctx, service.SubmitAnswerInput{
		UserID:            s.userID,
		QuizID:            s.quizID,
		QuestionID:        s.active.QuestionID,
		SecondsOnQuestion: &seconds,
	})
	if err != nil {
		return fmt.Errorf("save time for question %d: %w", s.active.QuestionID, err)
	}
	s.active = answer
	return nil
}

func (s *Session) activate(ctx context.Context, questionID uint) error {
	answer, err := s.api.SubmitAnswer(ctx, service.SubmitAnswerInput{
		UserID:     s.userID,
		QuizID:     s.quizID,
		QuestionID: questionID,
	})
	if err != nil {
		return err
	}
	s.onActivated(answer)
	return nil
}

// onActivated 激活事件：重新打乱选项并把计时器重置为已存储用时
func (s *Session) onActivated(answer *model.Answer) {
	s.active = answer
	question := s.quiz.FindQuestion(answer.QuestionID)
	s.choices = question.ChoiceList()
	s.shuffle(len(s.choices), func(i, j int) {
		s.choices[i], s.choices[j] = s.choices[j], s.choices[i]
	})
	s.watch.Reset(answer.SecondsOnQuestion)
}

func adjacentQuestion(quiz *model.Quiz, questionID uint, delta int) (uint, bool) {
	idx := quiz.QuestionIndex(questionID)
	if idx < 0 {
		return 0, false
	}
	target := idx + delta
	if target < 0 || target >= len(quiz.Questions) {
		return 0, false
	}
	return quiz.Questions[target].ID, true
}
