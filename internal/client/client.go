package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"quiz_progress_backend/internal/model"
	"quiz_progress_backend/internal/service"
	"quiz_progress_backend/internal/util"
)

// Client 调用 /api 接口；400/404 响应分别映射为 util.ErrValidation / util.ErrNotFound
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) ListQuizzes(ctx context.Context) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := c.do(ctx, http.MethodGet, "/api/quizzes", nil, &quizzes)
	return quizzes, err
}

func (c *Client) GetUser(ctx context.Context, userID uint) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/user/%d", userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetQuiz(ctx context.Context, quizID uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/quiz/%d", quizID), nil, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

// GetActiveAnswer 尚未开始答题时返回 util.ErrAnswerNotFound
func (c *Client) GetActiveAnswer(ctx context.Context, userID, quizID uint) (*model.Answer, error) {
	var answer model.Answer
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/quizzes/active-answer/%d/%d", userID, quizID), nil, &answer)
	if errors.Is(err, util.ErrNotFound) {
		return nil, fmt.Errorf("%w: %v", util.ErrAnswerNotFound, err)
	}
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (c *Client) SubmitAnswer(ctx context.Context, in service.SubmitAnswerInput) (*model.Answer, error) {
	var answer model.Answer
	if err := c.do(ctx, http.MethodPost, "/api/quizzes/submit-answer", in, &answer); err != nil {
		return nil, err
	}
	return &answer, nil
}

func (c *Client) CompleteQuiz(ctx context.Context, userID, quizID uint) ([]uint, error) {
	var resp struct {
		Status           string `json:"status"`
		CompletedQuizIDs []uint `json:"completed_quiz_ids"`
	}
	in := service.CompleteQuizInput{UserID: userID, QuizID: quizID}
	if err := c.do(ctx, http.MethodPost, "/api/user/complete-quiz", in, &resp); err != nil {
		return nil, err
	}
	return resp.CompletedQuizIDs, nil
}

func (c *Client) GetResults(ctx context.Context, userID, quizID uint) (*service.QuizResults, error) {
	var res service.QuizResults
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/quizzes/results/%d/%d", userID, quizID), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var body util.ErrorResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(raw, &body); err != nil || body.Error == "" {
		body.Error = strings.TrimSpace(string(raw))
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", util.ErrValidation, body.Error)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", util.ErrNotFound, body.Error)
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body.Error)
	}
}
