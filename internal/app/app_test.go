package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"quiz_progress_backend/internal/config"
	"quiz_progress_backend/internal/controller"
	"quiz_progress_backend/internal/model"
	"quiz_progress_backend/internal/service"
	"quiz_progress_backend/internal/util"
	"quiz_progress_backend/pkg/database"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := &config.Config{
		Server:    config.ServerConfig{Mode: "test"},
		Database:  config.DatabaseConfig{Driver: "sqlite", Path: ":memory:", LogLevel: "silent"},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		RateLimit: config.RateLimitConfig{MaxRequests: 10000, WindowMinutes: 1},
	}
	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	err = database.Seed(db, &database.SeedData{
		Users: []database.SeedUser{{ID: 1, Name: "Ada", Email: "ada@example.com"}},
		Quizzes: []database.SeedQuiz{{
			ID:    1,
			Title: "Go basics",
			Questions: []database.SeedQuestion{
				{Content: "q1", Choices: []string{"right", "wrong"}},
				{Content: "q2", Choices: []string{"right", "wrong"}},
			},
		}},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return New(cfg, db, nil)
}

func do(t *testing.T, a *App, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
}

func questionIDs(t *testing.T, a *App) []uint {
	t.Helper()
	w := do(t, a, http.MethodGet, "/api/quiz/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get quiz: %d %s", w.Code, w.Body.String())
	}
	var quiz model.Quiz
	decode(t, w, &quiz)
	ids := make([]uint, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		ids = append(ids, q.ID)
	}
	return ids
}

func TestHealth(t *testing.T) {
	a := newTestApp(t)
	w := do(t, a, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health: %d", w.Code)
	}
	var status util.StatusResponse
	decode(t, w, &status)
	if status.Status != "ok" {
		t.Fatalf("status = %q", status.Status)
	}
}

func TestQuizFlow(t *testing.T) {
	a := newTestApp(t)
	ids := questionIDs(t, a)
	if len(ids) != 2 {
		t.Fatalf("questions = %v", ids)
	}

	w := do(t, a, http.MethodGet, "/api/quizzes/active-answer/1/1", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("active before start: %d", w.Code)
	}

	zero, one, secs := 0, 1, 12
	steps := []service.SubmitAnswerInput{
		{UserID: 1, QuizID: 1, QuestionID: ids[0]},
		{UserID: 1, QuizID: 1, QuestionID: ids[0], SelectedChoiceIndex: &zero, SecondsOnQuestion: &secs},
		{UserID: 1, QuizID: 1, QuestionID: ids[1], SelectedChoiceIndex: &one},
	}
	for _, in := range steps {
		if w := do(t, a, http.MethodPost, "/api/quizzes/submit-answer", in); w.Code != http.StatusOK {
			t.Fatalf("submit %+v: %d %s", in, w.Code, w.Body.String())
		}
	}

	w = do(t, a, http.MethodGet, "/api/quizzes/active-answer/1/1", nil)
	var active model.Answer
	decode(t, w, &active)
	if active.QuestionID != ids[1] || !active.IsActive {
		t.Fatalf("active = %+v", active)
	}

	w = do(t, a, http.MethodGet, "/api/quizzes/answers/1/1", nil)
	var answers []model.Answer
	decode(t, w, &answers)
	if len(answers) != 2 {
		t.Fatalf("answers = %d", len(answers))
	}

	w = do(t, a, http.MethodGet, "/api/quizzes/progress/1/1", nil)
	var progress service.Progress
	decode(t, w, &progress)
	if progress.CurrentIndex != 1 || progress.Total != 2 || progress.Percent != 50 {
		t.Fatalf("progress = %+v", progress)
	}

	w = do(t, a, http.MethodPost, "/api/user/complete-quiz", service.CompleteQuizInput{UserID: 1, QuizID: 1})
	var completed controller.CompleteQuizResponse
	decode(t, w, &completed)
	if completed.Status != "ok" || len(completed.CompletedQuizIDs) != 1 {
		t.Fatalf("complete = %+v", completed)
	}

	w = do(t, a, http.MethodGet, "/api/quizzes/results/1/1", nil)
	var results service.QuizResults
	decode(t, w, &results)
	if !results.Completed || results.CorrectCount != 1 || results.TotalTime != "12s" {
		t.Fatalf("results = %+v", results)
	}

	w = do(t, a, http.MethodGet, "/api/user/1", nil)
	var user model.User
	decode(t, w, &user)
	if !user.HasCompleted(1) {
		t.Fatalf("user = %+v", user)
	}
}

func TestErrorResponses(t *testing.T) {
	a := newTestApp(t)
	ids := questionIDs(t, a)
	bad := 5

	cases := []struct {
		name   string
		method string
		path   string
		body   interface{}
		code   int
	}{
		{"malformed user id", http.MethodGet, "/api/user/abc", nil, http.StatusBadRequest},
		{"zero quiz id", http.MethodGet, "/api/quizzes/progress/1/0", nil, http.StatusBadRequest},
		{"unknown user", http.MethodGet, "/api/user/42", nil, http.StatusNotFound},
		{"unknown quiz", http.MethodGet, "/api/quiz/42", nil, http.StatusNotFound},
		{"missing question id", http.MethodPost, "/api/quizzes/submit-answer", map[string]int{"user_id": 1, "quiz_id": 1}, http.StatusBadRequest},
		{"choice out of range", http.MethodPost, "/api/quizzes/submit-answer", service.SubmitAnswerInput{UserID: 1, QuizID: 1, QuestionID: ids[0], SelectedChoiceIndex: &bad}, http.StatusBadRequest},
		{"submit for unknown user", http.MethodPost, "/api/quizzes/submit-answer", service.SubmitAnswerInput{UserID: 42, QuizID: 1, QuestionID: ids[0]}, http.StatusNotFound},
		{"complete unknown quiz", http.MethodPost, "/api/user/complete-quiz", service.CompleteQuizInput{UserID: 1, QuizID: 42}, http.StatusNotFound},
		{"invalid json", http.MethodPost, "/api/user/complete-quiz", "not an object", http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, a, tc.method, tc.path, tc.body)
			if w.Code != tc.code {
				t.Fatalf("code = %d, want %d (%s)", w.Code, tc.code, w.Body.String())
			}
			var resp util.ErrorResponse
			decode(t, w, &resp)
			if resp.Error == "" {
				t.Fatal("empty error message")
			}
		})
	}
}

func TestMetricsAndListings(t *testing.T) {
	a := newTestApp(t)

	for _, path := range []string{"/api/users", "/api/quizzes", "/metrics"} {
		if w := do(t, a, http.MethodGet, path, nil); w.Code != http.StatusOK {
			t.Fatalf("%s: %d", path, w.Code)
		}
	}
}

func TestConfigCallbacksUpdateLimiter(t *testing.T) {
	a := newTestApp(t)
	cfg := *a.Config
	cfg.RateLimit = config.RateLimitConfig{MaxRequests: 1, WindowMinutes: 60}
	a.applyConfig(&cfg)

	// 更新后新的客户端只有 1 次额度
	first := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	first.RemoteAddr = "10.0.0.9:1234"
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, first)
	if w.Code != http.StatusOK {
		t.Fatalf("first request: %d", w.Code)
	}

	second := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	second.RemoteAddr = "10.0.0.9:1234"
	w = httptest.NewRecorder()
	a.Router.ServeHTTP(w, second)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: %d", w.Code)
	}
}
