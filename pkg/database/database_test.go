package database

import (
	"os"
	"path/filepath"
	"testing"

	"quiz_progress_backend/internal/config"
	"quiz_progress_backend/internal/model"
)

func openTestDB(t *testing.T) *config.DatabaseConfig {
	t.Helper()
	return &config.DatabaseConfig{Driver: "sqlite", Path: ":memory:", LogLevel: "silent"}
}

func TestInitDBRejectsUnknownDriver(t *testing.T) {
	if _, err := InitDB(&config.DatabaseConfig{Driver: "oracle"}); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db, err := InitDB(openTestDB(t))
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}

	seedYAML := `
users:
  - id: 1
    name: Ada
    email: ada@example.com
quizzes:
  - id: 7
    title: Basics
    questions:
      - content: first?
        choices: [a, b, c]
      - content: second?
        choices: [x, y]
`
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(seedYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	data, err := LoadSeedFile(path)
	if err != nil {
		t.Fatalf("LoadSeedFile: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := Seed(db, data); err != nil {
			t.Fatalf("Seed run %d: %v", i, err)
		}
	}

	var users, questions int64
	db.Model(&model.User{}).Count(&users)
	db.Model(&model.Question{}).Count(&questions)
	if users != 1 || questions != 2 {
		t.Fatalf("users=%d questions=%d, want 1 and 2", users, questions)
	}

	var quiz model.Quiz
	if err := db.Preload("Questions").First(&quiz, 7).Error; err != nil {
		t.Fatalf("load quiz: %v", err)
	}
	if got := quiz.Questions[0].ChoiceList(); len(got) != 3 || got[0].Text != "a" || got[2].Index != 2 {
		t.Fatalf("unexpected choices %+v", got)
	}

	var user model.User
	if err := db.First(&user, 1).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if len(user.CompletedQuizIDs) != 0 {
		t.Fatalf("completed = %v, want empty", user.CompletedQuizIDs)
	}
}

func TestSeedRejectsQuestionWithoutChoices(t *testing.T) {
	db, err := InitDB(openTestDB(t))
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	data := &SeedData{Quizzes: []SeedQuiz{{ID: 1, Title: "broken", Questions: []SeedQuestion{{Content: "?"}}}}}
	if err := Seed(db, data); err == nil {
		t.Fatal("expected error")
	}
}

func TestInitRedisDisabled(t *testing.T) {
	rdb, err := InitRedis(&config.RedisConfig{Enabled: false})
	if err != nil || rdb != nil {
		t.Fatalf("got (%v, %v), want (nil, nil)", rdb, err)
	}
}
