package main

import (
	"bytes"
	"strings"
	"testing"

	"quiz_progress_backend/internal/model"
	"quiz_progress_backend/internal/runner"
	"quiz_progress_backend/internal/service"
)

func TestRenderMarksSelection(t *testing.T) {
	selected := 0
	var buf bytes.Buffer
	render(&buf, runner.View{
		Position: 1,
		Total:    2,
		Content:  "What does go vet do?",
		Choices:  []model.Choice{{Index: 1, Text: "formats code"}, {Index: 0, Text: "reports suspicious constructs"}},
		Selected: &selected,
		Elapsed:  65,
		IsFirst:  true,
	})

	out := buf.String()
	if !strings.Contains(out, "[1/2]") || !strings.Contains(out, "(1m 5s)") {
		t.Fatalf("header missing: %q", out)
	}
	if !strings.Contains(out, "* 2) reports suspicious constructs") {
		t.Fatalf("selection not marked: %q", out)
	}
	if strings.Contains(out, "b 上一题") {
		t.Fatalf("first question offers back: %q", out)
	}
}

func TestPrintResults(t *testing.T) {
	var buf bytes.Buffer
	printResults(&buf, &service.QuizResults{
		Title:         "Go basics",
		CorrectCount:  1,
		QuestionCount: 2,
		TotalTime:     "1m 5s",
		Items: []service.ResultItem{
			{Position: 1, Content: "q1", AnswerText: "right", Correct: true},
			{Position: 2, Content: "q2", AnswerText: service.NoAnswerText},
		},
	})
	out := buf.String()
	if !strings.Contains(out, "得分 1/2") || !strings.Contains(out, service.NoAnswerText) {
		t.Fatalf("output = %q", out)
	}
}
