package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"quiz_progress_backend/internal/client"
	"quiz_progress_backend/internal/runner"
	"quiz_progress_backend/internal/service"
)

func main() {
	apiURL := flag.String("api", "http://localhost:3001", "后端地址")
	userID := flag.Uint("user", 1, "答题用户ID")
	quizID := flag.Uint("quiz", 1, "测验ID")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := client.New(*apiURL, 10*time.Second)
	session := runner.NewSession(api, uint(*userID), uint(*quizID))
	if err := session.Start(ctx); err != nil {
		log.Fatalf("Failed to start quiz: %v", err)
	}

	go session.Stopwatch().Run(ctx, time.Second)

	if err := loop(ctx, session, bufio.NewScanner(os.Stdin), os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// loop 输入选项编号作答，n 下一题，b 上一题，q 退出
func loop(ctx context.Context, s *runner.Session, in *bufio.Scanner, out io.Writer) error {
	for {
		view, err := s.View()
		if err != nil {
			return err
		}
		render(out, view)

		if !in.Scan() {
			return in.Err()
		}
		cmd := strings.TrimSpace(strings.ToLower(in.Text()))

		switch cmd {
		case "q":
			return nil
		case "b":
			err = s.Back(ctx)
		case "n":
			var done bool
			done, err = s.Next(ctx)
			if err == nil && done {
				res, err := s.Results(ctx)
				if err != nil {
					return err
				}
				printResults(out, res)
				return nil
			}
		default:
			n, convErr := strconv.Atoi(cmd)
			if convErr != nil || n < 1 || n > len(view.Choices) {
				fmt.Fprintln(out, "输入选项编号，n 下一题，b 上一题，q 退出")
				continue
			}
			err = s.Select(ctx, view.Choices[n-1].Index)
		}

		if errors.Is(err, runner.ErrNoSelection) {
			fmt.Fprintln(out, err)
			continue
		}
		if err != nil {
			return err
		}
	}
}

func render(out io.Writer, v runner.View) {
	fmt.Fprintf(out, "\n[%d/%d] %s   (%s)\n", v.Position, v.Total, v.Content, service.FormatDuration(v.Elapsed))
	for i, choice := range v.Choices {
		mark := " "
		if v.Selected != nil && *v.Selected == choice.Index {
			mark = "*"
		}
		fmt.Fprintf(out, " %s %d) %s\n", mark, i+1, choice.Text)
	}
	next := "n 下一题"
	if v.IsLast {
		next = "n 提交"
	}
	if v.IsFirst {
		fmt.Fprintf(out, "> %s | q 退出: ", next)
	} else {
		fmt.Fprintf(out, "> %s | b 上一题 | q 退出: ", next)
	}
}

func printResults(out io.Writer, res *service.QuizResults) {
	fmt.Fprintf(out, "\n%s  得分 %d/%d  用时 %s\n", res.Title, res.CorrectCount, res.QuestionCount, res.TotalTime)
	for _, item := range res.Items {
		status := "✗"
		if item.Correct {
			status = "✓"
		}
		fmt.Fprintf(out, "%s %d. %s\n    %s\n", status, item.Position, item.Content, item.AnswerText)
	}
}
