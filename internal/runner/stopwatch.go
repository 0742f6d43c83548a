package runner

import (
	"context"
	"sync"
	"time"
)

// Stopwatch 以秒计的答题计时器，Tick 由后台 goroutine 驱动
type Stopwatch struct {
	mu      sync.Mutex
	seconds int
}

// Reset 激活题目时以已存储的用时为起点，保证多次访问累计计时
func (w *Stopwatch) Reset(initial int) {
	if initial < 0 {
		initial = 0
	}
	w.mu.Lock()
	w.seconds = initial
	w.mu.Unlock()
}

func (w *Stopwatch) Tick() {
	w.mu.Lock()
	w.seconds++
	w.mu.Unlock()
}

func (w *Stopwatch) Elapsed() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.seconds
}

// Run 每隔 interval 计时一次，直到 ctx 取消
func (w *Stopwatch) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Tick()
		}
	}
}
