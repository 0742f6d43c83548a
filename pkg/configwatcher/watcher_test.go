package configwatcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"quiz_progress_backend/internal/config"
)

const baseConfig = `
server:
  port: "3001"
  mode: release
log:
  level: info
rate_limit:
  max_requests: 100
  window_minutes: 1
`

func TestWatchConfigReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(file, []byte(baseConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *config.Config, 1)
	done := make(chan error, 1)
	go func() {
		done <- WatchConfig(ctx, file, func(cfg *config.Config) {
			select {
			case reloaded <- cfg:
			default:
			}
		})
	}()

	// 等待 watcher 完成注册
	time.Sleep(200 * time.Millisecond)
	updated := []byte(baseConfig + "\n")
	updated = append(updated, []byte("jobs:\n  active_sessions_spec: \"@every 5m\"\n")...)
	if err := os.WriteFile(file, updated, 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.Jobs.ActiveSessionsSpec != "@every 5m" {
			t.Fatalf("reloaded spec = %q", cfg.Jobs.ActiveSessionsSpec)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("WatchConfig returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("WatchConfig did not stop after cancel")
	}
}
