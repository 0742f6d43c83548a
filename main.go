// @title Quiz Progress 后端 API
// @version 1.0
// @description 测验答题进度服务：答案激活、完成标记、进度与结果。

// @contact.name API支持

// @host localhost:3001
// @BasePath /

package main

import (
	"flag"
	"log"

	"quiz_progress_backend/internal/app"
	"quiz_progress_backend/internal/config"
	"quiz_progress_backend/pkg/database"
	"quiz_progress_backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	seed := flag.Bool("seed", false, "启动前导入 seed.path 指定的示例用户与测验")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 设置迁移标志
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *seed {
		data, err := database.LoadSeedFile(cfg.Seed.Path)
		if err != nil {
			logger.Log.Fatal("Failed to load seed file", zap.String("path", cfg.Seed.Path), zap.Error(err))
		}
		if err := database.Seed(application.DB, data); err != nil {
			logger.Log.Fatal("Failed to seed database", zap.Error(err))
		}
		logger.Log.Info("Seed data imported", zap.Int("users", len(data.Users)), zap.Int("quizzes", len(data.Quizzes)))
	}

	// 迁移完成后直接退出
	if *migrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	application.Run()
}
