package main

import (
	"context"
	"errors"
	"os"

	"blackjack/config"
	"blackjack/internal/game/dealer"
	"blackjack/internal/game/engine"
	"blackjack/internal/game/manager"
	"blackjack/internal/history"
	"blackjack/internal/storage"
	"blackjack/internal/terminal"
	"blackjack/internal/utils"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func main() {
	_ = godotenv.Load()

	fs, err := config.Flags(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	cfg, err := config.Load(fs)
	if err != nil {
		log.Fatal("load config", "err", err)
	}

	logger, err := utils.NewLogger(os.Stderr, cfg.Log.Level)
	if err != nil {
		log.Fatal("init logger", "err", err)
	}
	ctx := context.Background()

	//-------------------------------------------------------
	// 1. 对局记录（内存或 Redis）
	//-------------------------------------------------------
	repo := history.NewMemoryRepo()
	if cfg.History.Backend == "redis" {
		rdb, err := storage.InitRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal("redis init failed", "err", err)
		}
		defer rdb.Close()
		repo = history.NewRedisRepo(rdb)
	}
	sessionID := uuid.NewString()
	hist := history.NewService(repo, sessionID, cfg.History.TTL, logger)

	//-------------------------------------------------------
	// 2. 终端输入输出 + 引擎
	//-------------------------------------------------------
	in := terminal.NewPrompter(os.Stdin, os.Stdout)
	screen := terminal.NewConsole(os.Stdout, cfg.Display.Color)
	eng := engine.NewEngine(dealer.NewDealer(cfg.Game.Seed), in, screen, logger)

	//-------------------------------------------------------
	// 3. 会话循环
	//-------------------------------------------------------
	logger.Info("session start", "session", sessionID, "bankroll", cfg.Game.Bankroll, "history", cfg.History.Backend)
	session := manager.NewSession(eng, in, screen, hist, cfg.Game.Bankroll, logger)
	if err := session.Run(ctx); err != nil {
		logger.Fatal("session aborted", "err", err)
	}
}
