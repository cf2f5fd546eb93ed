// grant-access — административная утилита выдачи доступа в обход вебхука:
// включает право доступа для email и печатает свежую ссылку доступа.
//
// Использование:
//
//	grant-access [--config path] buyer@example.com
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/paygate/access-service/internal/config"
	"github.com/paygate/access-service/internal/service"
	"github.com/paygate/access-service/internal/storage/redis"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: grant-access [--config path] <email>")
		os.Exit(2)
	}
	email := flag.Arg(0)

	cfg := config.MustLoad(configPath)

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := redis.New(ctx, cfg.Redis.RedisURL, cfg.Redis.KeyPrefix)
	if err != nil {
		log.Error("redis_connect_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	// Почта и контент здесь не нужны.
	srvc := service.New(store, nil, nil, cfg)

	url, err := srvc.GrantAccess(ctx, email)
	if err != nil {
		log.Error("grant_access_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	fmt.Println(url)
}
