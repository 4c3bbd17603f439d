package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/go-playground/validator/v10"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/keuanganbot/keuanganbot/internal/config"
	"github.com/keuanganbot/keuanganbot/internal/consumer"
	"github.com/keuanganbot/keuanganbot/internal/notifier"
	"github.com/keuanganbot/keuanganbot/internal/repository"
	"github.com/keuanganbot/keuanganbot/internal/server"
	"github.com/keuanganbot/keuanganbot/internal/service"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found")
	}

	cfg := config.Config{}
	if err := env.Parse(&cfg); err != nil {
		logrus.Fatalf("couldn't parse config: %v", err)
	}

	if err := repository.RunMigrations(cfg.PostgresEndpoint); err != nil {
		logrus.Fatal(err)
	}

	pool, err := pgxpool.Connect(ctx, cfg.PostgresEndpoint)
	if err != nil {
		logrus.Fatalf("couldn't connect to postgres: %v", err)
	}
	defer pool.Close()

	bot, err := tgbotapi.NewBotAPI(os.Getenv("TG_TOKEN"))
	if err != nil {
		logrus.Fatal(err)
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = cfg.Telegram.Timeout
	updatesChan := bot.GetUpdatesChan(u)

	usersRepo := repository.NewUsersPostgres(pool)
	financeRepo := repository.NewFinancePostgres(pool)
	tg := notifier.NewTelegram(bot)

	dispatcher := consumer.NewDispatcher(usersRepo,
		service.NewRecorder(financeRepo),
		service.NewBalancer(financeRepo),
		service.NewReporter(financeRepo),
		tg)

	tgBot := consumer.NewBot(bot, updatesChan, dispatcher)
	go tgBot.Consume(ctx)

	srv := server.New(usersRepo, validator.New(), tg)
	go func() {
		if err = srv.Router().Run(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logrus.Errorf("http server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, os.Interrupt)
	<-quit
	cancel()
	<-time.After(2 * time.Second)
}
