package main

import (
	"context"
	"log/slog"
	"os"

	sentrygo "github.com/getsentry/sentry-go"

	"contactbook/cli"
	"contactbook/contact"
	"contactbook/memory"
	"contactbook/pkg/config"
	"contactbook/pkg/sentry"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	// stdout belongs to the bot
	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		slog.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	book := contact.NewAddressBook()
	repo := memory.NewContactRepository(book)
	uc := contact.NewUsecase(repo, contact.RealClock{})

	bot := cli.Default(uc)
	bot.Prompt = cfg.Bot.Prompt

	slog.Info("bot started", "env", cfg.AppEnv)
	if err := bot.Run(context.Background()); err != nil {
		slog.Error("bot stopped with error", "error", err)
		sentry.Error(err)
		sentrygo.Flush(sentry.FlushTime)
		os.Exit(1)
	}
	slog.Info("bot stopped", "contacts", book.Len())
}
