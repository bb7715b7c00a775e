package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/storebot/internal/application/catalog"
	"github.com/jhoicas/storebot/internal/application/session"
	"github.com/jhoicas/storebot/internal/application/usecase"
	"github.com/jhoicas/storebot/internal/domain"
	"github.com/jhoicas/storebot/internal/infrastructure/excel"
	"github.com/jhoicas/storebot/internal/infrastructure/inmemory"
	httpiface "github.com/jhoicas/storebot/internal/interfaces/http"
	"github.com/jhoicas/storebot/internal/interfaces/telegram"
	"github.com/jhoicas/storebot/pkg/config"
	"github.com/jhoicas/storebot/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	source := excel.NewTableSource(cfg.Catalog.File, cfg.Catalog.Sheet)
	store := inmemory.NewCatalogStore(source, catalog.Parse)

	// A catalog that fails to load is loud but not fatal: the bot keeps
	// serving with zero products until an admin reload succeeds.
	count, err := store.Reload()
	switch {
	case errors.Is(err, domain.ErrMissingColumns):
		log.Error().Err(err).Str("file", cfg.Catalog.File).Msg("catalog headers not found, starting empty")
	case err != nil:
		log.Error().Err(err).Str("file", cfg.Catalog.File).Msg("catalog load failed, starting empty")
	default:
		log.Info().Int("products", count).Msg("catalog loaded")
	}

	sessions := session.NewManager()
	shopUC := usecase.NewShopUseCase(store, sessions, usecase.ContactInfo{
		Phone:       cfg.Contact.Phone,
		TelURL:      cfg.Contact.TelURL,
		WhatsAppURL: cfg.Contact.WhatsAppURL,
	})
	adminUC := usecase.NewAdminUseCase(store, sessions, cfg.Bot.AdminIDs, log)
	dispatcher := usecase.NewDispatcher(shopUC, adminUC, sessions)

	bot, err := telegram.New(cfg.Bot.Token, dispatcher, log)
	if err != nil {
		log.Fatal().Err(err).Msg("telegram bot init")
	}

	app := httpiface.NewApp(cfg.App.Name, store)
	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("health server stopped")
		}
	}()

	go bot.Start()
	log.Info().Int("admins", len(cfg.Bot.AdminIDs)).Msg("bot started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping...")

	bot.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("health server shutdown")
	}

	log.Info().Msg("application stopped")
}
