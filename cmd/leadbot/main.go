package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/signcontract/leadbot/internal/bot"
	"github.com/signcontract/leadbot/internal/config"
	"github.com/signcontract/leadbot/internal/conversation"
	"github.com/signcontract/leadbot/internal/lead"
	leadpostgres "github.com/signcontract/leadbot/internal/lead/postgres"
	leadsheets "github.com/signcontract/leadbot/internal/lead/sheets"
	"github.com/signcontract/leadbot/internal/logger"
	"github.com/signcontract/leadbot/internal/session"
	"github.com/signcontract/leadbot/internal/telegram"
)

const defaultConfigPath = "configs/config.yaml"

func main() {
	if err := run(); err != nil {
		log.Fatalf("leadbot: %v", err)
	}
}

func run() error {
	startedAt := time.Now()

	// .env is optional; real deployments pass environment directly.
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = defaultConfigPath
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Logging); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() {
		if err := logger.Shutdown(); err != nil {
			log.Printf("logger shutdown error: %v", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sink, stats, cleanup, err := buildLeadBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	engine := conversation.NewEngine(session.NewStore(), sink)
	app := bot.New(cfg, engine, stats)
	reg := app.Registry()

	logger.Info(ctx, "app", "ready",
		slog.String("backend", cfg.Leads.Backend),
		slog.Duration("startup_duration", logger.RoundMS(time.Since(startedAt))),
	)

	err = telegram.Run(ctx, telegram.RunOptions{
		Config:      cfg,
		Registry:    reg,
		Middlewares: telegram.DefaultMiddlewares(cfg, nil),
		Routes:      app.Routes(reg),
	})

	logger.Info(logger.Background(), "app", "shutdown")
	return err
}

// buildLeadBackend selects the lead storage implementation per config.
func buildLeadBackend(ctx context.Context, cfg *config.Config) (lead.Sink, lead.StatsProvider, func(), error) {
	switch cfg.Leads.Backend {
	case config.LeadBackendPostgres:
		if err := leadpostgres.RunMigrations(cfg.Database); err != nil {
			return nil, nil, nil, fmt.Errorf("migrate: %w", err)
		}
		db, err := leadpostgres.Connect(cfg.Database)
		if err != nil {
			return nil, nil, nil, err
		}
		store := leadpostgres.NewStore(db)
		return store, store, func() { _ = store.Close() }, nil
	default:
		client, err := leadsheets.New(ctx, cfg.Sheets)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("sheets: %w", err)
		}
		return client, client, func() {}, nil
	}
}
