package main

import (
	"context"
	"errors"
	"flag"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/goldchip/pocketcasino/internal/config"
	"github.com/goldchip/pocketcasino/internal/logging"
	"github.com/goldchip/pocketcasino/pkg/games/rules"
	user "github.com/goldchip/pocketcasino/pkg/repositories/user"
	"github.com/goldchip/pocketcasino/pkg/services/auth"
	"github.com/goldchip/pocketcasino/pkg/services/settings"
	"github.com/goldchip/pocketcasino/pkg/services/wallet"
	"github.com/goldchip/pocketcasino/pkg/storage"
	filestore "github.com/goldchip/pocketcasino/pkg/storage/file"
	memorystore "github.com/goldchip/pocketcasino/pkg/storage/memory"
	sqlitestore "github.com/goldchip/pocketcasino/pkg/storage/sqlite"
)

func main() {
	collectBonus := flag.Bool("bonus", false, "collect today's daily bonus")
	resetWallet := flag.Bool("reset", false, "reset the wallet to the starting balance")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fallback := logging.Init("info", false)
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := logging.Init(cfg.LogLevel, cfg.LogPretty)
	ctx := context.Background()

	store := openStore(cfg, logger)
	defer store.Close()

	walletService := wallet.NewService(store, logger)
	walletService.Load(ctx)

	settingsService := settings.NewService(store, logger)
	registry := rules.NewRegistry()
	authService := auth.NewService(openUserRepository(cfg, logger), store, walletService, logger)

	if *resetWallet {
		if err := walletService.ResetWallet(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to reset wallet")
		}
	}

	if *collectBonus {
		if _, err := walletService.CollectDailyBonus(ctx); err != nil {
			if errors.Is(err, wallet.ErrBonusAlreadyCollected) {
				logger.Info().Msg("daily bonus already collected today")
			} else {
				logger.Error().Err(err).Msg("failed to collect daily bonus")
			}
		} else {
			logger.Info().Int64("amount", wallet.DailyBonusAmount).Msg("daily bonus collected")
		}
	}

	snapshot := walletService.Snapshot()
	prefs := settingsService.Load(ctx)

	signedIn := "none"
	if u, err := authService.CurrentUser(ctx); err == nil {
		signedIn = u.Username
	} else if !errors.Is(err, auth.ErrNotAuthenticated) {
		logger.Warn().Err(err).Msg("failed to resolve current user")
	}

	logger.Info().
		Str("user", signedIn).
		Str("environment", cfg.Environment).
		Str("backend", cfg.StorageBackend).
		Int64("balance", snapshot.Balance).
		Int("transactions", len(snapshot.Transactions)).
		Bool("bonus_collected", snapshot.DailyBonusCollected).
		Str("theme", prefs.Theme).
		Strs("games", registry.List()).
		Msg("casino status")
}

// openStore opens the configured storage backend, falling back to
// memory so a broken data directory never prevents startup.
func openStore(cfg *config.Config, logger zerolog.Logger) storage.Store {
	switch cfg.StorageBackend {
	case "sqlite":
		store, err := sqlitestore.New(filepath.Join(cfg.DataDir, "casino.db"))
		if err == nil {
			return store
		}
		logger.Warn().Err(err).Msg("failed to open sqlite store, falling back to memory")
	case "file":
		store, err := filestore.New(filepath.Join(cfg.DataDir, "casino.json"))
		if err == nil {
			return store
		}
		logger.Warn().Err(err).Msg("failed to open file store, falling back to memory")
	case "memory":
	default:
		logger.Warn().Str("backend", cfg.StorageBackend).Msg("unknown storage backend, using memory")
	}

	logger.Info().Msg("using in-memory storage (data will be lost on exit)")
	return memorystore.New()
}

// openUserRepository pairs the account store with the configured
// backend, with the same fallback-to-memory behavior.
func openUserRepository(cfg *config.Config, logger zerolog.Logger) user.Repository {
	if cfg.StorageBackend == "sqlite" {
		repo, err := user.NewSQLiteRepository(filepath.Join(cfg.DataDir, "users.db"))
		if err == nil {
			return repo
		}
		logger.Warn().Err(err).Msg("failed to open sqlite user repository, falling back to memory")
	}
	return user.NewMemoryRepository()
}
