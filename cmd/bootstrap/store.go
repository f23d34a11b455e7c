package bootstrap

import (
	"context"
	"log/slog"

	"parkstay/internal/infra/converter"
	"parkstay/internal/infra/sheetstore"
	"parkstay/internal/pkg/config"
	"parkstay/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewSheetStore,
	),
)

// NewSheetStore picks the backing store from STORE_DRIVER. The memory store
// starts with the demo sheets when STORE_SEED is set.
func NewSheetStore(lc fx.Lifecycle, cfg config.Config, normalizer *converter.Normalizer, logger *slog.Logger) (shared.SheetStore, error) {
	if cfg.Store.Driver == config.StoreDriverPostgres {
		pool, err := NewDB(lc, cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("sheet store ready", slog.String("driver", config.StoreDriverPostgres))
		return sheetstore.NewPostgresStore(pool, logger), nil
	}

	store := sheetstore.NewMemoryStore(logger)
	if cfg.Store.Seed {
		if _, err := sheetstore.SeedIfEmpty(context.Background(), store, sheetstore.DemoRows(normalizer.Today()), logger); err != nil {
			return nil, err
		}
	}
	logger.Info("sheet store ready", slog.String("driver", config.StoreDriverMemory))
	return store, nil
}
