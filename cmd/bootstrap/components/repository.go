package components

import (
	"parkstay/internal/infra/converter"
	"parkstay/internal/pkg/clock"
	"parkstay/internal/pkg/config"
	"parkstay/internal/usecase/shared"

	"go.uber.org/fx"
)

// RepositoryModule turns the raw sheet store into normalised snapshots.
// It expects a shared.SheetStore from the store module.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewNormalizer,
		shared.NewSnapshotLoader,
	),
)

func NewNormalizer(cfg config.Config, clk clock.Clock) *converter.Normalizer {
	return converter.NewNormalizer(clk, cfg.Calendar.Location())
}
