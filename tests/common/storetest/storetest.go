//go:build unit || e2e

package storetest

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"parkstay/internal/infra/converter"
	"parkstay/internal/infra/sheetstore"
	"parkstay/internal/pkg/clock"
	"parkstay/internal/pkg/rawrecord"
	"parkstay/internal/usecase/shared"

	"github.com/stretchr/testify/require"
)

// Bangkok is the calendar zone used across the engine tests.
var Bangkok = time.FixedZone("ICT", 7*60*60)

// Env bundles an in-memory store with a loader driven by a fixed clock.
type Env struct {
	Store  *sheetstore.MemoryStore
	Clock  *clock.MockClock
	Loader *shared.SnapshotLoader
	Logger *slog.Logger
}

// NewEnv starts at 2024-06-01 09:00 Bangkok time.
func NewEnv(t *testing.T) *Env {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	clk := clock.NewMockClock(time.Date(2024, 6, 1, 2, 0, 0, 0, time.UTC))
	store := sheetstore.NewMemoryStore(logger)
	return &Env{
		Store:  store,
		Clock:  clk,
		Loader: shared.NewSnapshotLoader(store, converter.NewNormalizer(clk, Bangkok), logger),
		Logger: logger,
	}
}

func (e *Env) Seed(t *testing.T, sheet converter.Sheet, recs ...rawrecord.Record) {
	t.Helper()
	ctx := context.Background()
	raw, err := e.Store.ReadAll(ctx)
	require.NoError(t, err)
	offset := len(raw.Rows(sheet))
	for i, rec := range recs {
		require.NoError(t, e.Store.Upsert(ctx, sheet, converter.RowID(sheet, rec, offset+i), rec))
	}
}

func (e *Env) Snapshot(t *testing.T) *shared.Snapshot {
	t.Helper()
	snap, err := e.Loader.Load(context.Background())
	require.NoError(t, err)
	return snap
}
