package queries

import (
	"context"

	"parkstay/internal/infra/converter"
	"parkstay/internal/pkg/errs"
	"parkstay/internal/pkg/rawrecord"
	"parkstay/internal/usecase/shared"
)

//go:generate mockgen -source=snapshot.go -destination=../../../tests/mock/queries/snapshot.go -package=mock_queries

var ErrUnknownSheet = errs.New("unknown sheet")

type SnapshotQueries interface {
	Snapshot(ctx context.Context) (*shared.Snapshot, error)
	// NormalizeRows runs the sheet's normaliser over rows without touching the store.
	NormalizeRows(sheet converter.Sheet, rows []rawrecord.Record) (*NormalizedRows, error)
}

type snapshotQueriesImpl struct {
	loader *shared.SnapshotLoader
}

func NewSnapshotQueries(loader *shared.SnapshotLoader) SnapshotQueries {
	return &snapshotQueriesImpl{loader: loader}
}

func (q *snapshotQueriesImpl) Snapshot(ctx context.Context) (*shared.Snapshot, error) {
	return q.loader.Load(ctx)
}

func (q *snapshotQueriesImpl) NormalizeRows(sheet converter.Sheet, rows []rawrecord.Record) (*NormalizedRows, error) {
	n := q.loader.Normalizer()
	switch sheet {
	case converter.SheetUnits:
		return &NormalizedRows{Units: n.Units(rows)}, nil
	case converter.SheetBookings:
		return &NormalizedRows{Reservations: n.Reservations(rows)}, nil
	case converter.SheetUsers:
		return &NormalizedRows{Users: n.Users(rows)}, nil
	default:
		return nil, errs.Mark(errs.Wrapf(ErrUnknownSheet, "%q", sheet), errs.ErrDomainValidation)
	}
}
