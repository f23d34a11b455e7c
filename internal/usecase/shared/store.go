package shared

import (
	"context"
	"log/slog"

	"parkstay/internal/domain/reservation"
	"parkstay/internal/domain/unit"
	"parkstay/internal/domain/user"
	"parkstay/internal/infra/converter"
	"parkstay/internal/metrics"
	"parkstay/internal/pkg/errs"
	"parkstay/internal/pkg/rawrecord"
)

//go:generate mockgen -source=store.go -destination=../../../tests/mock/shared/store.go -package=mock_shared

// RawSnapshot holds every sheet exactly as stored, rows in sheet order.
type RawSnapshot struct {
	Units    []rawrecord.Record
	Bookings []rawrecord.Record
	Users    []rawrecord.Record
}

func (s *RawSnapshot) Rows(sheet converter.Sheet) []rawrecord.Record {
	switch sheet {
	case converter.SheetUnits:
		return s.Units
	case converter.SheetBookings:
		return s.Bookings
	case converter.SheetUsers:
		return s.Users
	default:
		return nil
	}
}

// SheetStore is the tabular backing store. Rows are addressed by the id the
// normaliser gives them, which for id-less rows is their synthetic position id.
type SheetStore interface {
	ReadAll(ctx context.Context) (*RawSnapshot, error)
	// Upsert replaces the row addressed by id, or appends rec when none matches.
	Upsert(ctx context.Context, sheet converter.Sheet, id string, rec rawrecord.Record) error
	Delete(ctx context.Context, sheet converter.Sheet, id string) error
	// Clear removes every row of sheet and returns how many were removed.
	Clear(ctx context.Context, sheet converter.Sheet) (int, error)
}

// Snapshot is the normalised view of the store at one point in time.
type Snapshot struct {
	Units        []*unit.Unit
	Reservations []*reservation.Reservation
	Users        []*user.User
}

func (s *Snapshot) UnitByID(id string) (*unit.Unit, bool) {
	for _, u := range s.Units {
		if u.ID() == id {
			return u, true
		}
	}
	return nil, false
}

func (s *Snapshot) ReservationByID(id string) (*reservation.Reservation, bool) {
	for _, r := range s.Reservations {
		if r.ID() == id {
			return r, true
		}
	}
	return nil, false
}

func (s *Snapshot) UserByID(id string) (*user.User, bool) {
	for _, u := range s.Users {
		if u.ID() == id {
			return u, true
		}
	}
	return nil, false
}

type SnapshotLoader struct {
	store      SheetStore
	normalizer *converter.Normalizer
	logger     *slog.Logger
}

func NewSnapshotLoader(store SheetStore, normalizer *converter.Normalizer, logger *slog.Logger) *SnapshotLoader {
	return &SnapshotLoader{store: store, normalizer: normalizer, logger: logger}
}

// Load reads all sheets and normalises them. Each call reflects the store as it is now.
func (l *SnapshotLoader) Load(ctx context.Context) (*Snapshot, error) {
	raw, err := l.store.ReadAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	snap := &Snapshot{
		Units:        l.normalizer.Units(raw.Units),
		Reservations: l.normalizer.Reservations(raw.Bookings),
		Users:        l.normalizer.Users(raw.Users),
	}

	metrics.RowsNormalized.WithLabelValues(converter.SheetUnits.String()).Add(float64(len(raw.Units)))
	metrics.RowsNormalized.WithLabelValues(converter.SheetBookings.String()).Add(float64(len(raw.Bookings)))
	metrics.RowsNormalized.WithLabelValues(converter.SheetUsers.String()).Add(float64(len(raw.Users)))

	l.logger.Debug("snapshot loaded",
		slog.Int("units", len(snap.Units)),
		slog.Int("reservations", len(snap.Reservations)),
		slog.Int("users", len(snap.Users)),
	)
	return snap, nil
}

func (l *SnapshotLoader) Normalizer() *converter.Normalizer {
	return l.normalizer
}
