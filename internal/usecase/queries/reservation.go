package queries

import (
	"context"
	"strings"

	"parkstay/internal/domain/occupancy"
	"parkstay/internal/domain/reservation"
	"parkstay/internal/pkg/errs"
	"parkstay/internal/usecase/shared"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation.go -package=mock_queries

var ErrInvalidExportMode = errs.New("export mode must be all, month or year")

type ConflictQuery struct {
	UnitID    string
	CheckIn   string
	CheckOut  string
	ExcludeID string
}

type ReservationQueries interface {
	// CheckConflict returns the booking blocking the stay, or nil when the unit is free.
	CheckConflict(ctx context.Context, q ConflictQuery) (*reservation.Reservation, error)
	// ExportSelection picks bookings whose check-in falls in the month or year of anchor.
	ExportSelection(ctx context.Context, mode ExportMode, anchor string) ([]ExportRow, error)
}

type reservationQueriesImpl struct {
	loader *shared.SnapshotLoader
}

func NewReservationQueries(loader *shared.SnapshotLoader) ReservationQueries {
	return &reservationQueriesImpl{loader: loader}
}

func (q *reservationQueriesImpl) CheckConflict(ctx context.Context, cq ConflictQuery) (*reservation.Reservation, error) {
	stay, err := reservation.NewStay(cq.CheckIn, cq.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStay)
	}

	snap, err := q.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	candidate := reservation.Candidate{
		UnitID:    strings.TrimSpace(cq.UnitID),
		Stay:      stay,
		ExcludeID: cq.ExcludeID,
	}
	if taken, found := reservation.FindConflict(candidate, snap.Reservations); found {
		return taken, nil
	}
	return nil, nil
}

func (q *reservationQueriesImpl) ExportSelection(ctx context.Context, mode ExportMode, anchor string) ([]ExportRow, error) {
	if mode == "" {
		mode = ExportAll
	}
	if !mode.IsValid() {
		return nil, errs.Mark(ErrInvalidExportMode, errs.ErrDomainValidation)
	}

	snap, err := q.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if mode == ExportAll {
		return exportRows(snap, snap.Reservations), nil
	}

	at, err := resolveAnchor(anchor, q.loader.Normalizer().Today())
	if err != nil {
		return nil, err
	}
	period, err := occupancy.NewPeriod(occupancy.Mode(mode), at)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	prefix := period.Prefix()
	selected := make([]*reservation.Reservation, 0, len(snap.Reservations))
	for _, r := range snap.Reservations {
		if strings.HasPrefix(r.CheckIn(), prefix) {
			selected = append(selected, r)
		}
	}
	return exportRows(snap, selected), nil
}

func exportRows(snap *shared.Snapshot, rs []*reservation.Reservation) []ExportRow {
	rows := make([]ExportRow, len(rs))
	for i, r := range rs {
		u, _ := snap.UnitByID(r.UnitID())
		rows[i] = ExportRow{Reservation: r, Unit: u}
	}
	return rows
}
