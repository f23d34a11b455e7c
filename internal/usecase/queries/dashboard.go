package queries

import (
	"context"
	"strings"

	"parkstay/internal/domain/occupancy"
	"parkstay/internal/domain/reservation"
	"parkstay/internal/domain/unit"
	"parkstay/internal/pkg/errs"
	"parkstay/internal/pkg/flexdate"
	"parkstay/internal/usecase/shared"
)

//go:generate mockgen -source=dashboard.go -destination=../../../tests/mock/queries/dashboard.go -package=mock_queries

type DashboardQueries interface {
	// Stats summarises the month or year containing anchor. An empty anchor means today.
	Stats(ctx context.Context, mode occupancy.Mode, anchor string) (*occupancy.Summary, error)
	Today(ctx context.Context) (*TodayView, error)
	// Calendar lays out the month containing anchor as a unit-by-day grid.
	Calendar(ctx context.Context, anchor string) (*CalendarView, error)
}

type dashboardQueriesImpl struct {
	loader *shared.SnapshotLoader
}

func NewDashboardQueries(loader *shared.SnapshotLoader) DashboardQueries {
	return &dashboardQueriesImpl{loader: loader}
}

func (q *dashboardQueriesImpl) Stats(ctx context.Context, mode occupancy.Mode, anchor string) (*occupancy.Summary, error) {
	if mode == "" {
		mode = occupancy.ModeMonth
	}
	at, err := resolveAnchor(anchor, q.loader.Normalizer().Today())
	if err != nil {
		return nil, err
	}
	period, err := occupancy.NewPeriod(occupancy.Mode(strings.ToLower(string(mode))), at)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	snap, err := q.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	summary := occupancy.Aggregate(period, snap.Reservations, snap.Units)
	return &summary, nil
}

func (q *dashboardQueriesImpl) Today(ctx context.Context) (*TodayView, error) {
	snap, err := q.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	day := q.loader.Normalizer().Today()
	occupied := reservation.CountOccupiedOn(day, snap.Reservations)
	active := unit.CountActive(snap.Units)

	return &TodayView{
		Date:        day,
		Occupied:    occupied,
		ActiveUnits: active,
		Available:   max(0, active-occupied),
	}, nil
}

func (q *dashboardQueriesImpl) Calendar(ctx context.Context, anchor string) (*CalendarView, error) {
	at, err := resolveAnchor(anchor, q.loader.Normalizer().Today())
	if err != nil {
		return nil, err
	}

	snap, err := q.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	view := &CalendarView{
		Year:  at.Year(),
		Month: at.Month(),
		Days:  flexdate.MonthDays(at.Year(), at.Month()),
		Rows:  make([]CalendarRow, 0, len(snap.Units)),
	}
	for _, u := range snap.Units {
		row := CalendarRow{
			Unit:  u,
			VIP:   u.IsVIP(),
			Cells: make([]CalendarCell, len(view.Days)),
		}
		for i, day := range view.Days {
			row.Cells[i].Day = day
			if r, ok := reservation.OccupantOn(u.ID(), day, snap.Reservations); ok {
				row.Cells[i].Reservation = r
			}
		}
		view.Rows = append(view.Rows, row)
	}
	return view, nil
}
