//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"parkstay/internal/domain/occupancy"
	"parkstay/internal/infra/converter"
	"parkstay/internal/pkg/errs"
	"parkstay/internal/pkg/rawrecord"
	"parkstay/internal/usecase/queries"
	"parkstay/tests/common/builder"
	"parkstay/tests/common/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The env clock reads 2024-06-01 in Bangkok.
func seedPark(t *testing.T, env *storetest.Env) {
	t.Helper()
	env.Seed(t, converter.SheetUnits,
		builder.NewUnitBuilder().WithID("A1").WithPrice(1000).BuildRecord(),
		builder.NewUnitBuilder().WithID("B1").WithPrice(2000).BuildRecord(),
		builder.NewUnitBuilder().WithID("V1").WithZone("VIP รับรอง").WithPrice(5000).BuildRecord(),
		builder.NewUnitBuilder().WithID("M1").InMaintenance().BuildRecord(),
	)
	env.Seed(t, converter.SheetBookings,
		builder.NewReservationBuilder().WithID("b1").ForUnit("A1").Between("2024-06-01", "2024-06-03").BuildRecord(),
		builder.NewReservationBuilder().WithID("b2").ForUnit("B1").Between("2024-05-30", "2024-06-02").Pending().BuildRecord(),
		builder.NewReservationBuilder().WithID("b3").ForUnit("V1").Between("2024-06-01", "2024-06-02").Cancelled().BuildRecord(),
		builder.NewReservationBuilder().WithID("b4").ForUnit("V1").Between("2024-07-10", "2024-07-12").BuildRecord(),
		builder.NewReservationBuilder().WithID("b5").ForUnit("A1").Between("2023-12-30", "2024-01-02").BuildRecord(),
	)
}

func TestSnapshotQueries(t *testing.T) {
	env := storetest.NewEnv(t)
	seedPark(t, env)
	q := queries.NewSnapshotQueries(env.Loader)

	snap, err := q.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Units, 4)
	assert.Len(t, snap.Reservations, 5)

	var row rawrecord.Record
	row.Set("ชื่อบ้านพัก", "เรือนไม้")
	row.Set("จำนวนคน", "0")
	out, err := q.NormalizeRows(converter.SheetUnits, []rawrecord.Record{row})
	require.NoError(t, err)
	require.Len(t, out.Units, 1)
	assert.Equal(t, "gen_unit_0", out.Units[0].ID())
	assert.Equal(t, 2, out.Units[0].Capacity())
	assert.Nil(t, out.Reservations)

	_, err = q.NormalizeRows(converter.Sheet("payments"), nil)
	assert.ErrorIs(t, err, queries.ErrUnknownSheet)
	assert.ErrorIs(t, err, errs.ErrDomainValidation)
}

func TestCheckConflict(t *testing.T) {
	ctx := context.Background()
	env := storetest.NewEnv(t)
	seedPark(t, env)
	q := queries.NewReservationQueries(env.Loader)

	cases := []struct {
		name   string
		query  queries.ConflictQuery
		wantID string
	}{
		{name: "overlap", query: queries.ConflictQuery{UnitID: "A1", CheckIn: "2024-06-02", CheckOut: "2024-06-05"}, wantID: "b1"},
		{name: "back to back", query: queries.ConflictQuery{UnitID: "A1", CheckIn: "2024-06-03", CheckOut: "2024-06-05"}},
		{name: "pending holds the unit", query: queries.ConflictQuery{UnitID: "B1", CheckIn: "2024-06-01", CheckOut: "2024-06-02"}, wantID: "b2"},
		{name: "cancelled frees the unit", query: queries.ConflictQuery{UnitID: "V1", CheckIn: "2024-06-01", CheckOut: "2024-06-02"}},
		{name: "self excluded", query: queries.ConflictQuery{UnitID: "A1", CheckIn: "2024-06-01", CheckOut: "2024-06-04", ExcludeID: "b1"}},
		{name: "one night inside", query: queries.ConflictQuery{UnitID: "A1", CheckIn: "2024-06-02", CheckOut: "2024-06-03"}, wantID: "b1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := q.CheckConflict(ctx, tc.query)
			require.NoError(t, err)
			if tc.wantID == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tc.wantID, got.ID())
		})
	}

	_, err := q.CheckConflict(ctx, queries.ConflictQuery{UnitID: "A1", CheckIn: "2024-06-05", CheckOut: "2024-06-05"})
	assert.ErrorIs(t, err, errs.ErrInvalidStay)
}

func TestExportSelection(t *testing.T) {
	ctx := context.Background()
	env := storetest.NewEnv(t)
	seedPark(t, env)
	q := queries.NewReservationQueries(env.Loader)

	ids := func(mode queries.ExportMode, anchor string) []string {
		t.Helper()
		rs, err := q.ExportSelection(ctx, mode, anchor)
		require.NoError(t, err)
		out := make([]string, 0, len(rs))
		for _, r := range rs {
			out = append(out, r.Reservation.ID())
		}
		return out
	}

	assert.Equal(t, []string{"b1", "b2", "b3", "b4", "b5"}, ids(queries.ExportAll, ""))
	assert.Equal(t, []string{"b1", "b3"}, ids(queries.ExportMonth, ""))
	assert.Equal(t, []string{"b2"}, ids(queries.ExportMonth, "2024-05"))
	assert.Equal(t, []string{"b1", "b2", "b3", "b4"}, ids(queries.ExportYear, "2024-08-15"))
	assert.Equal(t, []string{"b5"}, ids(queries.ExportYear, "2023-01-01"))

	rows, err := q.ExportSelection(ctx, queries.ExportYear, "2024-07-01")
	require.NoError(t, err)
	require.NotNil(t, rows[0].Unit)
	assert.Equal(t, "A1", rows[0].Unit.ID())

	env.Seed(t, converter.SheetBookings,
		builder.NewReservationBuilder().WithID("b6").ForUnit("gone").Between("2024-09-01", "2024-09-02").BuildRecord(),
	)
	rows, err = q.ExportSelection(ctx, queries.ExportMonth, "2024-09")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].Unit)

	_, err = q.ExportSelection(ctx, "week", "")
	assert.ErrorIs(t, err, errs.ErrDomainValidation)
	_, err = q.ExportSelection(ctx, queries.ExportMonth, "June")
	assert.ErrorIs(t, err, queries.ErrInvalidAnchor)
}

func TestDashboardQueries_Stats(t *testing.T) {
	ctx := context.Background()
	env := storetest.NewEnv(t)
	seedPark(t, env)
	q := queries.NewDashboardQueries(env.Loader)

	june, err := q.Stats(ctx, occupancy.ModeMonth, "")
	require.NoError(t, err)
	assert.Equal(t, "2024-06", june.Period.Prefix())
	assert.Equal(t, 1, june.ConfirmedCount)
	assert.Equal(t, 2, june.OccupiedNights)
	assert.InDelta(t, 2000.0, june.Revenue, 0.001)
	assert.Equal(t, 3, june.ActiveUnits)
	assert.Equal(t, 90, june.CapacityNights)

	year, err := q.Stats(ctx, occupancy.ModeYear, "2024-03")
	require.NoError(t, err)
	assert.Equal(t, 3, year.ConfirmedCount)
	// b1 2 nights + b4 2 nights + b5 1 night inside 2024
	assert.Equal(t, 5, year.OccupiedNights)
	assert.InDelta(t, 2*1000+2*5000+1*1000, year.Revenue, 0.001)

	_, err = q.Stats(ctx, "week", "")
	assert.ErrorIs(t, err, errs.ErrDomainValidation)
}

func TestDashboardQueries_Today(t *testing.T) {
	ctx := context.Background()
	env := storetest.NewEnv(t)
	seedPark(t, env)
	q := queries.NewDashboardQueries(env.Loader)

	today, err := q.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", today.Date)
	// b1 and pending b2; b3 is cancelled
	assert.Equal(t, 2, today.Occupied)
	assert.Equal(t, 3, today.ActiveUnits)
	assert.Equal(t, 1, today.Available)

	env.Seed(t, converter.SheetBookings,
		builder.NewReservationBuilder().ForUnit("V1").Between("2024-06-01", "2024-06-02").BuildRecord(),
		builder.NewReservationBuilder().ForUnit("M1").Between("2024-06-01", "2024-06-02").BuildRecord(),
	)
	today, err = q.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, today.Occupied)
	assert.Zero(t, today.Available)

	env.Clock.Set(time.Date(2024, 6, 1, 17, 30, 0, 0, time.UTC))
	today, err = q.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-02", today.Date, "midnight is taken in the calendar zone")
}

func TestDashboardQueries_Calendar(t *testing.T) {
	ctx := context.Background()
	env := storetest.NewEnv(t)
	seedPark(t, env)
	q := queries.NewDashboardQueries(env.Loader)

	view, err := q.Calendar(ctx, "2024-06")
	require.NoError(t, err)
	assert.Equal(t, 2024, view.Year)
	assert.Equal(t, time.June, view.Month)
	require.Len(t, view.Days, 30)
	require.Len(t, view.Rows, 4)

	a1 := view.Rows[0]
	assert.Equal(t, "A1", a1.Unit.ID())
	assert.False(t, a1.VIP)
	require.NotNil(t, a1.Cells[0].Reservation)
	assert.Equal(t, "b1", a1.Cells[0].Reservation.ID())
	assert.Equal(t, "b1", a1.Cells[1].Reservation.ID())
	assert.Nil(t, a1.Cells[2].Reservation, "check-out day is free")

	b1 := view.Rows[1]
	assert.Equal(t, "b2", b1.Cells[0].Reservation.ID())
	assert.Nil(t, b1.Cells[1].Reservation)

	v1 := view.Rows[2]
	assert.True(t, v1.VIP)
	assert.Nil(t, v1.Cells[0].Reservation, "cancelled bookings are not drawn")

	_, err = q.Calendar(ctx, "not a month")
	assert.ErrorIs(t, err, queries.ErrInvalidAnchor)
}
