//go:build unit || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"parkstay/internal/pkg/rawrecord"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type f = rawrecord.Field

// ReferenceUnits are present after every ResetDB. h2 is under maintenance.
var ReferenceUnits = []rawrecord.Record{
	rawrecord.Of(f{"รหัส", "h1"}, f{"ชื่อบ้านพัก", "บ้านชมดาว 1"}, f{"โซน", "โซน A"}, f{"จำนวนคน", 4}, f{"ราคาต่อคืน", 1500}, f{"สถานะ", "active"}),
	rawrecord.Of(f{"รหัส", "h2"}, f{"ชื่อบ้านพัก", "เรือนริมน้ำ 2"}, f{"โซน", "โซน B"}, f{"จำนวนคน", 2}, f{"ราคาต่อคืน", 1200}, f{"สถานะ", "ปิดซ่อม"}),
	rawrecord.Of(f{"รหัส", "h3"}, f{"ชื่อบ้านพัก", "บ้านพักรับรองพิเศษ"}, f{"โซน", "VIP"}, f{"จำนวนคน", 10}, f{"ราคาต่อคืน", 5000}, f{"สถานะ", "active"}),
}

// InsertRow appends rec to the end of sheet, keeping its key order.
func InsertRow(t *testing.T, db DBLike, sheet string, rec rawrecord.Record) {
	t.Helper()

	payload, err := json.Marshal(rec)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(), "INSERT INTO sheet_rows (sheet, payload) VALUES ($1, $2::json)", sheet, string(payload))
	require.NoError(t, err)
}

func CountRows(t *testing.T, db DBLike, sheet string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM sheet_rows WHERE sheet = $1", sheet).Scan(&n)
	require.NoError(t, err)
	return n
}

// RowPayloads returns the raw JSON of sheet in storage order.
func RowPayloads(t *testing.T, pool *pgxpool.Pool, sheet string) []string {
	t.Helper()

	rows, err := pool.Query(context.Background(), "SELECT payload::text FROM sheet_rows WHERE sheet = $1 ORDER BY position", sheet)
	require.NoError(t, err)
	defer rows.Close()

	var out []string
	for rows.Next() {
		var p string
		require.NoError(t, rows.Scan(&p))
		out = append(out, p)
	}
	require.NoError(t, rows.Err())
	return out
}

// inserts the reference units needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	for _, rec := range ReferenceUnits {
		payload, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, "INSERT INTO sheet_rows (sheet, payload) VALUES ('units', $1::json)", string(payload)); err != nil {
			return err
		}
	}
	return nil
}

// truncates every sheet and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, "TRUNCATE sheet_rows RESTART IDENTITY"); err != nil {
		return err
	}
	return SeedReferenceData(pool)
}
