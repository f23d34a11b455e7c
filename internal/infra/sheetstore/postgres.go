package sheetstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"parkstay/internal/infra"
	"parkstay/internal/infra/converter"
	"parkstay/internal/pkg/rawrecord"
	"parkstay/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	selectAllRows = `SELECT sheet, payload::text FROM sheet_rows ORDER BY sheet, position`
	lockSheetRows = `SELECT position, payload::text FROM sheet_rows WHERE sheet = $1 ORDER BY position FOR UPDATE`
	updateRow     = `UPDATE sheet_rows SET payload = $3::json, updated_at = now() WHERE sheet = $1 AND position = $2`
	insertRow     = `INSERT INTO sheet_rows (sheet, payload) VALUES ($1, $2::json)`
	deleteRow     = `DELETE FROM sheet_rows WHERE sheet = $1 AND position = $2`
	clearSheet    = `DELETE FROM sheet_rows WHERE sheet = $1`
)

// PostgresStore keeps each sheet as ordered JSON rows in the sheet_rows table.
type PostgresStore struct {
	pool   *pgxpool.Pool
	tx     *shared.TxRunner
	logger *slog.Logger
}

var _ shared.SheetStore = (*PostgresStore)(nil)

func NewPostgresStore(pool *pgxpool.Pool, logger *slog.Logger) *PostgresStore {
	return &PostgresStore{pool: pool, tx: shared.NewTxRunner(pool, logger), logger: logger}
}

func (s *PostgresStore) ReadAll(ctx context.Context) (*shared.RawSnapshot, error) {
	rows, err := s.pool.Query(ctx, selectAllRows)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "query sheet rows", err)
	}
	defer rows.Close()

	snap := &shared.RawSnapshot{}
	for rows.Next() {
		var sheet, payload string
		if err := rows.Scan(&sheet, &payload); err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "scan sheet row", err)
		}
		rec, err := decodeRow(payload)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindInvalidPayload, "decode "+sheet+" row", err)
		}
		switch converter.Sheet(sheet) {
		case converter.SheetUnits:
			snap.Units = append(snap.Units, rec)
		case converter.SheetBookings:
			snap.Bookings = append(snap.Bookings, rec)
		case converter.SheetUsers:
			snap.Users = append(snap.Users, rec)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "iterate sheet rows", err)
	}
	return snap, nil
}

func (s *PostgresStore) Upsert(ctx context.Context, sheet converter.Sheet, id string, rec rawrecord.Record) error {
	if !sheet.IsValid() {
		return unknownSheet(sheet)
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindInvalidPayload, "encode "+sheet.String()+" row", err)
	}

	_, err = shared.RunWithRetry(ctx, s.tx, "upsert "+sheet.String(), func(tx pgx.Tx) (struct{}, error) {
		position, found, err := s.locate(ctx, tx, sheet, id)
		if err != nil {
			return struct{}{}, err
		}
		if found {
			_, err = tx.Exec(ctx, updateRow, sheet.String(), position, string(payload))
		} else {
			_, err = tx.Exec(ctx, insertRow, sheet.String(), string(payload))
		}
		return struct{}{}, err
	})
	if err != nil {
		return s.wrap(err, "upsert "+sheet.String()+" row "+id)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, sheet converter.Sheet, id string) error {
	if !sheet.IsValid() {
		return unknownSheet(sheet)
	}

	_, err := shared.RunWithRetry(ctx, s.tx, "delete "+sheet.String(), func(tx pgx.Tx) (struct{}, error) {
		position, found, err := s.locate(ctx, tx, sheet, id)
		if err != nil {
			return struct{}{}, err
		}
		if !found {
			return struct{}{}, rowNotFound(sheet, id)
		}
		_, err = tx.Exec(ctx, deleteRow, sheet.String(), position)
		return struct{}{}, err
	})
	if err != nil {
		return s.wrap(err, "delete "+sheet.String()+" row "+id)
	}
	return nil
}

func (s *PostgresStore) Clear(ctx context.Context, sheet converter.Sheet) (int, error) {
	if !sheet.IsValid() {
		return 0, unknownSheet(sheet)
	}

	tag, err := s.pool.Exec(ctx, clearSheet, sheet.String())
	if err != nil {
		return 0, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "clear "+sheet.String(), err)
	}
	n := int(tag.RowsAffected())
	s.logger.Info("sheet cleared", slog.String("sheet", sheet.String()), slog.Int("rows", n))
	return n, nil
}

// locate locks the sheet's rows and finds the position of the row addressed by id.
func (s *PostgresStore) locate(ctx context.Context, tx pgx.Tx, sheet converter.Sheet, id string) (int64, bool, error) {
	rows, err := tx.Query(ctx, lockSheetRows, sheet.String())
	if err != nil {
		return 0, false, err
	}
	defer rows.Close()

	index := 0
	for rows.Next() {
		var position int64
		var payload string
		if err := rows.Scan(&position, &payload); err != nil {
			return 0, false, err
		}
		rec, err := decodeRow(payload)
		if err != nil {
			return 0, false, fmt.Errorf("decode row at position %d: %w", position, err)
		}
		if converter.RowID(sheet, rec, index) == id {
			return position, true, nil
		}
		index++
	}
	return 0, false, rows.Err()
}

func (s *PostgresStore) wrap(err error, msg string) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return err
	}
	return infra.WrapRepoErr(s.logger, infra.KindDBFailure, msg, err)
}

func decodeRow(payload string) (rawrecord.Record, error) {
	var rec rawrecord.Record
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return rawrecord.Record{}, err
	}
	return rec, nil
}
