package sheetstore

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"parkstay/internal/infra"
	"parkstay/internal/infra/converter"
	"parkstay/internal/pkg/rawrecord"
	"parkstay/internal/usecase/shared"
)

// MemoryStore keeps the sheets in process memory. Rows are cloned on the way
// in and out so callers never share state with the store.
type MemoryStore struct {
	mu     sync.RWMutex
	sheets map[converter.Sheet][]rawrecord.Record
	logger *slog.Logger
}

var _ shared.SheetStore = (*MemoryStore)(nil)

func NewMemoryStore(logger *slog.Logger) *MemoryStore {
	return &MemoryStore{
		sheets: map[converter.Sheet][]rawrecord.Record{
			converter.SheetUnits:    nil,
			converter.SheetBookings: nil,
			converter.SheetUsers:    nil,
		},
		logger: logger,
	}
}

func (s *MemoryStore) ReadAll(_ context.Context) (*shared.RawSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return &shared.RawSnapshot{
		Units:    cloneRows(s.sheets[converter.SheetUnits]),
		Bookings: cloneRows(s.sheets[converter.SheetBookings]),
		Users:    cloneRows(s.sheets[converter.SheetUsers]),
	}, nil
}

func (s *MemoryStore) Upsert(_ context.Context, sheet converter.Sheet, id string, rec rawrecord.Record) error {
	if !sheet.IsValid() {
		return unknownSheet(sheet)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.sheets[sheet]
	if i := indexOf(sheet, rows, id); i >= 0 {
		rows[i] = rec.Clone()
		return nil
	}
	s.sheets[sheet] = append(rows, rec.Clone())
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sheet converter.Sheet, id string) error {
	if !sheet.IsValid() {
		return unknownSheet(sheet)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.sheets[sheet]
	i := indexOf(sheet, rows, id)
	if i < 0 {
		return rowNotFound(sheet, id)
	}
	s.sheets[sheet] = append(rows[:i:i], rows[i+1:]...)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sheet converter.Sheet) (int, error) {
	if !sheet.IsValid() {
		return 0, unknownSheet(sheet)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.sheets[sheet])
	s.sheets[sheet] = nil
	s.logger.Info("sheet cleared", slog.String("sheet", sheet.String()), slog.Int("rows", n))
	return n, nil
}

// indexOf finds the row a normalised entity with this id came from.
func indexOf(sheet converter.Sheet, rows []rawrecord.Record, id string) int {
	for i, rec := range rows {
		if converter.RowID(sheet, rec, i) == id {
			return i
		}
	}
	return -1
}

func cloneRows(rows []rawrecord.Record) []rawrecord.Record {
	out := make([]rawrecord.Record, len(rows))
	for i, r := range rows {
		out[i] = r.Clone()
	}
	return out
}

func rowNotFound(sheet converter.Sheet, id string) error {
	return infra.NewRepoErr(infra.KindNotFound, fmt.Sprintf("row %s not found in %s", id, sheet))
}

func unknownSheet(sheet converter.Sheet) error {
	return infra.NewRepoErr(infra.KindUnknownSheet, fmt.Sprintf("unknown sheet %q", sheet))
}
