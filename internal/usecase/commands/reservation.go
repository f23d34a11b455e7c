package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"parkstay/internal/domain/reservation"
	"parkstay/internal/infra/converter"
	"parkstay/internal/metrics"
	"parkstay/internal/pkg/clock"
	"parkstay/internal/pkg/errs"
	"parkstay/internal/pkg/patch"
	"parkstay/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=mock_commands

const UnknownActor = "unknown"

// ConflictError reports the booking that already holds the unit.
type ConflictError struct {
	Existing *reservation.Reservation
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("unit %s is already booked by %s for %s",
		e.Existing.UnitID(), e.Existing.ID(), e.Existing.Stay())
}

func (e *ConflictError) Is(target error) bool {
	return target == errs.ErrReservationConflict
}

// SaveReservationParams carries a create (ID nil or empty) or a partial edit.
// Nil fields keep the stored value on edit.
type SaveReservationParams struct {
	ID         *string
	UnitID     *string
	GuestName  *string
	GuestPhone *string
	CheckIn    *string
	CheckOut   *string
	Status     *string
	Notes      *string
}

type SaveReservationResult struct {
	Reservation *reservation.Reservation
	Created     bool
}

type ReservationCommands interface {
	SaveReservation(ctx context.Context, p SaveReservationParams, actorID string) (*SaveReservationResult, error)
	CancelReservation(ctx context.Context, id string) (*reservation.Reservation, error)
	ResetReservations(ctx context.Context) (int, error)
}

type reservationUseCaseImpl struct {
	store  shared.SheetStore
	loader *shared.SnapshotLoader
	lock   *WriteLock
	clock  clock.Clock
	logger *slog.Logger
}

func NewReservationUseCase(
	store shared.SheetStore,
	loader *shared.SnapshotLoader,
	lock *WriteLock,
	clk clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationUseCaseImpl{
		store:  store,
		loader: loader,
		lock:   lock,
		clock:  clk,
		logger: logger,
	}
}

func (uc *reservationUseCaseImpl) SaveReservation(
	ctx context.Context,
	p SaveReservationParams,
	actorID string,
) (*SaveReservationResult, error) {
	uc.lock.Lock()
	defer uc.lock.Unlock()

	snap, err := uc.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	id := strings.TrimSpace(patch.Coalesce(p.ID, ""))
	creating := id == ""

	var existing *reservation.Reservation
	var current reservation.Details
	if !creating {
		var ok bool
		existing, ok = snap.ReservationByID(id)
		if !ok {
			return nil, errs.ErrReservationNotFound
		}
		current = existing.Details()
	}

	stay, err := reservation.NewStay(
		patch.Coalesce(p.CheckIn, current.Stay.CheckIn()),
		patch.Coalesce(p.CheckOut, current.Stay.CheckOut()),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStay)
	}

	details := reservation.Details{
		UnitID:     strings.TrimSpace(patch.Coalesce(p.UnitID, current.UnitID)),
		GuestName:  patch.Coalesce(p.GuestName, current.GuestName),
		GuestPhone: patch.Coalesce(p.GuestPhone, current.GuestPhone),
		Stay:       stay,
		Status:     reservation.Status(strings.ToLower(strings.TrimSpace(patch.Coalesce(p.Status, current.Status.String())))),
		Notes:      patch.Coalesce(p.Notes, current.Notes),
	}

	entity := existing
	if creating {
		if actorID == "" {
			actorID = UnknownActor
		}
		entity, err = reservation.NewReservation(uuid.NewString(), details, actorID, uc.clock.Now())
	} else {
		err = entity.Edit(details)
	}
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if creating || details.UnitID != current.UnitID {
		if err := uc.checkUnit(snap, details.UnitID); err != nil {
			return nil, err
		}
	}

	if !entity.IsCancelled() {
		candidate := reservation.Candidate{UnitID: details.UnitID, Stay: stay, ExcludeID: id}
		if taken, found := reservation.FindConflict(candidate, snap.Reservations); found {
			metrics.ConflictsDetected.Inc()
			uc.logger.Info("reservation conflict",
				slog.String("unit_id", details.UnitID),
				slog.String("stay", stay.String()),
				slog.String("existing_id", taken.ID()),
			)
			return nil, &ConflictError{Existing: taken}
		}
	}

	if err := uc.store.Upsert(ctx, converter.SheetBookings, entity.ID(), converter.ReservationToRecord(entity)); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	op := "update"
	if creating {
		op = "create"
	}
	metrics.ReservationsSaved.WithLabelValues(op).Inc()
	uc.logger.Info("reservation saved",
		slog.String("op", op),
		slog.String("reservation_id", entity.ID()),
		slog.String("unit_id", entity.UnitID()),
		slog.String("status", entity.Status().String()),
	)

	return &SaveReservationResult{Reservation: entity, Created: creating}, nil
}

func (uc *reservationUseCaseImpl) checkUnit(snap *shared.Snapshot, unitID string) error {
	u, ok := snap.UnitByID(unitID)
	if !ok {
		return errs.ErrUnitNotFound
	}
	if !u.IsActive() {
		return errs.ErrUnitUnavailable
	}
	return nil
}

func (uc *reservationUseCaseImpl) CancelReservation(ctx context.Context, id string) (*reservation.Reservation, error) {
	uc.lock.Lock()
	defer uc.lock.Unlock()

	snap, err := uc.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	entity, ok := snap.ReservationByID(id)
	if !ok {
		return nil, errs.ErrReservationNotFound
	}
	if err := entity.Cancel(); err != nil {
		return nil, errs.Mark(err, errs.ErrReservationCanceled)
	}

	if err := uc.store.Upsert(ctx, converter.SheetBookings, entity.ID(), converter.ReservationToRecord(entity)); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	metrics.ReservationsCancelled.Inc()
	uc.logger.Info("reservation cancelled", slog.String("reservation_id", id))
	return entity, nil
}

// ResetReservations hard-deletes every booking row. Units and users are untouched.
func (uc *reservationUseCaseImpl) ResetReservations(ctx context.Context) (int, error) {
	uc.lock.Lock()
	defer uc.lock.Unlock()

	n, err := uc.store.Clear(ctx, converter.SheetBookings)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	metrics.ReservationsReset.Add(float64(n))
	uc.logger.Warn("reservations reset", slog.Int("deleted", n))
	return n, nil
}
