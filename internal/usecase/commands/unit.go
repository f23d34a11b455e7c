package commands

import (
	"context"
	"log/slog"
	"strings"

	"parkstay/internal/domain/unit"
	"parkstay/internal/infra"
	"parkstay/internal/infra/converter"
	"parkstay/internal/pkg/errs"
	"parkstay/internal/pkg/patch"
	"parkstay/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=unit.go -destination=../../../tests/mock/commands/unit.go -package=mock_commands

// SaveUnitParams creates a unit when ID is nil or empty, otherwise edits it.
type SaveUnitParams struct {
	ID          *string
	Name        *string
	Zone        *string
	Capacity    *int
	Price       *float64
	Status      *string
	Description *string
}

type SaveUnitResult struct {
	Unit    *unit.Unit
	Created bool
}

type UnitCommands interface {
	SaveUnit(ctx context.Context, p SaveUnitParams) (*SaveUnitResult, error)
	// DeleteUnit removes the unit row. Its reservations are kept and left dangling.
	DeleteUnit(ctx context.Context, id string) error
}

type unitUseCaseImpl struct {
	store  shared.SheetStore
	loader *shared.SnapshotLoader
	lock   *WriteLock
	logger *slog.Logger
}

func NewUnitUseCase(store shared.SheetStore, loader *shared.SnapshotLoader, lock *WriteLock, logger *slog.Logger) UnitCommands {
	return &unitUseCaseImpl{store: store, loader: loader, lock: lock, logger: logger}
}

func (uc *unitUseCaseImpl) SaveUnit(ctx context.Context, p SaveUnitParams) (*SaveUnitResult, error) {
	uc.lock.Lock()
	defer uc.lock.Unlock()

	id := strings.TrimSpace(patch.Coalesce(p.ID, ""))
	creating := id == ""

	current := unit.Details{Capacity: unit.DefaultCapacity, Status: unit.StatusActive}
	var entity *unit.Unit
	if !creating {
		snap, err := uc.loader.Load(ctx)
		if err != nil {
			return nil, err
		}
		var ok bool
		if entity, ok = snap.UnitByID(id); !ok {
			return nil, errs.ErrUnitNotFound
		}
		current = unit.Details{
			Name:        entity.Name(),
			Zone:        entity.Zone(),
			Capacity:    entity.Capacity(),
			Price:       entity.Price(),
			Status:      entity.Status(),
			Description: entity.Description(),
		}
	}

	details := unit.Details{
		Name:        patch.Coalesce(p.Name, current.Name),
		Zone:        patch.Coalesce(p.Zone, current.Zone),
		Capacity:    patch.Coalesce(p.Capacity, current.Capacity),
		Price:       patch.Coalesce(p.Price, current.Price),
		Status:      unit.Status(strings.ToLower(strings.TrimSpace(patch.Coalesce(p.Status, current.Status.String())))),
		Description: patch.Coalesce(p.Description, current.Description),
	}

	var err error
	if creating {
		entity, err = unit.NewUnit(uuid.NewString(), details)
	} else {
		err = entity.Edit(details)
	}
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := uc.store.Upsert(ctx, converter.SheetUnits, entity.ID(), converter.UnitToRecord(entity)); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	uc.logger.Info("unit saved",
		slog.String("unit_id", entity.ID()),
		slog.Bool("created", creating),
		slog.String("status", entity.Status().String()),
	)
	return &SaveUnitResult{Unit: entity, Created: creating}, nil
}

func (uc *unitUseCaseImpl) DeleteUnit(ctx context.Context, id string) error {
	uc.lock.Lock()
	defer uc.lock.Unlock()

	if err := uc.store.Delete(ctx, converter.SheetUnits, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrUnitNotFound
		}
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	uc.logger.Info("unit deleted", slog.String("unit_id", id))
	return nil
}
