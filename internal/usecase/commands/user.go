package commands

import (
	"context"
	"log/slog"
	"strings"

	"parkstay/internal/domain/user"
	"parkstay/internal/infra"
	"parkstay/internal/infra/converter"
	"parkstay/internal/pkg/errs"
	"parkstay/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/commands/user.go -package=mock_commands

type RegisterUserParams struct {
	Username string
	Password string
	Name     string
}

type UserCommands interface {
	RegisterUser(ctx context.Context, p RegisterUserParams) (*user.User, error)
	ApproveUser(ctx context.Context, id string, role string) (*user.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type userUseCaseImpl struct {
	store  shared.SheetStore
	loader *shared.SnapshotLoader
	lock   *WriteLock
	logger *slog.Logger
}

func NewUserUseCase(store shared.SheetStore, loader *shared.SnapshotLoader, lock *WriteLock, logger *slog.Logger) UserCommands {
	return &userUseCaseImpl{store: store, loader: loader, lock: lock, logger: logger}
}

func (uc *userUseCaseImpl) RegisterUser(ctx context.Context, p RegisterUserParams) (*user.User, error) {
	username, err := user.NewUsername(p.Username)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	uc.lock.Lock()
	defer uc.lock.Unlock()

	snap, err := uc.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, existing := range snap.Users {
		if existing.SameUsername(username.Value()) {
			return nil, errs.ErrDuplicateUsername
		}
	}

	entity, err := user.NewUser(uuid.NewString(), username, p.Password, p.Name)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := uc.store.Upsert(ctx, converter.SheetUsers, entity.ID(), converter.UserToRecord(entity)); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	uc.logger.Info("user registered",
		slog.String("user_id", entity.ID()),
		slog.String("username", entity.Username()),
		slog.String("status", entity.Status().String()),
	)
	return entity, nil
}

// ApproveUser activates the account with role. An empty role means user.
func (uc *userUseCaseImpl) ApproveUser(ctx context.Context, id string, role string) (*user.User, error) {
	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		role = user.RoleUser.String()
	}
	r, err := user.NewRole(role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	uc.lock.Lock()
	defer uc.lock.Unlock()

	snap, err := uc.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	entity, ok := snap.UserByID(id)
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	if err := entity.Approve(r); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := uc.store.Upsert(ctx, converter.SheetUsers, entity.ID(), converter.UserToRecord(entity)); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	uc.logger.Info("user approved", slog.String("user_id", id), slog.String("role", r.String()))
	return entity, nil
}

func (uc *userUseCaseImpl) DeleteUser(ctx context.Context, id string) error {
	uc.lock.Lock()
	defer uc.lock.Unlock()

	if err := uc.store.Delete(ctx, converter.SheetUsers, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrUserNotFound
		}
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	uc.logger.Info("user deleted", slog.String("user_id", id))
	return nil
}
