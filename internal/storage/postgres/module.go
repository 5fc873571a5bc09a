package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/config"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.UserRepository { return s.Users() },
		func(s *Storage) repository.MenuRepository { return s.Menu() },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Config.EmailDomain, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return storage.HealthCheck(ctx)
		},
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
