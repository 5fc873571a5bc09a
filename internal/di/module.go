package di

import (
	"go.uber.org/fx"

	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/adapter/qrcode"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/app"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/config"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/logger"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/server/http/handlers"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/server/http/middleware"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/server/http/router"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/session"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/storage/postgres"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		session.Module,
		postgres.Module,
		qrcode.Module,
		usecase.Module,
		fx.Provide(
			func(f *app.CanteenFacade) handlers.CanteenFacade { return f },
			func(f *app.CanteenFacade) middleware.SessionResolver { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
