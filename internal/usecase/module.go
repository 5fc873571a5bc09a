package usecase

import (
	"go.uber.org/fx"

	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/config"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/repository"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/session"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newAuthUseCase,
	NewMenuUseCase,
	NewOrderUseCase,
	NewAnalyticsUseCase,
)

type authParams struct {
	fx.In

	Users    repository.UserRepository
	Sessions *session.Store
	Config   *config.Config
}

func newAuthUseCase(p authParams) *AuthUseCase {
	return NewAuthUseCase(p.Users, p.Sessions, p.Config.EmailDomain)
}
