package account_fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripdesk/internal/repositories"
	"tripdesk/internal/services"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, logger zerolog.Logger) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, logger)
}
