package request_fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripdesk/internal/repositories"
	"tripdesk/internal/services"
	"tripdesk/pkg/cache"
)

var Module = fx.Provide(provideRequestRepo, provideRequestService)

func provideRequestRepo(db *gorm.DB) repositories.TravelRequestRepository {
	return repositories.NewTravelRequestRepository(db)
}

func provideRequestService(requestRepo repositories.TravelRequestRepository, c cache.Cache, logger zerolog.Logger) services.RequestServiceInterface {
	return services.NewRequestService(requestRepo, c, logger)
}
