package destination_fx

import (
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripdesk/internal/repositories"
	"tripdesk/internal/services"
	"tripdesk/pkg/cache"
)

var Module = fx.Provide(provideDestinationRepo, provideDestinationService)

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func provideDestinationService(destinationRepo repositories.DestinationRepository, c cache.Cache, logger zerolog.Logger) services.DestinationServiceInterface {
	ttlSec, err := strconv.Atoi(os.Getenv("DESTINATION_CACHE_TTL_SEC"))
	if err != nil || ttlSec <= 0 {
		ttlSec = 600
	}
	return services.NewDestinationService(destinationRepo, c, ttlSec, logger)
}
