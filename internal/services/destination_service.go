package services

import (
	"context"

	"github.com/rs/zerolog"
	"tripdesk/internal/models/response_models"
	"tripdesk/internal/repositories"
	"tripdesk/pkg/cache"
	"tripdesk/pkg/utils"
)

const destinationsCacheKey = "destinations:catalog"

type DestinationServiceInterface interface {
	ListDestinations(ctx context.Context) ([]response_models.DestinationResponse, error)
	ListOptions(ctx context.Context) ([]response_models.DestinationOption, error)
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepository
	cache           cache.Cache
	ttlSec          int
	logger          zerolog.Logger
}

func NewDestinationService(destinationRepo repositories.DestinationRepository, c cache.Cache, ttlSec int, logger zerolog.Logger) DestinationServiceInterface {
	return &DestinationService{
		destinationRepo: destinationRepo,
		cache:           c,
		ttlSec:          ttlSec,
		logger:          logger,
	}
}

// ListDestinations returns the full catalog, served from the cache within
// its TTL window and refetched on a miss.
func (d *DestinationService) ListDestinations(ctx context.Context) ([]response_models.DestinationResponse, error) {
	var cached []response_models.DestinationResponse
	if ok, _ := d.cache.Get(ctx, destinationsCacheKey, &cached); ok {
		return cached, nil
	}

	destinations, err := d.destinationRepo.GetAll(ctx)
	if err != nil {
		d.logger.Error().Err(err).Msg("destination catalog fetch failed")
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.DestinationResponse, 0, len(destinations))
	for _, destination := range destinations {
		out = append(out, response_models.DestinationResponse{
			ID:      destination.ID.String(),
			City:    destination.City,
			Country: destination.Country,
		})
	}

	if err := d.cache.Set(ctx, destinationsCacheKey, out, d.ttlSec); err != nil {
		d.logger.Warn().Err(err).Msg("destination catalog cache set failed")
	}
	return out, nil
}

// ListOptions derives the {id, "city, country"} pairs selection controls
// consume. An empty catalog yields an empty list, never an error.
func (d *DestinationService) ListOptions(ctx context.Context) ([]response_models.DestinationOption, error) {
	destinations, err := d.ListDestinations(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]response_models.DestinationOption, 0, len(destinations))
	for _, destination := range destinations {
		options = append(options, response_models.DestinationOption{
			ID:    destination.ID,
			Label: destination.City + ", " + destination.Country,
		})
	}
	return options, nil
}
