// Seeds the destination catalog from a JSON file of {city, country}
// records. Existing rows are left untouched.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"tripdesk/internal/infra"
	"tripdesk/internal/models/db_models"
	"tripdesk/internal/repositories"
	"tripdesk/pkg/observability"
)

type seedEntry struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

func main() {
	_ = godotenv.Load()
	log.Logger = observability.NewLogger(os.Getenv("APP_ENV"))

	file := flag.String("file", "destinations.json", "path to the catalog JSON file")
	workers := flag.Int("workers", 4, "concurrent upserts")
	flag.Parse()

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("failed to read catalog file")
	}

	var entries []seedEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Fatal().Err(err).Msg("failed to parse catalog file")
	}
	log.Info().Int("entries", len(entries)).Msg("seeding destination catalog")

	db := infra.InitPostgresql()
	defer infra.ClosePostgresql(db)
	repo := repositories.NewDestinationRepository(db)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*workers)

	for _, entry := range entries {
		entry := entry
		g.Go(func() error {
			destination := &db_models.Destination{City: entry.City, Country: entry.Country}
			if err := repo.Upsert(ctx, destination); err != nil {
				log.Warn().Err(err).Str("city", entry.City).Str("country", entry.Country).Msg("upsert failed")
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Msg("seeding completed")
}
