package cache_fx

import (
	"os"
	"strconv"

	"go.uber.org/fx"
	"tripdesk/pkg/cache"
)

var Module = fx.Provide(
	provideCache)

func provideCache() cache.Cache {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return cache.NewRedis(os.Getenv("REDIS_ADDR"), os.Getenv("REDIS_PASSWORD"), db)
}
