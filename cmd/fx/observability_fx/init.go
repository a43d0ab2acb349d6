package observability_fx

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"tripdesk/pkg/observability"
)

var Module = fx.Provide(
	provideLogger, provideRegistry)

func provideLogger() zerolog.Logger {
	return observability.NewLogger(os.Getenv("APP_ENV"))
}

func provideRegistry() *prometheus.Registry {
	return observability.InitRegistry()
}
