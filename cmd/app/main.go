package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"tripdesk/cmd/fx/account_fx"
	"tripdesk/cmd/fx/cache_fx"
	"tripdesk/cmd/fx/controllers_fx"
	"tripdesk/cmd/fx/db_fx"
	"tripdesk/cmd/fx/destination_fx"
	"tripdesk/cmd/fx/observability_fx"
	"tripdesk/cmd/fx/request_fx"
	"tripdesk/cmd/fx/tutorial_fx"
	"tripdesk/internal/api/controllers"
	dbm "tripdesk/internal/models/db_models"
	"tripdesk/pkg/middleware"
	"tripdesk/pkg/observability"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		observability_fx.Module,
		db_fx.Module,
		cache_fx.Module,
		account_fx.Module,
		destination_fx.Module,
		request_fx.Module,
		tutorial_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, logger zerolog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				addr := ":" + os.Getenv("PORT")
				logger.Info().Str("addr", addr).Msg("starting HTTP server")
				if err := engine.Run(addr); err != nil {
					logger.Fatal().Err(err).Msg("failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	destinationController *controllers.DestinationController,
	requestController *controllers.RequestController,
	tutorialController *controllers.TutorialController,
	registry *prometheus.Registry,
	logger zerolog.Logger) *gin.Engine {

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, destinationController, requestController, tutorialController, registry)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	destinationController *controllers.DestinationController,
	requestController *controllers.RequestController,
	tutorialController *controllers.TutorialController,
	registry *prometheus.Registry) {

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(observability.MetricsHandler(registry)))

	r.POST("/accounts/register", accountController.Register)
	r.POST("/login", middleware.RateLimit(5), accountController.Login)

	auth := r.Group("", middleware.SessionAuthMiddleware(controllers.SessionCookie))

	auth.GET("/login/profile", accountController.Profile)
	auth.POST("/login/logout", accountController.Logout)

	destinationsGroup := auth.Group("/destinations")
	destinationsGroup.GET("", destinationController.ListDestinations)
	destinationsGroup.GET("/options", destinationController.ListOptions)

	requestsGroup := auth.Group("/requests")
	requestsGroup.POST("", middleware.RequirePermission(dbm.PermCreateRequest), requestController.Submit)
	requestsGroup.GET("/user", requestController.ListUser)
	requestsGroup.GET("/to-approve", middleware.RequirePermission(dbm.PermApproveRequest), requestController.ListToApprove)
	requestsGroup.GET("/to-approve-SOI", middleware.RequirePermission(dbm.PermApproveAccounting), requestController.ListToApproveAccounting)
	requestsGroup.GET("/to-reserve", middleware.RequirePermission(dbm.PermMakeReservations), requestController.ListToReserve)
	requestsGroup.GET("/all", middleware.RequirePermission(dbm.PermViewAllRequests), requestController.ListAll)
	requestsGroup.GET("/:id", requestController.GetById)
	requestsGroup.PUT("/:id", middleware.RequirePermission(dbm.PermCreateRequest), requestController.Amend)
	requestsGroup.PATCH("/:id/status", requestController.UpdateStatus)

	tutorialGroup := auth.Group("/tutorial")
	tutorialGroup.GET("/visited", tutorialController.Visited)
	tutorialGroup.POST("/visited", tutorialController.Visit)
}
