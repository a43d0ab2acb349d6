package controllers_fx

import (
	"go.uber.org/fx"
	"tripdesk/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewDestinationController),
	fx.Provide(controllers.NewRequestController),
	fx.Provide(controllers.NewTutorialController))
