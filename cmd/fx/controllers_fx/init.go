package controllers_fx

import (
	"go.uber.org/fx"

	"arca/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewSessionController))
