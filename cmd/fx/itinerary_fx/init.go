package itinerary_fx

import (
	"go.uber.org/fx"

	"arca/internal/repositories"
	"arca/internal/services"
	"arca/pkg/logger"
	"arca/pkg/metrics"
)

var Module = fx.Provide(
	provideItineraryStore, provideItineraryService)

func provideItineraryStore(repo repositories.SlotRepository, log logger.Logger, m *metrics.Metrics) services.ItineraryStoreInterface {
	return services.NewItineraryStore(repo, log, m)
}

func provideItineraryService(store services.ItineraryStoreInterface, log logger.Logger, m *metrics.Metrics) services.ItineraryServiceInterface {
	return services.NewItineraryService(store, log, m)
}
