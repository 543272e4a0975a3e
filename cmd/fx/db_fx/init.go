package db_fx

import (
	"context"

	"go.uber.org/fx"

	"arca/internal/infra"
	"arca/internal/infra/config"
	"arca/internal/repositories"
	"arca/pkg/logger"
)

var Module = fx.Provide(
	provideSlotRepository)

// provideSlotRepository opens the store named by STORE_DRIVER and closes it
// when the app stops.
func provideSlotRepository(lc fx.Lifecycle, cfg *config.Config, log logger.Logger) (repositories.SlotRepository, error) {
	if cfg.StoreDriver == config.DriverRedis {
		client, err := infra.OpenRedis(context.Background(), cfg)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
		log.Info("Itinerary slots stored in redis", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
		return repositories.NewRedisSlotRepository(client, ""), nil
	}

	db, err := infra.OpenDatabase(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return infra.CloseDatabase(db)
		},
	})
	log.Info("Itinerary slots stored in sql database", "driver", cfg.StoreDriver)
	return repositories.NewSlotRepository(db), nil
}
