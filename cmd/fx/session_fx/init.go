package session_fx

import (
	"go.uber.org/fx"

	"arca/internal/infra/config"
	"arca/internal/services"
	"arca/pkg/logger"
	mem "arca/pkg/memcache"
	"arca/pkg/utils"
)

var Module = fx.Provide(
	provideTokenManager, provideSessionService)

func provideTokenManager(cfg *config.Config) *utils.TokenManager {
	return utils.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
}

func provideSessionService(tokens *utils.TokenManager, revoked mem.RevokedTokenStore, cfg *config.Config, log logger.Logger) services.SessionServiceInterface {
	return services.NewSessionService(tokens, revoked, cfg.DefaultLanguage, log)
}
