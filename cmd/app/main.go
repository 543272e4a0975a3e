package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"arca/cmd/fx/config_fx"
	"arca/cmd/fx/controllers_fx"
	"arca/cmd/fx/db_fx"
	"arca/cmd/fx/itinerary_fx"
	"arca/cmd/fx/memcache_fx"
	"arca/cmd/fx/session_fx"
	"arca/internal/api/controllers"
	"arca/internal/infra/config"
	"arca/pkg/logger"
	mem "arca/pkg/memcache"
	"arca/pkg/metrics"
	"arca/pkg/middleware"
	"arca/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		session_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, log logger.Logger) {
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      engine,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				log.Info("Starting HTTP server", "addr", srv.Addr)
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped unexpectedly", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	log logger.Logger,
	m *metrics.Metrics,
	reg *prometheus.Registry,
	tokens *utils.TokenManager,
	revoked mem.RevokedTokenStore,
	itineraryController *controllers.ItineraryController,
	sessionController *controllers.SessionController) *gin.Engine {

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.AccessLog(log, m))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	api := r.Group("/", limiter.Middleware(), middleware.SessionMiddleware(tokens, revoked))

	RegisterRoutes(api, itineraryController, sessionController)

	return r
}

func RegisterRoutes(r *gin.RouterGroup,
	itineraryController *controllers.ItineraryController,
	sessionController *controllers.SessionController) {

	sessionGroup := r.Group("/session")
	sessionGroup.POST("/login", sessionController.Login)
	sessionGroup.POST("/logout", middleware.RequireSession(), sessionController.Logout)
	sessionGroup.GET("/me", middleware.RequireSession(), sessionController.Me)

	itineraryGroup := r.Group("/itinerary")
	itineraryGroup.GET("", itineraryController.GetItinerary)
	itineraryGroup.GET("/summary", itineraryController.GetSummary)
	itineraryGroup.PUT("/details", itineraryController.UpdateTripDetails)
	itineraryGroup.POST("/move", itineraryController.MoveActivity)
	itineraryGroup.POST("/days", itineraryController.AddDay)
	itineraryGroup.POST("/days/:dayId/activities", itineraryController.AddActivity)
	itineraryGroup.PUT("/activities/:activityId", itineraryController.UpdateActivity)
	itineraryGroup.POST("/reset", itineraryController.ResetItinerary)
}
