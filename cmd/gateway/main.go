package main // Entry point for the HTTP gateway

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/car-rental-platform/internal/config"
	"github.com/iliyamo/car-rental-platform/internal/handler"
	"github.com/iliyamo/car-rental-platform/internal/middleware"
	"github.com/iliyamo/car-rental-platform/internal/router"
	"github.com/iliyamo/car-rental-platform/internal/rpc"
)

func main() {
	_ = godotenv.Load() // Optional .env for local development

	cfg := config.LoadGateway()
	cacheCfg := config.LoadCacheConfig()
	rateCfg := config.LoadRateLimitConfig()

	rdb := config.NewRedisClient()

	// The client connects lazily; an unreachable backend at boot only
	// logs a warning and the first request retries.
	client := rpc.NewClient(cfg.RPC.Host, cfg.RPC.Port, cfg.RPC.ServiceName)

	invalidate := func(ctx context.Context) {
		middleware.InvalidateCache(ctx, rdb, cacheCfg.Prefix)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(middleware.NewTokenBucket(rateCfg, rdb))

	cache := middleware.NewResponseCache(cacheCfg, rdb)

	router.RegisterRoutes(e)
	router.RegisterUsers(e, handler.NewUserHandler(client))
	router.RegisterCars(e, handler.NewCarHandler(client, invalidate), cache)
	router.RegisterReservations(e, handler.NewReservationHandler(client, invalidate))

	addr := ":" + cfg.Port
	log.Printf("gateway listening on %s (env=%s, backend=%s:%s/%s)",
		addr, cfg.Env, cfg.RPC.Host, cfg.RPC.Port, cfg.RPC.ServiceName)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
