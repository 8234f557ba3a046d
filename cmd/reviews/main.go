package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	server "hotel_platform/internal/adapters/http_server"
	"hotel_platform/internal/adapters/observability"
	"hotel_platform/internal/app"
	"hotel_platform/internal/cache"
	"hotel_platform/internal/shared"
	"hotel_platform/internal/storage/mysql"
)

func main() {
	_ = godotenv.Load()
	cfg := shared.Load()

	log.Logger = observability.NewLogger("reviews", cfg.AppEnv)

	observability.Serve()

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	rds := cache.NewRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := rds.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, tier will be degraded")
	}
	cancel()

	tiered := cache.NewTwoLevel(cache.NewMemory(), rds, cfg.CacheL1TTL, cfg.CacheL2TTL, log.Logger)

	srv := server.New(server.Options{
		Timeout:   cfg.HTTPTimeout,
		RateRPS:   cfg.RateRPS,
		RateBurst: cfg.RateBurst,
	})
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountReviewHandlers(&server.ReviewHandlers{
		Reviews:  app.NewReviewService(mysql.NewReviewRepo(db), tiered),
		Requests: app.NewRequestService(mysql.NewRequestRepo(db), tiered),
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("reviews service listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
