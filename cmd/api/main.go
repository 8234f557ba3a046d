package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	server "hotel_platform/internal/adapters/http_server"
	"hotel_platform/internal/adapters/observability"
	"hotel_platform/internal/app"
	"hotel_platform/internal/shared"
	"hotel_platform/internal/storage/mysql"
)

func main() {
	_ = godotenv.Load()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger("api", cfg.AppEnv)

	observability.Serve()

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	store := mysql.NewStore(db)

	srv := server.New(server.Options{
		Timeout:   cfg.HTTPTimeout,
		RateRPS:   cfg.RateRPS,
		RateBurst: cfg.RateBurst,
	})
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Clients:      app.NewClientService(store),
		Rooms:        app.NewRoomService(store),
		Reservations: app.NewReservationService(store),
		Payments:     app.NewPaymentService(store),
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
