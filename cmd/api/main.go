package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "miami_hotels/internal/adapters/http_server"
	"miami_hotels/internal/adapters/observability"
	redisad "miami_hotels/internal/adapters/redis"
	"miami_hotels/internal/app"
	"miami_hotels/internal/domain"
	"miami_hotels/internal/shared"
	"miami_hotels/internal/storage/memory"
	mysqlrepo "miami_hotels/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// catalog: loaded once, immutable for the process lifetime
	ctx := context.Background()
	var src domain.CatalogSource = memory.New()
	if cfg.CatalogSource == "mysql" {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		src = mysqlrepo.New(db)
	}
	hotels, err := src.ListHotels(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("catalog load failed")
	}
	if len(hotels) == 0 {
		log.Fatal().Str("source", cfg.CatalogSource).Msg("catalog is empty")
	}
	log.Info().Int("hotels", len(hotels)).Str("source", cfg.CatalogSource).Msg("catalog loaded")

	// deps
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	q := app.NewQuoteService(hotels, cache, cfg.CacheTTL)

	// http
	srv := server.New(cfg.RateRPS, cfg.RateBurst)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
