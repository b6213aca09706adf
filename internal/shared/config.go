package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	MetricsAddr   string
	CatalogSource string // static | mysql
	MySQLDSN      string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	Workers       int
	RateRPS       float64
	RateBurst     int
	CacheTTL      time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ":9100"),
		CatalogSource: env("CATALOG_SOURCE", "static"),
		MySQLDSN:      env("MYSQL_DSN", "root:root@tcp(localhost:3306)/hotels?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisDB:       atoi("REDIS_DB", 0),
		RedisPass:     env("REDIS_PASSWORD", ""),
		Workers:       atoi("QUOTE_WORKERS", 8),
		RateRPS:       float64(atoi("RATE_LIMIT_RPS", 20)),
		RateBurst:     atoi("RATE_LIMIT_BURST", 40),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if c.CatalogSource != "static" && c.CatalogSource != "mysql" {
		log.Warn().Str("source", c.CatalogSource).Msg("unknown CATALOG_SOURCE, falling back to static")
		c.CatalogSource = "static"
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
