package config

import "time"

const (
	envPort            = "PORT"
	envRefreshInterval = "REFRESH_INTERVAL"
	envHorizonMonths   = "HORIZON_MONTHS"
	envProvider        = "PROVIDER"
	envSports          = "SPORTS"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// League-today snapshots change at most a few times a day; hourly
	// refresh keeps the off-season guard fresh without hammering upstreams.
	defaultRefreshInterval = 1 * time.Hour
	defaultHorizonMonths   = 9
	defaultProvider        = "live"
	defaultSports          = "mlb,nhl,nba,nfl"
	defaultMetricsPort     = "9090"
)
