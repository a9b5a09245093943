package config

import (
	"strings"
	"time"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	RefreshInterval time.Duration
	HorizonMonths   int
	Provider        string
	Sports          []string
	Upstreams       UpstreamsConfig
	Metrics         MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		RefreshInterval: durationEnvOrDefault(envRefreshInterval, defaultRefreshInterval),
		HorizonMonths:   intEnvOrDefault(envHorizonMonths, defaultHorizonMonths),
		Provider:        envOrDefault(envProvider, defaultProvider),
		Sports:          splitSports(envOrDefault(envSports, defaultSports)),
		Upstreams:       loadUpstreams(),
		Metrics:         loadMetrics(),
	}
}

func splitSports(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
