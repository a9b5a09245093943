package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Truthy reports whether raw spells an accepted true value. The same set
// backs env overrides and the status endpoint's query flags, so "1",
// "true" and "yes" (any case) mean the same thing everywhere.
func Truthy(raw string) bool {
	return raw == "1" || strings.EqualFold(raw, "true") || strings.EqualFold(raw, "yes")
}

func falsy(raw string) bool {
	return raw == "0" || strings.EqualFold(raw, "false") || strings.EqualFold(raw, "no")
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// durationEnvOrDefault treats unparseable and non-positive overrides as
// unset; every duration knob here is a refresh or timeout interval.
func durationEnvOrDefault(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

// intEnvOrDefault likewise only accepts positive integers; the single
// consumer is the schedule horizon in months.
func intEnvOrDefault(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return fallback
	}
	return val
}

func boolEnvOrDefault(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	switch {
	case Truthy(raw):
		return true
	case falsy(raw):
		return false
	default:
		return fallback
	}
}
