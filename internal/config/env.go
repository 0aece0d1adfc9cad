package config

import (
	"os"
	"strconv"
	"time"
)

// Environment variables read by LoadFromEnv
const (
	EnvCountry   = "CV_AUDIT_COUNTRY"
	EnvName      = "CV_AUDIT_NAME"
	EnvPort      = "CV_AUDIT_PORT"
	EnvRateLimit = "CV_AUDIT_RATE_LIMIT"
	EnvRateBurst = "CV_AUDIT_RATE_BURST"
)

// LoadFromEnv reads the CV_AUDIT_* variables. Unset or unparsable values stay zero so the
// result can be merged over a file configuration.
func LoadFromEnv() Config {
	return Config{
		Country:   os.Getenv(EnvCountry),
		Name:      os.Getenv(EnvName),
		Port:      GetEnvInt(EnvPort, 0),
		RateLimit: GetEnvInt(EnvRateLimit, 0),
		RateBurst: GetEnvInt(EnvRateBurst, 0),
	}
}

// GetEnvString gets an environment variable as a string with a default value.
func GetEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt gets an environment variable as an integer with a default value.
func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvBool gets an environment variable as a boolean with a default value.
func GetEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// GetEnvDuration gets an environment variable as a duration with a default value.
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
