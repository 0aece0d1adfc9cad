package ratelimit

import (
	"strings"
	"time"

	"github.com/jonathan/cv-auditor/internal/config"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Exact path, or a prefix when it ends in "/"
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// DefaultLimit is the per-minute allowance for endpoints without a specific entry.
const DefaultLimit = 1000

// LoadConfig loads rate limiting configuration from environment variables.
// auditLimit and auditBurst size the POST /audit bucket; the other audit
// endpoints scale from it.
func LoadConfig(auditLimit, auditBurst int) *Config {
	enabled := config.GetEnvBool("CV_AUDIT_RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{
			Enabled: false,
		}
	}

	return &Config{
		Enabled:         enabled,
		DefaultLimit:    config.GetEnvInt("CV_AUDIT_RATE_LIMIT_DEFAULT_LIMIT", DefaultLimit),
		DefaultWindow:   config.GetEnvDuration("CV_AUDIT_RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: config.GetEnvDuration("CV_AUDIT_RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		IdleTimeout:     config.GetEnvDuration("CV_AUDIT_RATE_LIMIT_IDLE_TIMEOUT", time.Hour),
		Whitelist:       parseIPList(config.GetEnvString("CV_AUDIT_RATE_LIMIT_WHITELIST", "")),
		Blacklist:       parseIPList(config.GetEnvString("CV_AUDIT_RATE_LIMIT_BLACKLIST", "")),
		EndpointConfigs: DefaultEndpointConfigs(auditLimit, auditBurst),
	}
}

// DefaultEndpointConfigs returns the endpoint-specific configurations.
// Non-positive arguments fall back to 60 requests per minute with a burst of 10.
func DefaultEndpointConfigs(auditLimit, auditBurst int) []EndpointConfig {
	if auditLimit <= 0 {
		auditLimit = 60
	}
	if auditBurst <= 0 {
		auditBurst = 10
	}
	return []EndpointConfig{
		// Full audits run every rule
		{Path: "/audit", Method: "POST", Limit: auditLimit, Window: time.Minute, Burst: auditBurst},
		{Path: "/report", Method: "POST", Limit: max(1, auditLimit/2), Window: time.Minute, Burst: max(1, auditBurst/2)},

		// Cheap checks
		{Path: "/quick-check", Method: "POST", Limit: auditLimit * 10, Window: time.Minute, Burst: auditBurst * 3},
		{Path: "/detect-language", Method: "POST", Limit: auditLimit * 2, Window: time.Minute, Burst: auditBurst * 2},

		// One bucket for every country code
		{Path: "/countries/", Method: "GET", Limit: 300, Window: time.Minute, Burst: 30},

		// Other reads share the default bucket; GET /health is unlimited (see matcher)
	}
}

// parseIPList parses a comma-separated list of IP addresses into a map.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	if list == "" {
		return result
	}

	ips := strings.Split(list, ",")
	for _, ip := range ips {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}

	return result
}

