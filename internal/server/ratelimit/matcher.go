package ratelimit

import (
	"strings"
)

// defaultRouteKey names the bucket shared by every request no endpoint entry covers.
const defaultRouteKey = "*"

// Route is the rate-limit policy a request falls under.
type Route struct {
	Key       string // bucket key shared by every path the route covers
	Config    EndpointConfig
	Unlimited bool
}

// MatchRoute resolves a request to its route. Exact entries win over prefix
// entries (paths ending in "/"), so "/countries/" covers "/countries/{code}"
// with a single bucket. Anything unmatched falls back to one shared default
// route, so varying the path never mints a new bucket.
func MatchRoute(path, method string, configs []EndpointConfig, fallback EndpointConfig) Route {
	if path == "/health" && method == "GET" {
		return Route{Key: "GET /health", Unlimited: true}
	}

	for _, c := range configs {
		if c.Method == method && c.Path == path {
			return routeFor(c)
		}
	}

	var best *EndpointConfig
	for i := range configs {
		c := &configs[i]
		if c.Method != method || !strings.HasSuffix(c.Path, "/") || !strings.HasPrefix(path, c.Path) {
			continue
		}
		if best == nil || len(c.Path) > len(best.Path) {
			best = c
		}
	}
	if best != nil {
		return routeFor(*best)
	}

	return Route{Key: defaultRouteKey, Config: fallback, Unlimited: fallback.Limit <= 0}
}

func routeFor(c EndpointConfig) Route {
	return Route{
		Key:       c.Method + " " + c.Path,
		Config:    c,
		Unlimited: c.Limit <= 0 || c.Window <= 0,
	}
}
