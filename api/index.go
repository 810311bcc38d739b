package handler

import (
	"net/http"

	"players-proxy/internal/cache"
	"players-proxy/internal/config"
	internallog "players-proxy/internal/log"
	"players-proxy/internal/proxy"
)

var defaultHandler http.Handler

func init() {
	internallog.Init()
	s := proxy.New(proxy.Config{
		UpstreamURL: config.GetEnv("UPSTREAM_URL", config.DefaultUpstreamURL),
		TTL:         config.GetSeconds("CACHE_TTL", config.DefaultTTL),
		Client:      &http.Client{Timeout: config.GetSeconds("UPSTREAM_TIMEOUT", config.DefaultUpstreamTimeout)},
		Store:       cache.NewMemoryStore(),
	})
	defaultHandler = s.Handler()
}

// Handler is the entry point for Vercel's Go runtime.
func Handler(w http.ResponseWriter, r *http.Request) {
	defaultHandler.ServeHTTP(w, r)
}
