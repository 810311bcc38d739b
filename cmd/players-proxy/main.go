package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/apex/log"

	"players-proxy/internal/cache"
	"players-proxy/internal/config"
	internallog "players-proxy/internal/log"
	"players-proxy/internal/proxy"
)

func main() {
	internallog.Init()

	s := proxy.New(proxy.Config{
		UpstreamURL: config.GetEnv("UPSTREAM_URL", config.DefaultUpstreamURL),
		TTL:         config.GetSeconds("CACHE_TTL", config.DefaultTTL),
		Client:      &http.Client{Timeout: config.GetSeconds("UPSTREAM_TIMEOUT", config.DefaultUpstreamTimeout)},
		Store:       cache.NewMemoryStore(),
	})

	mux := http.NewServeMux()
	s.Register(mux)

	addr := strings.TrimSpace(config.GetEnv("ADDR", ""))
	if addr == "" {
		host := config.GetEnv("HOST", "0.0.0.0")
		port := config.GetEnv("PORT", "8080")
		port = strings.TrimPrefix(port, ":")
		addr = host + ":" + port
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	publicURL := config.DerivePublicURL(addr, config.GetEnv("HOST", ""), config.GetEnv("PORT", ""))
	log.WithFields(log.Fields{"bind": addr, "url": publicURL}).Info("players proxy listening")
	if err := srv.ListenAndServe(); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
