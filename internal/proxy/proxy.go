package proxy

import (
	"fmt"
	"net/http"
	"time"

	"github.com/apex/log"
	"golang.org/x/sync/singleflight"

	"players-proxy/internal/cache"
	"players-proxy/internal/config"
)

// HTTPClient represents the subset of *http.Client used by the service.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config provides all the dependencies required to build a Service.
type Config struct {
	UpstreamURL string
	TTL         time.Duration
	Client      HTTPClient
	Store       cache.Store
	Logger      log.Interface
	Now         func() time.Time
}

// Service serves the player snapshot, refreshing it from the upstream API when
// it goes stale and falling back to the stale copy when a refresh fails.
type Service struct {
	upstreamURL  string
	ttl          time.Duration
	cacheControl string
	client       HTTPClient
	store        cache.Store
	logger       log.Interface
	now          func() time.Time
	refresh      singleflight.Group
}

// New constructs a Service from the provided configuration, applying sensible defaults.
func New(cfg Config) *Service {
	s := &Service{
		upstreamURL: cfg.UpstreamURL,
		ttl:         cfg.TTL,
		client:      cfg.Client,
		store:       cfg.Store,
		logger:      cfg.Logger,
		now:         cfg.Now,
	}

	if s.upstreamURL == "" {
		s.upstreamURL = config.DefaultUpstreamURL
	}
	if s.ttl <= 0 {
		s.ttl = config.DefaultTTL
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: config.DefaultUpstreamTimeout}
	}
	if s.store == nil {
		s.store = cache.NewMemoryStore()
	}
	if s.logger == nil {
		s.logger = log.Log
	}
	if s.now == nil {
		s.now = time.Now
	}

	secs := int(s.ttl / time.Second)
	s.cacheControl = fmt.Sprintf("public, max-age=%d, s-maxage=%d, stale-while-revalidate=%d", secs, secs, 2*secs)

	return s
}

// Register attaches the service handlers to the provided mux.
func (s *Service) Register(mux *http.ServeMux) {
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/players", s.handlePlayers)
	mux.HandleFunc("/", s.handlePlayers)
}

// Handler returns the service wrapped in a fresh mux.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	s.Register(mux)
	return mux
}
