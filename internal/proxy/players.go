package proxy

import (
	"encoding/json"
	"net/http"
	"time"
)

type errorResponse struct {
	Error string `json:"error"`
}

const noCacheMessage = "Failed to fetch player data and no cache available."

func (s *Service) handlePlayers(w http.ResponseWriter, r *http.Request) {
	sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
	start := time.Now()
	cacheState := "MISS"
	defer func() {
		s.logLine("players", r.Method, r.URL.RequestURI(), sw.status, sw.written, time.Since(start), cacheState)
	}()
	w = sw

	if r.Method == http.MethodOptions {
		writeCORS(w)
		w.WriteHeader(http.StatusNoContent)
		cacheState = "-"
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		cacheState = "-"
		return
	}

	now := s.now()
	snap, ok := s.store.Get()
	if ok && snap.Fresh(now, s.ttl) {
		s.logger.Debug("serving player data from cache")
		cacheState = "HIT"
		s.writePlayers(w, r, snap.Payload)
		return
	}

	payload, err := s.refreshSnapshot()
	if err == nil {
		s.logger.Info("fetched new player data and updated cache")
		cacheState = "MISS:fetched"
		s.writePlayers(w, r, payload)
		return
	}

	if ok {
		s.logger.WithError(err).Warn("upstream fetch failed, serving stale cache")
		cacheState = "STALE"
		s.writePlayers(w, r, snap.Payload)
		return
	}

	s.logger.WithError(err).Error("upstream fetch failed and no cache available")
	cacheState = "ERROR"
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	if r.Method != http.MethodHead {
		_ = json.NewEncoder(w).Encode(errorResponse{Error: noCacheMessage})
	}
}

// refreshSnapshot performs one upstream fetch, collapsing concurrent refreshes
// into a single call. The store is only touched on success, so a failed fetch
// leaves any previous snapshot intact for the stale fallback.
func (s *Service) refreshSnapshot() ([]byte, error) {
	v, err, _ := s.refresh.Do("players", func() (any, error) {
		payload, err := s.fetchUpstream()
		if err != nil {
			return nil, err
		}
		s.store.Replace(payload, s.now())
		return payload, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (s *Service) writePlayers(w http.ResponseWriter, r *http.Request, payload []byte) {
	writeCORS(w)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", s.cacheControl)
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(payload)
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"service": "players-proxy", "status": "ok"})
}
