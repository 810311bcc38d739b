package proxy

import (
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
)

// fetchUpstream does a one-shot GET against the upstream players endpoint and
// returns the raw JSON payload. Transport errors, non-2xx statuses and
// unparseable bodies all come back as plain errors for the caller to demote
// to the stale fallback.
func (s *Service) fetchUpstream() ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, s.upstreamURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "identity")
	req.Header.Set("User-Agent", "players-proxy/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("upstream status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream body: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("upstream body is not valid JSON")
	}
	return body, nil
}
