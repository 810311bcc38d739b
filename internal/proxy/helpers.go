package proxy

import (
	"fmt"
	"net/http"
	"time"

	"github.com/apex/log"
)

type statusWriter struct {
	http.ResponseWriter
	status  int
	written int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	n, err := w.ResponseWriter.Write(p)
	w.written += n
	return n, err
}

func fmtDur(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	sec := float64(d) / float64(time.Second)
	return fmt.Sprintf("%.2fs", sec)
}

func (s *Service) logLine(kind, method, path string, status, bytes int, dur time.Duration, cacheState string) {
	s.logger.WithFields(log.Fields{
		"method": method,
		"status": status,
		"bytes":  bytes,
		"dur":    fmtDur(dur),
		"cache":  cacheState,
		"path":   path,
	}).Info(kind)
}

func writeCORS(h http.ResponseWriter) {
	h.Header().Set("Access-Control-Allow-Origin", "*")
	h.Header().Set("Vary", "Origin")
	h.Header().Set("Access-Control-Allow-Methods", "GET,HEAD,OPTIONS")
	h.Header().Set("Access-Control-Allow-Headers", "Content-Type,Accept")
}
