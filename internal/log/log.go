package log

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// Init sets up apex with a stdout handler and a log level from the
// PLAYERS_PROXY_LOG env variable.
func Init() {
	level := strings.ToUpper(os.Getenv("PLAYERS_PROXY_LOG"))
	if level == "" {
		level = "INFO"
	}
	log.SetHandler(&StdoutHandler{})
	log.SetLevelFromString(level)
}

// StdoutHandler formats log messages and writes them to stdout.
type StdoutHandler struct{}

// HandleLog implements the log.Handler interface.
func (h *StdoutHandler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())
	var fields strings.Builder
	for _, f := range e.Fields.Names() {
		fmt.Fprintf(&fields, " %s=%v", f, e.Fields.Get(f))
	}
	fmt.Fprintf(os.Stdout, "%s %.1s %s%s\n", timestamp, level, e.Message, fields.String())
	return nil
}
