package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/labstack/gommon/log"
)

const header = "[${prefix}] ${level}"

var levels = map[string]log.Lvl{
	"DEBUG": log.DEBUG,
	"INFO":  log.INFO,
	"WARN":  log.WARN,
	"ERROR": log.ERROR,
	"OFF":   log.OFF,
}

// NewLogger builds a text logger writing to w, the same stream the showcase
// narrates to. Colors are dropped automatically when w is not a terminal.
func NewLogger(w io.Writer, prefix string, level log.Lvl) *log.Logger {
	l := log.New(prefix)
	l.SetOutput(w)
	l.SetHeader(header)
	l.SetLevel(level)
	return l
}

// ParseLevel maps DEBUG, INFO, WARN, ERROR or OFF (case-insensitive) to a log level.
func ParseLevel(s string) (log.Lvl, error) {
	lvl, ok := levels[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}
