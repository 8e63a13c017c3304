// Package logging constructs the CLI's debug logger.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w. When debug is false the level is
// raised so nothing is emitted; commands can log unconditionally.
func New(w io.Writer, debug bool) *log.Logger {
	level := log.FatalLevel + 1
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          "tjournal",
	})
}
