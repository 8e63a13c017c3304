package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"tjournal/internal/config"
	"tjournal/internal/exitcode"
	"tjournal/internal/journal"
	"tjournal/internal/store"
)

// loadStore loads the journal from cfg.JournalPath. On failure it writes
// the error message and returns a nil store with the exit code to use.
func loadStore(cfg *config.Config, logger *log.Logger, errOut io.Writer) (*store.Store, int) {
	s, err := journal.Load(cfg.JournalPath)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		if errors.Is(err, journal.ErrCorrupt) {
			return nil, exitcode.DataError
		}
		return nil, exitcode.IOError
	}
	logger.Debug("journal loaded", "path", cfg.JournalPath, "tasks", s.Len())
	return s, exitcode.Success
}

// saveStore persists the store back to cfg.JournalPath.
func saveStore(cfg *config.Config, logger *log.Logger, s *store.Store, errOut io.Writer) int {
	if err := journal.Save(cfg.JournalPath, s); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}
	logger.Debug("journal saved", "path", cfg.JournalPath, "tasks", s.Len())
	return exitcode.Success
}
