// Package config handles journal file path resolution and common flag state.
package config

import (
	"os"
	"path/filepath"
)

const (
	// JournalFileName is the default journal filename in the home directory.
	JournalFileName = ".tjournal.json"

	// JournalEnv is the environment variable overriding the journal path.
	JournalEnv = "TJOURNAL_FILE"
)

// Config holds the resolved journal path and common settings.
type Config struct {
	// JournalPath is the journal file path.
	JournalPath string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a Config with the given or default journal path.
// If journalPath is empty, uses $TJOURNAL_FILE, then the default path.
func New(journalPath string) *Config {
	path := journalPath
	if path == "" {
		path = os.Getenv(JournalEnv)
	}
	if path == "" {
		path = DefaultJournalPath()
	}
	return &Config{JournalPath: path}
}

// DefaultJournalPath returns the default journal file location:
// JournalFileName in the user's home directory, falling back to the
// current directory when home can't be determined.
func DefaultJournalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return JournalFileName
	}
	return filepath.Join(home, JournalFileName)
}
