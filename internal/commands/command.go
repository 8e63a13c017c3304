// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"github.com/charmbracelet/log"

	"tjournal/internal/config"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg carries the resolved journal path and common flags.
	// args contains positional arguments after flag parsing.
	// in is the interactive input stream (confirmation prompts).
	// Returns the process exit code.
	Run(ctx context.Context, cfg *config.Config, logger *log.Logger, args []string, in io.Reader, out, errOut io.Writer) int
}
