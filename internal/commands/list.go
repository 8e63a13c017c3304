package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"tjournal/internal/config"
	"tjournal/internal/exitcode"
	"tjournal/internal/output"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command: active tasks, numbered.
// Also handles bare `tjournal` with no arguments.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List active tasks" }
func (c *ListCmd) Usage() string     { return "tjournal list [common flags]" }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, logger *log.Logger, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	s, code := loadStore(cfg, logger, errOut)
	if code != exitcode.Success {
		return code
	}

	entries := s.Active()
	if len(entries) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}
	for _, e := range entries {
		output.FormatEntry(out, e)
	}
	return exitcode.Success
}
