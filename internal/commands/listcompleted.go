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
	Register(&ListCompletedCmd{})
}

// ListCompletedCmd implements the list-completed command: completed
// tasks in insertion order, numbered independently of the active list.
type ListCompletedCmd struct{}

func (c *ListCompletedCmd) Name() string      { return "list-completed" }
func (c *ListCompletedCmd) Aliases() []string { return []string{"completed"} }
func (c *ListCompletedCmd) Synopsis() string  { return "List completed tasks" }
func (c *ListCompletedCmd) Usage() string     { return "tjournal list-completed [common flags]" }

func (c *ListCompletedCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCompletedCmd) Run(ctx context.Context, cfg *config.Config, logger *log.Logger, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	s, code := loadStore(cfg, logger, errOut)
	if code != exitcode.Success {
		return code
	}

	entries := s.Completed()
	if len(entries) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no completed tasks")
		}
		return exitcode.Success
	}
	for _, e := range entries {
		output.FormatEntry(out, e)
	}
	return exitcode.Success
}
