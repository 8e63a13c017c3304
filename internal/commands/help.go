package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"tjournal/internal/config"
	"tjournal/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "tjournal help" }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, logger *log.Logger, args []string, in io.Reader, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  tjournal                                  List active tasks
  tjournal add [common flags] <text...>     Add a task
  tjournal done [common flags] [--yes] <position>
  tjournal edit [common flags] <position> <text...>
  tjournal list [common flags]
  tjournal list-completed [common flags]
  tjournal help
  tjournal version

Positions refer to the numbered list the command operates on: the active
list for done and edit. Completing a task renumbers the tasks below it.

Common flags:
  -j, --journal-file <path>   Use a different journal file
  --quiet                     Suppress informational output
  --debug                     Print debug logs to stderr
`
