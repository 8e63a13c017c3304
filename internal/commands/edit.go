package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"tjournal/internal/config"
	"tjournal/internal/exitcode"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command.
type EditCmd struct{}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Replace a task's text" }
func (c *EditCmd) Usage() string     { return "tjournal edit [common flags] <position> <text...>" }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, logger *log.Logger, args []string, in io.Reader, out, errOut io.Writer) int {
	pos, err := ParsePosition(args)
	if err != nil {
		if errors.Is(err, ErrPositionRequired) {
			fmt.Fprintln(errOut, "error: position and text required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}
	text := strings.Join(args[1:], " ")
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(errOut, "error: position and text required")
		return exitcode.UserError
	}

	s, code := loadStore(cfg, logger, errOut)
	if code != exitcode.Success {
		return code
	}
	task, err := s.Edit(pos, text)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	logger.Debug("task edited", "position", pos, "text", task.Text)

	if code := saveStore(cfg, logger, s, errOut); code != exitcode.Success {
		return code
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
