package commands

import (
	"bufio"
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
	Register(&DoneCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct {
	yes bool
}

// SetYes skips the confirmation prompt (for testing).
func (c *DoneCmd) SetYes(yes bool) {
	c.yes = yes
}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return nil }
func (c *DoneCmd) Synopsis() string  { return "Mark a task completed" }
func (c *DoneCmd) Usage() string     { return "tjournal done [common flags] [--yes] <position>" }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.yes, "yes", false, "")
	fs.BoolVar(&c.yes, "y", false, "")
}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, logger *log.Logger, args []string, in io.Reader, out, errOut io.Writer) int {
	pos, err := ParsePosition(args)
	if err != nil {
		if errors.Is(err, ErrPositionRequired) {
			fmt.Fprintln(errOut, "error: position required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	s, code := loadStore(cfg, logger, errOut)
	if code != exitcode.Success {
		return code
	}

	active := s.Active()
	if pos < 1 || pos > len(active) {
		fmt.Fprintf(errOut, "error: position out of range: %d not in [1, %d]\n", pos, len(active))
		return exitcode.UserError
	}

	if !c.yes && !confirm(in, out, active[pos-1].Task.Text) {
		logger.Debug("completion declined", "position", pos)
		if !cfg.Quiet {
			fmt.Fprintln(out, "aborted")
		}
		return exitcode.Success
	}

	task, err := s.Complete(pos)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	logger.Debug("task completed", "position", pos, "text", task.Text)

	if code := saveStore(cfg, logger, s, errOut); code != exitcode.Success {
		return code
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// confirm prompts for a yes/no answer on in. Anything but y/yes,
// including EOF, declines.
func confirm(in io.Reader, out io.Writer, text string) bool {
	fmt.Fprintf(out, "complete %q? [y/N] ", text)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
