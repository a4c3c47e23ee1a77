package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&NewCmd{})
}

// NewCmd implements the new command. "add" is an alias.
type NewCmd struct{}

func (c *NewCmd) Name() string      { return "new" }
func (c *NewCmd) Aliases() []string { return []string{"add"} }
func (c *NewCmd) Synopsis() string  { return "Add a task" }
func (c *NewCmd) Usage() string     { return "todo new <label...>" }
func (c *NewCmd) NeedsStore() bool  { return true }

func (c *NewCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *NewCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	// Check for label
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: label required")
		return exitcode.Error
	}

	// Join args to form label
	label := strings.Join(args, " ")
	if strings.TrimSpace(label) == "" {
		fmt.Fprintln(errOut, "error: label required")
		return exitcode.Error
	}

	task, err := svc.AddTask(ctx, label)
	if err != nil {
		if errors.Is(err, service.ErrNotInitialized) {
			fmt.Fprintln(errOut, "error: storage not initialized (run: todo init)")
			return exitcode.Error
		}
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.Error
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "added task %d\n", task.ID)
	}
	return exitcode.Success
}
