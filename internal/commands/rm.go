package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command. Removed ids are never reused.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return nil }
func (c *RmCmd) Synopsis() string  { return "Delete a task" }
func (c *RmCmd) Usage() string     { return "todo rm <id>" }
func (c *RmCmd) NeedsStore() bool  { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, err := ParseTaskID(args)
	if err != nil {
		if errors.Is(err, ErrTaskIDRequired) {
			fmt.Fprintln(errOut, "error: task id required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.Error
	}
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.Error
	}

	if err := svc.RemoveTask(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotInitialized) {
			fmt.Fprintln(errOut, "error: storage not initialized (run: todo init)")
			return exitcode.Error
		}
		if errors.Is(err, service.ErrTaskNotFound) {
			fmt.Fprintf(errOut, "error: task not found: %d\n", id)
			return exitcode.Error
		}
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.Error
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
