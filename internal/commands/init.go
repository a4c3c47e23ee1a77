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
	Register(&InitCmd{})
}

// InitCmd implements the init command.
type InitCmd struct{}

func (c *InitCmd) Name() string      { return "init" }
func (c *InitCmd) Aliases() []string { return nil }
func (c *InitCmd) Synopsis() string  { return "Initialize task storage" }
func (c *InitCmd) Usage() string     { return "todo init" }
func (c *InitCmd) NeedsStore() bool  { return true }

func (c *InitCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *InitCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.Error
	}

	if err := svc.Initialize(ctx); err != nil {
		if errors.Is(err, service.ErrAlreadyInitialized) {
			fmt.Fprintln(errOut, "error: storage already initialized")
			return exitcode.Error
		}
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.Error
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "initialized %s\n", cfg.StoragePath)
	}
	return exitcode.Success
}
