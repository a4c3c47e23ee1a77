package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todo help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todo                                    List open tasks
  todo init [common flags]                Initialize task storage
  todo list [common flags] [-a|--all]     List tasks (open only by default)
  todo new [common flags] <label...>      Add a task
  todo add [common flags] <label...>      Add a task (alias for new)
  todo complete [common flags] <id>       Mark a task completed
  todo rm [common flags] <id>             Delete a task
  todo help                               Print usage
  todo version                            Print version

Common flags:
  --config <dir>    Override config directory
  --storage <path>  Override storage file path
  --quiet           Suppress informational output
  --debug           Print debug logs to stderr
`
