package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/hexplay/internal/client/client"
	"github.com/dmitrijs2005/hexplay/internal/client/config"
)

var ErrUsage = errors.New("usage")

type App struct {
	config *config.Config
	client client.Client
	out    io.Writer
	in     io.Reader
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}
	return &App{config: c, client: apiClient, out: os.Stdout, in: os.Stdin}, nil
}

// Run executes one command, or starts the REPL for "repl". It returns a
// user-readable error.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.client.Close()

	if len(args) == 0 {
		a.printHelp()
		return ErrUsage
	}

	if args[0] == "repl" {
		printlnFn("hexplay CLI (type 'help' for commands)")
		runREPL(ctx, a, bufio.NewScanner(a.in))
		return nil
	}

	known, err := dispatch(ctx, a, args[0], args[1:])
	if !known {
		a.printHelp()
		return fmt.Errorf("unknown command %q", args[0])
	}
	if err != nil {
		return &commandError{msg: a.describe(err), err: err}
	}
	return nil
}

// commandError carries the terminal message for err while keeping it
// matchable with errors.Is.
type commandError struct {
	msg string
	err error
}

func (e *commandError) Error() string { return e.msg }
func (e *commandError) Unwrap() error { return e.err }

// withTimeout bounds one remote call by the configured request timeout.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, helpText)
}

const helpText = `Commands:
  status <question>
  add-user <name> <email> [age]
  get-user <id>
  get-user-by-token <token>
  get-user-by-email <email>
  get-users [start_id] [page_size]
  update-user <id> <version> [-name N] [-age A]
  delete-user <id> <version>
  repl`
