// Package cli wires the hexpp command line: argument parsing, settings
// resolution, telemetry and the individual commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/atotto/clipboard"

	"github.com/unkn0wn-root/hexpp/internal/errdef"
	"github.com/unkn0wn-root/hexpp/internal/pager"
	"github.com/unkn0wn-root/hexpp/internal/telemetry"
)

const shutdownTimeout = 5 * time.Second

// errDiffers signals a successful diff that found differences.
var errDiffers = errors.New("inputs differ")

// CLI is the root command structure for hexpp.
type CLI struct {
	Config  string   `help:"Settings file (TOML or YAML). Defaults to settings.toml in the config dir." type:"path" placeholder:"FILE"`
	Set     []string `help:"Override a dump setting, e.g. --set group=2. Repeatable." placeholder:"KEY=VALUE"`
	Verbose bool     `short:"v" help:"Log diagnostics to stderr."`

	Dump    DumpCmd    `cmd:"" default:"withargs" help:"Hex dump a file or stdin (default)."`
	Diff    DiffCmd    `cmd:"" help:"Show a unified diff of the hex dumps of two inputs."`
	Info    InfoCmd    `cmd:"" help:"Summarize a file: size, type, digest and preview."`
	View    ViewCmd    `cmd:"" help:"Browse a hex dump interactively."`
	Version VersionCmd `cmd:"" help:"Print version information."`
}

// Runtime carries process dependencies so commands can be exercised in
// tests.
type Runtime struct {
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Getenv    func(string) string
	Clipboard func(string) error
	Pager     func(pager.Options) error

	Version string
	Commit  string
	Date    string

	ctx    context.Context
	logger *log.Logger
}

// NewRuntime returns a runtime bound to the process environment.
func NewRuntime(version, commit, date string) *Runtime {
	return &Runtime{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Getenv:    os.Getenv,
		Clipboard: clipboard.WriteAll,
		Pager:     pager.Run,
		Version:   version,
		Commit:    commit,
		Date:      date,
	}
}

func (rt *Runtime) context() context.Context {
	if rt.ctx == nil {
		return context.Background()
	}
	return rt.ctx
}

func (rt *Runtime) logf(format string, args ...any) {
	if rt.logger != nil {
		rt.logger.Printf(format, args...)
	}
}

func (rt *Runtime) getenv(key string) string {
	if rt.Getenv == nil {
		return ""
	}
	return rt.Getenv(key)
}

type exitSignal struct{ code int }

// Execute parses args, runs the selected command and returns the process
// exit status.
func Execute(args []string, rt *Runtime) (code int) {
	var root CLI
	parser, err := kong.New(&root,
		kong.Name("hexpp"),
		kong.Description("Render binary data as configurable hex dumps."),
		kong.Writers(rt.Stdout, rt.Stderr),
		kong.Exit(func(code int) { panic(exitSignal{code: code}) }),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	if err != nil {
		fmt.Fprintf(rt.Stderr, "hexpp: %v\n", err)
		return 2
	}

	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(exitSignal)
			if !ok {
				panic(r)
			}
			code = sig.code
		}
	}()

	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(rt.Stderr, "hexpp: %v\n", err)
		return 2
	}

	logOut := io.Discard
	if root.Verbose {
		logOut = rt.Stderr
	}
	rt.logger = log.New(logOut, "hexpp: ", 0)

	ctx := rt.context()
	tcfg, err := telemetry.ConfigFromEnv(rt.getenv)
	if err != nil {
		fmt.Fprintf(rt.Stderr, "hexpp: %v\n", err)
	}
	tcfg.Version = rt.Version
	shutdown, err := telemetry.Setup(ctx, tcfg)
	if err != nil {
		rt.logf("telemetry disabled: %v", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			rt.logf("telemetry shutdown: %v", err)
		}
	}()
	rt.ctx = ctx

	return exitCode(rt, kctx.Run(&root, rt))
}

func exitCode(rt *Runtime, err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, errDiffers) {
		return 1
	}
	fmt.Fprintf(rt.Stderr, "hexpp: %v\n", err)
	if errdef.Is(err, errdef.CodeUsage) {
		return 2
	}
	return 1
}

// VersionCmd prints build information.
type VersionCmd struct{}

func (c *VersionCmd) Run(rt *Runtime) error {
	_, err := fmt.Fprintf(rt.Stdout, "hexpp %s\n  commit: %s\n  built:  %s\n", rt.Version, rt.Commit, rt.Date)
	return errdef.Wrap(errdef.CodeOutput, err, "print version")
}
