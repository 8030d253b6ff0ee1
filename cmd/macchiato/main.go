// macchiato runs bundled describe/it suites and prints their report.
//
// Usage:
//
//	macchiato run                 # every bundled suite
//	macchiato run example --table # one suite plus a per-group breakdown
//	macchiato view self           # browse the report in a pager
//	macchiato list
//
// Exit codes: 0 when nothing failed, 1 when any test failed, 2 on usage or
// configuration errors.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/dkoosis/macchiato/internal/config"
	"github.com/dkoosis/macchiato/internal/demo"
	"github.com/dkoosis/macchiato/internal/logging"
	"github.com/dkoosis/macchiato/internal/pager"
	"github.com/dkoosis/macchiato/internal/version"
	"github.com/dkoosis/macchiato/pkg/report"
	"github.com/dkoosis/macchiato/pkg/result"
	"github.com/dkoosis/macchiato/pkg/suite"
)

// errTestsFailed signals a completed run with failing tests.
var errTestsFailed = errors.New("tests failed")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(defaultOptions(stdout, stderr))
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errTestsFailed):
		return 1
	default:
		fmt.Fprintf(stderr, "macchiato: %v\n", err)
		return 2
	}
}

type rootOptions struct {
	stdout  io.Writer
	stderr  io.Writer
	flags   config.CliFlags
	isTTY   func(io.Writer) bool
	openTUI func(ctx context.Context, sections []pager.Section, summary string) error
}

func defaultOptions(stdout, stderr io.Writer) *rootOptions {
	return &rootOptions{
		stdout:  stdout,
		stderr:  stderr,
		isTTY:   config.IsTerminal,
		openTUI: pager.Run,
	}
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "macchiato",
		Short:         "Run describe/it suites and print a mocha-style report",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.flags.NoColorSet = cmd.Flags().Changed("no-color")
			opts.flags.DebugSet = cmd.Flags().Changed("debug")
			opts.flags.TableSet = cmd.Flags().Changed("table")
		},
	}
	root.SetOut(opts.stdout)
	root.SetErr(opts.stderr)

	pf := root.PersistentFlags()
	pf.BoolVar(&opts.flags.NoColor, "no-color", false, "Disable ANSI colors")
	pf.BoolVar(&opts.flags.Debug, "debug", false, "Log diagnostics to stderr")
	pf.StringVar(&opts.flags.ConfigPath, "config", "", "Path to a .macchiato.yaml file")

	root.AddCommand(
		newRunCmd(opts),
		newViewCmd(opts),
		newListCmd(opts),
		newVersionCmd(opts),
	)
	return root
}

// resolve loads configuration and initializes logging for a command.
func (o *rootOptions) resolve() (*config.ResolvedConfig, error) {
	cfg, err := config.ResolveConfig(o.flags, o.isTTY(o.stdout))
	if err != nil {
		return nil, err
	}
	level := logging.LevelWarn
	if cfg.Debug {
		level = logging.LevelDebug
	}
	logging.Init(o.stderr, level)
	logging.Debug("cli", "config resolved: color=%t (%s) debug=%t (%s) table=%t (%s) file=%q",
		cfg.UseColor, cfg.ColorSource, cfg.Debug, cfg.DebugSource, cfg.Table, cfg.TableSource, cfg.ConfigPath)
	return cfg, nil
}

// selectSuites maps names to definitions. No names means the configured
// suites, or every bundled suite.
func selectSuites(names, configured []string) ([]demo.Definition, error) {
	if len(names) == 0 {
		names = configured
	}
	if len(names) == 0 {
		names = demo.Names()
	}
	defs := make([]demo.Definition, 0, len(names))
	for _, name := range names {
		d, ok := demo.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown suite %q (available: %v)", name, demo.Names())
		}
		defs = append(defs, d)
	}
	return defs, nil
}

// execute runs defs as one report.
func execute(cfg *config.ResolvedConfig, defs []demo.Definition) (*report.Reporter, string) {
	r := report.New(report.Config{UseColor: cfg.UseColor}, report.WithLogger(logging.Logger()))
	s := suite.New(r)
	s.Start()
	for _, d := range defs {
		logging.Debug("cli", "running suite %s", d.Name)
		d.Body(s)
	}
	return r, s.Finish()
}

func verdict(stats result.Stats) error {
	if stats.Failed > 0 {
		return errTestsFailed
	}
	return nil
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [suite...]",
		Short: "Run suites and print the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}
			defs, err := selectSuites(args, cfg.Suites)
			if err != nil {
				return err
			}

			r, out := execute(cfg, defs)
			fmt.Fprint(opts.stdout, out)
			if cfg.Table {
				fmt.Fprint(opts.stdout, "\n"+report.Table(r.Entries(), report.TableOptions{
					Title:      "Breakdown",
					GroupWidth: cfg.TableWidth,
				}))
			}
			return verdict(r.Stats())
		},
	}
	cmd.Flags().BoolVar(&opts.flags.Table, "table", false, "Append a per-group breakdown table")
	return cmd
}

func newViewCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "view [suite...]",
		Short: "Run suites and browse the report interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}
			defs, err := selectSuites(args, cfg.Suites)
			if err != nil {
				return err
			}

			r, out := execute(cfg, defs)
			if !opts.isTTY(opts.stdout) {
				logging.Debug("cli", "stdout is not a terminal, printing report")
				fmt.Fprint(opts.stdout, out)
				return verdict(r.Stats())
			}
			sections := pager.Sections(r.Entries(), r.Theme())
			if err := opts.openTUI(cmd.Context(), sections, r.Summary()); err != nil {
				return fmt.Errorf("pager: %w", err)
			}
			return verdict(r.Stats())
		},
	}
}

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bundled suites",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			for _, name := range demo.Names() {
				d, _ := demo.Lookup(name)
				fmt.Fprintf(opts.stdout, "%-8s %s\n", d.Name, d.Description)
			}
		},
	}
}

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintln(opts.stdout, version.String())
		},
	}
}
