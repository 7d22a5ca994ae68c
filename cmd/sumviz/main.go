package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/san-kum/sumviz/internal/browse"
	"github.com/san-kum/sumviz/internal/config"
	"github.com/san-kum/sumviz/internal/plot"
	"github.com/san-kum/sumviz/internal/registry"
	"github.com/san-kum/sumviz/internal/render"
	"github.com/san-kum/sumviz/internal/resolve"
	"github.com/san-kum/sumviz/internal/series"
	"github.com/san-kum/sumviz/internal/supervise"
)

func main() {
	// Flag parsing stays off: the token grammar uses single-dash
	// multi-char flags (-nl) and -h means historic, not help.
	rootCmd := &cobra.Command{
		Use:   "sumviz [case.DATA ...] [vector ...] [-h] [-nl] [-s] [-l]",
		Short: "plot summary and restart vectors from simulation cases",
		Long: `sumviz resolves vector identifiers against one or more simulation
cases and renders them as terminal charts. Identifiers may be plain
summary keys (glob wildcards allowed, NAME or NAME:QUALIFIER) or
restart references NAME:I,J,K sampling a grid cell per report step.

Flags among the tokens:
  -h   overlay historic vectors (reference case only)
  -nl  suppress all legends
  -s   render everything in a single shared figure
  -l   disable legend truncation (default cap: 5 cases)

While rendering, press r to reload (re-reads all input files) and q to
quit.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE:               runSupervised,
	}

	// The isolated rendering unit the supervisor respawns.
	renderCmd := &cobra.Command{
		Use:                "render",
		Hidden:             true,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args)
		},
	}

	vectorsCmd := &cobra.Command{
		Use:   "vectors [case.DATA]",
		Short: "browse a case's vector vocabulary",
		Args:  cobra.ExactArgs(1),
		RunE:  runVectors,
	}

	rootCmd.AddCommand(renderCmd, vectorsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// flags recognized among the argument tokens.
type tokenFlags struct {
	historic     bool
	noLegend     bool
	singleFigure bool
	noLegendCap  bool
}

func splitFlags(tokens []string) (tokenFlags, []string) {
	var flags tokenFlags
	var rest []string
	for _, token := range tokens {
		switch token {
		case "-h":
			flags.historic = true
		case "-nl":
			flags.noLegend = true
		case "-s":
			flags.singleFigure = true
		case "-l":
			flags.noLegendCap = true
		default:
			rest = append(rest, token)
		}
	}
	return flags, rest
}

// resolveTokens runs case opening, flag splitting and vector resolution
// over the raw argument list. Both the supervisor (to fail fast) and
// the render child (from scratch, picking up edited files) call it.
func resolveTokens(args []string, cfg *config.Config) (*registry.Registry, resolve.Result, plot.Options, error) {
	reg, leftovers := registry.Open(args)
	if reg.Len() == 0 {
		return nil, resolve.Result{}, plot.Options{}, registry.ErrNoCases
	}

	flags, vectorTokens := splitFlags(leftovers)
	opts := plot.Options{
		SingleFigure: flags.singleFigure,
		NoLegend:     flags.noLegend,
		Historic:     flags.historic,
		LegendCap:    cfg.LegendCap,
	}
	if flags.noLegendCap {
		opts.LegendCap = 0
	}

	res, err := resolve.Resolve(reg.Reference(), vectorTokens, os.Stderr)
	if err != nil {
		return nil, resolve.Result{}, plot.Options{}, err
	}
	return reg, res, opts, nil
}

func runSupervised(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	cfg := config.Discover()

	// Fail fast before taking over the terminal: zero cases or zero
	// vectors is fatal, nothing is rendered.
	if _, _, _, err := resolveTokens(args, cfg); err != nil {
		return err
	}

	sup := supervise.New(
		os.Stdin,
		os.Stdout,
		supervise.NewRawTerminal(os.Stdin),
		supervise.NewProcessUnit(append([]string{"render"}, args...)),
	)
	return sup.Run()
}

// runRender is the rendering unit: the full pipeline against the
// original arguments, then the charts stay up until the supervisor
// tears the process down.
func runRender(args []string) error {
	cfg := config.Discover()

	reg, res, opts, err := resolveTokens(args, cfg)
	if err != nil {
		return err
	}

	cases := reg.Cases()
	sources := make([]series.Source, len(cases))
	summaries := make([]plot.SummarySource, len(cases))
	for i, c := range cases {
		sources[i] = c
		summaries[i] = c
	}

	rseries := series.Build(res.Restart, sources, os.Stderr)
	groups := plot.Assemble(res.Plain, rseries, summaries, opts)
	render.New(os.Stdout, cfg).Render(groups)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}

func runVectors(cmd *cobra.Command, args []string) error {
	reg, _ := registry.Open(args)
	if reg.Len() == 0 {
		return registry.ErrNoCases
	}
	ref := reg.Reference()

	selected, err := browse.Run(ref.Name(), ref.Keys("*"))
	if err != nil {
		return err
	}
	if selected != "" {
		fmt.Println(selected)
	}
	return nil
}
