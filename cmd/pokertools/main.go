package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/pokertools/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" help:"HCL config file" default:"pokertools.hcl" env:"POKERTOOLS_CONFIG"`
	LogLevel string           `short:"l" help:"Log level (debug, info, warn, error); overrides the config file" env:"POKERTOOLS_LOG_LEVEL"`
	NoColor  bool             `help:"Disable colored output"`
}

type CLI struct {
	Globals

	Canonical  CanonicalCmd  `cmd:"" help:"Canonicalize a flop and translate holecards and board cards with it"`
	Isomorphs  IsomorphsCmd  `cmd:"" help:"List every suit isomorph of a flop"`
	Canonicals CanonicalsCmd `cmd:"" help:"List the canonical flops with class weights and index slots"`
	Range      RangeCmd      `cmd:"" help:"Expand range notation into holecard combos"`
	Props      PropsCmd      `cmd:"" help:"Show hand properties of holecards on a flop"`
	Bluffs     BluffsCmd     `cmd:"" help:"List bluff candidates on a flop"`
	Report     ReportCmd     `cmd:"" help:"Summarize every canonical flop by suit pattern"`
	Deal       DealCmd       `cmd:"" help:"Deal holecards and a flop from a seeded deck and canonicalize them"`
}

// App carries what commands need to run.
type App struct {
	Out    io.Writer
	Logger *log.Logger
	Config *config.Config
	Clock  quartz.Clock
}

func newApp(out, errOut io.Writer, g Globals) (*App, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.NoColor {
		cfg.NoColor = true
	}

	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(errOut, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "pokertools",
		Level:           level,
	})
	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
		logger.SetColorProfile(termenv.Ascii)
	}
	logger.Debug("Loaded config", "file", g.Config, "board_pairs", cfg.Bluff.BoardPairs, "workers", cfg.Report.Workers)

	return &App{
		Out:    out,
		Logger: logger,
		Config: cfg,
		Clock:  quartz.NewReal(),
	}, nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokertools"),
		kong.Description("Flop canonicalization, suit isomorphism and range tools for hold'em"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	app, err := newApp(os.Stdout, os.Stderr, cli.Globals)
	if err != nil {
		ctx.FatalIfErrorf(fmt.Errorf("config: %w", err))
	}

	err = ctx.Run(app)
	if err != nil {
		app.Logger.Debug("Command failed", "command", ctx.Command(), "error", err)
	}
	ctx.FatalIfErrorf(err)
}
