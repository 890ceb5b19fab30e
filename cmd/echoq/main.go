// echoq runs the pitchfork-echo-studio quantum audio operation suite end to
// end and reports what came back.
//
// Usage:
//
//	echoq                 # smoke run against the built-in offline manager
//	echoq -format json    # structured output for automation
//	echoq -shots 500 -seed 7
//
// Output modes (auto-detected):
//
//	terminal — styled output (default when stdout is a TTY)
//	plain    — terse text (default when piped)
//	json     — structured JSON
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/pitchforkecho/echoq/internal/analyze"
	"github.com/pitchforkecho/echoq/internal/config"
	"github.com/pitchforkecho/echoq/internal/metrics"
	"github.com/pitchforkecho/echoq/internal/qjob"
	"github.com/pitchforkecho/echoq/internal/report"
	"github.com/pitchforkecho/echoq/internal/suite"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("echoq", flag.ContinueOnError)
	fs.SetOutput(stderr)
	formatFlag := fs.String("format", "", "Output format: terminal, plain, json (default from config)")
	themeFlag := fs.String("theme", "", "Theme: default, mono")
	shotsFlag := fs.Int("shots", 0, "Shots per submission (overrides config)")
	seedFlag := fs.Uint64("seed", 0, "Offline manager seed (0 = time-derived)")
	configFlag := fs.String("config", "", "Path to config file (default .echoq.yaml)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(stderr, "echoq: %v\n", err)
		return 1
	}
	if *formatFlag != "" {
		cfg.Format = *formatFlag
	}
	if *themeFlag != "" {
		cfg.Theme = *themeFlag
	}
	if *shotsFlag > 0 {
		cfg.Shots = *shotsFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log := newLogger(stderr, cfg.LogLevel)
	log.Info().Str("workspace", cfg.Workspace).Msg("Quantum audio integration initialized")

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	mgr := qjob.NewStaticManager(seed)
	disp := qjob.NewDispatcher(mgr, cfg.Workspace, qjob.DeviceType(cfg.Device), log)

	rep := smoke(ctx, disp, cfg, log)

	renderer := selectRenderer(resolveFormat(cfg.Format, stdout), cfg.Theme, stdout)
	fmt.Fprint(stdout, renderer.Render(rep))
	return 0
}

// smoke exercises three operations individually with fixed small parameters,
// then runs the full suite and aggregates its metrics.
func smoke(ctx context.Context, disp *qjob.Dispatcher, cfg *config.Config, log zerolog.Logger) *report.Report {
	probes := []struct {
		name   string
		qubits int
		submit func(ctx context.Context, count, shots int) (qjob.Result, error)
	}{
		{suite.OpSynthesis, 4, disp.Synthesis},
		{suite.OpConsciousness, 3, disp.Consciousness},
		{suite.OpEcho, 4, disp.Echo},
	}

	rep := &report.Report{Workspace: cfg.Workspace}
	for _, p := range probes {
		log.Info().Str("operation", p.name).Msg("Probing operation")
		job, err := p.submit(ctx, p.qubits, cfg.Shots)
		if err != nil {
			rep.Probes = append(rep.Probes, report.Probe{Name: p.name, Err: err.Error()})
			continue
		}
		analysis, err := analyze.Analyze(job)
		if err != nil {
			rep.Probes = append(rep.Probes, report.Probe{Name: p.name, Job: &job, Err: err.Error()})
			continue
		}
		rep.Probes = append(rep.Probes, report.Probe{Name: p.name, Job: &job, Analysis: &analysis})
	}

	runner := suite.NewRunner(disp, cfg.Shots, log)
	rep.Suite = runner.Run(ctx)
	rep.Perf = metrics.Summarize(rep.Suite)
	return rep
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// resolveFormat maps "auto" to terminal on a TTY and plain otherwise.
func resolveFormat(format string, stdout io.Writer) string {
	if format != "" && format != "auto" {
		return format
	}
	if isTTYWriter(stdout) {
		return "terminal"
	}
	return "plain"
}

func selectRenderer(format, theme string, stdout io.Writer) report.Renderer {
	switch format {
	case "json":
		return report.NewJSON()
	case "terminal":
		return report.NewTerminal(report.ThemeByName(theme), termWidth(stdout))
	default:
		return report.NewPlain()
	}
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termWidth returns the terminal width for w, defaulting to 80.
func termWidth(w io.Writer) int {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			width = tw
		}
	}
	return width
}
