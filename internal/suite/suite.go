// Package suite runs the studio's fixed set of quantum audio operations in
// order and collects a result-or-error entry for each one.
package suite

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pitchforkecho/echoq/internal/analyze"
	"github.com/pitchforkecho/echoq/internal/qjob"
)

// Operation names, in execution order. The set is closed and known at build
// time, so it is a literal ordered list rather than a registry.
const (
	OpSynthesis     = "Audio Synthesis"
	OpConsciousness = "Consciousness Audio"
	OpEcho          = "Echo Optimization"
	OpFrequency     = "Frequency Harmonization"
	OpSpatial       = "Spatial Audio"
)

// Entry is the outcome of one operation: either a job with its analysis, or
// an error description. A failed job keeps its raw result alongside Err.
type Entry struct {
	Job      *qjob.Result    `json:"quantum_result,omitempty"`
	Analysis *analyze.Report `json:"audio_analysis,omitempty"`
	Err      string          `json:"error,omitempty"`
}

// Failed reports whether the entry records a failure.
func (e Entry) Failed() bool { return e.Err != "" }

// Result is one full suite run. Order preserves execution order; Entries
// always holds one entry per operation, failures included. Read-only after
// Run returns.
type Result struct {
	Order   []string
	Entries map[string]Entry
}

// Runner executes the suite against one dispatcher.
type Runner struct {
	disp  *qjob.Dispatcher
	shots int
	log   zerolog.Logger
}

// NewRunner creates a suite runner. shots applies to every submission.
func NewRunner(disp *qjob.Dispatcher, shots int, log zerolog.Logger) *Runner {
	return &Runner{
		disp:  disp,
		shots: shots,
		log:   log.With().Str("component", "suite").Logger(),
	}
}

type operation struct {
	name   string
	qubits int
	submit func(ctx context.Context, count, shots int) (qjob.Result, error)
}

func (r *Runner) operations() []operation {
	return []operation{
		{OpSynthesis, 4, r.disp.Synthesis},
		{OpConsciousness, 3, r.disp.Consciousness},
		{OpEcho, 4, r.disp.Echo},
		{OpFrequency, 3, r.disp.Frequency},
		{OpSpatial, 4, r.disp.Spatial},
	}
}

// Run executes every operation sequentially. Any per-operation failure —
// manager error, unsuccessful job, or analysis error — is contained as that
// operation's entry and never aborts the rest of the suite.
func (r *Runner) Run(ctx context.Context) *Result {
	ops := r.operations()
	res := &Result{
		Order:   make([]string, 0, len(ops)),
		Entries: make(map[string]Entry, len(ops)),
	}
	r.log.Info().Int("operations", len(ops)).Msg("Starting quantum audio suite")

	for _, op := range ops {
		res.Order = append(res.Order, op.name)
		r.log.Info().Str("operation", op.name).Msg("Executing operation")

		job, err := op.submit(ctx, op.qubits, r.shots)
		if err != nil {
			r.log.Error().Err(err).Str("operation", op.name).Msg("Operation failed")
			res.Entries[op.name] = Entry{Err: err.Error()}
			continue
		}

		report, err := analyze.Analyze(job)
		if err != nil {
			r.log.Error().Err(err).Str("operation", op.name).Msg("Analysis failed")
			res.Entries[op.name] = Entry{Job: &job, Err: err.Error()}
			continue
		}

		res.Entries[op.name] = Entry{Job: &job, Analysis: &report}
		r.log.Info().
			Str("operation", op.name).
			Float64("quality", report.Quality).
			Msg("Operation completed")
	}

	return res
}
