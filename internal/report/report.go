// Package report assembles the smoke-run report and renders it for
// terminals, pipes, and automation. Report values are pure data; renderers
// decide presentation.
package report

import (
	"github.com/pitchforkecho/echoq/internal/analyze"
	"github.com/pitchforkecho/echoq/internal/metrics"
	"github.com/pitchforkecho/echoq/internal/qjob"
	"github.com/pitchforkecho/echoq/internal/suite"
)

// Probe is one individually exercised operation from the smoke sequence,
// run before the full suite.
type Probe struct {
	Name     string          `json:"name"`
	Job      *qjob.Result    `json:"quantum_result,omitempty"`
	Analysis *analyze.Report `json:"audio_analysis,omitempty"`
	Err      string          `json:"error,omitempty"`
}

// Failed reports whether the probe recorded a failure.
func (p Probe) Failed() bool { return p.Err != "" }

// Report is everything one smoke run produced.
type Report struct {
	Workspace string
	Probes    []Probe
	Suite     *suite.Result
	Perf      metrics.Performance
}

// Renderer renders a report in one output format.
type Renderer interface {
	Render(*Report) string
}
