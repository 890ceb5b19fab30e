package report

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/pitchforkecho/echoq/internal/analyze"
	"github.com/pitchforkecho/echoq/internal/metrics"
	"github.com/pitchforkecho/echoq/internal/suite"
)

// Terminal renders a report as styled terminal output.
type Terminal struct {
	theme Theme
	width int
}

// NewTerminal creates a terminal renderer with the given theme and width.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width}
}

// Render formats the full report for terminal display.
func (t *Terminal) Render(r *Report) string {
	var sb strings.Builder

	sb.WriteString(t.theme.Bold.Render("Quantum Audio Suite"))
	sb.WriteString(" ")
	sb.WriteString(t.theme.Muted.Render("workspace " + r.Workspace))
	sb.WriteString("\n\n")

	if len(r.Probes) > 0 {
		sb.WriteString(t.theme.Bold.Render("Probes"))
		sb.WriteString("\n")
		nameW := maxProbeName(r.Probes)
		for _, p := range r.Probes {
			sb.WriteString(t.renderProbe(p, nameW))
		}
		sb.WriteString("\n")
	}

	if r.Suite != nil {
		sb.WriteString(t.theme.Bold.Render("Suite"))
		sb.WriteString("\n")
		nameW := 0
		for _, name := range r.Suite.Order {
			if w := runewidth.StringWidth(name); w > nameW {
				nameW = w
			}
		}
		for _, name := range r.Suite.Order {
			sb.WriteString(t.renderSuiteEntry(name, r.Suite.Entries[name], nameW))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(t.renderPerformance(r.Perf))
	return sb.String()
}

func (t *Terminal) renderProbe(p Probe, nameW int) string {
	name := runewidth.FillRight(p.Name, nameW)
	if p.Failed() {
		return fmt.Sprintf("  %s %s  %s\n",
			t.theme.Error.Render(t.theme.Icons.Fail),
			name,
			t.theme.Error.Render(p.Err))
	}
	a := p.Analysis
	detail := fmt.Sprintf("quality %.3f  dominant %s  diversity %d  harmony %.3f",
		a.Quality, a.Dominant, a.Diversity, a.Harmony)
	return fmt.Sprintf("  %s %s  %s\n",
		t.theme.Success.Render(t.theme.Icons.Pass),
		name,
		t.theme.Muted.Render(detail))
}

func (t *Terminal) renderSuiteEntry(name string, e suite.Entry, nameW int) string {
	padded := runewidth.FillRight(name, nameW)
	if e.Failed() {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("  %s %s  %s\n",
			t.theme.Error.Render(t.theme.Icons.Fail),
			padded,
			t.theme.Error.Render("FAIL "+e.Err)))
		sb.WriteString("      " + t.theme.Muted.Render(t.theme.Icons.Bullet+" "+analyze.FallbackInsight) + "\n")
		return sb.String()
	}
	return fmt.Sprintf("  %s %s  %s %s\n",
		t.theme.Success.Render(t.theme.Icons.Pass),
		padded,
		t.theme.Success.Render("PASS"),
		t.theme.Muted.Render(fmt.Sprintf("(%.2fs, quality %.3f)", e.Job.ExecutionTime, e.Analysis.Quality)))
}

func (t *Terminal) renderPerformance(p metrics.Performance) string {
	var sb strings.Builder
	sb.WriteString(t.theme.Bold.Render("Performance"))
	sb.WriteString("\n")

	if p.Status == metrics.StatusNoSuccess {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Warning.Render(t.theme.Icons.Warn + " no successful audio operations"))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("  operations %d/%d succeeded  success rate %.0f%%\n",
		p.Successful, p.TotalOperations, p.SuccessRate*100))
	sb.WriteString(fmt.Sprintf("  total time %.2fs  avg time %.2fs  avg quality %.3f\n",
		p.TotalTime, p.AvgTime, p.AvgQuality))
	sb.WriteString("  readiness ")
	sb.WriteString(t.theme.Accent.Render(p.Readiness))
	sb.WriteString("\n")

	if len(p.Recommendations) > 0 {
		sb.WriteString("\n")
		sb.WriteString(t.theme.Bold.Render("Recommendations"))
		sb.WriteString("\n")
		for _, rec := range p.Recommendations {
			sb.WriteString("  " + t.theme.Icons.Bullet + " " + rec + "\n")
		}
	}
	return sb.String()
}

func maxProbeName(probes []Probe) int {
	w := 0
	for _, p := range probes {
		if pw := runewidth.StringWidth(p.Name); pw > w {
			w = pw
		}
	}
	return w
}
