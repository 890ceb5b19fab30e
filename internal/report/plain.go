package report

import (
	"fmt"
	"strings"

	"github.com/pitchforkecho/echoq/internal/analyze"
	"github.com/pitchforkecho/echoq/internal/metrics"
)

// Plain renders a report as terse text with no ANSI codes, for piped output
// and machine consumers that read prose. Deterministic: suite entries follow
// execution order.
type Plain struct{}

// NewPlain creates a plain-text renderer.
func NewPlain() *Plain {
	return &Plain{}
}

// Render formats the full report as plain text.
func (pl *Plain) Render(r *Report) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "QUANTUM AUDIO SUITE workspace=%s\n", r.Workspace)

	if len(r.Probes) > 0 {
		sb.WriteString("PROBES\n")
		for _, p := range r.Probes {
			if p.Failed() {
				fmt.Fprintf(&sb, "  FAIL %s: %s\n", p.Name, p.Err)
				continue
			}
			a := p.Analysis
			fmt.Fprintf(&sb, "  PASS %s quality=%.3f dominant=%s diversity=%d harmony=%.3f\n",
				p.Name, a.Quality, a.Dominant, a.Diversity, a.Harmony)
		}
	}

	if r.Suite != nil {
		passed := 0
		for _, name := range r.Suite.Order {
			if !r.Suite.Entries[name].Failed() {
				passed++
			}
		}
		fmt.Fprintf(&sb, "SUITE %d/%d pass\n", passed, len(r.Suite.Order))
		for _, name := range r.Suite.Order {
			e := r.Suite.Entries[name]
			if e.Failed() {
				fmt.Fprintf(&sb, "  FAIL %s: %s\n", name, e.Err)
				fmt.Fprintf(&sb, "       %s\n", analyze.FallbackInsight)
				continue
			}
			fmt.Fprintf(&sb, "  PASS %s %.2fs quality=%.3f\n",
				name, e.Job.ExecutionTime, e.Analysis.Quality)
		}
	}

	if r.Perf.Status == metrics.StatusNoSuccess {
		sb.WriteString("METRICS status=" + metrics.StatusNoSuccess + "\n")
		return sb.String()
	}

	fmt.Fprintf(&sb, "METRICS success_rate=%.2f avg_quality=%.3f avg_time=%.2fs total_time=%.2fs readiness=%s\n",
		r.Perf.SuccessRate, r.Perf.AvgQuality, r.Perf.AvgTime, r.Perf.TotalTime, r.Perf.Readiness)
	for _, rec := range r.Perf.Recommendations {
		fmt.Fprintf(&sb, "  - %s\n", rec)
	}
	return sb.String()
}
