// Package analyze reduces one job result into descriptive statistics about
// the measured distribution.
package analyze

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/pitchforkecho/echoq/internal/qjob"
)

// ErrJobFailed marks results the manager reported as unsuccessful. Analysis
// never inspects the histogram of a failed job.
var ErrJobFailed = errors.New("quantum job failed")

// harmonyDivisor normalizes entropy bits into [0,1]. Fixed at 4 bits, the
// widest template; 3-qubit runs top out at 3 bits, so their harmony caps at
// 0.75. Kept as a constant rather than derived from the register size.
const harmonyDivisor = 4.0

// fastProcessingThreshold is the execution time, in seconds, under which a
// run counts as fast.
const fastProcessingThreshold = 30.0

// highDiversityThreshold is the distinct-outcome count above which a run
// counts as highly diverse.
const highDiversityThreshold = 8

// FallbackInsight is the single recommendation attached to operations whose
// job failed outright.
const FallbackInsight = "Fallback to classical audio algorithms recommended"

// Report holds the derived statistics for one successful job. Quality and
// Harmony are in [0,1]; Diversity counts distinct observed bitstrings.
type Report struct {
	Quality   float64  `json:"audio_quality"`
	Dominant  string   `json:"optimal_audio"`
	Diversity int      `json:"audio_diversity"`
	Harmony   float64  `json:"quantum_harmony"`
	Insights  []string `json:"audio_insights"`
}

// Analyze derives a Report from a job result. It fails fast with
// ErrJobFailed when the manager reported the job unsuccessful, and errors on
// an empty histogram. Reports are recomputed on every call, never cached.
func Analyze(res qjob.Result) (Report, error) {
	if !res.Success {
		return Report{}, ErrJobFailed
	}

	total := 0
	for _, c := range res.Counts {
		total += c
	}
	if total == 0 {
		return Report{}, fmt.Errorf("analyze: result has no recorded outcomes")
	}

	dominant, maxCount := dominantOutcome(res.Counts)

	diversity := 0
	probs := make([]float64, 0, len(res.Counts))
	for _, c := range res.Counts {
		if c > 0 {
			diversity++
			probs = append(probs, float64(c)/float64(total))
		}
	}

	return Report{
		Quality:   float64(maxCount) / float64(total),
		Dominant:  dominant,
		Diversity: diversity,
		Harmony:   harmony(probs),
		Insights:  insights(res, diversity),
	}, nil
}

// harmony maps a normalized distribution to [0,1] via its Shannon entropy
// in bits over harmonyDivisor, clamped at 1.
func harmony(probs []float64) float64 {
	bits := stat.Entropy(probs) / math.Ln2
	return math.Min(1.0, bits/harmonyDivisor)
}

// dominantOutcome returns the label with the highest count. Ties resolve to
// the lexicographically smallest label so repeated runs agree regardless of
// map iteration order.
func dominantOutcome(counts map[string]int) (string, int) {
	best, bestCount := "", -1
	for label, c := range counts {
		if c > bestCount || (c == bestCount && label < best) {
			best, bestCount = label, c
		}
	}
	return best, bestCount
}

func insights(res qjob.Result, diversity int) []string {
	out := []string{
		"Quantum audio synthesis achieved",
		"Consciousness-enhanced audio quantum-processed",
	}
	if res.ExecutionTime < fastProcessingThreshold {
		out = append(out, "Fast audio processing achieved")
	}
	if diversity > highDiversityThreshold {
		out = append(out, "High audio diversity - excellent creative potential")
	}
	return out
}
