// Package metrics aggregates a suite run into performance figures and
// threshold-gated recommendations.
package metrics

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pitchforkecho/echoq/internal/suite"
)

// StatusNoSuccess marks a run where no operation succeeded. No averages are
// computed in that case.
const StatusNoSuccess = "no_successful_audio_operations"

// Readiness tiers, thresholded on the successful-operation count out of the
// fixed suite of five.
const (
	ReadinessConscious  = "CONSCIOUS"
	ReadinessHarmonic   = "HARMONIC"
	ReadinessDeveloping = "DEVELOPING"
)

// Recommendation lines. Production and advanced gate on success rate
// (boundary inclusive, the 0.8 branch wins); the quality line gates
// independently on average quality and may co-occur with either.
const (
	RecProductionReady = "Audio system ready for quantum-enhanced production"
	RecAdvancedReady   = "Audio system ready for advanced quantum processing"
	RecConsciousGrade  = "Conscious-level audio quality achieved"
)

const (
	productionRateThreshold = 0.8
	advancedRateThreshold   = 0.6
	qualityThreshold        = 0.7
)

// Performance summarizes one suite run. A pure function of its input; no
// state survives between calls.
type Performance struct {
	Status          string   `json:"status,omitempty"`
	TotalOperations int      `json:"total_audio_operations"`
	Successful      int      `json:"successful_operations"`
	SuccessRate     float64  `json:"success_rate"`
	TotalTime       float64  `json:"total_execution_time"`
	AvgTime         float64  `json:"average_execution_time"`
	AvgQuality      float64  `json:"average_audio_quality"`
	Readiness       string   `json:"audio_quantum_readiness,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// Summarize reduces a suite result to aggregate metrics. Only operations
// that ran and succeeded contribute to the averages; per-operation quality
// is weighted equally regardless of shot count.
func Summarize(res *suite.Result) Performance {
	total := len(res.Order)

	var times, qualities []float64
	for _, name := range res.Order {
		e := res.Entries[name]
		if e.Failed() || e.Analysis == nil || e.Job == nil {
			continue
		}
		times = append(times, e.Job.ExecutionTime)
		qualities = append(qualities, e.Analysis.Quality)
	}

	if len(times) == 0 {
		return Performance{Status: StatusNoSuccess, TotalOperations: total}
	}

	totalTime := floats.Sum(times)
	p := Performance{
		TotalOperations: total,
		Successful:      len(times),
		SuccessRate:     float64(len(times)) / float64(total),
		TotalTime:       totalTime,
		AvgTime:         totalTime / float64(len(times)),
		AvgQuality:      stat.Mean(qualities, nil),
		Readiness:       readiness(len(times)),
	}

	switch {
	case p.SuccessRate >= productionRateThreshold:
		p.Recommendations = append(p.Recommendations, RecProductionReady)
	case p.SuccessRate >= advancedRateThreshold:
		p.Recommendations = append(p.Recommendations, RecAdvancedReady)
	}
	if p.AvgQuality >= qualityThreshold {
		p.Recommendations = append(p.Recommendations, RecConsciousGrade)
	}

	return p
}

func readiness(successes int) string {
	switch {
	case successes >= 4:
		return ReadinessConscious
	case successes >= 2:
		return ReadinessHarmonic
	default:
		return ReadinessDeveloping
	}
}
