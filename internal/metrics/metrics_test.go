package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pitchforkecho/echoq/internal/analyze"
	"github.com/pitchforkecho/echoq/internal/qjob"
	"github.com/pitchforkecho/echoq/internal/suite"
)

func passEntry(execTime, quality float64) suite.Entry {
	return suite.Entry{
		Job:      &qjob.Result{Success: true, Counts: map[string]int{"00": 1}, ExecutionTime: execTime},
		Analysis: &analyze.Report{Quality: quality},
	}
}

func failEntry() suite.Entry {
	return suite.Entry{Err: "device unavailable"}
}

// buildResult lays entries over the five fixed operation names in order.
func buildResult(entries ...suite.Entry) *suite.Result {
	names := []string{
		suite.OpSynthesis, suite.OpConsciousness, suite.OpEcho,
		suite.OpFrequency, suite.OpSpatial,
	}
	res := &suite.Result{Entries: make(map[string]suite.Entry)}
	for i, e := range entries {
		res.Order = append(res.Order, names[i])
		res.Entries[names[i]] = e
	}
	return res
}

func TestSummarize_NoSuccessesReturnsStatusMarker(t *testing.T) {
	t.Parallel()

	res := buildResult(failEntry(), failEntry(), failEntry(), failEntry(), failEntry())
	p := Summarize(res)

	assert.Equal(t, StatusNoSuccess, p.Status)
	assert.Equal(t, 5, p.TotalOperations)
	assert.Zero(t, p.Successful)
	assert.Zero(t, p.SuccessRate)
	assert.Zero(t, p.AvgQuality)
	assert.Empty(t, p.Recommendations)
}

func TestSummarize_Averages(t *testing.T) {
	t.Parallel()

	res := buildResult(
		passEntry(1.0, 0.8),
		passEntry(2.0, 0.6),
		passEntry(3.0, 0.7),
		failEntry(),
		failEntry(),
	)
	p := Summarize(res)

	assert.Empty(t, p.Status)
	assert.Equal(t, 5, p.TotalOperations)
	assert.Equal(t, 3, p.Successful)
	assert.InDelta(t, 0.6, p.SuccessRate, 1e-9)
	assert.InDelta(t, 6.0, p.TotalTime, 1e-9)
	assert.InDelta(t, 2.0, p.AvgTime, 1e-9)
	assert.InDelta(t, 0.7, p.AvgQuality, 1e-9)
}

func TestSummarize_ReadinessTiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		successes int
		want      string
	}{
		{"five", 5, ReadinessConscious},
		{"four", 4, ReadinessConscious},
		{"three", 3, ReadinessHarmonic},
		{"two", 2, ReadinessHarmonic},
		{"one", 1, ReadinessDeveloping},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			entries := make([]suite.Entry, 5)
			for i := range entries {
				if i < tc.successes {
					entries[i] = passEntry(1, 0.5)
				} else {
					entries[i] = failEntry()
				}
			}
			p := Summarize(buildResult(entries...))
			assert.Equal(t, tc.want, p.Readiness)
		})
	}
}

func TestSummarize_RecommendationGating(t *testing.T) {
	t.Parallel()

	// 4/5 is exactly 0.8: the production branch applies, boundary inclusive.
	fourOfFive := Summarize(buildResult(
		passEntry(1, 0.5), passEntry(1, 0.5), passEntry(1, 0.5), passEntry(1, 0.5), failEntry(),
	))
	assert.Contains(t, fourOfFive.Recommendations, RecProductionReady)
	assert.NotContains(t, fourOfFive.Recommendations, RecAdvancedReady)

	// 3/5 is 0.6: the advanced branch applies instead.
	threeOfFive := Summarize(buildResult(
		passEntry(1, 0.5), passEntry(1, 0.5), passEntry(1, 0.5), failEntry(), failEntry(),
	))
	assert.Contains(t, threeOfFive.Recommendations, RecAdvancedReady)
	assert.NotContains(t, threeOfFive.Recommendations, RecProductionReady)

	// 2/5 is below both rate gates.
	twoOfFive := Summarize(buildResult(
		passEntry(1, 0.5), passEntry(1, 0.5), failEntry(), failEntry(), failEntry(),
	))
	assert.NotContains(t, twoOfFive.Recommendations, RecProductionReady)
	assert.NotContains(t, twoOfFive.Recommendations, RecAdvancedReady)
}

func TestSummarize_QualityRecommendationCoOccurs(t *testing.T) {
	t.Parallel()

	p := Summarize(buildResult(
		passEntry(1, 0.9), passEntry(1, 0.8), passEntry(1, 0.7), passEntry(1, 0.8), passEntry(1, 0.9),
	))
	assert.Contains(t, p.Recommendations, RecProductionReady)
	assert.Contains(t, p.Recommendations, RecConsciousGrade)

	lowQuality := Summarize(buildResult(
		passEntry(1, 0.3), passEntry(1, 0.2), passEntry(1, 0.4), passEntry(1, 0.3), passEntry(1, 0.2),
	))
	assert.NotContains(t, lowQuality.Recommendations, RecConsciousGrade)
}
