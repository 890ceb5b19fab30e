package qjob

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// StaticManager is an offline stand-in for the real execution manager. It
// fabricates measurement statistics from a seeded generator so the smoke CLI
// and tests have a deterministic backend to talk to. It does not simulate
// circuits: the histogram shape is canned, not derived from the gate
// sequence. Not safe for concurrent use.
type StaticManager struct {
	rng *rand.Rand
}

// NewStaticManager creates a stand-in manager. The same seed reproduces the
// same sequence of results.
func NewStaticManager(seed uint64) *StaticManager {
	return &StaticManager{rng: rand.New(rand.NewPCG(seed, seed<<1|1))}
}

// Execute fabricates a result sized to the request's register and shots.
// A request it cannot make sense of comes back as an unsuccessful Result,
// the same way the real manager reports a rejected job.
func (m *StaticManager) Execute(_ context.Context, req Request) (Result, error) {
	width := registerWidth(req.Circuit)
	if width <= 0 || req.Shots <= 0 {
		return Result{Success: false}, nil
	}

	// Bias roughly half the shots onto one favored outcome so analysis has
	// a clear dominant bitstring to find.
	space := 1 << width
	favored := m.rng.IntN(space)
	counts := make(map[string]int)
	for i := 0; i < req.Shots; i++ {
		outcome := favored
		if m.rng.Float64() >= 0.55 {
			outcome = m.rng.IntN(space)
		}
		counts[fmt.Sprintf("%0*b", width, outcome)]++
	}

	return Result{
		Success:       true,
		Counts:        counts,
		ExecutionTime: 0.5 + m.rng.Float64()*2,
	}, nil
}

// registerWidth reads the qubit register size out of the program text.
func registerWidth(program string) int {
	const decl = "qubit["
	i := strings.Index(program, decl)
	if i < 0 {
		return 0
	}
	rest := program[i+len(decl):]
	j := strings.IndexByte(rest, ']')
	if j < 0 {
		return 0
	}
	n, err := strconv.Atoi(rest[:j])
	if err != nil {
		return 0
	}
	return n
}
