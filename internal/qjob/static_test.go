package qjob

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchforkecho/echoq/internal/circuit"
)

func TestStaticManager_CountsSumToShots(t *testing.T) {
	t.Parallel()

	mgr := NewStaticManager(42)
	res, err := mgr.Execute(context.Background(), Request{Circuit: circuit.Synthesis(4), Shots: 200})
	require.NoError(t, err)
	require.True(t, res.Success)

	total := 0
	for label, c := range res.Counts {
		assert.Len(t, label, 4, "labels should be 4-bit strings")
		assert.Positive(t, c)
		total += c
	}
	assert.Equal(t, 200, total)
	assert.Positive(t, res.ExecutionTime)
}

func TestStaticManager_Deterministic(t *testing.T) {
	t.Parallel()

	req := Request{Circuit: circuit.Consciousness(3), Shots: 100}
	a, err := NewStaticManager(7).Execute(context.Background(), req)
	require.NoError(t, err)
	b, err := NewStaticManager(7).Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, a.Counts, b.Counts)
	assert.Equal(t, a.ExecutionTime, b.ExecutionTime)
}

func TestStaticManager_RejectsUnusableRequests(t *testing.T) {
	t.Parallel()

	mgr := NewStaticManager(1)

	res, err := mgr.Execute(context.Background(), Request{Circuit: "not a program", Shots: 100})
	require.NoError(t, err)
	assert.False(t, res.Success)

	res, err = mgr.Execute(context.Background(), Request{Circuit: circuit.Echo(4), Shots: 0})
	require.NoError(t, err)
	assert.False(t, res.Success)
}

func TestRegisterWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 4, registerWidth(circuit.Spatial(4)))
	assert.Equal(t, 3, registerWidth(circuit.Frequency(3)))
	assert.Equal(t, 0, registerWidth("OPENQASM 3.0;"))
	assert.Equal(t, 0, registerWidth("qubit[x] q;"))
}
