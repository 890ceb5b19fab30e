package qjob

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureManager records every request and replies with a fixed result.
type captureManager struct {
	requests []Request
	result   Result
	err      error
}

func (m *captureManager) Execute(_ context.Context, req Request) (Result, error) {
	m.requests = append(m.requests, req)
	return m.result, m.err
}

func newTestDispatcher(mgr Manager) *Dispatcher {
	return NewDispatcher(mgr, "pitchfork-echo-studio", DeviceQuantumSimulation, zerolog.Nop())
}

func TestDispatcher_Synthesis_BuildsRequest(t *testing.T) {
	t.Parallel()

	mgr := &captureManager{result: Result{Success: true, Counts: map[string]int{"0000": 10}}}
	d := newTestDispatcher(mgr)

	res, err := d.Synthesis(context.Background(), 4, 100)
	require.NoError(t, err)
	assert.True(t, res.Success)

	require.Len(t, mgr.requests, 1, "exactly one external call per submission")
	req := mgr.requests[0]
	assert.Equal(t, "pitchfork-echo-studio", req.Workspace)
	assert.Equal(t, DeviceQuantumSimulation, req.DeviceType)
	assert.Equal(t, 100, req.Shots)
	assert.Contains(t, req.Circuit, "qubit[4] q;")
	assert.Equal(t, "quantum_audio_synthesis", req.Metadata["operation"])
	assert.Equal(t, 4, req.Metadata["audio_layers"])
	assert.Equal(t, "quantum_harmonic", req.Metadata["synthesis"])

	_, parseErr := uuid.Parse(req.ID)
	assert.NoError(t, parseErr, "request id should be a uuid")
}

func TestDispatcher_OperationTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		submit    func(d *Dispatcher, ctx context.Context) (Result, error)
		operation string
		register  string
	}{
		{
			name: "consciousness",
			submit: func(d *Dispatcher, ctx context.Context) (Result, error) {
				return d.Consciousness(ctx, 3, 50)
			},
			operation: "quantum_consciousness_audio",
			register:  "qubit[3] q;",
		},
		{
			name: "echo",
			submit: func(d *Dispatcher, ctx context.Context) (Result, error) {
				return d.Echo(ctx, 4, 50)
			},
			operation: "quantum_echo_optimization",
			register:  "qubit[4] q;",
		},
		{
			name: "frequency",
			submit: func(d *Dispatcher, ctx context.Context) (Result, error) {
				return d.Frequency(ctx, 3, 50)
			},
			operation: "quantum_frequency_harmonization",
			register:  "qubit[3] q;",
		},
		{
			name: "spatial",
			submit: func(d *Dispatcher, ctx context.Context) (Result, error) {
				return d.Spatial(ctx, 4, 50)
			},
			operation: "quantum_spatial_audio",
			register:  "qubit[4] q;",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			mgr := &captureManager{result: Result{Success: true}}
			d := newTestDispatcher(mgr)

			_, err := tc.submit(d, context.Background())
			require.NoError(t, err)
			require.Len(t, mgr.requests, 1)
			assert.Equal(t, tc.operation, mgr.requests[0].Metadata["operation"])
			assert.Contains(t, mgr.requests[0].Circuit, tc.register)
		})
	}
}

func TestDispatcher_ManagerErrorPropagates(t *testing.T) {
	t.Parallel()

	mgr := &captureManager{err: assert.AnError}
	d := newTestDispatcher(mgr)

	_, err := d.Spatial(context.Background(), 4, 100)
	assert.ErrorIs(t, err, assert.AnError)
}
