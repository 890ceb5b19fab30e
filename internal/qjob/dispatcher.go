package qjob

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pitchforkecho/echoq/internal/circuit"
)

// Dispatcher builds requests for the studio's fixed operations and forwards
// them to the manager. Exactly one external call per submission; whatever
// the manager returns is handed back unmodified.
type Dispatcher struct {
	mgr       Manager
	workspace string
	device    DeviceType
	log       zerolog.Logger
}

// NewDispatcher creates a dispatcher bound to one manager, workspace and
// device type.
func NewDispatcher(mgr Manager, workspace string, device DeviceType, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		mgr:       mgr,
		workspace: workspace,
		device:    device,
		log:       log.With().Str("component", "dispatcher").Logger(),
	}
}

// Synthesis submits the quantum audio synthesis circuit.
func (d *Dispatcher) Synthesis(ctx context.Context, layers, shots int) (Result, error) {
	return d.submit(ctx, "quantum_audio_synthesis", circuit.Synthesis(layers), shots, map[string]any{
		"audio_layers": layers,
		"synthesis":    "quantum_harmonic",
	})
}

// Consciousness submits the consciousness-enhanced audio circuit.
func (d *Dispatcher) Consciousness(ctx context.Context, levels, shots int) (Result, error) {
	return d.submit(ctx, "quantum_consciousness_audio", circuit.Consciousness(levels), shots, map[string]any{
		"consciousness_levels": levels,
		"audio":                "quantum_conscious",
	})
}

// Echo submits the echo pattern optimization circuit.
func (d *Dispatcher) Echo(ctx context.Context, patterns, shots int) (Result, error) {
	return d.submit(ctx, "quantum_echo_optimization", circuit.Echo(patterns), shots, map[string]any{
		"echo_patterns": patterns,
		"optimization":  "quantum_perfect",
	})
}

// Frequency submits the frequency harmonization circuit.
func (d *Dispatcher) Frequency(ctx context.Context, bands, shots int) (Result, error) {
	return d.submit(ctx, "quantum_frequency_harmonization", circuit.Frequency(bands), shots, map[string]any{
		"frequency_bands": bands,
		"harmonization":   "quantum_resonant",
	})
}

// Spatial submits the spatial audio circuit.
func (d *Dispatcher) Spatial(ctx context.Context, dims, shots int) (Result, error) {
	return d.submit(ctx, "quantum_spatial_audio", circuit.Spatial(dims), shots, map[string]any{
		"spatial_dimensions": dims,
		"spatial":            "quantum_immersive",
	})
}

func (d *Dispatcher) submit(ctx context.Context, operation, circuitText string, shots int, tags map[string]any) (Result, error) {
	meta := make(map[string]any, len(tags)+1)
	meta["operation"] = operation
	for k, v := range tags {
		meta[k] = v
	}
	req := Request{
		ID:         uuid.NewString(),
		Workspace:  d.workspace,
		Circuit:    circuitText,
		DeviceType: d.device,
		Shots:      shots,
		Metadata:   meta,
	}
	d.log.Debug().
		Str("job_id", req.ID).
		Str("operation", operation).
		Int("shots", shots).
		Msg("Submitting quantum job")
	res, err := d.mgr.Execute(ctx, req)
	if err != nil {
		d.log.Error().Err(err).Str("operation", operation).Msg("Manager call failed")
		return Result{}, err
	}
	d.log.Debug().
		Str("operation", operation).
		Bool("success", res.Success).
		Float64("execution_time", res.ExecutionTime).
		Msg("Quantum job returned")
	return res, nil
}
