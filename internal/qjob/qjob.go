// Package qjob defines quantum job requests and results, the boundary to
// the external execution manager, and the dispatcher that feeds it.
package qjob

import "context"

// DeviceType tags the class of backend a request should run on.
type DeviceType string

const (
	DeviceQuantumSimulation DeviceType = "quantum_simulation"
	DeviceQuantumHardware   DeviceType = "quantum_hardware"
)

// Request describes one circuit submission. Immutable once constructed.
type Request struct {
	ID         string         `json:"id"`
	Workspace  string         `json:"workspace"`
	Circuit    string         `json:"circuit"`
	DeviceType DeviceType     `json:"device_type"`
	Shots      int            `json:"shots"`
	Metadata   map[string]any `json:"metadata"`
}

// Result is what the manager reports back for one executed job. Counts maps
// measured bitstrings to occurrence counts; ExecutionTime is in seconds.
// Results come from the manager and are never mutated here.
type Result struct {
	Success       bool           `json:"success"`
	Counts        map[string]int `json:"counts"`
	ExecutionTime float64        `json:"execution_time"`
}

// Manager is the boundary to the external quantum job manager. Execute is
// synchronous: it blocks until the job has run and returns the manager's
// result. Transport failures come back as an error; manager-reported job
// failures come back as a Result with Success false. Retries, timeouts,
// auth and serialization are the manager's problem, not this module's.
type Manager interface {
	Execute(ctx context.Context, req Request) (Result, error)
}
