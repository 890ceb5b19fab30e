package report

import (
	"encoding/json"

	"github.com/pitchforkecho/echoq/internal/metrics"
	"github.com/pitchforkecho/echoq/internal/suite"
)

// JSON renders a report as indented JSON for automation.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

type jsonOperation struct {
	Name string `json:"name"`
	suite.Entry
}

type jsonReport struct {
	Workspace  string              `json:"workspace"`
	Probes     []Probe             `json:"probes,omitempty"`
	Operations []jsonOperation     `json:"operations,omitempty"`
	Metrics    metrics.Performance `json:"metrics"`
}

// Render encodes the report. Suite operations are emitted as an array in
// execution order so consumers see a stable shape.
func (j *JSON) Render(r *Report) string {
	out := jsonReport{Workspace: r.Workspace, Probes: r.Probes, Metrics: r.Perf}
	if r.Suite != nil {
		for _, name := range r.Suite.Order {
			out.Operations = append(out.Operations, jsonOperation{Name: name, Entry: r.Suite.Entries[name]})
		}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return `{"error":"report encoding failed"}`
	}
	return string(data) + "\n"
}
