package scenario

import (
	"fmt"

	"github.com/dshills/trayimpact/internal/impact"
	"github.com/dshills/trayimpact/internal/lca"
	"github.com/dshills/trayimpact/internal/material"
)

// Report is the outcome of running a scenario.
type Report struct {
	Scenario    string              `json:"scenario" yaml:"scenario"`
	Description string              `json:"description,omitempty" yaml:"description,omitempty"`
	Material    MaterialRef         `json:"material" yaml:"material"`
	Eco         lca.Assessment      `json:"eco" yaml:"eco"`
	Decay       material.LocalDecay `json:"decay" yaml:"decay"`
	Impact      Impact              `json:"impact" yaml:"impact"`
}

// MaterialRef identifies the tray material used.
type MaterialRef struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Impact records the node impact inputs alongside the result.
type Impact struct {
	State  impact.NodeState `json:"state" yaml:"state"`
	Config impact.Config    `json:"config" yaml:"config"`
	Result impact.Result    `json:"result" yaml:"result"`
}

// Run assesses s: eco score, local decay, then node impact.
func Run(s *Scenario) (*Report, error) {
	m, err := material.LoadBuiltin(s.Tray.MaterialID)
	if err != nil {
		return nil, fmt.Errorf("scenario.Run: %w", err)
	}

	eco, err := lca.Calculate(lca.Inputs{
		Config:           s.Tray,
		Context:          s.LCAContext(),
		LandfillFraction: s.LandfillFraction,
		CompostFraction:  s.CompostFraction,
		GridKWhPerTray:   s.GridKWhPerTray,
	})
	if err != nil {
		return nil, fmt.Errorf("scenario.Run: eco: %w", err)
	}

	decay, err := material.EstimateLocalDecay(m, s.Decay.Environment, s.Decay.Days)
	if err != nil {
		return nil, fmt.Errorf("scenario.Run: decay: %w", err)
	}

	state := s.NodeState()
	res, err := impact.Compute(state, s.Weights)
	if err != nil {
		return nil, fmt.Errorf("scenario.Run: impact: %w", err)
	}

	return &Report{
		Scenario:    s.Name,
		Description: s.Description,
		Material:    MaterialRef{ID: m.ID, Name: m.Name},
		Eco:         eco,
		Decay:       decay,
		Impact:      Impact{State: state, Config: s.Weights, Result: res},
	}, nil
}
