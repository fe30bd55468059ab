// Package scenario runs named, built-in tray scenarios end to end: eco score,
// local decay and node impact.
package scenario

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/trayimpact/internal/impact"
	"github.com/dshills/trayimpact/internal/lca"
	"github.com/dshills/trayimpact/internal/material"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

var validate = validator.New(validator.WithRequiredStructEnabled())

// Scenario describes one tray line and how its impact is assessed.
type Scenario struct {
	Name             string         `yaml:"name" validate:"required"`
	Description      string         `yaml:"description"`
	Tray             lca.TrayConfig `yaml:"tray"`
	Context          *lca.Context   `yaml:"context"`
	LandfillFraction float64        `yaml:"landfill_fraction_baseline" validate:"gte=0,lte=1"`
	CompostFraction  float64        `yaml:"compost_fraction_scenario" validate:"gte=0,lte=1"`
	GridKWhPerTray   float64        `yaml:"grid_kwh_per_tray" validate:"gte=0"`
	Decay            DecaySpec      `yaml:"decay"`
	Node             NodeSpec       `yaml:"node"`
	Weights          impact.Config  `yaml:"weights"`
}

// DecaySpec selects the end-of-life environment and horizon.
type DecaySpec struct {
	Environment material.Environment `yaml:"environment" validate:"required,oneof=home_compost industrial_compost soil marine landfill"`
	Days        float64              `yaml:"days" validate:"gte=0"`
}

// NodeSpec is the production node; the alternative mass per tray comes
// from the tray configuration.
type NodeSpec struct {
	BaselineMassKg float64 `yaml:"baseline_mass_kg" validate:"gt=0"`
	TraysPerDay    float64 `yaml:"trays_per_day" validate:"gt=0"`
	WindowDays     float64 `yaml:"window_days" validate:"gt=0"`
}

// LCAContext returns the scenario's context, or the Phoenix default.
func (s *Scenario) LCAContext() lca.Context {
	if s.Context != nil {
		return *s.Context
	}
	return lca.PhoenixContext
}

// NodeState returns the impact input for the scenario's node.
func (s *Scenario) NodeState() impact.NodeState {
	return impact.NodeState{
		BaselineMassKg:   s.Node.BaselineMassKg,
		ActualMassKg:     s.Tray.TrayMassKg,
		ThroughputPerDay: s.Node.TraysPerDay,
		WindowDays:       s.Node.WindowDays,
	}
}

// LoadBuiltin loads a built-in scenario by name.
func LoadBuiltin(name string) (*Scenario, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("scenario.LoadBuiltin: unknown scenario %q: %w", name, err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario.LoadBuiltin: parse %q: %w", name, err)
	}
	if err := validate.Struct(&s); err != nil {
		return nil, fmt.Errorf("scenario.LoadBuiltin: invalid %q: %w", name, err)
	}
	return &s, nil
}

// List returns the names of all built-in scenarios in sorted order.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	sort.Strings(names)
	return names, nil
}
