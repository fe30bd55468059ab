// Package lca scores the climate, fossil and microplastic benefit of a
// biodegradable tray against the fossil plastic it displaces.
package lca

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is returned when an assessment's inputs are out of range.
var ErrInvalidInput = errors.New("invalid lca input")

// Score weights for the total eco score.
const (
	weightClimate      = 0.6
	weightFossil       = 0.3
	weightMicroplastic = 0.1
)

const (
	integratedPHAFossilMultiplier = 1.5
	phaMicroplasticScore          = 1.0
	fiberMicroplasticScore        = 0.9
)

// Context holds regional emission factors.
type Context struct {
	GridEmissionFactorKgPerKWh        float64 `json:"grid_emission_factor_kg_per_kwh" yaml:"grid_emission_factor_kg_per_kwh" validate:"gte=0"`
	LandfillMethaneKgCO2ePerKgOrganic float64 `json:"landfill_methane_kg_co2e_per_kg_organic" yaml:"landfill_methane_kg_co2e_per_kg_organic" validate:"gte=0"`
	CompostMethaneKgCO2ePerKgOrganic  float64 `json:"compost_methane_kg_co2e_per_kg_organic" yaml:"compost_methane_kg_co2e_per_kg_organic" validate:"gte=0"`
	FossilPlasticGWPKgPerKg           float64 `json:"fossil_plastic_gwp_kg_per_kg" yaml:"fossil_plastic_gwp_kg_per_kg" validate:"gte=0"`
}

// PhoenixContext is the default context for the Phoenix, AZ pilot region.
var PhoenixContext = Context{
	GridEmissionFactorKgPerKWh:        0.39,
	LandfillMethaneKgCO2ePerKgOrganic: 1.2,
	CompostMethaneKgCO2ePerKgOrganic:  0.1,
	FossilPlasticGWPKgPerKg:           2.5,
}

// TrayConfig describes one tray design.
type TrayConfig struct {
	MaterialID       string  `json:"material_id" yaml:"material_id" validate:"required"`
	TrayMassKg       float64 `json:"tray_mass_kg" yaml:"tray_mass_kg" validate:"gt=0"`
	IntegratedSystem bool    `json:"integrated_system" yaml:"integrated_system"`
}

// Displacement is the fossil plastic a tray replaces.
type Displacement struct {
	KgPlasticAvoided         float64 `json:"kg_plastic_avoided" yaml:"kg_plastic_avoided"`
	KgCO2eAvoidedFromPlastic float64 `json:"kg_co2e_avoided_from_plastic" yaml:"kg_co2e_avoided_from_plastic"`
}

// MethaneAvoidance is the landfill methane avoided by composting instead.
type MethaneAvoidance struct {
	KgCO2eAvoided float64 `json:"kg_co2e_avoided" yaml:"kg_co2e_avoided"`
}

// EcoScore is the weighted eco score and its components.
type EcoScore struct {
	ClimateScore      float64 `json:"climate_score" yaml:"climate_score"`
	FossilScore       float64 `json:"fossil_score" yaml:"fossil_score"`
	MicroplasticScore float64 `json:"microplastic_score" yaml:"microplastic_score"`
	TotalScore        float64 `json:"total_score" yaml:"total_score"`
}

// ComputeDisplacement assumes each tray displaces its own mass of plastic.
func ComputeDisplacement(cfg TrayConfig, ctx Context) Displacement {
	kg := cfg.TrayMassKg
	return Displacement{
		KgPlasticAvoided:         kg,
		KgCO2eAvoidedFromPlastic: kg * ctx.FossilPlasticGWPKgPerKg,
	}
}

// ComputeMethaneAvoidance compares landfilling a fraction of the tray mass
// in the baseline against composting a fraction of it in the scenario. The
// result is negative when the scenario emits more than the baseline.
func ComputeMethaneAvoidance(cfg TrayConfig, ctx Context, landfillFraction, compostFraction float64) MethaneAvoidance {
	organic := cfg.TrayMassKg
	baseline := organic * landfillFraction * ctx.LandfillMethaneKgCO2ePerKgOrganic
	scenario := organic * compostFraction * ctx.CompostMethaneKgCO2ePerKgOrganic
	return MethaneAvoidance{KgCO2eAvoided: baseline - scenario}
}

// ComputeEcoScore combines displacement and methane benefits, net of the
// grid emissions of producing the tray.
func ComputeEcoScore(d Displacement, m MethaneAvoidance, gridKWhPerTray float64, ctx Context, materialID string, integrated bool) EcoScore {
	energy := gridKWhPerTray * ctx.GridEmissionFactorKgPerKWh
	climate := d.KgCO2eAvoidedFromPlastic + m.KgCO2eAvoided - energy

	pha := isPHA(materialID)
	fossilMultiplier := 1.0
	if integrated && pha {
		fossilMultiplier = integratedPHAFossilMultiplier
	}
	fossil := d.KgPlasticAvoided * fossilMultiplier

	microplastic := fiberMicroplasticScore
	if pha {
		microplastic = phaMicroplasticScore
	}

	return EcoScore{
		ClimateScore:      climate,
		FossilScore:       fossil,
		MicroplasticScore: microplastic,
		TotalScore:        weightClimate*climate + weightFossil*fossil + weightMicroplastic*microplastic,
	}
}

func isPHA(materialID string) bool {
	return strings.EqualFold(materialID, "pha")
}

// Inputs bundles everything Calculate needs.
type Inputs struct {
	Config           TrayConfig
	Context          Context
	LandfillFraction float64
	CompostFraction  float64
	GridKWhPerTray   float64
}

// Assessment is the full output of Calculate.
type Assessment struct {
	Displacement Displacement     `json:"displacement" yaml:"displacement"`
	Methane      MethaneAvoidance `json:"methane" yaml:"methane"`
	EcoScore     EcoScore         `json:"eco_score" yaml:"eco_score"`
}

// Calculate validates in and runs displacement, methane and eco scoring.
func Calculate(in Inputs) (Assessment, error) {
	if in.Config.TrayMassKg <= 0 {
		return Assessment{}, fmt.Errorf("lca.Calculate: tray mass must be positive: %w", ErrInvalidInput)
	}
	if !unitInterval(in.LandfillFraction) || !unitInterval(in.CompostFraction) {
		return Assessment{}, fmt.Errorf("lca.Calculate: fractions must lie in [0, 1]: %w", ErrInvalidInput)
	}
	if in.GridKWhPerTray < 0 {
		return Assessment{}, fmt.Errorf("lca.Calculate: grid energy must not be negative: %w", ErrInvalidInput)
	}

	d := ComputeDisplacement(in.Config, in.Context)
	m := ComputeMethaneAvoidance(in.Config, in.Context, in.LandfillFraction, in.CompostFraction)
	return Assessment{
		Displacement: d,
		Methane:      m,
		EcoScore:     ComputeEcoScore(d, m, in.GridKWhPerTray, in.Context, in.Config.MaterialID, in.Config.IntegratedSystem),
	}, nil
}

func unitInterval(v float64) bool {
	return v >= 0 && v <= 1
}
