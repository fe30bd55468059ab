package material

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDecay is returned for a non-positive half-life or negative horizon.
var ErrInvalidDecay = errors.New("invalid decay parameters")

// DecayResult splits a tray's mass into what remains and what has degraded.
type DecayResult struct {
	RemainingFraction float64 `json:"remaining_fraction" yaml:"remaining_fraction"`
	DegradedFraction  float64 `json:"degraded_fraction" yaml:"degraded_fraction"`
}

// LocalDecay is a decay estimate for a material in one environment.
type LocalDecay struct {
	MaterialID   string      `json:"material_id" yaml:"material_id"`
	Environment  Environment `json:"environment" yaml:"environment"`
	Days         float64     `json:"days" yaml:"days"`
	HalfLifeDays float64     `json:"half_life_days" yaml:"half_life_days"`
	DecayResult  `yaml:",inline"`
}

// HalfLifeFromWindow returns the half-life assigned to an observed
// degradation window: the window midpoint divided by ln 2.
func HalfLifeFromWindow(minDays, maxDays float64) float64 {
	target := (minDays + maxDays) / 2
	return target / math.Ln2
}

// Decay applies first-order decay with the given half-life over days.
func Decay(halfLifeDays, days float64) (DecayResult, error) {
	if halfLifeDays <= 0 || days < 0 {
		return DecayResult{}, fmt.Errorf("material.Decay: half-life %v, days %v: %w", halfLifeDays, days, ErrInvalidDecay)
	}
	k := math.Ln2 / halfLifeDays
	remaining := math.Exp(-k * days)
	return DecayResult{
		RemainingFraction: remaining,
		DegradedFraction:  1 - remaining,
	}, nil
}

// EstimateLocalDecay estimates how much of m has degraded after days in env.
func EstimateLocalDecay(m *Material, env Environment, days float64) (LocalDecay, error) {
	p, ok := m.Profile(env)
	if !ok {
		return LocalDecay{}, fmt.Errorf("material.EstimateLocalDecay: %s has no %s profile", m.ID, env)
	}
	halfLife := HalfLifeFromWindow(p.MinDays, p.MaxDays)
	res, err := Decay(halfLife, days)
	if err != nil {
		return LocalDecay{}, fmt.Errorf("material.EstimateLocalDecay: %w", err)
	}
	return LocalDecay{
		MaterialID:   m.ID,
		Environment:  env,
		Days:         days,
		HalfLifeDays: halfLife,
		DecayResult:  res,
	}, nil
}
