package impact

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a NodeState cannot be scored.
var ErrInvalidArgument = errors.New("invalid argument")

// Compute derives the avoided mass and node impact score for s under cfg.
//
// The window and throughput must be positive. When the alternative is
// heavier than the baseline the result is clamped to zero. A non-positive
// baseline that is not clamped is rejected rather than divided by.
func Compute(s NodeState, cfg Config) (Result, error) {
	if s.WindowDays <= 0 || s.ThroughputPerDay <= 0 {
		return Result{}, fmt.Errorf("impact.Compute: invalid time window or throughput: %w", ErrInvalidArgument)
	}
	if s.BaselineMassKg < s.ActualMassKg {
		// No mass benefit.
		return Result{}, nil
	}
	if s.BaselineMassKg <= 0 {
		return Result{}, fmt.Errorf("impact.Compute: baseline mass must be positive: %w", ErrInvalidArgument)
	}

	delta := s.BaselineMassKg - s.ActualMassKg
	massAvoided := delta * s.ThroughputPerDay * s.WindowDays
	riskUnit := delta / s.BaselineMassKg

	return Result{
		MassAvoidedKg:   massAvoided,
		NodeImpactScore: cfg.HazardWeight * riskUnit * massAvoided * cfg.KarmaPerKg,
	}, nil
}
