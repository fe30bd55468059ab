// Package impact computes the karma-scaled impact score of replacing a
// conventional tray material with a biodegradable alternative.
package impact

// NodeState is a snapshot of one production node over an observation window.
type NodeState struct {
	BaselineMassKg   float64 `json:"baseline_mass_kg" yaml:"baseline_mass_kg"`
	ActualMassKg     float64 `json:"actual_mass_kg" yaml:"actual_mass_kg"`
	ThroughputPerDay float64 `json:"throughput_per_day" yaml:"throughput_per_day"`
	WindowDays       float64 `json:"window_days" yaml:"window_days"`
}

// Config holds the weights applied to the avoided mass.
type Config struct {
	// HazardWeight is the risk weight of the conventional material relative
	// to the alternative.
	HazardWeight float64 `json:"hazard_weight" yaml:"hazard_weight"`
	// KarmaPerKg converts kilograms avoided into karma units.
	KarmaPerKg float64 `json:"karma_per_kg" yaml:"karma_per_kg"`
}

// Result is the outcome of Compute.
type Result struct {
	MassAvoidedKg   float64 `json:"mass_avoided_kg" yaml:"mass_avoided_kg"`
	NodeImpactScore float64 `json:"node_impact_score" yaml:"node_impact_score"`
}
