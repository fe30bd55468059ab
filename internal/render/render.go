// Package render produces Markdown reports for impact and scenario results.
package render

import (
	"fmt"
	"strings"

	"github.com/dshills/trayimpact/internal/impact"
	"github.com/dshills/trayimpact/internal/material"
	"github.com/dshills/trayimpact/internal/scenario"
)

// Markdown renders a scenario report.
func Markdown(r *scenario.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Scenario: %s\n\n", r.Scenario)
	if r.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", r.Description)
	}
	fmt.Fprintf(&b, "**Material:** %s (%s)\n\n", r.Material.Name, r.Material.ID)

	b.WriteString("## Eco Score\n\n")
	eco := r.Eco
	b.WriteString("| Component | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Plastic avoided (kg/tray) | %.4f |\n", eco.Displacement.KgPlasticAvoided)
	fmt.Fprintf(&b, "| CO2e avoided from plastic (kg/tray) | %.4f |\n", eco.Displacement.KgCO2eAvoidedFromPlastic)
	fmt.Fprintf(&b, "| Methane avoided (kg CO2e/tray) | %.4f |\n", eco.Methane.KgCO2eAvoided)
	fmt.Fprintf(&b, "| Climate score | %.4f |\n", eco.EcoScore.ClimateScore)
	fmt.Fprintf(&b, "| Fossil score | %.4f |\n", eco.EcoScore.FossilScore)
	fmt.Fprintf(&b, "| Microplastic score | %.2f |\n", eco.EcoScore.MicroplasticScore)
	fmt.Fprintf(&b, "| **Total** | **%.4f** |\n\n", eco.EcoScore.TotalScore)

	b.WriteString("## Decay\n\n")
	renderDecay(&b, r.Decay)

	b.WriteString("## Node Impact\n\n")
	renderImpact(&b, r.Impact.State, r.Impact.Config, r.Impact.Result)

	return b.String()
}

// ImpactMarkdown renders a single node impact computation.
func ImpactMarkdown(s impact.NodeState, cfg impact.Config, res impact.Result) string {
	var b strings.Builder
	b.WriteString("# Node Impact\n\n")
	renderImpact(&b, s, cfg, res)
	return b.String()
}

func renderDecay(b *strings.Builder, d material.LocalDecay) {
	fmt.Fprintf(b, "After %g days in %s (half-life %.1f days): %.1f%% degraded, %.1f%% remaining.\n\n",
		d.Days, d.Environment, d.HalfLifeDays, d.DegradedFraction*100, d.RemainingFraction*100)
}

func renderImpact(b *strings.Builder, s impact.NodeState, cfg impact.Config, res impact.Result) {
	fmt.Fprintf(b, "- Baseline mass: %g kg/tray\n", s.BaselineMassKg)
	fmt.Fprintf(b, "- Alternative mass: %g kg/tray\n", s.ActualMassKg)
	fmt.Fprintf(b, "- Throughput: %g trays/day over %g days\n", s.ThroughputPerDay, s.WindowDays)
	fmt.Fprintf(b, "- Hazard weight: %g, karma per kg: %g\n\n", cfg.HazardWeight, cfg.KarmaPerKg)
	if s.BaselineMassKg < s.ActualMassKg {
		b.WriteString("Alternative is heavier than the baseline; no mass benefit.\n\n")
	}
	fmt.Fprintf(b, "**Mass avoided:** %.3f kg\n", res.MassAvoidedKg)
	fmt.Fprintf(b, "**Impact score:** %.3f karma\n", res.NodeImpactScore)
}
