package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/trayimpact/internal/impact"
	"github.com/dshills/trayimpact/internal/scenario"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func validComputeFlags() *computeFlags {
	return &computeFlags{
		state:       impact.NodeState{BaselineMassKg: 2.0, ActualMassKg: 0.5, ThroughputPerDay: 100, WindowDays: 30},
		cfg:         impact.Config{HazardWeight: 1.0, KarmaPerKg: 1.0},
		outputFlags: outputFlags{format: "json"},
	}
}

func TestRunComputeJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := runCompute(&buf, validComputeFlags()); err != nil {
		t.Fatal(err)
	}
	var got computeOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	want := impact.Result{MassAvoidedKg: 4500, NodeImpactScore: 3375}
	if diff := cmp.Diff(want, got.Result); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestRunComputeYAML(t *testing.T) {
	f := validComputeFlags()
	f.format = "yaml"
	var buf bytes.Buffer
	if err := runCompute(&buf, f); err != nil {
		t.Fatal(err)
	}
	var got computeOutput
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if got.Result.NodeImpactScore != 3375 {
		t.Errorf("node impact = %v, want 3375", got.Result.NodeImpactScore)
	}
}

func TestRunComputeMarkdown(t *testing.T) {
	f := validComputeFlags()
	f.format = "md"
	var buf bytes.Buffer
	if err := runCompute(&buf, f); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "**Impact score:** 3375.000 karma") {
		t.Errorf("unexpected markdown:\n%s", buf.String())
	}
}

func TestRunComputeClamp(t *testing.T) {
	f := validComputeFlags()
	f.state = impact.NodeState{BaselineMassKg: 1.0, ActualMassKg: 1.2, ThroughputPerDay: 10, WindowDays: 5}
	var buf bytes.Buffer
	if err := runCompute(&buf, f); err != nil {
		t.Fatal(err)
	}
	var got computeOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Result != (impact.Result{}) {
		t.Errorf("expected clamped result, got %+v", got.Result)
	}
}

func TestRunComputeInvalidWindow(t *testing.T) {
	f := validComputeFlags()
	f.state.WindowDays = 0
	err := runCompute(&bytes.Buffer{}, f)
	assertExitCode(t, err, 3)
	if !strings.Contains(err.Error(), "invalid time window or throughput") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestRunComputeUnknownFormat(t *testing.T) {
	f := validComputeFlags()
	f.format = "xml"
	assertExitCode(t, runCompute(&bytes.Buffer{}, f), 3)
}

func TestRunComputeOutFile(t *testing.T) {
	f := validComputeFlags()
	f.out = filepath.Join(t.TempDir(), "impact.json")
	var buf bytes.Buffer
	if err := runCompute(&buf, f); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected nothing on stdout when --out is set, got %q", buf.String())
	}
	data, err := os.ReadFile(f.out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"node_impact_score": 3375`) {
		t.Errorf("unexpected file contents:\n%s", data)
	}
}

func TestRunScenario(t *testing.T) {
	var buf bytes.Buffer
	if err := runScenario(&buf, "phoenix-bagasse", &outputFlags{format: "json"}); err != nil {
		t.Fatal(err)
	}
	var r scenario.Report
	if err := json.Unmarshal(buf.Bytes(), &r); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if r.Scenario != "phoenix-bagasse" || r.Material.ID != "bagasse" {
		t.Errorf("unexpected report header: %+v", r)
	}
	if r.Eco.EcoScore.TotalScore <= 0 {
		t.Errorf("expected positive eco score, got %v", r.Eco.EcoScore.TotalScore)
	}
	if r.Decay.DegradedFraction <= 0 {
		t.Errorf("expected some decay, got %+v", r.Decay)
	}
}

func TestRunScenarioMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := runScenario(&buf, "phoenix-pha-integrated", &outputFlags{format: "md"}); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# Scenario: phoenix-pha-integrated", "## Eco Score", "## Node Impact"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestRunScenarioUnknown(t *testing.T) {
	assertExitCode(t, runScenario(&bytes.Buffer{}, "nowhere", &outputFlags{format: "json"}), 3)
}

func TestRunScenarioList(t *testing.T) {
	var buf bytes.Buffer
	if err := runScenarioList(&buf); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"phoenix-bagasse", "phoenix-pha-standalone", "phoenix-pha-integrated"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("list missing %q", want)
		}
	}
}

func TestRunMaterials(t *testing.T) {
	var buf bytes.Buffer
	if err := runMaterialsList(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Sugarcane Bagasse Pulp") {
		t.Errorf("unexpected list:\n%s", buf.String())
	}

	buf.Reset()
	if err := runMaterialsShow(&buf, "pha", &outputFlags{format: "yaml"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "id: pha") {
		t.Errorf("unexpected yaml:\n%s", buf.String())
	}

	assertExitCode(t, runMaterialsShow(&bytes.Buffer{}, "pha", &outputFlags{format: "md"}), 3)
	assertExitCode(t, runMaterialsShow(&bytes.Buffer{}, "styrofoam", &outputFlags{format: "yaml"}), 3)
}

func TestRootCommandCompute(t *testing.T) {
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{
		"compute",
		"--baseline-kg", "2", "--actual-kg", "0.5",
		"--throughput", "100", "--window-days", "30",
		"--verbose",
	})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout.String(), `"mass_avoided_kg": 4500`) {
		t.Errorf("unexpected stdout:\n%s", stdout.String())
	}
	if !strings.Contains(stderr.String(), "component=compute") {
		t.Errorf("expected debug log on stderr, got:\n%s", stderr.String())
	}
}

func TestRootCommandComputeMissingWindow(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"compute", "--baseline-kg", "2", "--actual-kg", "0.5", "--throughput", "100"})
	assertExitCode(t, root.Execute(), 3)
}

func assertExitCode(t *testing.T, err error, wantCode int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected exit code %d, got nil error", wantCode)
	}
	var ee *exitErr
	if !errors.As(err, &ee) {
		t.Fatalf("expected *exitErr, got %T: %v", err, err)
	}
	if ee.code != wantCode {
		t.Errorf("exit code = %d, want %d (msg: %s)", ee.code, wantCode, ee.msg)
	}
}
