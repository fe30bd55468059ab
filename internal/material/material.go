// Package material loads the built-in tray material catalogue and models how
// quickly each material breaks down in a given environment.
package material

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

var validate = validator.New(validator.WithRequiredStructEnabled())

// Environment is a setting in which a tray ends its life.
type Environment string

const (
	EnvHomeCompost       Environment = "home_compost"
	EnvIndustrialCompost Environment = "industrial_compost"
	EnvSoil              Environment = "soil"
	EnvMarine            Environment = "marine"
	EnvLandfill          Environment = "landfill"
)

func (e Environment) Valid() bool {
	switch e {
	case EnvHomeCompost, EnvIndustrialCompost, EnvSoil, EnvMarine, EnvLandfill:
		return true
	}
	return false
}

// Material describes a tray material and its published properties.
type Material struct {
	ID             string      `yaml:"id" json:"id" validate:"required"`
	Name           string      `yaml:"name" json:"name" validate:"required"`
	Description    string      `yaml:"description" json:"description"`
	Safety         Safety      `yaml:"safety" json:"safety"`
	Biodegradation []Profile   `yaml:"biodegradation" json:"biodegradation" validate:"required,min=1,dive"`
	Performance    Performance `yaml:"performance" json:"performance"`
	LCABaseline    LCABaseline `yaml:"lca_baseline" json:"lca_baseline"`
}

// Safety lists certifications and content claims.
type Safety struct {
	Biobased             bool     `yaml:"biobased" json:"biobased"`
	PFASFree             bool     `yaml:"pfas_free" json:"pfas_free"`
	BPAFree              bool     `yaml:"bpa_free" json:"bpa_free"`
	FoodContactCertified bool     `yaml:"food_contact_certified" json:"food_contact_certified"`
	Certifications       []string `yaml:"certifications" json:"certifications" validate:"dive,required"`
	NonToxicClaim        string   `yaml:"non_toxic_claim" json:"non_toxic_claim"`
}

// Profile is the observed biodegradation window in one environment.
type Profile struct {
	Environment Environment `yaml:"environment" json:"environment" validate:"required,oneof=home_compost industrial_compost soil marine landfill"`
	MinDays     float64     `yaml:"min_days" json:"min_days" validate:"gt=0"`
	MaxDays     float64     `yaml:"max_days" json:"max_days" validate:"gtefield=MinDays"`
	Notes       string      `yaml:"notes" json:"notes"`
}

// Performance holds usage limits.
type Performance struct {
	MaxUseTemperatureC float64 `yaml:"max_use_temperature_c" json:"max_use_temperature_c" validate:"gtefield=MinUseTemperatureC"`
	MinUseTemperatureC float64 `yaml:"min_use_temperature_c" json:"min_use_temperature_c"`
	GreaseResistance   string  `yaml:"grease_resistance" json:"grease_resistance" validate:"oneof=low medium high"`
	MoistureResistance string  `yaml:"moisture_resistance" json:"moisture_resistance" validate:"oneof=low medium high"`
	MicrowaveSafe      bool    `yaml:"microwave_safe" json:"microwave_safe"`
	FreezerSafe        bool    `yaml:"freezer_safe" json:"freezer_safe"`
}

// LCABaseline compares the material against polyethylene.
type LCABaseline struct {
	RelativeGWPVsPE             float64   `yaml:"relative_gwp_vs_pe" json:"relative_gwp_vs_pe" validate:"gte=0"`
	RelativeFossilDepletionVsPE float64   `yaml:"relative_fossil_depletion_vs_pe" json:"relative_fossil_depletion_vs_pe" validate:"gte=0"`
	CostRangeEURPerKg           []float64 `yaml:"cost_range_eur_per_kg" json:"cost_range_eur_per_kg" validate:"len=2,dive,gte=0"`
	Notes                       string    `yaml:"notes" json:"notes"`
}

// Profile returns the biodegradation profile for env, if the material has one.
func (m *Material) Profile(env Environment) (Profile, bool) {
	for _, p := range m.Biodegradation {
		if p.Environment == env {
			return p, true
		}
	}
	return Profile{}, false
}

// LoadBuiltin loads a built-in material by ID. IDs are case-insensitive.
func LoadBuiltin(id string) (*Material, error) {
	name := strings.ToLower(strings.TrimSpace(id))
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("material.LoadBuiltin: unknown material %q: %w", id, err)
	}
	var m Material
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("material.LoadBuiltin: parse %q: %w", id, err)
	}
	if err := validate.Struct(&m); err != nil {
		return nil, fmt.Errorf("material.LoadBuiltin: invalid %q: %w", id, err)
	}
	return &m, nil
}

// List returns the IDs of all built-in materials in sorted order.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".yaml") {
			ids = append(ids, strings.TrimSuffix(n, ".yaml"))
		}
	}
	sort.Strings(ids)
	return ids, nil
}
