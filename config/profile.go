package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// SearchProfile bundles the search-tuning defaults for one named preset
// (fast, tspin, allspin, tetrios2) — the YAML analog of the teacher's
// per-lexicon/letter-distribution defaults bundled in config.Config, but
// loaded through viper instead of flags since these are tuning knobs an
// operator edits as a file, not per-invocation flags.
type SearchProfile struct {
	Name                string `mapstructure:"name" yaml:"name"`
	SearchType          string `mapstructure:"search_type" yaml:"search_type"`
	AlwaysRegularAttack bool   `mapstructure:"always_regular_attack" yaml:"always_regular_attack"`
	NumApplyFastSearch  int    `mapstructure:"num_apply_fast_search" yaml:"num_apply_fast_search"`
	LastHoldPriority    byte   `mapstructure:"last_hold_priority" yaml:"last_hold_priority"`
}

// defaultProfiles is the built-in preset table, used whenever no profile
// file is supplied — every field here mirrors a command-line-reachable
// default so the CLI behaves sensibly with zero configuration.
var defaultProfiles = map[string]SearchProfile{
	"fast":     {Name: "fast", SearchType: "fast", NumApplyFastSearch: 0},
	"tspin":    {Name: "tspin", SearchType: "tspin", AlwaysRegularAttack: false},
	"allspin":  {Name: "allspin", SearchType: "allspin", AlwaysRegularAttack: false},
	"tetrios2": {Name: "tetrios2", SearchType: "tetrios2", AlwaysRegularAttack: true},
}

// LoadSearchProfiles reads a YAML document of named profiles from path and
// merges it over the built-in defaults; an empty path returns the
// defaults untouched.
func LoadSearchProfiles(path string) (map[string]SearchProfile, error) {
	profiles := make(map[string]SearchProfile, len(defaultProfiles))
	for k, v := range defaultProfiles {
		profiles[k] = v
	}
	if path == "" {
		return profiles, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: reading search profiles: %w", err)
	}

	var raw map[string]SearchProfile
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("config: parsing search profiles: %w", err)
	}
	for k, p := range raw {
		if p.Name == "" {
			p.Name = k
		}
		profiles[k] = p
	}
	return profiles, nil
}

// SaveSearchProfiles writes profiles to path as YAML, directly through
// yaml.v3 rather than viper — viper is a read-side convenience layered
// over multiple sources, but this engine only ever writes out one flat
// document, so the marshaler is used straight.
func SaveSearchProfiles(path string, profiles map[string]SearchProfile) error {
	data, err := yaml.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("config: marshaling search profiles: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
