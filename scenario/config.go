package scenario

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Matching strategy names accepted by the override_matching config key.
const (
	MatchFirst         = "first-match"
	MatchLongestPrefix = "longest-prefix"
)

// Config is the statistical configuration driving one generation pass.
// It is built once at startup and immutable afterwards.
type Config struct {
	XPlaneDirectory  string  `yaml:"xplane_directory"`
	ExpectedFailures float64 `yaml:"expected_failures"`
	MTBFHours        float64 `yaml:"mtbf_hours"`
	ScenarioName     string  `yaml:"scenario_name"`

	// Seed makes a run reproducible; nil means seed from the wall clock.
	Seed *int64 `yaml:"seed"`

	// OverrideMatching selects the override resolution strategy.
	// Empty defaults to MatchFirst.
	OverrideMatching string `yaml:"override_matching"`

	// Overrides is a free-form tree: reserved leaf keys (state, param,
	// mtbf_hours, mult) attach override data to the slash-joined path of
	// keys above them; every other key is a path segment.
	Overrides map[string]any `yaml:"overrides"`

	// StateProbabilityOverrides maps trigger-kind display names to
	// selection-weight multipliers. Kept untyped so a bad value surfaces
	// as a ConfigError instead of a bare YAML type error.
	StateProbabilityOverrides map[string]any `yaml:"state_probability_overrides"`
}

// FailureOverride pins behavior for every failure whose path starts with
// Prefix. Nil fields mean "no override for that aspect".
type FailureOverride struct {
	Prefix    string
	Kind      *TriggerKind // forced trigger kind; disables randomness entirely
	Param     *int         // forced parameter (only meaningful with Kind)
	MTBFHours *float64     // reserved; parsed and carried but not consulted yet
	Mult      *float64     // activation probability multiplier, >= 0
}

// The four reserved override keys. Anything else under `overrides` is a
// path segment.
const (
	overrideKeyState = "state"
	overrideKeyParam = "param"
	overrideKeyMTBF  = "mtbf_hours"
	overrideKeyMult  = "mult"
)

// LoadConfig reads and validates a failure-config YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes a config document with strict field checking
// (unknown top-level keys are errors) and validates it.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("parsing YAML: %v", err)}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the statistical fields and both override sections.
// All config defects surface here, before any sampling begins.
func (c *Config) Validate() error {
	if c.XPlaneDirectory == "" {
		return &ConfigError{Reason: "xplane_directory is required"}
	}
	if c.ExpectedFailures <= 0 {
		return &ConfigError{Reason: fmt.Sprintf("expected_failures must be positive, got %v", c.ExpectedFailures)}
	}
	if c.MTBFHours <= 0 {
		return &ConfigError{Reason: fmt.Sprintf("mtbf_hours must be positive, got %v", c.MTBFHours)}
	}
	switch c.OverrideMatching {
	case "", MatchFirst, MatchLongestPrefix:
	default:
		return &ConfigError{Reason: fmt.Sprintf("override_matching must be %q or %q, got %q",
			MatchFirst, MatchLongestPrefix, c.OverrideMatching)}
	}
	if _, err := c.FailureOverrides(); err != nil {
		return err
	}
	if _, err := c.KindMultipliers(); err != nil {
		return err
	}
	return nil
}

// MatchStrategy returns the configured override matching strategy,
// defaulting to the first-match scan.
func (c *Config) MatchStrategy() string {
	if c.OverrideMatching == "" {
		return MatchFirst
	}
	return c.OverrideMatching
}

// FailureOverrides flattens the overrides tree into per-prefix overrides.
// Each tree node holding at least one reserved key becomes one override
// whose prefix is "/" plus the slash-joined key path to that node.
func (c *Config) FailureOverrides() ([]FailureOverride, error) {
	var out []FailureOverride
	if err := collectOverrides(c.Overrides, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func collectOverrides(node map[string]any, path []string, out *[]FailureOverride) error {
	if node == nil {
		return nil
	}
	prefix := "/" + strings.Join(path, "/")

	ov := FailureOverride{Prefix: prefix}
	found := false

	// Deterministic iteration keeps error reporting stable across runs.
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		val := node[key]
		switch key {
		case overrideKeyState:
			name, ok := val.(string)
			if !ok {
				return &ConfigError{Reason: fmt.Sprintf("override %s: state must be a trigger kind name, got %v", prefix, val)}
			}
			kind, err := ParseTriggerKind(name)
			if err != nil {
				return err
			}
			ov.Kind = &kind
			found = true
		case overrideKeyParam:
			p, ok := asInt(val)
			if !ok {
				return &ConfigError{Reason: fmt.Sprintf("override %s: param must be an integer, got %v", prefix, val)}
			}
			ov.Param = &p
			found = true
		case overrideKeyMTBF:
			m, ok := asFloat(val)
			if !ok || m <= 0 {
				return &ConfigError{Reason: fmt.Sprintf("override %s: mtbf_hours must be a positive number, got %v", prefix, val)}
			}
			ov.MTBFHours = &m
			found = true
		case overrideKeyMult:
			m, ok := asFloat(val)
			if !ok {
				return &ConfigError{Reason: fmt.Sprintf("override %s: mult must be a number, got %v", prefix, val)}
			}
			if m < 0 {
				return &ConfigError{Reason: fmt.Sprintf("override %s: mult must be non-negative, got %v", prefix, m)}
			}
			ov.Mult = &m
			found = true
		default:
			child, ok := val.(map[string]any)
			if !ok {
				return &ConfigError{Reason: fmt.Sprintf("override path %s/%s must be a mapping, got %v", prefix, key, val)}
			}
			childPath := append(append([]string(nil), path...), key)
			if err := collectOverrides(child, childPath, out); err != nil {
				return err
			}
		}
	}

	if found {
		*out = append(*out, ov)
	}
	return nil
}

// KindMultipliers resolves state_probability_overrides into per-kind
// selection-weight multipliers.
func (c *Config) KindMultipliers() (map[TriggerKind]float64, error) {
	mults := make(map[TriggerKind]float64, len(c.StateProbabilityOverrides))
	// Sorted for deterministic error reporting.
	names := make([]string, 0, len(c.StateProbabilityOverrides))
	for name := range c.StateProbabilityOverrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		kind, err := ParseTriggerKind(name)
		if err != nil {
			return nil, err
		}
		m, ok := asFloat(c.StateProbabilityOverrides[name])
		if !ok {
			return nil, &ConfigError{Reason: fmt.Sprintf("state probability for %q must be a number, got %v",
				name, c.StateProbabilityOverrides[name])}
		}
		if m < 0 {
			return nil, &ConfigError{Reason: fmt.Sprintf("state probability for %q must be non-negative, got %v", name, m)}
		}
		mults[kind] = m
	}
	return mults, nil
}

// asFloat coerces the numeric types yaml.v3 produces for untyped scalars.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}
