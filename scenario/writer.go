package scenario

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// ScenarioMeta carries run facts echoed into the artifact header.
type ScenarioMeta struct {
	GeneratedAt time.Time
	Seed        int64
	CatalogSize int
}

// RenderScenario serializes the resolved trigger list to the simulator's
// scenario dialect. Rendering is pure; callers write the result in one shot
// so a failed run never leaves a partial artifact behind.
func RenderScenario(cfg *Config, idx *OverrideIndex, meta ScenarioMeta, triggers []Trigger) string {
	var b strings.Builder

	name := cfg.ScenarioName
	if name == "" {
		name = "failure scenario"
	}
	fmt.Fprintf(&b, "# %s\n", name)
	fmt.Fprintf(&b, "# generated: %s\n", meta.GeneratedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "# seed: %d\n", meta.Seed)
	fmt.Fprintf(&b, "# expected failures: %g across %d catalog entries\n", cfg.ExpectedFailures, meta.CatalogSize)
	fmt.Fprintf(&b, "# mtbf: %g hours\n", cfg.MTBFHours)
	fmt.Fprintf(&b, "# override matching: %s\n", idx.Strategy())
	for _, ov := range idx.Overrides() {
		fmt.Fprintf(&b, "# override %s:%s\n", ov.Prefix, describeOverride(ov))
	}
	for _, kn := range kindNames {
		if m, ok := idx.mults[kn.kind]; ok {
			fmt.Fprintf(&b, "# state probability %s: x%g\n", kn.name, m)
		}
	}

	for _, t := range triggers {
		fmt.Fprintf(&b, "libfail%s/state = %d\n", t.FailurePath, t.Kind.Code())
		if t.Param != nil {
			fmt.Fprintf(&b, "libfail%s/param = %d\n", t.FailurePath, *t.Param)
		}
	}
	return b.String()
}

// describeOverride echoes the set fields of one override for the header.
func describeOverride(ov FailureOverride) string {
	var parts []string
	if ov.Kind != nil {
		parts = append(parts, fmt.Sprintf(" state=%s", *ov.Kind))
	}
	if ov.Param != nil {
		parts = append(parts, fmt.Sprintf(" param=%d", *ov.Param))
	}
	if ov.MTBFHours != nil {
		parts = append(parts, fmt.Sprintf(" mtbf_hours=%g", *ov.MTBFHours))
	}
	if ov.Mult != nil {
		parts = append(parts, fmt.Sprintf(" mult=%g", *ov.Mult))
	}
	return strings.Join(parts, "")
}

// WriteScenario writes a fully rendered scenario to path.
func WriteScenario(path string, rendered string) error {
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("writing scenario %s: %w", path, err)
	}
	return nil
}
