package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexFromYAML(t *testing.T, doc string) *OverrideIndex {
	t.Helper()
	cfg, err := ParseConfig([]byte("xplane_directory: /xp\nexpected_failures: 1\nmtbf_hours: 30\n" + doc))
	require.NoError(t, err)
	idx, err := NewOverrideIndex(cfg)
	require.NoError(t, err)
	return idx
}

func TestResolve_PrefixGovernsSubtree(t *testing.T) {
	idx := indexFromYAML(t, `
overrides:
  systems:
    eng:
      left:
        mult: 2.0
`)

	ov := idx.Resolve("/systems/eng/left/rev/deploy")
	require.NotNil(t, ov)
	assert.Equal(t, "/systems/eng/left", ov.Prefix)

	assert.Nil(t, idx.Resolve("/systems/eng/right/rev/deploy"))
	assert.Nil(t, idx.Resolve("/elec/gen1"))
}

func TestResolve_ExactMatch(t *testing.T) {
	idx := indexFromYAML(t, `
overrides:
  systems:
    eng:
      left:
        rev:
          deploy:
            state: active
`)
	ov := idx.Resolve("/systems/eng/left/rev/deploy")
	require.NotNil(t, ov)
	assert.Equal(t, "/systems/eng/left/rev/deploy", ov.Prefix)
}

func TestResolve_FirstMatch_MoreSpecificWinsWhenLexLater(t *testing.T) {
	// Descending lexicographic: "/systems/eng/left/rev/deploy" sorts after
	// "/systems/eng/left" in ascending order, so it is scanned FIRST in the
	// descending list and the more specific override wins here.
	idx := indexFromYAML(t, `
overrides:
  systems:
    eng:
      left:
        mult: 2.0
        rev:
          deploy:
            state: active
`)
	ov := idx.Resolve("/systems/eng/left/rev/deploy")
	require.NotNil(t, ov)
	assert.Equal(t, "/systems/eng/left/rev/deploy", ov.Prefix)

	// The broad entry still governs siblings.
	ov = idx.Resolve("/systems/eng/left/fadec")
	require.NotNil(t, ov)
	assert.Equal(t, "/systems/eng/left", ov.Prefix)
}

func TestResolve_ScanOrderRegression(t *testing.T) {
	// Regression pin for the scan-order contract: the first-match scan
	// walks the list in descending lexicographic order. Every prefix
	// matching the same path is itself a prefix of the next longer match,
	// so the most specific entry always sorts first and wins the scan --
	// an incidental property of the sort, pinned here so a change to the
	// ordering cannot silently alter resolution. The longest-prefix
	// strategy must agree on the same inputs.
	doc := `
overrides:
  systems:
    z:
      mult: 3.0
      rev:
        deploy:
          state: active
`
	idx := indexFromYAML(t, doc)
	ov := idx.Resolve("/systems/z/rev/deploy")
	require.NotNil(t, ov)
	assert.Equal(t, "/systems/z/rev/deploy", ov.Prefix,
		"descending-lex scan must reach the more specific entry first")

	idxLongest := indexFromYAML(t, "override_matching: longest-prefix\n"+doc)
	ov = idxLongest.Resolve("/systems/z/rev/deploy")
	require.NotNil(t, ov)
	assert.Equal(t, "/systems/z/rev/deploy", ov.Prefix)

	// The broad entry still governs everything else under /systems/z.
	ov = idx.Resolve("/systems/z/fadec")
	require.NotNil(t, ov)
	assert.Equal(t, "/systems/z", ov.Prefix)
}

func TestResolve_PlainStringPrefixSemantics(t *testing.T) {
	// Matching is string prefix, not path-segment prefix: /systems/eng/left
	// also governs /systems/eng/leftover.
	idx := indexFromYAML(t, `
overrides:
  systems:
    eng:
      left:
        mult: 2.0
`)
	ov := idx.Resolve("/systems/eng/leftover")
	require.NotNil(t, ov)
	assert.Equal(t, "/systems/eng/left", ov.Prefix)
}

func TestKindMultiplier_DefaultsToOne(t *testing.T) {
	idx := indexFromYAML(t, `
state_probability_overrides:
  agl: 2.5
`)
	assert.Equal(t, 2.5, idx.KindMultiplier(KindAGL))
	assert.Equal(t, 1.0, idx.KindMultiplier(KindIAS))
}
