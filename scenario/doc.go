// Package scenario implements the failure-trigger resolution engine behind
// failgen.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - trigger.go: the TriggerKind enumeration and the randomly-selectable subset
//   - overrides.go: flattened per-prefix overrides and their matching rules
//   - sampler.go: the activation draw, kind draw and parameter draw per failure
//
// # Pipeline
//
// One generation pass is a pure function of (catalog, config, seed):
//
//	Config ─→ OverrideIndex ─→ KindDistribution ─┐
//	failures.conf ─→ catalog ────────────────────┴─→ TriggerSampler.Generate ─→ RenderScenario
//
// Configuration defects (unknown kind names, negative multipliers, a
// distribution multiplied to zero) and an empty catalog all surface before
// the first random draw; a partial scenario is never produced.
package scenario
