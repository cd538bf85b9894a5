package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/failgen/failgen/scenario"
)

var (
	// CLI flags
	configPath  string // Path to the failure-config YAML
	catalogPath string // Explicit failures.conf path (overrides the derived one)
	outputPath  string // Scenario artifact path ("" = derived from scenario_name)
	seed        int64  // Seed for reproducible generation
	verbose     bool   // Echo the resolved trigger list to stdout
	dryRun      bool   // Select triggers but write no artifact
	logLevel    string // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "failgen",
	Short: "Randomized failure scenario generator for the CL650 systems simulation",
}

// generateCmd runs one scenario generation pass using parameters from CLI flags
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a failure scenario file",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := scenario.LoadConfig(configPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		// CLI --seed wins over the config seed; neither means wall clock.
		runSeed := time.Now().UnixNano()
		if cmd.Flags().Changed("seed") {
			runSeed = seed
		} else if cfg.Seed != nil {
			runSeed = *cfg.Seed
		}

		index, err := scenario.NewOverrideIndex(cfg)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		rng := scenario.NewPartitionedRNG(scenario.NewGenerationKey(runSeed))
		sampler, err := scenario.NewTriggerSampler(cfg, index, scenario.BuildRangeTable(cfg.MTBFHours), rng)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		catPath := catalogPath
		if catPath == "" {
			catPath = scenario.CatalogPath(cfg.XPlaneDirectory)
		}
		catalog, err := scenario.LoadCatalog(catPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Infof("loaded %d failure points from %s", len(catalog), catPath)

		triggers, err := sampler.Generate(catalog)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		if verbose {
			EchoTriggers(os.Stdout, index, triggers)
		}

		rendered := scenario.RenderScenario(cfg, index, scenario.ScenarioMeta{
			GeneratedAt: time.Now(),
			Seed:        runSeed,
			CatalogSize: len(catalog),
		}, triggers)

		if dryRun {
			fmt.Print(rendered)
			logrus.Info("dry run, no artifact written")
			return
		}

		out := outputPath
		if out == "" {
			out = DefaultOutputPath(cfg.ScenarioName)
		}
		if err := scenario.WriteScenario(out, rendered); err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Infof("wrote %d triggers to %s", len(triggers), out)
	},
}

// DefaultOutputPath derives the artifact filename from the scenario name.
func DefaultOutputPath(scenarioName string) string {
	if scenarioName == "" {
		return "failure-scenario.cfg"
	}
	return scenarioName + ".cfg"
}

// EchoTriggers prints the resolved trigger list and any override that
// matched each failure, for --verbose runs.
func EchoTriggers(w io.Writer, index *scenario.OverrideIndex, triggers []scenario.Trigger) {
	for _, t := range triggers {
		line := fmt.Sprintf("%s -> %s", t.FailurePath, t.Kind)
		if t.Param != nil {
			line += fmt.Sprintf(" (param %d)", *t.Param)
		}
		if ov := index.Resolve(t.FailurePath); ov != nil {
			line += fmt.Sprintf(" [override %s]", ov.Prefix)
		}
		fmt.Fprintln(w, line)
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	generateCmd.Flags().StringVar(&configPath, "config", "failure-config.yml", "Path to the failure-config YAML")
	generateCmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to failures.conf (default: derived from xplane_directory)")
	generateCmd.Flags().StringVar(&outputPath, "output", "", "Scenario output path (default: <scenario_name>.cfg)")
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for reproducible generation (default: config seed or wall clock)")
	generateCmd.Flags().BoolVar(&verbose, "verbose", false, "Echo the resolved trigger list and matched overrides")
	generateCmd.Flags().BoolVar(&dryRun, "dry", false, "Select triggers and print the scenario without writing it")
	generateCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Attach `generate` as a subcommand to `root`
	rootCmd.AddCommand(generateCmd)
}
