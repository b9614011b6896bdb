package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/txn-sim/txn-sim/sim"
	"github.com/txn-sim/txn-sim/sim/workload"
)

var (
	// CLI flags for trace generation
	seed        int64    // Seed for random key draws
	count       int      // Traces generated per template
	templates   []string // Template ids to generate; empty means all
	format      string   // Output encoding (text or json)
	outPath     string   // Output file; empty writes to stdout
	domainsPath string   // YAML file overriding the default key domains
	scenario    string   // Named contention preset for the key domains
	logLevel    string   // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "txn-sim",
	Short: "Synthesizes access traces for ad-hoc transaction workloads",
}

// generateCmd synthesizes traces using parameters from CLI flags
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a batch of traces per transaction template",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if domainsPath != "" && scenario != workload.ScenarioDefault {
			logrus.Fatalf("--domains and --scenario are mutually exclusive")
		}

		var domains *workload.Domains
		if domainsPath != "" {
			domains, err = workload.LoadDomains(domainsPath)
			if err != nil {
				logrus.Fatalf("unable to read domains config: %v", err)
			}
		} else {
			domains, err = workload.DomainsForScenario(scenario)
			if err != nil {
				logrus.Fatalf("unable to resolve scenario: %v", err)
			}
		}

		ids := make([]workload.TemplateID, 0, len(templates))
		for _, t := range templates {
			ids = append(ids, workload.TemplateID(t))
		}

		runner, err := sim.NewRunner(sim.RunConfig{
			Seed:      seed,
			Count:     count,
			Templates: ids,
			Format:    format,
			Domains:   domains,
		})
		if err != nil {
			logrus.Fatalf("invalid run configuration: %v", err)
		}

		var out io.Writer = os.Stdout
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				logrus.Fatalf("unable to create output file %s: %v", outPath, err)
			}
			defer f.Close()
			out = f
		}

		if err := runner.Run(out); err != nil {
			logrus.Fatalf("trace generation failed: %v", err)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {

	generateCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random key draws")
	generateCmd.Flags().IntVar(&count, "count", 5, "Number of traces per template")
	generateCmd.Flags().StringSliceVar(&templates, "template", nil, "Template ids to generate (repeatable); default is all templates")
	generateCmd.Flags().StringVar(&format, "format", sim.FormatText, "Output format (text, json)")
	generateCmd.Flags().StringVar(&outPath, "out", "", "Output file path; default is stdout")
	generateCmd.Flags().StringVar(&domainsPath, "domains", "", "YAML file overriding the default key domains")
	generateCmd.Flags().StringVar(&scenario, "scenario", workload.ScenarioDefault, "Key domain preset (default, high-contention, low-contention)")
	generateCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Attach `generate` as a subcommand to `root`
	rootCmd.AddCommand(generateCmd)
}
