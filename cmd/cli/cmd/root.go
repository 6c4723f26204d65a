// Package cmd provides the CLI commands for meal-benefit.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"meal-benefit/internal/config"
	"meal-benefit/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "meal-benefit",
	Short: "Compute monthly meal-benefit entitlements",
	Long: `meal-benefit computes the monthly meal/food-benefit purchase for the
workforce: it derives each eligible employee's benefit days for the
reference period, resolves the union daily rate, splits the cost between
employer and employee, and flags inconsistent records for review.

Examples:
  meal-benefit run --competency 05/2025
  meal-benefit run --config vr.hcl --output ./out
  meal-benefit config`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (HCL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	logCfg := *cfg.Logging
	if verbose {
		logCfg.Level = "debug"
	}
	if err := logging.Initialize(logCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("meal-benefit version 0.1.0")
	},
}

// configCmd prints the resolved configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()
		fmt.Printf("competency:          %s\n", orUnset(cfg.Competency))
		fmt.Printf("default daily rate:  %.2f\n", cfg.DefaultDailyRate)
		if cfg.Period != nil {
			fmt.Printf("period:              %s to %s\n", orUnset(cfg.Period.Start), orUnset(cfg.Period.End))
			fmt.Printf("cutoff day:          %d\n", cfg.Period.TerminationCutoffDay)
		}
		fmt.Printf("shares:              employer %.2f / employee %.2f\n", cfg.Shares.Employer, cfg.Shares.Employee)
		fmt.Printf("vacation strategy:   %s\n", cfg.Strategies.Vacation)
		fmt.Printf("unconfirmed term.:   %s\n", cfg.Strategies.UnconfirmedTermination)
		fmt.Printf("union days priority: %t\n", cfg.Strategies.PrioritizeUnionDays)
		fmt.Printf("excluded titles:     %v\n", cfg.Exclusions.Titles)
		fmt.Printf("input dir:           %s\n", cfg.Inputs.Dir)
		fmt.Printf("output dir:          %s\n", cfg.Output.Dir)
	},
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
