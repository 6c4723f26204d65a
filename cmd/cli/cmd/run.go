// Package cmd - run command
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"meal-benefit/adapters/xlsx"
	"meal-benefit/core/engine"
	"meal-benefit/core/output"
	"meal-benefit/core/period"
	"meal-benefit/core/types"
	"meal-benefit/core/ui"
	"meal-benefit/internal/config"
	"meal-benefit/internal/logging"
)

var (
	competencyFlag string
	inputDir       string
	outputDir      string
	showDetails    bool
	noColor        bool
	force          bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the monthly benefit computation",
	Long: `Load the input workbooks, compute each eligible employee's benefit
days, rate and cost split for the configured reference period, and write
the purchase workbook plus a validation summary.

Without --competency the command asks interactively.

Examples:
  meal-benefit run --competency 05/2025
  meal-benefit run --inputs ./data --output ./out
  meal-benefit run --force`,
	RunE: runBenefit,
}

func init() {
	runCmd.Flags().StringVarP(&competencyFlag, "competency", "m", "", "competency month (MM/YYYY)")
	runCmd.Flags().StringVarP(&inputDir, "inputs", "i", "", "directory holding the input workbooks")
	runCmd.Flags().StringVarP(&outputDir, "output", "o", "", "directory for the output workbook")
	runCmd.Flags().BoolVarP(&showDetails, "details", "d", false, "print one line per employee after the summary")
	runCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	runCmd.Flags().BoolVarP(&force, "force", "f", false, "run even outside the execution window")
}

func runBenefit(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	w := ui.NewWriter(os.Stdout, noColor)
	startTime := time.Now()

	// Tee the logger into a capture sink so warnings emitted outside
	// the engine (window guard, loader) still reach the report sheet.
	capture := logging.NewCapture(zapcore.WarnLevel)
	logCfg := *cfg.Logging
	if verbose {
		logCfg.Level = "debug"
	}
	if err := logging.InitializeWithCapture(logCfg, capture); err != nil {
		return err
	}

	if err := checkExecutionWindow(cfg, w); err != nil {
		return err
	}

	competency, err := resolveCompetency(cfg, w)
	if err != nil {
		return err
	}

	w.Header("Meal-Benefit Run " + competency.Label())

	engineCfg, err := cfg.EngineConfig(competency, logging.Logger)
	if err != nil {
		return err
	}

	dir := cfg.Inputs.Dir
	if inputDir != "" {
		dir = inputDir
	}
	w.Info("Loading workbooks from " + dir)
	tables, warnings, err := xlsx.LoadTables(inputPaths(cfg).Resolve(dir))
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		logging.Warn(warning)
		w.Warning(warning)
	}

	inputs, err := engine.BuildInputs(tables)
	if err != nil {
		return err
	}
	inputs.Warnings = append(warnings, inputs.Warnings...)

	w.Info(fmt.Sprintf("Processing %d active employees", len(inputs.Active)))
	result, err := engine.Run(engineCfg, inputs)
	if err != nil {
		return err
	}

	mergeCapturedLogs(&result.Report, capture.Lines())

	outDir := cfg.Output.Dir
	if outputDir != "" {
		outDir = outputDir
	}
	path, err := xlsx.WriteReport(result, competency, outDir)
	if err != nil {
		return err
	}

	w.Print("%s", output.Summary(result))
	if showDetails || cfg.Output.ShowDetails {
		printDetails(w, result)
	}

	w.Success("Workbook written: " + path)
	w.Info(fmt.Sprintf("Completed in %s", time.Since(startTime).Round(time.Millisecond)))
	logging.Info("run finished",
		zap.String("competency", competency.Label()),
		zap.Int("records", result.Report.TotalRecords),
		zap.String("output", path))
	return nil
}

// checkExecutionWindow enforces the recommended day-of-month window for
// the monthly run. Outside it the run warns, or refuses when blocking
// is configured and --force is absent.
func checkExecutionWindow(cfg *config.Config, w *ui.Writer) error {
	exec := cfg.Execution
	day := time.Now().Day()
	if day >= exec.WindowStartDay && day <= exec.WindowEndDay {
		return nil
	}
	if exec.Block && !force {
		w.Error(exec.Message)
		return fmt.Errorf("execution blocked: %s (use --force to override)", exec.Message)
	}
	w.Warning(exec.Message)
	logging.Warn("running outside the execution window", zap.Int("day", day))
	return nil
}

// resolveCompetency takes the competency from the flag, then the config
// file, then the interactive prompt.
func resolveCompetency(cfg *config.Config, w *ui.Writer) (period.Competency, error) {
	if competencyFlag != "" {
		return period.ParseCompetency(competencyFlag)
	}
	if cfg.Competency != "" {
		return period.ParseCompetency(cfg.Competency)
	}
	now := time.Now()
	def := period.Competency{Month: now.Month(), Year: now.Year()}
	return ui.PromptCompetency(os.Stdin, w, def), nil
}

// mergeCapturedLogs appends captured CLI-stage lines the engine did not
// already record.
func mergeCapturedLogs(report *types.ValidationReport, captured []string) {
	seen := make(map[string]bool, len(report.Logs))
	for _, line := range report.Logs {
		seen[line] = true
	}
	for _, line := range captured {
		if !seen[line] {
			report.Logs = append(report.Logs, line)
			seen[line] = true
		}
	}
}

func inputPaths(cfg *config.Config) xlsx.Paths {
	in := cfg.Inputs
	return xlsx.Paths{
		Active:      in.Active,
		Vacation:    in.Vacation,
		Terminated:  in.Terminated,
		Interns:     in.Interns,
		Apprentices: in.Apprentices,
		OnLeave:     in.OnLeave,
		Expatriates: in.Expatriates,
		Admissions:  in.Admissions,
		Rates:       in.Rates,
		UnionDays:   in.UnionDays,
	}
}

func printDetails(w *ui.Writer, result *types.RunResult) {
	w.Println("")
	for _, rec := range result.Records {
		line := fmt.Sprintf("%-10s %3d days × R$ %8s = R$ %10s",
			rec.ID, rec.EligibleDays, rec.DailyRate.StringFixed(2), rec.TotalAmount.StringFixed(2))
		if len(rec.Observations) > 0 {
			line += "  [" + strings.Join(rec.Observations, types.ObservationSeparator) + "]"
		}
		w.Println("%s", line)
	}
}
