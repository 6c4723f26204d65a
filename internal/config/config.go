// Package config provides configuration management. The run
// configuration is an HCL file; every section has a default so a run
// can start from an empty file.
package config

import (
	"github.com/hashicorp/hcl/v2/hclsimple"

	"meal-benefit/internal/errors"
	"meal-benefit/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Competency is the payment month label, "MM/YYYY"
	Competency string `hcl:"competency,optional"`

	// DefaultDailyRate is the fallback daily rate
	DefaultDailyRate float64 `hcl:"default_daily_rate,optional"`

	// Period bounds the reference window
	Period *PeriodConfig `hcl:"period,block"`

	// Shares splits the total between employer and employee
	Shares *SharesConfig `hcl:"shares,block"`

	// Strategies selects the run-wide strategy table
	Strategies *StrategiesConfig `hcl:"strategies,block"`

	// Exclusions configures the title-based exclusion list
	Exclusions *ExclusionsConfig `hcl:"exclusions,block"`

	// Execution configures the run-window guard
	Execution *ExecutionConfig `hcl:"execution,block"`

	// Inputs names the input workbooks
	Inputs *InputsConfig `hcl:"inputs,block"`

	// Output configures the report sink
	Output *OutputConfig `hcl:"output,block"`

	// Holidays is the holiday calendar for working-day derivation
	Holidays *HolidaysConfig `hcl:"holidays,block"`

	// Logging contains logging configuration
	Logging *logging.Config `hcl:"logging,block"`
}

// PeriodConfig bounds the reference window
type PeriodConfig struct {
	// Start and End are inclusive dates, "YYYY-MM-DD"
	Start string `hcl:"start"`
	End   string `hcl:"end"`

	// WorkingDays pins the base day count; 0 derives it from the
	// window and the holiday calendar
	WorkingDays int `hcl:"working_days,optional"`

	// TerminationCutoffDay is the termination proration cutoff
	TerminationCutoffDay int `hcl:"termination_cutoff_day,optional"`
}

// SharesConfig splits the benefit cost
type SharesConfig struct {
	Employer float64 `hcl:"employer"`
	Employee float64 `hcl:"employee"`
}

// StrategiesConfig selects per-deployment behavior
type StrategiesConfig struct {
	// Vacation is "full" or "conservative"
	Vacation string `hcl:"vacation,optional"`

	// VacationFraction applies under the conservative strategy
	VacationFraction float64 `hcl:"vacation_fraction,optional"`

	// UnconfirmedTermination is "prorate" or "exclude"
	UnconfirmedTermination string `hcl:"unconfirmed_termination,optional"`

	// PrioritizeUnionDays enables the union day-count ceiling
	PrioritizeUnionDays bool `hcl:"prioritize_union_days,optional"`
}

// ExclusionsConfig lists excluded-title substrings
type ExclusionsConfig struct {
	Titles []string `hcl:"titles,optional"`
}

// ExecutionConfig guards when the monthly run may happen
type ExecutionConfig struct {
	// WindowStartDay and WindowEndDay bound the recommended
	// day-of-month execution window
	WindowStartDay int `hcl:"window_start_day,optional"`
	WindowEndDay   int `hcl:"window_end_day,optional"`

	// Block refuses runs outside the window instead of warning
	Block bool `hcl:"block,optional"`

	// Message is shown when a run falls outside the window
	Message string `hcl:"message,optional"`
}

// InputsConfig names the input workbooks, resolved against Dir
type InputsConfig struct {
	Dir         string `hcl:"dir,optional"`
	Active      string `hcl:"active,optional"`
	Vacation    string `hcl:"vacation,optional"`
	Terminated  string `hcl:"terminated,optional"`
	Interns     string `hcl:"interns,optional"`
	Apprentices string `hcl:"apprentices,optional"`
	OnLeave     string `hcl:"on_leave,optional"`
	Expatriates string `hcl:"expatriates,optional"`
	Admissions  string `hcl:"admissions,optional"`
	Rates       string `hcl:"rates,optional"`
	UnionDays   string `hcl:"union_days,optional"`
}

// OutputConfig configures the report sink
type OutputConfig struct {
	// Dir is where the output workbook is written
	Dir string `hcl:"dir,optional"`

	// ShowDetails prints per-record lines after the summary
	ShowDetails bool `hcl:"show_details,optional"`
}

// HolidaysConfig is the holiday calendar
type HolidaysConfig struct {
	// National holidays, "YYYY-MM-DD"
	National []string `hcl:"national,optional"`

	// States holds per-state holiday blocks
	States []StateHolidays `hcl:"state,block"`
}

// StateHolidays is one state's holiday list
type StateHolidays struct {
	Name  string   `hcl:"name,label"`
	Dates []string `hcl:"dates"`
}

// Default returns a default configuration
func Default() *Config {
	logCfg := logging.DefaultConfig()
	return &Config{
		Competency:       "",
		DefaultDailyRate: 35.0,
		Period: &PeriodConfig{
			TerminationCutoffDay: 15,
		},
		Shares: &SharesConfig{
			Employer: 0.8,
			Employee: 0.2,
		},
		Strategies: &StrategiesConfig{
			Vacation:               "full",
			VacationFraction:       0.7,
			UnconfirmedTermination: "prorate",
			PrioritizeUnionDays:    false,
		},
		Exclusions: &ExclusionsConfig{
			Titles: []string{"diretor", "presidente", "ceo"},
		},
		Execution: &ExecutionConfig{
			WindowStartDay: 1,
			WindowEndDay:   10,
			Block:          false,
			Message:        "outside the recommended execution window, run between days 1 and 10",
		},
		Inputs: &InputsConfig{
			Dir:         ".",
			Active:      "ATIVOS.xlsx",
			Vacation:    "FÉRIAS.xlsx",
			Terminated:  "DESLIGADOS.xlsx",
			Interns:     "ESTÁGIO.xlsx",
			Apprentices: "APRENDIZ.xlsx",
			OnLeave:     "AFASTAMENTOS.xlsx",
			Expatriates: "EXTERIOR.xlsx",
			Admissions:  "ADMISSÃO ABRIL.xlsx",
			Rates:       "Base sindicato x valor.xlsx",
			UnionDays:   "Base dias uteis.xlsx",
		},
		Output: &OutputConfig{
			Dir:         ".",
			ShowDetails: false,
		},
		Holidays: &HolidaysConfig{},
		Logging:  &logCfg,
	}
}

// Load loads configuration from an HCL file, filling any omitted
// section with its default.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := hclsimple.DecodeFile(path, nil, cfg); err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "loading config file", err)
	}
	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.DefaultDailyRate == 0 {
		cfg.DefaultDailyRate = def.DefaultDailyRate
	}
	if cfg.Period == nil {
		cfg.Period = def.Period
	}
	if cfg.Period.TerminationCutoffDay == 0 {
		cfg.Period.TerminationCutoffDay = def.Period.TerminationCutoffDay
	}
	if cfg.Shares == nil {
		cfg.Shares = def.Shares
	}
	if cfg.Strategies == nil {
		cfg.Strategies = def.Strategies
	}
	if cfg.Strategies.Vacation == "" {
		cfg.Strategies.Vacation = def.Strategies.Vacation
	}
	if cfg.Strategies.VacationFraction == 0 {
		cfg.Strategies.VacationFraction = def.Strategies.VacationFraction
	}
	if cfg.Strategies.UnconfirmedTermination == "" {
		cfg.Strategies.UnconfirmedTermination = def.Strategies.UnconfirmedTermination
	}
	if cfg.Exclusions == nil {
		cfg.Exclusions = def.Exclusions
	}
	if cfg.Execution == nil {
		cfg.Execution = def.Execution
	}
	if cfg.Execution.WindowStartDay == 0 {
		cfg.Execution.WindowStartDay = def.Execution.WindowStartDay
	}
	if cfg.Execution.WindowEndDay == 0 {
		cfg.Execution.WindowEndDay = def.Execution.WindowEndDay
	}
	if cfg.Execution.Message == "" {
		cfg.Execution.Message = def.Execution.Message
	}
	if cfg.Inputs == nil {
		cfg.Inputs = def.Inputs
	} else {
		fillInputs(cfg.Inputs, def.Inputs)
	}
	if cfg.Output == nil {
		cfg.Output = def.Output
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = def.Output.Dir
	}
	if cfg.Holidays == nil {
		cfg.Holidays = def.Holidays
	}
	if cfg.Logging == nil {
		cfg.Logging = def.Logging
	}
}

func fillInputs(in, def *InputsConfig) {
	if in.Dir == "" {
		in.Dir = def.Dir
	}
	if in.Active == "" {
		in.Active = def.Active
	}
	if in.Vacation == "" {
		in.Vacation = def.Vacation
	}
	if in.Terminated == "" {
		in.Terminated = def.Terminated
	}
	if in.Interns == "" {
		in.Interns = def.Interns
	}
	if in.Apprentices == "" {
		in.Apprentices = def.Apprentices
	}
	if in.OnLeave == "" {
		in.OnLeave = def.OnLeave
	}
	if in.Expatriates == "" {
		in.Expatriates = def.Expatriates
	}
	if in.Admissions == "" {
		in.Admissions = def.Admissions
	}
	if in.Rates == "" {
		in.Rates = def.Rates
	}
	if in.UnionDays == "" {
		in.UnionDays = def.UnionDays
	}
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
