package engine_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meal-benefit/core/engine"
	"meal-benefit/core/period"
	"meal-benefit/core/proration"
	"meal-benefit/core/table"
	"meal-benefit/core/types"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func testConfig(t *testing.T) engine.Config {
	t.Helper()
	p, err := period.New(
		time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC),
		period.Competency{Month: time.April, Year: 2025},
		22, 15, nil)
	require.NoError(t, err)

	return engine.Config{
		Period:           p,
		Strategies:       proration.DefaultStrategies(),
		EmployerShare:    decimal.NewFromFloat(0.8),
		EmployeeShare:    decimal.NewFromFloat(0.2),
		DefaultDailyRate: decimal.NewFromFloat(35),
		ExcludedTitles:   []string{"diretor", "presidente", "ceo"},
	}
}

func TestRun_FullPeriodEmployee(t *testing.T) {
	// An eligible employee with no adjustments: full 22 days at the
	// São Paulo rate, split 80/20, no observations.
	in := engine.Inputs{
		Active: []table.ActiveRow{{ID: "100", RoleTitle: "Analista", UnionLabel: "São Paulo"}},
		Rates:  []table.RateRow{{Label: "São Paulo", Rate: decimal.NewFromFloat(35)}},
	}

	result, err := engine.Run(testConfig(t), in)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)

	rec := result.Records[0]
	assert.Equal(t, 22, rec.EligibleDays)
	assert.Equal(t, "770", rec.TotalAmount.String())
	assert.Equal(t, "616", rec.EmployerAmount.String())
	assert.Equal(t, "154", rec.EmployeeAmount.String())
	assert.Empty(t, rec.Observations)
	assert.Equal(t, 0, result.Report.RecordsWithObservations)
}

func TestRun_ExclusionsNeverReachProration(t *testing.T) {
	in := engine.Inputs{
		Active: []table.ActiveRow{
			{ID: "1", RoleTitle: "Analista", UnionLabel: "São Paulo"},
			{ID: "2", RoleTitle: "Estagiário", UnionLabel: "São Paulo"},
			{ID: "3", RoleTitle: "Diretor Comercial", UnionLabel: "São Paulo"},
		},
		Interns: []table.CategoryRow{{ID: "2"}},
	}

	result, err := engine.Run(testConfig(t), in)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "1", result.Records[0].ID)
	assert.Equal(t, 2, result.Report.ExcludedIDs)
}

func TestRun_TerminationAndAdmissionScenarios(t *testing.T) {
	in := engine.Inputs{
		Active: []table.ActiveRow{
			{ID: "10", UnionLabel: "São Paulo"}, // terminated on the 10th, confirmed
			{ID: "20", UnionLabel: "São Paulo"}, // terminated on the 20th, confirmed
			{ID: "30", UnionLabel: "São Paulo"}, // admitted on the 10th
		},
		Terminations: []table.TerminationRow{
			{ID: "10", Date: date(2025, time.April, 10), NoticeConfirmed: true},
			{ID: "20", Date: date(2025, time.April, 20), NoticeConfirmed: true},
		},
		Admissions: []table.AdmissionRow{
			{ID: "30", Date: date(2025, time.April, 10)},
		},
	}

	result, err := engine.Run(testConfig(t), in)
	require.NoError(t, err)
	require.Len(t, result.Records, 3)

	byID := make(map[string]types.ProratedRecord)
	for _, rec := range result.Records {
		byID[rec.ID] = rec
	}
	assert.Equal(t, 0, byID["10"].EligibleDays)
	assert.True(t, byID["10"].TotalAmount.IsZero())
	assert.Equal(t, 5, byID["20"].EligibleDays)
	assert.Equal(t, 13, byID["30"].EligibleDays)
}

func TestRun_UnknownUnionGetsDefaultRate(t *testing.T) {
	in := engine.Inputs{
		Active: []table.ActiveRow{{ID: "1", UnionLabel: "Sindicato Desconhecido"}},
		Rates:  []table.RateRow{{Label: "São Paulo", Rate: decimal.NewFromFloat(37.5)}},
	}

	result, err := engine.Run(testConfig(t), in)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "35", result.Records[0].DailyRate.String())
}

func TestRun_InputNotesBecomeObservations(t *testing.T) {
	in := engine.Inputs{
		Active: []table.ActiveRow{{ID: "1", UnionLabel: "São Paulo"}},
		Vacation: []table.VacationRow{
			{ID: "1", Invalid: true, Raw: "abc"},
		},
	}

	result, err := engine.Run(testConfig(t), in)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)

	rec := result.Records[0]
	assert.Equal(t, 22, rec.EligibleDays) // invalid count treated as 0
	require.NotEmpty(t, rec.Observations)
	assert.Contains(t, rec.Observations[0], `unparseable vacation days "abc"`)
	assert.Equal(t, 1, result.Report.RecordsWithObservations)
}

func TestRun_DuplicateActiveRowsKeepFirst(t *testing.T) {
	in := engine.Inputs{
		Active: []table.ActiveRow{
			{ID: "1", RoleTitle: "Analista", UnionLabel: "São Paulo"},
			{ID: "1", RoleTitle: "Analista", UnionLabel: "Rio de Janeiro"},
		},
	}

	result, err := engine.Run(testConfig(t), in)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "São Paulo", result.Records[0].UnionLabel)
	assert.Contains(t, result.Report.Logs, "1 duplicate identifiers in the active table, first occurrence kept")
}

func TestRun_Deterministic(t *testing.T) {
	in := engine.Inputs{
		Active: []table.ActiveRow{
			{ID: "3", UnionLabel: "São Paulo"},
			{ID: "1", UnionLabel: "Rio de Janeiro"},
			{ID: "2", UnionLabel: "Paraná"},
		},
		Rates: []table.RateRow{
			{Label: "São Paulo", Rate: decimal.NewFromFloat(37.5)},
			{Label: "Rio de Janeiro", Rate: decimal.NewFromFloat(35)},
		},
		Vacation: []table.VacationRow{{ID: "1", Days: 5}},
	}

	first, err := engine.Run(testConfig(t), in)
	require.NoError(t, err)
	second, err := engine.Run(testConfig(t), in)
	require.NoError(t, err)

	require.Equal(t, len(first.Records), len(second.Records))
	for i := range first.Records {
		assert.Equal(t, first.Records[i].ID, second.Records[i].ID)
		assert.True(t, first.Records[i].TotalAmount.Equal(second.Records[i].TotalAmount))
	}
	assert.Equal(t, first.Report.Logs, second.Report.Logs)
}

func TestRun_WarningsReachReportLogs(t *testing.T) {
	in := engine.Inputs{
		Active:   []table.ActiveRow{{ID: "1", UnionLabel: "São Paulo"}},
		Warnings: []string{"table ferias has no identifier column, skipped"},
	}

	result, err := engine.Run(testConfig(t), in)
	require.NoError(t, err)
	assert.Contains(t, result.Report.Logs, "table ferias has no identifier column, skipped")
}

func TestConfigValidate_ShareSum(t *testing.T) {
	cfg := testConfig(t)
	cfg.EmployeeShare = decimal.NewFromFloat(0.3)
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum")

	cfg = testConfig(t)
	cfg.EmployerShare = decimal.NewFromFloat(1.2)
	cfg.EmployeeShare = decimal.NewFromFloat(-0.2)
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_Rejections(t *testing.T) {
	cfg := testConfig(t)
	cfg.DefaultDailyRate = decimal.Zero
	assert.Error(t, cfg.Validate())

	cfg = testConfig(t)
	cfg.Strategies.Vacation = "weird"
	assert.Error(t, cfg.Validate())

	cfg = testConfig(t)
	cfg.Period.WorkingDays = 0
	assert.Error(t, cfg.Validate())
}

func TestSplit(t *testing.T) {
	total, employer, employee := engine.Split(22,
		decimal.NewFromFloat(35),
		decimal.NewFromFloat(0.8),
		decimal.NewFromFloat(0.2))

	assert.Equal(t, "770", total.String())
	assert.Equal(t, "616", employer.String())
	assert.Equal(t, "154", employee.String())
	assert.True(t, employer.Add(employee).Equal(total))
}

func TestSplit_ZeroDays(t *testing.T) {
	total, employer, employee := engine.Split(0,
		decimal.NewFromFloat(35),
		decimal.NewFromFloat(0.8),
		decimal.NewFromFloat(0.2))
	assert.True(t, total.IsZero())
	assert.True(t, employer.IsZero())
	assert.True(t, employee.IsZero())
}

func TestBuildInputs(t *testing.T) {
	tables := engine.Tables{
		Active: table.New("ativos",
			[]string{"MATRICULA ", "TITULO DO CARGO", "SINDICATO"},
			[][]string{{"100.0", "Analista", "São Paulo"}}),
		Vacation: table.New("ferias",
			[]string{"NOME", "DIAS DE FÉRIAS"}, // no identifier column
			[][]string{{"fulano", "5"}}),
	}

	in, err := engine.BuildInputs(tables)
	require.NoError(t, err)
	require.Len(t, in.Active, 1)
	assert.Equal(t, "100", in.Active[0].ID)
	assert.Empty(t, in.Vacation)
	require.Len(t, in.Warnings, 1)
	assert.Contains(t, in.Warnings[0], "no identifier column")
}

func TestBuildInputs_BrokenActiveTableIsFatal(t *testing.T) {
	_, err := engine.BuildInputs(engine.Tables{})
	assert.Error(t, err)
}
