package xlsx

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"meal-benefit/core/period"
	"meal-benefit/core/types"
	"meal-benefit/internal/errors"
)

const (
	recordSheet  = "VR Mensal"
	summarySheet = "Validações"
)

var recordHeaders = []interface{}{
	"Matricula",
	"Admissão",
	"Data Desligamento",
	"Dias Úteis",
	"Valor Diário VR",
	"Valor Total VR",
	"Custo Empresa",
	"Desconto Profissional",
	"OBS GERAL",
}

// OutputFileName names the monthly workbook for a competency.
func OutputFileName(c period.Competency) string {
	return fmt.Sprintf("VR_MENSAL_%02d_%d.xlsx", int(c.Month), c.Year)
}

// WriteReport serializes the run result: one row per employee on the
// main sheet, totals and alert lines on the summary sheet. Returns the
// path written.
func WriteReport(result *types.RunResult, competency period.Competency, dir string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", recordSheet)
	if err := f.SetSheetRow(recordSheet, "A1", &recordHeaders); err != nil {
		return "", errors.Output("writing header row", err)
	}

	for i, rec := range result.Records {
		row := []interface{}{
			rec.ID,
			formatDate(rec.Admission),
			formatDate(rec.Termination),
			rec.EligibleDays,
			rec.DailyRate.InexactFloat64(),
			rec.TotalAmount.InexactFloat64(),
			rec.EmployerAmount.InexactFloat64(),
			rec.EmployeeAmount.InexactFloat64(),
			strings.Join(rec.Observations, types.ObservationSeparator),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(recordSheet, cell, &row); err != nil {
			return "", errors.Output(fmt.Sprintf("writing record %s", rec.ID), err)
		}
	}

	if err := writeSummary(f, result.Report); err != nil {
		return "", err
	}

	path := filepath.Join(dir, OutputFileName(competency))
	if err := f.SaveAs(path); err != nil {
		return "", errors.Output("saving workbook", err)
	}
	return path, nil
}

func writeSummary(f *excelize.File, report types.ValidationReport) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return errors.Output("creating summary sheet", err)
	}

	rows := [][]interface{}{
		{"Validações", "Check"},
		{"Total de colaboradores", report.TotalRecords},
		{"Total de dias úteis", report.TotalDays},
		{"Valor total VR", report.TotalAmount.InexactFloat64()},
		{"Custo total empresa", report.EmployerTotal.InexactFloat64()},
		{"Desconto total profissional", report.EmployeeTotal.InexactFloat64()},
		{"Colaboradores com férias", report.VacationRows},
		{"Colaboradores desligados", report.TerminationRows},
		{"Colaboradores admitidos no mês", report.AdmissionRows},
		{"Matrículas excluídas", report.ExcludedIDs},
		{"Registros com observações", report.RecordsWithObservations},
	}
	for _, alert := range report.Alerts {
		rows = append(rows, []interface{}{"Alerta", alert})
	}
	for _, line := range report.Logs {
		rows = append(rows, []interface{}{"Log", line})
	}

	for i := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(summarySheet, cell, &rows[i]); err != nil {
			return errors.Output("writing summary row", err)
		}
	}
	return nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}
