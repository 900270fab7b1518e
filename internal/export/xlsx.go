package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandeepkv93/studyplan/internal/model"
	"github.com/sandeepkv93/studyplan/internal/report"
	"github.com/xuri/excelize/v2"
)

const (
	SheetSchedule = "Cronograma"
	SheetSummary  = "Resumo"
)

// WriteXLSX writes a workbook with the full schedule and a per-week summary.
func WriteXLSX(w io.Writer, s model.Schedule) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSchedule); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6FA"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	if err := writeScheduleSheet(f, s, headerStyle); err != nil {
		return err
	}
	if err := writeSummarySheet(f, report.Summarize(s), headerStyle); err != nil {
		return err
	}
	f.SetActiveSheet(0)
	return f.Write(w)
}

// SaveXLSX writes the workbook to path, which must end in .xlsx.
func SaveXLSX(path string, s model.Schedule) error {
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return fmt.Errorf("export: %q is not an .xlsx path", path)
	}
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteXLSX(out, s); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func writeScheduleSheet(f *excelize.File, s model.Schedule, headerStyle int) error {
	header := []any{"Semana", "Dia", "Atividade", "Status"}
	if err := f.SetSheetRow(SheetSchedule, "A1", &header); err != nil {
		return err
	}
	for i, e := range s {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{e.Week, e.Day, e.Activity, e.Status.String()}
		if err := f.SetSheetRow(SheetSchedule, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetRowStyle(SheetSchedule, 1, 1, headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetSchedule, "A", "B", 16); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetSchedule, "C", "C", 64); err != nil {
		return err
	}
	return f.SetColWidth(SheetSchedule, "D", "D", 12)
}

func writeSummarySheet(f *excelize.File, sum report.Summary, headerStyle int) error {
	header := []any{"Semana", "Tarefas Concluídas", "Total"}
	if err := f.SetSheetRow(SheetSummary, "A1", &header); err != nil {
		return err
	}
	row := 2
	for _, wc := range sum.PerWeek {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		values := []any{wc.Week, wc.Done, wc.Total}
		if err := f.SetSheetRow(SheetSummary, cell, &values); err != nil {
			return err
		}
		row++
	}
	row++
	totals := [][]any{
		{"Concluídas", sum.Completed},
		{"Pendentes", sum.Pending},
		{"Progresso geral", sum.PercentText()},
		{"Fração", sum.Fraction()},
	}
	for _, values := range totals {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetSummary, cell, &values); err != nil {
			return err
		}
		row++
	}
	if err := f.SetRowStyle(SheetSummary, 1, 1, headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(SheetSummary, "A", "C", 20)
}
