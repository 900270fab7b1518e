package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sandeepkv93/studyplan/internal/model"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSXSheets(t *testing.T) {
	s, err := model.SetWeekStatus(model.DefaultSchedule(), model.WeekLabel(1), model.StatusDone)
	if err != nil {
		t.Fatalf("set week: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, s); err != nil {
		t.Fatalf("write xlsx: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetSchedule)
	if err != nil {
		t.Fatalf("schedule rows: %v", err)
	}
	if len(rows) != 25 {
		t.Fatalf("expected header + 24 rows, got %d", len(rows))
	}
	if rows[0][0] != "Semana" || rows[0][3] != "Status" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][3] != "Concluído" || rows[7][3] != "Pendente" {
		t.Fatalf("unexpected statuses: %v / %v", rows[1], rows[7])
	}

	summary, err := f.GetRows(SheetSummary)
	if err != nil {
		t.Fatalf("summary rows: %v", err)
	}
	if summary[1][0] != "Semana 1" || summary[1][1] != "6" {
		t.Fatalf("unexpected week row: %v", summary[1])
	}
	found := false
	for _, r := range summary {
		if len(r) >= 2 && r[0] == "Progresso geral" {
			found = r[1] == "25.0%"
		}
	}
	if !found {
		t.Fatalf("missing overall progress row: %v", summary)
	}
}

func TestSaveXLSXRejectsOtherExtensions(t *testing.T) {
	if err := SaveXLSX(filepath.Join(t.TempDir(), "out.csv"), model.DefaultSchedule()); err == nil {
		t.Fatal("expected error for non-xlsx path")
	}
	path := filepath.Join(t.TempDir(), "out", "progresso.xlsx")
	if err := SaveXLSX(path, model.DefaultSchedule()); err != nil {
		t.Fatalf("save xlsx: %v", err)
	}
}
