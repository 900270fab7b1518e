package views

import (
	"fmt"
	"strings"
)

type SchedulePanelData struct {
	TableView string
	Rows      int
}

type EntryDetailData struct {
	Position     int
	Week         string
	Day          string
	Status       string
	ActivityView string
}

type EditorEntryData struct {
	Position int
	Week     string
	Day      string
	Activity string
	Done     bool
}

type ProgressPanelData struct {
	Entries  []EditorEntryData
	Cursor   int
	Window   int
	Labels   []string
	Dirty    bool
	SaveHint string
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderSchedulePanel(data SchedulePanelData) string {
	var b strings.Builder
	b.WriteString("Cronograma semanal\n")
	b.WriteString(fmt.Sprintf("entries: %d | actions: [j/k]move\n", data.Rows))
	b.WriteString(data.TableView)
	return strings.TrimSpace(b.String())
}

func RenderEntryDetail(data EntryDetailData) string {
	if strings.TrimSpace(data.Week) == "" {
		return "atividade:\n(no selection)"
	}
	return fmt.Sprintf("atividade #%d:\nsemana: %s\ndia: %s\nstatus: %s\n\n%s",
		data.Position,
		data.Week,
		data.Day,
		data.Status,
		data.ActivityView,
	)
}

// RenderProgressPanel draws one two-option control per entry, windowed around the cursor.
func RenderProgressPanel(data ProgressPanelData) string {
	var b strings.Builder
	b.WriteString("Atualizar status\n")
	b.WriteString("actions: [j/k]move [space]toggle [p]pendente [c]concluído " + data.SaveHint + "\n")
	if data.Dirty {
		b.WriteString("* alterações não salvas\n")
	}
	if len(data.Entries) == 0 {
		b.WriteString("(no entries)")
		return strings.TrimSpace(b.String())
	}

	start, end := windowBounds(len(data.Entries), data.Cursor, data.Window)
	if start > 0 {
		b.WriteString(fmt.Sprintf("  ... %d above\n", start))
	}
	for i := start; i < end; i++ {
		e := data.Entries[i]
		cursor := " "
		if i == data.Cursor {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %2d. %s - %s: %s\n", cursor, e.Position, e.Week, e.Day, e.Activity))
		b.WriteString("      " + radioPair(data.Labels, e.Done) + "\n")
	}
	if end < len(data.Entries) {
		b.WriteString(fmt.Sprintf("  ... %d below\n", len(data.Entries)-end))
	}
	return strings.TrimSpace(b.String())
}

func radioPair(labels []string, done bool) string {
	pending, completed := "Pendente", "Concluído"
	if len(labels) == 2 {
		pending, completed = labels[0], labels[1]
	}
	if done {
		return fmt.Sprintf("( ) %s  (•) %s", pending, completed)
	}
	return fmt.Sprintf("(•) %s  ( ) %s", pending, completed)
}

func windowBounds(n, cursor, window int) (int, int) {
	if window <= 0 || window >= n {
		return 0, n
	}
	start := cursor - window/2
	if start < 0 {
		start = 0
	}
	end := start + window
	if end > n {
		end = n
		start = end - window
	}
	return start, end
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("\nhelp:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
