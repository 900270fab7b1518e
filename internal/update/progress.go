package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/studyplan/internal/model"
	"github.com/sandeepkv93/studyplan/internal/views"
)

func (m Model) handleProgressKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case " ", "enter":
		return m.toggleEntry(m.Cursor)
	case "p":
		return m.setEntryStatus(m.Cursor, model.StatusPending)
	case "c":
		return m.setEntryStatus(m.Cursor, model.StatusDone)
	case "w":
		return m.saveSchedule()
	default:
		return m.moveCursor(msg.String())
	}
}

// toggleEntry flips one entry and leaves every other entry untouched.
func (m Model) toggleEntry(i int) Model {
	next, err := model.Toggle(m.Schedule, i)
	if err != nil {
		return m.fail(err)
	}
	return m.applyEdit(next, i)
}

func (m Model) setEntryStatus(i int, st model.Status) Model {
	next, err := model.SetStatus(m.Schedule, i, st)
	if err != nil {
		return m.fail(err)
	}
	return m.applyEdit(next, i)
}

func (m Model) applyEdit(next model.Schedule, i int) Model {
	if next[i].Status != m.Schedule[i].Status {
		m.Dirty = true
	}
	m.Schedule = next
	e := next[i]
	m.Status = StatusBar{Text: fmt.Sprintf("%s - %s: %s", e.Week, e.Day, e.Status), IsError: false}
	return m
}

func (m Model) fail(err error) Model {
	m.LastError = err
	m.Status = StatusBar{Text: err.Error(), IsError: true}
	return m
}

func (m Model) renderProgressView() string {
	entries := make([]views.EditorEntryData, 0, len(m.Schedule))
	for i, e := range m.Schedule {
		entries = append(entries, views.EditorEntryData{
			Position: i + 1,
			Week:     e.Week,
			Day:      e.Day,
			Activity: e.Activity,
			Done:     e.Done(),
		})
	}
	return views.RenderProgressPanel(views.ProgressPanelData{
		Entries:  entries,
		Cursor:   m.Cursor,
		Window:   m.editorWindow,
		Labels:   model.StatusLabels(),
		Dirty:    m.Dirty,
		SaveHint: "[w]salvar",
	})
}
