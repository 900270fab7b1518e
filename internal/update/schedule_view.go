package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/studyplan/internal/views"
)

func (m Model) handleScheduleKey(msg tea.KeyMsg) Model {
	return m.moveCursor(msg.String())
}

func (m Model) moveCursor(key string) Model {
	switch key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Schedule)-1 {
			m.Cursor++
		}
	case "home", "g":
		m.Cursor = 0
	case "end", "G":
		m.Cursor = len(m.Schedule) - 1
	}
	m.ensureCursor()
	return m
}

func (m Model) renderScheduleView() string {
	return views.RenderSchedulePanel(views.SchedulePanelData{
		TableView: m.scheduleTable.View(),
		Rows:      len(m.Schedule),
	})
}

func (m Model) renderEntryDetail() string {
	e, ok := m.currentEntry()
	if !ok {
		return views.RenderEntryDetail(views.EntryDetailData{})
	}
	return views.RenderEntryDetail(views.EntryDetailData{
		Position:     m.Cursor + 1,
		Week:         e.Week,
		Day:          e.Day,
		Status:       e.Status.String(),
		ActivityView: m.detailViewport.View(),
	})
}
