package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/studyplan/internal/commands"
	"github.com/sandeepkv93/studyplan/internal/export"
	"github.com/sandeepkv93/studyplan/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			text := string(msg.Runes)
			if msg.Type == tea.KeySpace {
				text = " "
			}
			m.commandInput.SetValue(m.commandInput.Value() + text)
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Mark: func(t commands.Type, a commands.MarkArgs) (commands.Result, error) {
			i := a.Row - 1
			var next Model
			switch t {
			case commands.TypeDone:
				next = m.setEntryStatus(i, model.StatusDone)
			case commands.TypePending:
				next = m.setEntryStatus(i, model.StatusPending)
			default:
				next = m.toggleEntry(i)
			}
			if next.Status.IsError {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: next.Status.Text}
			}
			m = next
			m.Cursor = i
			e := m.Schedule[i]
			return commands.Result{Message: fmt.Sprintf("#%d %s - %s: %s", a.Row, e.Week, e.Day, e.Status)}, nil
		},
		Week: func(a commands.WeekArgs) (commands.Result, error) {
			st := model.StatusPending
			if a.Done {
				st = model.StatusDone
			}
			week := model.WeekLabel(a.Week)
			next, err := model.SetWeekStatus(m.Schedule, week, st)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			for i := range next {
				if next[i].Status != m.Schedule[i].Status {
					m.Dirty = true
				}
			}
			m.Schedule = next
			return commands.Result{Message: fmt.Sprintf("%s: %s", week, st)}, nil
		},
		Save: func() (commands.Result, error) {
			m = m.saveSchedule()
			if m.Status.IsError {
				return commands.Result{}, m.LastError
			}
			return commands.Result{Message: savedText}, nil
		},
		Show: func(s commands.ShowArgs) (commands.Result, error) {
			switch s.Subject {
			case "progress":
				m.CurrentView = ViewProgress
			case "charts":
				m.CurrentView = ViewCharts
			default:
				m.CurrentView = ViewSchedule
			}
			return commands.Result{Message: fmt.Sprintf("show %s", m.CurrentView)}, nil
		},
		Export: func(a commands.ExportArgs) (commands.Result, error) {
			if err := export.SaveXLSX(a.Path, m.Schedule); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("exported %d entries to %s", len(m.Schedule), a.Path)}, nil
		},
	})
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
	} else if res.Message != savedText {
		m.Status = StatusBar{Text: res.Message, IsError: false}
		m.notify("Command", res.Message, "info")
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}
