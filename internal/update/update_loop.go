package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/studyplan/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

// Update applies msg and refreshes the bubble components on the returned copy.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed), nil
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Schedule:
			m.CurrentView = ViewSchedule
			return m, nil
		case m.Keys.Progress:
			m.CurrentView = ViewProgress
			return m, nil
		case m.Keys.Charts:
			m.CurrentView = ViewCharts
			return m, nil
		case m.Keys.Save:
			return m.saveSchedule(), nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown", IsError: false}
			} else {
				m.Status = StatusBar{Text: "help hidden", IsError: false}
			}
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewSchedule:
			return m.handleScheduleKey(typed), nil
		case ViewProgress:
			return m.handleProgressKey(typed), nil
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	case ToggleEntryMsg:
		return m.toggleEntry(typed.Index), nil
	case SaveRequestMsg:
		return m.saveSchedule(), nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewSchedule:
		leftPane = m.renderScheduleView()
		rightPane = m.renderEntryDetail()
	case ViewProgress:
		leftPane = m.renderProgressView()
	case ViewCharts:
		leftPane = m.renderChartsView()
	}
	rightPane = strings.TrimSpace(strings.Join([]string{rightPane, m.renderCommandPalette(), m.renderHelpIfVisible()}, "\n"))

	header := fmt.Sprintf("%s | view: %s | selected: %d/%d", appTitle, m.CurrentView, m.Cursor+1, len(m.Schedule))
	if m.Dirty {
		header += " | * unsaved"
	}

	return views.RenderApp(views.AppData{
		Header:       header,
		Tagline:      appTagline,
		LeftPane:     leftPane,
		RightPane:    rightPane,
		LeftWidth:    paneWidth(m.CurrentView),
		StatusLine:   status,
		Notification: m.renderNotificationsView(),
		Footer:       fmt.Sprintf("keys: %s cronograma | %s progresso | %s gráficos | %s save | / cmd | %s help | %s quit", m.Keys.Schedule, m.Keys.Progress, m.Keys.Charts, m.Keys.Save, m.Keys.Help, m.Keys.Quit),
	})
}

func paneWidth(v View) int {
	if v == ViewSchedule {
		return 80
	}
	return 0
}

func isKnownView(v View) bool {
	switch v {
	case ViewSchedule, ViewProgress, ViewCharts:
		return true
	default:
		return false
	}
}
